package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"homestay/config"
	"homestay/infras/jwt"
	"homestay/infras/kafka"
	"homestay/infras/otel"
	"homestay/internal/domains/auth/model/dto"
	userModel "homestay/internal/domains/user/model"
	userRepo "homestay/internal/domains/user/repository"
	"homestay/shared"
	"homestay/shared/cache"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	"homestay/shared/guard"
	"homestay/shared/password"
)

const (
	cacheSMSCode     = "sms:code"
	cacheSMSInterval = "sms:interval"
	cacheLoginFail   = "login:fail"

	smsSendsPerWindow = 1
)

type Auth interface {
	RequestSMSCode(ctx context.Context, req dto.RequestSMSCodeRequest) error
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest, clientIP string) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
	kafka      kafka.Client
	loginGuard guard.Guard
	smsGuard   guard.Guard
}

func New(userRepository userRepo.User, cfg *config.Config, cacheStore cache.RedisCache, otl otel.Otel, jwtService jwt.JWT, kafkaClient kafka.Client) Auth {
	return &serviceImpl{
		userRepo:   userRepository,
		cfg:        cfg,
		cache:      cacheStore,
		otel:       otl,
		jwtService: jwtService,
		kafka:      kafkaClient,
		loginGuard: guard.New(cacheStore, cfg.App.Guard.LoginMaxFailures, cfg.App.Guard.LoginWindowSeconds),
		smsGuard:   guard.New(cacheStore, smsSendsPerWindow, cfg.App.Guard.SMSSendIntervalSeconds),
	}
}

// RequestSMSCode issues a verification code for an unregistered mobile and
// hands it to the SMS topic. Sends within the interval window are refused.
func (s *serviceImpl) RequestSMSCode(ctx context.Context, req dto.RequestSMSCodeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestSMSCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.userRepo.Exist(ctx, mobileFilter(req.Mobile))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.Conflict("mobile already registered") //nolint:wrapcheck
	}

	intervalKey := shared.BuildCacheKey(cacheSMSInterval, req.Mobile)

	if !s.smsGuard.Allow(ctx, intervalKey) {
		return failure.TooManyRequests("a code was sent recently, wait before requesting another") //nolint:wrapcheck
	}

	code := fmt.Sprintf("%06d", rand.IntN(1000000)) //nolint:gosec

	// The stored code is the source of truth for Register, so this write
	// must succeed before anything is dispatched.
	codeKey := shared.BuildCacheKey(cacheSMSCode, req.Mobile)
	if err = s.cache.Save(ctx, codeKey, code, s.cfg.App.SMSCodeTTLSeconds); err != nil {
		log.Error().Err(err).Msg("failed to store verification code")

		return fmt.Errorf("failed to store verification code: %w", err)
	}

	message := kafka.Message{
		Key:   req.Mobile,
		Value: dto.SMSCodeMessage{Mobile: req.Mobile, Code: code},
	}

	if err = s.kafka.SendMessages(ctx, s.cfg.Kafka.SMSTopic, message); err != nil {
		log.Error().Err(err).Msg("failed to dispatch verification code")

		return fmt.Errorf("failed to dispatch verification code: %w", err)
	}

	s.smsGuard.RecordFailure(ctx, intervalKey)

	return nil
}

// Register creates an account once the verification code matches. The code is
// single use; it is consumed on success.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	codeKey := shared.BuildCacheKey(cacheSMSCode, req.Mobile)

	var storedCode string

	err = s.cache.Get(ctx, codeKey, &storedCode)
	if err != nil || storedCode != req.Code {
		if err != nil && !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Msg("verification code lookup failed")
		}

		return failure.BadRequestFromString("verification code is invalid or expired") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.userRepo.Insert(ctx, req.ToUserModel(hashedPassword)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict("mobile already registered") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.cache.Delete(ctx, codeKey); err != nil {
		log.Warn().Err(err).Msg("failed to consume verification code")
	}

	return nil
}

// Login is gated by the per-IP failure counter. The guard fails open when the
// counter store is unreachable; a wrong mobile and a wrong password record
// the same strike and return the same message.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest, clientIP string) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	guardKey := shared.BuildCacheKey(cacheLoginFail, clientIP)

	if !s.loginGuard.Allow(ctx, guardKey) {
		return res, failure.TooManyRequests("too many failed logins, try again later") //nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, mobileFilter(req.Mobile))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		s.loginGuard.RecordFailure(ctx, guardKey)
		log.Warn().Str("mobile", req.Mobile).Msg("login attempt with unknown mobile")

		return res, failure.BadRequestFromString("invalid mobile or password") //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		s.loginGuard.RecordFailure(ctx, guardKey)
		log.Warn().Str("mobile", req.Mobile).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid mobile or password") //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Mobile, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair, user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func mobileFilter(mobile string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldMobile,
				Operator: gDto.FilterOperatorEq,
				Value:    mobile,
				Table:    userModel.TableName,
			},
		},
	}
}

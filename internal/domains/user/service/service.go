package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog/log"

	"homestay/config"
	"homestay/infras/otel"
	"homestay/infras/s3"
	"homestay/internal/domains/user/model"
	"homestay/internal/domains/user/model/dto"
	"homestay/internal/domains/user/repository"
	"homestay/shared"
	"homestay/shared/constant"
	"homestay/shared/failure"
	gRepo "homestay/shared/repository"
)

type User interface {
	GetProfile(ctx context.Context, userID string) (dto.ProfileResponse, error)
	UpdateName(ctx context.Context, userID string, req dto.UpdateNameRequest) error
	UploadAvatar(ctx context.Context, userID string, file multipart.File, fileHeader *multipart.FileHeader) (dto.UploadAvatarResponse, error)
}

type serviceImpl struct {
	repo repository.User
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(userRepository repository.User, cfg *config.Config, otl otel.Otel, s3Client s3.S3) User {
	return &serviceImpl{
		repo: userRepository,
		cfg:  cfg,
		otel: otl,
		s3:   s3Client,
	}
}

func (s *serviceImpl) GetProfile(ctx context.Context, userID string) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) UpdateName(ctx context.Context, userID string, req dto.UpdateNameRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateName")
	defer scope.End()
	defer scope.TraceIfError(err)

	update := profileUpdate{Name: req.Name}

	err = s.repo.Update(ctx, shared.TransformFields(update, userID), shared.FilterByID(userID, model.FieldID, model.TableName))
	if errors.Is(err, gRepo.ErrNoRowsUpdated) {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to update user name")

		return fmt.Errorf("failed to update user name: %w", err)
	}

	return nil
}

// UploadAvatar stores the object under the user's id, so a new avatar
// replaces the previous one instead of piling up objects.
func (s *serviceImpl) UploadAvatar(ctx context.Context, userID string, file multipart.File, fileHeader *multipart.FileHeader) (res dto.UploadAvatarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadAvatar")
	defer scope.End()
	defer scope.TraceIfError(err)

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, file, fileHeader, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload avatar to S3")

		return res, fmt.Errorf("failed to upload avatar: %w", err)
	}

	update := profileUpdate{AvatarURL: url}

	err = s.repo.Update(ctx, shared.TransformFields(update, userID), shared.FilterByID(userID, model.FieldID, model.TableName))
	if errors.Is(err, gRepo.ErrNoRowsUpdated) {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to save avatar url")

		return res, fmt.Errorf("failed to save avatar url: %w", err)
	}

	res.AvatarURL = url

	return res, nil
}

// profileUpdate carries the profile columns a user may change.
type profileUpdate struct {
	Name      string `db:"name"`
	AvatarURL string `db:"avatar_url"`
}

package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"homestay/infras/jwt"
	"homestay/infras/otel"
	"homestay/permissions"
	"homestay/shared/constant"
	"homestay/shared/failure"
	"homestay/transport/http/response"
)

// Auth validates bearer tokens and injects the caller's identity into the
// request context.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
	}
}

// Auth enforces a valid access token unless the endpoint is skip-listed. A
// skip-listed endpoint still gets the caller's identity when a valid token is
// presented, so public pages can tailor their response to the viewer.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		routeCtx := chi.RouteContext(ctx)
		method := request.Method
		path := routeCtx.Routes.Find(chi.NewRouteContext(), method, request.URL.Path)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     method,
		})

		skip := false
		if m.permission != nil {
			skip = m.permission.Skip || m.permission.FindPermissions(path, method).Skip
		}

		claims, err := m.validateRequest(request)
		if err != nil {
			if skip {
				next.ServeHTTP(writer, request)

				return
			}

			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		if claims.UserID == constant.Empty || claims.Mobile == constant.Empty {
			log.Error().Msg("token claims are missing the user identity")

			err := failure.Unauthorized("Invalid token claims") //nolint:wrapcheck
			if skip {
				next.ServeHTTP(writer, request)

				return
			}

			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserMobile, claims.Mobile)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authImpl) validateRequest(request *http.Request) (*jwt.Claims, error) {
	authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
	if authHeader == constant.Empty {
		return nil, failure.Unauthorized("Missing authorization header") //nolint:wrapcheck
	}

	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format") //nolint:wrapcheck
	}

	claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
	if err != nil {
		var message string

		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			message = "Token has expired"
		case errors.Is(err, jwt.ErrInvalidToken):
			message = "Invalid token"
		case errors.Is(err, jwt.ErrInvalidClaim):
			message = "Invalid token claims"
		default:
			message = "Token validation failed"
		}

		return nil, failure.Unauthorized(message) //nolint:wrapcheck
	}

	return claims, nil
}

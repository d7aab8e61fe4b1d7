package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"homestay/infras/otel"
	"homestay/internal/domains/user/model/dto"
	"homestay/internal/domains/user/service"
	"homestay/shared/constant"
	"homestay/shared/validator"
	"homestay/transport/http/response"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Get("/me", handler.GetProfile)
		routerGroup.Put("/me/name", handler.UpdateName)
		routerGroup.Post("/me/avatar", handler.UploadAvatar)
	})
}

// GetProfile retrieves the authenticated user's profile.
// @Summary Get my profile
// @Description Retrieve the authenticated user's name, mobile, and avatar.
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.ProfileResponse] "Profile"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.GetProfile(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateName changes the authenticated user's display name.
// @Summary Update my name
// @Description Change the authenticated user's display name.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateNameRequest true "Update Name Request"
// @Success 200 {object} response.Message "Name updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me/name [put]
// @Security BearerAuth
func (handler *Handler) UpdateName(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateName")
	defer scope.End()

	req := dto.UpdateNameRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.UpdateName(ctx, userID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update name")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Name updated by user " + userID)

	response.WithMessage(writer, http.StatusOK, "Name updated successfully")
}

// UploadAvatar replaces the authenticated user's avatar image.
// @Summary Upload my avatar
// @Description Upload an avatar image for the authenticated user, replacing any previous one.
// @Tags User
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image to upload"
// @Success 200 {object} response.Data[dto.UploadAvatarResponse] "Avatar uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me/avatar [post]
// @Security BearerAuth
func (handler *Handler) UploadAvatar(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadAvatar")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, err)

		return
	}

	file, fileHeader, err := request.FormFile(constant.FormAvatar)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(writer, err)

		return
	}
	defer file.Close()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.UploadAvatar(ctx, userID, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload avatar")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Avatar uploaded by user " + userID)

	response.WithJSON(writer, http.StatusOK, res)
}

package house

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"homestay/infras/otel"
	"homestay/internal/domains/house/model/dto"
	"homestay/internal/domains/house/service"
	"homestay/shared/constant"
	"homestay/shared/validator"
	"homestay/transport/http/response"
)

type Handler struct {
	service service.House
	otel    otel.Otel
}

func New(service service.House, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/houses", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHouse)
		routerGroup.Get("/", handler.SearchHouses)
		routerGroup.Get("/mine", handler.GetMyHouses)
		routerGroup.Get("/{id}", handler.GetHouseByID)
		routerGroup.Post("/{id}/images", handler.UploadImage)
	})
}

// CreateHouse publishes a new house listing.
// @Summary Create a new house listing
// @Description Publish a house listing owned by the authenticated user.
// @Tags House
// @Accept json
// @Produce json
// @Param request body dto.CreateHouseRequest true "Create House Request"
// @Success 201 {object} response.Data[dto.CreateHouseResponse] "House created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/houses [post]
// @Security BearerAuth
func (handler *Handler) CreateHouse(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHouse")
	defer scope.End()

	req := dto.CreateHouseRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	ownerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Create(ctx, ownerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create house")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("House created successfully by user " + ownerID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// SearchHouses lists houses matching the search filters.
// @Summary Search houses
// @Description Search available houses by date range, area, and sort key.
// @Tags House
// @Produce json
// @Param sd query string false "Start date (YYYY-MM-DD)"
// @Param ed query string false "End date (YYYY-MM-DD)"
// @Param aid query string false "Area ID"
// @Param sk query string false "Sort key (new, booking, price-inc, price-des)"
// @Param page query int false "Page number"
// @Success 200 {object} response.Data[dto.SearchHousesResponse] "Matching houses"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/houses [get]
func (handler *Handler) SearchHouses(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchHouses")
	defer scope.End()

	query := request.URL.Query()

	req := dto.SearchHousesRequest{
		StartDate: query.Get(constant.RequestParamStartDate),
		EndDate:   query.Get(constant.RequestParamEndDate),
		AreaID:    query.Get(constant.RequestParamAreaID),
		SortKey:   query.Get(constant.RequestParamSortKey),
		Page:      query.Get(constant.RequestParamPage),
	}

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search houses")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetMyHouses lists the authenticated user's own listings.
// @Summary Get my houses
// @Description Retrieve every house listing owned by the authenticated user.
// @Tags House
// @Produce json
// @Success 200 {object} response.Data[dto.GetMyHousesResponse] "Owned houses"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/houses/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyHouses(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyHouses")
	defer scope.End()

	ownerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.ListMine(ctx, ownerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owned houses")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetHouseByID retrieves one house with its images and comments.
// @Summary Get house detail
// @Description Retrieve a house listing with its image gallery and stay comments.
// @Tags House
// @Produce json
// @Param id path string true "House ID"
// @Success 200 {object} response.Data[dto.HouseDetailResponse] "House detail"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/houses/{id} [get]
func (handler *Handler) GetHouseByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHouseByID")
	defer scope.End()

	houseID := chi.URLParam(request, constant.RequestParamID)
	viewerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.GetDetail(ctx, houseID, viewerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get house detail")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UploadImage adds an image to one of the owner's houses.
// @Summary Upload a house image
// @Description Upload an image for a house; the first image becomes the cover.
// @Tags House
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "House ID"
// @Param house_image formData file true "Image file to upload"
// @Success 200 {object} response.Data[dto.UploadImageResponse] "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/houses/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, err)

		return
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(writer, err)

		return
	}
	defer file.Close()

	houseID := chi.URLParam(request, constant.RequestParamID)
	ownerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.UploadImage(ctx, ownerID, houseID, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload house image")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("House image uploaded successfully by user " + ownerID)

	response.WithJSON(writer, http.StatusOK, res)
}

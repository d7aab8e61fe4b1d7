package area

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"homestay/infras/otel"
	"homestay/internal/domains/area/service"
	"homestay/shared/constant"
	"homestay/transport/http/response"
)

type Handler struct {
	service service.Area
	otel    otel.Otel
}

func New(service service.Area, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/areas", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAreas)
	})
}

// GetAreas retrieves the list of searchable areas.
// @Summary Get all areas
// @Description Retrieve the full list of areas houses can be searched in.
// @Tags Area
// @Produce json
// @Success 200 {object} response.Data[dto.GetAreasResponse] "List of areas"
// @Failure 500 {object} response.Error
// @Router /v1/areas [get]
func (handler *Handler) GetAreas(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAreas")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get areas")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

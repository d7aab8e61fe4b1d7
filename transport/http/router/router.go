package router

import (
	"github.com/go-chi/chi/v5"

	"homestay/internal/handlers/area"
	"homestay/internal/handlers/auth"
	"homestay/internal/handlers/house"
	"homestay/internal/handlers/reservation"
	"homestay/internal/handlers/user"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Area        area.Handler
	House       house.Handler
	Reservation reservation.Handler
	User        user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Area.Router(routerGroup)
		r.DomainHandlers.House.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/internal/handlers/auth"
	"github.com/gabrielgilbord/Frantana-Booking/internal/handlers/availability"
	"github.com/gabrielgilbord/Frantana-Booking/internal/handlers/booking"
	"github.com/gabrielgilbord/Frantana-Booking/internal/handlers/calendar"
	"github.com/gabrielgilbord/Frantana-Booking/internal/handlers/flow"
	"github.com/gabrielgilbord/Frantana-Booking/internal/handlers/invoice"
	"github.com/gabrielgilbord/Frantana-Booking/internal/handlers/mail"
	"github.com/gabrielgilbord/Frantana-Booking/internal/handlers/slot"
	"github.com/gabrielgilbord/Frantana-Booking/transport/http/middleware"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Booking      booking.Handler
	Flow         flow.Handler
	Availability availability.Handler
	Slot         slot.Handler
	Invoice      invoice.Handler
	Calendar     calendar.Handler
	Mail         mail.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthRole       middleware.AuthRole
	Config         *config.Config
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthRole:       authRole,
		Config:         cfg,
	}
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Flow.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Slot.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
		r.DomainHandlers.Calendar.Router(routerGroup)
		r.DomainHandlers.Mail.Router(routerGroup)
	})
}

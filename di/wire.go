//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/jwt"
	"github.com/gabrielgilbord/Frantana-Booking/infras/mailer"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel"
	"github.com/gabrielgilbord/Frantana-Booking/infras/postgres"
	"github.com/gabrielgilbord/Frantana-Booking/infras/redis"
	"github.com/gabrielgilbord/Frantana-Booking/internal/notifier"
	"github.com/gabrielgilbord/Frantana-Booking/permissions"
	"github.com/gabrielgilbord/Frantana-Booking/shared/cache"
	"github.com/gabrielgilbord/Frantana-Booking/transport/http"
	"github.com/gabrielgilbord/Frantana-Booking/transport/http/middleware"
	"github.com/gabrielgilbord/Frantana-Booking/transport/http/router"

	adminRepository "github.com/gabrielgilbord/Frantana-Booking/internal/domains/admin/repository"
	authService "github.com/gabrielgilbord/Frantana-Booking/internal/domains/auth/service"
	availabilityRepository "github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/repository"
	availabilityService "github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/service"
	bookingFlow "github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/flow"
	bookingRepository "github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/repository"
	bookingService "github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/service"
	invoiceRepository "github.com/gabrielgilbord/Frantana-Booking/internal/domains/invoice/repository"
	invoiceService "github.com/gabrielgilbord/Frantana-Booking/internal/domains/invoice/service"
	slotRepository "github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/repository"
	slotService "github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/service"

	authHandler "github.com/gabrielgilbord/Frantana-Booking/internal/handlers/auth"
	availabilityHandler "github.com/gabrielgilbord/Frantana-Booking/internal/handlers/availability"
	bookingHandler "github.com/gabrielgilbord/Frantana-Booking/internal/handlers/booking"
	calendarHandler "github.com/gabrielgilbord/Frantana-Booking/internal/handlers/calendar"
	flowHandler "github.com/gabrielgilbord/Frantana-Booking/internal/handlers/flow"
	invoiceHandler "github.com/gabrielgilbord/Frantana-Booking/internal/handlers/invoice"
	mailHandler "github.com/gabrielgilbord/Frantana-Booking/internal/handlers/mail"
	slotHandler "github.com/gabrielgilbord/Frantana-Booking/internal/handlers/slot"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	notifier.New,
)

var authDomain = wire.NewSet(
	adminRepository.New,
	authService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var slotDomain = wire.NewSet(
	slotRepository.New,
	slotService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	bookingFlow.New,
)

var domains = wire.NewSet(
	authDomain,
	availabilityDomain,
	slotDomain,
	invoiceDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	flowHandler.New,
	availabilityHandler.New,
	slotHandler.New,
	invoiceHandler.New,
	calendarHandler.New,
	mailHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/mail"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
	"hotel/transport/worker"

	accountDeletionRepository "hotel/internal/domains/accountdeletion/repository"
	accountDeletionService "hotel/internal/domains/accountdeletion/service"
	activityRepository "hotel/internal/domains/activity/repository"
	activityService "hotel/internal/domains/activity/service"
	addonRepository "hotel/internal/domains/addon/repository"
	addonService "hotel/internal/domains/addon/service"
	auditRepository "hotel/internal/domains/audit/repository"
	auditService "hotel/internal/domains/audit/service"
	authService "hotel/internal/domains/auth/service"
	billingRepository "hotel/internal/domains/billing/repository"
	billingService "hotel/internal/domains/billing/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	cartRepository "hotel/internal/domains/cart/repository"
	cartService "hotel/internal/domains/cart/service"
	exportService "hotel/internal/domains/export/service"
	folioRepository "hotel/internal/domains/folio/repository"
	folioService "hotel/internal/domains/folio/service"
	housekeepingRepository "hotel/internal/domains/housekeeping/repository"
	housekeepingService "hotel/internal/domains/housekeeping/service"
	masterDataRepository "hotel/internal/domains/masterdata/repository"
	masterDataService "hotel/internal/domains/masterdata/service"
	offerRepository "hotel/internal/domains/offer/repository"
	offerService "hotel/internal/domains/offer/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	systemLockRepository "hotel/internal/domains/systemlock/repository"
	systemLockService "hotel/internal/domains/systemlock/service"
	userRepository "hotel/internal/domains/user/repository"
	userService "hotel/internal/domains/user/service"

	accountDeletionHandler "hotel/internal/handlers/accountdeletion"
	activityHandler "hotel/internal/handlers/activity"
	addonHandler "hotel/internal/handlers/addon"
	auditHandler "hotel/internal/handlers/audit"
	authHandler "hotel/internal/handlers/auth"
	billingHandler "hotel/internal/handlers/billing"
	bookingHandler "hotel/internal/handlers/booking"
	cartHandler "hotel/internal/handlers/cart"
	exportHandler "hotel/internal/handlers/export"
	folioHandler "hotel/internal/handlers/folio"
	housekeepingHandler "hotel/internal/handlers/housekeeping"
	masterDataHandler "hotel/internal/handlers/masterdata"
	offerHandler "hotel/internal/handlers/offer"
	roomHandler "hotel/internal/handlers/room"
	systemLockHandler "hotel/internal/handlers/systemlock"
	userHandler "hotel/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	mail.New,
	metrics.New,
	permissions.NewResolver,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
	middleware.NewAccessMiddleware,
	wire.Bind(new(middleware.SubjectLoader), new(userService.User)),
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
	addonRepository.New,
	addonService.New,
	offerRepository.New,
	offerService.New,
	activityRepository.New,
	activityService.New,
)

var frontOfficeDomain = wire.NewSet(
	cartRepository.New,
	cartService.New,
	bookingRepository.New,
	bookingService.New,
	folioRepository.New,
	folioService.New,
	billingRepository.New,
	billingService.New,
	housekeepingRepository.New,
	housekeepingService.New,
	systemLockRepository.New,
	systemLockService.New,
)

var administrationDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
	userRepository.New,
	userService.New,
	authService.New,
	masterDataRepository.New,
	masterDataService.New,
	exportService.New,
	accountDeletionRepository.New,
	accountDeletionService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	frontOfficeDomain,
	administrationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	addonHandler.New,
	offerHandler.New,
	activityHandler.New,
	cartHandler.New,
	bookingHandler.New,
	billingHandler.New,
	folioHandler.New,
	userHandler.New,
	masterDataHandler.New,
	housekeepingHandler.New,
	systemLockHandler.New,
	auditHandler.New,
	exportHandler.New,
	accountDeletionHandler.New,
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

func InitializeWorker() *worker.Worker {
	wire.Build(
		configurations,
		infrastructures,
		auditRepository.New,
		auditService.New,
		systemLockRepository.New,
		systemLockService.New,
		worker.New,
	)

	return &worker.Worker{}
}

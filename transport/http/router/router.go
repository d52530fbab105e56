package router

import (
	"hotel/internal/handlers/accountdeletion"
	"hotel/internal/handlers/activity"
	"hotel/internal/handlers/addon"
	"hotel/internal/handlers/audit"
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/billing"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/cart"
	"hotel/internal/handlers/export"
	"hotel/internal/handlers/folio"
	"hotel/internal/handlers/housekeeping"
	"hotel/internal/handlers/masterdata"
	"hotel/internal/handlers/offer"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/systemlock"
	"hotel/internal/handlers/user"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth            auth.Handler
	Room            room.Handler
	Addon           addon.Handler
	Offer           offer.Handler
	Activity        activity.Handler
	Cart            cart.Handler
	Booking         booking.Handler
	Billing         billing.Handler
	Folio           folio.Handler
	User            user.Handler
	MasterData      masterdata.Handler
	Housekeeping    housekeeping.Handler
	SystemLock      systemlock.Handler
	Audit           audit.Handler
	Export          export.Handler
	AccountDeletion accountdeletion.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
	Access         middleware.Access
}

func (r *Router) SetupRoutes(router chi.Router) {
	handlers := r.DomainHandlers

	router.Route("/v1", func(routerGroup chi.Router) {
		handlers.Auth.Router(routerGroup, r.Auth.Auth)
		handlers.Room.PublicRouter(routerGroup)
		handlers.Addon.PublicRouter(routerGroup)
		handlers.Offer.PublicRouter(routerGroup)
		handlers.Activity.PublicRouter(routerGroup)
		handlers.Cart.PublicRouter(routerGroup)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(r.Auth.APIKey)
			adminGroup.Use(r.Auth.Auth)

			handlers.Room.AdminRouter(adminGroup, r.Access)
			handlers.Addon.AdminRouter(adminGroup, r.Access)
			handlers.Offer.AdminRouter(adminGroup, r.Access)
			handlers.Activity.AdminRouter(adminGroup, r.Access)
			handlers.Booking.AdminRouter(adminGroup, r.Access)
			handlers.Billing.AdminRouter(adminGroup, r.Access)
			handlers.Folio.AdminRouter(adminGroup, r.Access)
			handlers.User.AdminRouter(adminGroup, r.Access)
			handlers.MasterData.AdminRouter(adminGroup, r.Access)
			handlers.Housekeeping.AdminRouter(adminGroup, r.Access)
			handlers.SystemLock.AdminRouter(adminGroup, r.Access)
			handlers.Audit.AdminRouter(adminGroup, r.Access)
			handlers.Export.AdminRouter(adminGroup, r.Access)
		})
	})

	router.Route("/api", func(routerGroup chi.Router) {
		handlers.AccountDeletion.PublicRouter(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth, access middleware.Access) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
		Access:         access,
	}
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/infras/otel"
	addonModel "hotel/internal/domains/addon/model"
	addonRepo "hotel/internal/domains/addon/repository"
	bookingModel "hotel/internal/domains/booking/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
	bookingService "hotel/internal/domains/booking/service"
	"hotel/internal/domains/cart/model"
	"hotel/internal/domains/cart/model/dto"
	"hotel/internal/domains/cart/repository"
	folioModel "hotel/internal/domains/folio/model"
	offerService "hotel/internal/domains/offer/service"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Cart interface {
	Create(ctx context.Context) (dto.CartResponse, error)
	Get(ctx context.Context, id string) (dto.CartResponse, error)
	AddRoom(ctx context.Context, id string, req dto.AddRoomRequest) (dto.CartResponse, error)
	RemoveRoom(ctx context.Context, id, lineID string) (dto.CartResponse, error)
	AddAddon(ctx context.Context, id string, req dto.AddAddonRequest) (dto.CartResponse, error)
	RemoveAddon(ctx context.Context, id, addonID string) (dto.CartResponse, error)
	SetAddonQuantity(ctx context.Context, id, addonID string, req dto.SetQuantityRequest) (dto.CartResponse, error)
	SetStay(ctx context.Context, id string, req dto.SetStayRequest) (dto.CartResponse, error)
	ApplyCoupon(ctx context.Context, id string, req dto.ApplyCouponRequest) (dto.CartResponse, error)
	RemoveCoupon(ctx context.Context, id string) (dto.CartResponse, error)
	Checkout(ctx context.Context, id string, req dto.CheckoutRequest) (bookingDto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Cart
	roomRepo  roomRepo.Room
	addonRepo addonRepo.Addon
	offers    offerService.Offer
	bookings  bookingService.Booking
	otel      otel.Otel
	now       func() time.Time
}

func New(
	repo repository.Cart,
	roomRepo roomRepo.Room,
	addonRepo addonRepo.Addon,
	offers offerService.Offer,
	bookings bookingService.Booking,
	otel otel.Otel,
) Cart {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		addonRepo: addonRepo,
		offers:    offers,
		bookings:  bookings,
		otel:      otel,
		now:       timezone.Now,
	}
}

func (s *serviceImpl) respond(cart model.Cart) dto.CartResponse {
	res := dto.CartResponse{}
	res.FromModel(cart, model.Summarize(&cart, s.now()))

	return res
}

// load drops a coupon whose end date has passed and persists that before returning.
func (s *serviceImpl) load(ctx context.Context, id string) (model.Cart, error) {
	cart, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("cart", id).Msg("failed to get cart")

		return cart, err
	}

	if !ok {
		return cart, failure.NotFound("cart not found") // nolint:wrapcheck
	}

	if cart.CouponExpired(s.now()) {
		log.Info().Str("cart", id).Str("code", cart.Coupon.Code).Msg("clearing expired coupon")

		cart.Coupon = nil
		if err := s.save(ctx, &cart); err != nil {
			return cart, err
		}
	}

	return cart, nil
}

func (s *serviceImpl) save(ctx context.Context, cart *model.Cart) error {
	cart.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, *cart); err != nil {
		log.Error().Err(err).Str("cart", cart.ID).Msg("failed to save cart")

		return err
	}

	return nil
}

func (s *serviceImpl) mutate(ctx context.Context, span, id string, change func(ctx context.Context, cart *model.Cart) error) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+span)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cart, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if err = change(ctx, &cart); err != nil {
		return res, err
	}

	if err = s.save(ctx, &cart); err != nil {
		return res, err
	}

	return s.respond(cart), nil
}

func (s *serviceImpl) Create(ctx context.Context) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cart := model.Cart{
		ID:     uuid.NewString(),
		Guests: 1,
		Rooms:  []model.RoomLine{},
		Addons: []model.AddonLine{},
	}

	if err = s.save(ctx, &cart); err != nil {
		return res, err
	}

	return s.respond(cart), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cart, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	return s.respond(cart), nil
}

func (s *serviceImpl) AddRoom(ctx context.Context, id string, req dto.AddRoomRequest) (dto.CartResponse, error) {
	return s.mutate(ctx, "AddRoom", id, func(ctx context.Context, cart *model.Cart) error {
		room, err := s.roomRepo.GetBookable(ctx, req.RoomID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get room")

			return fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		cart.Rooms = append(cart.Rooms, model.RoomLine{
			LineID:      uuid.NewString(),
			RoomID:      room.ID,
			Name:        room.Name,
			Kind:        room.Kind,
			Category:    room.Category,
			NightlyRate: room.NightlyRate,
			TaxRate:     room.TaxRate,
		})

		return nil
	})
}

func (s *serviceImpl) RemoveRoom(ctx context.Context, id, lineID string) (dto.CartResponse, error) {
	return s.mutate(ctx, "RemoveRoom", id, func(_ context.Context, cart *model.Cart) error {
		if !cart.RemoveRoom(lineID) {
			return failure.NotFound("room line not found") // nolint:wrapcheck
		}

		return nil
	})
}

func (s *serviceImpl) AddAddon(ctx context.Context, id string, req dto.AddAddonRequest) (dto.CartResponse, error) {
	return s.mutate(ctx, "AddAddon", id, func(ctx context.Context, cart *model.Cart) error {
		addon, err := s.addonRepo.Get(ctx, shared.FilterByID(req.AddonID, addonModel.FieldID, addonModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get add-on")

			return fmt.Errorf("failed to get add-on: %w", err)
		}

		if addon.ID == constant.Empty || !addon.Active {
			return failure.NotFound("add-on not found") // nolint:wrapcheck
		}

		cart.AddAddon(model.AddonLine{
			AddonID:     addon.ID,
			Name:        addon.Name,
			PricingType: addon.PricingType,
			Price:       addon.Price,
			Quantity:    req.Quantity,
		})

		return nil
	})
}

func (s *serviceImpl) RemoveAddon(ctx context.Context, id, addonID string) (dto.CartResponse, error) {
	return s.mutate(ctx, "RemoveAddon", id, func(_ context.Context, cart *model.Cart) error {
		if !cart.RemoveAddon(addonID) {
			return failure.NotFound("add-on line not found") // nolint:wrapcheck
		}

		return nil
	})
}

func (s *serviceImpl) SetAddonQuantity(ctx context.Context, id, addonID string, req dto.SetQuantityRequest) (dto.CartResponse, error) {
	return s.mutate(ctx, "SetAddonQuantity", id, func(_ context.Context, cart *model.Cart) error {
		if !cart.SetAddonQuantity(addonID, req.Quantity) {
			return failure.NotFound("add-on line not found") // nolint:wrapcheck
		}

		return nil
	})
}

func (s *serviceImpl) SetStay(ctx context.Context, id string, req dto.SetStayRequest) (dto.CartResponse, error) {
	return s.mutate(ctx, "SetStay", id, func(_ context.Context, cart *model.Cart) error {
		if !req.CheckOut.After(req.CheckIn) {
			return failure.BadRequestFromString("check-out must be after check-in") // nolint:wrapcheck
		}

		checkIn, checkOut := req.CheckIn, req.CheckOut
		cart.CheckIn = &checkIn
		cart.CheckOut = &checkOut
		cart.Guests = req.Guests

		return nil
	})
}

// ApplyCoupon replaces any applied coupon. A rejected code leaves the cart without one.
func (s *serviceImpl) ApplyCoupon(ctx context.Context, id string, req dto.ApplyCouponRequest) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyCoupon")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cart, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	result, err := s.offers.Evaluate(ctx, req.Code, cart.CouponContext(s.now()))
	if err != nil {
		log.Error().Err(err).Str("cart", id).Msg("failed to evaluate coupon")

		return res, err
	}

	if !result.Applied {
		if cart.Coupon != nil {
			cart.Coupon = nil
			if err = s.save(ctx, &cart); err != nil {
				return res, err
			}
		}

		return res, failure.Unprocessable(result.Reason) // nolint:wrapcheck
	}

	offer := result.Offer
	cart.Coupon = &offer

	if err = s.save(ctx, &cart); err != nil {
		return res, err
	}

	return s.respond(cart), nil
}

func (s *serviceImpl) RemoveCoupon(ctx context.Context, id string) (dto.CartResponse, error) {
	return s.mutate(ctx, "RemoveCoupon", id, func(_ context.Context, cart *model.Cart) error {
		cart.Coupon = nil

		return nil
	})
}

// Checkout submits the cart as a pending booking and discards it.
func (s *serviceImpl) Checkout(ctx context.Context, id string, req dto.CheckoutRequest) (res bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cart, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if len(cart.Rooms) == 0 {
		return res, failure.Unprocessable("cart has no rooms") // nolint:wrapcheck
	}

	if cart.CheckIn == nil || cart.CheckOut == nil {
		return res, failure.Unprocessable("stay dates are required") // nolint:wrapcheck
	}

	summary := model.Summarize(&cart, s.now())

	submission := bookingDto.Submission{
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
		GuestCount:    cart.GuestCount(),
		CheckIn:       *cart.CheckIn,
		CheckOut:      *cart.CheckOut,
		CompanyID:     req.CompanyID,
		TravelAgentID: req.TravelAgentID,
		Discount:      summary.Discount,
		Total:         summary.Total,
		Rooms:         make([]bookingModel.Room, len(cart.Rooms)),
		Addons:        make([]folioModel.BookingAddon, len(cart.Addons)),
	}

	if cart.Coupon != nil && summary.Discount.IsPositive() {
		code := cart.Coupon.Code
		submission.CouponCode = &code
	}

	for i, room := range cart.Rooms {
		submission.Rooms[i] = bookingModel.Room{
			RoomID:      room.RoomID,
			Name:        room.Name,
			Kind:        room.Kind,
			Category:    room.Category,
			NightlyRate: room.NightlyRate,
			TaxRate:     room.TaxRate,
		}
	}

	for i, addon := range cart.Addons {
		submission.Addons[i] = folioModel.BookingAddon{
			AddonID:     addon.AddonID,
			Name:        addon.Name,
			PricingType: addon.PricingType,
			UnitPrice:   addon.Price,
			Quantity:    addon.Quantity,
		}
	}

	res, err = s.bookings.Submit(ctx, submission)
	if err != nil {
		log.Error().Err(err).Str("cart", id).Msg("failed to submit cart")

		return res, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn().Err(err).Str("cart", id).Str("booking", res.ID).Msg("failed to discard submitted cart")
	}

	return res, nil
}

// Package builder itemises a booking into a checkout bill.
package builder

import (
	"time"

	addonModel "hotel/internal/domains/addon/model"
	"hotel/internal/domains/billing/model"
	bookingModel "hotel/internal/domains/booking/model"
	folioModel "hotel/internal/domains/folio/model"
	"hotel/shared/constant"
	"hotel/shared/money"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type Input struct {
	Booking           bookingModel.Booking
	Rooms             []bookingModel.Room
	Postings          folioModel.Postings
	ServiceTaxPercent decimal.Decimal
}

func Build(in Input) model.Statement {
	var s model.Statement

	nights := in.Booking.Nights()
	nightCount := decimal.NewFromInt(int64(nights))
	roomTax := decimal.Zero

	for _, room := range in.Rooms {
		charge := model.RoomCharge{
			RoomID: room.RoomID,
			Name:   room.Name,
			Nights: make([]model.NightCharge, nights),
			Total:  room.NightlyRate.Mul(nightCount),
			Tax:    room.TaxRate.Mul(nightCount),
		}

		for n := range nights {
			charge.Nights[n] = model.NightCharge{
				Date: nightDate(in.Booking.CheckIn, n),
				Rate: room.NightlyRate,
			}
		}

		s.RoomCharges = append(s.RoomCharges, charge)
		s.RoomTotal = s.RoomTotal.Add(charge.Total)
		roomTax = roomTax.Add(charge.Tax)
	}

	for _, order := range in.Postings.FoodOrders {
		if !order.Billable() {
			continue
		}

		s.FoodCharges = append(s.FoodCharges, model.ChargeLine{
			ID:          order.ID,
			Description: order.Description,
			Quantity:    1,
			UnitPrice:   order.Amount,
			Amount:      order.Amount,
		})
		s.FoodTotal = s.FoodTotal.Add(order.Amount)
	}

	for _, service := range in.Postings.GuestServices {
		if !service.Billable() {
			continue
		}

		s.ServiceCharges = append(s.ServiceCharges, model.ChargeLine{
			ID:          service.ID,
			Description: service.ServiceName,
			Quantity:    service.Quantity,
			UnitPrice:   service.UnitPrice,
			Amount:      service.Amount(),
		})
		s.ServiceTotal = s.ServiceTotal.Add(service.Amount())
	}

	for _, addon := range in.Postings.Addons {
		amount := addonModel.LineTotal(addon.UnitPrice, addon.PricingType, addon.Quantity, nights, in.Booking.GuestCount)

		s.AddonCharges = append(s.AddonCharges, model.ChargeLine{
			ID:          addon.ID,
			Description: addon.Name,
			Quantity:    addon.Quantity,
			UnitPrice:   addon.UnitPrice,
			Amount:      amount,
		})
		s.AddonTotal = s.AddonTotal.Add(amount)
	}

	extras := money.Sum(s.FoodTotal, s.ServiceTotal, s.AddonTotal)
	subtotal := s.RoomTotal.Add(extras)

	s.TaxTotal = money.Round(roomTax.Add(money.Percent(extras, in.ServiceTaxPercent)))
	s.Discount = money.Round(decimal.Min(money.NonNegative(in.Booking.DiscountAmount), subtotal))
	s.TotalAmount = money.Round(subtotal.Sub(s.Discount).Add(s.TaxTotal))
	s.PaidAmount = money.Round(in.Postings.Paid())
	s.Balance = s.TotalAmount.Sub(s.PaidAmount)
	s.PaymentStatus = paymentStatus(s.Balance, s.PaidAmount)

	return s
}

func paymentStatus(balance, paid decimal.Decimal) string {
	switch {
	case !balance.IsPositive():
		return model.PaymentPaid
	case paid.IsPositive():
		return model.PaymentPartial
	default:
		return model.PaymentUnpaid
	}
}

func nightDate(checkIn time.Time, night int) string {
	if checkIn.IsZero() {
		return constant.Empty
	}

	return timezone.Format(timezone.StartOfDay(checkIn).AddDate(0, 0, night), constant.DateOnlyFormat)
}

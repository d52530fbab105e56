package worker

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"hotel/infras/kafka"
	"hotel/infras/mail"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<p>Dear {{.GuestName}},</p>
<p>Thank you for staying with us. Your booking <strong>{{.Reference}}</strong> was checked out on {{.CheckedOut}}.</p>
<table>
<tr><td>Total</td><td>{{.Total}}</td></tr>
<tr><td>Paid</td><td>{{.Paid}}</td></tr>
<tr><td>Balance</td><td>{{.Balance}}</td></tr>
</table>
<p>Bill reference: {{.BillID}}</p>`))

type invoiceView struct {
	GuestName  string
	Reference  string
	CheckedOut string
	Total      string
	Paid       string
	Balance    string
	BillID     string
}

func renderInvoice(event bookingModel.CheckedOutEvent, currency string) (string, error) {
	amount := func(value string) string {
		return currency + " " + value
	}

	view := invoiceView{
		GuestName:  event.GuestName,
		Reference:  event.Reference,
		CheckedOut: event.CheckedOutAt.Format("02 Jan 2006 15:04"),
		Total:      amount(event.TotalAmount.StringFixedBank(2)),
		Paid:       amount(event.PaidAmount.StringFixedBank(2)),
		Balance:    amount(event.TotalAmount.Sub(event.PaidAmount).StringFixedBank(2)),
		BillID:     event.CheckoutBillID,
	}

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, view); err != nil {
		return constant.Empty, fmt.Errorf("failed to render invoice: %w", err)
	}

	return buf.String(), nil
}

// HandleCheckedOut mails the final invoice to the guest. Bookings without an e-mail are acknowledged and skipped.
func (w *Worker) HandleCheckedOut(ctx context.Context, message kafkaGo.Message) error {
	event, err := kafka.Decode[bookingModel.CheckedOutEvent](message)
	if err != nil {
		// a payload that cannot be decoded will never succeed; commit it
		return nil
	}

	if event.GuestEmail == constant.Empty {
		log.Info().Str("booking", event.BookingID).Msg("no guest e-mail, invoice skipped")

		return nil
	}

	body, err := renderInvoice(event, w.cfg.Billing.Currency)
	if err != nil {
		log.Error().Err(err).Str("booking", event.BookingID).Msg("failed to render invoice")

		return nil
	}

	if err := w.mail.Send(ctx, mail.Email{
		To:      []string{event.GuestEmail},
		Subject: "Your invoice for booking " + event.Reference,
		HTML:    body,
	}); err != nil {
		log.Error().Err(err).Str("booking", event.BookingID).Msg("failed to send invoice")

		return fmt.Errorf("failed to send invoice: %w", err)
	}

	log.Info().Str("booking", event.BookingID).Msg("invoice sent")

	return nil
}

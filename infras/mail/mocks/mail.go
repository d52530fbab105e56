package mocks

import (
	"context"
	"sync"

	"hotel/infras/mail"
)

// Outbox records every message instead of delivering it.
type Outbox struct {
	mu   sync.Mutex
	Sent []mail.Email
	Err  error
}

func NewOutbox() *Outbox {
	return &Outbox{}
}

func (o *Outbox) Send(_ context.Context, email mail.Email) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.Err != nil {
		return o.Err
	}

	o.Sent = append(o.Sent, email)

	return nil
}

func (o *Outbox) Count() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.Sent)
}

package mocks

import (
	"context"

	"hotel/infras/otel"
)

// Otel hands out scopes that discard everything.
type Otel struct{}

func NewOtel() otel.Otel {
	return Otel{}
}

func (Otel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (Otel) Shutdown(context.Context) error {
	return nil
}

type scope struct{}

func NewScope() otel.Scope {
	return scope{}
}

func (scope) End()                         {}
func (scope) TraceError(error)             {}
func (scope) TraceIfError(error)           {}
func (scope) AddEvent(string)              {}
func (scope) SetAttribute(string, any)     {}
func (scope) SetAttributes(map[string]any) {}

package mocks

import (
	"context"

	"arena/infras/otel"
)

// Otel hands out scopes that record nothing.
type Otel struct{}

func (o *Otel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return &Otel{}
}

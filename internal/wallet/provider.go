package wallet

import (
	"context"

	"github.com/google/uuid"
)

// Provider charges the external payment rail. Implementations settle in the
// external currency; STARS conversion happens in the service.
type Provider interface {
	Charge(ctx context.Context, userID string, units int) (reference string, err error)
}

// StubProvider approves every charge and mints a synthetic reference. It
// stands in for a real payment gateway in development environments.
type StubProvider struct{}

// NewStubProvider creates a provider that always approves
func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

// Charge implements Provider
func (p *StubProvider) Charge(ctx context.Context, userID string, units int) (string, error) {
	return uuid.NewString(), nil
}

package userservice

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockVerifier is an IdentityVerifier for tests in this and dependent packages.
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	args := m.Called(accessToken)
	identity, _ := args.Get(0).(*Identity)
	return identity, args.Error(1)
}

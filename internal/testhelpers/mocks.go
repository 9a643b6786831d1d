package testhelpers

import (
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipeprep/backend/internal/types"
)

// MockTokenValidator stands in for the auth service in middleware tests
type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*types.TokenClaims)
	return claims, args.Error(1)
}

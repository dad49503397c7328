// Package mocks provides mock implementations for testing the token parser host layers.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/tokenparser/internal/tokenparser/domain"
)

// MockTokenParserUseCase is a mock implementation of TokenParserUseCase for testing.
type MockTokenParserUseCase struct {
	mock.Mock
}

// ParseDate mocks the ParseDate method of TokenParserUseCase.
func (m *MockTokenParserUseCase) ParseDate(ctx context.Context, token string) (time.Time, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(time.Time), args.Error(1)
}

// ParseDateRange mocks the ParseDateRange method of TokenParserUseCase.
func (m *MockTokenParserUseCase) ParseDateRange(ctx context.Context, token string) (domain.DateRange, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.DateRange), args.Error(1)
}

// EvaluateDate mocks the EvaluateDate method of TokenParserUseCase.
func (m *MockTokenParserUseCase) EvaluateDate(ctx context.Context, token string) (domain.DateValue, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.DateValue), args.Error(1)
}

// GenerateString mocks the GenerateString method of TokenParserUseCase.
func (m *MockTokenParserUseCase) GenerateString(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

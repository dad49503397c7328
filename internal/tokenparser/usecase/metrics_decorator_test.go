package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/tokenparser/internal/tokenparser/domain"
	"github.com/allisson/tokenparser/internal/tokenparser/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordGeneratedString(ctx context.Context, lines, characters int) {
	m.Called(ctx, lines, characters)
}

func expectMetrics(m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", mock.Anything, "tokenparser", operation, status).Once()
	m.On("RecordDuration", mock.Anything, "tokenparser", operation, mock.AnythingOfType("time.Duration"), status).
		Once()
}

func TestNewTokenParserUseCaseWithMetrics(t *testing.T) {
	decorator := NewTokenParserUseCaseWithMetrics(&mocks.MockTokenParserUseCase{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.IsType(t, &tokenParserUseCaseWithMetrics{}, decorator)
}

func TestTokenParserUseCaseWithMetrics(t *testing.T) {
	date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	dateRange := domain.DateRange{Start: date, End: date.AddDate(0, 0, 30)}
	failure := domain.NewParseError("[BAD]", "")

	tests := []struct {
		name      string
		operation string
		status    string
		setup     func(*mocks.MockTokenParserUseCase)
		call      func(TokenParserUseCase) error
	}{
		{
			name:      "ParseDate_Success",
			operation: "parse_date",
			status:    "success",
			setup: func(m *mocks.MockTokenParserUseCase) {
				m.On("ParseDate", mock.Anything, "[TODAY]").Return(date, nil).Once()
			},
			call: func(uc TokenParserUseCase) error {
				got, err := uc.ParseDate(context.Background(), "[TODAY]")
				if err == nil && !got.Equal(date) {
					return errors.New("unexpected date")
				}
				return err
			},
		},
		{
			name:      "ParseDate_Rejected",
			operation: "parse_date",
			status:    "rejected",
			setup: func(m *mocks.MockTokenParserUseCase) {
				m.On("ParseDate", mock.Anything, "[BAD]").Return(time.Time{}, failure).Once()
			},
			call: func(uc TokenParserUseCase) error {
				_, err := uc.ParseDate(context.Background(), "[BAD]")
				return err
			},
		},
		{
			name:      "ParseDateRange_Success",
			operation: "parse_date_range",
			status:    "success",
			setup: func(m *mocks.MockTokenParserUseCase) {
				m.On("ParseDateRange", mock.Anything, "[TODAY<->TODAY+30DAY]").Return(dateRange, nil).Once()
			},
			call: func(uc TokenParserUseCase) error {
				_, err := uc.ParseDateRange(context.Background(), "[TODAY<->TODAY+30DAY]")
				return err
			},
		},
		{
			name:      "EvaluateDate_Rejected",
			operation: "evaluate_date",
			status:    "rejected",
			setup: func(m *mocks.MockTokenParserUseCase) {
				m.On("EvaluateDate", mock.Anything, "[BAD]").Return(domain.DateValue{}, failure).Once()
			},
			call: func(uc TokenParserUseCase) error {
				_, err := uc.EvaluateDate(context.Background(), "[BAD]")
				return err
			},
		},
		{
			name:      "ParseDateRange_Canceled",
			operation: "parse_date_range",
			status:    "error",
			setup: func(m *mocks.MockTokenParserUseCase) {
				m.On("ParseDateRange", mock.Anything, "[TODAY<->TODAY+30DAY]").
					Return(domain.DateRange{}, context.Canceled).Once()
			},
			call: func(uc TokenParserUseCase) error {
				_, err := uc.ParseDateRange(context.Background(), "[TODAY<->TODAY+30DAY]")
				return err
			},
		},
		{
			name:      "GenerateString_Rejected",
			operation: "generate_string",
			status:    "rejected",
			setup: func(m *mocks.MockTokenParserUseCase) {
				m.On("GenerateString", mock.Anything, "[ALPHA]").Return("", failure).Once()
			},
			call: func(uc TokenParserUseCase) error {
				_, err := uc.GenerateString(context.Background(), "[ALPHA]")
				return err
			},
		},
		{
			name:      "GenerateString_Success",
			operation: "generate_string",
			status:    "success",
			setup: func(m *mocks.MockTokenParserUseCase) {
				m.On("GenerateString", mock.Anything, "[ALPHA-3]").Return("abc", nil).Once()
			},
			call: func(uc TokenParserUseCase) error {
				_, err := uc.GenerateString(context.Background(), "[ALPHA-3]")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := &mocks.MockTokenParserUseCase{}
			mockMetrics := &mockBusinessMetrics{}
			tt.setup(mockUseCase)
			expectMetrics(mockMetrics, tt.operation, tt.status)
			if tt.operation == "generate_string" && tt.status == "success" {
				mockMetrics.On("RecordGeneratedString", mock.Anything, 1, 3).Once()
			}

			err := tt.call(NewTokenParserUseCaseWithMetrics(mockUseCase, mockMetrics))
			if tt.status == "success" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}

			mockUseCase.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestTokenParserUseCaseWithMetrics_GeneratedStringSize(t *testing.T) {
	token := "[ALPHA-4-LINES-3]"
	value := "abcd" + domain.LineSeparator + "efgh" + domain.LineSeparator + "ijkl"

	mockUseCase := &mocks.MockTokenParserUseCase{}
	mockUseCase.On("GenerateString", mock.Anything, token).Return(value, nil).Once()

	mockMetrics := &mockBusinessMetrics{}
	expectMetrics(mockMetrics, "generate_string", "success")
	mockMetrics.On("RecordGeneratedString", mock.Anything, 3, 12).Once()

	got, err := NewTokenParserUseCaseWithMetrics(mockUseCase, mockMetrics).GenerateString(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, value, got)

	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

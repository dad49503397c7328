package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/tokenparser/internal/tokenparser/domain"
)

func TestMapDateValueToResponse(t *testing.T) {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	t.Run("single date", func(t *testing.T) {
		resp := MapDateValueToResponse(domain.DateValue{Date: start})

		body, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, `{"ParsedToken":"2025-03-01 00:00:00Z"}`, string(body))
	})

	t.Run("date range", func(t *testing.T) {
		resp := MapDateValueToResponse(domain.DateValue{
			Date:  start,
			Range: &domain.DateRange{Start: start, End: end},
		})

		assert.Equal(t, "2025-03-01 00:00:00Z <-> 2025-03-31 00:00:00Z", resp.ParsedToken)
		assert.Equal(t, "2025-03-01 00:00:00Z", resp.Start)
		assert.Equal(t, "2025-03-31 00:00:00Z", resp.End)
	})
}

func TestMapDateRangeToResponse(t *testing.T) {
	resp := MapDateRangeToResponse(domain.DateRange{
		Start: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
	})

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Start":"2024-02-01 00:00:00Z","End":"2024-02-29 00:00:00Z"}`, string(body))
}

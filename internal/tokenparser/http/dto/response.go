package dto

import (
	"github.com/allisson/tokenparser/internal/tokenparser/domain"
)

// AliveResponse is the liveness body kept for existing API clients.
type AliveResponse struct {
	Status string `json:"Status"`
}

// ParsedTokenResponse is returned by the parse endpoints. Start and End are only set
// when a date range was evaluated.
type ParsedTokenResponse struct {
	ParsedToken string `json:"ParsedToken"`
	Start       string `json:"Start,omitempty"`
	End         string `json:"End,omitempty"`
}

// DateRangeResponse is returned by the date range endpoint.
type DateRangeResponse struct {
	Start string `json:"Start"`
	End   string `json:"End"`
}

// MapDateValueToResponse renders an evaluated date token using the transport date format.
func MapDateValueToResponse(value domain.DateValue) ParsedTokenResponse {
	if !value.IsRange() {
		return ParsedTokenResponse{ParsedToken: domain.FormatDateUTC(value.Date)}
	}

	start := domain.FormatDateUTC(value.Range.Start)
	end := domain.FormatDateUTC(value.Range.End)
	return ParsedTokenResponse{
		ParsedToken: start + " " + domain.RangeSeparator + " " + end,
		Start:       start,
		End:         end,
	}
}

// MapDateRangeToResponse renders a date range using the transport date format.
func MapDateRangeToResponse(dateRange domain.DateRange) DateRangeResponse {
	return DateRangeResponse{
		Start: domain.FormatDateUTC(dateRange.Start),
		End:   domain.FormatDateUTC(dateRange.End),
	}
}

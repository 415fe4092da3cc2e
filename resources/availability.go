package resources

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	tablebridge "github.com/tablefront/table-bridge"
)

// Slot is one bookable time for a party size.
type Slot struct {
	Time      string `json:"time"`
	PartySize int    `json:"party_size"`
	TableID   string `json:"table_id"`
}

// AvailabilityService exposes the availability-check endpoints.
type AvailabilityService struct {
	client *tablebridge.Client
}

func NewAvailabilityService(c *tablebridge.Client) *AvailabilityService {
	return &AvailabilityService{client: c}
}

// AvailabilityQuery asks for bookable slots at a venue around a time.
type AvailabilityQuery struct {
	VenueID   string
	Date      time.Time
	PartySize int
}

func (q AvailabilityQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.VenueID, validation.Required),
		validation.Field(&q.Date, validation.Required),
		validation.Field(&q.PartySize, validation.Required, validation.Min(1)),
	)
}

// ListSlots returns the bookable slots matching the query.
func (s *AvailabilityService) ListSlots(ctx context.Context, query AvailabilityQuery) ([]Slot, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid availability query: %w", err)
	}

	p := tablebridge.NewParams()
	p.Set("venue_id", query.VenueID)
	p.SetTime("date", tablebridge.Time(query.Date))
	p.SetInt("party_size", tablebridge.Int(query.PartySize))

	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/availability",
		Query:  p.Values,
	})
	if err != nil {
		return nil, err
	}
	var env struct {
		Slots []Slot `json:"slots"`
	}
	if err := decode(resp, &env); err != nil {
		return nil, err
	}
	return env.Slots, nil
}

// Check reports whether any slot exists for the query.
func (s *AvailabilityService) Check(ctx context.Context, query AvailabilityQuery) (bool, error) {
	slots, err := s.ListSlots(ctx, query)
	if err != nil {
		return false, err
	}
	return len(slots) > 0, nil
}

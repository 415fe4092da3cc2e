package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	tablebridge "github.com/tablefront/table-bridge"
)

// WaitlistEntry is one walk-in waiting for a table. Entries expire
// server-side; operations against an expired entry return
// tablebridge.ErrGone.
type WaitlistEntry struct {
	ID            string  `json:"id"`
	VenueID       string  `json:"venue_id"`
	GuestID       string  `json:"guest_id"`
	PartySize     int     `json:"party_size"`
	QuotedMinutes *int    `json:"quoted_minutes,omitempty"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	Reference     string  `json:"reference"`
	Updated       string  `json:"updated"`
}

// WaitlistService exposes the wait-list endpoints.
type WaitlistService struct {
	client *tablebridge.Client
}

func NewWaitlistService(c *tablebridge.Client) *WaitlistService {
	return &WaitlistService{client: c}
}

// AddWaitlistParams are the writable fields of a new wait-list entry.
type AddWaitlistParams struct {
	VenueID       string  `json:"venue_id"`
	GuestID       string  `json:"guest_id"`
	PartySize     int     `json:"party_size"`
	QuotedMinutes *int    `json:"quoted_minutes,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Reference     string  `json:"reference,omitempty"`
}

func (p AddWaitlistParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.VenueID, validation.Required),
		validation.Field(&p.GuestID, validation.Required),
		validation.Field(&p.PartySize, validation.Required, validation.Min(1)),
		validation.Field(&p.QuotedMinutes, validation.Min(0)),
	)
}

// UpdateWaitlistParams are the mutable fields of an entry.
type UpdateWaitlistParams struct {
	PartySize     *int    `json:"party_size,omitempty"`
	QuotedMinutes *int    `json:"quoted_minutes,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func (p UpdateWaitlistParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.PartySize, validation.Min(1)),
		validation.Field(&p.QuotedMinutes, validation.Min(0)),
	)
}

// Get fetches one wait-list entry by id.
func (s *WaitlistService) Get(ctx context.Context, entryID string) (*WaitlistEntry, error) {
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/waitlist/" + url.PathEscape(entryID),
	})
	if err != nil {
		return nil, err
	}
	var e WaitlistEntry
	if err := decode(resp, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Add puts a party on the wait list. As with reservations, Reference is
// generated when the caller leaves it empty.
func (s *WaitlistService) Add(ctx context.Context, params AddWaitlistParams) (*WaitlistEntry, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid waitlist params: %w", err)
	}
	if params.Reference == "" {
		params.Reference = uuid.NewString()
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "POST",
		Path:   "/v1/waitlist",
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	var e WaitlistEntry
	if err := decode(resp, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Update patches a wait-list entry.
func (s *WaitlistService) Update(ctx context.Context, entryID string, params UpdateWaitlistParams) (*WaitlistEntry, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid waitlist params: %w", err)
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "PATCH",
		Path:   "/v1/waitlist/" + url.PathEscape(entryID),
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	var e WaitlistEntry
	if err := decode(resp, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Notify tells the venue to page the waiting party.
func (s *WaitlistService) Notify(ctx context.Context, entryID string) (*WaitlistEntry, error) {
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "POST",
		Path:   "/v1/waitlist/" + url.PathEscape(entryID) + "/notify",
	})
	if err != nil {
		return nil, err
	}
	var e WaitlistEntry
	if err := decode(resp, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Remove takes an entry off the wait list.
func (s *WaitlistService) Remove(ctx context.Context, entryID string) error {
	_, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "DELETE",
		Path:   "/v1/waitlist/" + url.PathEscape(entryID),
	})
	return err
}

// ListWaitlistOptions scope and bound a wait-list walk.
type ListWaitlistOptions struct {
	VenueID       string
	UpdatedAfter  time.Time
	UpdatedBefore time.Time
	PageLimit     int
}

func (o ListWaitlistOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.VenueID, validation.Required),
	)
}

// The wait-list collection reports continuation as entries/has_next/as_of.
type waitlistPageEnvelope struct {
	Entries []WaitlistEntry `json:"entries"`
	HasNext *bool           `json:"has_next"`
	AsOf    string          `json:"as_of"`
}

// List fetches a single page of wait-list entries for a venue.
func (s *WaitlistService) List(ctx context.Context, venueID string, cursor tablebridge.Cursor) (tablebridge.Page[WaitlistEntry], error) {
	p := tablebridge.NewParams()
	p.Set("venue_id", venueID)
	windowParams(p, cursor)

	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/waitlist",
		Query:  p.Values,
	})
	if err != nil {
		return tablebridge.Page[WaitlistEntry]{}, err
	}
	var env waitlistPageEnvelope
	if err := decode(resp, &env); err != nil {
		return tablebridge.Page[WaitlistEntry]{}, err
	}
	return toPage(env.Entries, env.HasNext, env.AsOf)
}

// ListAll walks every page of wait-list entries updated inside the window.
func (s *WaitlistService) ListAll(ctx context.Context, opts ListWaitlistOptions) ([]WaitlistEntry, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid list options: %w", err)
	}
	cursor := tablebridge.Cursor{
		WindowStart:    opts.UpdatedAfter,
		WindowEnd:      opts.UpdatedBefore,
		RemainingPages: s.client.PageBudget(opts.PageLimit),
	}
	fetch := func(ctx context.Context, cur tablebridge.Cursor) (tablebridge.Page[WaitlistEntry], error) {
		return s.List(ctx, opts.VenueID, cur)
	}
	return tablebridge.FetchAllPages(ctx, fetch, cursor)
}

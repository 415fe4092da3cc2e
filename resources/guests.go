package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	tablebridge "github.com/tablefront/table-bridge"
)

// Guest is one guest record as returned by the API.
type Guest struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     *string  `json:"email,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Updated   string   `json:"updated"`
}

// GuestService exposes the guest-record endpoints.
type GuestService struct {
	client *tablebridge.Client
}

func NewGuestService(c *tablebridge.Client) *GuestService {
	return &GuestService{client: c}
}

// CreateGuestParams are the writable fields of a new guest record.
// Optional fields are pointers and are omitted from the wire when nil.
type CreateGuestParams struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     *string  `json:"email,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

func (p CreateGuestParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required),
		validation.Field(&p.LastName, validation.Required),
		validation.Field(&p.Email, is.Email),
	)
}

// UpdateGuestParams are the fields of a guest record that may change.
// Every field is optional; only the set ones are sent.
type UpdateGuestParams struct {
	FirstName *string  `json:"first_name,omitempty"`
	LastName  *string  `json:"last_name,omitempty"`
	Email     *string  `json:"email,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

func (p UpdateGuestParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, is.Email),
	)
}

// Get fetches one guest record by id.
func (s *GuestService) Get(ctx context.Context, guestID string) (*Guest, error) {
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/guests/" + url.PathEscape(guestID),
	})
	if err != nil {
		return nil, err
	}
	var g Guest
	if err := decode(resp, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Create adds a guest record and returns it as stored.
func (s *GuestService) Create(ctx context.Context, params CreateGuestParams) (*Guest, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid guest params: %w", err)
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "POST",
		Path:   "/v1/guests",
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	var g Guest
	if err := decode(resp, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Update patches an existing guest record.
func (s *GuestService) Update(ctx context.Context, guestID string, params UpdateGuestParams) (*Guest, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid guest params: %w", err)
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "PATCH",
		Path:   "/v1/guests/" + url.PathEscape(guestID),
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	var g Guest
	if err := decode(resp, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Delete removes a guest record.
func (s *GuestService) Delete(ctx context.Context, guestID string) error {
	_, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "DELETE",
		Path:   "/v1/guests/" + url.PathEscape(guestID),
	})
	return err
}

// Search returns guests matching a free-text query, one page at a time
// driven by the caller-supplied cursor.
func (s *GuestService) Search(ctx context.Context, query string, cursor tablebridge.Cursor) (tablebridge.Page[Guest], error) {
	p := tablebridge.NewParams()
	p.Set("q", query)
	windowParams(p, cursor)

	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/guests/search",
		Query:  p.Values,
	})
	if err != nil {
		return tablebridge.Page[Guest]{}, err
	}
	var env guestPageEnvelope
	if err := decode(resp, &env); err != nil {
		return tablebridge.Page[Guest]{}, err
	}
	return toPage(env.Results, env.HasMore, env.Cutoff)
}

// ListGuestsOptions bound the update window and page budget for ListAll.
type ListGuestsOptions struct {
	UpdatedAfter  time.Time
	UpdatedBefore time.Time
	// PageLimit caps the number of pages fetched;
	// tablebridge.UnboundedPages means no caller-imposed limit.
	PageLimit int
}

// The guests collection reports continuation as results/has_more/cutoff.
type guestPageEnvelope struct {
	Results []Guest `json:"results"`
	HasMore *bool   `json:"has_more"`
	Cutoff  string  `json:"cutoff"`
}

// List fetches the single page addressed by cursor, letting the caller
// drive further pages.
func (s *GuestService) List(ctx context.Context, cursor tablebridge.Cursor) (tablebridge.Page[Guest], error) {
	p := tablebridge.NewParams()
	windowParams(p, cursor)

	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/guests",
		Query:  p.Values,
	})
	if err != nil {
		return tablebridge.Page[Guest]{}, err
	}
	var env guestPageEnvelope
	if err := decode(resp, &env); err != nil {
		return tablebridge.Page[Guest]{}, err
	}
	return toPage(env.Results, env.HasMore, env.Cutoff)
}

// ListAll walks every page of guest records updated inside the window.
func (s *GuestService) ListAll(ctx context.Context, opts ListGuestsOptions) ([]Guest, error) {
	cursor := tablebridge.Cursor{
		WindowStart:    opts.UpdatedAfter,
		WindowEnd:      opts.UpdatedBefore,
		RemainingPages: s.client.PageBudget(opts.PageLimit),
	}
	return tablebridge.FetchAllPages(ctx, s.List, cursor)
}

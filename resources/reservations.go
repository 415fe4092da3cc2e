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

// Reservation is one booking as returned by the API.
type Reservation struct {
	ID          string  `json:"id"`
	VenueID     string  `json:"venue_id"`
	GuestID     string  `json:"guest_id"`
	ArrivalTime string  `json:"arrival_time"`
	PartySize   int     `json:"party_size"`
	Status      string  `json:"status"`
	TableID     *string `json:"table_id,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Reference   string  `json:"reference"`
	Updated     string  `json:"updated"`
}

// Reservation lifecycle statuses reported by the API.
const (
	ReservationBooked   = "booked"
	ReservationArrived  = "arrived"
	ReservationSeated   = "seated"
	ReservationFinished = "finished"
	ReservationCanceled = "canceled"
)

// ReservationService exposes the booking endpoints.
type ReservationService struct {
	client *tablebridge.Client
}

func NewReservationService(c *tablebridge.Client) *ReservationService {
	return &ReservationService{client: c}
}

// CreateReservationParams are the writable fields of a new booking.
// Reference is a caller-chosen idempotency handle; when empty, one is
// generated so a duplicated create can be detected server-side.
type CreateReservationParams struct {
	VenueID     string    `json:"venue_id"`
	GuestID     string    `json:"guest_id"`
	ArrivalTime time.Time `json:"arrival_time"`
	PartySize   int       `json:"party_size"`
	TableID     *string   `json:"table_id,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	Reference   string    `json:"reference,omitempty"`
}

func (p CreateReservationParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.VenueID, validation.Required),
		validation.Field(&p.GuestID, validation.Required),
		validation.Field(&p.ArrivalTime, validation.Required),
		validation.Field(&p.PartySize, validation.Required, validation.Min(1)),
	)
}

// UpdateReservationParams are the booking fields that may change after
// creation. All optional; nil fields stay untouched server-side.
type UpdateReservationParams struct {
	ArrivalTime *time.Time `json:"arrival_time,omitempty"`
	PartySize   *int       `json:"party_size,omitempty"`
	TableID     *string    `json:"table_id,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

func (p UpdateReservationParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.PartySize, validation.Min(1)),
	)
}

// Get fetches one reservation by id.
func (s *ReservationService) Get(ctx context.Context, reservationID string) (*Reservation, error) {
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/reservations/" + url.PathEscape(reservationID),
	})
	if err != nil {
		return nil, err
	}
	var r Reservation
	if err := decode(resp, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Create books a reservation.
func (s *ReservationService) Create(ctx context.Context, params CreateReservationParams) (*Reservation, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reservation params: %w", err)
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
		Path:   "/v1/reservations",
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	var r Reservation
	if err := decode(resp, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Update patches a reservation.
func (s *ReservationService) Update(ctx context.Context, reservationID string, params UpdateReservationParams) (*Reservation, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reservation params: %w", err)
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "PATCH",
		Path:   "/v1/reservations/" + url.PathEscape(reservationID),
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	var r Reservation
	if err := decode(resp, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Cancel cancels a reservation. A visit that has already arrived or been
// seated is rejected with tablebridge.ErrConflict.
func (s *ReservationService) Cancel(ctx context.Context, reservationID string) error {
	_, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "DELETE",
		Path:   "/v1/reservations/" + url.PathEscape(reservationID),
	})
	return err
}

// MarkArrived transitions a booking to arrived.
func (s *ReservationService) MarkArrived(ctx context.Context, reservationID string) (*Reservation, error) {
	return s.transition(ctx, reservationID, "arrive")
}

// MarkSeated transitions a booking to seated, optionally at a table.
func (s *ReservationService) MarkSeated(ctx context.Context, reservationID string, tableID *string) (*Reservation, error) {
	if tableID == nil {
		return s.transition(ctx, reservationID, "seat")
	}
	body, err := json.Marshal(map[string]string{"table_id": *tableID})
	if err != nil {
		return nil, err
	}
	return s.transitionWithBody(ctx, reservationID, "seat", body)
}

// MarkFinished transitions a booking to finished.
func (s *ReservationService) MarkFinished(ctx context.Context, reservationID string) (*Reservation, error) {
	return s.transition(ctx, reservationID, "finish")
}

func (s *ReservationService) transition(ctx context.Context, reservationID, action string) (*Reservation, error) {
	return s.transitionWithBody(ctx, reservationID, action, nil)
}

func (s *ReservationService) transitionWithBody(ctx context.Context, reservationID, action string, body []byte) (*Reservation, error) {
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "POST",
		Path:   "/v1/reservations/" + url.PathEscape(reservationID) + "/" + action,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	var r Reservation
	if err := decode(resp, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListReservationsOptions scope and bound a reservation walk.
type ListReservationsOptions struct {
	VenueID       string
	UpdatedAfter  time.Time
	UpdatedBefore time.Time
	PageLimit     int
}

func (o ListReservationsOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.VenueID, validation.Required),
	)
}

// The reservations collection reports continuation as
// reservations/more_exists/last_updated.
type reservationPageEnvelope struct {
	Reservations []Reservation `json:"reservations"`
	MoreExists   *bool         `json:"more_exists"`
	LastUpdated  string        `json:"last_updated"`
}

// List fetches a single page of reservations for a venue.
func (s *ReservationService) List(ctx context.Context, venueID string, cursor tablebridge.Cursor) (tablebridge.Page[Reservation], error) {
	p := tablebridge.NewParams()
	p.Set("venue_id", venueID)
	windowParams(p, cursor)

	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/reservations",
		Query:  p.Values,
	})
	if err != nil {
		return tablebridge.Page[Reservation]{}, err
	}
	var env reservationPageEnvelope
	if err := decode(resp, &env); err != nil {
		return tablebridge.Page[Reservation]{}, err
	}
	return toPage(env.Reservations, env.MoreExists, env.LastUpdated)
}

// ListAll walks every page of reservations updated inside the window.
func (s *ReservationService) ListAll(ctx context.Context, opts ListReservationsOptions) ([]Reservation, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid list options: %w", err)
	}
	cursor := tablebridge.Cursor{
		WindowStart:    opts.UpdatedAfter,
		WindowEnd:      opts.UpdatedBefore,
		RemainingPages: s.client.PageBudget(opts.PageLimit),
	}
	fetch := func(ctx context.Context, cur tablebridge.Cursor) (tablebridge.Page[Reservation], error) {
		return s.List(ctx, opts.VenueID, cur)
	}
	return tablebridge.FetchAllPages(ctx, fetch, cursor)
}

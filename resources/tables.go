package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	tablebridge "github.com/tablefront/table-bridge"
)

// Table is one seatable table in a venue's floor plan.
type Table struct {
	ID       string `json:"id"`
	VenueID  string `json:"venue_id"`
	Name     string `json:"name"`
	Seats    int    `json:"seats"`
	Section  string `json:"section"`
	Blocked  bool   `json:"blocked"`
	Updated  string `json:"updated"`
}

// TableEvent records a state change at a table: a seating, a clear, a
// block, and so on. Events are the venue's audit trail and are consumed as
// a time-ordered paginated collection.
type TableEvent struct {
	ID         string  `json:"id"`
	TableID    string  `json:"table_id"`
	VenueID    string  `json:"venue_id"`
	Kind       string  `json:"kind"`
	VisitID    *string `json:"visit_id,omitempty"`
	OccurredAt string  `json:"occurred_at"`
	Updated    string  `json:"updated"`
}

// TableService exposes the floor-plan and table-event endpoints.
type TableService struct {
	client *tablebridge.Client
}

func NewTableService(c *tablebridge.Client) *TableService {
	return &TableService{client: c}
}

// Get fetches one table by id.
func (s *TableService) Get(ctx context.Context, tableID string) (*Table, error) {
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/tables/" + url.PathEscape(tableID),
	})
	if err != nil {
		return nil, err
	}
	var t Table
	if err := decode(resp, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTables returns a venue's full floor plan. The collection is small
// and unpaginated.
func (s *TableService) ListTables(ctx context.Context, venueID string) ([]Table, error) {
	p := tablebridge.NewParams()
	p.Set("venue_id", venueID)

	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/tables",
		Query:  p.Values,
	})
	if err != nil {
		return nil, err
	}
	var env struct {
		Tables []Table `json:"tables"`
	}
	if err := decode(resp, &env); err != nil {
		return nil, err
	}
	return env.Tables, nil
}

// Block takes a table out of service until unblocked.
func (s *TableService) Block(ctx context.Context, tableID string, reason *string) (*Table, error) {
	var body []byte
	if reason != nil {
		var err error
		body, err = json.Marshal(map[string]string{"reason": *reason})
		if err != nil {
			return nil, err
		}
	}
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "POST",
		Path:   "/v1/tables/" + url.PathEscape(tableID) + "/block",
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	var t Table
	if err := decode(resp, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Unblock returns a blocked table to service.
func (s *TableService) Unblock(ctx context.Context, tableID string) (*Table, error) {
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "POST",
		Path:   "/v1/tables/" + url.PathEscape(tableID) + "/unblock",
	})
	if err != nil {
		return nil, err
	}
	var t Table
	if err := decode(resp, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTableEventsOptions scope and bound a table-event walk.
type ListTableEventsOptions struct {
	VenueID       string
	UpdatedAfter  time.Time
	UpdatedBefore time.Time
	PageLimit     int
}

func (o ListTableEventsOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.VenueID, validation.Required),
	)
}

// The events collection reports continuation as events/more/watermark.
type tableEventPageEnvelope struct {
	Events    []TableEvent `json:"events"`
	More      *bool        `json:"more"`
	Watermark string       `json:"watermark"`
}

// ListEvents fetches a single page of table events for a venue.
func (s *TableService) ListEvents(ctx context.Context, venueID string, cursor tablebridge.Cursor) (tablebridge.Page[TableEvent], error) {
	p := tablebridge.NewParams()
	p.Set("venue_id", venueID)
	windowParams(p, cursor)

	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/tables/events",
		Query:  p.Values,
	})
	if err != nil {
		return tablebridge.Page[TableEvent]{}, err
	}
	var env tableEventPageEnvelope
	if err := decode(resp, &env); err != nil {
		return tablebridge.Page[TableEvent]{}, err
	}
	return toPage(env.Events, env.More, env.Watermark)
}

// ListAllEvents walks every page of table events updated inside the window.
func (s *TableService) ListAllEvents(ctx context.Context, opts ListTableEventsOptions) ([]TableEvent, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid list options: %w", err)
	}
	cursor := tablebridge.Cursor{
		WindowStart:    opts.UpdatedAfter,
		WindowEnd:      opts.UpdatedBefore,
		RemainingPages: s.client.PageBudget(opts.PageLimit),
	}
	fetch := func(ctx context.Context, cur tablebridge.Cursor) (tablebridge.Page[TableEvent], error) {
		return s.ListEvents(ctx, opts.VenueID, cur)
	}
	return tablebridge.FetchAllPages(ctx, fetch, cursor)
}

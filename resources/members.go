package resources

import (
	"context"
	"net/url"
	"time"

	tablebridge "github.com/tablefront/table-bridge"
)

// TeamMember is one staff account with access to a venue.
type TeamMember struct {
	ID      string  `json:"id"`
	VenueID string  `json:"venue_id"`
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Role    string  `json:"role"`
	Active  bool    `json:"active"`
	Updated string  `json:"updated"`
}

// TeamMemberService exposes the staff endpoints. Staff records are
// read-only through this API; they are managed in the platform's own
// console.
type TeamMemberService struct {
	client *tablebridge.Client
}

func NewTeamMemberService(c *tablebridge.Client) *TeamMemberService {
	return &TeamMemberService{client: c}
}

// Get fetches one team member by id.
func (s *TeamMemberService) Get(ctx context.Context, memberID string) (*TeamMember, error) {
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/members/" + url.PathEscape(memberID),
	})
	if err != nil {
		return nil, err
	}
	var m TeamMember
	if err := decode(resp, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListTeamMembersOptions bound a staff walk.
type ListTeamMembersOptions struct {
	UpdatedAfter  time.Time
	UpdatedBefore time.Time
	PageLimit     int
}

type memberPageEnvelope struct {
	Members []TeamMember `json:"members"`
	HasMore *bool        `json:"has_more"`
	Cutoff  string       `json:"cutoff"`
}

// List fetches a single page of team members.
func (s *TeamMemberService) List(ctx context.Context, cursor tablebridge.Cursor) (tablebridge.Page[TeamMember], error) {
	p := tablebridge.NewParams()
	windowParams(p, cursor)

	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/members",
		Query:  p.Values,
	})
	if err != nil {
		return tablebridge.Page[TeamMember]{}, err
	}
	var env memberPageEnvelope
	if err := decode(resp, &env); err != nil {
		return tablebridge.Page[TeamMember]{}, err
	}
	return toPage(env.Members, env.HasMore, env.Cutoff)
}

// ListAll walks every page of team members updated inside the window.
func (s *TeamMemberService) ListAll(ctx context.Context, opts ListTeamMembersOptions) ([]TeamMember, error) {
	cursor := tablebridge.Cursor{
		WindowStart:    opts.UpdatedAfter,
		WindowEnd:      opts.UpdatedBefore,
		RemainingPages: s.client.PageBudget(opts.PageLimit),
	}
	return tablebridge.FetchAllPages(ctx, s.List, cursor)
}

package resources

import (
	"context"
	"net/url"

	tablebridge "github.com/tablefront/table-bridge"
)

// Venue is one restaurant location covered by the credential.
type Venue struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Timezone string  `json:"timezone"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Updated  string  `json:"updated"`
}

// VenueService exposes the venue endpoints. The venue set for a credential
// is small and returned whole, not paginated.
type VenueService struct {
	client *tablebridge.Client
}

func NewVenueService(c *tablebridge.Client) *VenueService {
	return &VenueService{client: c}
}

// Get fetches one venue by id.
func (s *VenueService) Get(ctx context.Context, venueID string) (*Venue, error) {
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/venues/" + url.PathEscape(venueID),
	})
	if err != nil {
		return nil, err
	}
	var v Venue
	if err := decode(resp, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns every venue the credential can see.
func (s *VenueService) List(ctx context.Context) ([]Venue, error) {
	resp, err := s.client.Do(ctx, &tablebridge.Request{
		Method: "GET",
		Path:   "/v1/venues",
	})
	if err != nil {
		return nil, err
	}
	var env struct {
		Venues []Venue `json:"venues"`
	}
	if err := decode(resp, &env); err != nil {
		return nil, err
	}
	return env.Venues, nil
}

package resources_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablefront/table-bridge/mock"
	"github.com/tablefront/table-bridge/resources"
)

func TestAvailabilityCheck(t *testing.T) {
	transport := &mock.MockTransport{}
	transport.EnqueueJSON(200, `{"slots":[{"time":"2026-08-02T19:00:00Z","party_size":2,"table_id":"t1"}]}`)
	transport.EnqueueJSON(200, `{"slots":[]}`)
	svc := resources.NewAvailabilityService(newTestClient(t, transport))

	query := resources.AvailabilityQuery{
		VenueID:   "v1",
		Date:      time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
		PartySize: 2,
	}

	open, err := svc.Check(context.Background(), query)
	require.NoError(t, err)
	assert.True(t, open)

	open, err = svc.Check(context.Background(), query)
	require.NoError(t, err)
	assert.False(t, open)

	req := transport.Requests()[0]
	assert.Equal(t, "v1", req.Query.Get("venue_id"))
	assert.Equal(t, "2", req.Query.Get("party_size"))
}

func TestAvailabilityQueryValidation(t *testing.T) {
	svc := resources.NewAvailabilityService(newTestClient(t, &mock.MockTransport{}))

	_, err := svc.ListSlots(context.Background(), resources.AvailabilityQuery{VenueID: "v1"})
	assert.Error(t, err)
}

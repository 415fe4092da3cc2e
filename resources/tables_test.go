package resources_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tablebridge "github.com/tablefront/table-bridge"
	"github.com/tablefront/table-bridge/mock"
	"github.com/tablefront/table-bridge/resources"
)

func TestListTables(t *testing.T) {
	transport := &mock.MockTransport{}
	transport.EnqueueJSON(200, `{"tables":[{"id":"t1","name":"Window 1","seats":4}]}`)
	svc := resources.NewTableService(newTestClient(t, transport))

	tables, err := svc.ListTables(context.Background(), "v1")
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, 4, tables[0].Seats)
	assert.Equal(t, "v1", transport.Requests()[0].Query.Get("venue_id"))
}

func TestListAllEventsEpochWatermark(t *testing.T) {
	// The events endpoint reports its watermark as epoch seconds; the
	// cutoff parser normalizes it before the next window is built.
	transport := &mock.MockTransport{}
	transport.EnqueueJSON(200, `{
		"events":[{"id":"e1","kind":"seated","updated":"2026-08-01T12:00:00Z"}],
		"more":true,
		"watermark":"1785585600"
	}`)
	transport.EnqueueJSON(200, `{"events":[],"more":false,"watermark":"1785585600"}`)
	svc := resources.NewTableService(newTestClient(t, transport))

	events, err := svc.ListAllEvents(context.Background(), resources.ListTableEventsOptions{VenueID: "v1"})
	require.NoError(t, err)
	assert.Len(t, events, 1)

	reqs := transport.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "2026-08-01T12:00:00Z", reqs[1].Query.Get("updated_after"))
}

func TestBlockTableSendsReason(t *testing.T) {
	transport := &mock.MockTransport{}
	transport.EnqueueJSON(200, `{"id":"t1","blocked":true}`)
	svc := resources.NewTableService(newTestClient(t, transport))

	table, err := svc.Block(context.Background(), "t1", tablebridge.String("private event"))
	require.NoError(t, err)
	assert.True(t, table.Blocked)
	assert.JSONEq(t, `{"reason":"private event"}`, string(transport.Requests()[0].Body))
}

// paginator.go
// ------------
// Cursor engine for the API's time-windowed collections. Records are
// ordered by last-update timestamp; each page reports the timestamp of its
// final record (the cutoff) and whether more data remains. The engine
// advances the window start to each cutoff and loops until the server is
// exhausted or the page budget runs out. Cutoff monotonicity is a server
// contract the engine does not re-verify; Config.MaxPageCeiling exists for
// callers who want a hard stop anyway.
package tablebridge

import (
	"context"
	"time"
)

// UnboundedPages is the RemainingPages sentinel for "no page limit".
const UnboundedPages = 0

// Cursor is the window/limit state driving one pagination loop. Only the
// engine mutates it: WindowStart is replaced by each page's cutoff and
// RemainingPages decrements once per fetched page when bounded.
type Cursor struct {
	WindowStart    time.Time
	WindowEnd      time.Time
	RemainingPages int
}

// Page is one fetched slice of a collection.
type Page[T any] struct {
	Items   []T
	HasMore bool
	Cutoff  time.Time
}

// PageFetcher retrieves the page addressed by cursor. Implementations are
// expected to translate the cursor window into the endpoint's query
// parameters and decode that endpoint's page envelope.
type PageFetcher[T any] func(ctx context.Context, cursor Cursor) (Page[T], error)

// FetchAllPages drains the collection starting at cursor and returns the
// items of every page concatenated in fetch order. It stops when a page
// reports no more data or the cursor's page budget is spent, whichever
// comes first, and never fetches past either. A fetch error discards the
// items accumulated so far and is returned as classified.
//
// Cancellation is cooperative: ctx is checked between pages, never
// mid-fetch. A zero-item page that still reports more data advances the
// cursor and keeps going.
func FetchAllPages[T any](ctx context.Context, fetch PageFetcher[T], cursor Cursor) ([]T, error) {
	bounded := cursor.RemainingPages != UnboundedPages

	var items []T
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)

		cursor.WindowStart = page.Cutoff
		if bounded {
			cursor.RemainingPages--
		}

		if !page.HasMore {
			return items, nil
		}
		if bounded && cursor.RemainingPages == 0 {
			return items, nil
		}
	}
}

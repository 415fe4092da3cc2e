// resources.go
// ------------
// Shared plumbing for the per-resource services. Each service is a thin,
// statically typed mapping from a request struct to a URL, verb, and
// parameter set; everything interesting (signing, classification,
// pagination) happens in the tablebridge core. List endpoints each carry
// their own page envelope because the API never settled on one set of
// field names, but the semantics are fixed: a more-data flag and the
// last-update timestamp of the final record.
package resources

import (
	"encoding/json"
	"fmt"

	tablebridge "github.com/tablefront/table-bridge"
	"github.com/tablefront/table-bridge/internal"
)

func decode(resp *tablebridge.Response, v interface{}) error {
	if err := json.Unmarshal(resp.Data, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// toPage converts a decoded envelope into a Page. A missing more-data
// field, or a missing/unparseable cutoff on a page that claims more data,
// is a malformed response: pagination cannot safely continue.
func toPage[T any](items []T, hasMore *bool, cutoff string) (tablebridge.Page[T], error) {
	if hasMore == nil {
		return tablebridge.Page[T]{}, fmt.Errorf("%w: missing more-data field", tablebridge.ErrMalformedResponse)
	}

	page := tablebridge.Page[T]{Items: items, HasMore: *hasMore}
	if cutoff == "" {
		if *hasMore {
			return tablebridge.Page[T]{}, fmt.Errorf("%w: missing cutoff with more data pending", tablebridge.ErrMalformedResponse)
		}
		return page, nil
	}

	t, err := internal.ParseCutoff(cutoff)
	if err != nil {
		return tablebridge.Page[T]{}, fmt.Errorf("%w: %v", tablebridge.ErrMalformedResponse, err)
	}
	page.Cutoff = t
	return page, nil
}

// windowParams writes the cursor's update window into query parameters.
func windowParams(p tablebridge.Params, cursor tablebridge.Cursor) {
	p.SetTime("updated_after", tablebridge.Time(cursor.WindowStart))
	p.SetTime("updated_before", tablebridge.Time(cursor.WindowEnd))
}

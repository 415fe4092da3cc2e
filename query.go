// query.go
// --------
// Optional request fields and their single serialization rule. Resource
// request structs use pointer fields for everything the API treats as
// optional; Params writes the set ones and omits the nil ones, replacing
// the per-call-site "if x != nil { ... }" sprawl with one place that knows
// the wire formats.
package tablebridge

import (
	"net/url"
	"strconv"
	"time"
)

// String returns a pointer to s, for populating optional fields.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Time returns a pointer to t.
func Time(t time.Time) *time.Time { return &t }

// Params accumulates query parameters, skipping absent optional fields.
type Params struct {
	url.Values
}

func NewParams() Params {
	return Params{Values: url.Values{}}
}

// SetString adds key=*v when v is set and non-empty.
func (p Params) SetString(key string, v *string) {
	if v != nil && *v != "" {
		p.Set(key, *v)
	}
}

// SetInt adds key=*v when v is set.
func (p Params) SetInt(key string, v *int) {
	if v != nil {
		p.Set(key, strconv.Itoa(*v))
	}
}

// SetBool adds key=true|false when v is set.
func (p Params) SetBool(key string, v *bool) {
	if v != nil {
		p.Set(key, strconv.FormatBool(*v))
	}
}

// SetTime adds key formatted in the wire's ISO-8601 UTC layout when v is
// set and non-zero.
func (p Params) SetTime(key string, v *time.Time) {
	if v != nil && !v.IsZero() {
		p.Set(key, v.UTC().Format(TimeFormat))
	}
}

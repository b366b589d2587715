// Package models contains the wire models returned by the remote API.
//
// The remote serializes most numeric fields as strings and timestamps
// as "2006-01-02 15:04:05" without a zone. FlexInt and Time absorb
// those quirks so the rest of the client works with native types.
package models

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// TimeLayout is the timestamp format used by all remote endpoints.
// Timestamps are second resolution in the account's server-local zone.
const TimeLayout = "2006-01-02 15:04:05"

// Time is a timestamp in the remote's "2006-01-02 15:04:05" format.
type Time struct {
	time.Time
}

// UnmarshalJSON parses a quoted remote timestamp.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(TimeLayout, s)
	if err != nil {
		return fmt.Errorf("parse time %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON renders the timestamp back into the remote format.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.Format(TimeLayout))), nil
}

// FlexInt is an int64 that accepts both JSON numbers and quoted
// numeric strings. The remote uses quoted ids for values that exceed
// 53 bits.
type FlexInt int64

// UnmarshalJSON parses a number or a quoted numeric string.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse int %q: %w", s, err)
	}
	*f = FlexInt(n)
	return nil
}

// Int64 returns the value as a plain int64.
func (f FlexInt) Int64() int64 { return int64(f) }

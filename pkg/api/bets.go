package api

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// BetFilters narrows a bet listing. Zero-valued fields are omitted from the
// query string and from the derived cache key.
type BetFilters struct {
	Sport     string `json:"sport,omitempty"`
	Status    string `json:"status,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// Query encodes the filters as URL query parameters.
func (f BetFilters) Query() url.Values {
	q := url.Values{}
	if f.Sport != "" {
		q.Set("sport", f.Sport)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	return q
}

// CacheKey derives a stable cache-key suffix from the filters, so each
// distinct filter combination gets its own cached result set.
func (f BetFilters) CacheKey() string {
	if f == (BetFilters{}) {
		return ""
	}
	b, _ := json.Marshal(f)
	return fmt.Sprintf("_%s", b)
}

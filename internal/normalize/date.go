package normalize

import (
	"strings"
	"time"
)

// ISODate is the canonical calendar date layout.
const ISODate = "2006-01-02"

// Date converts a raw source date to YYYY-MM-DD under the given layout.
// When the layout is empty or the value does not parse, the raw string is
// returned unchanged; normalized reports whether conversion happened so
// callers can surface the fallback. A malformed date must not abort
// ingestion of an otherwise valid file.
func Date(raw, layout string) (date string, normalized bool) {
	if layout == "" {
		return raw, false
	}
	t, err := time.Parse(layout, strings.TrimSpace(raw))
	if err != nil {
		return raw, false
	}
	return t.Format(ISODate), true
}

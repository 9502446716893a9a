package dynamodb

import "time"

// sortKeyTimeFormat is fixed width: fractional seconds are always nine
// digits. RFC3339Nano trims trailing zeros, which makes lexicographic sort
// key order diverge from chronological order.
const sortKeyTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// sortKeyTime renders a timestamp for use inside a sort key. UTC keeps the
// zone suffix constant so keys from different producers stay comparable.
func sortKeyTime(ts time.Time) string {
	return ts.UTC().Format(sortKeyTimeFormat)
}

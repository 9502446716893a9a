package dynamodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortKeyTime(t *testing.T) {
	t.Run("fixed width regardless of trailing zeros", func(t *testing.T) {
		ts := time.Date(2026, 8, 29, 12, 0, 0, 123000000, time.UTC)
		assert.Equal(t, "2026-08-29T12:00:00.123000000Z", sortKeyTime(ts))

		for _, nanos := range []int{0, 5, 123000000, 123000500, 999999999} {
			key := sortKeyTime(time.Date(2026, 8, 29, 12, 0, 0, nanos, time.UTC))
			assert.Len(t, key, len("2026-08-29T12:00:00.000000000Z"), key)
		}
	})

	t.Run("lexicographic order matches chronological order", func(t *testing.T) {
		// A nanosecond count whose RFC3339Nano rendering trims trailing
		// zeros sorts before a later timestamp with more fractional digits.
		earlier := time.Date(2026, 8, 29, 12, 0, 0, 123000000, time.UTC)
		later := earlier.Add(500 * time.Nanosecond)

		require.True(t, earlier.Before(later))
		assert.Less(t, sortKeyTime(earlier), sortKeyTime(later))
	})

	t.Run("non-UTC timestamps normalize to the same key", func(t *testing.T) {
		utc := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
		offset := utc.In(time.FixedZone("PST", -8*60*60))
		assert.Equal(t, sortKeyTime(utc), sortKeyTime(offset))
	})
}

func TestMessageSKOrdering(t *testing.T) {
	earlier := time.Date(2026, 8, 29, 12, 0, 0, 123000000, time.UTC)
	later := earlier.Add(500 * time.Nanosecond)

	// The random suffix never affects ordering because the timestamp segment
	// is fixed width.
	for i := 0; i < 32; i++ {
		assert.Less(t, messageSK(earlier), messageSK(later))
	}
}

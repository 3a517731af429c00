package request_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leavedesk/internal/request"
)

func TestInclusiveDays(t *testing.T) {
	t.Run("single day counts as one", func(t *testing.T) {
		d := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 1, request.InclusiveDays(d, d))
	})

	t.Run("five day span", func(t *testing.T) {
		start := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 5, request.InclusiveDays(start, end))
	})

	t.Run("inverted span counts zero", func(t *testing.T) {
		start := time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, request.InclusiveDays(start, end))
	})

	t.Run("spans a year boundary", func(t *testing.T) {
		start := time.Date(2025, time.December, 30, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 4, request.InclusiveDays(start, end))
	})

	t.Run("immune to zone and wall clock drift", func(t *testing.T) {
		// A DST-style offset change between the endpoints must not shift
		// the count: only the calendar components matter.
		zone := time.FixedZone("STD", -5*3600)
		shifted := time.FixedZone("DST", -4*3600)
		start := time.Date(2025, time.March, 7, 23, 30, 0, 0, zone)
		end := time.Date(2025, time.March, 10, 0, 15, 0, 0, shifted)
		assert.Equal(t, 4, request.InclusiveDays(start, end))
	})
}

func TestMonthBucket(t *testing.T) {
	created := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-11", request.MonthBucket(created))
}

package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToResponse(t *testing.T) {
	n := NewNotification("system", "disk almost full", "warning")
	n.CreatedAt = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	resp := n.ToResponse()

	assert.Equal(t, n.ID, resp.ID)
	assert.Equal(t, "system", resp.User)
	assert.Equal(t, "disk almost full", resp.Message)
	assert.Equal(t, "warning", resp.Type)
	assert.False(t, resp.Read)
	assert.Equal(t, "2026-01-10T12:00:00Z", resp.CreatedAt)
}

func TestToResponseNormalizesZoneToUTC(t *testing.T) {
	// timestamptz columns come back in the session timezone, so the entity can
	// carry a non-UTC zone; the rendered instant must not shift
	n := NewNotification("system", "msg", "info")
	n.CreatedAt = time.Date(2026, 1, 10, 15, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))

	resp := n.ToResponse()

	assert.Equal(t, "2026-01-10T12:00:00Z", resp.CreatedAt)
}

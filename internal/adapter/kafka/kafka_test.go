package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/quake-data-service/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }

func TestSerializeToMessage(t *testing.T) {
	retrieved := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	row := domain.EventRow{
		Magnitude: ptrF(5.2),
		Network:   ptrS("us"),
		Code:      ptrS("7000abcd"),
		EventType: ptrS("earthquake"),
	}

	msg, err := serializeToMessage(row, retrieved)
	require.NoError(t, err)

	assert.Equal(t, []byte("us7000abcd"), msg.Key)
	assert.Contains(t, string(msg.Value), `"magnitude":5.2`)
	assert.Contains(t, string(msg.Value), `"network":"us"`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "retrieved_at", msg.Headers[0].Key)
	assert.Equal(t, []byte(retrieved.Format(time.RFC3339)), msg.Headers[0].Value)
	assert.Equal(t, "event_type", msg.Headers[1].Key)
	assert.Equal(t, []byte("earthquake"), msg.Headers[1].Value)
}

func TestSerializeToMessage_MissingIdentityGetsRandomKey(t *testing.T) {
	retrieved := time.Now().UTC()
	row := domain.EventRow{Magnitude: ptrF(2.1)}

	msg, err := serializeToMessage(row, retrieved)
	require.NoError(t, err)

	_, parseErr := uuid.ParseBytes(msg.Key)
	assert.NoError(t, parseErr, "fallback key should be a UUID")
	require.Len(t, msg.Headers, 1, "no event_type header without an event type")
}

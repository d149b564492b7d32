package journal

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEvents(t *testing.T, path string) []Event {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		events = append(events, e)
	}
	require.NoError(t, scanner.Err())
	return events
}

func TestPublishAppendsJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	j := New(path)
	ctx := context.Background()

	require.NoError(t, j.Publish(ctx, Event{
		Type:      EventBookingCreated,
		BookingID: 9001,
		FlightID:  1001,
		Seat:      "1B",
		Amount:    4500,
	}))
	require.NoError(t, j.Publish(ctx, Event{
		Type:      EventBookingCancelled,
		BookingID: 9001,
		Amount:    3600,
	}))

	events := readEvents(t, path)
	require.Len(t, events, 2)

	assert.Equal(t, EventBookingCreated, events[0].Type)
	assert.Equal(t, int64(9001), events[0].BookingID)
	assert.Equal(t, "1B", events[0].Seat)
	assert.False(t, events[0].At.IsZero())

	assert.Equal(t, EventBookingCancelled, events[1].Type)
	assert.Equal(t, 3600.0, events[1].Amount)
}

func TestPublishKeepsCallerTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	j := New(path)

	at := time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC)
	require.NoError(t, j.Publish(context.Background(), Event{Type: EventFlightCancelled, FlightID: 1001, At: at}))

	events := readEvents(t, path)
	require.Len(t, events, 1)
	assert.True(t, events[0].At.Equal(at))
}

func TestPublishCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	j := New(path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := j.Publish(ctx, Event{Type: EventBookingCreated})
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

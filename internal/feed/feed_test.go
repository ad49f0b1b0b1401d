package feed

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hydromon/internal/model"
)

func TestDecodeReading(t *testing.T) {
	payload := `{
		"id": 42,
		"created_at": "2025-07-01T12:30:00.123456+00:00",
		"ph": 6.1,
		"ec": 1.4,
		"water_temperature": 21.5,
		"pump1": true,
		"pump2": false,
		"pump3": false,
		"pump4": true,
		"plant_name": "Basil"
	}`

	r, err := decodeReading(payload)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), r.ID)
	assert.InDelta(t, 6.1, r.PH, 1e-9)
	assert.InDelta(t, 1.4, r.EC, 1e-9)
	assert.InDelta(t, 21.5, r.WaterTemperature, 1e-9)
	assert.True(t, r.Pump1)
	assert.False(t, r.Pump2)
	assert.True(t, r.Pump4)
	assert.Equal(t, "Basil", r.PlantName)
	assert.Equal(t, 2025, r.CreatedAt.Year())
}

func TestDecodeReadingMalformed(t *testing.T) {
	_, err := decodeReading("not json")
	assert.Error(t, err)
}

func newTestListener(pingEvery time.Duration) *Listener {
	return &Listener{
		readings:  make(chan model.SensorReading, 16),
		pingEvery: pingEvery,
		log:       zap.NewNop(),
	}
}

func TestRunForwardsNotifications(t *testing.T) {
	l := newTestListener(time.Hour)
	notify := make(chan *pq.Notification, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.run(ctx, notify, func() error { return nil })

	notify <- &pq.Notification{Channel: Channel, Extra: `{"id": 7, "ph": 6.0, "ec": 1.2}`}

	select {
	case r := <-l.readings:
		assert.Equal(t, uint64(7), r.ID)
		assert.InDelta(t, 6.0, r.PH, 1e-9)
	case <-time.After(time.Second):
		t.Fatal("no reading forwarded")
	}
}

func TestRunSkipsReconnectMarkerAndMalformed(t *testing.T) {
	l := newTestListener(time.Hour)
	notify := make(chan *pq.Notification, 3)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.run(ctx, notify, func() error { return nil })

	notify <- nil
	notify <- &pq.Notification{Channel: Channel, Extra: "not json"}
	notify <- &pq.Notification{Channel: Channel, Extra: `{"id": 9}`}

	select {
	case r := <-l.readings:
		assert.Equal(t, uint64(9), r.ID)
	case <-time.After(time.Second):
		t.Fatal("no reading forwarded")
	}
}

func TestRunPingsDuringSteadyNotifications(t *testing.T) {
	l := newTestListener(20 * time.Millisecond)
	notify := make(chan *pq.Notification)

	var pings atomic.Int64
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		for range l.readings {
		}
	}()
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.run(ctx, notify, func() error {
			pings.Add(1)
			return nil
		})
	}()

	deadline := time.After(300 * time.Millisecond)
feed:
	for {
		select {
		case notify <- &pq.Notification{Channel: Channel, Extra: `{"id": 1}`}:
			time.Sleep(2 * time.Millisecond)
		case <-deadline:
			break feed
		}
	}
	cancel()
	<-done
	close(l.readings)

	require.Greater(t, pings.Load(), int64(0),
		"keep-alive ping never fired while notifications kept arriving")
}

// Package feed subscribes to the managed database's change events for
// sensor_data inserts. A trigger (scripts/sensor_notify.sql) emits each
// inserted row as JSON on the notify channel.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"hydromon/internal/model"
)

// Channel is the notify channel the insert trigger publishes on.
const Channel = "sensor_data_inserted"

const pingInterval = 90 * time.Second

type Listener struct {
	pql       *pq.Listener
	readings  chan model.SensorReading
	pingEvery time.Duration
	log       *zap.Logger
}

func NewListener(dsn string, log *zap.Logger) (*Listener, error) {
	pql := pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Warn("change feed connection event", zap.Int("event", int(ev)), zap.Error(err))
		}
	})
	if err := pql.Listen(Channel); err != nil {
		pql.Close()
		return nil, fmt.Errorf("listen on %s: %w", Channel, err)
	}

	return &Listener{
		pql:       pql,
		readings:  make(chan model.SensorReading, 16),
		pingEvery: pingInterval,
		log:       log,
	}, nil
}

// Readings delivers decoded change events in arrival order. The channel is
// closed when Run returns.
func (l *Listener) Readings() <-chan model.SensorReading {
	return l.readings
}

func (l *Listener) Run(ctx context.Context) {
	defer close(l.readings)
	defer l.pql.Close()
	l.run(ctx, l.pql.Notify, l.pql.Ping)
}

// run is the select loop behind Run. The ticker is created once so the
// keep-alive ping keeps firing even under a steady stream of notifications.
func (l *Listener) run(ctx context.Context, notify <-chan *pq.Notification, ping func() error) {
	ticker := time.NewTicker(l.pingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case n := <-notify:
			// nil marks a connection re-establishment; readings inserted
			// while disconnected are lost, the next insert alerts normally.
			if n == nil {
				continue
			}
			r, err := decodeReading(n.Extra)
			if err != nil {
				l.log.Warn("discarding malformed change event", zap.Error(err))
				continue
			}
			select {
			case l.readings <- r:
			case <-ctx.Done():
				return
			}

		case <-ticker.C:
			if err := ping(); err != nil {
				l.log.Warn("change feed ping failed", zap.Error(err))
			}
		}
	}
}

func decodeReading(payload string) (model.SensorReading, error) {
	var r model.SensorReading
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return model.SensorReading{}, fmt.Errorf("decode change event: %w", err)
	}
	return r, nil
}

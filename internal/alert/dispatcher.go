// Package alert turns pump activations on incoming sensor readings into
// chat notifications, at most one message per reading.
package alert

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"hydromon/internal/config"
	"hydromon/internal/model"
)

// UnknownPlant is used when the selected id resolves in neither profile table.
const UnknownPlant = "Unknown Plant"

const activePlantKey = "active-plant"

type Notifier interface {
	Send(ctx context.Context, text string) error
}

type ProfileLookup interface {
	ActiveProfileName(ctx context.Context) (string, bool, error)
}

// Dispatcher holds the per-process duplicate-suppression state. Only the
// most recent reading id is remembered, so it suppresses immediate repeats
// from the change feed, not out-of-order replays. Reset on restart; this is
// not a delivery guarantee.
type Dispatcher struct {
	notifier Notifier
	lookup   ProfileLookup
	settings config.AlertSettings
	log      *zap.Logger
	names    *cache.Cache

	lastSeenID uint64
	seen       bool
}

func NewDispatcher(n Notifier, l ProfileLookup, settings config.AlertSettings, log *zap.Logger) *Dispatcher {
	ttl := time.Duration(settings.LookupCacheSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Duration(config.DefaultAlertSettings.LookupCacheSeconds) * time.Second
	}
	return &Dispatcher{
		notifier: n,
		lookup:   l,
		settings: settings,
		log:      log,
		names:    cache.New(ttl, 2*ttl),
	}
}

// HandleReading processes one change-feed event. Not safe for concurrent
// use; the feed delivers readings to a single goroutine in arrival order.
func (d *Dispatcher) HandleReading(ctx context.Context, r model.SensorReading) {
	if d.seen && r.ID == d.lastSeenID {
		return
	}
	d.lastSeenID = r.ID
	d.seen = true

	if !r.Pump1 && !r.Pump2 && !r.Pump3 && !r.Pump4 {
		return
	}

	msg := d.buildMessage(d.plantName(ctx), r)
	if err := d.notifier.Send(ctx, msg); err != nil {
		// The reading stays marked seen: no retry, no redelivery.
		d.log.Error("failed to send alert",
			zap.Uint64("reading_id", r.ID),
			zap.Error(err),
		)
		return
	}

	d.log.Info("alert sent", zap.Uint64("reading_id", r.ID))
}

func (d *Dispatcher) buildMessage(plant string, r model.SensorReading) string {
	var paragraphs []string
	if r.Pump1 {
		paragraphs = append(paragraphs, fmt.Sprintf(d.settings.ECLowTemplate, plant, r.EC))
	}
	if r.Pump2 {
		paragraphs = append(paragraphs, fmt.Sprintf(d.settings.ECHighTemplate, plant, r.EC))
	}
	if r.Pump3 {
		paragraphs = append(paragraphs, fmt.Sprintf(d.settings.PHLowTemplate, plant, r.PH))
	}
	if r.Pump4 {
		paragraphs = append(paragraphs, fmt.Sprintf(d.settings.PHHighTemplate, plant, r.PH))
	}
	return strings.Join(paragraphs, "\n\n")
}

func (d *Dispatcher) plantName(ctx context.Context) string {
	if v, ok := d.names.Get(activePlantKey); ok {
		return v.(string)
	}

	name, found, err := d.lookup.ActiveProfileName(ctx)
	if err != nil {
		d.log.Warn("active profile lookup failed", zap.Error(err))
		return UnknownPlant
	}
	if !found {
		name = UnknownPlant
	}

	d.names.Set(activePlantKey, name, cache.DefaultExpiration)
	return name
}

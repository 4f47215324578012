// Package watchpg bridges Postgres NOTIFY events from the
// reservations insert trigger into watch-hub wakeups, so live lists
// stay fresh even when the booking was committed by another instance.
package watchpg

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/tuj-devs/officehours-service/internal/watch"
)

const (
	minReconnectInterval = time.Second
	maxReconnectInterval = time.Minute
)

// Waker is the hub surface the listener needs.
type Waker interface {
	Wake(key watch.Key)
}

// Logger is the logging interface the listener needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type eventPayload struct {
	ProfessorID string `json:"professor_id"`
	StudentID   string `json:"student_id"`
}

// Listener subscribes to the reservation-events channel and wakes the
// hub keys named in each payload.
type Listener struct {
	inner   *pq.Listener
	channel string
	waker   Waker
	logger  Logger
}

// New creates a listener. Start must be called before events flow.
func New(dsn, channel string, waker Waker, logger Logger) *Listener {
	inner := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				logger.Warn("watchpg: listener event=%d: %v", event, err)
			}
		})

	return &Listener{
		inner:   inner,
		channel: channel,
		waker:   waker,
		logger:  logger,
	}
}

// Start begins listening and dispatching until ctx is cancelled.
func (l *Listener) Start(ctx context.Context) error {
	if err := l.inner.Listen(l.channel); err != nil {
		return fmt.Errorf("watchpg: listen on %q: %w", l.channel, err)
	}

	l.logger.Info("watchpg: listening on channel %q", l.channel)

	go l.loop(ctx)
	return nil
}

func (l *Listener) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-l.inner.Notify:
			if !ok {
				return
			}
			// A nil notification means the connection was re-established;
			// wakeups may have been missed but subscribers re-fetch full
			// state on the next event anyway.
			if n == nil {
				continue
			}
			l.dispatch(n.Extra)
		}
	}
}

func (l *Listener) dispatch(payload string) {
	var ev eventPayload
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		l.logger.Warn("watchpg: malformed payload %q: %v", payload, err)
		return
	}

	if ev.ProfessorID != "" {
		l.waker.Wake(watch.ProfessorKey(ev.ProfessorID))
	}
	if ev.StudentID != "" {
		l.waker.Wake(watch.StudentKey(ev.StudentID))
	}
}

// Close tears down the underlying connection.
func (l *Listener) Close() error {
	return l.inner.Close()
}

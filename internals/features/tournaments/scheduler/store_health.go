package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Pinger is the part of the store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	OK        bool          `json:"ok"`
	CheckedAt time.Time     `json:"checked_at"`
	Latency   time.Duration `json:"latency_ns"`
	Error     string        `json:"error,omitempty"`
}

// StoreHealth remembers the outcome of the most recent store ping.
type StoreHealth struct {
	store   Pinger
	timeout time.Duration
	log     *zap.Logger
	last    atomic.Pointer[HealthStatus]
}

func NewStoreHealth(store Pinger, timeout time.Duration, log *zap.Logger) *StoreHealth {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &StoreHealth{store: store, timeout: timeout, log: log}
}

// Check pings the store now and records the result.
func (h *StoreHealth) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	st := HealthStatus{
		OK:        err == nil,
		CheckedAt: start.UTC(),
		Latency:   time.Since(start),
	}
	if err != nil {
		st.Error = err.Error()
		h.log.Warn("store ping failed", zap.Error(err))
	}

	if prev := h.last.Swap(&st); prev != nil && prev.OK != st.OK {
		h.log.Info("store health changed", zap.Bool("ok", st.OK))
	}
	return st
}

// Last returns the latest recorded status; false before the first check.
func (h *StoreHealth) Last() (HealthStatus, bool) {
	st := h.last.Load()
	if st == nil {
		return HealthStatus{}, false
	}
	return *st, true
}

// StartStoreHealthScheduler runs one check immediately and then on schedule.
// Stop the returned cron on shutdown.
func StartStoreHealthScheduler(h *StoreHealth, schedule string, log *zap.Logger) (*cron.Cron, error) {
	cl := cronLogger{log.Named("cron").Sugar()}
	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))

	if _, err := c.AddFunc(schedule, func() { h.Check(context.Background()) }); err != nil {
		return nil, fmt.Errorf("schedule store health %q: %w", schedule, err)
	}

	h.Check(context.Background())
	log.Info("store health scheduler started", zap.String("schedule", schedule))
	c.Start()
	return c, nil
}

type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}

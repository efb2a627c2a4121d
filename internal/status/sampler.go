package status

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultSampleInterval = 2 * time.Second

	// DefaultStopGrace bounds how long Stop waits for the worker to exit.
	DefaultStopGrace = 100 * time.Millisecond
)

// ErrStopTimeout is returned by Stop when the worker did not exit within the
// grace period. The goroutine is abandoned; shared state stays consistent
// because the worker only ever writes through the Store.
var ErrStopTimeout = errors.New("battery sampler did not stop in time")

// Sampler polls a BatteryReader on its own goroutine and publishes each
// result into a Store. It owns no UI state.
type Sampler struct {
	reader   BatteryReader
	store    *Store
	interval time.Duration
	logger   *log.Logger

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithInterval sets the wait between samples. Non-positive values keep the default.
func WithInterval(d time.Duration) SamplerOption {
	return func(s *Sampler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithLogger sets the logger used for sample failures and shutdown leaks.
func WithLogger(logger *log.Logger) SamplerOption {
	return func(s *Sampler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSampler creates a stopped sampler reading from reader.
func NewSampler(reader BatteryReader, opts ...SamplerOption) *Sampler {
	s := &Sampler{
		reader:   reader,
		store:    &Store{},
		interval: defaultSampleInterval,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the sampling goroutine and returns immediately. Calling Start
// on a running sampler is a no-op.
func (s *Sampler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		select {
		case <-s.done:
			// Previous loop ended through its context; allow a restart.
		default:
			return
		}
	}

	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(ctx, s.stop, s.done)
}

func (s *Sampler) run(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		s.sample()

		wait := time.NewTimer(s.interval)
		select {
		case <-stop:
			wait.Stop()
			return
		case <-ctx.Done():
			wait.Stop()
			return
		case <-wait.C:
		}
	}
}

// sample runs one blocking query. There is no mid-sample cancellation: a stop
// request is observed once the reader returns.
func (s *Sampler) sample() {
	battery, err := s.reader.Sample()
	if err != nil {
		s.store.Update(BatteryStatus{}, err)
		s.logger.Warn("battery sample failed", "err", err, "failures", s.store.Snapshot().ConsecutiveFailures)
		return
	}
	s.store.Update(battery, nil)
	s.logger.Debug("battery sampled", "percent", battery.Percentage, "charging", battery.IsCharging)
}

// Stop signals the worker and waits up to timeout for it to exit. A timeout is
// a soft failure: ErrStopTimeout is returned and the goroutine is leaked.
func (s *Sampler) Stop(timeout time.Duration) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	stop, done := s.stop, s.done
	s.mu.Unlock()

	close(stop)

	if timeout <= 0 {
		timeout = DefaultStopGrace
	}
	grace := time.NewTimer(timeout)
	defer grace.Stop()

	select {
	case <-done:
		return nil
	case <-grace.C:
		s.logger.Warn("battery sampler still running after stop, leaking goroutine", "grace", timeout)
		return ErrStopTimeout
	}
}

// Current returns the latest battery status without waiting on the worker.
func (s *Sampler) Current() BatteryStatus {
	return s.store.Battery()
}

// Snapshot returns the latest snapshot including error bookkeeping.
func (s *Sampler) Snapshot() Snapshot {
	return s.store.Snapshot()
}

// Interval reports the wait between samples.
func (s *Sampler) Interval() time.Duration {
	return s.interval
}

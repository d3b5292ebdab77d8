package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"result-checker/core/results"

	"go.uber.org/zap"
)

// DialFunc opens a connection handle.
type DialFunc[T any] func(ctx context.Context) (T, error)

// Backoff bounds the delay between dial attempts. The delay doubles after
// every failure up to Max.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration
}

// Keeper owns one process-wide connection handle. It dials in the background
// until the first success and hands the same handle to every caller after
// that; reconnects after a successful dial are left to the driver's pool.
type Keeper[T any] struct {
	name    string
	dial    DialFunc[T]
	closeFn func(T) error
	backoff Backoff
	logger  *zap.Logger

	mu      sync.RWMutex
	handle  T
	ready   bool
	lastErr error
	cancel  context.CancelFunc
	closed  bool

	readyCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewKeeper creates a Keeper. closeFn may be nil.
func NewKeeper[T any](name string, dial DialFunc[T], closeFn func(T) error, backoff Backoff, logger *zap.Logger) *Keeper[T] {
	if backoff.Initial <= 0 {
		backoff.Initial = 5 * time.Second
	}
	if backoff.Max < backoff.Initial {
		backoff.Max = backoff.Initial
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Keeper[T]{
		name:    name,
		dial:    dial,
		closeFn: closeFn,
		backoff: backoff,
		logger:  logger,
		readyCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins dialing in the background. It is safe to call more than once
// and does nothing after Close.
func (k *Keeper[T]) Start(ctx context.Context) {
	k.once.Do(func() {
		k.mu.Lock()
		defer k.mu.Unlock()
		if k.closed {
			return
		}
		ctx, k.cancel = context.WithCancel(ctx)
		go k.run(ctx)
	})
}

func (k *Keeper[T]) run(ctx context.Context) {
	defer close(k.done)

	delay := k.backoff.Initial
	for attempt := 1; ; attempt++ {
		k.logger.Info("Connecting", zap.String("backend", k.name), zap.Int("attempt", attempt))

		h, err := k.dial(ctx)
		if err == nil {
			k.mu.Lock()
			k.handle = h
			k.ready = true
			k.lastErr = nil
			k.mu.Unlock()
			close(k.readyCh)
			k.logger.Info("Connected", zap.String("backend", k.name))
			return
		}

		k.mu.Lock()
		k.lastErr = err
		k.mu.Unlock()
		k.logger.Warn("Connection failed, retrying",
			zap.String("backend", k.name),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		delay *= 2
		if delay > k.backoff.Max {
			delay = k.backoff.Max
		}
	}
}

// Ready reports whether a handle is available.
func (k *Keeper[T]) Ready() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.ready
}

// Get returns the handle, or an ErrStoreUnavailable error while not connected.
func (k *Keeper[T]) Get() (T, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if !k.ready {
		var zero T
		if k.lastErr != nil {
			return zero, fmt.Errorf("%s not connected: %w", k.name, results.Unavailable(k.lastErr))
		}
		return zero, fmt.Errorf("%s not connected: %w", k.name, results.ErrStoreUnavailable)
	}
	return k.handle, nil
}

// Wait blocks until the handle is available or ctx ends.
func (k *Keeper[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-k.readyCh:
		return k.Get()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Close stops dialing and closes the handle if one was opened.
func (k *Keeper[T]) Close() error {
	k.mu.Lock()
	k.closed = true
	cancel := k.cancel
	k.mu.Unlock()
	if cancel != nil {
		cancel()
		<-k.done
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.ready || k.closeFn == nil {
		return nil
	}
	k.ready = false
	return k.closeFn(k.handle)
}

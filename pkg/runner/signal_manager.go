package runner

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// SignalManager derives a context that is cancelled on SIGINT or SIGTERM.
// Async hooks and example bodies observe the cancellation through their context.
type SignalManager struct {
	ctx      context.Context
	cancel   context.CancelFunc
	signals  chan os.Signal
	done     chan struct{}
	received atomic.Bool
}

// NewSignalManager starts listening for signals on top of parent.
func NewSignalManager(parent context.Context) *SignalManager {
	sm := &SignalManager{
		signals: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
	sm.ctx, sm.cancel = context.WithCancel(parent)
	signal.Notify(sm.signals, os.Interrupt, syscall.SIGTERM)
	go sm.watch()
	return sm
}

func (sm *SignalManager) watch() {
	defer close(sm.done)
	select {
	case <-sm.signals:
		sm.received.Store(true)
		sm.cancel()
	case <-sm.ctx.Done():
	}
}

// Context returns the signal-aware context.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Interrupted reports whether a signal cancelled the context. Cancellation of the
// parent or an expired deadline does not count.
func (sm *SignalManager) Interrupted() bool {
	return sm.received.Load()
}

// Stop releases the signal listener and waits for it to exit.
func (sm *SignalManager) Stop() {
	signal.Stop(sm.signals)
	sm.cancel()
	<-sm.done
}

// Package testutil provides shared helpers for gofunnel tests.
package testutil

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestTimeout is the default timeout for tests
const TestTimeout = 5 * time.Second

// DefaultPollInterval is how often polling helpers re-check their condition
const DefaultPollInterval = 10 * time.Millisecond

// WithTimeout creates a context with the default test timeout
func WithTimeout(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), TestTimeout)
}

// Eventually polls cond every interval until it returns true or timeout
// elapses, failing the test on timeout
func Eventually(t *testing.T, cond func() bool, timeout, interval time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(interval)
	}
	t.Fatalf("condition not met within %v", timeout)
}

// AssertEventually is Eventually with the default timeout and poll interval
func AssertEventually(t *testing.T, cond func() bool) {
	t.Helper()
	Eventually(t, cond, TestTimeout, DefaultPollInterval)
}

// EventuallyWithContext polls cond every interval until it returns true or
// the context is cancelled, failing the test if the context wins
func EventuallyWithContext(t *testing.T, ctx context.Context, cond func() bool, interval time.Duration) {
	t.Helper()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if cond() {
			return
		}
		select {
		case <-ctx.Done():
			t.Fatalf("condition not met before context done: %v", ctx.Err())
		case <-ticker.C:
		}
	}
}

// WaitForInt32 waits until the atomic int32 at addr equals want
func WaitForInt32(t *testing.T, addr *int32, want int32, timeout time.Duration) {
	t.Helper()
	Eventually(t, func() bool {
		return atomic.LoadInt32(addr) == want
	}, timeout, DefaultPollInterval)
}

// WaitForInt64 waits until the atomic int64 at addr equals want
func WaitForInt64(t *testing.T, addr *int64, want int64, timeout time.Duration) {
	t.Helper()
	Eventually(t, func() bool {
		return atomic.LoadInt64(addr) == want
	}, timeout, DefaultPollInterval)
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertEqual fails the test if got != want
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// AssertNotEqual fails the test if got == want
func AssertNotEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got == want {
		t.Fatalf("got %v, want anything else", got)
	}
}

// CallbackTracker records invocations of a callback under test. Safe for
// concurrent use.
type CallbackTracker struct {
	mu    sync.Mutex
	count int
	value interface{}
}

// NewCallbackTracker creates an empty tracker
func NewCallbackTracker() *CallbackTracker {
	return &CallbackTracker{}
}

// Mark records one invocation, optionally with the value the callback observed
func (c *CallbackTracker) Mark(values ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	if len(values) > 0 {
		c.value = values[len(values)-1]
	}
}

// Called reports whether Mark was invoked at least once
func (c *CallbackTracker) Called() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count > 0
}

// CallCount returns the number of Mark invocations
func (c *CallbackTracker) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Value returns the most recently marked value, or nil
func (c *CallbackTracker) Value() interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Reset clears the tracker
func (c *CallbackTracker) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
	c.value = nil
}

// AssertCalled fails the test if the tracker was never marked
func (c *CallbackTracker) AssertCalled(t *testing.T) {
	t.Helper()
	if !c.Called() {
		t.Error("expected callback to be called")
	}
}

// AssertNotCalled fails the test if the tracker was marked
func (c *CallbackTracker) AssertNotCalled(t *testing.T) {
	t.Helper()
	if c.Called() {
		t.Errorf("expected callback not to be called, called %d times", c.CallCount())
	}
}

// AssertCallCount fails the test unless the tracker was marked exactly want times
func (c *CallbackTracker) AssertCallCount(t *testing.T, want int) {
	t.Helper()
	if got := c.CallCount(); got != want {
		t.Errorf("call count = %d, want %d", got, want)
	}
}

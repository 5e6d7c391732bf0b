package util

import (
	"sync"
	"time"
)

// ErrorBackoff rate limits the handling of an error that keeps
// repeating. A new error is handled immediately and resets the period
// to MinPeriod. A repeat of the previous error is handled at most once
// per period, and every handled repeat doubles the period up to
// MaxPeriod.
type ErrorBackoff struct {
	MinPeriod time.Duration
	MaxPeriod time.Duration

	mu          sync.Mutex
	period      time.Duration
	lastMessage string
	lastHandled time.Time
}

func (b *ErrorBackoff) OnError(err error, fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.lastMessage != "" && b.lastMessage == err.Error() {
		if time.Since(b.lastHandled) < b.period {
			return
		}
		b.period = b.period * 2
		if b.period > b.MaxPeriod {
			b.period = b.MaxPeriod
		}
	} else {
		b.period = b.MinPeriod
		b.lastMessage = err.Error()
	}

	b.lastHandled = time.Now()
	fn()
}

package dirstat

import "time"

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// progress throttles calls to a progress hook.
// It is driven synchronously from the walk loop, so it needs no locking.
type progress struct {
	hook     func(files, bytes int64)
	interval time.Duration
	now      func() time.Time
	last     time.Time
	files    int64
	bytes    int64
}

func newProgress(hook func(int64, int64), interval time.Duration) *progress {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	return &progress{
		hook:     hook,
		interval: interval,
		now:      time.Now,
	}
}

// add records one counted file and reports if the interval has elapsed.
func (p *progress) add(size int64) {
	if p.hook == nil {
		return
	}

	p.files++
	p.bytes += size

	if now := p.now(); now.Sub(p.last) >= p.interval {
		p.last = now
		p.hook(p.files, p.bytes)
	}
}

// flush reports the final totals.
func (p *progress) flush() {
	if p.hook == nil {
		return
	}

	p.hook(p.files, p.bytes)
}

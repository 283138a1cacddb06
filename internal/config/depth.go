package config

import "strconv"

// Depth is an optional maximum descent depth. The zero value is unlimited.
type Depth struct {
	limit uint
	set   bool
}

// Unlimited returns a depth that never cuts off descent.
func Unlimited() Depth { return Depth{} }

// Limit returns a depth that stops descent below n levels from the root.
func Limit(n uint) Depth { return Depth{limit: n, set: true} }

// Value returns the limit and whether one is configured.
func (d Depth) Value() (uint, bool) { return d.limit, d.set }

// Exceeded reports whether level lies beyond the limit.
func (d Depth) Exceeded(level int) bool {
	if !d.set || level < 0 {
		return false
	}

	return uint(level) > d.limit
}

func (d Depth) String() string {
	if !d.set {
		return "unlimited"
	}

	return strconv.FormatUint(uint64(d.limit), 10)
}

package dstarlite

import (
	"math"

	"github.com/dstarpath/dstar/pqueue"
)

// key computes v's current queueing priority (spec §4.2):
//
//	( min(g(v),rhs(v)) + h(v,start) + km, min(g(v),rhs(v)) )
//
// The key is derived fresh from g, rhs, km, and the heuristic at
// queueing time; it is never cached on the vertex (spec §9 "`key` as
// tagged value").
func (e *Engine) key(v string) pqueue.LexKey {
	s := e.state(v)
	m := math.Min(s.g, s.rhs)

	return pqueue.LexKey{K1: m + e.h(v, e.start) + e.km, K2: m}
}

// consistent reports whether v is locally consistent: g(v) == rhs(v)
// within epsilon. Infinite values are compared directly, never by
// subtraction (spec §9 "Never compare rhs = +∞ by subtraction").
func (e *Engine) consistent(v string) bool {
	s := e.state(v)
	if math.IsInf(s.g, 1) && math.IsInf(s.rhs, 1) {
		return true
	}
	if math.IsInf(s.g, 1) != math.IsInf(s.rhs, 1) {
		return false
	}

	return math.Abs(s.g-s.rhs) <= epsilon
}

package hub

import "fmt"

// panicf reports an invariant violation. Every condition that reaches
// here is caller error (an unknown ID, a tombstoned reference, a graph
// shape the operations should never have produced) — not something a
// caller can recover from, so the Hub panics rather than returning an
// error.
func panicf(format string, args ...any) {
	panic(fmt.Sprintf("hub: "+format, args...))
}

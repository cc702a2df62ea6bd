//go:build !temporal_debug

package temporal

type labeledItem struct{}

func debugEnter(_ ...any)                  {}
func debugExit(_ ...any)                   {}
func debugEvent(_ EventType, _ ...any)     {}
func debugInfo(_ ...any)                   {}
func debugIO(_ ...any)                     {}
func debugField(_ ...any)                  {}
func debugDate(_ ...any)                   {}
func debugDuration(_ ...any)               {}
func debugArith(_ ...any)                  {}
func debugConstraint(_ ...any)             {}
func debugPath(_ ...any) func(_ ...any)    { return func(_ ...any) {} }
func newLItem(_ any, _ ...any) labeledItem { return labeledItem{} }
func (_ labeledItem) String() string       { return `` }

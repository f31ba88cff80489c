// Package message defines a closed set of message variants and exhaustive
// matching over them.
//
// Message is a sealed interface: only types in this package satisfy it, so
// the set of alternatives is closed. Match takes one handler per
// alternative — leaving one out fails to compile at the call site, which is
// how exhaustiveness is enforced.
//
//	m := message.Move{X: 2, Y: 3}
//
//	message.MatchVoid(m,
//	    func() { fmt.Println("Quit") },
//	    func(x, y int32) { fmt.Printf("Move to %d %d\n", x, y) },
//	)
package message

import "fmt"

// Message is the closed set of message alternatives.
type Message interface {
	isMessage()
}

// Quit is the no-payload alternative.
type Quit struct{}

func (Quit) isMessage() {}

// String returns the variant name.
func (Quit) String() string { return "Quit" }

// Move is the coordinate-carrying alternative.
type Move struct {
	X, Y int32
}

func (Move) isMessage() {}

// String returns the variant name with its bound fields.
func (m Move) String() string { return fmt.Sprintf("Move(%d, %d)", m.X, m.Y) }

// Match dispatches m to the handler for its alternative and returns the
// handler's result. Every alternative requires a handler; a nil handler is
// a programmer error and panics. A Message from outside the closed set is
// impossible without bypassing the type system, and also panics.
func Match[T any](m Message, onQuit func() T, onMove func(x, y int32) T) T {
	switch v := m.(type) {
	case Quit:
		if onQuit == nil {
			panic("message: nil Quit handler")
		}
		return onQuit()
	case Move:
		if onMove == nil {
			panic("message: nil Move handler")
		}
		return onMove(v.X, v.Y)
	default:
		panic(fmt.Sprintf("message: unknown alternative %T", m))
	}
}

// MatchVoid is Match for handlers that produce no result.
func MatchVoid(m Message, onQuit func(), onMove func(x, y int32)) {
	switch v := m.(type) {
	case Quit:
		if onQuit == nil {
			panic("message: nil Quit handler")
		}
		onQuit()
	case Move:
		if onMove == nil {
			panic("message: nil Move handler")
		}
		onMove(v.X, v.Y)
	default:
		panic(fmt.Sprintf("message: unknown alternative %T", m))
	}
}

package sure

import (
	"fmt"
	"sync/atomic"
)

// Gate asks the all important question: are you sure you want to do this?
//
// It holds either an immediate value or a deferred function producing the
// value. The zero Gate is an immediate gate holding the zero value of T.
type Gate[T any] struct {
	value    T
	fn       func() T
	deferred bool
	resolved atomic.Bool
}

// Value wraps an already computed value.
func Value[T any](v T) *Gate[T] {
	return &Gate[T]{value: v}
}

// Defer wraps fn without calling it. fn runs once when the gate is confirmed.
func Defer[T any](fn func() T) *Gate[T] {
	return &Gate[T]{fn: fn, deferred: true}
}

// Deferred reports whether the gate holds a deferred function.
func (g *Gate[T]) Deferred() bool {
	return g != nil && g.deferred
}

// Resolved reports whether the gate was already confirmed or declined.
func (g *Gate[T]) Resolved() bool {
	return g != nil && g.resolved.Load()
}

// Confirm states that you are, in fact, sure. It returns the held value or
// calls the deferred function on the calling goroutine and returns its
// result. A panic raised by the function propagates unchanged; the gate is
// consumed either way.
func (g *Gate[T]) Confirm() T {
	g.consume("confirm")
	value, fn := g.value, g.fn
	g.release()
	if fn != nil {
		return fn()
	}
	return value
}

// Decline discards the gate. A deferred function is never called.
func (g *Gate[T]) Decline() {
	g.consume("decline")
	g.release()
}

// YesIAmSure is an alias of Confirm.
func (g *Gate[T]) YesIAmSure() T { return g.Confirm() }

// NoIAmNotSure is an alias of Decline.
func (g *Gate[T]) NoIAmNotSure() { g.Decline() }

func (g *Gate[T]) consume(op string) {
	if g == nil {
		panic(fmt.Errorf("%s nil gate: %w", op, ErrAlreadyResolved))
	}
	if !g.resolved.CompareAndSwap(false, true) {
		panic(fmt.Errorf("%s: %w", op, ErrAlreadyResolved))
	}
}

// release drops references so captured state can be collected.
func (g *Gate[T]) release() {
	var zero T
	g.value = zero
	g.fn = nil
}

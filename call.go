package sure

// Call defers fn(a). The argument is evaluated at the call site, fn itself
// runs only on Confirm.
func Call[A, T any](fn func(A) T, a A) *Gate[T] {
	return Defer(func() T { return fn(a) })
}

// Call2 defers fn(a, b).
func Call2[A, B, T any](fn func(A, B) T, a A, b B) *Gate[T] {
	return Defer(func() T { return fn(a, b) })
}

// Call3 defers fn(a, b, c).
func Call3[A, B, C, T any](fn func(A, B, C) T, a A, b B, c C) *Gate[T] {
	return Defer(func() T { return fn(a, b, c) })
}

// Do defers a statement that produces no result.
func Do(fn func()) *Gate[struct{}] {
	return Defer(func() struct{} {
		fn()
		return struct{}{}
	})
}

// Outcome carries the (value, error) pair of a deferred Go call.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Unpack returns the outcome in the usual Go form.
func (o Outcome[T]) Unpack() (T, error) {
	return o.Value, o.Err
}

// Try defers a function following the (value, error) convention.
//
//	v, err := sure.Try(func() (int, error) { return strconv.Atoi(s) }).Confirm().Unpack()
func Try[T any](fn func() (T, error)) *Gate[Outcome[T]] {
	return Defer(func() Outcome[T] {
		v, err := fn()
		return Outcome[T]{Value: v, Err: err}
	})
}

package nullsafety

// Some creates an Option that contains a value.
// It represents the presence of a value of type T.
func Some[T any](t T) Option[T] {
	return Option[T]{
		item: t,
		ok:   true,
	}
}

// None creates an empty Option that contains no value.
// It represents the absence of a value of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a possibly-nil pointer into an Option.
// A nil pointer becomes None; anything else becomes Some of the pointee.
// This is the usual entry point at a seam where older code still hands
// out nilable pointers instead of declaring absence explicitly.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// Ptr returns a pointer to v. Go has no address-of for literals and call
// results; call sites that need a present pointer use this instead of a
// throwaway variable.
func Ptr[T any](v T) *T {
	return &v
}

// Option represents a value that is explicitly allowed to be absent.
// It is the declared counterpart to a nil sneaking through a type that
// promises presence: an API that may genuinely produce no value should
// say so by returning an Option, and the guards in this package treat a
// None exactly like a nil.
// The zero value is None.
type Option[T any] struct {
	item T
	ok   bool
}

// Some returns true if the Option contains a value, false otherwise.
func (o Option[T]) Some() bool {
	return o.ok
}

// None returns true if the Option is empty (contains no value), false otherwise.
func (o Option[T]) None() bool {
	return !o.ok
}

// Get returns the value and a boolean indicating whether the Option contains a value.
// If the Option is Some, returns (value, true). If None, returns (zero value, false).
func (o Option[T]) Get() (T, bool) {
	return o.item, o.ok
}

// GetOrDefault returns the contained value if the Option is Some,
// otherwise returns the provided default value.
func (o Option[T]) GetOrDefault(t T) T {
	if !o.ok {
		return t
	}

	return o.item
}

// Raw returns the raw value stored in the Option without checking if it's present.
// If the Option is None, this returns the zero value of type T.
// Use Get() or check Some()/None() if you need to distinguish between a zero value and None.
func (o Option[T]) Raw() T {
	return o.item
}

// Ptr returns a pointer to the contained value, or nil if the Option is None.
// The pointer addresses a copy; mutating the pointee does not change the Option.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}

	return &o.item
}

// absent implements the marker interface used by IsAbsent and
// PermitsAbsence, so the guards can recognize a None without knowing T.
func (o Option[T]) absent() bool {
	return !o.ok
}

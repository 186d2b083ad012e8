package nullsafety

import (
	"reflect"
	"runtime"
)

// StrictCast converts v to T the way a plain type assertion would, then
// refuses to let the absence marker through unless T itself permits
// absence. A plain assertion happily produces a nil for any nilable
// target type; this is the variant to reach for when a T that promises
// "never nil" must actually hold.
//
// A genuine runtime type mismatch surfaces as the runtime's own
// *runtime.TypeAssertionError, returned untouched, so it can never be
// mistaken for an absence violation.
func StrictCast[T any](v any) (out T, err error) {
	if v == nil {
		if PermitsAbsence[T]() {
			// the zero of a permitting T is its absence marker:
			// nil for nilable kinds, None for an Option
			return out, nil
		}

		return out, NewCastError(typeNameFor[T]())
	}

	// the deferred recover exists solely to capture the native failure
	// of v.(T); any other panic keeps propagating
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*runtime.TypeAssertionError)
		if !ok {
			panic(r)
		}

		var zero T
		out, err = zero, e
	}()

	out = v.(T)

	if IsAbsent(out) {
		if PermitsAbsence[T]() {
			return out, nil
		}

		var zero T
		return zero, NewCastError(typeNameFor[T]())
	}

	return out, nil
}

// MustCast is StrictCast without the error return: it panics with
// whatever error StrictCast produces, absence violation and native type
// mismatch alike.
func MustCast[T any](v any) T {
	t, err := StrictCast[T](v)
	if err != nil {
		panic(err)
	}

	return t
}

// PermitsAbsence reports whether T declares absence as a legal value:
// T is an Option type, or a type of nilable kind. This is the predicate
// StrictCast consults before rejecting an absent result.
func PermitsAbsence[T any]() bool {
	var zero T
	if _, ok := any(zero).(absentable); ok {
		return true
	}

	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return true
	}

	return false
}

package nullsafety

import "reflect"

// absentable is implemented by Option so that IsAbsent and
// PermitsAbsence can recognize a None without knowing the value type.
type absentable interface {
	absent() bool
}

// CheckPresent validates that v, whose static type says it can never be
// absent, actually holds a value at runtime. While a codebase migrates
// to soundly non-nil types, values can still arrive holding nil (or a
// None Option) through code paths that predate the stronger guarantee;
// this function is the explicit guard for those seams.
//
// If v is present it is returned unchanged. If v is absent and a present
// fallback was supplied, the fallback is returned instead. Otherwise an
// *AbsenceError is returned; an absent fallback does not count as a
// valid substitute.
func CheckPresent[T any](v T, fallback ...T) (T, error) {
	if !IsAbsent(v) {
		return v, nil
	}

	for _, f := range fallback {
		if !IsAbsent(f) {
			return f, nil
		}
	}

	var zero T
	return zero, NewExpressionError(typeNameFor[T]())
}

// CheckArgPresent is CheckPresent for a named parameter. The returned
// error names the offending parameter, which pinpoints the call site a
// nil leaked through.
func CheckArgPresent[T any](v T, name string, fallback ...T) (T, error) {
	if !IsAbsent(v) {
		return v, nil
	}

	for _, f := range fallback {
		if !IsAbsent(f) {
			return f, nil
		}
	}

	var zero T
	return zero, NewArgumentError(name, typeNameFor[T]())
}

// MustPresent is CheckPresent without the error return: it panics with
// the *AbsenceError instead. Intended for initialization and test paths
// where an absent value is fatal.
func MustPresent[T any](v T) T {
	t, err := CheckPresent(v)
	if err != nil {
		panic(err)
	}

	return t
}

// IsAbsent reports whether v holds the absence marker: a nil interface,
// a nil value of a nilable kind (pointer, map, slice, channel, func,
// unsafe pointer) including a typed nil stored in an interface, or a
// None Option. Values of non-nilable types are always present; their
// zero value is not absence.
//
// Nilable kinds are classified by their own nil-ness, before any method
// on them could run: a nil *Option is absent, and a non-nil pointer is
// present even when it points at a None.
func IsAbsent[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}

	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}

	if x, ok := a.(absentable); ok {
		return x.absent()
	}

	return false
}

// typeNameFor spells out the instantiated type for error messages,
// e.g. "*int" or "nullsafety.Option[int]".
func typeNameFor[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

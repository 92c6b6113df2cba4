package reactive

import (
	"math"
	"reflect"
)

// Deps is a snapshot of the dependency list a memo or callback was last
// evaluated with.
type Deps []any

// Snapshot copies deps so that later changes to the caller's slice do not
// affect the stored snapshot. A nil list stays nil.
func Snapshot(deps []any) Deps {
	if deps == nil {
		return nil
	}
	out := make(Deps, len(deps))
	copy(out, deps)
	return out
}

// Equal compares two snapshots element by element with SameValue.
func (d Deps) Equal(other Deps) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if !SameValue(d[i], other[i]) {
			return false
		}
	}
	return true
}

// SameValue is the shallow equality used for dependency lists:
//
//   - comparable values (numbers, strings, bools, pointers, comparable
//     structs and arrays) compare with ==, except that NaN equals NaN;
//   - slices are the same when they share backing array and length;
//   - maps and channels are the same when they are the same map or channel;
//   - funcs and non-comparable structs or arrays are never the same.
//
// Values of different dynamic types are never the same.
func SameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Float32, reflect.Float64:
		fa, fb := va.Float(), vb.Float()
		if math.IsNaN(fa) && math.IsNaN(fb) {
			return true
		}
		return fa == fb
	case reflect.Slice:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Chan:
		return va.Pointer() == vb.Pointer()
	case reflect.Func:
		return false
	}

	if !va.Type().Comparable() {
		return false
	}
	return safeEqual(a, b)
}

// safeEqual compares with ==, treating a runtime "comparing uncomparable"
// panic (an interface field holding a slice, say) as not equal.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

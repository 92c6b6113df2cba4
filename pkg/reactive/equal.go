package reactive

import "reflect"

// DefaultEquals provides type-appropriate equality checking for stored
// values. Uses == for common scalar types and reflect.DeepEqual for others.
func DefaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return sameScalar(av, any(b))
	case int8:
		return sameScalar(av, any(b))
	case int16:
		return sameScalar(av, any(b))
	case int32:
		return sameScalar(av, any(b))
	case int64:
		return sameScalar(av, any(b))
	case uint:
		return sameScalar(av, any(b))
	case uint8:
		return sameScalar(av, any(b))
	case uint16:
		return sameScalar(av, any(b))
	case uint32:
		return sameScalar(av, any(b))
	case uint64:
		return sameScalar(av, any(b))
	case float32:
		return sameScalar(av, any(b))
	case float64:
		return sameScalar(av, any(b))
	case string:
		return sameScalar(av, any(b))
	case bool:
		return sameScalar(av, any(b))
	default:
		// Fall back to reflect.DeepEqual for slices, maps, structs, etc.
		return reflect.DeepEqual(a, b)
	}
}

// sameScalar guards against T being an interface type whose two values hold
// different dynamic types.
func sameScalar[V comparable](av V, b any) bool {
	bv, ok := b.(V)
	return ok && av == bv
}

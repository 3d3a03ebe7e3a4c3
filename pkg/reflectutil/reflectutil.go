package reflectutil

import "reflect"

// PartialEqual returns true if every non-zero field of a equals the
// corresponding field of b. Zero fields of a are ignored, which makes it
// convenient to assert only the fields a test cares about.
func PartialEqual[T any](a, b T) bool {
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Kind() == reflect.Pointer {
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() == vb.IsNil()
		}

		va = va.Elem()
		vb = vb.Elem()
	}

	for i := 0; i < va.NumField(); i++ {
		fa := va.Field(i)
		if !fa.CanInterface() {
			continue
		}

		if fa.IsZero() {
			continue
		}

		if !reflect.DeepEqual(fa.Interface(), vb.Field(i).Interface()) {
			return false
		}
	}

	return true
}

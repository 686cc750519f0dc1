package try

import "reflect"

// IsNil reports whether i is nil or a nil value of a nilable kind
// (pointer, interface, map, slice, chan, func, unsafe pointer).
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func catch(errp *error) {
	if r := recover(); r != nil {
		*errp = &PanicError{Value: r}
	}
}

package fn

import "reflect"

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// FromPtr converts a nullable pointer into a Maybe, making the absent
// case explicit instead of riding on nil.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// ToPtr converts a Maybe back into a nullable pointer.
func ToPtr[T any](m Maybe[T]) *T {
	if !m.HasValue() {
		return nil
	}
	v := m.Value()
	return &v
}

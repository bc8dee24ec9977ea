package app

import (
	"reflect"
)

// registry stores at most one value per dynamic type.
type registry struct {
	values map[reflect.Type]any
}

func newRegistry() *registry {
	return &registry{values: make(map[reflect.Type]any)}
}

// insert stores v, replacing any previous value of the same type.
func (r *registry) insert(v any) {
	r.values[reflect.TypeOf(v)] = v
}

func (r *registry) get(t reflect.Type) (any, bool) {
	v, ok := r.values[t]
	return v, ok
}

func (r *registry) has(t reflect.Type) bool {
	_, ok := r.values[t]
	return ok
}

func (r *registry) len() int {
	return len(r.values)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Res returns the shared resource of type T, if one is registered.
func Res[T any](f *Frame) (T, bool) {
	return fromRegistry[T](f.app.resources)
}

// NonSend returns the loop-thread-confined resource of type T, if one is
// registered. It is only reachable through a *Frame, which systems receive
// on the loop thread.
func NonSend[T any](f *Frame) (T, bool) {
	return fromRegistry[T](f.app.nonSend)
}

// HasRes reports whether a shared resource of type T is registered.
func HasRes[T any](a *App) bool {
	return a.resources.has(typeOf[T]())
}

// HasNonSend reports whether a non-send resource of type T is registered.
// This presence probe is the supported way for dependent code to detect an
// optional feature without touching the value itself.
func HasNonSend[T any](a *App) bool {
	return a.nonSend.has(typeOf[T]())
}

func fromRegistry[T any](r *registry) (T, bool) {
	v, ok := r.get(typeOf[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

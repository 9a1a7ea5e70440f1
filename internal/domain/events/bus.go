// Package events is a tiny in-process pub/sub bus keyed by event type.
// The core engine stays synchronous; anything that wants to react to a
// queue rotating or a game appearing subscribes here.
package events

import (
	"reflect"
	"sync"
)

type subscriber func(any)

var (
	mu   sync.RWMutex
	subs = map[string][]subscriber{} // type name -> subscribers
)

func typeNameOf[T any]() string {
	var zero *T
	rt := reflect.TypeOf(zero).Elem() // *T -> T without dereferencing nil
	return rt.PkgPath() + "." + rt.Name()
}

// Subscribe registers fn for events of type T and returns a cancel func.
func Subscribe[T any](fn func(T)) func() {
	name := typeNameOf[T]()
	wrapped := func(v any) {
		if ev, ok := v.(T); ok {
			fn(ev)
		}
	}

	mu.Lock()
	subs[name] = append(subs[name], wrapped)
	idx := len(subs[name]) - 1
	mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			defer mu.Unlock()
			if ss := subs[name]; idx < len(ss) {
				ss[idx] = nil // keep indices stable for other cancels
			}
		})
	}
}

// Publish delivers ev synchronously to every live subscriber of its type.
// A panicking subscriber does not take the publisher down.
func Publish[T any](ev T) {
	name := typeNameOf[T]()
	mu.RLock()
	ss := append([]subscriber(nil), subs[name]...)
	mu.RUnlock()
	for _, s := range ss {
		if s == nil {
			continue
		}
		func() {
			defer func() { _ = recover() }()
			s(ev)
		}()
	}
}

// Count returns how many subscriber slots exist for T, cancelled or not.
// Handy for wiring logs.
func Count[T any]() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(subs[typeNameOf[T]()])
}

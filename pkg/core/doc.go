// Package core provides the change-notification primitives spots is built on.
//
// Views publish their geometry through [Observable] values. A subscriber receives
// both the previous and the new value, which lets it decide whether a change is
// meaningful before doing any work:
//
//	size := core.NewObservable(graphics.Size{})
//	unsub := size.AddListener(func(old, new graphics.Size) {
//	    if graphics.SizeEqualTruncated(old, new) {
//	        return
//	    }
//	    relayout()
//	})
//	defer unsub()
//
// Subscriptions are never released implicitly. Whoever calls AddListener owns the
// returned unsubscribe function and must call it when the subscription ends.
//
// [Notifier] broadcasts a bare signal with no value.
package core

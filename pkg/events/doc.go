// Package events provides an in-memory, type-safe fan-out hub used to announce
// validation lifecycle events to interested listeners.
//
// A Hub delivers every value passed to Notify to all active subscriptions. Delivery
// never blocks the notifier: when a subscription's buffer is full the value is dropped
// for that subscription and the subscription is closed, so a stalled listener cannot
// slow down validation.
//
// Hub[T] has a Notify(ctx, T) method, so a *Hub[validation.Event] can be passed
// directly to validation.WithNotifier.
//
// Basic usage:
//
//	hub := events.NewHub[validation.Event](events.WithBufferSize(32))
//	defer hub.Close()
//
//	sub := hub.Subscribe(ctx, events.WithFilter(func(e validation.Event) bool {
//		return e.Target == "email"
//	}))
//	defer sub.Close()
//
//	manager := validation.NewManager(validation.WithNotifier(hub))
//
//	for e := range sub.C() {
//		fmt.Println(e.Kind, e.Target)
//	}
//
// Subscriptions are released when their context is canceled, when Close is called
// on them, when they fall behind, or when the hub itself is closed.
package events

package stdinmute

import "sync"

// listenerList is an ordered registry of data listeners shared by the real
// device and the mock. Dispatch walks a snapshot of the list, so a listener
// may subscribe or unsubscribe from within its own callback without
// corrupting the iteration.
type listenerList struct {
	mu   sync.RWMutex
	subs []*Subscription
}

// add registers fn and returns its handle. With first set, the listener is
// placed ahead of every existing one.
func (l *listenerList) add(fn DataListener, first bool) *Subscription {
	sub := &Subscription{fn: fn}
	l.mu.Lock()
	if first {
		l.subs = append([]*Subscription{sub}, l.subs...)
	} else {
		l.subs = append(l.subs, sub)
	}
	l.mu.Unlock()
	return sub
}

// remove drops sub from the list. Unknown or nil handles are ignored.
func (l *listenerList) remove(sub *Subscription) {
	if sub == nil {
		return
	}
	l.mu.Lock()
	for i, s := range l.subs {
		if s == sub {
			// Full slice expression forces a copy so an in-flight dispatch
			// snapshot keeps iterating over the old backing array.
			l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
			break
		}
	}
	l.mu.Unlock()
}

// dispatch hands chunk to every listener in registration order.
func (l *listenerList) dispatch(chunk []byte) {
	l.mu.RLock()
	subs := l.subs
	l.mu.RUnlock()

	for _, sub := range subs {
		sub.fn(chunk)
	}
}

// count returns the number of registered listeners.
func (l *listenerList) count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.subs)
}

// clear drops all listeners.
func (l *listenerList) clear() {
	l.mu.Lock()
	l.subs = nil
	l.mu.Unlock()
}

package warp

// Listener is a zero-argument notification callback
type Listener func()

// Subscription identifies a registered listener for Unsubscribe
type Subscription int

type subscriber struct {
	id Subscription
	fn Listener
}

// Signal is an ordered list of listeners. Emit calls them synchronously in
// registration order. Listeners added or removed during an Emit take effect
// from the next Emit.
type Signal struct {
	subscribers []subscriber
	nextID      Subscription
}

func (s *Signal) Subscribe(fn Listener) Subscription {
	s.nextID++
	s.subscribers = append(s.subscribers, subscriber{id: s.nextID, fn: fn})
	return s.nextID
}

// Unsubscribe removes a listener. Unknown subscriptions are ignored.
func (s *Signal) Unsubscribe(id Subscription) {
	for i, sub := range s.subscribers {
		if sub.id == id {
			// Copy so an in-flight Emit keeps iterating its own snapshot
			next := make([]subscriber, 0, len(s.subscribers)-1)
			next = append(next, s.subscribers[:i]...)
			s.subscribers = append(next, s.subscribers[i+1:]...)
			return
		}
	}
}

func (s *Signal) Emit() {
	snapshot := s.subscribers
	for _, sub := range snapshot {
		sub.fn()
	}
}

// Len returns the number of registered listeners
func (s *Signal) Len() int {
	return len(s.subscribers)
}

package game

// listeners keeps callbacks in registration order.
type listeners[F any] struct {
	next    int
	entries []listener[F]
}

type listener[F any] struct {
	id int
	fn F
}

func (l *listeners[F]) add(fn F) (remove func()) {
	id := l.next
	l.next++
	l.entries = append(l.entries, listener[F]{id: id, fn: fn})
	return func() {
		for i, e := range l.entries {
			if e.id == id {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

// each calls visit on a snapshot, so callbacks may unsubscribe themselves.
func (l *listeners[F]) each(visit func(F)) {
	snapshot := append([]listener[F](nil), l.entries...)
	for _, e := range snapshot {
		visit(e.fn)
	}
}

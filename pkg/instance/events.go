package instance

// Listener receives change events from an instance.
//
// Listeners are invoked synchronously, in registration order, after the
// mutation has fully completed. Cascaded removals are observable too:
// removing an atom first reports every tuple that vanished with it, then the
// atom itself. A panic inside a listener is recovered and logged on the
// instance's logger; it never unwinds the mutation or affects sibling
// listeners.
type Listener interface {
	// AtomAdded reports a newly inserted atom.
	AtomAdded(a Atom)

	// AtomRemoved reports a deleted atom.
	AtomRemoved(a Atom)

	// TupleAdded reports a tuple inserted into the named relation.
	TupleAdded(relation string, t Tuple)

	// TupleRemoved reports a tuple removed from the named relation.
	TupleRemoved(relation string, t Tuple)
}

// NoopListener is a no-op implementation of Listener.
// Embed it to implement only the events you care about.
type NoopListener struct{}

func (NoopListener) AtomAdded(Atom)             {}
func (NoopListener) AtomRemoved(Atom)           {}
func (NoopListener) TupleAdded(string, Tuple)   {}
func (NoopListener) TupleRemoved(string, Tuple) {}

// listenerSet holds an instance's subscribed listeners in registration
// order. The instance is single-writer, so no locking is needed.
type listenerSet struct {
	nextID  int
	entries []listenerEntry
}

type listenerEntry struct {
	id int
	l  Listener
}

// subscribe adds a listener and returns a cancel function that removes it.
// Cancel is idempotent.
func (s *listenerSet) subscribe(l Listener) func() {
	id := s.nextID
	s.nextID++
	s.entries = append(s.entries, listenerEntry{id: id, l: l})
	return func() {
		for i, e := range s.entries {
			if e.id == id {
				s.entries = append(s.entries[:i], s.entries[i+1:]...)
				return
			}
		}
	}
}

// each invokes fn for every listener in registration order, recovering
// panics so one misbehaving listener cannot break the mutation or starve
// the others.
func (m *Model) each(fn func(l Listener)) {
	for _, e := range m.listeners.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					m.logger.Error("listener panicked", "panic", r)
				}
			}()
			fn(e.l)
		}()
	}
}

func (m *Model) emitAtomAdded(a Atom) {
	m.each(func(l Listener) { l.AtomAdded(a) })
}

func (m *Model) emitAtomRemoved(a Atom) {
	m.each(func(l Listener) { l.AtomRemoved(a) })
}

func (m *Model) emitTupleAdded(relation string, t Tuple) {
	m.each(func(l Listener) { l.TupleAdded(relation, t.Clone()) })
}

func (m *Model) emitTupleRemoved(relation string, t Tuple) {
	m.each(func(l Listener) { l.TupleRemoved(relation, t.Clone()) })
}

var _ Listener = NoopListener{}

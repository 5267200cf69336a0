package statlog

// Append commits events to the log in order. This is the only mutation
// the log supports.
func (l *EventLog) Append(events ...StatEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, events...)
}

// Events returns a copy of the committed events in insertion order.
func (l *EventLog) Events() []StatEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]StatEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Len reports the number of committed events.
func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

package realtime

import (
	"sync"
)

// retiredLimit bounds how many finished keys a mailbox still remembers.
const retiredLimit = 1024

// mailbox is a coalescing queue keyed by K. Offering a value for a key that already has a
// pending one replaces it in place, so a slow reader sees fewer but always the latest
// values and the writer never waits.
//
// Once a final value of a key was delivered the key leaves the delivered set. The most
// recent retiredLimit finished keys are kept to drop late duplicates.
type mailbox[K comparable, V any] struct {
	mu        sync.Mutex
	pending   map[K]V
	queue     []K
	delivered map[K]V
	retired   map[K]V
	retiredQ  []K
	newer     func(next, prev V) bool
	final     func(v V) bool

	signal chan struct{}
	out    chan V
	done   chan struct{}
	once   sync.Once
}

// newMailbox creates a mailbox. final may be nil when no value ends its key.
func newMailbox[K comparable, V any](newer func(next, prev V) bool, final func(v V) bool) *mailbox[K, V] {
	m := &mailbox[K, V]{
		pending:   make(map[K]V),
		delivered: make(map[K]V),
		retired:   make(map[K]V),
		newer:     newer,
		final:     final,
		signal:    make(chan struct{}, 1),
		out:       make(chan V),
		done:      make(chan struct{}),
	}
	go m.forward()
	return m
}

// offer queues v unless the reader already has it or something newer. It reports
// whether v was queued.
func (m *mailbox[K, V]) offer(key K, v V) bool {
	m.mu.Lock()
	if !m.supersedes(key, v) {
		m.mu.Unlock()
		return false
	}
	if _, queued := m.pending[key]; !queued {
		m.queue = append(m.queue, key)
	}
	m.pending[key] = v
	m.mu.Unlock()

	select {
	case m.signal <- struct{}{}:
	default:
	}
	return true
}

// seen reports whether a value for key was ever queued or delivered.
func (m *mailbox[K, V]) seen(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pending[key]; ok {
		return true
	}
	if _, ok := m.delivered[key]; ok {
		return true
	}
	_, ok := m.retired[key]
	return ok
}

// supersedes must be called with mu held.
func (m *mailbox[K, V]) supersedes(key K, v V) bool {
	if prev, ok := m.pending[key]; ok {
		return m.newer(v, prev)
	}
	if prev, ok := m.delivered[key]; ok {
		return m.newer(v, prev)
	}
	if prev, ok := m.retired[key]; ok {
		return m.newer(v, prev)
	}
	return true
}

func (m *mailbox[K, V]) pop() (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for len(m.queue) > 0 {
		key := m.queue[0]
		m.queue = m.queue[1:]
		v := m.pending[key]
		delete(m.pending, key)

		if prev, ok := m.delivered[key]; ok && !m.newer(v, prev) {
			continue
		}
		if prev, ok := m.retired[key]; ok && !m.newer(v, prev) {
			continue
		}
		if m.final != nil && m.final(v) {
			delete(m.delivered, key)
			m.retire(key, v)
		} else {
			m.delivered[key] = v
		}
		return v, true
	}

	var zero V
	return zero, false
}

// retire must be called with mu held.
func (m *mailbox[K, V]) retire(key K, v V) {
	if _, ok := m.retired[key]; !ok {
		if len(m.retiredQ) == retiredLimit {
			delete(m.retired, m.retiredQ[0])
			m.retiredQ = m.retiredQ[1:]
		}
		m.retiredQ = append(m.retiredQ, key)
	}
	m.retired[key] = v
}

// tracked is the number of keys the mailbox remembers as delivered or retired.
func (m *mailbox[K, V]) tracked() (delivered, retired int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.delivered), len(m.retired)
}

func (m *mailbox[K, V]) forward() {
	defer close(m.out)

	for {
		select {
		case <-m.done:
			return
		case <-m.signal:
		}

		for {
			v, ok := m.pop()
			if !ok {
				break
			}
			select {
			case m.out <- v:
			case <-m.done:
				return
			}
		}
	}
}

func (m *mailbox[K, V]) close() {
	m.once.Do(func() { close(m.done) })
}

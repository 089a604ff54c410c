package exec

import "sync"

// Mailbox holds the most recent chunk read from one output stream.
//
// It has exactly one writer (the stream's reader goroutine) and one reader
// (the display loop). Publish overwrites whatever has not been taken yet;
// Take returns the contents and leaves the mailbox empty.
type Mailbox struct {
	mu  sync.Mutex
	buf []byte
}

// Publish replaces the contents with a copy of p.
func (m *Mailbox) Publish(p []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buf = append(m.buf[:0], p...)
}

// Take returns the current contents and clears the mailbox.
// It returns nil when nothing was published since the last Take.
func (m *Mailbox) Take() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.takeLocked()
}

func (m *Mailbox) takeLocked() []byte {
	if len(m.buf) == 0 {
		return nil
	}
	out := m.buf
	m.buf = nil
	return out
}

// takeBoth empties two mailboxes under both locks, always acquiring a before b.
func takeBoth(a, b *Mailbox) ([]byte, []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()
	return a.takeLocked(), b.takeLocked()
}

package catalog

// Memo remembers the font that most recently covered a rune.
//
// The remembered font is only a first guess: lookup always re-checks its
// coverage before reporting a hit. There is no eviction; a successful scan
// replaces the previous value.
type Memo struct {
	last *entry
}

// lookup returns the remembered entry if it covers r.
func (m *Memo) lookup(r rune) (*entry, bool) {
	if m.last == nil || !m.last.cov.Has(r) {
		return nil, false
	}
	return m.last, true
}

// remember replaces the remembered entry.
func (m *Memo) remember(e *entry) {
	m.last = e
}

// Last returns the remembered font, if any.
func (m *Memo) Last() (Ref, bool) {
	if m.last == nil {
		return Ref{}, false
	}
	return m.last.ref, true
}

// Reset forgets the remembered font.
func (m *Memo) Reset() {
	m.last = nil
}

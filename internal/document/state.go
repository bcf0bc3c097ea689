package document

import "sync"

// State is the single source of truth for the currently open document. All
// four fields of the Document travel together: writers build a complete new
// value first and swap it under the lock, readers copy the whole value, so a
// half-updated record is never observable.
type State struct {
	mu  sync.RWMutex
	doc Document
}

// NewState returns a State holding doc.
func NewState(doc Document) *State {
	return &State{doc: doc}
}

// Snapshot returns a copy of the current document.
func (s *State) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// SetDocument replaces the entire document as one unit.
func (s *State) SetDocument(doc Document) {
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
}

// SetContentFor updates content and size in place after a watch-triggered
// re-read, but only while path is still the open document. Path and name
// stay untouched: the file identity did not change, only its bytes. The size
// class is recomputed so Large/Normal tracks the new content.
//
// The path check happens under the write lock. A refresh that was read from
// disk before the document was replaced arrives here carrying the old path,
// and must not stamp stale content onto the new document; it reports false
// and the state is untouched.
func (s *State) SetContentFor(path, content string, size int64, noTruncate bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc.Path != path {
		return false
	}
	doc := s.doc
	doc.Content = content
	doc.Size = size
	doc.Class = Classify(size, noTruncate)
	s.doc = doc
	return true
}

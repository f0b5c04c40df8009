// This file contains the in-memory implementation for testing and
// dry runs.
package store

import (
	"sync"

	"github.com/kittclouds/acquigo/pkg/model"
)

// MemStore is an in-memory implementation of Storer. Sessions are held
// as parsed graphs; Counts walks them.
type MemStore struct {
	mu             sync.RWMutex
	sessions       []*model.Session
	uniqueSpeakers []*model.UniqueSpeaker
}

// NewMemStore creates a new in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Close is a no-op for MemStore.
func (s *MemStore) Close() error {
	return nil
}

// InsertSession appends the session graph. The returned id is the
// 1-based insertion index.
func (s *MemStore) InsertSession(sess *model.Session) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, sess)
	return int64(len(s.sessions)), nil
}

// InsertUniqueSpeaker appends the speaker identity.
func (s *MemStore) InsertUniqueSpeaker(sp *model.UniqueSpeaker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uniqueSpeakers = append(s.uniqueSpeakers, sp)
	return nil
}

// Sessions returns the stored session graphs.
func (s *MemStore) Sessions() []*model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions
}

// Counts walks the stored graphs.
func (s *MemStore) Counts() (Counts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := Counts{
		Sessions:       len(s.sessions),
		UniqueSpeakers: len(s.uniqueSpeakers),
	}
	for _, sess := range s.sessions {
		c.Speakers += len(sess.Speakers)
		c.Utterances += len(sess.Utterances)
		for _, utt := range sess.Utterances {
			c.Words += len(utt.Words)
			for _, word := range utt.Morphemes {
				c.Morphemes += len(word)
			}
		}
	}
	return c, nil
}

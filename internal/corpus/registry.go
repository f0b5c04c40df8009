package corpus

import (
	"sync"

	"github.com/kittclouds/acquigo/pkg/model"
)

// speakerKey identifies a speaker across the sessions of a corpus.
// Two session records with the same key are the same person.
type speakerKey struct {
	corpus    string
	code      string
	name      string
	birthDate string
}

// Registry deduplicates speakers across sessions and assigns stable
// ids. Safe for concurrent use by the session workers.
type Registry struct {
	mu     sync.Mutex
	nextID int64
	seen   map[speakerKey]*model.UniqueSpeaker
	order  []*model.UniqueSpeaker
}

// NewRegistry returns an empty registry. Ids start at 1.
func NewRegistry() *Registry {
	return &Registry{
		nextID: 1,
		seen:   make(map[speakerKey]*model.UniqueSpeaker),
	}
}

// Resolve returns the unique identity for the speaker, creating it on
// first sight, and stamps the speaker with its id.
func (r *Registry) Resolve(corpus string, sp *model.Speaker) *model.UniqueSpeaker {
	key := speakerKey{
		corpus:    corpus,
		code:      sp.Code,
		name:      sp.Name,
		birthDate: sp.BirthDate,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.seen[key]
	if !ok {
		u = &model.UniqueSpeaker{
			ID:        r.nextID,
			Corpus:    corpus,
			Code:      sp.Code,
			Name:      sp.Name,
			BirthDate: sp.BirthDate,
			Gender:    sp.Gender,
		}
		r.nextID++
		r.seen[key] = u
		r.order = append(r.order, u)
	}
	sp.UniqueID = u.ID
	return u
}

// All returns the registered identities in assignment order.
func (r *Registry) All() []*model.UniqueSpeaker {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.UniqueSpeaker, len(r.order))
	copy(out, r.order)
	return out
}

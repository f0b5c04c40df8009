package store

import "github.com/kittclouds/acquigo/pkg/model"

// Storer defines the interface for data persistence.
// This allows swapping between MemStore (testing, dry runs) and
// SQLiteStore (production).
type Storer interface {
	// InsertSession writes one session graph and returns its row id.
	InsertSession(sess *model.Session) (int64, error)

	// InsertUniqueSpeaker writes one cross-session speaker identity.
	InsertUniqueSpeaker(sp *model.UniqueSpeaker) error

	// Counts reports the table sizes after a load.
	Counts() (Counts, error)

	// Lifecycle
	Close() error
}

// Counts summarizes the loaded tables.
type Counts struct {
	Sessions       int
	Speakers       int
	UniqueSpeakers int
	Utterances     int
	Words          int
	Morphemes      int
}

// Package store provides SQLite-backed persistence for parsed corpora.
// Uses ncruces/go-sqlite3/driver which provides a database/sql interface.
package store

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/kittclouds/acquigo/pkg/model"
)

// SQLiteStore is the SQLite-backed data store.
// Thread-safe for concurrent session writers.
type SQLiteStore struct {
	mu sync.Mutex
	db *sql.DB
}

// schema defines the corpus tables. Referential integrity is managed
// at the application level; a session graph is written in one
// transaction.
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id INTEGER PRIMARY KEY,
    corpus TEXT,
    source_id TEXT NOT NULL,
    date TEXT,
    media_file TEXT,
    duration TEXT,
    target_child_fk INTEGER
);

CREATE INDEX IF NOT EXISTS idx_sessions_corpus ON sessions(corpus);

CREATE TABLE IF NOT EXISTS uniquespeakers (
    id INTEGER PRIMARY KEY,
    corpus TEXT,
    speaker_label TEXT,
    name TEXT,
    birthdate TEXT,
    gender TEXT
);

CREATE TABLE IF NOT EXISTS speakers (
    id INTEGER PRIMARY KEY,
    session_id_fk INTEGER,
    uniquespeaker_id_fk INTEGER,
    speaker_label TEXT,
    name TEXT,
    age_raw TEXT,
    age TEXT,
    age_in_days INTEGER,
    gender_raw TEXT,
    gender TEXT,
    role_raw TEXT,
    role TEXT,
    macrorole TEXT,
    languages_spoken TEXT,
    birthdate TEXT
);

CREATE INDEX IF NOT EXISTS idx_speakers_session ON speakers(session_id_fk);

CREATE TABLE IF NOT EXISTS utterances (
    id INTEGER PRIMARY KEY,
    session_id_fk INTEGER,
    source_id TEXT,
    speaker_id_fk INTEGER,
    addressee_id_fk INTEGER,
    utterance_raw TEXT,
    utterance TEXT,
    actual_utterance TEXT,
    target_utterance TEXT,
    translation TEXT,
    comment TEXT,
    morpheme TEXT,
    gloss_raw TEXT,
    pos_raw TEXT,
    sentence_type TEXT,
    start_raw TEXT,
    start TEXT,
    end_raw TEXT,
    "end" TEXT,
    warning TEXT
);

CREATE INDEX IF NOT EXISTS idx_utterances_session ON utterances(session_id_fk);
CREATE INDEX IF NOT EXISTS idx_utterances_speaker ON utterances(speaker_id_fk);

CREATE TABLE IF NOT EXISTS words (
    id INTEGER PRIMARY KEY,
    utterance_id_fk INTEGER,
    language TEXT,
    word TEXT,
    word_actual TEXT,
    word_target TEXT,
    pos TEXT,
    pos_ud TEXT,
    warning TEXT
);

CREATE INDEX IF NOT EXISTS idx_words_utterance ON words(utterance_id_fk);

CREATE TABLE IF NOT EXISTS morphemes (
    id INTEGER PRIMARY KEY,
    utterance_id_fk INTEGER,
    word_id_fk INTEGER,
    language TEXT,
    type TEXT,
    morpheme TEXT,
    gloss_raw TEXT,
    gloss TEXT,
    pos_raw TEXT,
    pos TEXT,
    pos_ud TEXT,
    warning TEXT
);

CREATE INDEX IF NOT EXISTS idx_morphemes_utterance ON morphemes(utterance_id_fk);
CREATE INDEX IF NOT EXISTS idx_morphemes_word ON morphemes(word_id_fk);
`

// NewSQLiteStore creates a new in-memory SQLite store.
func NewSQLiteStore() (*SQLiteStore, error) {
	return NewSQLiteStoreWithDSN(":memory:")
}

// NewSQLiteStoreWithDSN creates a store with a specific data source name.
// Use ":memory:" for in-memory or a file path for persistent storage.
func NewSQLiteStoreWithDSN(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create schema
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// InsertSession writes the whole session graph in one transaction and
// returns the session row id. Morphemes reference their word row only
// when the utterance's morphology is positionally linked to its words.
func (s *SQLiteStore) InsertSession(sess *model.Session) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO sessions (corpus, source_id, date, media_file, duration)
		VALUES (?, ?, ?, ?, ?)
	`, sess.Corpus, sess.SourceID, nullIfEmpty(sess.Date),
		nullIfEmpty(sess.MediaFilename), nullIfEmpty(sess.Duration))
	if err != nil {
		return 0, fmt.Errorf("failed to insert session: %w", err)
	}
	sessionID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	speakerIDs := make(map[*model.Speaker]int64, len(sess.Speakers))
	for _, sp := range sess.Speakers {
		res, err := tx.Exec(`
			INSERT INTO speakers (session_id_fk, uniquespeaker_id_fk,
				speaker_label, name, age_raw, age, age_in_days,
				gender_raw, gender, role_raw, role, macrorole,
				languages_spoken, birthdate)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, sessionID, nullIfZero(sp.UniqueID), sp.Code, nullIfEmpty(sp.Name),
			nullIfEmpty(sp.AgeRaw), nullIfEmpty(sp.Age), nullIfZero(int64(sp.AgeInDays)),
			nullIfEmpty(sp.GenderRaw), nullIfEmpty(sp.Gender),
			nullIfEmpty(sp.RoleRaw), nullIfEmpty(sp.Role), nullIfEmpty(sp.MacroRole),
			nullIfEmpty(sp.Languages), nullIfEmpty(sp.BirthDate))
		if err != nil {
			return 0, fmt.Errorf("failed to insert speaker %s: %w", sp.Code, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		speakerIDs[sp] = id

		if sp.Code == sess.TargetChildCode {
			if _, err := tx.Exec(
				`UPDATE sessions SET target_child_fk = ? WHERE id = ?`,
				id, sessionID); err != nil {
				return 0, err
			}
		}
	}

	for _, utt := range sess.Utterances {
		if err := s.insertUtterance(tx, sessionID, speakerIDs, utt); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit session: %w", err)
	}
	return sessionID, nil
}

func (s *SQLiteStore) insertUtterance(tx *sql.Tx, sessionID int64, speakerIDs map[*model.Speaker]int64, utt *model.Utterance) error {
	res, err := tx.Exec(`
		INSERT INTO utterances (session_id_fk, source_id,
			speaker_id_fk, addressee_id_fk,
			utterance_raw, utterance, actual_utterance, target_utterance,
			translation, comment, morpheme, gloss_raw, pos_raw,
			sentence_type, start_raw, start, end_raw, "end", warning)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sessionID, utt.SourceID,
		speakerRef(speakerIDs, utt.Speaker), speakerRef(speakerIDs, utt.Addressee),
		nullIfEmpty(utt.UtteranceRaw), nullIfEmpty(utt.Utterance),
		nullIfEmpty(utt.ActualForm), nullIfEmpty(utt.TargetForm),
		nullIfEmpty(utt.Translation), nullIfEmpty(utt.Comment),
		nullIfEmpty(utt.MorphemeRaw), nullIfEmpty(utt.GlossRaw), nullIfEmpty(utt.POSRaw),
		nullIfEmpty(utt.SentenceType),
		nullIfEmpty(utt.StartRaw), nullIfEmpty(utt.Start),
		nullIfEmpty(utt.EndRaw), nullIfEmpty(utt.End),
		nullIfEmpty(utt.Warning))
	if err != nil {
		return fmt.Errorf("failed to insert utterance %s: %w", utt.SourceID, err)
	}
	uttID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	wordIDs := make([]int64, len(utt.Words))
	for i, w := range utt.Words {
		res, err := tx.Exec(`
			INSERT INTO words (utterance_id_fk, language, word,
				word_actual, word_target, pos, pos_ud, warning)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, uttID, nullIfEmpty(w.Language), nullIfEmpty(w.Word),
			nullIfEmpty(w.WordActual), nullIfEmpty(w.WordTarget),
			nullIfEmpty(w.POS), nullIfEmpty(w.POSUD), nullIfEmpty(w.Warning))
		if err != nil {
			return fmt.Errorf("failed to insert word: %w", err)
		}
		if wordIDs[i], err = res.LastInsertId(); err != nil {
			return err
		}
	}

	linked := len(utt.Morphemes) == len(utt.Words)
	for i, word := range utt.Morphemes {
		var wordID interface{}
		if linked {
			wordID = wordIDs[i]
		}
		for _, m := range word {
			_, err := tx.Exec(`
				INSERT INTO morphemes (utterance_id_fk, word_id_fk,
					language, type, morpheme, gloss_raw, gloss,
					pos_raw, pos, pos_ud, warning)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, uttID, wordID, nullIfEmpty(m.Language), nullIfEmpty(m.Type),
				nullIfEmpty(m.Morpheme), nullIfEmpty(m.GlossRaw), nullIfEmpty(m.Gloss),
				nullIfEmpty(m.POSRaw), nullIfEmpty(m.POS), nullIfEmpty(m.POSUD),
				nullIfEmpty(m.Warning))
			if err != nil {
				return fmt.Errorf("failed to insert morpheme: %w", err)
			}
		}
	}
	return nil
}

// InsertUniqueSpeaker writes one cross-session speaker identity. The
// caller assigns the id.
func (s *SQLiteStore) InsertUniqueSpeaker(sp *model.UniqueSpeaker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO uniquespeakers (id, corpus, speaker_label, name, birthdate, gender)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sp.ID, sp.Corpus, sp.Code, nullIfEmpty(sp.Name),
		nullIfEmpty(sp.BirthDate), nullIfEmpty(sp.Gender))
	if err != nil {
		return fmt.Errorf("failed to insert unique speaker %s: %w", sp.Code, err)
	}
	return nil
}

// Counts reports the table sizes.
func (s *SQLiteStore) Counts() (Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c Counts
	for _, q := range []struct {
		table string
		dst   *int
	}{
		{"sessions", &c.Sessions},
		{"speakers", &c.Speakers},
		{"uniquespeakers", &c.UniqueSpeakers},
		{"utterances", &c.Utterances},
		{"words", &c.Words},
		{"morphemes", &c.Morphemes},
	} {
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + q.table).Scan(q.dst); err != nil {
			return Counts{}, fmt.Errorf("failed to count %s: %w", q.table, err)
		}
	}
	return c, nil
}

func speakerRef(ids map[*model.Speaker]int64, sp *model.Speaker) interface{} {
	if sp == nil {
		return nil
	}
	if id, ok := ids[sp]; ok {
		return id
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullIfZero(n int64) interface{} {
	if n == 0 {
		return nil
	}
	return n
}

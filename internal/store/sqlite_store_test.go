package store

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/acquigo/pkg/model"
)

func newSQLiteTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteSpeakerForeignKeys(t *testing.T) {
	s := newSQLiteTestStore(t)
	sessID, err := s.InsertSession(testSession())
	require.NoError(t, err)

	var memID, chiID int64
	require.NoError(t, s.db.QueryRow(
		`SELECT id FROM speakers WHERE speaker_label = 'MEM'`).Scan(&memID))
	require.NoError(t, s.db.QueryRow(
		`SELECT id FROM speakers WHERE speaker_label = 'CHI'`).Scan(&chiID))

	var speakerFK, addresseeFK int64
	require.NoError(t, s.db.QueryRow(
		`SELECT speaker_id_fk, addressee_id_fk FROM utterances WHERE source_id = 'h2ab_0'`).
		Scan(&speakerFK, &addresseeFK))
	assert.Equal(t, memID, speakerFK)
	assert.Equal(t, chiID, addresseeFK)

	var targetFK int64
	require.NoError(t, s.db.QueryRow(
		`SELECT target_child_fk FROM sessions WHERE id = ?`, sessID).Scan(&targetFK))
	assert.Equal(t, chiID, targetFK)
}

func TestSQLiteMorphemeWordLinkage(t *testing.T) {
	s := newSQLiteTestStore(t)
	_, err := s.InsertSession(testSession())
	require.NoError(t, err)

	rows, err := s.db.Query(`SELECT word_id_fk FROM morphemes`)
	require.NoError(t, err)
	defer rows.Close()

	n := 0
	for rows.Next() {
		var fk sql.NullInt64
		require.NoError(t, rows.Scan(&fk))
		assert.True(t, fk.Valid, "aligned morphemes link to their word")
		n++
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, 2, n)
}

func TestSQLiteMisalignedMorphemesStayUnlinked(t *testing.T) {
	s := newSQLiteTestStore(t)

	sess := testSession()
	utt := sess.Utterances[0]
	// Drop one morpheme word so the outer count diverges from the
	// word count.
	utt.Morphemes = utt.Morphemes[:1]
	utt.Warning = "broken alignment"

	_, err := s.InsertSession(sess)
	require.NoError(t, err)

	var fk sql.NullInt64
	require.NoError(t, s.db.QueryRow(`SELECT word_id_fk FROM morphemes`).Scan(&fk))
	assert.False(t, fk.Valid, "misaligned morphemes must not link to words")

	var warning string
	require.NoError(t, s.db.QueryRow(
		`SELECT warning FROM utterances WHERE source_id = 'h2ab_0'`).Scan(&warning))
	assert.Equal(t, "broken alignment", warning)
}

func TestSQLiteNullsEmptyStrings(t *testing.T) {
	s := newSQLiteTestStore(t)

	sess := testSession()
	sess.Utterances[0].Translation = ""
	_, err := s.InsertSession(sess)
	require.NoError(t, err)

	var translation sql.NullString
	require.NoError(t, s.db.QueryRow(
		`SELECT translation FROM utterances`).Scan(&translation))
	assert.False(t, translation.Valid)
}

func TestSQLiteUniqueSpeakerRoundTrip(t *testing.T) {
	s := newSQLiteTestStore(t)
	require.NoError(t, s.InsertUniqueSpeaker(&model.UniqueSpeaker{
		ID: 7, Corpus: "Sesotho", Code: "CHI",
		Name: "Hlobohang", BirthDate: "2006-01-14", Gender: "Female",
	}))

	var corpus, code string
	require.NoError(t, s.db.QueryRow(
		`SELECT corpus, speaker_label FROM uniquespeakers WHERE id = 7`).
		Scan(&corpus, &code))
	assert.Equal(t, "Sesotho", corpus)
	assert.Equal(t, "CHI", code)
}

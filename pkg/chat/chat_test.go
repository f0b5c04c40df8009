package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	f := Parse(scanSession)

	assert.Equal(t, "12-SEP-1997", f.Date)
	assert.Equal(t, "h2ab", f.Media.Filename)
	assert.Equal(t, "all snd kana jmax wav", f.Metadata["Comment"])

	require.Len(t, f.Participants, 2)

	mem := f.Participant("MEM")
	require.NotNil(t, mem)
	assert.Equal(t, "Mme_Manyili", mem.Name)
	assert.Equal(t, "Grandmother", mem.Role)
	assert.Equal(t, "female", mem.Sex)
	assert.Equal(t, "Sesotho", mem.Corpus)

	chi := f.Participant("CHI")
	require.NotNil(t, chi)
	assert.Equal(t, "Target_Child", chi.Role)
	assert.Equal(t, "2;2.", chi.Age)
	assert.Equal(t, "14-JAN-2006", chi.BirthDate)
	assert.Equal(t, "14-JAN-2006", f.BirthOf("CHI"))
}

func TestParseParticipantsRoleBeatsID(t *testing.T) {
	session := "@Participants:\tCHI Hlobohang Target_Child\n" +
		"@ID:\tsme|Sesotho|CHI|2;2.||||Child|||\n" +
		"*CHI:\tmoo .\n"
	f := Parse(session)
	chi := f.Participant("CHI")
	require.NotNil(t, chi)
	assert.Equal(t, "Target_Child", chi.Role)
	assert.Equal(t, "2;2.", chi.Age)
}

func TestParseIDOnlyParticipant(t *testing.T) {
	session := "@ID:\tsme|Sesotho|MEM||female|||Grandmother|||\n" +
		"*MEM:\tmoo .\n"
	f := Parse(session)
	mem := f.Participant("MEM")
	require.NotNil(t, mem)
	assert.Equal(t, "Grandmother", mem.Role)
}

func TestParseRecords(t *testing.T) {
	f := Parse(scanSession)
	require.Len(t, f.Records, 5)
	assert.Zero(t, f.SkippedRecords)

	for i, rec := range f.Records {
		assert.Equal(t, i, rec.UID)
	}

	first := f.Records[0]
	assert.Equal(t, "MEM", first.SpeakerCode)
	assert.Equal(t, "ke eng ?", first.Utterance)
	assert.Equal(t, "0", first.StartTime)
	assert.Equal(t, "8551", first.EndTime)
	assert.Equal(t, "CHI", first.Addressee())
	assert.Equal(t, "What is it ?", first.Translation())
	assert.Equal(t, "ke eng ?", first.Tier("gls"))
}

func TestRecordComments(t *testing.T) {
	f := Parse(scanSession)
	assert.Equal(t, "is furious; Points to tape", f.Records[0].Comments())
	assert.Equal(t, "test comment", f.Records[1].Comments())
	assert.Equal(t, "", f.Records[2].Comments())
}

func TestRecordTierFallback(t *testing.T) {
	rec := &Record{Tiers: map[string]string{"xmor": "a-b"}}
	assert.Equal(t, "a-b", rec.Tier("mor", "xmor"))
	assert.Equal(t, "", rec.Tier("gls"))
}

func TestParseEmptySession(t *testing.T) {
	f := Parse("@UTF8\n@Begin\n@End\n")
	assert.Empty(t, f.Records)
	assert.Empty(t, f.Participants)
}

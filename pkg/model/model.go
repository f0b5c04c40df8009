// Package model holds the session object graph produced by a parse:
// one Session with its Speakers and Utterances, each Utterance with its
// Words and nested Morphemes. The graph is immutable once a parse
// completes and is handed as a whole to the database writer.
package model

// Session represents one transcript file.
type Session struct {
	Corpus        string
	SourceID      string
	Date          string
	MediaFilename string
	Duration      string

	TargetChildCode string
	TargetChildName string

	Speakers   []*Speaker
	Utterances []*Utterance
}

// Speaker is a per-session participant record. Code is the join key
// between the header fields and the utterance speaker labels.
type Speaker struct {
	// UniqueID joins the per-session record to its cross-session
	// identity. Zero until the registry assigns one.
	UniqueID int64

	Code      string
	Name      string
	GenderRaw string
	Gender    string
	BirthDate string
	AgeRaw    string
	Age       string
	AgeInDays int
	RoleRaw   string
	Role      string
	MacroRole string
	Languages string
}

// Utterance is one speaker turn with its derived actual/target forms
// and raw morphology tiers.
type Utterance struct {
	SourceID string
	Speaker  *Speaker

	// Addressee is resolved against the session speakers and may be nil.
	Addressee *Speaker

	UtteranceRaw string
	Utterance    string
	ActualForm   string
	TargetForm   string

	Translation string
	Comment     string

	MorphemeRaw string
	GlossRaw    string
	POSRaw      string

	SentenceType string

	StartRaw string
	Start    string
	EndRaw   string
	End      string

	// Warning is non-empty when the record could only partially be
	// interpreted, e.g. on broken morphology alignment.
	Warning string

	Words []*Word

	// Morphemes is indexed by word position: the outer slice parallels
	// Words when the tiers align, the inner slice holds the morphemes
	// of that word. On misalignment the outer slice stands on its own
	// and no positional link to Words may be assumed.
	Morphemes [][]*Morpheme
}

// Word is one whitespace-delimited token of the utterance.
type Word struct {
	Language   string
	Word       string
	WordActual string
	WordTarget string
	POS        string
	POSUD      string
	Warning    string
}

// Morpheme is one unit of the morphology tiers.
type Morpheme struct {
	Language string
	Type     string
	Morpheme string
	GlossRaw string
	Gloss    string
	POSRaw   string
	POS      string
	POSUD    string
	Warning  string
}

// UniqueSpeaker identifies a speaker across the sessions of a corpus.
type UniqueSpeaker struct {
	ID        int64
	Corpus    string
	Code      string
	Name      string
	BirthDate string
	Gender    string
}

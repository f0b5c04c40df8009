// Package chat parses CHAT-format transcript sessions: a metadata
// header of @-prefixed fields followed by records, each a *-prefixed
// speaker turn with %-prefixed dependent annotation tiers. The package
// also derives the actual and target surface forms of an annotated
// utterance and classifies utterances by their terminator.
package chat

import "strings"

// Participant is one speaker as declared in the session header. The
// entry is built incrementally: @Participants creates it, @ID fills in
// the remaining fields keyed by the same code, and a later
// @Birth of <code> field adds the birth date.
type Participant struct {
	Code      string
	Name      string
	Role      string
	Language  string
	Corpus    string
	Age       string
	Sex       string
	Group     string
	SES       string
	Education string
	Custom    string
	BirthDate string
}

// Record is one utterance turn with its dependent tiers.
type Record struct {
	UID         int
	SpeakerCode string
	Utterance   string
	StartTime   string
	EndTime     string
	Tiers       map[string]string
}

// Addressee returns the content of the add tier.
func (r *Record) Addressee() string {
	return r.Tiers["add"]
}

// Translation returns the content of the eng tier.
func (r *Record) Translation() string {
	return r.Tiers["eng"]
}

// Comments joins the com, sit, act and exp tiers, skipping empty ones.
func (r *Record) Comments() string {
	var parts []string
	for _, key := range []string{"com", "sit", "act", "exp"} {
		if v := r.Tiers[key]; v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "; ")
}

// Tier returns the content of the first non-empty tier among keys.
func (r *Record) Tier(keys ...string) string {
	for _, key := range keys {
		if v := r.Tiers[key]; v != "" {
			return v
		}
	}
	return ""
}

// File is one parsed CHAT session.
type File struct {
	Date         string
	PID          string
	Media        MediaFields
	Participants []*Participant
	Records      []*Record

	// Metadata holds header fields the parser does not interpret,
	// keyed without the @.
	Metadata map[string]string

	// SkippedRecords counts records whose main line could not be
	// parsed. They are dropped; the rest of the session is kept.
	SkippedRecords int
}

// Participant returns the participant with the given code, or nil.
func (f *File) Participant(code string) *Participant {
	for _, p := range f.Participants {
		if p.Code == code {
			return p
		}
	}
	return nil
}

// BirthOf returns the birth date declared for the given code.
func (f *File) BirthOf(code string) string {
	if p := f.Participant(code); p != nil {
		return p.BirthDate
	}
	return ""
}

// Parse reads a whole CHAT session into a File. Header fields and
// records are interpreted per the conventions in scan.go and
// metadata.go; a malformed record is skipped rather than failing the
// session.
func Parse(session string) *File {
	f := &File{Metadata: make(map[string]string)}
	f.parseHeader(session)
	f.parseRecords(session)
	return f
}

func (f *File) parseHeader(session string) {
	for _, field := range MetadataFields(session) {
		key, content := MetadataField(field)
		switch {
		case key == "ID":
			id := ParseID(content)
			p := f.Participant(id.Code)
			if p == nil {
				p = &Participant{Code: id.Code}
				f.Participants = append(f.Participants, p)
			}
			p.Language = id.Language
			p.Corpus = id.Corpus
			p.Age = id.Age
			p.Sex = id.Sex
			p.Group = id.Group
			p.SES = id.SES
			p.Education = id.Education
			p.Custom = id.Custom
			// @Participants has precedence for the role.
			if p.Role == "" {
				p.Role = id.Role
			}
		case key == "Participants":
			for _, entry := range Participants(content) {
				code, name, role := ParticipantFields(entry)
				p := f.Participant(code)
				if p == nil {
					p = &Participant{Code: code}
					f.Participants = append(f.Participants, p)
				}
				p.Name = name
				p.Role = role
			}
		case key == "Media":
			f.Media = ParseMedia(content)
		case key == "Date":
			f.Date = content
		case key == "PID":
			f.PID = content
		case strings.HasPrefix(key, "Birth of "):
			code := strings.TrimPrefix(key, "Birth of ")
			p := f.Participant(code)
			if p == nil {
				p = &Participant{Code: code}
				f.Participants = append(f.Participants, p)
			}
			p.BirthDate = content
		default:
			f.Metadata[key] = content
		}
	}
}

func (f *File) parseRecords(session string) {
	uid := 0
	for _, raw := range Records(session) {
		label, utterance, start, end, ok := MainLineFields(MainLine(raw))
		if !ok {
			f.SkippedRecords++
			continue
		}
		rec := &Record{
			UID:         uid,
			SpeakerCode: label,
			Utterance:   utterance,
			StartTime:   start,
			EndTime:     end,
			Tiers:       make(map[string]string),
		}
		for _, tier := range DependentTiers(raw) {
			if key, content, ok := DependentTier(tier); ok {
				rec.Tiers[key] = content
			}
		}
		f.Records = append(f.Records, rec)
		uid++
	}
}

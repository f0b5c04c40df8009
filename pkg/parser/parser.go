// Package parser turns one CHAT session file into the session object
// graph: metadata, speakers with unified roles, and utterances with
// words and morphemes. Corpus-specific behavior is injected through
// Policies; everything else is fixed CHAT semantics.
package parser

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kittclouds/acquigo/internal/roles"
	"github.com/kittclouds/acquigo/pkg/align"
	"github.com/kittclouds/acquigo/pkg/chat"
	"github.com/kittclouds/acquigo/pkg/chat/cleaner"
	"github.com/kittclouds/acquigo/pkg/model"
)

// Policies bundles the corpus-specific knobs of a parse. The zero
// value is completed by Defaults; a corpus configuration overrides
// individual fields.
type Policies struct {
	// TargetChild picks the target child among the session
	// participants. The default takes the participant whose role is
	// Target_Child.
	TargetChild func(f *chat.File) (code, name string)

	// MorphTierKeys names the dependent tiers carrying morphology, in
	// lookup order.
	MorphTierKeys []string

	// MorphemeDelimiter splits a morpheme word into morphemes.
	MorphemeDelimiter string

	// MainMorphemeTier is "gloss" or "segment" and decides which unit
	// list anchors misalignment repair.
	MainMorphemeTier string

	// WordLanguage and MorphemeLanguage resolve per-unit languages.
	// Both default to returning "".
	WordLanguage     func(word string) string
	MorphemeLanguage func(seg, gloss, pos string) string

	// CleanGloss, CleanPOS and CleanPOSUD map raw labels to unified
	// ones. The defaults pass the raw label through for gloss and POS
	// and drop it for POS UD.
	CleanGloss func(gloss string) string
	CleanPOS   func(pos string) string
	CleanPOSUD func(pos string) string
}

// Defaults fills every unset field of p with the standard CHAT policy.
func (p Policies) Defaults() Policies {
	if p.TargetChild == nil {
		p.TargetChild = TargetChildByRole
	}
	if p.MorphTierKeys == nil {
		p.MorphTierKeys = []string{"mor"}
	}
	if p.MorphemeDelimiter == "" {
		p.MorphemeDelimiter = "-"
	}
	if p.MainMorphemeTier == "" {
		p.MainMorphemeTier = "gloss"
	}
	if p.WordLanguage == nil {
		p.WordLanguage = func(string) string { return "" }
	}
	if p.MorphemeLanguage == nil {
		p.MorphemeLanguage = func(_, _, _ string) string { return "" }
	}
	if p.CleanGloss == nil {
		p.CleanGloss = func(gloss string) string { return gloss }
	}
	if p.CleanPOS == nil {
		p.CleanPOS = func(pos string) string { return pos }
	}
	if p.CleanPOSUD == nil {
		p.CleanPOSUD = func(string) string { return "" }
	}
	return p
}

// TargetChildByRole is the default target-child policy: the first
// participant whose role is Target_Child.
func TargetChildByRole(f *chat.File) (code, name string) {
	for _, p := range f.Participants {
		if p.Role == "Target_Child" {
			return p.Code, p.Name
		}
	}
	return "", ""
}

// SessionParser parses one session file.
type SessionParser struct {
	path     string
	corpus   string
	policies Policies
	roles    *roles.Mapper
}

// New returns a parser for the session file at path, attributing the
// session to the named corpus.
func New(path, corpus string, policies Policies, mapper *roles.Mapper) *SessionParser {
	if mapper == nil {
		mapper = roles.NewMapper()
	}
	return &SessionParser{
		path:     path,
		corpus:   corpus,
		policies: policies.Defaults(),
		roles:    mapper,
	}
}

// Parse reads and parses the session file.
func (p *SessionParser) Parse() (*model.Session, error) {
	content, err := os.ReadFile(p.path)
	if err != nil {
		return nil, err
	}
	return p.ParseString(string(content)), nil
}

// ParseString parses session content that is already in memory.
func (p *SessionParser) ParseString(content string) *model.Session {
	f := chat.Parse(content)

	session := &model.Session{Corpus: p.corpus}
	p.addMetadata(session, f)
	p.addSpeakers(session, f)
	p.addRecords(session, f)
	return session
}

func (p *SessionParser) addMetadata(session *model.Session, f *chat.File) {
	base := filepath.Base(p.path)
	session.SourceID = strings.TrimSuffix(base, filepath.Ext(base))
	session.Date = cleaner.CleanDate(f.Date)
	session.MediaFilename = f.Media.Filename
	session.Duration = f.Metadata["Time Duration"]
	session.TargetChildCode, session.TargetChildName = p.policies.TargetChild(f)
}

func (p *SessionParser) addSpeakers(session *model.Session, f *chat.File) {
	for _, part := range f.Participants {
		sp := &model.Speaker{
			Code:      part.Code,
			Name:      part.Name,
			Languages: part.Language,
			BirthDate: cleaner.CleanDate(part.BirthDate),
			AgeRaw:    part.Age,
			RoleRaw:   part.Role,
			GenderRaw: part.Sex,
		}

		sp.Age = sp.AgeRaw
		if sp.Age == "" {
			sp.Age = AgeFromDates(sp.BirthDate, session.Date)
		}
		sp.AgeInDays = AgeInDays(sp.Age)

		sp.Role = p.roles.Role(sp.RoleRaw)
		sp.MacroRole = p.roles.MacroRole(sp.RoleRaw, sp.AgeInDays, sp.Code)

		sp.Gender = normalizeGender(sp.GenderRaw)
		if sp.Gender == "" {
			sp.Gender = p.roles.Gender(sp.RoleRaw)
		}

		session.Speakers = append(session.Speakers, sp)
	}
}

// normalizeGender unifies the header sex field. Anything other than a
// spelling of male or female passes through untouched.
func normalizeGender(raw string) string {
	switch strings.ToLower(raw) {
	case "male", "m":
		return "Male"
	case "female", "f":
		return "Female"
	}
	return raw
}

func speakerByCode(session *model.Session, code string) *model.Speaker {
	for _, sp := range session.Speakers {
		if sp.Code == code {
			return sp
		}
	}
	return nil
}

func (p *SessionParser) addRecords(session *model.Session, f *chat.File) {
	for _, rec := range f.Records {
		utt := p.buildUtterance(session, rec)
		session.Utterances = append(session.Utterances, utt)
		p.addWords(utt)
		p.addMorphemes(utt, rec)
		align.Words(utt)
	}
}

func (p *SessionParser) buildUtterance(session *model.Session, rec *chat.Record) *model.Utterance {
	utt := &model.Utterance{
		SourceID:     session.SourceID + "_" + strconv.Itoa(rec.UID),
		Speaker:      speakerByCode(session, rec.SpeakerCode),
		Addressee:    speakerByCode(session, rec.Addressee()),
		UtteranceRaw: rec.Utterance,
		Translation:  rec.Translation(),
		Comment:      rec.Comments(),
		StartRaw:     rec.StartTime,
		EndRaw:       rec.EndTime,
		SentenceType: chat.UtteranceSentenceType(rec.Utterance),
	}
	utt.Start = cleaner.CleanTimestamp(utt.StartRaw)
	utt.End = cleaner.CleanTimestamp(utt.EndRaw)

	morph := rec.Tier(p.policies.MorphTierKeys...)
	utt.MorphemeRaw = morph
	utt.GlossRaw = morph
	utt.POSRaw = morph

	utt.ActualForm = cleaner.CleanUtterance(chat.ToActual(rec.Utterance))
	utt.TargetForm = cleaner.CleanUtterance(chat.ToTarget(rec.Utterance))
	return utt
}

func (p *SessionParser) addWords(utt *model.Utterance) {
	actual := chat.UtteranceWords(utt.ActualForm)
	target := chat.UtteranceWords(utt.TargetForm)

	n := len(actual)
	if len(target) < n {
		n = len(target)
	}
	for i := 0; i < n; i++ {
		w := &model.Word{
			Language:   p.policies.WordLanguage(actual[i]),
			Word:       cleaner.CleanWord(actual[i]),
			WordActual: cleaner.CleanWord(actual[i]),
			WordTarget: cleaner.CleanWord(target[i]),
		}
		utt.Words = append(utt.Words, w)
	}

	// Rebuild the utterance from the cleaned words.
	words := make([]string, len(utt.Words))
	for i, w := range utt.Words {
		words[i] = w.Word
	}
	utt.Utterance = strings.Join(words, " ")
}

func (p *SessionParser) addMorphemes(utt *model.Utterance, rec *chat.Record) {
	wsegs := chat.UtteranceWords(utt.MorphemeRaw)
	wglosses := chat.UtteranceWords(utt.GlossRaw)
	wposes := chat.UtteranceWords(utt.POSRaw)

	wordLists, _ := p.alignLists(wsegs, wglosses, wposes)
	wsegs, wglosses, wposes = wordLists[0], wordLists[1], wordLists[2]

	for i := range wsegs {
		segs := p.splitMorphemes(wsegs[i])
		glosses := p.splitMorphemes(wglosses[i])
		poses := p.splitMorphemes(wposes[i])

		unitLists, _ := p.alignLists(segs, glosses, poses)
		segs, glosses, poses = unitLists[0], unitLists[1], unitLists[2]

		var word []*model.Morpheme
		for j := range segs {
			m := &model.Morpheme{
				Language: p.policies.MorphemeLanguage(segs[j], glosses[j], poses[j]),
				Type:     "target",
				Morpheme: segs[j],
				GlossRaw: glosses[j],
				Gloss:    p.policies.CleanGloss(glosses[j]),
				POSRaw:   poses[j],
				POS:      p.policies.CleanPOS(poses[j]),
				POSUD:    p.policies.CleanPOSUD(poses[j]),
			}
			word = append(word, m)
		}
		utt.Morphemes = append(utt.Morphemes, word)
	}
}

// alignLists repairs misaligned unit lists, anchoring on the main
// morpheme tier.
func (p *SessionParser) alignLists(segs, glosses, poses []string) ([3][]string, bool) {
	var out [3][]string
	var adjusted bool
	if p.policies.MainMorphemeTier == "segment" {
		lists, a := align.Units(segs, glosses, poses)
		out[0], out[1], out[2] = lists[0], lists[1], lists[2]
		adjusted = a
	} else {
		lists, a := align.Units(glosses, segs, poses)
		out[1], out[0], out[2] = lists[0], lists[1], lists[2]
		adjusted = a
	}
	return out, adjusted
}

func (p *SessionParser) splitMorphemes(word string) []string {
	if word == "" {
		return nil
	}
	return strings.Split(word, p.policies.MorphemeDelimiter)
}

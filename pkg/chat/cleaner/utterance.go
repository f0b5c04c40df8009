// Package cleaner strips CHAT coding symbols from utterances, words
// and metadata values after the actual/target forms have been derived.
// The rule order matters: repetitions must be written out before
// scoped symbols are removed, and redundant whitespace left behind by
// a removal is collapsed right away.
package cleaner

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	terminatorTrailRe = regexp.MustCompile(`([+/.!?"]*[!?.])( \[\+|$)`)
	untranscribedRe   = regexp.MustCompile(`xxx|yyy|www`)
	repetitionRe      = regexp.MustCompile(`(?:<([^<]*?)>|(\S+))( \[.*?\])? ?\[x (\d+)\]`)
	eventRe           = regexp.MustCompile(`&=\S+`)
	omissionRe        = regexp.MustCompile(`(0\S+[^\]])(\s|$)`)
	linkerRe          = regexp.MustCompile(`^\+["^,+<]`)
	separatorRe       = regexp.MustCompile(` [,:;]( )`)
	caMarkerRe        = regexp.MustCompile(`[↓↑‡„“”]`)
	pauseRe           = regexp.MustCompile(`\(\.{1,3}\)`)
	scopedRe          = regexp.MustCompile(`<|>|\[.*?\]`)
	eventWordRe       = regexp.MustCompile(`\b0\b`)
	spaceRunRe        = regexp.MustCompile(`\s+`)
)

// CleanUtterance applies the full utterance cleaning pipeline.
func CleanUtterance(utterance string) string {
	for _, rule := range []func(string) string{
		RemoveTerminator,
		UnifyUntranscribed,
		HandleRepetitions,
		RemoveEvents,
		RemoveOmissions,
		RemoveLinkers,
		RemoveSeparators,
		RemoveCAMarkers,
		RemovePausesBetweenWords,
		RemoveScopedSymbols,
		RemoveCommas,
		NullEventUtterances,
	} {
		utterance = rule(utterance)
	}
	return utterance
}

// CollapseWhitespace folds whitespace runs into single blanks and
// strips leading and trailing blanks.
func CollapseWhitespace(utterance string) string {
	return strings.Trim(spaceRunRe.ReplaceAllString(utterance, " "), " ")
}

// RemoveTerminator drops the utterance terminator. A postcode or
// nothing may follow it.
func RemoveTerminator(utterance string) string {
	return CollapseWhitespace(terminatorTrailRe.ReplaceAllString(utterance, "$2"))
}

// UnifyUntranscribed maps the untranscribed markers xxx, yyy and www
// to ???.
func UnifyUntranscribed(utterance string) string {
	return untranscribedRe.ReplaceAllString(utterance, "???")
}

// HandleRepetitions writes out words marked as repeated with [x N].
// The scope is either the preceding word or an angle-bracket span, and
// an interjacent scoped symbol is carried along with each copy.
func HandleRepetitions(utterance string) string {
	matches := repetitionRe.FindAllStringSubmatchIndex(utterance, -1)
	if matches == nil {
		return utterance
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(utterance[last:m[0]])

		var words string
		if m[2] != -1 {
			words = utterance[m[2]:m[3]]
		} else {
			words = utterance[m[4]:m[5]]
		}
		if m[6] != -1 {
			words += utterance[m[6]:m[7]]
		}

		n, _ := strconv.Atoi(utterance[m[8]:m[9]])
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(words)
		}
		last = m[1]
	}
	b.WriteString(utterance[last:])
	if out := b.String(); out != "" {
		return out
	}
	return utterance
}

// RemoveEvents drops event codes (words starting with &=).
func RemoveEvents(utterance string) string {
	return CollapseWhitespace(eventRe.ReplaceAllString(utterance, ""))
}

// RemoveOmissions drops omitted words (words starting with 0). Null
// utterances of the form 0[...] are left alone.
func RemoveOmissions(utterance string) string {
	if strings.HasPrefix(utterance, "0[") {
		return utterance
	}
	return CollapseWhitespace(omissionRe.ReplaceAllString(utterance, "$2"))
}

// RemoveLinkers drops an utterance-initial linker (+", +^, +, ++, +<).
func RemoveLinkers(utterance string) string {
	return strings.TrimLeft(linkerRe.ReplaceAllString(utterance, ""), " ")
}

// RemoveSeparators drops commas, colons and semicolons surrounded by
// blanks.
func RemoveSeparators(utterance string) string {
	return separatorRe.ReplaceAllString(utterance, "$1")
}

// RemoveCAMarkers drops conversation-analysis and satellite markers.
// Only the four markers attested in the corpora are checked.
func RemoveCAMarkers(utterance string) string {
	return CollapseWhitespace(caMarkerRe.ReplaceAllString(utterance, ""))
}

// RemovePausesBetweenWords drops pause codes (.), (..) and (...).
func RemovePausesBetweenWords(utterance string) string {
	return CollapseWhitespace(pauseRe.ReplaceAllString(utterance, ""))
}

// RemoveScopedSymbols drops angle brackets and bracketed annotations,
// including nested scopes.
func RemoveScopedSymbols(utterance string) string {
	return CollapseWhitespace(scopedRe.ReplaceAllString(utterance, ""))
}

// RemoveCommas drops all commas.
func RemoveCommas(utterance string) string {
	return strings.ReplaceAll(utterance, ",", "")
}

// NullEventUtterances drops bare 0 tokens coding events.
func NullEventUtterances(utterance string) string {
	return CollapseWhitespace(eventWordRe.ReplaceAllString(utterance, ""))
}

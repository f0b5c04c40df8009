package chat

import (
	"regexp"
	"strings"
)

// The transducer reconstructs the two surface forms of an annotated
// utterance: the actual form (as produced) and the target form (as
// intended). Each phenomenon is a self-contained rewrite rule; the
// rules of a channel are applied in a fixed order. A rule whose
// trigger pattern is absent returns its input unchanged.

var (
	shorteningRe = regexp.MustCompile(`\(\S+?\)`)

	// & introduces a fragment, but &= (events) and &- (fillers) are
	// different codes and must not trigger the rule.
	fragmentRe = regexp.MustCompile(`(^|\s)&([^-=\s]\S*)`)

	replacementScopedRe = regexp.MustCompile(`<(.*?)> ?\[: .*?\]`)
	replacementSingleRe = regexp.MustCompile(`(\S+) ?\[: .*?\]`)
	replacementTargetRe = regexp.MustCompile(`(?:<.*?>|\S+) ?\[: (.*?)\]`)

	retracingScopedRe     = regexp.MustCompile(`<(.*?)> ?\[(/{1,3}|/-)\]`)
	retracingSingleRe     = regexp.MustCompile(`(\S+) ?\[(/{1,3}|/-)\]`)
	retracingCorrectionRe = regexp.MustCompile(`([^>\s]+) ?\[//\] (\S+)`)
)

// rewriteShortenings handles parenthesized material attached to a word
// on either side, e.g. wo(r)ds. Standalone parentheses (pauses) are
// left alone. keep selects between the target form (content kept) and
// the actual form (content dropped).
func rewriteShortenings(utterance string, keep bool) string {
	locs := shorteningRe.FindAllStringIndex(utterance, -1)
	if locs == nil {
		return utterance
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		attached := (start > 0 && !isSpaceByte(utterance[start-1])) ||
			(end < len(utterance) && !isSpaceByte(utterance[end]))
		b.WriteString(utterance[last:start])
		if attached {
			if keep {
				b.WriteString(utterance[start+1 : end-1])
			}
		} else {
			b.WriteString(utterance[start:end])
		}
		last = end
	}
	b.WriteString(utterance[last:])
	return b.String()
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// ShorteningActual drops the parenthesized part of a shortening along
// with the parentheses: wo(r)ds -> wods.
func ShorteningActual(utterance string) string {
	return rewriteShortenings(utterance, false)
}

// ShorteningTarget keeps the parenthesized content and drops only the
// parentheses: wo(r)ds -> words.
func ShorteningTarget(utterance string) string {
	return rewriteShortenings(utterance, true)
}

// FragmentActual keeps a &-prefixed fragment and drops the marker.
func FragmentActual(utterance string) string {
	return fragmentRe.ReplaceAllString(utterance, "$1$2")
}

// FragmentTarget replaces a &-prefixed fragment with the
// untranscribed marker xxx.
func FragmentTarget(utterance string) string {
	return fragmentRe.ReplaceAllString(utterance, "${1}xxx")
}

// ReplacementActual keeps the original word(s) of a replacement and
// drops the bracketed annotation. The multi-word angle-bracket scope
// is resolved before the single-word form so a scoped group is never
// processed twice.
func ReplacementActual(utterance string) string {
	clean := replacementScopedRe.ReplaceAllString(utterance, "$1")
	return replacementSingleRe.ReplaceAllString(clean, "$1")
}

// ReplacementTarget drops the original word(s) and keeps the
// replacement; a multi-word replacement is joined by underscores into
// a single token so it counts as one word downstream.
func ReplacementTarget(utterance string) string {
	return replacementTargetRe.ReplaceAllStringFunc(utterance, func(match string) string {
		sub := replacementTargetRe.FindStringSubmatch(match)
		return strings.ReplaceAll(sub[1], " ", "_")
	})
}

// RetracingActual removes retracing markers ([/], [//], [///], [/-])
// and their scope-delimiting angle brackets, keeping all words as
// transcribed.
func RetracingActual(utterance string) string {
	clean := retracingScopedRe.ReplaceAllString(utterance, "$1")
	return retracingSingleRe.ReplaceAllString(clean, "$1")
}

// RetracingTarget removes retracing markers like RetracingActual,
// except that a single-word [//] correction duplicates the correcting
// word into the retraced position: hui [//] hoi du -> hoi hoi du.
// Multi-word corrections are left as transcribed since the correcting
// part is of variable length.
func RetracingTarget(utterance string) string {
	utterance = retracingCorrectionRe.ReplaceAllString(utterance, "$2 $2")
	return RetracingActual(utterance)
}

// ToActual derives the actual surface form of a raw utterance.
// Shortenings resolve first so that fragment and replacement scopes
// see parenthesis-free words.
func ToActual(utterance string) string {
	for _, rule := range []func(string) string{
		ShorteningActual,
		FragmentActual,
		ReplacementActual,
		RetracingActual,
	} {
		utterance = rule(utterance)
	}
	return utterance
}

// ToTarget derives the target surface form of a raw utterance.
func ToTarget(utterance string) string {
	for _, rule := range []func(string) string{
		ShorteningTarget,
		FragmentTarget,
		ReplacementTarget,
		RetracingTarget,
	} {
		utterance = rule(utterance)
	}
	return utterance
}

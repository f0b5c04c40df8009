package cleaner

import (
	"regexp"
	"strings"
)

var (
	formMarkerRe = regexp.MustCompile(`@.*`)
	wordPauseRe  = regexp.MustCompile(`(\S+?)\^`)
	fillerWordRe = regexp.MustCompile(`&([^=\s]\S*)`)
)

// CleanWord applies the full word cleaning pipeline.
func CleanWord(word string) string {
	for _, rule := range []func(string) string{
		RemoveFormMarkers,
		RemoveDrawls,
		RemovePausesWithinWords,
		RemoveBlocking,
		RemoveFiller,
	} {
		word = rule(word)
	}
	return word
}

// RemoveFormMarkers drops a form marker (@ and everything after it).
func RemoveFormMarkers(word string) string {
	return formMarkerRe.ReplaceAllString(word, "")
}

// RemoveDrawls drops drawl markers (colons within or after the word).
func RemoveDrawls(word string) string {
	return strings.ReplaceAll(word, ":", "")
}

// RemovePausesWithinWords drops in-word pause markers (^).
func RemovePausesWithinWords(word string) string {
	return wordPauseRe.ReplaceAllString(word, "$1")
}

// RemoveBlocking drops blocking markers (^ or ≠ at word start).
func RemoveBlocking(word string) string {
	return strings.TrimLeft(word, "^≠")
}

// RemoveFiller drops filler markers (&- or & at word start); event
// codes starting with &= are left alone.
func RemoveFiller(word string) string {
	word = strings.ReplaceAll(word, "&-", "")
	return fillerWordRe.ReplaceAllString(word, "$1")
}

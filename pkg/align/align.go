// Package align reconciles the parallel morphology tiers of an
// utterance with each other and with its words. Misalignment is never
// fatal: diverging tiers are normalized to empty units and the
// utterance is flagged instead.
package align

import (
	"github.com/kittclouds/acquigo/pkg/model"
)

// BrokenAlignmentWarning marks an utterance whose morphology tier does
// not line up with its words. Morphemes of such an utterance are not
// positionally linked to Word records.
const BrokenAlignmentWarning = "broken alignment"

// Units normalizes parallel unit lists to a common length. The length
// is taken from the first non-empty list; every list diverging from it
// is replaced by that many empty units. The returned flag reports
// whether any list was adjusted.
func Units(lists ...[]string) ([][]string, bool) {
	n := 0
	for _, list := range lists {
		if len(list) > 0 {
			n = len(list)
			break
		}
	}

	adjusted := false
	out := make([][]string, len(lists))
	for i, list := range lists {
		if len(list) == n {
			out[i] = list
			continue
		}
		adjusted = true
		out[i] = make([]string, n)
	}
	return out, adjusted
}

// Words links the morphemes of the utterance to its words by position.
// Linking requires the per-word morpheme count to equal the word
// count; on a mismatch no link is made and the utterance is flagged
// with BrokenAlignmentWarning. When linked, the stem POS of each word
// is copied onto the word (prefix and suffix tags are skipped).
func Words(utt *model.Utterance) {
	if len(utt.Morphemes) != len(utt.Words) {
		if len(utt.Morphemes) > 0 {
			utt.Warning = BrokenAlignmentWarning
		}
		return
	}
	for i, word := range utt.Morphemes {
		for _, m := range word {
			if m.POS != "sfx" && m.POS != "pfx" {
				utt.Words[i].POS = m.POS
				utt.Words[i].POSUD = m.POSUD
			}
		}
	}
}

// Linked reports whether the morphemes of the utterance are
// positionally linked to its words.
func Linked(utt *model.Utterance) bool {
	return len(utt.Morphemes) == len(utt.Words) && utt.Warning != BrokenAlignmentWarning
}

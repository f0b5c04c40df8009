package chat

import "regexp"

// Sentence-type classification runs on the raw utterance: the
// transduction rules may strip the terminator, so the derived forms
// are unreliable for this purpose.

// A terminator at the very end of the utterance, or directly before a
// trailing bracketed postcode. A terminator-looking token in the
// middle of the utterance does not count.
var terminatorRe = regexp.MustCompile(`([+/.!?"]*[!?.])(\s*\[\+|\s*$)`)

var sentenceTypes = map[string]string{
	".":    "default",
	"?":    "question",
	"!":    "exclamation",
	"+.":   "broken for coding",
	"+...": "trail off",
	"+..?": "trail off of question",
	"+!?":  "question with exclamation",
	"+/.":  "interruption",
	"+/?":  "interruption of a question",
	"+//.": "self-interruption",
	"+//?": "self-interrupted question",
	`+"/.`: "quotation follows",
	`+".`:  "quotation precedes",
}

// UtteranceTerminator extracts the terminator token of the utterance,
// or an empty string if there is none.
func UtteranceTerminator(utterance string) string {
	m := terminatorRe.FindStringSubmatch(utterance)
	if m == nil {
		return ""
	}
	return m[1]
}

// SentenceType maps a terminator to its sentence type, or an empty
// string for an unknown or absent terminator.
func SentenceType(terminator string) string {
	return sentenceTypes[terminator]
}

// UtteranceSentenceType classifies the utterance by its terminator.
func UtteranceSentenceType(utterance string) string {
	return SentenceType(UtteranceTerminator(utterance))
}

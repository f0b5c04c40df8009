package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtteranceTerminator(t *testing.T) {
	tests := []struct {
		utt  string
		term string
	}{
		{"ke eng ?", "?"},
		{"ke ntencha ncha .", "."},
		{"ira !", "!"},
		{"mo ne +...", "+..."},
		{"o tsamaile +..?", "+..?"},
		{"ke mang +/.", "+/."},
		{"ke mang +//?", "+//?"},
		{"o itse +\"/.", "+\"/."},
		{"ke eng . [+ neg]", "."},
		{"no terminator here", ""},
		{"mid . sentence stop", ""},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.term, UtteranceTerminator(tc.utt), tc.utt)
	}
}

func TestSentenceType(t *testing.T) {
	tests := []struct {
		term string
		typ  string
	}{
		{".", "default"},
		{"?", "question"},
		{"!", "exclamation"},
		{"+.", "broken for coding"},
		{"+...", "trail off"},
		{"+..?", "trail off of question"},
		{"+!?", "question with exclamation"},
		{"+/.", "interruption"},
		{"+/?", "interruption of a question"},
		{"+//.", "self-interruption"},
		{"+//?", "self-interrupted question"},
		{`+"/.`, "quotation follows"},
		{`+".`, "quotation precedes"},
		{"", ""},
		{";", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.typ, SentenceType(tc.term), "terminator %q", tc.term)
	}
}

func TestUtteranceSentenceType(t *testing.T) {
	assert.Equal(t, "question", UtteranceSentenceType("ke eng ?"))
	assert.Equal(t, "default", UtteranceSentenceType("ke eng . [+ neg]"))
	assert.Equal(t, "", UtteranceSentenceType("xxx"))
}

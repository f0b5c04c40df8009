// Package analysis provides high-level corpus metrics over parsed
// sessions: utterance and word volumes, lexical diversity and mean
// length of utterance, broken down by speaker macro role.
package analysis

import (
	"strings"

	"github.com/kittclouds/acquigo/pkg/model"
)

// MetricResult holds the computed stats for one session set.
type MetricResult struct {
	SessionCount   int     `json:"sessionCount"`
	UtteranceCount int     `json:"utteranceCount"`
	WordCount      int     `json:"wordCount"`
	MorphemeCount  int     `json:"morphemeCount"`
	TypeCount      int     `json:"typeCount"`
	TypeTokenRatio float64 `json:"typeTokenRatio"`

	// MLU is the mean length of utterance in morphemes, the standard
	// acquisition measure. Utterances without morphology are skipped.
	MLU float64 `json:"mlu"`

	// ByMacroRole splits the utterance and word volumes by the
	// speaker's macro role (Target_Child, Child, Adult).
	ByMacroRole map[string]RoleMetrics `json:"byMacroRole"`
}

// RoleMetrics is the per-macro-role slice of the volumes.
type RoleMetrics struct {
	UtteranceCount int     `json:"utteranceCount"`
	WordCount      int     `json:"wordCount"`
	MLU            float64 `json:"mlu"`
}

// Analyzer computes metrics from session graphs.
type Analyzer struct {
	types map[string]bool

	result     MetricResult
	mluSums    map[string]int
	mluCounts  map[string]int
	totalMorph int
	morphUtts  int
}

// NewAnalyzer creates an empty analyzer. Feed it sessions with Add and
// read the totals with Result.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		types:     make(map[string]bool),
		mluSums:   make(map[string]int),
		mluCounts: make(map[string]int),
		result:    MetricResult{ByMacroRole: make(map[string]RoleMetrics)},
	}
}

// Add folds one session into the running totals.
func (a *Analyzer) Add(sess *model.Session) {
	a.result.SessionCount++
	for _, utt := range sess.Utterances {
		a.result.UtteranceCount++

		role := ""
		if utt.Speaker != nil {
			role = utt.Speaker.MacroRole
		}
		rm := a.result.ByMacroRole[role]
		rm.UtteranceCount++

		for _, w := range utt.Words {
			a.result.WordCount++
			rm.WordCount++
			if w.Word != "" {
				a.types[strings.ToLower(w.Word)] = true
			}
		}

		morphemes := 0
		for _, word := range utt.Morphemes {
			morphemes += len(word)
		}
		a.result.MorphemeCount += morphemes
		if morphemes > 0 {
			a.totalMorph += morphemes
			a.morphUtts++
			a.mluSums[role] += morphemes
			a.mluCounts[role]++
		}

		a.result.ByMacroRole[role] = rm
	}
}

// Result finalizes and returns the metrics.
func (a *Analyzer) Result() MetricResult {
	r := a.result
	r.TypeCount = len(a.types)
	if r.WordCount > 0 {
		r.TypeTokenRatio = float64(r.TypeCount) / float64(r.WordCount)
	}
	if a.morphUtts > 0 {
		r.MLU = float64(a.totalMorph) / float64(a.morphUtts)
	}
	for role, rm := range r.ByMacroRole {
		if n := a.mluCounts[role]; n > 0 {
			rm.MLU = float64(a.mluSums[role]) / float64(n)
			r.ByMacroRole[role] = rm
		}
	}
	return r
}

// Ngrams returns the n-grams of a word sequence. Sequences shorter
// than n yield nil.
func Ngrams(words []string, n int) [][]string {
	if n < 1 || len(words) < n {
		return nil
	}
	grams := make([][]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		grams = append(grams, words[i:i+n])
	}
	return grams
}

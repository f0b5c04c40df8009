package chat

import (
	"regexp"
	"strings"
)

// Scanning splits a raw CHAT session into its metadata header and its
// records, and records into a main line plus dependent tiers. All
// scanning runs on a line-break-normalized copy of the session: CHAT
// wraps long tiers with a newline plus tab, which must be undone before
// any boundary detection.

var (
	metadataFieldRe = regexp.MustCompile(`@.*?:\t`)
	recordMarkerRe  = regexp.MustCompile(`(?m)^\*[A-Za-z0-9]{2,3}:\t`)
	dependentTierRe = regexp.MustCompile(`(?m)^%.*`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)

	// Speaker label, utterance, then an optional trailing timestamp
	// (digits, optionally _digits, possibly wrapped in one non-digit
	// character). Bracketed postcodes stay inside the utterance group.
	mainLineRe = regexp.MustCompile(`\*([A-Za-z0-9]{2,3}):\t(.*?)(\s*\D?(\d+)(_(\d+))?\D?$|$)`)
)

// unwrapLines undoes CHAT's line-wrap convention: a newline directly
// followed by a tab continues the previous tier.
func unwrapLines(session string) string {
	return strings.ReplaceAll(session, "\n\t", " ")
}

// MetadataFields returns the metadata fields of the session header.
// A metadata field is a line of the form @Key:<TAB>content occurring
// before the first record marker.
func MetadataFields(session string) []string {
	session = unwrapLines(session)
	var fields []string
	for _, line := range strings.Split(session, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "*") {
			break
		}
		if metadataFieldRe.MatchString(line) {
			fields = append(fields, line)
		}
	}
	return fields
}

// MetadataField splits a metadata field into its key (without the @)
// and content.
func MetadataField(field string) (key, content string) {
	parts := strings.SplitN(field, ":\t", 2)
	key = strings.TrimLeft(parts[0], "@")
	if len(parts) > 1 {
		content = parts[1]
	}
	return key, content
}

// Records returns the raw records of the session in source order. A
// record starts with *XX:<TAB> or *XXX:<TAB> at the beginning of a line
// and runs until the next such marker, an @End marker, or the end of
// the session. A session without records yields nil; metadata-only
// files are legal.
func Records(session string) []string {
	session = unwrapLines(session)
	locs := recordMarkerRe.FindAllStringIndex(session, -1)
	if locs == nil {
		return nil
	}
	recs := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(session)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		rec := session[loc[0]:end]
		if cut := strings.Index(rec, "\n@End"); cut != -1 {
			rec = rec[:cut]
		}
		recs = append(recs, strings.TrimRight(rec, "\n"))
	}
	return recs
}

// MainLine returns the main line of a record, i.e. everything up to
// the first dependent tier.
func MainLine(rec string) string {
	if i := strings.IndexByte(rec, '\n'); i != -1 {
		return rec[:i]
	}
	return rec
}

// MainLineFields extracts the speaker label, the utterance and the
// optional start and end times from a main line. Absent times are
// returned as empty strings.
func MainLineFields(mainLine string) (label, utterance, start, end string, ok bool) {
	m := mainLineRe.FindStringSubmatch(mainLine)
	if m == nil {
		return "", "", "", "", false
	}
	return m[1], m[2], m[4], m[6], true
}

// DependentTiers returns the dependent tier lines of a record. A
// dependent tier is a line starting with %; a stray % inside tier
// content does not open a new tier.
func DependentTiers(rec string) []string {
	return dependentTierRe.FindAllString(rec, -1)
}

// DependentTier splits a dependent tier into its key (without the %)
// and content. Tiers without the key/content separator are malformed.
func DependentTier(tier string) (key, content string, ok bool) {
	parts := strings.SplitN(tier, ":\t", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimLeft(parts[0], "%"), parts[1], true
}

// UtteranceWords splits an utterance into its whitespace-delimited
// words.
func UtteranceWords(utterance string) []string {
	if utterance == "" {
		return nil
	}
	return whitespaceRunRe.Split(utterance, -1)
}

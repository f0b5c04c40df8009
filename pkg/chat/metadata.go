package chat

import (
	"regexp"
	"strings"
)

// Header field parsing for @ID, @Participants and @Media.

var participantSepRe = regexp.MustCompile(`\s*,\s*`)

// IDFields is the fixed 10-field pipe-delimited content of an @ID
// header. Any field may be empty.
type IDFields struct {
	Language  string
	Corpus    string
	Code      string
	Age       string
	Sex       string
	Group     string
	SES       string
	Role      string
	Education string
	Custom    string
}

// ParseID splits @ID content into its fields. The trailing pipe before
// the end of the content is stripped first.
func ParseID(content string) IDFields {
	content = strings.TrimSuffix(content, "|")
	var f [10]string
	copy(f[:], strings.Split(content, "|"))
	return IDFields{
		Language:  f[0],
		Corpus:    f[1],
		Code:      f[2],
		Age:       f[3],
		Sex:       f[4],
		Group:     f[5],
		SES:       f[6],
		Role:      f[7],
		Education: f[8],
		Custom:    f[9],
	}
}

// Participants splits @Participants content into its comma-separated
// participant entries.
func Participants(content string) []string {
	return participantSepRe.Split(content, -1)
}

// ParticipantFields splits a participant entry into code, name and
// role. Name and role may be absent; when only two fields are present
// the second one is the role, never the name.
func ParticipantFields(participant string) (code, name, role string) {
	fields := strings.Fields(participant)
	switch len(fields) {
	case 0:
		return "", "", ""
	case 1:
		return fields[0], "", ""
	case 2:
		return fields[0], "", fields[1]
	default:
		return fields[0], fields[1], fields[2]
	}
}

// MediaFields is the content of an @Media header: the media file name
// (without extension), its format and an optional comment.
type MediaFields struct {
	Filename string
	Format   string
	Comment  string
}

// ParseMedia splits @Media content into its 2 or 3 comma-separated
// fields. A missing comment yields an empty string.
func ParseMedia(content string) MediaFields {
	var f [3]string
	copy(f[:], strings.Split(content, ", "))
	return MediaFields{Filename: f[0], Format: f[1], Comment: f[2]}
}

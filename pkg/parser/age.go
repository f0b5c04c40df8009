package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ageRe = regexp.MustCompile(`^(\d+)(?:;(\d+))?(?:\.(\d+))?`)

// AgeInDays converts a CHAT age string of the form "Y;MM.DD" into an
// approximate day count (years at 365 days, months at 30). Missing
// month and day parts count as zero. A string without a leading number
// yields 0.
func AgeInDays(age string) int {
	m := ageRe.FindStringSubmatch(age)
	if m == nil {
		return 0
	}
	years, _ := strconv.Atoi(m[1])
	months := 0
	if m[2] != "" {
		months, _ = strconv.Atoi(m[2])
	}
	days := 0
	if m[3] != "" {
		days, _ = strconv.Atoi(m[3])
	}
	return years*365 + months*30 + days
}

// AgeFromDates derives a "Y;MM.DD" age string from a birth date and a
// session date, both in ISO format. The returned age counts whole
// years, remaining whole months at 30 days, and leftover days. Either
// date being empty or malformed yields "".
func AgeFromDates(birthDate, sessionDate string) string {
	birth, err := time.Parse("2006-01-02", strings.TrimSpace(birthDate))
	if err != nil {
		return ""
	}
	session, err := time.Parse("2006-01-02", strings.TrimSpace(sessionDate))
	if err != nil {
		return ""
	}
	if session.Before(birth) {
		return ""
	}
	diff := int(session.Sub(birth).Hours() / 24)
	years := diff / 365
	rem := diff % 365
	months := rem / 30
	days := rem % 30
	return fmt.Sprintf("%d;%d.%d", years, months, days)
}

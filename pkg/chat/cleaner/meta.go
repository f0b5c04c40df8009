package cleaner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var chatMonths = map[string]string{
	"JAN": "01", "FEB": "02", "MAR": "03", "APR": "04",
	"MAY": "05", "JUN": "06", "JUL": "07", "AUG": "08",
	"SEP": "09", "OCT": "10", "NOV": "11", "DEC": "12",
}

// CleanDate converts a CHAT date (DD-MMM-YYYY) to ISO form
// (YYYY-MM-DD). Malformed dates clean to an empty string.
func CleanDate(date string) string {
	if date == "" {
		return ""
	}
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return ""
	}
	month, ok := chatMonths[parts[1]]
	if !ok {
		return ""
	}
	return parts[2] + "-" + month + "-" + parts[0]
}

var clockTimeRe = regexp.MustCompile(`^(\d+):(\d+):(\d+)(?:\.(\d+))?`)

// CleanTimestamp unifies a media time position. HH:MM:SS(.mmm) values
// become seconds with a millisecond fraction; anything else is
// returned as is, including the already-numeric CHAT bullet times.
func CleanTimestamp(timestamp string) string {
	if timestamp == "" {
		return ""
	}
	m := clockTimeRe.FindStringSubmatch(timestamp)
	if m == nil {
		return timestamp
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	msecs := m[4]
	if msecs == "" {
		msecs = "000"
	}
	return fmt.Sprintf("%d.%s", hours*3600+minutes*60+seconds, msecs)
}

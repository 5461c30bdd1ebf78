package internal

import "time"

const formatDateTimeUTC = "02.01.2006 15:04 MST"

// FormatDateTime renders a timestamp for emails and summaries.
func FormatDateTime(date time.Time) string {
	return date.UTC().Format(formatDateTimeUTC)
}

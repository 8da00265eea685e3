package format

import "time"

const localDateLayout = "Jan 2, 2006"

// FormatDateToLocal renders a date the way the invoice table shows it ("Dec 6, 2022").
func FormatDateToLocal(t time.Time) string {
	return t.Format(localDateLayout)
}

package court

import "time"

const dateLayout = "2006-01-02"

// Today returns the current calendar day as a date key.
func Today() string {
	return time.Now().Format(dateLayout)
}

// NextDates returns n consecutive date keys starting today, for the
// date-strip on the court page.
func NextDates(n int) []string {
	dates := make([]string, 0, n)
	now := time.Now()
	for i := 0; i < n; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(dateLayout))
	}
	return dates
}

// ValidDate reports whether s parses as a date key.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

package billing

import (
	"fmt"
	"time"
)

// Billing periods are labeled with Indonesian month names ("Maret 2024").
// The label is part of the monthly-bill uniqueness key, so it must be
// stable and locale-independent at runtime.
var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Monthly bills fall due on the 10th of their period.
const dueDayOfMonth = 10

// PeriodLabel returns the billing period label for the month containing t.
func PeriodLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}

// PeriodDueDate returns the due date for the period containing t.
func PeriodDueDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), dueDayOfMonth, 0, 0, 0, 0, t.Location())
}

// SameMonth reports whether a and b fall in the same calendar month and year.
// Used for the join-month exclusion: a student enrolled this month is covered
// by the registration bill and gets no monthly bill yet.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

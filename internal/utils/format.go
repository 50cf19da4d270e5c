package utils

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatMoney renders an amount with thousands separators and two decimals.
func FormatMoney(currency string, amount float64) string {
	return currency + humanize.FormatFloat("#,###.##", amount)
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatStreak renders a streak the way the dashboard shows it: hours under a
// day, otherwise days and leftover hours.
func FormatStreak(hours int) string {
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}
	days, rest := hours/24, hours%24
	if rest == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dd %dh", days, rest)
}

// FormatSince renders then relative to now, e.g. "3 hours ago".
func FormatSince(then, now time.Time) string {
	return humanize.RelTime(then, now, "ago", "from now")
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

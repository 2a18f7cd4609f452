package services

import "time"

const dateKeyLayout = "2006-01-02"

// DateRange is an inclusive [Start, End] pair of YYYY-MM-DD date keys.
type DateRange struct {
	Start string `json:"from"`
	End   string `json:"to"`
}

var rangePresets = map[string]int{
	"7d":  7,
	"14d": 14,
	"30d": 30,
	"90d": 90,
}

// ResolveRange turns a range selector into concrete date keys. It never
// fails: an unknown preset falls back to 30 days, a custom range with no
// "to" ends today, and a custom range with no "from" collapses to a single
// day (kept as-is from the product's original behavior).
func ResolveRange(mode, from, to string, now time.Time) DateRange {
	today := now.Format(dateKeyLayout)

	if mode == "custom" {
		end := to
		if end == "" {
			end = today
		}
		start := from
		if start == "" {
			start = end
		}
		return DateRange{Start: start, End: end}
	}

	days, ok := rangePresets[mode]
	if !ok {
		days = 30
	}
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -(days - 1))
	return DateRange{Start: start.Format(dateKeyLayout), End: today}
}

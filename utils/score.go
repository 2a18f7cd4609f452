package utils

import "math"

// RoutineScore turns a routine checklist into a 0-100 percentage of items
// done. An empty checklist scores 0.
func RoutineScore(checklist map[string]bool) float64 {
	if len(checklist) == 0 {
		return 0
	}
	done := 0
	for _, v := range checklist {
		if v {
			done++
		}
	}
	return math.Round(float64(done) / float64(len(checklist)) * 100)
}

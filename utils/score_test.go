package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutineScore(t *testing.T) {
	checklist := map[string]bool{
		"wake_on_time": true,
		"no_phone":     true,
		"make_bed":     false,
		"prayer":       true,
	}
	assert.Equal(t, 75.0, RoutineScore(checklist))
}

func TestRoutineScoreEmptyChecklist(t *testing.T) {
	assert.Zero(t, RoutineScore(nil))
	assert.Zero(t, RoutineScore(map[string]bool{}))
}

func TestRoutineScoreAllDone(t *testing.T) {
	assert.Equal(t, 100.0, RoutineScore(map[string]bool{"a": true, "b": true}))
}

func TestRoutineScoreRounds(t *testing.T) {
	// 2 of 3 -> 66.666..., rounded to the nearest integer percent
	assert.Equal(t, 67.0, RoutineScore(map[string]bool{"a": true, "b": true, "c": false}))
}

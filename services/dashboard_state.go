package services

import "sync"

// DashboardState keeps the last successfully refreshed dashboard per user.
// Each refresh takes a generation token; a commit only lands if no newer
// refresh started in the meantime, so a slow stale response can never
// overwrite a fresher one. A failed refresh commits nothing, leaving the
// previous snapshot on display.
type DashboardState struct {
	mu      sync.Mutex
	gen     map[uint]uint64
	current map[uint]*DashboardResult
}

func NewDashboardState() *DashboardState {
	return &DashboardState{
		gen:     make(map[uint]uint64),
		current: make(map[uint]*DashboardResult),
	}
}

// Begin marks the start of a refresh and returns its generation token.
func (s *DashboardState) Begin(userID uint) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen[userID]++
	return s.gen[userID]
}

// Commit applies a refresh result if its generation is still current.
// Returns false when a newer refresh superseded this one.
func (s *DashboardState) Commit(userID uint, gen uint64, result *DashboardResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen[userID] {
		return false
	}
	s.current[userID] = result
	return true
}

// Current returns the last committed snapshot, or nil if none exists yet.
func (s *DashboardState) Current(userID uint) *DashboardResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current[userID]
}

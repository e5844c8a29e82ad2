package world

// IsTriggered reports whether the trigger has ever been activated.
func (s *State) IsTriggered(triggerId string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.triggers[triggerId]
}

// ActivateTrigger sets the trigger flag. Triggers are monotonic: once
// set they are never unset. Returns false if the trigger was already
// active, so callers can suppress duplicate reveal broadcasts.
func (s *State) ActivateTrigger(triggerId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.triggers[triggerId] {
		return false
	}
	s.triggers[triggerId] = true
	return true
}

/* cursor.go
 * Contains the match cursor used to step through the day's matches
 */

package store

// CurrentMatch returns the match under the cursor, or false if there are no matches
func (s *Store) CurrentMatch() (Match, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentMatch()
}

// NextMatch advances the cursor. At the last match it leaves the cursor in place and returns false
func (s *Store) NextMatch() (Match, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.matchIndex >= len(s.matches)-1 {
		return Match{}, false
	}
	s.matchIndex++
	return s.currentMatch()
}

// PreviousMatch moves the cursor back. At the first match it leaves the cursor in place and returns false
func (s *Store) PreviousMatch() (Match, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.matchIndex <= 0 {
		return Match{}, false
	}
	s.matchIndex--
	return s.currentMatch()
}

// SelectMatch moves the cursor to index. Out of range indexes leave the cursor in place and return false
func (s *Store) SelectMatch(index int) (Match, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.matches) {
		return Match{}, false
	}
	s.matchIndex = index
	return s.currentMatch()
}

// CurrentPosition returns the match under the cursor with its index, the day's match count, the tournament and the
// day, all read under one lock. It returns false if there are no matches
func (s *Store) CurrentPosition() (Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	match, ok := s.currentMatch()
	if !ok {
		return Position{}, false
	}
	return Position{
		Tournament: s.tournament,
		Day:        s.currentDay,
		Index:      s.matchIndex,
		Total:      len(s.matches),
		Match:      match,
	}, true
}

// MatchIndex returns the zero based cursor position
func (s *Store) MatchIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matchIndex
}

// currentMatch callers must hold s.mu
func (s *Store) currentMatch() (Match, bool) {
	if len(s.matches) == 0 {
		return Match{}, false
	}
	return s.matches[s.matchIndex], true
}

package holdablequeue

// holdSet tracks the logical positions that are excluded from Dequeue.
// Positions are kept sorted in ascending order and contain no duplicates,
// which keeps the skip scan and the renumbering pass linear in the number
// of holds.
type holdSet struct {
	positions []int
}

func (s *holdSet) len() int {
	return len(s.positions)
}

func (s *holdSet) contains(position int) bool {
	for _, p := range s.positions {
		if p == position {
			return true
		}
		if p > position {
			return false
		}
	}
	return false
}

// add records position unless it is already held. The slice stays sorted.
func (s *holdSet) add(position int) bool {
	i := 0
	for ; i < len(s.positions); i++ {
		if s.positions[i] == position {
			return false
		}
		if s.positions[i] > position {
			break
		}
	}
	s.positions = append(s.positions, 0)
	copy(s.positions[i+1:], s.positions[i:])
	s.positions[i] = position
	return true
}

func (s *holdSet) remove(position int) bool {
	for i, p := range s.positions {
		if p == position {
			s.positions = append(s.positions[:i], s.positions[i+1:]...)
			return true
		}
		if p > position {
			break
		}
	}
	return false
}

// clear drops all holds but keeps the backing storage for reuse.
func (s *holdSet) clear() {
	s.positions = s.positions[:0]
}

func (s *holdSet) snapshot() []int {
	if len(s.positions) == 0 {
		return nil
	}
	out := make([]int, len(s.positions))
	copy(out, s.positions)
	return out
}

// firstFree returns the smallest logical position below count that is not
// held. Because the slice is sorted, the answer is the first gap in the
// prefix of consecutive held positions.
func (s *holdSet) firstFree(count int) (int, bool) {
	pos := 0
	for _, p := range s.positions {
		if p != pos {
			break
		}
		pos++
	}
	if pos >= count {
		return 0, false
	}
	return pos, true
}

// renumberAfterRemove rewrites the set after the element at logical
// position removed left the queue: positions above it slide down by one so
// each marker keeps tracking the element it was placed on, a marker on the
// removed position itself is dropped, and positions below stay untouched.
// Dequeue never selects a held position, but the middle rule is applied
// anyway so the set stays correct for any removal entry point.
func (s *holdSet) renumberAfterRemove(removed int) {
	out := s.positions[:0]
	for _, p := range s.positions {
		switch {
		case p < removed:
			out = append(out, p)
		case p == removed:
			// marker vanished together with its element
		default:
			out = append(out, p-1)
		}
	}
	s.positions = out
}

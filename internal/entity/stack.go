package entity

// StackItem is one item carried on the player's head.
type StackItem struct {
	Kind   ItemKind
	Height float64 // Index * step, recomputed after every removal
}

// HeadStack is the player's visible inventory. Insertion order is stack
// order; the top is the most recently added item.
type HeadStack struct {
	step  float64
	items []StackItem
}

// NewHeadStack creates an empty stack with the given height step.
func NewHeadStack(step float64) *HeadStack {
	return &HeadStack{step: step}
}

// Push adds an item on top of the stack.
func (s *HeadStack) Push(kind ItemKind) {
	s.items = append(s.items, StackItem{
		Kind:   kind,
		Height: float64(len(s.items)) * s.step,
	})
}

// Remove takes up to n items of the given kind, scanning from the top down,
// and returns how many were removed. Callers must check the count.
func (s *HeadStack) Remove(kind ItemKind, n int) int {
	removed := 0
	for removed < n {
		idx := -1
		for i := len(s.items) - 1; i >= 0; i-- {
			if s.items[i].Kind == kind {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}
		s.items = append(s.items[:idx], s.items[idx+1:]...)
		removed++
	}
	if removed > 0 {
		s.repack()
	}
	return removed
}

// repack restores contiguous heights from 0.
func (s *HeadStack) repack() {
	for i := range s.items {
		s.items[i].Height = float64(i) * s.step
	}
}

// Count returns the number of items of the given kind.
func (s *HeadStack) Count(kind ItemKind) int {
	count := 0
	for _, it := range s.items {
		if it.Kind == kind {
			count++
		}
	}
	return count
}

// Len returns the total number of items.
func (s *HeadStack) Len() int {
	return len(s.items)
}

// Items returns a copy of the stack, bottom first.
func (s *HeadStack) Items() []StackItem {
	out := make([]StackItem, len(s.items))
	copy(out, s.items)
	return out
}

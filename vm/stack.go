package vm

// Stack is the worm's LIFO value store. Popping an empty stack yields 0
// rather than failing, which keeps every instruction total.
type Stack struct {
	values []int64
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push places v on top of the stack.
func (s *Stack) Push(v int64) {
	s.values = append(s.values, v)
}

// Pop removes and returns the top value, or 0 if the stack is empty.
func (s *Stack) Pop() int64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v
}

// Peek returns the top value without removing it, or 0 if empty.
func (s *Stack) Peek() int64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

// Dup pushes a copy of the top value. On an empty stack it pushes the 0
// that a pop would have yielded.
func (s *Stack) Dup() {
	s.Push(s.Peek())
}

// Depth returns the number of values on the stack.
func (s *Stack) Depth() int {
	return len(s.values)
}

// Values returns a copy of the stack contents, bottom to top.
func (s *Stack) Values() []int64 {
	out := make([]int64, len(s.values))
	copy(out, s.values)
	return out
}

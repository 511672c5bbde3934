package history

// Stack is a bounded LIFO of snapshots. When full, pushing evicts the
// oldest entry.
type Stack struct {
	items []Snapshot
	head  int // index of the oldest entry
	size  int
}

// NewStack creates a stack holding at most depth snapshots.
func NewStack(depth int) *Stack {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Stack{items: make([]Snapshot, depth)}
}

// Push adds s on top. It returns true if the oldest entry was evicted to
// make room.
func (st *Stack) Push(s Snapshot) bool {
	capacity := len(st.items)
	if st.size == capacity {
		st.items[st.head] = s
		st.head = (st.head + 1) % capacity
		return true
	}
	st.items[(st.head+st.size)%capacity] = s
	st.size++
	return false
}

// Pop removes and returns the newest snapshot.
func (st *Stack) Pop() (Snapshot, bool) {
	if st.size == 0 {
		return Snapshot{}, false
	}
	idx := (st.head + st.size - 1) % len(st.items)
	s := st.items[idx]
	st.items[idx] = Snapshot{}
	st.size--
	return s, true
}

// Len returns the number of snapshots held.
func (st *Stack) Len() int {
	return st.size
}

// Max returns the capacity of the stack.
func (st *Stack) Max() int {
	return len(st.items)
}

// Clear drops every snapshot.
func (st *Stack) Clear() {
	clear(st.items)
	st.head = 0
	st.size = 0
}

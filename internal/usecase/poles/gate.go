package poles

import "sync"

// Gate suppresses pole attempts for chats whose pole is already known to be
// taken today. It is an optimization only: the store's conditional insert is
// what guarantees a single pole per day.
type Gate interface {
	// ShouldProcess reports whether (chatID, dayKey) is seen for the first
	// time and records it as seen.
	ShouldProcess(chatID, dayKey int64) bool
}

// MemoryGate is the process-local gate. Losing its state on restart costs at
// most one redundant store round trip per chat.
type MemoryGate struct {
	mu      sync.Mutex
	lastDay map[int64]int64
}

// NewMemoryGate creates an empty gate.
func NewMemoryGate() *MemoryGate {
	return &MemoryGate{lastDay: make(map[int64]int64)}
}

// ShouldProcess implements Gate.
func (g *MemoryGate) ShouldProcess(chatID, dayKey int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.lastDay[chatID] == dayKey {
		return false
	}
	g.lastDay[chatID] = dayKey
	return true
}

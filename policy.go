package heapsim

// Strategy selects the placement policy Allocate uses to choose among
// candidate free blocks. A Heap has exactly one active Strategy at a time.
type Strategy int

const (
	// FirstFit chooses the first free block, in list order, whose size is
	// at least the requested size.
	FirstFit Strategy = iota
	// BestFit chooses the free block with the smallest size that is at
	// least the requested size, breaking ties by list order.
	BestFit
	// WorstFit chooses the free block with the largest size that is at
	// least the requested size, breaking ties by list order.
	WorstFit
	// NextFit scans starting from the heap's cursor, wrapping around the
	// block list, and chooses the first free block encountered whose size
	// is at least the requested size.
	NextFit
)

func (s Strategy) String() string {
	switch s {
	case FirstFit:
		return "FirstFit"
	case BestFit:
		return "BestFit"
	case WorstFit:
		return "WorstFit"
	case NextFit:
		return "NextFit"
	default:
		return "Unknown"
	}
}

// choose returns the index into blocks of the free block this strategy
// selects for a request of the given size, or ok=false if none fits. cursor
// is only consulted by NextFit.
func (s Strategy) choose(blocks []*Block, size int, cursor int) (index int, ok bool, err error) {
	switch s {
	case FirstFit:
		return chooseFirstFit(blocks, size)
	case BestFit:
		return chooseBestFit(blocks, size)
	case WorstFit:
		return chooseWorstFit(blocks, size)
	case NextFit:
		return chooseNextFit(blocks, size, cursor)
	default:
		return 0, false, ErrUnknownStrategy
	}
}

func chooseFirstFit(blocks []*Block, size int) (int, bool, error) {
	for i, b := range blocks {
		if b.IsFree() && b.Size() >= size {
			return i, true, nil
		}
	}
	return 0, false, nil
}

func chooseBestFit(blocks []*Block, size int) (int, bool, error) {
	best := -1
	for i, b := range blocks {
		if !b.IsFree() || b.Size() < size {
			continue
		}
		if best == -1 || b.Size() < blocks[best].Size() {
			best = i
		}
	}
	return best, best != -1, nil
}

func chooseWorstFit(blocks []*Block, size int) (int, bool, error) {
	worst := -1
	for i, b := range blocks {
		if !b.IsFree() || b.Size() < size {
			continue
		}
		if worst == -1 || b.Size() > blocks[worst].Size() {
			worst = i
		}
	}
	return worst, worst != -1, nil
}

func chooseNextFit(blocks []*Block, size int, cursor int) (int, bool, error) {
	n := len(blocks)
	if n == 0 {
		return 0, false, nil
	}
	start := cursor % n
	if start < 0 {
		start += n
	}
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		b := blocks[idx]
		if b.IsFree() && b.Size() >= size {
			return idx, true, nil
		}
	}
	return 0, false, nil
}

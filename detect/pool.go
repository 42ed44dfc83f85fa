package detect

// candidatePool hands out candidate peaks in descending apex-intensity order
// while supporting arbitrary removal during shoulder suppression.
//
// Candidates live in an arena and are addressed by index; a binary max-heap
// of indices provides the intensity order and removal only marks entries, so
// references held by callers never dangle. Ties in intensity break toward
// the lower apex m/z, keeping pop order total and results deterministic.
type candidatePool struct {
	arena   []Peak
	removed []bool
	heap    []int
	live    int
}

func newCandidatePool() *candidatePool {
	return &candidatePool{}
}

func (p *candidatePool) add(c Peak) {
	idx := len(p.arena)
	p.arena = append(p.arena, c)
	p.removed = append(p.removed, false)
	p.live++

	p.heap = append(p.heap, idx)
	p.siftUp(len(p.heap) - 1)
}

// len returns the number of live candidates.
func (p *candidatePool) len() int {
	return p.live
}

// popMax removes and returns the live candidate with the highest apex
// intensity, or nil when the pool is empty. The returned pointer stays valid
// until the next add.
func (p *candidatePool) popMax() *Peak {
	for len(p.heap) > 0 {
		top := p.heap[0]

		last := len(p.heap) - 1
		p.heap[0] = p.heap[last]
		p.heap = p.heap[:last]
		if len(p.heap) > 0 {
			p.siftDown(0)
		}

		// Entries removed during suppression stay in the heap until
		// they surface here.
		if p.removed[top] {
			continue
		}

		p.removed[top] = true
		p.live--
		return &p.arena[top]
	}

	return nil
}

// remove marks the candidate at arena index idx as gone.
func (p *candidatePool) remove(idx int) {
	if !p.removed[idx] {
		p.removed[idx] = true
		p.live--
	}
}

// each visits all live candidates in arena order. The visitor may call
// remove for the index it is handed.
func (p *candidatePool) each(fn func(idx int, c *Peak)) {
	for i := range p.arena {
		if !p.removed[i] {
			fn(i, &p.arena[i])
		}
	}
}

// higher reports whether arena entry a outranks entry b in pop order.
func (p *candidatePool) higher(a, b int) bool {
	ca, cb := &p.arena[a], &p.arena[b]
	if ca.Intensity != cb.Intensity {
		return ca.Intensity > cb.Intensity
	}

	return ca.Mz < cb.Mz
}

func (p *candidatePool) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !p.higher(p.heap[i], p.heap[parent]) {
			return
		}

		p.heap[i], p.heap[parent] = p.heap[parent], p.heap[i]
		i = parent
	}
}

func (p *candidatePool) siftDown(i int) {
	n := len(p.heap)
	for {
		best := i
		if l := 2*i + 1; l < n && p.higher(p.heap[l], p.heap[best]) {
			best = l
		}
		if r := 2*i + 2; r < n && p.higher(p.heap[r], p.heap[best]) {
			best = r
		}
		if best == i {
			return
		}

		p.heap[i], p.heap[best] = p.heap[best], p.heap[i]
		i = best
	}
}

package matrixutil

// PathIterator walks a shortest-path successor matrix from a source to a
// destination station, one intermediate station at a time. It yields from
// first and to last, with every station on the path in between.
type PathIterator struct {
	next    Matrix[int]
	current int
	to      int
	done    bool
}

// NewPathIterator builds an iterator over next (a Floyd-Warshall successor
// matrix, see the routing package) from from to to.
func NewPathIterator(next Matrix[int], from, to int) *PathIterator {
	return &PathIterator{next: next, current: from, to: to}
}

// Next returns the next station on the path and true, or false once the
// destination has already been yielded.
func (p *PathIterator) Next() (int, bool) {
	if p.done {
		return 0, false
	}
	station := p.current
	if p.current == p.to {
		p.done = true
		return station, true
	}
	p.current = p.next.At(p.current, p.to)
	return station, true
}

// Collect drains the iterator into a slice, from first to to last inclusive.
func Collect(next Matrix[int], from, to int) []int {
	it := NewPathIterator(next, from, to)
	var out []int
	for {
		station, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, station)
	}
	return out
}

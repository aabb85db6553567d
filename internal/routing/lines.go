package routing

import "github.com/FilippoRanza/metrosim/internal/matrixutil"

// Terminus is an ordered pair of station ids that anchor one metro line.
// Order matters: a line's path is always walked from Terminus[0] toward
// Terminus[1].
type Terminus [2]int

// Lines holds the station sequence for every metro line, in the order the
// termini were supplied.
type Lines struct {
	stations []([]int)
	terminus []Terminus
}

// LinesFromSuccessorMatrix derives each line's station sequence as the
// shortest path between its terminus pair, using the successor matrix from
// AllShortestPaths. Use this when lines are not pre-supplied.
func LinesFromSuccessorMatrix(next matrixutil.Matrix[int], terminus []Terminus) Lines {
	stations := make([][]int, len(terminus))
	for i, t := range terminus {
		stations[i] = matrixutil.Collect(next, t[0], t[1])
	}
	return Lines{stations: stations, terminus: terminus}
}

// LinesFromGiven builds a Lines value from pre-supplied station sequences,
// for networks where a line cannot be reconstructed as a shortest path.
func LinesFromGiven(stations [][]int, terminus []Terminus) Lines {
	return Lines{stations: stations, terminus: terminus}
}

// Stations returns the ordered station list for line i.
func (l Lines) Stations(i int) []int { return l.stations[i] }

// Len returns the number of lines.
func (l Lines) Len() int { return len(l.stations) }

// Terminus returns the terminus pairs, in construction order.
func (l Lines) Terminus() []Terminus { return l.terminus }

// LineItem is one line's terminus pair together with its station set, as
// yielded by LineSet.Lines.
type LineItem struct {
	Terminus Terminus
	Stations map[int]struct{}
}

// LineSet is a set-backed view over Lines, used to answer same-line
// queries and to enumerate cross-line and interchange relationships.
type LineSet struct {
	terminus []Terminus
	lines    []map[int]struct{}
}

// NewLineSet converts Lines' station sequences into the set representation
// same-line queries need.
func NewLineSet(l Lines) LineSet {
	lines := make([]map[int]struct{}, l.Len())
	for i := range lines {
		stations := l.Stations(i)
		set := make(map[int]struct{}, len(stations))
		for _, s := range stations {
			set[s] = struct{}{}
		}
		lines[i] = set
	}
	return LineSet{terminus: l.Terminus(), lines: lines}
}

// IsSameLine reports whether a and b both appear on at least one common
// line.
func (s LineSet) IsSameLine(a, b int) bool {
	for _, line := range s.lines {
		_, oka := line[a]
		_, okb := line[b]
		if oka && okb {
			return true
		}
	}
	return false
}

// Lines returns every line's terminus pair and station set, in construction
// order.
func (s LineSet) Lines() []LineItem {
	out := make([]LineItem, len(s.lines))
	for i, line := range s.lines {
		out[i] = LineItem{Terminus: s.terminus[i], Stations: line}
	}
	return out
}

// LinePair is one unordered pairing of two lines' station sets, including a
// line paired with itself.
type LinePair struct {
	A, B map[int]struct{}
}

// CrossLines enumerates every unique unordered pair of lines, a line paired
// with itself included (harmless: any direction computed for a station
// against itself is idempotent).
func (s LineSet) CrossLines() []LinePair {
	pairs := crossIndexPairs(len(s.lines))
	out := make([]LinePair, len(pairs))
	for k, p := range pairs {
		out[k] = LinePair{A: s.lines[p[0]], B: s.lines[p[1]]}
	}
	return out
}

// FindInterchanges returns every station that belongs to more than one
// line. Unlike CrossLines, a line is never paired with itself here: every
// station on a line trivially belongs to that line, so a self-pair would
// mark every one of its stations an interchange.
func (s LineSet) FindInterchanges() map[int]struct{} {
	out := make(map[int]struct{})
	for _, p := range crossIndexPairs(len(s.lines)) {
		i, j := p[0], p[1]
		if i == j {
			continue
		}
		a, b := s.lines[i], s.lines[j]
		for st := range a {
			if _, ok := b[st]; ok {
				out[st] = struct{}{}
			}
		}
	}
	return out
}

// crossIndexPairs enumerates every pair (i, j) with i <= j < n, in the same
// order as the original source's CrossIndexIterator: (0,0),(0,1),...,(0,n-1),
// (1,1),(1,2),...,(n-1,n-1).
func crossIndexPairs(n int) [][2]int {
	var out [][2]int
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out = append(out, [2]int{i, j})
		}
	}
	return out
}

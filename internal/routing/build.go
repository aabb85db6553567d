package routing

import "github.com/FilippoRanza/metrosim/internal/matrixutil"

// Result bundles everything a metro network needs once its routing tables
// are built: the derived lines, the direction matrix and the interchange
// matrix passengers consult.
type Result struct {
	Lines       Lines
	Direction   Direction
	Interchange Interchange
}

// BuildDirections builds the full routing Result for a network given its
// adjacency matrix and terminus pairs. Lines are derived automatically as
// the shortest path between each terminus pair; interchanges are found as
// the intersection between lines.
func BuildDirections[T Number](adj matrixutil.Matrix[T], terminus []Terminus, infinity T) Result {
	sp := AllShortestPaths(adj, infinity)
	lines := LinesFromSuccessorMatrix(sp.Next, terminus)
	return buildFromLines(sp, lines)
}

// BuildDirectionsFromLines is BuildDirections for networks where lines
// cannot be derived as shortest paths between their termini and must be
// supplied directly (see Lines.FromGiven).
func BuildDirectionsFromLines[T Number](adj matrixutil.Matrix[T], lines Lines, infinity T) Result {
	sp := AllShortestPaths(adj, infinity)
	return buildFromLines(sp, lines)
}

func buildFromLines[T Number](sp ShortestPaths[T], lines Lines) Result {
	ls := NewLineSet(lines)
	ipm := BuildInterchangePathMatrix(sp.Next, ls)
	mdm := BuildDirectionMatrix(sp.Next, sp.Dist, ls, ipm)
	return Result{
		Lines:       lines,
		Direction:   Direction{mat: mdm},
		Interchange: Interchange{mat: ipm},
	}
}

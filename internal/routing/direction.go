package routing

import "github.com/FilippoRanza/metrosim/internal/matrixutil"

// BuildDirectionMatrix computes, for every (start, dest) pair, the terminus
// station of the train a passenger must board: when start and dest share a
// line this is whichever of that line's two termini is closer to dest than
// to start; when they do not share a line it is the direction to take
// toward the first interchange on the way, taken from the already-built
// interchange-path matrix.
func BuildDirectionMatrix[T Number](next matrixutil.Matrix[int], dist matrixutil.Matrix[T], ls LineSet, ipm matrixutil.Matrix[int]) matrixutil.Matrix[int] {
	n := next.N()
	out := matrixutil.New[int](n)
	setInLineDirections(ls, dist, out)
	setCrossLineDirections(ls, ipm, out)
	return out
}

func setInLineDirections[T Number](ls LineSet, dist matrixutil.Matrix[T], out matrixutil.Matrix[int]) {
	for _, line := range ls.Lines() {
		t1, t2 := line.Terminus[0], line.Terminus[1]
		for s1 := range line.Stations {
			for s2 := range line.Stations {
				out.Set(s1, s2, findCloser(dist, t1, t2, s1, s2))
			}
		}
	}
}

// findCloser decides which terminus of a line a passenger travelling from
// start to dest should head toward. Assumes start and dest share a line.
func findCloser[T Number](dist matrixutil.Matrix[T], t1, t2, start, dest int) int {
	if start == dest {
		return start
	}
	d1 := dist.At(start, t1)
	d2 := dist.At(dest, t1)
	if d2 >= d1 {
		return t2
	}
	return t1
}

func setCrossLineDirections(ls LineSet, ipm matrixutil.Matrix[int], out matrixutil.Matrix[int]) {
	for _, pair := range ls.CrossLines() {
		for a := range pair.A {
			for b := range pair.B {
				propagateInterchangeDirection(a, b, ipm, out)
				propagateInterchangeDirection(b, a, ipm, out)
			}
		}
	}
}

// propagateInterchangeDirection copies the direction already known for the
// leg from start to its first interchange onto the leg from start all the
// way to dst: reaching dst first requires reaching that interchange, so the
// train to board is the same one.
func propagateInterchangeDirection(start, dst int, ipm matrixutil.Matrix[int], out matrixutil.Matrix[int]) {
	interchange := ipm.At(start, dst)
	out.Set(start, dst, out.At(start, interchange))
}

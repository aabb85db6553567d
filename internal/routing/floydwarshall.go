// Package routing builds the station-to-station routing tables a metro
// network needs at setup time: all-pairs shortest paths over the physical
// track graph, the derived metro lines, the interchange-path matrix and the
// direction matrix passengers use to pick a train.
package routing

import "github.com/FilippoRanza/metrosim/internal/matrixutil"

// Number is the set of integer types Floyd-Warshall can run over. Distances
// are summed and compared, so only integers (never strings) belong here;
// there is no third-party numeric-constraint package in the retrieved
// corpus, and this bound is small enough that hand-writing it beats adding
// one just for this.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ShortestPaths holds the all-pairs result of AllShortestPaths: the distance
// matrix and the successor matrix used to walk any shortest path one station
// at a time.
type ShortestPaths[T Number] struct {
	Dist matrixutil.Matrix[T]
	Next matrixutil.Matrix[int]
}

// AllShortestPaths runs the Floyd-Warshall algorithm over the square
// adjacency matrix adj. infinity marks "no direct edge"; it must be large
// enough that no real path length can reach it, since two infinities are
// never summed (that would overflow) but an infinity is always treated as
// unreachable. Panics if adj is not square.
func AllShortestPaths[T Number](adj matrixutil.Matrix[T], infinity T) ShortestPaths[T] {
	n := adj.N()
	dist := adj.Clone()
	next := matrixutil.New[int](n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if dist.At(i, j) < infinity {
				next.Set(i, j, j)
			}
		}
	}
	for i := 0; i < n; i++ {
		next.Set(i, i, i)
	}

	for h := 0; h < n; h++ {
		for i := 0; i < n; i++ {
			ih := dist.At(i, h)
			if ih == infinity {
				continue
			}
			for j := 0; j < n; j++ {
				hj := dist.At(h, j)
				if hj == infinity {
					continue
				}
				if dist.At(i, j) > ih+hj {
					dist.Set(i, j, ih+hj)
					next.Set(i, j, next.At(i, h))
				}
			}
		}
	}

	return ShortestPaths[T]{Dist: dist, Next: next}
}

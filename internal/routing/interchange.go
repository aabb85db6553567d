package routing

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/FilippoRanza/metrosim/internal/matrixutil"
)

// BuildInterchangePathMatrix computes, for every (start, dest) pair, the
// next station a passenger must physically reach: dest itself when start
// and dest share a line, otherwise the first interchange station on the
// shortest path from start to dest.
func BuildInterchangePathMatrix(next matrixutil.Matrix[int], ls LineSet) matrixutil.Matrix[int] {
	interchanges := ls.FindInterchanges()
	n := next.N()
	out := matrixutil.New[int](n)
	for s := 0; s < n; s++ {
		for e := 0; e < n; e++ {
			out.Set(s, e, interchangePathEntry(s, e, next, ls, interchanges))
		}
	}
	return out
}

func interchangePathEntry(s, e int, next matrixutil.Matrix[int], ls LineSet, interchanges map[int]struct{}) int {
	if ls.IsSameLine(s, e) {
		return e
	}
	return firstInterchange(s, e, next, interchanges)
}

// firstInterchange walks the shortest path from start to dest and returns
// the first station on it that belongs to more than one line.
func firstInterchange(start, dest int, next matrixutil.Matrix[int], interchanges map[int]struct{}) int {
	it := matrixutil.NewPathIterator(next, start, dest)
	for {
		station, ok := it.Next()
		if !ok {
			panic("routing: path from station to destination never crosses an interchange")
		}
		if _, isInterchange := interchanges[station]; isInterchange {
			return station
		}
	}
}

// BuildInterchangePathMatrixMemoized computes the same result as
// BuildInterchangePathMatrix, but caches each destination column's
// walk-to-interchange results as it goes: the path from any station s1 to a
// fixed destination e shares its tail with the path from any other station
// s2 that lies on that same path, so stations already visited while
// resolving one row can be answered for free when their own row is reached.
func BuildInterchangePathMatrixMemoized(next matrixutil.Matrix[int], ls LineSet) matrixutil.Matrix[int] {
	interchanges := ls.FindInterchanges()
	n := next.N()
	out := matrixutil.New[int](n)
	for e := 0; e < n; e++ {
		cache := make(map[int]int)
		for s := 0; s < n; s++ {
			if ls.IsSameLine(s, e) {
				out.Set(s, e, e)
				continue
			}
			if cached, ok := cache[s]; ok {
				out.Set(s, e, cached)
				continue
			}
			result, visited := firstInterchangeWithPath(s, e, next, interchanges)
			for _, st := range visited {
				cache[st] = result
			}
			out.Set(s, e, result)
		}
	}
	return out
}

// firstInterchangeWithPath is firstInterchange but also reports every
// station visited strictly before the interchange was found, so the caller
// can memoize them.
func firstInterchangeWithPath(start, dest int, next matrixutil.Matrix[int], interchanges map[int]struct{}) (int, []int) {
	var visited []int
	it := matrixutil.NewPathIterator(next, start, dest)
	for {
		station, ok := it.Next()
		if !ok {
			panic("routing: path from station to destination never crosses an interchange")
		}
		if _, isInterchange := interchanges[station]; isInterchange {
			return station, visited
		}
		visited = append(visited, station)
	}
}

type interchangeRow struct {
	s   int
	row []int
}

// BuildInterchangePathMatrixParallel computes the same result as
// BuildInterchangePathMatrix, but fans one goroutine out per source station
// and funnels each finished row through a channel to a single collector
// that owns the output matrix, rather than having workers write directly
// into shared storage.
func BuildInterchangePathMatrixParallel(next matrixutil.Matrix[int], ls LineSet) matrixutil.Matrix[int] {
	interchanges := ls.FindInterchanges()
	n := next.N()
	out := matrixutil.New[int](n)

	rows := make(chan interchangeRow, n)
	g, _ := errgroup.WithContext(context.Background())
	for s := 0; s < n; s++ {
		s := s
		g.Go(func() error {
			row := make([]int, n)
			for e := 0; e < n; e++ {
				row[e] = interchangePathEntry(s, e, next, ls, interchanges)
			}
			rows <- interchangeRow{s: s, row: row}
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		for i := 0; i < n; i++ {
			r := <-rows
			copy(out.Row(r.s), r.row)
		}
		close(done)
	}()

	if err := g.Wait(); err != nil {
		panic(err)
	}
	<-done

	return out
}

package routing

import "github.com/FilippoRanza/metrosim/internal/matrixutil"

// The reference network shared by every test in this package: arcs
// (0,1) (1,2) (2,3) (2,5) (2,7) (3,4) (5,6) (7,8), termini (0,6) and (4,8),
// single interchange at station 2. Line one runs 0-1-2-5-6, line two runs
// 4-3-2-7-8.

func fixtureTerminus() []Terminus {
	return []Terminus{{0, 6}, {4, 8}}
}

func fixtureInterchanges() map[int]struct{} {
	return map[int]struct{}{2: {}}
}

func fixtureAdjacency() matrixutil.Matrix[uint32] {
	const inf = ^uint32(0)
	edges := [][3]int{
		{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {2, 5, 1}, {2, 7, 1}, {3, 4, 1}, {5, 6, 1}, {7, 8, 1},
	}
	m := matrixutil.NewFilled[uint32](9, inf)
	for i := 0; i < 9; i++ {
		m.Set(i, i, 0)
	}
	for _, e := range edges {
		m.Set(e[0], e[1], uint32(e[2]))
		m.Set(e[1], e[0], uint32(e[2]))
	}
	return m
}

func fixtureNextMatrix() matrixutil.Matrix[int] {
	rows := [9][9]int{
		{0, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 2, 2, 2, 2, 2, 2, 2},
		{1, 1, 2, 3, 3, 5, 5, 7, 7},
		{2, 2, 2, 3, 4, 2, 2, 2, 2},
		{3, 3, 3, 3, 4, 3, 3, 3, 3},
		{2, 2, 2, 2, 2, 5, 6, 2, 2},
		{5, 5, 5, 5, 5, 5, 6, 5, 5},
		{2, 2, 2, 2, 2, 2, 2, 7, 8},
		{7, 7, 7, 7, 7, 7, 7, 7, 8},
	}
	return intMatrixFromRows(rows[:])
}

func fixtureDistMatrix() matrixutil.Matrix[uint32] {
	rows := [9][9]int{
		{0, 1, 2, 3, 4, 3, 4, 3, 4},
		{1, 0, 1, 2, 3, 2, 3, 2, 3},
		{2, 1, 0, 1, 2, 1, 2, 1, 2},
		{3, 2, 1, 0, 1, 2, 3, 2, 3},
		{4, 3, 2, 1, 0, 3, 4, 3, 4},
		{3, 2, 1, 2, 3, 0, 1, 2, 3},
		{4, 3, 2, 3, 4, 1, 0, 3, 4},
		{3, 2, 1, 2, 3, 2, 3, 0, 1},
		{4, 3, 2, 3, 4, 3, 4, 1, 0},
	}
	m := matrixutil.New[uint32](9)
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, uint32(v))
		}
	}
	return m
}

func fixtureInterchangePathMatrix() matrixutil.Matrix[int] {
	rows := [9][9]int{
		{0, 1, 2, 2, 2, 5, 6, 2, 2},
		{0, 1, 2, 2, 2, 5, 6, 2, 2},
		{0, 1, 2, 3, 4, 5, 6, 7, 8},
		{2, 2, 2, 3, 4, 2, 2, 7, 8},
		{2, 2, 2, 3, 4, 2, 2, 7, 8},
		{0, 1, 2, 2, 2, 5, 6, 2, 2},
		{0, 1, 2, 2, 2, 5, 6, 2, 2},
		{2, 2, 2, 3, 4, 2, 2, 7, 8},
		{2, 2, 2, 3, 4, 2, 2, 7, 8},
	}
	return intMatrixFromRows(rows[:])
}

func fixtureDirectionMatrix() matrixutil.Matrix[int] {
	rows := [9][9]int{
		{0, 6, 6, 6, 6, 6, 6, 6, 6},
		{0, 1, 6, 6, 6, 6, 6, 6, 6},
		{0, 0, 2, 4, 4, 6, 6, 8, 8},
		{8, 8, 8, 3, 4, 8, 8, 8, 8},
		{8, 8, 8, 8, 4, 8, 8, 8, 8},
		{0, 0, 0, 0, 0, 5, 6, 0, 0},
		{0, 0, 0, 0, 0, 0, 6, 0, 0},
		{4, 4, 4, 4, 4, 4, 4, 7, 8},
		{4, 4, 4, 4, 4, 4, 4, 4, 8},
	}
	return intMatrixFromRows(rows[:])
}

func intMatrixFromRows(rows [][9]int) matrixutil.Matrix[int] {
	m := matrixutil.New[int](len(rows))
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m
}

func matricesEqual[T comparable](a, b matrixutil.Matrix[T]) bool {
	if a.N() != b.N() {
		return false
	}
	n := a.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if a.At(i, j) != b.At(i, j) {
				return false
			}
		}
	}
	return true
}

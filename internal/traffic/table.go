package traffic

import "math/rand"

// Config describes a network-wide traffic table: a shared demand-curve
// shape applied to every origin-destination pair with a nonzero total.
type Config struct {
	TimeBegin        int
	TimeEnd          int
	MinuteResolution int
	Anchors          []Anchor
	// Totals[origin][dest] is the expected passenger count over the whole
	// window for that pair; zero or negative means no traffic is
	// generated for it.
	Totals [][]int
	Seed   int64
}

// Build constructs a Table from cfg. Each origin station gets its own
// random source (derived from Seed), so that per-station generation stays
// deterministic under the row-parallel generation passenger.Factory
// performs.
func Build(cfg Config) Table {
	n := len(cfg.Totals)
	table := make(Table, n)
	for i := 0; i < n; i++ {
		row := make([]Generator, len(cfg.Totals[i]))
		src := rand.NewSource(cfg.Seed + int64(i))
		for j, total := range cfg.Totals[i] {
			if total <= 0 {
				continue
			}
			row[j] = NewSimpleGenerator(cfg.Anchors, cfg.TimeBegin, cfg.TimeEnd, cfg.MinuteResolution, total, src)
		}
		table[i] = row
	}
	return table
}

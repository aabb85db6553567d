package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// LineSummary reports one line's dispatch and fleet activity at the end of
// a run.
type LineSummary struct {
	Index            int
	TrainsDispatched int
	TrainsRunning    int
}

// Report summarizes a completed run for end-of-simulation output. The CORE
// itself performs no file I/O; Report is assembled by the engine and
// written out by the CLI only.
type Report struct {
	Steps               int
	PassengersGenerated uint64
	Lines               []LineSummary
}

func (e *Engine) buildReport() *Report {
	lines := make([]LineSummary, len(e.network.Lines))
	for i, l := range e.network.Lines {
		lines[i] = LineSummary{
			Index:            i,
			TrainsDispatched: l.DispatchedTrains(),
			TrainsRunning:    l.RunningTrains(),
		}
	}
	return &Report{
		Steps:               e.network.Steps,
		PassengersGenerated: e.network.Factory.Generated(),
		Lines:               lines,
	}
}

// WriteCSV writes r as a CSV summary to w: one row per line, followed by a
// totals row.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"section", "line", "trains_dispatched", "trains_running", "steps", "passengers_generated"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	totalDispatched := 0
	for _, l := range r.Lines {
		totalDispatched += l.TrainsDispatched
		row := []string{
			"line",
			strconv.Itoa(l.Index),
			strconv.Itoa(l.TrainsDispatched),
			strconv.Itoa(l.TrainsRunning),
			"",
			"",
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv line row: %w", err)
		}
	}

	summary := []string{
		"summary",
		"",
		strconv.Itoa(totalDispatched),
		"",
		strconv.Itoa(r.Steps),
		strconv.FormatUint(r.PassengersGenerated, 10),
	}
	if err := cw.Write(summary); err != nil {
		return fmt.Errorf("write csv summary row: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

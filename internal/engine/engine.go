// Package engine drives the fixed three-phase simulation loop over a built
// network: generate passengers, step every line, then run each line's
// boarding operations, in that order, once per tick.
package engine

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/FilippoRanza/metrosim/internal/config"
	"github.com/FilippoRanza/metrosim/internal/line"
	"github.com/FilippoRanza/metrosim/internal/passenger"
)

// Engine owns a built network and runs its step loop. It holds no
// simulation state of its own beyond what config.Build already produced;
// it exists purely to sequence the three phases and report progress.
type Engine struct {
	network *config.Network
	log     logrus.FieldLogger

	sinks    []passenger.StationSink
	stations []line.Station
}

// New wraps a built network for stepping. A nil logger defaults to a
// standard logrus logger at Info level.
func New(network *config.Network, log logrus.FieldLogger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	sinks := make([]passenger.StationSink, len(network.Stations))
	stations := make([]line.Station, len(network.Stations))
	for i, s := range network.Stations {
		sinks[i] = s
		stations[i] = s
	}
	return &Engine{network: network, log: log, sinks: sinks, stations: stations}
}

// Run executes the network's configured number of steps and returns a
// Report summarizing the run. It returns an error only if ctx is canceled
// between steps; the simulation core itself is infallible once built.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	e.log.WithFields(logrus.Fields{
		"network_size": e.network.Size,
		"lines":        len(e.network.Lines),
		"steps":        e.network.Steps,
	}).Info("simulation starting")

	for step := 0; step < e.network.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.runStep(step)
	}

	report := e.buildReport()
	e.log.WithFields(logrus.Fields{
		"steps":     e.network.Steps,
		"generated": report.PassengersGenerated,
	}).Info("simulation complete")
	return report, nil
}

func (e *Engine) runStep(step int) {
	if err := e.network.Factory.Generate(step, e.sinks); err != nil {
		panic("engine: passenger generation failed: " + err.Error())
	}

	var stepGroup errgroup.Group
	for _, l := range e.network.Lines {
		l := l
		stepGroup.Go(func() error {
			l.Step()
			return nil
		})
	}
	_ = stepGroup.Wait()

	var boardGroup errgroup.Group
	for _, l := range e.network.Lines {
		l := l
		boardGroup.Go(func() error {
			l.BoardingOperations(e.stations)
			return nil
		})
	}
	_ = boardGroup.Wait()

	e.log.WithField("step", step).Debug("step complete")
}

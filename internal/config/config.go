// Package config loads a metro network's YAML definition and builds the
// routing tables, lines, and stations it describes: parse the raw
// structures, then build the domain model from them.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/FilippoRanza/metrosim/internal/line"
	"github.com/FilippoRanza/metrosim/internal/matrixutil"
	"github.com/FilippoRanza/metrosim/internal/passenger"
	"github.com/FilippoRanza/metrosim/internal/routing"
	"github.com/FilippoRanza/metrosim/internal/station"
	"github.com/FilippoRanza/metrosim/internal/traffic"
)

// infinity is the sentinel adjacency weight meaning "no direct edge". YAML
// adjacency rows use 0 for that purpose (a real edge always costs at least
// one step); Build converts every off-diagonal zero to this value before
// handing the matrix to the routing package.
const infinity = 1 << 30

// NetworkConfig is the raw shape of a network definition file.
type NetworkConfig struct {
	NetworkSize int             `yaml:"network_size"`
	Adjacency   [][]int         `yaml:"adjacency"`
	Lines       []LineConfig    `yaml:"lines"`
	Traffic     TrafficConfig   `yaml:"traffic"`
	Seed        int64           `yaml:"seed"`
	Steps       int             `yaml:"steps"`
}

// LineConfig describes one metro line's physical layout.
type LineConfig struct {
	Stations        []int `yaml:"stations"`
	StationDuration int   `yaml:"station_duration"`
	ChunkLengths    []int `yaml:"chunk_lengths"`
	SplitLength     int   `yaml:"split_length"`
	DepoSize        int   `yaml:"depo_size"`
	TrainDelay      int   `yaml:"train_delay"`
}

// TrafficConfig describes the network-wide demand curve and per-pair
// totals.
type TrafficConfig struct {
	TimeBegin        int            `yaml:"time_begin"`
	TimeEnd          int            `yaml:"time_end"`
	MinuteResolution int            `yaml:"minute_resolution"`
	Anchors          []AnchorConfig `yaml:"anchors"`
	Totals           [][]int        `yaml:"totals"`
}

// AnchorConfig pins the demand curve's relative value at a given hour.
type AnchorConfig struct {
	Time  int     `yaml:"time"`
	Value float64 `yaml:"value"`
}

// LoadNetworkConfigFromReader parses a network definition from r.
func LoadNetworkConfigFromReader(r io.Reader) (*NetworkConfig, error) {
	var cfg NetworkConfig
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode network config: %w", err)
	}
	return &cfg, nil
}

// Network is the fully built simulation network: routing tables, stations,
// lines, and the passenger factory that drives them.
type Network struct {
	Routing routing.Result
	Stations []*station.Station
	Lines    []*line.Line
	Traffic  traffic.Table
	Factory  *passenger.Factory
	Size     int
	Steps    int
}

// Build constructs a Network from a validated NetworkConfig. Structural
// invariant violations (non-square adjacency, an out-of-range terminus or
// station reference) panic rather than return an error: they indicate a
// broken configuration file the simulation cannot meaningfully run with,
// not a recoverable runtime condition.
func Build(cfg *NetworkConfig) *Network {
	checkAdjacencyShape(cfg)
	adj := buildAdjacency(cfg)

	termini := make([]routing.Terminus, len(cfg.Lines))
	for i, lc := range cfg.Lines {
		checkLineStations(cfg, lc, i)
		termini[i] = routing.Terminus{lc.Stations[0], lc.Stations[len(lc.Stations)-1]}
	}
	result := routing.BuildDirections(adj, termini, infinity)

	stations := make([]*station.Station, cfg.NetworkSize)
	for i := range stations {
		stations[i] = station.New(i, cfg.NetworkSize, result.Direction, result.Interchange)
	}

	lines := make([]*line.Line, len(cfg.Lines))
	for i, lc := range cfg.Lines {
		lines[i] = buildLine(lc, cfg.NetworkSize)
	}

	table := traffic.Build(buildTrafficConfig(cfg))
	factory := passenger.NewFactory(table, nil)

	return &Network{
		Routing:  result,
		Stations: stations,
		Lines:    lines,
		Traffic:  table,
		Factory:  factory,
		Size:     cfg.NetworkSize,
		Steps:    cfg.Steps,
	}
}

func checkAdjacencyShape(cfg *NetworkConfig) {
	if len(cfg.Adjacency) != cfg.NetworkSize {
		panic(fmt.Sprintf("config: adjacency has %d rows, want %d", len(cfg.Adjacency), cfg.NetworkSize))
	}
	for i, row := range cfg.Adjacency {
		if len(row) != cfg.NetworkSize {
			panic(fmt.Sprintf("config: adjacency row %d has %d entries, want %d", i, len(row), cfg.NetworkSize))
		}
	}
}

func buildAdjacency(cfg *NetworkConfig) matrixutil.Matrix[int] {
	m := matrixutil.New[int](cfg.NetworkSize)
	for i, row := range cfg.Adjacency {
		for j, w := range row {
			if i == j {
				m.Set(i, j, 0)
				continue
			}
			if w == 0 {
				m.Set(i, j, infinity)
				continue
			}
			m.Set(i, j, w)
		}
	}
	return m
}

func checkLineStations(cfg *NetworkConfig, lc LineConfig, index int) {
	if len(lc.Stations) < 2 {
		panic(fmt.Sprintf("config: line %d needs at least 2 stations, got %d", index, len(lc.Stations)))
	}
	if len(lc.ChunkLengths) != len(lc.Stations)-1 {
		panic(fmt.Sprintf("config: line %d has %d stations but %d chunk lengths, want %d",
			index, len(lc.Stations), len(lc.ChunkLengths), len(lc.Stations)-1))
	}
	for _, s := range lc.Stations {
		if s < 0 || s >= cfg.NetworkSize {
			panic(fmt.Sprintf("config: line %d references out-of-range station %d", index, s))
		}
	}
}

func buildLine(lc LineConfig, networkSize int) *line.Line {
	stations := make([]line.StationSpec, len(lc.Stations))
	for i, id := range lc.Stations {
		stations[i] = line.StationSpec{ID: id, Duration: lc.StationDuration}
	}
	return line.BuildLine(line.LineFactoryConfig{
		Stations:     stations,
		ChunkLengths: lc.ChunkLengths,
		SplitLength:  lc.SplitLength,
		DepoSize:     lc.DepoSize,
		TrainDelay:   lc.TrainDelay,
		NetworkSize:  networkSize,
	})
}

func buildTrafficConfig(cfg *NetworkConfig) traffic.Config {
	anchors := make([]traffic.Anchor, len(cfg.Traffic.Anchors))
	for i, a := range cfg.Traffic.Anchors {
		anchors[i] = traffic.Anchor{Time: a.Time, Value: a.Value}
	}
	return traffic.Config{
		TimeBegin:        cfg.Traffic.TimeBegin,
		TimeEnd:          cfg.Traffic.TimeEnd,
		MinuteResolution: cfg.Traffic.MinuteResolution,
		Anchors:          anchors,
		Totals:           cfg.Traffic.Totals,
		Seed:             cfg.Seed,
	}
}

package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth              int
	Cutoff             float64
	Sequential         bool
	Duration           time.Duration
	Evaluations        int
	ProbabilityCutoffs int
	DepthCutoffs       int
	TerminalNodes      int
	ChanceNodes        int
}

type MoveMetric struct {
	Step    int
	Move    string
	Value   float64
	MaxTile int
	SearchMetric
}

type GameMetric struct {
	Seed       uint64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	MaxTile    int
	Score      int
	FinalBoard uint64
}

// Collector counts search events. Implementations must be safe for concurrent use since root
// moves are searched in parallel.
type Collector interface {
	Start(depth int, cutoff float64, sequential bool)
	AddEvaluation()
	AddProbabilityCutoff()
	AddDepthCutoff()
	AddTerminal()
	AddChanceNode()
	Complete() SearchMetric
}

type collector struct {
	depth              int
	cutoff             float64
	sequential         bool
	startTime          time.Time
	evaluations        atomic.Int64
	probabilityCutoffs atomic.Int64
	depthCutoffs       atomic.Int64
	terminalNodes      atomic.Int64
	chanceNodes        atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, cutoff float64, sequential bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.cutoff = cutoff
	m.sequential = sequential
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddProbabilityCutoff() {
	m.probabilityCutoffs.Add(1)
}

func (m *collector) AddDepthCutoff() {
	m.depthCutoffs.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminalNodes.Add(1)
}

func (m *collector) AddChanceNode() {
	m.chanceNodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:              m.depth,
		Cutoff:             m.cutoff,
		Sequential:         m.sequential,
		Duration:           time.Since(m.startTime),
		Evaluations:        int(m.evaluations.Load()),
		ProbabilityCutoffs: int(m.probabilityCutoffs.Load()),
		DepthCutoffs:       int(m.depthCutoffs.Load()),
		TerminalNodes:      int(m.terminalNodes.Load()),
		ChanceNodes:        int(m.chanceNodes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, cutoff float64, sequential bool) {}
func (m *dummyCollector) AddEvaluation()                                   {}
func (m *dummyCollector) AddProbabilityCutoff()                            {}
func (m *dummyCollector) AddDepthCutoff()                                  {}
func (m *dummyCollector) AddTerminal()                                     {}
func (m *dummyCollector) AddChanceNode()                                   {}
func (m *dummyCollector) Complete() SearchMetric                           { return SearchMetric{} }

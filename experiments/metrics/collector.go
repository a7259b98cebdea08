package metrics

import (
	"time"
)

type SearchMetric struct {
	Variant  string
	Depth    int
	Duration time.Duration
	Nodes    int // every visited node, root and leaves included
	Leaves   int // evaluated states
	Cutoffs  int // pruned sibling lists
}

type MoveMetric struct {
	Step  int
	Agent int
	SearchMetric
}

type GameMetric struct {
	Layout          string
	Win             bool
	Score           float64
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
	TotalMoves      int
	AverageDecision time.Duration // mean search time of the controlled agent
}

// Collector counts the work of a single search. Searches are single-threaded
// so implementations need no synchronization.
type Collector interface {
	Start(variant string, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	variant   string
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(variant string, depth int) {
	m.startTime = time.Now()
	m.variant = variant
	m.depth = depth
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Variant:  m.variant,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Cutoffs:  m.cutoffs,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(variant string, depth int) {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf()                        {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) Complete() SearchMetric          { return SearchMetric{} }

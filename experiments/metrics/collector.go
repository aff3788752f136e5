package metrics

import (
	"sync/atomic"
	"time"

	"connect4/game"
)

type SearchMetric struct {
	Strategy     string
	Depth        int
	CachePolicy  string
	Duration     time.Duration
	Nodes        int
	CacheHits    int
	CacheEntries int
	Cutoffs      int
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Column int
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer game.Player
	Winner         game.Player // Zero when drawn
	Drawn          bool
	Axis           game.Axis
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(strategy string, depth int, policy string)
	AddNode()
	AddCacheHit()
	AddCutoff()
	SetCacheEntries(n int)
	Complete() SearchMetric
}

type collector struct {
	strategy     string
	depth        int
	policy       string
	startTime    time.Time
	nodes        atomic.Int64
	cacheHits    atomic.Int64
	cutoffs      atomic.Int64
	cacheEntries atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(strategy string, depth int, policy string) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.depth = depth
	m.policy = policy
	m.nodes.Store(0)
	m.cacheHits.Store(0)
	m.cutoffs.Store(0)
	m.cacheEntries.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetCacheEntries(n int) {
	m.cacheEntries.Store(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:     m.strategy,
		Depth:        m.depth,
		CachePolicy:  m.policy,
		Duration:     time.Since(m.startTime),
		Nodes:        int(m.nodes.Load()),
		CacheHits:    int(m.cacheHits.Load()),
		CacheEntries: int(m.cacheEntries.Load()),
		Cutoffs:      int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth int, policy string) {}
func (m *dummyCollector) AddNode()                                        {}
func (m *dummyCollector) AddCacheHit()                                    {}
func (m *dummyCollector) AddCutoff()                                      {}
func (m *dummyCollector) SetCacheEntries(n int)                           {}
func (m *dummyCollector) Complete() SearchMetric                          { return SearchMetric{} }

package centrality

import "fmt"

// Default tier thresholds.
const (
	MediumThreshold = 500
	HighThreshold   = 1000
)

// Tiers partitions labels by centrality, each slice in input order.
type Tiers struct {
	High   []string
	Medium []string
	Low    []string
}

// Option configures Classify.
type Option func(*classifyConfig)

type classifyConfig struct {
	medium int
	high   int
}

// WithThresholds overrides the tier bounds: degree > high is High,
// medium < degree <= high is Medium. Panics unless 0 <= medium < high.
func WithThresholds(medium, high int) Option {
	if medium < 0 || medium >= high {
		panic(fmt.Sprintf("centrality: WithThresholds(%d, %d): need 0 <= medium < high", medium, high))
	}
	return func(c *classifyConfig) {
		c.medium = medium
		c.high = high
	}
}

// Classify buckets scores into tiers. Every score lands in exactly one tier.
func Classify(scores []Score, opts ...Option) Tiers {
	cfg := classifyConfig{medium: MediumThreshold, high: HighThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	var t Tiers
	for _, s := range scores {
		switch {
		case s.Degree > cfg.high:
			t.High = append(t.High, s.Label)
		case s.Degree > cfg.medium:
			t.Medium = append(t.Medium, s.Label)
		default:
			t.Low = append(t.Low, s.Label)
		}
	}

	return t
}

package generate

import (
	"fmt"

	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	"github.com/dd0wney/cluso-graphbench/pkg/rng"
)

// Model names a random-graph model.
type Model string

const (
	ModelUniformRandom          Model = "gnm"
	ModelPreferentialAttachment Model = "pa"
	ModelForestFire             Model = "forestfire"
)

// Models lists the supported model names.
func Models() []Model {
	return []Model{ModelUniformRandom, ModelPreferentialAttachment, ModelForestFire}
}

// Spec carries the parameters of any model; fields unused by Model are ignored.
type Spec struct {
	Model    Model
	Vertices int
	Directed bool

	// gnm
	Edges int

	// pa
	EdgesPerStep int
	Power        float64
	ZeroAppeal   float64
	OutPref      bool

	// forestfire
	ForwardProb    float64
	BackwardFactor float64
	Ambassadors    int
}

// String describes the spec for logs.
func (s Spec) String() string {
	switch s.Model {
	case ModelUniformRandom:
		return fmt.Sprintf("gnm(n=%d, m=%d)", s.Vertices, s.Edges)
	case ModelPreferentialAttachment:
		return fmt.Sprintf("pa(n=%d, m=%d, power=%g, A=%g, outpref=%t)", s.Vertices, s.EdgesPerStep, s.Power, s.ZeroAppeal, s.OutPref)
	case ModelForestFire:
		return fmt.Sprintf("forestfire(n=%d, fw=%g, bw=%g, ambs=%d)", s.Vertices, s.ForwardProb, s.BackwardFactor, s.Ambassadors)
	default:
		return fmt.Sprintf("%s(n=%d)", s.Model, s.Vertices)
	}
}

// FromSpec generates a fresh graph for s.
func FromSpec(src *rng.Source, s Spec) (*graph.Graph, error) {
	switch s.Model {
	case ModelUniformRandom:
		return UniformRandom(src, s.Vertices, s.Edges, s.Directed)
	case ModelPreferentialAttachment:
		return PreferentialAttachment(src, PAParams{
			Vertices:     s.Vertices,
			EdgesPerStep: s.EdgesPerStep,
			Power:        s.Power,
			ZeroAppeal:   s.ZeroAppeal,
			OutPref:      s.OutPref,
			Directed:     s.Directed,
		})
	case ModelForestFire:
		return ForestFire(src, FFParams{
			Vertices:       s.Vertices,
			ForwardProb:    s.ForwardProb,
			BackwardFactor: s.BackwardFactor,
			Ambassadors:    s.Ambassadors,
			Directed:       s.Directed,
		})
	default:
		return nil, graph.InvalidParameterError("FromSpec", "unknown model %q", string(s.Model))
	}
}

package experiment

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-graphbench/pkg/generate"
	"github.com/dd0wney/cluso-graphbench/pkg/validation"
)

// DefaultSweepRepetitions is the per-ratio repetition count of the induced-subgraph
// sweep when a descriptor leaves it unset.
const DefaultSweepRepetitions = 1

// Descriptor declares one corpus entry: a graph model with its parameters, the
// display name used in report labels and the repetition counts.
type Descriptor struct {
	Name     string `yaml:"name" validate:"required"`
	Model    string `yaml:"model" validate:"oneof=gnm pa forestfire"`
	Vertices int    `yaml:"vertices" validate:"gt=0"`
	Directed bool   `yaml:"directed"`

	// Model parameters. Only the fields of Model are checked; the rest are ignored.
	Edges          int     `yaml:"edges"`           // gnm
	EdgesPerStep   int     `yaml:"edges_per_step"`  // pa
	Power          float64 `yaml:"power"`           // pa
	ZeroAppeal     float64 `yaml:"zero_appeal"`     // pa
	OutPref        bool    `yaml:"out_pref"`        // pa
	ForwardProb    float64 `yaml:"forward_prob"`    // forestfire
	BackwardFactor float64 `yaml:"backward_factor"` // forestfire
	Ambassadors    int     `yaml:"ambassadors"`     // forestfire

	Repetitions      int  `yaml:"repetitions" validate:"min=1"`
	SweepRepetitions int  `yaml:"sweep_repetitions" validate:"gte=0"`
	Unweighted       bool `yaml:"unweighted"`
}

// Validate checks the struct tags, then the parameters of the selected model.
// Every model must produce edges, since the community benchmark divides by the
// total edge weight.
func (d *Descriptor) Validate() error {
	if err := validation.Struct(d); err != nil {
		return fmt.Errorf("%s: %w", d.Name, err)
	}

	cv := validation.NewConfigValidator(d.Name)
	cv.When(d.Model == string(generate.ModelUniformRandom), func(v *validation.ConfigValidator) {
		v.Positive("edges", d.Edges).
			MaxInt64("edges", d.Edges, generate.MaxSimpleEdges(d.Vertices, d.Directed))
	})
	cv.When(d.Model == string(generate.ModelPreferentialAttachment), func(v *validation.ConfigValidator) {
		v.Positive("edges_per_step", d.EdgesPerStep).
			Finite("power", d.Power).
			NonNegativeFloat("power", d.Power).
			Finite("zero_appeal", d.ZeroAppeal).
			NonNegativeFloat("zero_appeal", d.ZeroAppeal).
			Custom("zero_appeal", func() error {
				if d.Directed && !d.OutPref && d.ZeroAppeal == 0 {
					return errors.New("directed graph without out_pref needs a positive zero_appeal")
				}
				return nil
			})
	})
	cv.When(d.Model == string(generate.ModelForestFire), func(v *validation.ConfigValidator) {
		v.Probability("forward_prob", d.ForwardProb).
			Finite("backward_factor", d.BackwardFactor).
			NonNegativeFloat("backward_factor", d.BackwardFactor).
			Positive("ambassadors", d.Ambassadors).
			Custom("backward_factor", func() error {
				if d.ForwardProb*d.BackwardFactor >= 1 {
					return fmt.Errorf("backward burning probability %g must be below 1", d.ForwardProb*d.BackwardFactor)
				}
				return nil
			})
	})
	return cv.Validate()
}

// Spec converts the descriptor into generator parameters.
func (d *Descriptor) Spec() generate.Spec {
	return generate.Spec{
		Model:          generate.Model(d.Model),
		Vertices:       d.Vertices,
		Directed:       d.Directed,
		Edges:          d.Edges,
		EdgesPerStep:   d.EdgesPerStep,
		Power:          d.Power,
		ZeroAppeal:     d.ZeroAppeal,
		OutPref:        d.OutPref,
		ForwardProb:    d.ForwardProb,
		BackwardFactor: d.BackwardFactor,
		Ambassadors:    d.Ambassadors,
	}
}

// SweepReps returns the per-ratio repetition count of the subgraph sweep.
func (d *Descriptor) SweepReps() int {
	return validation.DefaultOrInt(d.SweepRepetitions, DefaultSweepRepetitions)
}

package experiment

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-graphbench/pkg/graph"
	"github.com/dd0wney/cluso-graphbench/pkg/validation"
)

//go:embed default_corpus.yaml
var defaultCorpus []byte

// ErrNoRuns is returned for a corpus without runs.
var ErrNoRuns = errors.New("corpus has no runs")

// Corpus is the ordered list of runs of one benchmark invocation.
type Corpus struct {
	Runs []Descriptor `yaml:"runs"`
}

// Validate checks every run.
func (c *Corpus) Validate() error {
	if len(c.Runs) == 0 {
		return ErrNoRuns
	}
	for i := range c.Runs {
		if err := validation.ValidateConfig(&c.Runs[i]); err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
	}
	return nil
}

// Load decodes and validates a YAML corpus. Unknown keys are rejected.
func Load(r io.Reader) (*Corpus, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Corpus
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, graph.InvalidParameterError("Load", "empty corpus")
		}
		return nil, graph.NewError("Load").Kind(graph.InvalidParameter).Context("decode corpus").Cause(err).Err()
	}
	if err := validation.ValidateConfig(&c); err != nil {
		return nil, graph.NewError("Load").Kind(graph.InvalidParameter).Cause(err).Err()
	}
	return &c, nil
}

// DefaultCorpus returns the built-in corpus.
func DefaultCorpus() (*Corpus, error) {
	return Load(bytes.NewReader(defaultCorpus))
}

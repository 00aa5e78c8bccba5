// Package dataset reads the YAML input files of the phat CLI: a transition
// matrix, optional state labels and a batch of weighted trajectories.
//
//	matrix:
//	  - [0.5, 0.5]
//	  - [0.25, 0.75]
//	labels: [low, high]      # optional, defaults to "0".."n-1"
//	symmetrized: true        # optional, defaults to true
//	trajectories:
//	  - [low, high, low]
//	weights: [1.0]           # optional
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/phat/matrix"
	"github.com/katalvlaran/phat/surprisal"
)

// ErrInvalidDataset indicates a structurally invalid dataset file.
var ErrInvalidDataset = errors.New("dataset: invalid dataset")

// Dataset is the decoded file.
type Dataset struct {
	Matrix       [][]float64 `yaml:"matrix"       validate:"required,min=1,dive,required"`
	Labels       []string    `yaml:"labels"       validate:"omitempty,unique,dive,required"`
	Symmetrized  *bool       `yaml:"symmetrized"`
	Trajectories [][]string  `yaml:"trajectories" validate:"dive,min=1"`
	Weights      []float64   `yaml:"weights"      validate:"omitempty,dive,gte=0"`
}

// Load reads and validates the dataset at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes and validates a dataset from r.
func Parse(r io.Reader) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidDataset, err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	return &ds, nil
}

// Validate checks field constraints and the cross-field lengths.
func (ds *Dataset) Validate() error {
	if err := validator.New().Struct(ds); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	if ds.Labels != nil && len(ds.Labels) != len(ds.Matrix) {
		return fmt.Errorf("%w: %d labels for %d states", ErrInvalidDataset, len(ds.Labels), len(ds.Matrix))
	}
	if ds.Weights != nil && len(ds.Weights) != len(ds.Trajectories) {
		return fmt.Errorf("%w: %d weights for %d trajectories", ErrInvalidDataset, len(ds.Weights), len(ds.Trajectories))
	}

	return nil
}

// Nodes returns the state labels, defaulting to "0".."n-1".
func (ds *Dataset) Nodes() []string {
	if ds.Labels != nil {
		return append([]string{}, ds.Labels...)
	}
	out := make([]string, len(ds.Matrix))
	for i := range out {
		out[i] = strconv.Itoa(i)
	}

	return out
}

// Symmetrize reports the requested construction mode, true when unset.
func (ds *Dataset) Symmetrize() bool {
	return ds.Symmetrized == nil || *ds.Symmetrized
}

// Transition returns the matrix as a matrix.Dense.
func (ds *Dataset) Transition() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(ds.Matrix)
}

// Graph builds the surprisal graph described by the dataset.
func (ds *Dataset) Graph(opts ...surprisal.Option) (*surprisal.Graph[string], error) {
	T, err := ds.Transition()
	if err != nil {
		return nil, err
	}
	opts = append([]surprisal.Option{surprisal.WithSymmetrized(ds.Symmetrize())}, opts...)

	return surprisal.NewLabeled(T, ds.Nodes(), opts...)
}

package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phat/internal/dataset"
	"github.com/katalvlaran/phat/surprisal"
)

const birthDeath = `
matrix:
  - [0.5, 0.5, 0]
  - [0.25, 0.5, 0.25]
  - [0, 0.5, 0.5]
labels: [low, mid, high]
trajectories:
  - [low, mid, low, mid, high]
  - [high, mid, low]
weights: [2, 1]
`

func TestParse_BirthDeath(t *testing.T) {
	ds, err := dataset.Parse(strings.NewReader(birthDeath))
	require.NoError(t, err)
	assert.Equal(t, []string{"low", "mid", "high"}, ds.Nodes())
	assert.True(t, ds.Symmetrize())
	assert.Len(t, ds.Trajectories, 2)

	g, err := ds.Graph()
	require.NoError(t, err)
	assert.True(t, g.Symmetrized())
	fs, err := g.FundamentalSequence(ds.Trajectories[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"low", "mid", "high"}, fs)
}

func TestParse_DefaultLabels(t *testing.T) {
	ds, err := dataset.Parse(strings.NewReader("matrix: [[0.5, 0.5], [0, 1]]\nsymmetrized: false\ntrajectories: [[0, 1]]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, ds.Nodes())
	assert.False(t, ds.Symmetrize())
	assert.Equal(t, []string{"0", "1"}, ds.Trajectories[0])

	g, err := ds.Graph()
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"no matrix":       "trajectories: [[a]]\n",
		"unknown field":   "matrix: [[1]]\nextra: 1\n",
		"label count":     "matrix: [[1]]\nlabels: [a, b]\n",
		"duplicate label": "matrix: [[0.5, 0.5], [0.5, 0.5]]\nlabels: [a, a]\n",
		"weights count":   "matrix: [[1]]\ntrajectories: [[\"0\"]]\nweights: [1, 2]\n",
		"negative weight": "matrix: [[1]]\ntrajectories: [[\"0\"]]\nweights: [-1]\n",
		"empty traj":      "matrix: [[1]]\ntrajectories: [[]]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dataset.Parse(strings.NewReader(body))
			require.ErrorIs(t, err, dataset.ErrInvalidDataset)
		})
	}
}

func TestGraph_NotReversible(t *testing.T) {
	ds, err := dataset.Parse(strings.NewReader("matrix: [[0.5, 0.5], [0, 1]]\n"))
	require.NoError(t, err)
	_, err = ds.Graph()
	require.ErrorIs(t, err, surprisal.ErrNotReversible)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(birthDeath), 0o600))
	ds, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1}, ds.Weights)

	_, err = dataset.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

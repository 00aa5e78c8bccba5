package hist_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/phat/hist"
)

var errOdd = errors.New("odd length")

// byLength classifies paths by length and rejects odd lengths.
func byLength(p []int) (int, error) {
	if len(p)%2 == 1 {
		return 0, errOdd
	}
	return len(p), nil
}

type HistogramSuite struct {
	suite.Suite
	h *hist.PathwayHistogram[[]int, int]
}

func (s *HistogramSuite) SetupTest() {
	h, err := hist.NewPathwayHistogram(byLength)
	s.Require().NoError(err)
	s.h = h
}

func (s *HistogramSuite) TestLazyClassesInInsertionOrder() {
	s.Require().NoError(s.h.Add([]int{1, 2, 3, 4}, 2))
	s.Require().NoError(s.h.AddOne([]int{1, 2}))
	s.Require().NoError(s.h.AddOne([]int{5, 6, 7, 8}))

	s.Equal([]int{4, 2}, s.h.Classes())
	blocks := s.h.Blocks()
	s.Require().Len(blocks, 2)
	s.Equal(2, blocks[0].Len())
	s.Equal(3.0, blocks[0].TotalWeight())
	s.Equal(1, blocks[1].Len())
	s.Equal(4.0, s.h.TotalWeight())

	_, ok := s.h.Data().Get(6)
	s.False(ok, "unobserved classes are absent")
}

func (s *HistogramSuite) TestAddFailuresRecordNothing() {
	s.ErrorIs(s.h.Add([]int{1, 2}, -1), hist.ErrInvalidWeight)

	err := s.h.AddOne([]int{1})
	s.ErrorIs(err, hist.ErrClassify)
	s.ErrorIs(err, errOdd)

	s.Zero(s.h.Len())
}

func (s *HistogramSuite) TestFillAccumulateFalse() {
	s.Require().NoError(s.h.Fill([][]int{{1, 2}, {3, 4}}, nil, true))
	s.Require().NoError(s.h.Fill([][]int{{1, 2, 3, 4}}, []float64{0.5}, false))

	s.Equal([]int{4}, s.h.Classes())
	ws, ok := s.h.Data().Get(4)
	s.Require().True(ok)
	s.Equal(1, ws.Len())
	s.Equal(0.5, ws.TotalWeight())
}

func (s *HistogramSuite) TestFillIsAtomic() {
	s.Require().NoError(s.h.AddOne([]int{1, 2}))

	s.ErrorIs(s.h.Fill([][]int{{1, 2}, {3, 4}}, []float64{1}, false), hist.ErrLengthMismatch)
	s.ErrorIs(s.h.Fill([][]int{{1, 2}}, []float64{1, 1}, true), hist.ErrLengthMismatch)
	s.ErrorIs(s.h.Fill([][]int{{1, 2}, {3, 4}}, []float64{1, -2}, false), hist.ErrInvalidWeight)
	s.ErrorIs(s.h.Fill([][]int{{1, 2}, {3}}, nil, false), hist.ErrClassify)

	s.Equal([]int{2}, s.h.Classes())
	s.Equal(1.0, s.h.TotalWeight())
}

func (s *HistogramSuite) TestViewReturnsCopies() {
	s.Require().NoError(s.h.AddOne([]int{1, 2}))

	ws, ok := s.h.Data().Get(2)
	s.Require().True(ok)
	s.Require().NoError(ws.Append([]int{9, 9}, 1))
	s.h.Blocks()[0].Clear()

	got, _ := s.h.Data().Get(2)
	s.Equal(1, got.Len())

	var classes []int
	s.h.Data().Range(func(c int, ws *hist.WeightedSample[[]int]) bool {
		classes = append(classes, c)
		ws.Clear()
		return true
	})
	s.Equal([]int{2}, classes)
	s.Equal(1, s.h.Data().Len())
	s.Equal(1.0, s.h.TotalWeight())
}

func (s *HistogramSuite) TestClear() {
	s.Require().NoError(s.h.AddOne([]int{1, 2}))
	s.h.Clear()
	s.Zero(s.h.Len())
	s.Empty(s.h.Classes())
	_, err := s.h.Probabilities()
	s.ErrorIs(err, hist.ErrZeroTotalWeight)
}

func TestHistogramSuite(t *testing.T) {
	suite.Run(t, new(HistogramSuite))
}

func TestNewPathwayHistogram_NilClassifier(t *testing.T) {
	_, err := hist.NewPathwayHistogram[string, string](nil)
	require.ErrorIs(t, err, hist.ErrNilClassifier)
}

func TestConstantClassifier(t *testing.T) {
	h, err := hist.NewPathwayHistogram(hist.Infallible(func(string) string { return "all" }))
	require.NoError(t, err)
	for _, tr := range []string{"a", "b", "c", "d"} {
		require.NoError(t, h.AddOne(tr))
	}
	require.Equal(t, []string{"all"}, h.Classes())
	ws, ok := h.Data().Get("all")
	require.True(t, ok)
	assert.Equal(t, 4, ws.Len())
}

func TestMergeEqualsSingleFill(t *testing.T) {
	first := func(s string) string { return s[:1] }
	left := []string{"apple", "bean", "avocado"}
	right := []string{"carrot", "banana", "apricot"}

	a, err := hist.Build(hist.Infallible(first), left, nil)
	require.NoError(t, err)
	b, err := hist.Build(hist.Infallible(first), right, []float64{1, 2, 3})
	require.NoError(t, err)
	a.Merge(b)

	all, err := hist.Build(hist.Infallible(first), append(append([]string{}, left...), right...), []float64{1, 1, 1, 1, 2, 3})
	require.NoError(t, err)

	require.Equal(t, all.Classes(), a.Classes())
	for i, ws := range all.Blocks() {
		got := a.Blocks()[i]
		assert.Equal(t, ws.Observations(), got.Observations())
		assert.Equal(t, ws.Weights(), got.Weights())
	}

	p, err := a.Probabilities()
	require.NoError(t, err)
	assert.InDelta(t, 5.0/9.0, p["a"], 1e-12)
	assert.Equal(t, 3, b.Len(), "other untouched")
	assert.Equal(t, []string{"carrot"}, b.Blocks()[0].Observations())
}

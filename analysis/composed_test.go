package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposedAccumulate(t *testing.T) {
	p := createTestRows(t)
	facc := Compose(
		Histogrammer("met", 10, 0, 100),
		Histogrammer("Electron_pt", 10, 0, 100),
	)
	acc := facc()
	for i := 0; i < p.GetNumRows(); i++ {
		require.Nil(t, acc.Accumulate(p.GetRow(i)))
	}
	results := acc.(*Composed).GetResults()
	require.Len(t, results, 2)
	require.EqualValues(t, 2, results[0].(*Histogram).Hist().Entries())
	require.EqualValues(t, 3, results[1].(*Histogram).Hist().Entries())
}

func TestComposedMerge(t *testing.T) {
	p := createTestRows(t)
	facc := Compose(Histogrammer("met", 10, 0, 100))
	a, b := facc(), facc()
	for i := 0; i < p.GetNumRows(); i++ {
		require.Nil(t, a.Accumulate(p.GetRow(i)))
		require.Nil(t, b.Accumulate(p.GetRow(i)))
	}
	require.Nil(t, a.Merge(b))
	require.EqualValues(t, 4, a.(*Composed).GetResults()[0].(*Histogram).Hist().Entries())

	// mismatched shapes refuse to merge
	other := Compose()()
	require.NotNil(t, a.Merge(other))
}

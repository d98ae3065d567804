package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Caudal/internal/calc/pipe"
)

func TestCalculateSeries(t *testing.T) {
	segments := []pipe.Segment{
		{Name: "run", LengthM: 10, DiameterM: 0.05, RoughnessM: 1e-5},
	}

	t.Run("independent items", func(t *testing.T) {
		res, err := CalculateSeries(SeriesBatchInput{
			Items: []pipe.SeriesInput{
				{QM3s: 0.001, Segments: segments},
				{QM3s: 0.002, Segments: segments},
			},
		})
		require.NoError(t, err)
		require.Len(t, res.Results, 2)
		assert.Greater(t, res.Results[1].HfTotalM, res.Results[0].HfTotalM,
			"more flow through the same pipe must lose more head")
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := CalculateSeries(SeriesBatchInput{})
		assert.Error(t, err)
	})

	t.Run("bad item aborts the batch", func(t *testing.T) {
		_, err := CalculateSeries(SeriesBatchInput{
			Items: []pipe.SeriesInput{
				{QM3s: 0.001, Segments: segments},
				{QM3s: -1, Segments: segments},
			},
		})
		assert.Error(t, err)
	})
}

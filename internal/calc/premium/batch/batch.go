package batch

import (
	"fmt"

	"Caudal/internal/calc/pipe"
	"Caudal/internal/fluid"
)

type SeriesBatchInput struct {
	Items []pipe.SeriesInput `json:"items"`
}

type SeriesBatchResult struct {
	Results []pipe.SeriesResult `json:"results"`
}

// CalculateSeries evaluates several independent series runs in one
// request. The first invalid item aborts the whole batch.
func CalculateSeries(in SeriesBatchInput) (SeriesBatchResult, error) {
	if len(in.Items) == 0 {
		return SeriesBatchResult{}, fmt.Errorf("no items")
	}
	out := SeriesBatchResult{Results: make([]pipe.SeriesResult, 0, len(in.Items))}
	for _, item := range in.Items {
		item.Fluid = fluid.ApplyDefaults(item.Fluid)
		res, err := pipe.CalculateSeries(item)
		if err != nil {
			return SeriesBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

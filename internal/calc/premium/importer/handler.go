package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"Caudal/internal/calc/friction"
	"Caudal/internal/calc/pipe"
	"Caudal/internal/fluid"
)

type Handler struct{}

type SeriesImportResult struct {
	Count  int               `json:"count"`
	Result pipe.SeriesResult `json:"result"`
}

// Series reads a pipe series from an uploaded .xlsx sheet and computes
// its head loss. Form fields: file (sheet), q_m3s, method (optional).
// Expected columns per row: name, length_m, diameter_m, roughness_m.
func (h *Handler) Series(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	q, err := toFloat(r.FormValue("q_m3s"))
	if err != nil || q <= 0 {
		http.Error(w, "q_m3s form value required", http.StatusBadRequest)
		return
	}
	method := friction.Method(r.FormValue("method"))

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var segments []pipe.Segment
	for i := 1; i < len(rows); i++ {
		seg, err := parseSegmentRow(rows[i])
		if err != nil {
			continue
		}
		segments = append(segments, seg)
	}

	res, err := pipe.CalculateSeries(pipe.SeriesInput{
		QM3s:     q,
		Segments: segments,
		Fluid:    fluid.Water20C(),
		Method:   method,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SeriesImportResult{Count: len(segments), Result: res})
}

func parseSegmentRow(row []string) (pipe.Segment, error) {
	// expected: name, length_m, diameter_m, roughness_m(optional)
	if len(row) < 3 {
		return pipe.Segment{}, fmt.Errorf("bad row")
	}
	name := row[0]
	length, err := toFloat(row[1])
	if err != nil {
		return pipe.Segment{}, err
	}
	diameter, err := toFloat(row[2])
	if err != nil {
		return pipe.Segment{}, err
	}
	roughness := fluid.RoughnessHDPE
	if len(row) > 3 && row[3] != "" {
		roughness, err = toFloat(row[3])
		if err != nil {
			return pipe.Segment{}, err
		}
	}
	seg := pipe.Segment{
		Name:       name,
		LengthM:    length,
		DiameterM:  diameter,
		RoughnessM: roughness,
	}
	return seg, seg.Validate()
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}

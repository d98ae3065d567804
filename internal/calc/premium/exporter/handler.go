package exporter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"Caudal/internal/calc/pipe"
	"Caudal/internal/fluid"
)

type Handler struct{}

var header = []string{
	"Name", "Length [m]", "Diameter [m]", "Roughness [m]",
	"Velocity [m/s]", "Reynolds", "Regime", "Friction factor",
	"hf [m]", "dP [Pa]", "dP [bar]",
}

// Series computes a pipe series and streams the per-segment results and
// totals as an .xlsx workbook.
func (h *Handler) Series(w http.ResponseWriter, r *http.Request) {
	var input pipe.SeriesInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	input.Fluid = fluid.ApplyDefaults(input.Fluid)
	res, err := pipe.CalculateSeries(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for i, seg := range res.Segments {
		name := seg.Name
		if name == "" {
			name = fmt.Sprintf("segment %d", i+1)
		}
		values := []interface{}{
			name, seg.LengthM, seg.DiameterM, seg.RoughnessM,
			seg.VelocityMs, seg.Reynolds, string(seg.Regime), seg.FrictionFactor,
			seg.HfM, seg.DeltaPPa, seg.DeltaPBar,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	totalRow := len(res.Segments) + 2
	cell, _ := excelize.CoordinatesToCellName(1, totalRow)
	f.SetCellValue(sheet, cell, "TOTAL")
	cell, _ = excelize.CoordinatesToCellName(9, totalRow)
	f.SetCellValue(sheet, cell, res.HfTotalM)
	cell, _ = excelize.CoordinatesToCellName(10, totalRow)
	f.SetCellValue(sheet, cell, res.DeltaPTotalPa)
	cell, _ = excelize.CoordinatesToCellName(11, totalRow)
	f.SetCellValue(sheet, cell, res.DeltaPTotalBar)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"headloss-series.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

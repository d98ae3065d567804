package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	"Caudal/internal/calc/pipe"
	"Caudal/internal/fluid"
)

type Input struct {
	Project string           `json:"project"`
	Author  string           `json:"author"`
	Title   string           `json:"title"`
	Notes   string           `json:"notes"`
	Series  pipe.SeriesInput `json:"series"`
}

type Handler struct{}

// Generate computes the series and renders a PDF datasheet with the
// per-segment breakdown and the aggregate losses.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Pipe Head Loss Report"
	}
	input.Series.Fluid = fluid.ApplyDefaults(input.Series.Fluid)

	res, err := pipe.CalculateSeries(input.Series)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Flow rate: %.6f m3/s   Method: %s", input.Series.QM3s, input.Series.Method))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Fluid: rho=%.1f kg/m3, mu=%.3e Pa.s, g=%.3f m/s2",
		input.Series.Fluid.Rho, input.Series.Fluid.Mu, input.Series.Fluid.G))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 7, "Segment", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "L [m]", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 7, "D [mm]", "1", 0, "R", false, 0, "")
	pdf.CellFormat(22, 7, "v [m/s]", "1", 0, "R", false, 0, "")
	pdf.CellFormat(24, 7, "Re", "1", 0, "R", false, 0, "")
	pdf.CellFormat(18, 7, "f", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 7, "hf [m]", "1", 0, "R", false, 0, "")
	pdf.CellFormat(24, 7, "dP [Pa]", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, seg := range res.Segments {
		name := seg.Name
		if name == "" {
			name = fmt.Sprintf("segment %d", i+1)
		}
		pdf.CellFormat(30, 7, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%.3f", seg.LengthM), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%.2f", seg.DiameterM*1000.0), "1", 0, "R", false, 0, "")
		pdf.CellFormat(22, 7, fmt.Sprintf("%.4f", seg.VelocityMs), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 7, fmt.Sprintf("%.3e", seg.Reynolds), "1", 0, "R", false, 0, "")
		pdf.CellFormat(18, 7, fmt.Sprintf("%.5f", seg.FrictionFactor), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%.4f", seg.HfM), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 7, fmt.Sprintf("%.2f", seg.DeltaPPa), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Total head loss: %.4f m", res.HfTotalM))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total pressure drop: %.2f Pa (%.4f bar)", res.DeltaPTotalPa, res.DeltaPTotalBar))
	pdf.Ln(10)
	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"headloss-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

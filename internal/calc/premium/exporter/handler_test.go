package exporter

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestHandlerSeries(t *testing.T) {
	h := &Handler{}

	t.Run("workbook round-trip", func(t *testing.T) {
		body := `{"q_m3s":0.001,"segments":[
			{"name":"intake","length_m":4,"diameter_m":0.05,"roughness_m":1e-5},
			{"name":"outlet","length_m":6,"diameter_m":0.05,"roughness_m":1e-5}]}`
		req := httptest.NewRequest(http.MethodPost, "/tools-premium/export/series", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Series(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		defer f.Close()

		sheet := f.GetSheetName(0)
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		// header + 2 segments + totals
		require.Len(t, rows, 4)
		assert.Equal(t, "Name", rows[0][0])
		assert.Equal(t, "intake", rows[1][0])
		assert.Equal(t, "outlet", rows[2][0])
		assert.Equal(t, "TOTAL", rows[3][0])
	})

	t.Run("empty series is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tools-premium/export/series", strings.NewReader(`{"q_m3s":0.001}`))
		rec := httptest.NewRecorder()
		h.Series(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

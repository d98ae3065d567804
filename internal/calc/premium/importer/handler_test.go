package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildSheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func multipartRequest(t *testing.T, sheet *bytes.Buffer, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "segments.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(sheet.Bytes())
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/tools-premium/import/series", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandlerSeries(t *testing.T) {
	h := &Handler{}

	t.Run("valid sheet", func(t *testing.T) {
		sheet := buildSheet(t, [][]interface{}{
			{"name", "length_m", "diameter_m", "roughness_m"},
			{"intake", 4.0, 0.05, 1e-5},
			{"outlet", 6.0, 0.05, 1e-5},
			{"broken row", "not a number", 0.05},
		})
		rec := httptest.NewRecorder()
		h.Series(rec, multipartRequest(t, sheet, map[string]string{"q_m3s": "0.001"}))

		require.Equal(t, http.StatusOK, rec.Code)
		var res SeriesImportResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, 2, res.Count, "unparseable rows are skipped")
		require.Len(t, res.Result.Segments, 2)
		assert.Equal(t, "intake", res.Result.Segments[0].Name)
		assert.Greater(t, res.Result.HfTotalM, 0.0)
	})

	t.Run("missing flow rate", func(t *testing.T) {
		sheet := buildSheet(t, [][]interface{}{
			{"name", "length_m", "diameter_m"},
			{"a", 1.0, 0.05},
		})
		rec := httptest.NewRecorder()
		h.Series(rec, multipartRequest(t, sheet, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tools-premium/import/series", nil)
		rec := httptest.NewRecorder()
		h.Series(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

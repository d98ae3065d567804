package pipe

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Caudal/internal/calc/friction"
)

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}

	t.Run("fluid defaults to water at 20C", func(t *testing.T) {
		body := `{"q_m3s":0.001,"segment":{"length_m":10,"diameter_m":0.05,"roughness_m":1e-5},"method":"haaland"}`
		req := httptest.NewRequest(http.MethodPost, "/tools/pipe/calc", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Calc(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var res Result
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, friction.RegimeTurbulent, res.Regime)
		assert.InDelta(t, 0.509, res.VelocityMs, 1e-3)
		assert.Greater(t, res.HfM, 0.0)
	})

	t.Run("invalid input is a 400", func(t *testing.T) {
		body := `{"q_m3s":-1,"segment":{"length_m":10,"diameter_m":0.05}}`
		req := httptest.NewRequest(http.MethodPost, "/tools/pipe/calc", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Calc(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "flow rate")
	})

	t.Run("malformed payload is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tools/pipe/calc", strings.NewReader("{"))
		rec := httptest.NewRecorder()

		h.Calc(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlerSeries(t *testing.T) {
	h := &Handler{}
	body := `{"q_m3s":0.001,"segments":[
		{"name":"a","length_m":4,"diameter_m":0.05,"roughness_m":1e-5},
		{"name":"b","length_m":6,"diameter_m":0.05,"roughness_m":1e-5}]}`
	req := httptest.NewRequest(http.MethodPost, "/tools/pipe/series", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Series(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res SeriesResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.Len(t, res.Segments, 2)
	assert.Equal(t, "a", res.Segments[0].Name)
	assert.InEpsilon(t, res.Segments[0].HfM+res.Segments[1].HfM, res.HfTotalM, 1e-9)
}

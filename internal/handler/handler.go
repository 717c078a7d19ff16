package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/shuv1824/envhealth/internal/chart"
	"github.com/shuv1824/envhealth/internal/response"
	"github.com/shuv1824/envhealth/internal/services/report"
	"github.com/shuv1824/envhealth/internal/types"
)

type AnalysisHandler struct {
	session *report.Session
}

func NewAnalysisHandler(session *report.Session) *AnalysisHandler {
	return &AnalysisHandler{session: session}
}

// Health returns a simple health check response
func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Register mounts the analysis routes on an /api/v1 subrouter.
func (h *AnalysisHandler) Register(api *mux.Router) {
	api.HandleFunc("/analyze", h.Analyze).Methods(http.MethodPost)
	api.HandleFunc("/report", h.GetReport).Methods(http.MethodGet)

	// registered before /charts/{slot} so "enlarged" is not taken as a slot
	api.HandleFunc("/charts/enlarged", h.GetEnlarged).Methods(http.MethodGet)
	api.HandleFunc("/charts/enlarged", h.CloseEnlarged).Methods(http.MethodDelete)
	api.HandleFunc("/charts/{slot}", h.GetChart).Methods(http.MethodGet)
	api.HandleFunc("/charts/{slot}/enlarge", h.Enlarge).Methods(http.MethodPost)
}

// Analyze runs a full analysis for the requested city and returns the report.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var body types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		response.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.City == "" {
		body.City = r.URL.Query().Get("city")
	}

	start := time.Now()

	rep, err := h.session.Analyze(r.Context(), body.City)
	if err != nil {
		status, message := analyzeError(err)
		slog.Error("analysis failed", "city", body.City, "status", status, "error", err)
		response.ErrorJSON(w, status, message)
		return
	}

	// Add response time header
	w.Header().Set("X-Response-Time", time.Since(start).String())

	response.JSON(w, http.StatusOK, rep)
}

func analyzeError(err error) (int, string) {
	switch {
	case errors.Is(err, report.ErrEmptyCity):
		return http.StatusBadRequest, "Enter a city"
	case errors.Is(err, report.ErrCityNotFound):
		return http.StatusNotFound, "City not found"
	case errors.Is(err, report.ErrWeatherUnavailable):
		return http.StatusBadGateway, "Weather data unavailable"
	case errors.Is(err, report.ErrAirQualityUnavailable):
		return http.StatusBadGateway, "Air quality data unavailable"
	case errors.Is(err, report.ErrStaleResult):
		return http.StatusConflict, "superseded by a newer analysis"
	default:
		return http.StatusBadGateway, response.GenericErrorMessage
	}
}

// GetReport returns the current report as JSON, or as the text panel with
// ?format=text.
func (h *AnalysisHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.session.Current()
	if err != nil {
		response.ErrorJSON(w, http.StatusNotFound, "no report available - run an analysis first")
		return
	}

	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "", "json":
		response.JSON(w, http.StatusOK, rep)
	case "text":
		response.Text(w, http.StatusOK, rep.Text())
	default:
		response.ErrorJSON(w, http.StatusBadRequest, "format must be json or text")
	}
}

// GetChart returns one chart of the current report.
func (h *AnalysisHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	slot, err := chart.ParseSlot(mux.Vars(r)["slot"])
	if err != nil {
		response.ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	var handle *chart.Handle
	if id := r.URL.Query().Get("report"); id != "" {
		handle, err = h.session.ChartFor(id, slot)
	} else {
		handle, err = h.session.Chart(slot)
	}
	if err != nil {
		writeChartError(w, err)
		return
	}
	writeChart(w, r, handle)
}

// Enlarge opens the enlarged view of a chart, replacing any open one.
func (h *AnalysisHandler) Enlarge(w http.ResponseWriter, r *http.Request) {
	slot, err := chart.ParseSlot(mux.Vars(r)["slot"])
	if err != nil {
		response.ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	handle, err := h.session.Enlarge(slot)
	if err != nil {
		writeChartError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, enlargedView{
		Slot:  handle.Spec().Slot,
		Title: handle.Spec().Title,
		Size:  handle.Size(),
	})
}

type enlargedView struct {
	Slot  chart.Slot `json:"slot"`
	Title string     `json:"title"`
	Size  chart.Size `json:"size"`
}

// GetEnlarged returns the open enlarged chart.
func (h *AnalysisHandler) GetEnlarged(w http.ResponseWriter, r *http.Request) {
	handle, err := h.session.Enlarged()
	if err != nil {
		writeChartError(w, err)
		return
	}
	writeChart(w, r, handle)
}

// CloseEnlarged closes the enlarged view. Closing when nothing is open is not
// an error.
func (h *AnalysisHandler) CloseEnlarged(w http.ResponseWriter, r *http.Request) {
	h.session.CloseEnlarged()
	response.NoContent(w)
}

func writeChart(w http.ResponseWriter, r *http.Request, handle *chart.Handle) {
	raw := r.URL.Query().Get("format")
	if strings.EqualFold(raw, "json") {
		response.JSON(w, http.StatusOK, handle.Spec())
		return
	}

	format, err := chart.ParseFormat(raw)
	if err != nil {
		response.ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	img, err := handle.Render(format)
	if err != nil {
		writeChartError(w, err)
		return
	}
	response.Image(w, format.ContentType(), img)
}

func writeChartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chart.ErrNoChart):
		response.ErrorJSON(w, http.StatusNotFound, "no chart available - run an analysis first")
	case errors.Is(err, report.ErrStaleResult):
		response.ErrorJSON(w, http.StatusConflict, "report has been replaced by a newer analysis")
	case errors.Is(err, chart.ErrDisposed):
		response.ErrorJSON(w, http.StatusConflict, "chart has been replaced by a newer analysis")
	case errors.Is(err, chart.ErrEmptyChart):
		response.ErrorJSON(w, http.StatusUnprocessableEntity, "chart has no data to draw")
	default:
		slog.Error("chart rendering failed", "error", err)
		response.ErrorJSON(w, http.StatusInternalServerError, response.GenericErrorMessage)
	}
}

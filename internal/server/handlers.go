package server

import (
	"encoding/json"
	"net/http"

	"github.com/huangsam/dashviz/core"
	"github.com/huangsam/dashviz/internal/contract"
	"github.com/huangsam/dashviz/internal/page"
	"github.com/huangsam/dashviz/schema"
	"github.com/pkg/errors"
)

// PlanRequest carries the raw attribute texts of both hosts.
// Empty texts fall back to the default literals. Host flags default to present.
type PlanRequest struct {
	RoleScores    string `json:"roleScores"`
	Keywords      string `json:"keywords"`
	RadarHost     *bool  `json:"radarHost,omitempty"`
	WordCloudHost *bool  `json:"wordcloudHost,omitempty"`
	Chart         string `json:"chart,omitempty"`
	WordCloud     string `json:"wordcloud,omitempty"`
}

// LabelResponse is one derived label.
type LabelResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.Wrap(err, "invalid plan request"))
		return
	}

	caps, err := resolveModes(schema.Capabilities{Chart: true, WordCloud: true}, req.Chart, req.WordCloud)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	data := schema.PageData{
		Radar:     schema.HostData{Present: boolOr(req.RadarHost, true), Attr: req.RoleScores},
		WordCloud: schema.HostData{Present: boolOr(req.WordCloudHost, true), Attr: req.Keywords},
	}
	plan := s.planner(s.requestLogger(r)).Plan(data, caps)
	s.metrics.ObservePlan(plan)
	s.writeJSON(w, r, http.StatusOK, plan)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	doc, err := page.Parse(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	caps, err := resolveModes(doc.DetectCapabilities(s.cfg.Patterns), q.Get("chart"), q.Get("wordcloud"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	logger := s.requestLogger(r)
	plan := s.planner(logger).Plan(doc.PageData(), caps)
	s.metrics.ObservePlan(plan)
	core.ExecutePlan(doc, plan, logger)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := doc.Render(w); err != nil {
		logger.WithError(err).Error("Error writing rendered page")
	}
}

func (s *Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	keys := r.URL.Query()["key"]
	if len(keys) == 0 {
		s.writeError(w, r, http.StatusBadRequest, errors.New("at least one key parameter is required"))
		return
	}
	out := make([]LabelResponse, len(keys))
	for i, k := range keys {
		out[i] = LabelResponse{Key: k, Label: core.RoleLabel(k)}
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

// resolveModes applies auto/yes/no overrides on top of detected capabilities.
func resolveModes(detected schema.Capabilities, chart, wordcloud string) (schema.Capabilities, error) {
	chartMode, err := contract.ParseLibraryMode(chart)
	if err != nil {
		return schema.Capabilities{}, errors.Wrap(err, "invalid chart mode")
	}
	wcMode, err := contract.ParseLibraryMode(wordcloud)
	if err != nil {
		return schema.Capabilities{}, errors.Wrap(err, "invalid wordcloud mode")
	}
	return contract.ResolveCapabilities(detected, chartMode, wcMode), nil
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.requestLogger(r).WithError(err).Error("Error writing response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.requestLogger(r).WithError(err).Warn("Rejected request")
	s.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

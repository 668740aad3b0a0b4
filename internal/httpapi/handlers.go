package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/intelligence"
	"github.com/alexanderramin/hoikuplan/internal/layout"
	"github.com/alexanderramin/hoikuplan/internal/service"
	"github.com/alexanderramin/hoikuplan/internal/specfile"
	"github.com/alexanderramin/hoikuplan/internal/xlsx"
)

// urlParam returns the decoded path parameter. chi hands back the escaped
// form when the request carried a RawPath.
func urlParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"suggestions": s.suggestions != nil && s.suggestions.Available(r.Context()),
	})
}

func (s *Server) handleAgeGroups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"age_groups":   s.catalog.AgeGroups(),
		"placeholders": s.catalog.Placeholders(),
	})
}

func (s *Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	age := urlParam(r, "age")
	labels := s.catalog.Labels(age)
	if len(labels) == 0 {
		writeError(w, http.StatusNotFound, "not_found", "unknown age group "+strconv.Quote(age))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"age_group": age, "labels": labels})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	age, label := urlParam(r, "age"), urlParam(r, "label")
	phrases, ok := s.catalog.Lookup(age, label)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no phrases for "+strconv.Quote(age)+" / "+strconv.Quote(label))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"age_group": age,
		"label":     label,
		"phrases":   phrases,
		"options":   s.catalog.Options(age, label),
	})
}

// formOwner reads the {user} and {doc} path parameters.
func formOwner(w http.ResponseWriter, r *http.Request) (string, domain.DocumentKind, bool) {
	doc, err := domain.ParseDocumentKind(urlParam(r, "doc"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		return "", "", false
	}
	return urlParam(r, "user"), doc, true
}

type formResponse struct {
	UserID  string              `json:"user_id"`
	DocType domain.DocumentKind `json:"doc_type"`
	Values  domain.FieldValues  `json:"values"`
}

func (s *Server) handleLoadForm(w http.ResponseWriter, r *http.Request) {
	user, doc, ok := formOwner(w, r)
	if !ok {
		return
	}
	values, err := s.forms.Load(r.Context(), user, doc)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, formResponse{UserID: user, DocType: doc, Values: values})
}

func (s *Server) handleSaveForm(w http.ResponseWriter, r *http.Request) {
	user, doc, ok := formOwner(w, r)
	if !ok {
		return
	}
	var values domain.FieldValues
	if !s.decodeBody(w, r, &values) {
		return
	}
	snap, err := s.forms.Save(r.Context(), user, doc, values)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	user, doc, ok := formOwner(w, r)
	if !ok {
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid_input", "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	snaps, err := s.forms.History(r.Context(), user, doc, limit)
	if err != nil {
		writeErr(w, err)
		return
	}
	if snaps == nil {
		snaps = []*domain.Snapshot{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"snapshots": snaps})
}

// renderRequest carries either explicit values or a user whose latest
// snapshot should be rendered. Values stays raw so an absent key and an
// explicit null both select the snapshot.
type renderRequest struct {
	Spec   specfile.Document `json:"spec"`
	Values json.RawMessage   `json:"values,omitempty"`
	UserID string            `json:"user_id,omitempty"`
}

func (req renderRequest) hasValues() bool {
	v := bytes.TrimSpace(req.Values)
	return len(v) > 0 && !bytes.Equal(v, []byte("null"))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	spec, err := req.Spec.Spec()
	if err != nil {
		if layout.IsConfigurationError(err) {
			writeErr(w, err)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	ctx := r.Context()
	var export *service.Export
	if !req.hasValues() && strings.TrimSpace(req.UserID) != "" {
		export, err = s.exports.ExportLatest(ctx, req.UserID, spec)
	} else {
		var values domain.FieldValues
		if req.hasValues() {
			if err := json.Unmarshal(req.Values, &values); err != nil {
				writeError(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("invalid values: %v", err))
				return
			}
		}
		export, err = s.exports.Export(ctx, spec, values)
	}
	if err != nil {
		writeErr(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsx.ContentType)
	w.Header().Set("Content-Disposition", contentDisposition(export.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Data)
}

type suggestResponse struct {
	Text string                `json:"text,omitempty"`
	Week intelligence.WeekPlan `json:"week,omitempty"`
}

type suggestRequest struct {
	AgeGroup string `json:"age_group"`
	Keywords string `json:"keywords"`
	Doc      string `json:"doc"`
	Item     string `json:"item"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var body suggestRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	if strings.TrimSpace(body.Keywords) == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "keywords are required")
		return
	}
	req := intelligence.Request{AgeGroup: body.AgeGroup, Keywords: body.Keywords, Item: body.Item}
	if body.Doc != "" {
		doc, err := domain.ParseDocumentKind(body.Doc)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
			return
		}
		req.Doc = doc
	}

	if req.Doc == domain.KindWeekly {
		week, err := s.suggestions.GenerateWeek(r.Context(), req)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, suggestResponse{Week: week})
		return
	}

	text, err := s.suggestions.Generate(r.Context(), req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestResponse{Text: text})
}

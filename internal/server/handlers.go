package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	"github.com/mesh-intelligence/unitconv/internal/convert"
	"github.com/mesh-intelligence/unitconv/internal/format"
	"github.com/mesh-intelligence/unitconv/pkg/types"
)

// pagePrecision is the fixed result precision of the converter page.
const pagePrecision = 4

// defaultValue is the page's initial input value.
const defaultValue = 1.0

// convertResponse is the body of a successful /api/convert call. Result is
// null when the conversion overflows; Formatted still carries "+Inf" or
// "-Inf".
type convertResponse struct {
	convert.Request
	Result    *float64 `json:"result"`
	Formatted string   `json:"formatted"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// pageData feeds the converter page template.
type pageData struct {
	Categories []string
	Category   string
	Units      []string
	From       string
	To         string
	Value      string
	Result     string
	Error      string
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]any{
		"status":     "ok",
		"categories": len(s.catalog.Categories()),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.catalog.Categories())
}

func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	units, err := s.catalog.Units(r.PathValue("category"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, units)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := convert.Request{
		Category: q.Get("category"),
		From:     q.Get("from"),
		To:       q.Get("to"),
		Value:    defaultValue,
	}
	if req.Category == "" {
		req.Category = s.opts.DefaultCategory
	}
	if raw := q.Get("value"); raw != "" {
		v, err := convert.ParseValue(raw)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		req.Value = v
	}

	res, err := s.converter.Do(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := convertResponse{Request: res.Request, Formatted: s.opts.Formatter.Format(res.Result)}
	if res.Finite() {
		v := res.Result
		resp.Result = &v
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

// handleIndex renders the converter page. The unit selectors only offer
// units of the selected category. A conversion runs when the Convert
// button submitted the form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := pageData{
		Categories: s.catalog.Categories(),
		Category:   q.Get("category"),
		From:       q.Get("from"),
		To:         q.Get("to"),
		Value:      q.Get("value"),
	}
	if data.Category == "" {
		data.Category = s.opts.DefaultCategory
	}
	if data.Value == "" {
		data.Value = format.Fixed(defaultValue, pagePrecision)
	}

	units, err := s.catalog.Units(data.Category)
	if err != nil {
		data.Error = err.Error()
		data.Category = s.opts.DefaultCategory
		units, _ = s.catalog.Units(data.Category)
	}
	data.Units = units
	if !q.Has("convert") {
		data.From = pickUnit(units, data.From)
		data.To = pickUnit(units, data.To)
	}

	if data.Error == "" && q.Has("convert") {
		data.Result, data.Error = s.pageConvert(data)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.log.Error(r.Context(), err, "render page")
	}
}

// pickUnit keeps name when it belongs to units and otherwise selects the
// first unit.
func pickUnit(units []string, name string) string {
	if slices.Contains(units, name) || len(units) == 0 {
		return name
	}
	return units[0]
}

func (s *Server) pageConvert(data pageData) (result, msg string) {
	v, err := convert.ParseValue(data.Value)
	if err != nil {
		return "", err.Error()
	}
	out, err := s.converter.Convert(v, data.From, data.To, data.Category)
	if err != nil {
		return "", err.Error()
	}
	return format.Fixed(out, pagePrecision), ""
}

// writeJSON encodes v before writing the header so an encoding failure
// still produces a 500 with an error body.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.log.Error(r.Context(), err, "encode response")
		status = http.StatusInternalServerError
		buf.Reset()
		buf.WriteString(`{"error":"internal error"}` + "\n")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.log.Warn(r.Context(), err, "write response")
	}
}

// writeError maps invalid input to 400, catalog lookup failures to 404 and
// anything else to 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrInvalidValue):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrUnknownCategory), errors.Is(err, types.ErrUnknownUnit):
		status = http.StatusNotFound
	}
	s.log.Warn(r.Context(), err, "request rejected", "path", r.URL.Path, "status", status)
	s.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

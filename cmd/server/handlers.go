package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/cours-de-latin/postag"
	"github.com/cours-de-latin/postag/codec"
	"github.com/cours-de-latin/postag/treebank"
	"github.com/cours-de-latin/postag/universal"
)

// maxBody bounds request bodies.
const maxBody = 1 << 20

// ---- JSON response types ------------------------------------------------

type universalJSON struct {
	Label    string   `json:"label"`
	Name     string   `json:"name"`
	Examples []string `json:"examples"`
}

type treebankJSON struct {
	Label       string `json:"label"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Universal   string `json:"universal"`
}

type universalListResponse struct {
	Tags []universalJSON `json:"tags"`
}

type treebankListResponse struct {
	Tags []treebankJSON `json:"tags"`
}

type projectionJSON struct {
	Tag       string `json:"tag"`
	Universal string `json:"universal"`
}

type projectSequenceResponse struct {
	Results []projectionJSON `json:"results"`
}

type decodeResponse struct {
	Tagset string `json:"tagset"`
	Label  string `json:"label"`
	Name   string `json:"name"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toUniversalJSON(u universal.Tag) universalJSON {
	return universalJSON{Label: u.Label(), Name: u.Name(), Examples: u.Examples()}
}

func toTreebankJSON(t treebank.Tag) treebankJSON {
	return treebankJSON{
		Label:       t.Label(),
		Name:        t.Name(),
		Description: t.Description(),
		Universal:   t.Universal().Label(),
	}
}

func toProjectionJSON(t treebank.Tag) projectionJSON {
	return projectionJSON{Tag: t.Label(), Universal: treebank.Project(t).Label()}
}

type api struct {
	log   *zap.Logger
	codec *codec.Codec // nil when serialization is disabled
}

func (a *api) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Warn("encode response", zap.Error(err))
	}
}

func (a *api) writeError(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, errorResponse{Error: msg})
}

func (a *api) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/universal", a.handleUniversal)
	mux.HandleFunc("/api/treebank", a.handleTreebank)
	mux.HandleFunc("/api/project", a.handleProject)
	mux.HandleFunc("/api/encode", a.handleEncode)
	mux.HandleFunc("/api/decode", a.handleDecode)
	return mux
}

// ---- handlers -----------------------------------------------------------

func (a *api) handleUniversal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	all := universal.All()
	out := make([]universalJSON, 0, len(all))
	for _, u := range all {
		out = append(out, toUniversalJSON(u))
	}
	a.writeJSON(w, http.StatusOK, universalListResponse{Tags: out})
}

func (a *api) handleTreebank(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	all := treebank.All()
	out := make([]treebankJSON, 0, len(all))
	for _, t := range all {
		out = append(out, toTreebankJSON(t))
	}
	a.writeJSON(w, http.StatusOK, treebankListResponse{Tags: out})
}

// handleProject projects one tag (GET ?tag=) or a sequence (POST
// {"tags":[...]}).
func (a *api) handleProject(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		label := r.URL.Query().Get("tag")
		if label == "" {
			a.writeError(w, http.StatusBadRequest, "missing 'tag' query parameter")
			return
		}
		t, err := treebank.Parse(label)
		if err != nil {
			a.writeError(w, http.StatusNotFound, err.Error())
			return
		}
		a.writeJSON(w, http.StatusOK, toProjectionJSON(t))

	case http.MethodPost:
		var body struct {
			Tags []string `json:"tags"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&body); err != nil {
			a.writeError(w, http.StatusBadRequest, "body must be JSON with a 'tags' array")
			return
		}
		out := make([]projectionJSON, 0, len(body.Tags))
		for i, label := range body.Tags {
			t, err := treebank.Parse(label)
			if err != nil {
				a.writeError(w, http.StatusBadRequest, fmt.Sprintf("tags[%d]: %v", i, err))
				return
			}
			out = append(out, toProjectionJSON(t))
		}
		a.writeJSON(w, http.StatusOK, projectSequenceResponse{Results: out})

	default:
		a.writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
	}
}

// handleEncode writes the configured codec's encoding of one tag.
func (a *api) handleEncode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	if a.codec == nil {
		a.writeError(w, http.StatusNotFound, "serialization is disabled")
		return
	}
	label := r.URL.Query().Get("tag")
	if label == "" {
		a.writeError(w, http.StatusBadRequest, "missing 'tag' query parameter")
		return
	}

	var (
		data []byte
		err  error
	)
	switch tagset := tagsetParam(r); tagset {
	case postag.TagsetUniversal:
		var u universal.Tag
		if u, err = universal.Parse(label); err == nil {
			data, err = codec.Encode(a.codec, u)
		}
	case postag.TagsetTreebank:
		var t treebank.Tag
		if t, err = treebank.Parse(label); err == nil {
			data, err = codec.Encode(a.codec, t)
		}
	default:
		a.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown tagset %q", tagset))
		return
	}
	if err != nil {
		a.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.Header().Set("Content-Type", a.codec.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		a.log.Warn("write encoded tag", zap.Error(err))
	}
}

// handleDecode reads a body in the configured codec's format and reports
// the tag it holds.
func (a *api) handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		a.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	if a.codec == nil {
		a.writeError(w, http.StatusNotFound, "serialization is disabled")
		return
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "cannot read body")
		return
	}

	var resp decodeResponse
	switch tagset := tagsetParam(r); tagset {
	case postag.TagsetUniversal:
		var u universal.Tag
		if u, err = codec.Decode[universal.Tag](a.codec, data); err == nil {
			resp = decodeResponse{Tagset: tagset, Label: u.Label(), Name: u.Name()}
		}
	case postag.TagsetTreebank:
		var t treebank.Tag
		if t, err = codec.Decode[treebank.Tag](a.codec, data); err == nil {
			resp = decodeResponse{Tagset: tagset, Label: t.Label(), Name: t.Name()}
		}
	default:
		a.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown tagset %q", tagset))
		return
	}
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	a.writeJSON(w, http.StatusOK, resp)
}

// tagsetParam defaults to the treebank tagset.
func tagsetParam(r *http.Request) string {
	if s := r.URL.Query().Get("tagset"); s != "" {
		return s
	}
	return postag.TagsetTreebank
}

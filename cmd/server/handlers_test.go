package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/cours-de-latin/postag/config"
	"github.com/cours-de-latin/postag/treebank"
	"github.com/cours-de-latin/postag/universal"
)

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	h, err := newHandler(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("newHandler: %v", err)
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, wantStatus int, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: status %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("GET %s: decode: %v", url, err)
		}
	}
}

func TestUniversalList(t *testing.T) {
	srv := newTestServer(t, nil)
	var out universalListResponse
	getJSON(t, srv.URL+"/api/universal", http.StatusOK, &out)
	if len(out.Tags) != universal.Count {
		t.Fatalf("got %d tags, want %d", len(out.Tags), universal.Count)
	}
	if out.Tags[0].Label != "ADJ" || len(out.Tags[0].Examples) == 0 {
		t.Errorf("first tag = %+v", out.Tags[0])
	}
}

func TestTreebankList(t *testing.T) {
	srv := newTestServer(t, nil)
	var out treebankListResponse
	getJSON(t, srv.URL+"/api/treebank", http.StatusOK, &out)
	if len(out.Tags) != treebank.Count {
		t.Fatalf("got %d tags, want %d", len(out.Tags), treebank.Count)
	}
	for _, tag := range out.Tags {
		if tag.Universal == "" {
			t.Errorf("%s has no projection", tag.Label)
		}
	}
}

func TestProjectGet(t *testing.T) {
	srv := newTestServer(t, nil)
	tests := []struct {
		tag       string
		universal string
	}{
		{"CD", "NUM"},
		{"_SP", "SPACE"},
		{"XX", "X"},
		{"VBD", "VERB"},
		{"nnp", "PROPN"},
		{"POS", "PART"},
	}
	for _, tt := range tests {
		var out projectionJSON
		getJSON(t, srv.URL+"/api/project?tag="+tt.tag, http.StatusOK, &out)
		if out.Universal != tt.universal {
			t.Errorf("project %s = %q, want %q", tt.tag, out.Universal, tt.universal)
		}
	}
	getJSON(t, srv.URL+"/api/project", http.StatusBadRequest, nil)
	getJSON(t, srv.URL+"/api/project?tag=NOPE", http.StatusNotFound, nil)
}

func TestProjectPost(t *testing.T) {
	srv := newTestServer(t, nil)
	resp, err := http.Post(srv.URL+"/api/project", "application/json",
		strings.NewReader(`{"tags":["NNP","VBD","DT","NN","."]}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var out projectSequenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	want := []string{"PROPN", "VERB", "DET", "NOUN", "PUNCT"}
	if len(out.Results) != len(want) {
		t.Fatalf("results = %+v", out.Results)
	}
	for i := range want {
		if out.Results[i].Universal != want[i] {
			t.Errorf("results[%d] = %+v, want %s", i, out.Results[i], want[i])
		}
	}

	for _, body := range []string{`{"tags":["NN","BOGUS"]}`, `not json`} {
		resp, err := http.Post(srv.URL+"/api/project", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("POST %s: status %d, want 400", body, resp.StatusCode)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)
	for _, path := range []string{"/api/universal", "/api/treebank", "/api/encode"} {
		resp, err := http.Post(srv.URL+path, "application/json", nil)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("POST %s: status %d", path, resp.StatusCode)
		}
	}
	getJSON(t, srv.URL+"/api/decode", http.StatusMethodNotAllowed, nil)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Serialization.Format = "msgpack"
	cfg.Serialization.Encoding = "name"
	srv := newTestServer(t, cfg)

	resp, err := http.Get(srv.URL + "/api/encode?tag=PROPN&tagset=universal")
	if err != nil {
		t.Fatal(err)
	}
	data := new(bytes.Buffer)
	_, _ = data.ReadFrom(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "application/msgpack" {
		t.Fatalf("encode: status %d, content type %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	var name string
	if err := msgpack.Unmarshal(data.Bytes(), &name); err != nil || name != "ProperNoun" {
		t.Fatalf("encoded = %q, %v", name, err)
	}

	resp, err = http.Post(srv.URL+"/api/decode?tagset=universal", "application/msgpack", bytes.NewReader(data.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out decodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Label != "PROPN" || out.Tagset != "universal" {
		t.Errorf("decode = %+v", out)
	}
}

func TestEncodeErrors(t *testing.T) {
	srv := newTestServer(t, nil)
	getJSON(t, srv.URL+"/api/encode", http.StatusBadRequest, nil)
	getJSON(t, srv.URL+"/api/encode?tag=NN&tagset=brown", http.StatusBadRequest, nil)
	getJSON(t, srv.URL+"/api/encode?tag=PROPN", http.StatusNotFound, nil)

	var raw string
	getJSON(t, srv.URL+"/api/encode?tag=prp$", http.StatusOK, &raw)
	if raw != "PRP$" {
		t.Errorf("encode prp$ = %q", raw)
	}
}

func TestSerializationDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Serialization.Enabled = false
	srv := newTestServer(t, cfg)
	getJSON(t, srv.URL+"/api/encode?tag=NN", http.StatusNotFound, nil)

	resp, err := http.Post(srv.URL+"/api/decode", "application/json", strings.NewReader(`"NN"`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("decode with serialization disabled: status %d", resp.StatusCode)
	}
}

func TestCORS(t *testing.T) {
	cfg := config.Default()
	cfg.CORS.AllowedOrigins = []string{"https://tools.example"}
	srv := newTestServer(t, cfg)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/universal", nil)
	req.Header.Set("Origin", "https://tools.example")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://tools.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	req.Header.Set("Origin", "https://elsewhere.example")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin got Access-Control-Allow-Origin = %q", got)
	}
}

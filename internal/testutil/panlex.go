package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FakeTranslation is one translation served by FakePanLex.
type FakeTranslation struct {
	Quality int
	Txt     string
}

// FakePanLexRequest records one request received by FakePanLex.
type FakePanLexRequest struct {
	Txt             []string `json:"txt"`
	TransExpr       []int64  `json:"trans_expr"`
	UID             string   `json:"uid"`
	Include         string   `json:"include"`
	TransQualityMin int      `json:"trans_quality_min"`
}

// FakePanLex serves the subset of the PanLex /expr endpoint used by
// panlexicon. Resolve requests carry "txt", translation requests carry
// "trans_expr".
type FakePanLex struct {
	// Expressions maps a uid ("eng-000") to txt -> expression id.
	Expressions map[string]map[string]int64
	// Translations maps a target uid to source id -> translations.
	Translations map[string]map[int64][]FakeTranslation
	// FailWords makes every resolve request containing one of them fail with 500.
	FailWords map[string]bool
	// ResolveStatus and TranslateStatus, when non-zero, are returned for
	// every request of that kind.
	ResolveStatus   int
	TranslateStatus int

	mu       sync.Mutex
	requests []FakePanLexRequest
}

// Start serves f on an httptest server closed at the end of the test.
func (f *FakePanLex) Start(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(f.serveHTTP))
	t.Cleanup(srv.Close)
	return srv
}

// Requests returns a copy of all requests received so far.
func (f *FakePanLex) Requests() []FakePanLexRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]FakePanLexRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

func (f *FakePanLex) serveHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/expr" {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	var req FakePanLexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if req.TransExpr != nil {
		f.translate(w, req)
		return
	}
	f.resolve(w, req)
}

func (f *FakePanLex) resolve(w http.ResponseWriter, req FakePanLexRequest) {
	if f.ResolveStatus != 0 {
		http.Error(w, "resolve failed", f.ResolveStatus)
		return
	}
	for _, txt := range req.Txt {
		if f.FailWords[txt] {
			http.Error(w, "resolve failed", http.StatusInternalServerError)
			return
		}
	}

	type result struct {
		ID  int64  `json:"id"`
		Txt string `json:"txt"`
	}
	results := []result{}
	for _, txt := range req.Txt {
		if id, ok := f.Expressions[req.UID][txt]; ok {
			results = append(results, result{ID: id, Txt: txt})
		}
	}
	writeResult(w, results)
}

func (f *FakePanLex) translate(w http.ResponseWriter, req FakePanLexRequest) {
	if f.TranslateStatus != 0 {
		http.Error(w, "translate failed", f.TranslateStatus)
		return
	}

	type result struct {
		TransExpr    int64  `json:"trans_expr"`
		TransQuality int    `json:"trans_quality"`
		Txt          string `json:"txt"`
	}
	results := []result{}
	for _, id := range req.TransExpr {
		for _, tr := range f.Translations[req.UID][id] {
			if tr.Quality < req.TransQualityMin {
				continue
			}
			results = append(results, result{TransExpr: id, TransQuality: tr.Quality, Txt: tr.Txt})
		}
	}
	writeResult(w, results)
}

func writeResult(w http.ResponseWriter, results any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"result": results})
}

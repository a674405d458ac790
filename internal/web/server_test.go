package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mailtriage/mailtriage/internal/classify"
	"github.com/mailtriage/mailtriage/internal/config"
	"github.com/mailtriage/mailtriage/internal/reply"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(config.Default(), classify.New(), reply.NewSelectorWithSeed(1), zerolog.Nop())
}

func postForm(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.setupRouter().ServeHTTP(rec, req)
	return rec
}

func postJSON(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.setupRouter().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v: %s", err, rec.Body.String())
	}
	return body
}

func TestHandleHome(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.setupRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "active" {
		t.Errorf("status = %v", body["status"])
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.setupRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "healthy" {
		t.Errorf("status = %v", body["status"])
	}
}

func TestAnalyzeFormText(t *testing.T) {
	s := newTestServer(t)
	rec := postForm(t, s, "/analyze", url.Values{
		"text": {"Vamos agendar uma reunião para discutir o projeto e o orçamento."},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Error("expected success")
	}
	if body["category"] != "produtivo" {
		t.Errorf("category = %v, want produtivo", body["category"])
	}
	if body["response"] == "" {
		t.Error("expected a generated response")
	}
	analysis := body["analysis"].(map[string]any)
	if analysis["model_used"] != classify.ModelName {
		t.Errorf("model_used = %v", analysis["model_used"])
	}
}

func TestAnalyzeJSONText(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/analyze", `{"text":"Ganhe um prêmio de loteria! Clique aqui"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["category"] != "improdutivo" {
		t.Errorf("category = %v, want improdutivo", body["category"])
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	s := newTestServer(t)
	rec := postForm(t, s, "/analyze", url.Values{"text": {"   "}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeMissingInput(t *testing.T) {
	s := newTestServer(t)
	rec := postForm(t, s, "/analyze", url.Values{})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeContentTooLong(t *testing.T) {
	s := newTestServer(t)
	rec := postForm(t, s, "/analyze", url.Values{
		"text": {strings.Repeat("a", s.config.Limits.MaxContentChars+1)},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeBody(t, rec)
	if !strings.Contains(body["error"].(string), "muito longo") {
		t.Errorf("error = %v", body["error"])
	}
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestAnalyzeFileUpload(t *testing.T) {
	s := newTestServer(t)
	buf, contentType := multipartUpload(t, "email.txt", "Segue em anexo a proposta do projeto para o cliente.")

	req := httptest.NewRequest(http.MethodPost, "/analyze", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.setupRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["category"] != "produtivo" {
		t.Errorf("category = %v, want produtivo", body["category"])
	}
}

func TestAnalyzeUnsupportedFileType(t *testing.T) {
	s := newTestServer(t)
	buf, contentType := multipartUpload(t, "malware.exe", "binary stuff")

	req := httptest.NewRequest(http.MethodPost, "/analyze", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.setupRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeBatch(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/analyze/batch", `{"emails": [
		"Vamos agendar uma reunião para discutir o projeto",
		{"content": "Ganhe um prêmio de loteria agora"},
		123
	]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["total_processed"] != float64(3) {
		t.Errorf("total_processed = %v, want 3", body["total_processed"])
	}

	results := body["results"].([]any)
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}

	first := results[0].(map[string]any)
	if first["success"] != true || first["category"] != "produtivo" {
		t.Errorf("first result = %v", first)
	}

	second := results[1].(map[string]any)
	if second["success"] != true || second["category"] != "improdutivo" {
		t.Errorf("second result = %v", second)
	}

	third := results[2].(map[string]any)
	if third["success"] != false {
		t.Errorf("invalid entry should fail: %v", third)
	}
}

func TestAnalyzeBatchTooManyItems(t *testing.T) {
	s := newTestServer(t)

	emails := make([]string, s.config.Limits.MaxBatchItems+1)
	for i := range emails {
		emails[i] = fmt.Sprintf(`"email %d"`, i)
	}
	rec := postJSON(t, s, "/analyze/batch", `{"emails": [`+strings.Join(emails, ",")+`]}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeBatchMissingList(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/analyze/batch", `{"other": true}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTemplatesEndpoint(t *testing.T) {
	s := newTestServer(t)
	router := s.setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/templates", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/templates?category=nope", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid category status = %d, want 400", rec.Code)
	}
}

func TestNotFoundIsJSON(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.setupRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] == "" {
		t.Error("expected JSON error body")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	if !rl.Allow("client") || !rl.Allow("client") {
		t.Fatal("first two requests should pass")
	}
	if rl.Allow("client") {
		t.Error("third request should be limited")
	}
	if !rl.Allow("other") {
		t.Error("different client should not be limited")
	}
}

package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/joshuahamrick/ncformatter/docx"
	"github.com/joshuahamrick/ncformatter/internal/config"
	"github.com/joshuahamrick/ncformatter/internal/docxtest"
)

const endpoint = "/api/process-word"

func testServer(t *testing.T) (*Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return NewServer(config.Default(), zap.New(core)), logs
}

func do(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func postDocument(t *testing.T, srv *Server, target string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"fileData": base64.StdEncoding.EncodeToString(data),
		"fileName": "notice.docx",
	})
	require.NoError(t, err)
	return do(t, srv, http.MethodPost, target, string(body))
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got), w.Body.String())
	return got
}

func assertCORS(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	h := w.Result().Header
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Type", h.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "POST, OPTIONS", h.Get("Access-Control-Allow-Methods"))
}

func TestHandleHealth(t *testing.T) {
	srv, _ := testServer(t)

	w := do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestProcessOptions(t *testing.T) {
	srv, _ := testServer(t)

	w := do(t, srv, http.MethodOptions, endpoint, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assertCORS(t, w)
}

func TestProcessMissingFileData(t *testing.T) {
	srv, _ := testServer(t)

	for _, body := range []string{`{}`, `{"fileName":"a.docx"}`, `{"fileData":""}`} {
		w := do(t, srv, http.MethodPost, endpoint, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assertCORS(t, w)
		assert.Equal(t, "application/json", w.Result().Header.Get("Content-Type"))
		assert.Equal(t, map[string]any{"success": false, "error": "No file data provided"}, decode(t, w))
	}
}

func TestProcessDocument(t *testing.T) {
	srv, _ := testServer(t)
	data := docxtest.Paragraphs(t, "{[tagHeader]}(Company Address Line 1)", "Dear John,", "Notice is hereby given.")

	w := postDocument(t, srv, endpoint, data)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assertCORS(t, w)

	assert.Contains(t, w.Body.String(), "<div>{[tagHeader]}</div>", "HTML is not escaped")

	got := decode(t, w)
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "GENERIC", got["documentType"])
	assert.Len(t, got["paragraphs"], 3)
	assert.Equal(t, []any{}, got["tables"])
	assert.NotContains(t, got, "markdown")
	assert.NotContains(t, got, "fields")
}

func TestProcessDocumentExtras(t *testing.T) {
	srv, _ := testServer(t)
	data := docxtest.Paragraphs(t, "Dear {[M558]},", "Notice is hereby given.")

	w := postDocument(t, srv, endpoint+"?format=markdown&fields=1", data)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got := decode(t, w)
	assert.Contains(t, got["markdown"], "Notice is hereby given.")
	assert.Equal(t, []any{map[string]any{"name": "Salutation", "count": float64(1)}}, got["fields"])
}

func TestProcessParseFailure(t *testing.T) {
	srv, _ := testServer(t)

	w := postDocument(t, srv, endpoint, []byte("not a word document"))
	assert.Equal(t, http.StatusOK, w.Code)
	assertCORS(t, w)

	got := decode(t, w)
	assert.Equal(t, false, got["success"])
	msg, _ := got["error"].(string)
	assert.True(t, strings.HasPrefix(msg, "Error processing document: "), msg)
	assert.Equal(t, "<div>"+msg+"</div>", got["formattedHtml"])
}

func TestProcessUnhandled(t *testing.T) {
	srv, _ := testServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"fileData":`},
		{"bad base64", `{"fileData":"@@@not base64@@@"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, srv, http.MethodPost, endpoint, tt.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assertCORS(t, w)

			got := decode(t, w)
			assert.Equal(t, false, got["success"])
			msg, _ := got["error"].(string)
			assert.True(t, strings.HasPrefix(msg, "Error: "), msg)
			assert.Contains(t, msg, "\nTraceback: ")
		})
	}
}

func TestProcessTooLarge(t *testing.T) {
	srv, _ := testServer(t)
	srv.cfg.MaxUploadMB = 1

	body := `{"fileData":"` + strings.Repeat("A", 2<<20) + `"}`
	w := do(t, srv, http.MethodPost, endpoint, body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "request body too large", decode(t, w)["error"])
}

func TestProcessMethodNotAllowed(t *testing.T) {
	srv, _ := testServer(t)

	w := do(t, srv, http.MethodGet, endpoint, "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "POST, OPTIONS", w.Result().Header.Get("Allow"))
	assertCORS(t, w)
}

func TestProcessCapabilityUnavailable(t *testing.T) {
	if docx.Available() {
		t.Skip("built with the docx parser")
	}
	srv, _ := testServer(t)

	w := postDocument(t, srv, endpoint, []byte("anything"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "docx parser not available", decode(t, w)["error"])
}

func TestLogRequests(t *testing.T) {
	srv, logs := testServer(t)

	do(t, srv, http.MethodPost, endpoint, `{}`)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, endpoint, fields["path"])
	assert.Equal(t, int64(http.StatusBadRequest), fields["status"])
}

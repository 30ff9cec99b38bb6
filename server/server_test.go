package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m8811163008/visitor-desing-pattern/service"
)

func newTestRouter() http.Handler {
	h := NewHandler(service.BuildDemoTree(), service.NewLogger(false))
	return SetupRouter(h)
}

func TestHandleExporters(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/exporters", nil)

	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"format":"text"`)
	assert.Contains(t, body, `"format":"xml"`)
	assert.Contains(t, body, "Export as text")
	assert.Contains(t, body, "Export as XML")
}

func TestHandleExport(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantCode   int
		wantPrefix string
	}{
		{"text format", "/api/export/text", http.StatusOK, "Bohemian Rhapsody\n"},
		{"xml format", "/api/export/xml", http.StatusOK, "<Files>\n"},
		{"unknown format", "/api/export/yaml", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)

			newTestRouter().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantPrefix != "" {
				assert.True(t, strings.HasPrefix(rec.Body.String(), tt.wantPrefix),
					"body does not start with %q:\n%s", tt.wantPrefix, rec.Body.String())
			}
		})
	}
}

func TestHandleExport_SameTreeSameBody(t *testing.T) {
	router := newTestRouter()

	get := func() string {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/export/xml", nil)
		router.ServeHTTP(rec, req)
		return rec.Body.String()
	}

	assert.Equal(t, get(), get())
}

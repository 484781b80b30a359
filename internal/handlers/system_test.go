package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealth(t *testing.T) {
	h := newTestHandler(nil, nil)

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest("GET", "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    bool
		breaker    string
		wantStatus int
	}{
		{name: "all healthy", wantStatus: http.StatusOK},
		{name: "redis down", pingErr: true, wantStatus: http.StatusServiceUnavailable},
		{name: "breaker open", breaker: "open", wantStatus: http.StatusServiceUnavailable},
		{name: "breaker half-open is acceptable", breaker: "half-open", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newMockStore()
			if tt.pingErr {
				st.pingErr = errMock
			}
			api := &mockTacticus{State: tt.breaker}
			h := newTestHandler(api, st)

			w := httptest.NewRecorder()
			h.Ready(w, httptest.NewRequest("GET", "/readyz", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

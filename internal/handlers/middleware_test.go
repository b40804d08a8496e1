package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware and an endpoint echoing the id
func newMiddlewareOnlyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(nil, nil, DefaultChartSize)
	r.GET("/echo", h.requestIDMiddleware, func(c *gin.Context) {
		c.String(http.StatusOK, requestID(c))
	})
	return r
}

func TestRequestIDMiddleware(t *testing.T) {
	cases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing", incoming: "", keep: false},
		{name: "incoming id reused", incoming: "abc-123", keep: true},
		{name: "oversized id replaced", incoming: strings.Repeat("x", maxRequestIDLen+1), keep: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newMiddlewareOnlyRouter()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/echo", nil)
			if tc.incoming != "" {
				req.Header.Set(requestIDHeader, tc.incoming)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status: got %d", w.Code)
			}
			got := w.Header().Get(requestIDHeader)
			if got == "" {
				t.Fatalf("response has no %s header", requestIDHeader)
			}
			if got != w.Body.String() {
				t.Fatalf("header %q and context id %q differ", got, w.Body.String())
			}
			if tc.keep && got != tc.incoming {
				t.Fatalf("got %q, want incoming %q", got, tc.incoming)
			}
			if !tc.keep && got == tc.incoming {
				t.Fatalf("expected a fresh id, got incoming one")
			}
		})
	}
}

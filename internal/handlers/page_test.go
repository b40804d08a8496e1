package handlers

import (
	"net/http"
	"strings"
	"testing"
)

func TestIndexPage(t *testing.T) {
	r := newTestRouter(newTestService(t))

	w := doRequest(t, r, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("page status=%d, body=%.200s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type %q", ct)
	}

	body := w.Body.String()
	for _, want := range []string{
		"SpaceX Launch Records Dashboard",
		`id="site-dropdown"`,
		`id="payload-slider"`,
		`id="success-pie-chart"`,
		`id="success-payload-scatter-chart"`,
		"All Sites",
		"VAFB SLC-4E",
		"<svg",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page is missing %q", want)
		}
	}
}

func TestStyleAttr(t *testing.T) {
	got := styleAttr(map[string]string{"font-size": "40px", "color": "#503D36", "text-align": "center"})
	want := "color: #503D36; font-size: 40px; text-align: center"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if styleAttr(nil) != "" {
		t.Fatalf("nil style should be empty")
	}
}

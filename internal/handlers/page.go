package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"sort"
	"strings"

	"spacex_dashboard/internal/models"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const pageTemplateName = "index.html"

// pageView is the data behind index.html.
type pageView struct {
	Layout   models.Layout
	TitleCSS template.CSS
	Charts   map[string]template.HTML
	State    models.WidgetState
}

// @Summary      Dashboard page
// @Tags         dashboard
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	layout := h.services.Layout()
	bounds := layout.Slider.Value
	state := models.WidgetState{Site: layout.Dropdown.Value, Payload: &bounds}

	outs, err := h.dispatch("", state)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to build page", "page_render_failed", err)
		return
	}

	charts := make(map[string]template.HTML, len(outs))
	for _, o := range outs {
		// SVG comes from go-chart, not from user input.
		charts[o.ID] = template.HTML(o.SVG)
	}

	c.HTML(http.StatusOK, pageTemplateName, pageView{
		Layout:   layout,
		TitleCSS: styleAttr(layout.TitleStyle),
		Charts:   charts,
		State:    state,
	})
}

// styleAttr flattens a style map into a CSS declaration list, sorted by
// property for stable output.
func styleAttr(style map[string]string) template.CSS {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+style[k])
	}
	return template.CSS(strings.Join(parts, "; "))
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"spacex_dashboard/internal/models"
	"spacex_dashboard/internal/render"
	"spacex_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	contentTypeSVG = "image/svg+xml"

	errRenderChart     = "failed to render chart"
	errUpdateCharts    = "failed to update charts"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err, "request_id", requestID(c)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// UpdateRequest is the body of POST /api/v1/update.
type UpdateRequest struct {
	// Component id whose value changed; empty recomputes every chart.
	Changed string `json:"changed" example:"site-dropdown"`
	// Current value of every input.
	State models.WidgetState `json:"state"`
}

// UpdateResponse carries the recomputed charts.
type UpdateResponse struct {
	Outputs []models.Output `json:"outputs"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Page layout
// @Description  Static description of the dashboard widgets.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.Layout
// @Router       /api/v1/layout [get]
func (h *Handler) getLayout(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Layout())
}

// @Summary      Success pie chart
// @Description  ALL counts successes per site; a site name splits that site's launches into Success and Failure.
// @Tags         charts
// @Produce      json
// @Param        site  query     string  false  "Launch site or ALL"  default(ALL)
// @Success      200   {object}  models.ChartSpec
// @Router       /api/v1/charts/pie [get]
func (h *Handler) getPieChart(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.PieChart(siteParam(c)))
}

// @Summary      Payload vs. outcome scatter chart
// @Tags         charts
// @Produce      json
// @Param        site  query     string  false  "Launch site or ALL"  default(ALL)
// @Param        low   query     number  false  "Lowest payload mass in kg (defaults to dataset minimum)"
// @Param        high  query     number  false  "Highest payload mass in kg (defaults to dataset maximum)"
// @Success      200   {object}  models.ChartSpec
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/charts/scatter [get]
func (h *Handler) getScatterChart(c *gin.Context) {
	rng, err := h.payloadParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.services.ScatterChart(siteParam(c), rng))
}

// @Summary      Success pie chart as SVG
// @Tags         charts
// @Produce      image/svg+xml
// @Param        site  query  string  false  "Launch site or ALL"  default(ALL)
// @Success      200
// @Success      204  "no launches match"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/charts/pie.svg [get]
func (h *Handler) getPieSVG(c *gin.Context) {
	h.writeSVG(c, h.services.PieChart(siteParam(c)))
}

// @Summary      Payload vs. outcome scatter chart as SVG
// @Tags         charts
// @Produce      image/svg+xml
// @Param        site  query  string  false  "Launch site or ALL"  default(ALL)
// @Param        low   query  number  false  "Lowest payload mass in kg"
// @Param        high  query  number  false  "Highest payload mass in kg"
// @Success      200
// @Success      204  "no launches match"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/charts/scatter.svg [get]
func (h *Handler) getScatterSVG(c *gin.Context) {
	rng, err := h.payloadParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writeSVG(c, h.services.ScatterChart(siteParam(c), rng))
}

// @Summary      Recompute charts after a widget change
// @Description  Runs every chart callback that reads the changed component and returns figures plus rendered SVG.
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateRequest  true  "Changed component and widget state"
// @Success      200   {object}  UpdateResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/update [post]
func (h *Handler) update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	outs, err := h.dispatch(req.Changed, req.State)
	if err != nil {
		if errors.Is(err, service.ErrUnknownComponent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateCharts, "charts_update_failed", err, "changed", req.Changed)
		return
	}
	c.JSON(http.StatusOK, UpdateResponse{Outputs: outs})
}

// dispatch runs the matching callbacks and attaches rendered SVG. A chart
// that fails to render keeps its figure and goes out without SVG.
func (h *Handler) dispatch(changed string, state models.WidgetState) ([]models.Output, error) {
	outs, err := h.services.Dispatch(changed, state)
	if err != nil {
		return nil, err
	}
	for i := range outs {
		svg, err := render.SVG(outs[i].Figure, h.size)
		switch {
		case err == nil:
			outs[i].SVG = string(svg)
		case errors.Is(err, render.ErrEmptyChart):
		default:
			h.log.Errorw("chart_render_failed", "err", err, "output", outs[i].ID)
		}
	}
	return outs, nil
}

func (h *Handler) writeSVG(c *gin.Context, spec models.ChartSpec) {
	svg, err := render.SVG(spec, h.size)
	if err != nil {
		if errors.Is(err, render.ErrEmptyChart) {
			c.Status(http.StatusNoContent)
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRenderChart, "chart_render_failed", err, "title", spec.Title)
		return
	}
	c.Data(http.StatusOK, contentTypeSVG, svg)
}

// siteParam reads ?site=, defaulting to ALL. Unknown sites pass through.
func siteParam(c *gin.Context) string {
	if s := strings.TrimSpace(c.Query("site")); s != "" {
		return s
	}
	return models.SiteAll
}

// payloadParams reads ?low= and ?high=; a missing bound takes the dataset's.
// The order of the bounds is not checked.
func (h *Handler) payloadParams(c *gin.Context) (models.PayloadRange, error) {
	rng := h.services.Layout().Slider.Value
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"low", &rng.Low},
		{"high", &rng.High},
	} {
		qs := c.Query(p.name)
		if qs == "" {
			continue
		}
		v, err := strconv.ParseFloat(qs, 64)
		if err != nil {
			return models.PayloadRange{}, fmt.Errorf("invalid %q: expected a number of kg", p.name)
		}
		*p.dst = v
	}
	return rng, nil
}

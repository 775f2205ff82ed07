package handlers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"

	"github.com/gin-gonic/gin"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"battery_dashboard/internal/models"
)

const (
	chartWidth  = 800
	chartHeight = 400
)

// renderLifespanPNG draws health (left axis) and cumulative distance (right axis) per year.
// go-chart rejects single-point series, so those are padded to two X values; any render
// error falls back to a blank image.
func renderLifespanPNG(points []models.ChartPoint, distanceUnit string) ([]byte, error) {
	xs := make([]float64, 0, len(points)+1)
	health := make([]float64, 0, len(points)+1)
	dist := make([]float64, 0, len(points)+1)
	for _, p := range points {
		xs = append(xs, float64(p.Year))
		health = append(health, p.HealthPercent)
		dist = append(dist, p.CumulativeDistance)
	}
	if len(xs) == 1 {
		// Pad to at least two X values for go-chart
		xs = append(xs, xs[0]+1)
		health = append(health, health[0])
		dist = append(dist, dist[0])
	}

	ch := chart.Chart{
		Title:      "Battery lifespan projection",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Year"},
		YAxis: chart.YAxis{
			Name:  "Health (%)",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		YAxisSecondary: chart.YAxis{Name: "Distance (" + distanceUnit + ")"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Battery Health (%)",
				XValues: xs,
				YValues: health,
				Style:   chart.Style{StrokeColor: drawing.ColorFromHex("22c55e"), StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "Cumulative Distance (" + distanceUnit + ")",
				YAxis:   chart.YAxisSecondary,
				XValues: xs,
				YValues: dist,
				Style:   chart.Style{StrokeColor: drawing.ColorFromHex("3b82f6"), StrokeWidth: 2},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return blankPNG(chartWidth, chartHeight)
	}
	return buf.Bytes(), nil
}

func blankPNG(w, h int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// @Summary      Lifespan chart image
// @Tags         wizard
// @Produce      png
// @Success      200  {file}    binary
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/v1/wizard/chart.png [get]
// @Security     BearerAuth
func (h *Handler) getChartPNG(c *gin.Context) {
	points, err := h.services.LifespanChart(currentUser(c))
	if err != nil {
		c.JSON(wizardErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	img, err := renderLifespanPNG(points, h.services.Settings().Profile.DistanceUnit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to render chart", "chart_render_failed", err)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"minute-planner/models"
)

// PlotPlaces renders places with coordinates as a scatter series on a world geo map
// and writes the HTML page to w. Places without coordinates are skipped.
func PlotPlaces(title string, places []models.NormalizedPlace, w io.Writer) error {
	points := make([]opts.GeoData, 0, len(places))
	for _, p := range places {
		if !p.HasCoordinates() {
			continue
		}
		name := ""
		if p.Name != nil {
			name = *p.Name
		}
		points = append(points, opts.GeoData{Name: name, Value: []float64{*p.Longitude, *p.Latitude}})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1000px",
			Height:    "700px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	if bbox, ok := models.BoundingBoxOf(places); ok {
		geo.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: bbox.String(),
		}))
	}

	geo.AddSeries("Places", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	return geo.Render(w)
}

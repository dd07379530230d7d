package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/sumwatshade/cabinwatch/cmd/device"
	"github.com/sumwatshade/cabinwatch/cmd/weather"
)

const chartHeight = 8

// comparisonChart draws cabin against outside temperature and humidity. It
// returns "" until both sources are loaded.
func comparisonChart(r *device.Reading, s *weather.Snapshot, width int) string {
	if r == nil || s == nil {
		return ""
	}
	width = max(24, min(width, 48))

	bc := barchart.New(width, chartHeight)
	bc.PushAll([]barchart.BarData{
		bar("in °C", r.TemperatureC, true),
		bar("out °C", s.TemperatureC, false),
		bar("in %", r.HumidityPct, true),
		bar("out %", s.HumidityPct, false),
	})
	bc.Draw()

	b := &strings.Builder{}
	b.WriteString(bc.View())
	b.WriteString("\n")
	b.WriteString(cabinStyle.Render("█"))
	b.WriteString(legendStyle.Render(fmt.Sprintf(" cabin %.1f°C %.0f%%  ", r.TemperatureC, r.HumidityPct)))
	b.WriteString(outsideStyle.Render("█"))
	b.WriteString(legendStyle.Render(fmt.Sprintf(" outside %s %s", s.Temperature(), s.Humidity())))
	return b.String()
}

// bar clamps negatives to zero; the chart has no axis below zero.
func bar(label string, v float64, cabin bool) barchart.BarData {
	style := outsideStyle
	if cabin {
		style = cabinStyle
	}
	return barchart.BarData{
		Label: label,
		Values: []barchart.BarValue{
			{Name: label, Value: math.Max(0, v), Style: style},
		},
	}
}

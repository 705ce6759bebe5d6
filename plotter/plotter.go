// Package plotter renders a solved CVRP instance to PNG: the depot and
// customers as a scatter, one polyline per route through its stops back to
// the depot. Built on gonum.org/v1/plot.
package plotter

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/solution"
)

// palette cycles a small set of distinguishable colors across routes; it
// repeats once a plot has more routes than colors, which is an acceptable
// visual collision for the instance sizes this solver targets.
var palette = []color.Color{
	color.RGBA{R: 0xd6, G: 0x28, B: 0x28, A: 0xff},
	color.RGBA{G: 0x6a, B: 0xa8, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

func routeColor(idx int) color.Color {
	return palette[idx%len(palette)]
}

// Save renders sol over inst's coordinates to path (PNG, inferred from the
// file extension plot.Save understands).
func Save(inst *instance.Instance, sol *solution.Solution, path string) error {
	p := plot.New()
	p.Title.Text = inst.Name()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	coords := make(map[instance.NodeID]plotter.XY, len(inst.Nodes()))
	for _, n := range inst.Nodes() {
		x, y, ok := inst.Coord(n)
		if !ok {
			return fmt.Errorf("plotter: no coordinates for node %d", n)
		}
		coords[n] = plotter.XY{X: x, Y: y}
	}

	if err := addDepot(p, coords[inst.Depot()]); err != nil {
		return err
	}

	for i, route := range sol.Routes {
		if err := addRoute(p, inst, coords, route, i); err != nil {
			return err
		}
	}

	return p.Save(8*vg.Inch, 8*vg.Inch, path)
}

func addDepot(p *plot.Plot, depot plotter.XY) error {
	pts := plotter.XYs{depot}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plotter: depot scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.SquareGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(6)
	p.Add(scatter)
	p.Legend.Add("depot", scatter)
	return nil
}

// addRoute draws the route's polyline (depot -> stops... -> depot) and a
// scatter for its customer stops.
func addRoute(p *plot.Plot, inst *instance.Instance, coords map[instance.NodeID]plotter.XY, route *solution.Route, idx int) error {
	depot := coords[inst.Depot()]
	pts := make(plotter.XYs, 0, len(route.Nodes)+2)
	pts = append(pts, depot)
	for _, n := range route.Nodes {
		pts = append(pts, coords[n])
	}
	pts = append(pts, depot)

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plotter: route %d line: %w", idx, err)
	}
	line.LineStyle.Color = routeColor(idx)
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	stops, err := plotter.NewScatter(pts[1 : len(pts)-1])
	if err != nil {
		return fmt.Errorf("plotter: route %d scatter: %w", idx, err)
	}
	stops.GlyphStyle.Radius = vg.Points(3)
	p.Add(stops)
	p.Legend.Add(fmt.Sprintf("route %d", idx+1), line)
	return nil
}

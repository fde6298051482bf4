package puzzle

import (
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// View renders arena snapshots at a fixed image size.
type View struct {
	XSize int
	YSize int
}

// kindHue maps each shape family to a fixed hue so renders are comparable
// across runs.
var kindHue = map[Kind]float64{
	Square:            210,
	Rectangle:         150,
	RightTriangle:     30,
	IsoscelesTriangle: 280,
	Trapezoid:         0,
	Parallelogram:     60,
}

func (v View) scale(geom LevelGeometry) float64 {
	sx := float64(v.XSize) / geom.Arena.Width()
	sy := float64(v.YSize) / geom.Arena.Height()
	if sx < sy {
		return sx
	}
	return sy
}

// RenderScene draws the arena, grid, exclusion disk, mirrors, and (when non
// nil) a traced ray path into an image.
func (v View) RenderScene(geom LevelGeometry, mirrors []Mirror, arrival *Arrival) image.Image {
	c := gg.NewContext(v.XSize, v.YSize)
	s := v.scale(geom)
	project := func(x, y float64) (float64, float64) {
		return (x - geom.Arena.Min.X) * s, (y - geom.Arena.Min.Y) * s
	}

	c.SetRGB(1, 1, 1)
	c.Clear()

	// Lattice
	c.SetRGB(0.9, 0.9, 0.9)
	c.SetLineWidth(1)
	for x := geom.Arena.Min.X; x <= geom.Arena.Max.X; x += geom.GridSize {
		px, py := project(x, geom.Arena.Min.Y)
		qx, qy := project(x, geom.Arena.Max.Y)
		c.DrawLine(px, py, qx, qy)
	}
	for y := geom.Arena.Min.Y; y <= geom.Arena.Max.Y; y += geom.GridSize {
		px, py := project(geom.Arena.Min.X, y)
		qx, qy := project(geom.Arena.Max.X, y)
		c.DrawLine(px, py, qx, qy)
	}
	c.Stroke()

	// Exclusion disk and target
	center := geom.Center()
	cx, cy := project(center.X, center.Y)
	c.SetRGB(0.95, 0.85, 0.85)
	c.DrawCircle(cx, cy, geom.TargetSafeRadius*s)
	c.Fill()
	c.SetRGB(0.8, 0.1, 0.1)
	c.DrawCircle(cx, cy, 3)
	c.Fill()

	// Mirrors
	for _, m := range mirrors {
		fill := colorful.Hsv(kindHue[m.Kind], 0.45, 0.9)
		c.SetColor(fill)
		vs := m.Vertices()
		px, py := project(vs[0].X, vs[0].Y)
		c.MoveTo(px, py)
		for _, vert := range vs[1:] {
			qx, qy := project(vert.X, vert.Y)
			c.LineTo(qx, qy)
		}
		c.ClosePath()
		c.FillPreserve()
		c.SetRGB(0.2, 0.2, 0.2)
		c.SetLineWidth(2)
		c.Stroke()
	}

	// Ray path
	if arrival != nil && arrival.Distance != INF {
		c.SetRGB(0.9, 0.3, 0.1)
		c.SetLineWidth(2)
		for i := 0; i < len(arrival.PathPoints)-1; i++ {
			px, py := project(arrival.PathPoints[i].X, arrival.PathPoints[i].Y)
			qx, qy := project(arrival.PathPoints[i+1].X, arrival.PathPoints[i+1].Y)
			c.DrawLine(px, py, qx, qy)
		}
		c.Stroke()
	}

	return c.Image()
}

// SavePNG writes the rendered scene to a file.
func (v View) SavePNG(filename string, geom LevelGeometry, mirrors []Mirror, arrival *Arrival) error {
	c := gg.NewContextForImage(v.RenderScene(geom, mirrors, arrival))
	return c.SavePNG(filename)
}

type areaValuer struct {
	counts map[int]int
	max    int
}

func (v areaValuer) Len() int {
	return v.max + 1
}

func (v areaValuer) Value(i int) float64 {
	return float64(v.counts[i])
}

// PlotCatalogAreas renders a bar chart of how many catalog configurations
// exist per surface-area value, which is handy for judging how hard the
// exact-close phase will have to work.
func PlotCatalogAreas(catalog *Catalog, filename string, X, Y int) error {
	p := plot.New()
	p.Title.Text = "Catalog surface areas"
	p.X.Label.Text = "Surface area (grid units)"
	p.Y.Label.Text = "Configurations"

	v := areaValuer{counts: map[int]int{}, max: catalog.MaxArea()}
	for _, area := range catalog.areas {
		v.counts[area] = len(catalog.byArea[area])
	}

	bars, err := plotter.NewBarChart(v, vg.Points(3))
	if err != nil {
		return err
	}
	p.Add(bars)
	return p.Save(font.Length(X), font.Length(Y), filename)
}

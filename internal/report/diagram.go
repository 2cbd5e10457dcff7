package report

import (
	"image/color"
	"math"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sells-group/area-stats/internal/areastats"
	"github.com/sells-group/area-stats/internal/i18n"
)

var (
	barColor         = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	areaRatioColor   = color.RGBA{R: 0x2c, G: 0x7b, B: 0xb6, A: 0xff}
	sampleRatioColor = color.RGBA{R: 0xd7, G: 0x19, B: 0x1c, A: 0xff}
)

// DiagramOptions configures a classification diagram.
type DiagramOptions struct {
	Title string
	// Width and Height of the image; DPI sets the raster resolution.
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// DefaultDiagramOptions returns a 10x5 inch, 300 DPI diagram.
func DefaultDiagramOptions(title string) DiagramOptions {
	return DiagramOptions{Title: title, Width: 10 * vg.Inch, Height: 5 * vg.Inch, DPI: 300}
}

// ClassificationDiagram draws the class counts as bars above the area ratio
// of each class (and the sample area ratio when present) in percent.
func ClassificationDiagram(rows []areastats.ClassSummary, tr i18n.Translator, opts DiagramOptions) (*vgimg.Canvas, error) {
	if len(rows) == 0 {
		return nil, eris.New("report: diagram needs at least one class")
	}
	if opts.Width <= 0 || opts.Height <= 0 || opts.DPI <= 0 {
		return nil, eris.Errorf("report: invalid diagram size %vx%v at %d dpi", opts.Width, opts.Height, opts.DPI)
	}

	counts, err := countPlot(rows, tr, opts.Title)
	if err != nil {
		return nil, err
	}
	ratios, err := ratioPlot(rows, tr)
	if err != nil {
		return nil, err
	}

	img := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height), vgimg.UseDPI(opts.DPI))
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(4),
		PadY:      vg.Points(8),
	}
	plots := [][]*plot.Plot{{counts}, {ratios}}
	canvases := plot.Align(plots, tiles, draw.New(img))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}
	return img, nil
}

// WriteDiagram renders a classification diagram to a PNG file.
func WriteDiagram(path string, rows []areastats.ClassSummary, tr i18n.Translator, opts DiagramOptions) error {
	img, err := ClassificationDiagram(rows, tr, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "report: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return eris.Wrapf(err, "report: encode %s", path)
	}
	return eris.Wrapf(f.Close(), "report: close %s", path)
}

func classNames(rows []areastats.ClassSummary) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Class
	}
	return names
}

func countPlot(rows []areastats.ClassSummary, tr i18n.Translator, title string) (*plot.Plot, error) {
	values := make(plotter.Values, len(rows))
	maxCount := 0
	for i, r := range rows {
		values[i] = float64(r.Count)
		maxCount = max(maxCount, r.Count)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = tr.T(areastats.KeyClasses)
	p.Y.Label.Text = tr.T(areastats.KeyCount)

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, eris.Wrap(err, "report: count bars")
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(classNames(rows)...)

	ticks := countTicks(max(maxCount, 1))
	p.Y.Min = 0
	p.Y.Max = ticks[len(ticks)-1].Value
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	return p, nil
}

func ratioPlot(rows []areastats.ClassSummary, tr i18n.Translator) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = tr.T(areastats.KeyClasses)
	p.Y.Label.Text = tr.T(areastats.KeyAreaRatio) + " (%)"
	p.Legend.Top = true

	area := make(plotter.XYs, len(rows))
	var sample plotter.XYs
	for i, r := range rows {
		area[i] = plotter.XY{X: float64(i), Y: r.AreaRatio}
		if r.SampleAreaRatio != nil {
			sample = append(sample, plotter.XY{X: float64(i), Y: *r.SampleAreaRatio})
		}
	}

	if err := addRatioLine(p, area, areaRatioColor, tr.T(areastats.KeyAreaRatio)); err != nil {
		return nil, err
	}
	if len(sample) > 0 {
		if err := addRatioLine(p, sample, sampleRatioColor, tr.T(areastats.KeySampleAreaRatio)); err != nil {
			return nil, err
		}
	}

	p.NominalX(classNames(rows)...)
	p.Y.Min = 0
	p.Y.Max = 100
	for _, xy := range sample {
		p.Y.Max = math.Max(p.Y.Max, xy.Y)
	}
	p.Y.Tick.Marker = plot.ConstantTicks(stepTicks(10, p.Y.Max))
	return p, nil
}

func addRatioLine(p *plot.Plot, xys plotter.XYs, c color.Color, label string) error {
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return eris.Wrapf(err, "report: %s line", label)
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	points.Color = c
	points.Shape = draw.CircleGlyph{}
	p.Add(line, points)
	p.Legend.Add(label, line, points)
	return nil
}

// countTicks returns ticks from zero past maxCount with roughly ten steps of
// a round size.
func countTicks(maxCount int) []plot.Tick {
	return stepTicks(roundStep(float64(maxCount)/10), float64(maxCount))
}

func stepTicks(step, upTo float64) []plot.Tick {
	var ticks []plot.Tick
	for v := 0.0; ; v += step {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
		if v >= upTo {
			return ticks
		}
	}
}

// roundStep rounds raw up to 1, 2 or 5 times a power of ten, and at least 1.
func roundStep(raw float64) float64 {
	if raw <= 1 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}

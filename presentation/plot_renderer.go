// Package presentation provides the Fyne UI layer: the main window, the
// clickable plot panel, and the plot renderer.
package presentation

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/tiff"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"spectralab/domain/spectrum"
)

// screenDPI keeps one vg point equal to one frame pixel, so pointer
// positions on the displayed image convert directly to canvas coordinates.
const screenDPI = 72

var pickColor = color.RGBA{R: 0xd6, G: 0x2d, B: 0x20, A: 0xff}

// PlotRenderer renders spectra to raster frames and export files.
type PlotRenderer struct {
	Title     string
	XLabel    string
	YLabel    string
	LineColor color.Color
	// Width and Height are the on-screen frame size in pixels.
	Width  int
	Height int
}

// Frame is one rendered view of a spectrum together with the axis transforms
// needed to map pointer positions back to data coordinates.
type Frame struct {
	img image.Image

	xMin, xMax float64
	yMin, yMax float64

	// Data-area bounds in vg points, origin bottom-left.
	areaX0, areaX1 float64
	areaY0, areaY1 float64

	heightPts float64
}

// Image returns the rendered frame.
func (f *Frame) Image() image.Image {
	return f.img
}

// DataAt maps a pointer position on the frame (pixels, origin top-left) to
// data coordinates. ok is false when the position lies outside the data area.
func (f *Frame) DataAt(px, py float32) (pt spectrum.Point, ok bool) {
	cx := float64(px)
	cy := f.heightPts - float64(py)

	if cx < f.areaX0 || cx > f.areaX1 || cy < f.areaY0 || cy > f.areaY1 {
		return spectrum.Point{}, false
	}

	// Axes are linear, so inverting the transform is a straight lerp.
	pt.X = f.xMin + (cx-f.areaX0)/(f.areaX1-f.areaX0)*(f.xMax-f.xMin)
	pt.Y = f.yMin + (cy-f.areaY0)/(f.areaY1-f.areaY0)*(f.yMax-f.yMin)
	return pt, true
}

// PixelOf maps data coordinates back to a frame position. ok is false when
// the point lies outside the axis ranges.
func (f *Frame) PixelOf(pt spectrum.Point) (px, py float32, ok bool) {
	if pt.X < f.xMin || pt.X > f.xMax || pt.Y < f.yMin || pt.Y > f.yMax {
		return 0, 0, false
	}

	cx := f.areaX0 + (pt.X-f.xMin)/(f.xMax-f.xMin)*(f.areaX1-f.areaX0)
	cy := f.areaY0 + (pt.Y-f.yMin)/(f.yMax-f.yMin)*(f.areaY1-f.areaY0)
	return float32(cx), float32(f.heightPts - cy), true
}

// Render draws the spectrum and any picked points into a new frame at the
// on-screen size.
func (r *PlotRenderer) Render(s spectrum.Spectrum, picks []spectrum.Point) (*Frame, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("nothing to plot: %w", spectrum.ErrInsufficientData)
	}

	p, err := r.newPlot(s, picks)
	if err != nil {
		return nil, err
	}

	w := vg.Length(r.Width)
	h := vg.Length(r.Height)
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(screenDPI))
	dc := draw.New(c)
	p.Draw(dc)

	da := p.DataCanvas(dc)
	trX, trY := p.Transforms(&da)

	return &Frame{
		img:       c.Image(),
		xMin:      p.X.Min,
		xMax:      p.X.Max,
		yMin:      p.Y.Min,
		yMax:      p.Y.Max,
		areaX0:    float64(trX(p.X.Min)),
		areaX1:    float64(trX(p.X.Max)),
		areaY0:    float64(trY(p.Y.Min)),
		areaY1:    float64(trY(p.Y.Max)),
		heightPts: float64(h),
	}, nil
}

// Export renders the spectrum at the given DPI and writes it to w in the
// named format ("png", "tif" or "tiff"; anything else falls back to PNG).
func (r *PlotRenderer) Export(w io.Writer, s spectrum.Spectrum, format string, dpi int) error {
	if len(s) == 0 {
		return fmt.Errorf("nothing to export: %w", spectrum.ErrInsufficientData)
	}
	if dpi <= 0 {
		dpi = screenDPI
	}

	p, err := r.newPlot(s, nil)
	if err != nil {
		return err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(r.Width), vg.Length(r.Height)),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(c))

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "tif", "tiff":
		if err := tiff.Encode(w, c.Image(), nil); err != nil {
			return fmt.Errorf("encode tiff: %w", err)
		}
	default:
		if err := png.Encode(w, c.Image()); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	}
	return nil
}

func (r *PlotRenderer) newPlot(s spectrum.Spectrum, picks []spectrum.Point) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = r.XLabel
	p.Y.Label.Text = r.YLabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xysOf(s))
	if err != nil {
		return nil, fmt.Errorf("build line plot: %w", err)
	}
	if r.LineColor != nil {
		line.LineStyle.Color = r.LineColor
	}
	line.LineStyle.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add("Spectrum", line)
	p.Legend.Top = true

	if len(picks) > 0 {
		marks := make(plotter.XYs, len(picks))
		for i, pk := range picks {
			marks[i] = plotter.XY{X: pk.X, Y: pk.Y}
		}
		scatter, err := plotter.NewScatter(marks)
		if err != nil {
			return nil, fmt.Errorf("build pick markers: %w", err)
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  pickColor,
			Radius: vg.Points(4),
			Shape:  draw.CrossGlyph{},
		}
		p.Add(scatter)
	}

	return p, nil
}

func xysOf(s spectrum.Spectrum) plotter.XYs {
	xys := make(plotter.XYs, len(s))
	for i, sm := range s {
		xys[i] = plotter.XY{X: sm.X, Y: sm.Y}
	}
	return xys
}

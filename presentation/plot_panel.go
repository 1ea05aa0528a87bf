package presentation

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// PlotPanel is a custom widget displaying the rendered plot frame.
// Taps are forwarded as frame-relative pixel positions.
type PlotPanel struct {
	widget.BaseWidget
	img      *canvas.Image
	onPicked func(x, y float32)
}

// NewPlotPanel creates a plot panel with a blank frame of the given size.
func NewPlotPanel(width, height int) *PlotPanel {
	p := &PlotPanel{
		img: canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, width, height))),
	}
	p.img.FillMode = canvas.ImageFillOriginal
	p.ExtendBaseWidget(p)
	return p
}

// SetOnPicked sets the tap handler.
func (p *PlotPanel) SetOnPicked(fn func(x, y float32)) {
	p.onPicked = fn
}

// SetFrame replaces the displayed frame.
func (p *PlotPanel) SetFrame(img image.Image) {
	if img == nil {
		return
	}
	p.img.Image = img
	p.img.Refresh()
	p.Refresh()
}

// CreateRenderer creates the widget renderer.
func (p *PlotPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.img)
}

// Tapped handles tap events.
func (p *PlotPanel) Tapped(e *fyne.PointEvent) {
	if p.onPicked != nil {
		p.onPicked(e.Position.X, e.Position.Y)
	}
}

// MinSize returns the minimum size of the panel.
func (p *PlotPanel) MinSize() fyne.Size {
	return p.img.MinSize()
}

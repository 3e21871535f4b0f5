// Package raster rasterizes visual primitives onto a canvas and encodes the
// result as PNG. It consumes the renderer's primitive list read-only and is
// agnostic to which style produced it.
package raster

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/render"
)

// #region encode

// Encode draws primitives in list order over the background color and returns
// PNG bytes. Drawing is purely sequential, so identical primitive lists
// produce identical bytes.
func Encode(prims []render.Primitive, canvas render.Canvas, background render.RGB) ([]byte, error) {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return nil, fmt.Errorf("non-positive canvas %dx%d", canvas.Width, canvas.Height)
	}

	dc := gg.NewContext(canvas.Width, canvas.Height)
	dc.SetRGB255(int(background.R), int(background.G), int(background.B))
	dc.Clear()

	for _, p := range prims {
		switch p.Kind {
		case render.KindPoint:
			drawPoint(dc, p)
		case render.KindCurve:
			drawCurve(dc, p)
		case render.KindBand:
			drawBand(dc, p, canvas)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// #endregion encode

// #region shapes

func drawPoint(dc *gg.Context, p render.Primitive) {
	if len(p.Points) == 0 {
		return
	}
	setColor(dc, p.Color, p.Opacity)
	dc.DrawCircle(p.Points[0].X, p.Points[0].Y, p.Size)
	dc.Fill()
}

// drawCurve strokes a polyline. Curves with three or more samples are
// smoothed by quadratic segments through successive midpoints.
func drawCurve(dc *gg.Context, p render.Primitive) {
	if len(p.Points) < 2 {
		return
	}
	setColor(dc, p.Color, p.Opacity)
	dc.SetLineWidth(p.Size)

	pts := p.Points
	dc.MoveTo(pts[0].X, pts[0].Y)
	if len(pts) == 2 {
		dc.LineTo(pts[1].X, pts[1].Y)
	} else {
		for i := 1; i < len(pts)-1; i++ {
			mx := (pts[i].X + pts[i+1].X) / 2
			my := (pts[i].Y + pts[i+1].Y) / 2
			dc.QuadraticTo(pts[i].X, pts[i].Y, mx, my)
		}
		dc.LineTo(pts[len(pts)-1].X, pts[len(pts)-1].Y)
	}
	dc.Stroke()
}

// drawBand fills a full-height rectangle with a vertical alpha fade from
// TopOpacity down to BottomOpacity.
func drawBand(dc *gg.Context, p render.Primitive, canvas render.Canvas) {
	h := float64(canvas.Height)
	grad := gg.NewLinearGradient(p.X, 0, p.X, h)
	grad.AddColorStop(0, color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: alphaByte(p.TopOpacity)})
	grad.AddColorStop(1, color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: alphaByte(p.BottomOpacity)})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(p.X, 0, p.Width, h)
	dc.Fill()
}

// #endregion shapes

// #region helpers

func setColor(dc *gg.Context, c render.RGB, opacity float64) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(alphaByte(opacity)))
}

func alphaByte(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity*255 + 0.5)
}

// #endregion helpers

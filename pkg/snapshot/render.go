package snapshot

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// MaxRenderHeight caps the height of a rendered wireframe before scaling.
const MaxRenderHeight = 16384

var itemPalette = []color.RGBA{
	colornames.Lightskyblue,
	colornames.Palegreen,
	colornames.Khaki,
	colornames.Lightpink,
	colornames.Plum,
}

var (
	backgroundColor = colornames.White
	viewColor       = colornames.Steelblue
	itemBorderColor = colornames.Dimgray
	labelColor      = colornames.Black
)

// RenderOptions controls RenderPNG.
type RenderOptions struct {
	// Scale multiplies the output size. Values <= 0 mean 1.
	Scale float64
	// Labels draws item titles inside their frames.
	Labels bool
}

// Render draws the snapshot as a wireframe covering the whole content, at
// one pixel per point.
//
// Every child view is outlined at its frame. Items of vertically scrolling
// children are drawn at their page position, so a pinned list shows all of
// its items. Items of horizontally scrolling children are clipped to the
// child's frame and shifted by its content offset.
func (s *Snapshot) Render(labels bool) (*image.RGBA, error) {
	width := int(math.Ceil(s.Viewport[0]))
	height := int(math.Ceil(max(s.ContentSize[1], s.Viewport[1])))
	if width <= 0 || height <= 0 {
		return nil, errors.New("snapshot has an empty viewport")
	}
	height = min(height, MaxRenderHeight)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	for _, v := range s.Views {
		frame := rectOf(v.Frame)
		originX := v.Frame[0] - v.ContentOffset[0]
		originY := v.Frame[1] - v.ContentOffset[1]
		clip := img.Bounds()
		if v.Direction == "horizontal" {
			clip = clip.Intersect(frame)
		}

		for i, item := range v.Items {
			r := rectOf([4]float64{originX + item.Frame[0], originY + item.Frame[1], item.Frame[2], item.Frame[3]})
			r = r.Intersect(clip)
			if r.Empty() {
				continue
			}
			fill := itemPalette[i%len(itemPalette)]
			draw.Draw(img, r, image.NewUniform(fill), image.Point{}, draw.Src)
			strokeRect(img, r, itemBorderColor)
			if labels {
				drawLabel(img, r, item.Title)
			}
		}
		strokeRect(img, frame.Intersect(img.Bounds()), viewColor)
	}
	return img, nil
}

// RenderPNG renders the snapshot and writes it to w as PNG.
func (s *Snapshot) RenderPNG(w io.Writer, opts RenderOptions) error {
	img, err := s.Render(opts.Labels)
	if err != nil {
		return err
	}
	var out image.Image = img
	if opts.Scale > 0 && opts.Scale != 1 {
		b := img.Bounds()
		dw := max(int(math.Round(float64(b.Dx())*opts.Scale)), 1)
		dh := max(int(math.Round(float64(b.Dy())*opts.Scale)), 1)
		dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		out = dst
	}
	return png.Encode(w, out)
}

func rectOf(r [4]float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(r[0])),
		int(math.Floor(r[1])),
		int(math.Ceil(r[0]+r[2])),
		int(math.Ceil(r[1]+r[3])),
	)
}

func strokeRect(img draw.Image, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e.Intersect(r), src, image.Point{}, draw.Src)
	}
}

// drawLabel writes title on the first line of r, cut to the characters that
// fit. Frames shorter than one line get no label.
func drawLabel(img draw.Image, r image.Rectangle, title string) {
	face := basicfont.Face7x13
	const padding = 3
	if title == "" || r.Dy() < face.Height+padding {
		return
	}
	fit := (r.Dx() - 2*padding) / face.Advance
	if fit <= 0 {
		return
	}
	if len(title) > fit {
		title = title[:fit]
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot:  fixed.P(r.Min.X+padding, r.Min.Y+padding+face.Ascent),
	}
	d.DrawString(title)
}

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"spinwheel/internal/wheel"
)

var (
	gifBgEven  = color.RGBA{0, 74, 10, 255}
	gifBgOdd   = color.RGBA{0, 40, 5, 255}
	gifWinner  = color.RGBA{0, 204, 51, 255}
	gifOutline = color.RGBA{0, 20, 2, 255}
	gifHub     = color.RGBA{0, 143, 17, 255}
	gifPointer = color.RGBA{255, 204, 0, 255}
	gifLabelBg = color.Black
	gifLabelFg = color.White
	gifPalette = []color.Color{
		color.Transparent, color.Black, color.White,
		gifBgEven, gifBgOdd, gifWinner, gifOutline, gifHub, gifPointer,
	}
)

// GIFOptions controls the offline spin animation.
type GIFOptions struct {
	Size        int           // square canvas edge in pixels
	FPS         int           // frames per second
	Duration    time.Duration // spin duration
	Linger      time.Duration // hold on the final frame
	Revolutions int           // extra full turns before landing
	Target      int           // item index to land on
	Easing      wheel.EasingFunc
}

type gifFrame struct {
	rotation float64
	index    int
	resting  bool
}

// WriteGIF animates the wheel landing on the target item and encodes it as
// an animated GIF. The wheel core is driven with synthetic timestamps, one
// Advance per frame, exactly as a live host would drive it.
func WriteGIF(out io.Writer, items []wheel.Item, cfg wheel.Config, opts GIFOptions) error {
	if opts.Size <= 0 || opts.FPS <= 0 || opts.Duration <= 0 {
		return fmt.Errorf("%w: gif needs positive size, fps, and duration", wheel.ErrInvalidConfiguration)
	}

	w, err := wheel.New(cfg, wheel.NopObserver{})
	if err != nil {
		return err
	}
	if err := w.SetItems(items); err != nil {
		return err
	}

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	w.SetClock(func() time.Time { return now })

	easing := opts.Easing
	if easing == nil {
		easing = wheel.EaseCubicOut
	}
	if err := w.SpinToItem(opts.Target, opts.Duration, true, opts.Revolutions, 1, easing); err != nil {
		return err
	}

	// Drive the core frame by frame, snapshotting what the renderer needs.
	frameTime := time.Second / time.Duration(opts.FPS)
	lingering := int(opts.Linger / frameTime)
	frames := make([]gifFrame, 0, int(opts.Duration/frameTime)+lingering+2)

	for w.NeedsTick() {
		frames = append(frames, gifFrame{rotation: w.Rotation(), index: w.CurrentIndex()})
		now = now.Add(frameTime)
		w.Advance(now)
	}
	rest := gifFrame{rotation: w.Rotation(), index: w.CurrentIndex(), resting: true}
	for i := 0; i <= lingering; i++ {
		frames = append(frames, rest)
	}

	face, err := labelFace(float64(opts.Size) / 24)
	if err != nil {
		return err
	}

	rendered := make([]image.Image, len(frames))
	var wg sync.WaitGroup
	wg.Add(len(frames))
	for i, fr := range frames {
		go func(i int, fr gifFrame) {
			defer wg.Done()
			rendered[i] = drawFrame(items, cfg, fr, opts.Size, face)
		}(i, fr)
	}
	wg.Wait()

	delay := 100 / opts.FPS
	images := make([]*image.Paletted, len(rendered))
	delays := make([]int, len(rendered))
	for i, img := range rendered {
		bounds := img.Bounds()
		paletted := image.NewPaletted(bounds, gifPalette)
		draw.Draw(paletted, bounds, img, bounds.Min, draw.Src)
		images[i] = paletted
		delays[i] = delay
	}

	return gif.EncodeAll(out, &gif.GIF{Image: images, Delay: delays})
}

func labelFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull}), nil
}

func drawFrame(items []wheel.Item, cfg wheel.Config, fr gifFrame, size int, face font.Face) image.Image {
	dc := gg.NewContext(size, size)
	cx, cy := float64(size)/2, float64(size)/2
	radius := float64(size)/2 - 12

	angles, err := wheel.ComputeAngles(items, fr.rotation)
	if err != nil {
		return dc.Image()
	}

	// Sectors.
	for i, r := range angles {
		a1, a2 := ggAngle(r.Start), ggAngle(r.End)
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, radius, a1, a2)
		dc.ClosePath()
		switch {
		case fr.resting && i == fr.index:
			dc.SetColor(gifWinner)
		case i%2 == 0:
			dc.SetColor(gifBgEven)
		default:
			dc.SetColor(gifBgOdd)
		}
		dc.Fill()
	}

	// Division lines.
	dc.SetLineWidth(2)
	dc.SetColor(gifOutline)
	for _, r := range angles {
		a := ggAngle(r.Start)
		dc.MoveTo(cx, cy)
		dc.LineTo(cx+math.Cos(a)*radius, cy+math.Sin(a)*radius)
		dc.Stroke()
	}

	// Rim.
	dc.SetLineWidth(4)
	dc.SetColor(gifOutline)
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()

	// Labels, rotated to read along the sector and flipped upright on the
	// left half.
	dc.SetFontFace(face)
	for i, r := range angles {
		label := items[i].Label
		if label == "" {
			continue
		}
		mid := ggAngle(r.Center())
		lx := cx + math.Cos(mid)*radius*0.62
		ly := cy + math.Sin(mid)*radius*0.62

		mid = math.Mod(mid, 2*math.Pi)
		if mid < 0 {
			mid += 2 * math.Pi
		}
		dc.Push()
		dc.Translate(lx, ly)
		if mid > math.Pi/2 && mid < 3*math.Pi/2 {
			dc.Rotate(mid + math.Pi)
		} else {
			dc.Rotate(mid)
		}
		dc.SetColor(gifLabelBg)
		dc.DrawStringAnchored(label, 1, 1, 0.5, 0.5)
		dc.SetColor(gifLabelFg)
		dc.DrawStringAnchored(label, 0, 0, 0.5, 0.5)
		dc.Pop()
	}

	// Hub.
	dc.SetColor(gifHub)
	dc.DrawCircle(cx, cy, radius*0.16)
	dc.Fill()
	dc.SetLineWidth(2)
	dc.SetColor(gifOutline)
	dc.DrawCircle(cx, cy, radius*0.16)
	dc.Stroke()

	drawPointer(dc, cx, cy, radius, cfg.PointerAngle, fr.resting)
	return dc.Image()
}

// drawPointer draws the fixed pointer arrow just outside the rim, aimed at
// the wheel center.
func drawPointer(dc *gg.Context, cx, cy, radius, pointerAngle float64, resting bool) {
	arrow := radius * 0.14
	a := ggAngle(pointerAngle)
	tipX := cx + math.Cos(a)*(radius-arrow*0.4)
	tipY := cy + math.Sin(a)*(radius-arrow*0.4)
	baseX := cx + math.Cos(a)*(radius+arrow)
	baseY := cy + math.Sin(a)*(radius+arrow)

	// Perpendicular half-width of the arrow base.
	px, py := -math.Sin(a)*arrow/2, math.Cos(a)*arrow/2

	dc.NewSubPath()
	dc.MoveTo(tipX, tipY)
	dc.LineTo(baseX-px, baseY-py)
	dc.LineTo(baseX+px, baseY+py)
	dc.ClosePath()

	if resting {
		dc.SetColor(gifWinner)
	} else {
		dc.SetColor(gifPointer)
	}
	dc.FillPreserve()
	dc.SetLineWidth(2)
	dc.SetColor(gifOutline)
	dc.Stroke()
}

// ggAngle converts wheel degrees (0=north, clockwise) to gg radians
// (0=east, clockwise on a y-down canvas).
func ggAngle(deg float64) float64 {
	return (deg - 90) * math.Pi / 180
}

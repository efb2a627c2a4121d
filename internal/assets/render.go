package assets

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

// RenderOptions describe one on-screen rendition of an image.
type RenderOptions struct {
	Width   int     // cells
	Height  int     // cells; each cell holds two pixel rows
	Opacity float64 // 1 draws the icon as is, lower values fade it

	// Background fills cells; empty leaves them transparent. Base is the
	// color faded toward when Background is empty.
	Background string
	Base       string
}

// alphaCutoff is the alpha below which a pixel is treated as transparent.
const alphaCutoff = 128

// Render draws the image into a Width x Height block of cells. Results are
// cached per option set.
func (i *Image) Render(opts RenderOptions) string {
	if opts.Width <= 0 || opts.Height <= 0 {
		return ""
	}
	if opts.Opacity <= 0 || opts.Opacity > 1 {
		opts.Opacity = 1
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if out, ok := i.rendered[opts]; ok {
		return out
	}

	var out string
	if i.src == nil {
		out = renderGlyph(i.Glyph, opts)
	} else {
		out = renderHalfblocks(fit(i.src, opts.Width, opts.Height*2), opts)
	}
	i.rendered[opts] = out
	return out
}

func renderGlyph(glyph string, opts RenderOptions) string {
	style := lipgloss.NewStyle()
	if opts.Opacity < 1 {
		style = style.Faint(true)
	}
	var place []lipgloss.WhitespaceOption
	if opts.Background != "" {
		style = style.Background(lipgloss.Color(opts.Background))
		place = append(place, lipgloss.WithWhitespaceBackground(lipgloss.Color(opts.Background)))
	}
	return lipgloss.Place(opts.Width, opts.Height, lipgloss.Center, lipgloss.Center, style.Render(glyph), place...)
}

// fit scales src to fit in w x h pixels keeping its aspect ratio and centers
// it on a transparent canvas of exactly that size.
func fit(src image.Image, w, h int) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return canvas
	}

	scale := min(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	dw := max(1, int(float64(b.Dx())*scale+0.5))
	dh := max(1, int(float64(b.Dy())*scale+0.5))
	x0 := (w - dw) / 2
	y0 := (h - dh) / 2

	xdraw.CatmullRom.Scale(canvas, image.Rect(x0, y0, x0+dw, y0+dh), src, b, xdraw.Over, nil)
	return canvas
}

// fade blends every opaque pixel toward target by 1-opacity.
func fade(img *image.NRGBA, opacity float64, target colorful.Color) *image.NRGBA {
	if opacity >= 1 {
		return img
	}
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		if c.A < alphaCutoff {
			return c
		}
		src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
		r, g, b := target.BlendRgb(src, opacity).Clamped().RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: c.A}
	})
}

func fadeTarget(opts RenderOptions) colorful.Color {
	for _, hex := range []string{opts.Background, opts.Base} {
		if c, err := colorful.Hex(hex); err == nil {
			return c
		}
	}
	return colorful.Color{}
}

// renderHalfblocks writes one upper half block per cell: the top pixel is the
// foreground and the bottom pixel the background.
func renderHalfblocks(img *image.NRGBA, opts RenderOptions) string {
	img = fade(img, opts.Opacity, fadeTarget(opts))

	bg := ""
	if c, err := colorful.Hex(opts.Background); err == nil {
		r, g, b := c.RGB255()
		bg = fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}

	bounds := img.Bounds()
	var sb strings.Builder
	sb.Grow(bounds.Dx() * (bounds.Dy() / 2) * 30)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			sb.WriteByte('\n')
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := img.NRGBAAt(x, y)
			var bot color.NRGBA
			if y+1 < bounds.Max.Y {
				bot = img.NRGBAAt(x, y+1)
			}
			topOn, botOn := top.A >= alphaCutoff, bot.A >= alphaCutoff

			switch {
			case !topOn && !botOn:
				sb.WriteString("\x1b[0m")
				sb.WriteString(bg)
				sb.WriteByte(' ')
			case topOn && botOn:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			case topOn:
				sb.WriteString("\x1b[0m")
				sb.WriteString(bg)
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm▀", top.R, top.G, top.B)
			default:
				sb.WriteString("\x1b[0m")
				sb.WriteString(bg)
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm▄", bot.R, bot.G, bot.B)
			}
		}
		sb.WriteString("\x1b[0m")
	}
	return sb.String()
}

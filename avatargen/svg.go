package avatargen

import (
	"fmt"
	"strconv"
	"strings"
)

// svgPlaceholder is what EncodeSVG degrades to if rendering somehow blows up:
// a well-formed 1×1 document that draws nothing.
const svgPlaceholder = `<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`

// EncodeSVG renders buf as a self-contained SVG document, size×size, with
// crisp pixel edges. Same-color horizontal runs of cells are merged (and
// extended downward while whole rows match) into single <rect> elements to
// keep the markup small.
//
// It always returns a renderable document; an internal failure produces the
// 1×1 placeholder instead of an error.
func EncodeSVG(buf *Buffer, size int, background string, pal *Palette) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = svgPlaceholder
		}
	}()

	scale := float64(size) / BufferSize
	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		size, size, size, size)
	writeSVGBackground(&sb, size, scale, background)
	writeSVGRects(&sb, buf, scale, pal)
	sb.WriteString(`</svg>`)
	return sb.String()
}

func writeSVGBackground(sb *strings.Builder, size int, scale float64, background string) {
	switch background {
	case BackgroundTransparent, "":
		return
	case BackgroundPattern:
		// A 2×2-cell checkerboard tile, repeated over the whole canvas
		tile := num(2 * scale)
		cell := num(scale)
		fmt.Fprintf(sb,
			`<defs><pattern id="bg" width="%s" height="%s" patternUnits="userSpaceOnUse">`+
				`<rect width="%s" height="%s" fill="%s"/>`+
				`<rect x="%s" width="%s" height="%s" fill="%s"/>`+
				`<rect y="%s" width="%s" height="%s" fill="%s"/>`+
				`</pattern></defs>`,
			tile, tile,
			tile, tile, checkerLight,
			cell, cell, cell, checkerDark,
			cell, cell, cell, checkerDark)
		fmt.Fprintf(sb, `<rect width="%d" height="%d" fill="url(#bg)"/>`, size, size)
	default:
		r, g, b, ok := parseHexColor(background)
		if !ok {
			// Unparseable color spec: leave the background transparent
			return
		}
		fmt.Fprintf(sb, `<rect width="%d" height="%d" fill="#%02x%02x%02x"/>`, size, size, r, g, b)
	}
}

// writeSVGRects scans the grid row-major and greedily merges maximal
// same-color rectangles: first extend the run to the right, then keep
// claiming full-width rows below it. Each merged run becomes one <rect>.
func writeSVGRects(sb *strings.Builder, buf *Buffer, scale float64, pal *Palette) {
	var claimed [BufferSize * BufferSize]bool
	for y := 0; y < BufferSize; y++ {
		for x := 0; x < BufferSize; x++ {
			if claimed[y*BufferSize+x] {
				continue
			}
			c := buf.Pixel(x, y)
			if c == Transparent {
				continue
			}
			w := 1
			for x+w < BufferSize && !claimed[y*BufferSize+x+w] && buf.Pixel(x+w, y) == c {
				w++
			}
			h := 1
			for y+h < BufferSize && rowMatches(buf, &claimed, x, y+h, w, c) {
				h++
			}
			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					claimed[yy*BufferSize+xx] = true
				}
			}
			fmt.Fprintf(sb, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
				num(float64(x)*scale), num(float64(y)*scale),
				num(float64(w)*scale), num(float64(h)*scale),
				cellColorHex(pal, c))
		}
	}
}

func rowMatches(buf *Buffer, claimed *[BufferSize * BufferSize]bool, x, y, w, c int) bool {
	for xx := x; xx < x+w; xx++ {
		if claimed[y*BufferSize+xx] || buf.Pixel(xx, y) != c {
			return false
		}
	}
	return true
}

// cellColorHex maps a buffer cell's flat-palette index to its hex color.
// Out-of-range indices fall back to the palette's first color so a corrupted
// cell paints wrong instead of failing.
func cellColorHex(pal *Palette, c int) string {
	if c < 0 || c >= len(pal.Colors) {
		return pal.Colors[0]
	}
	return pal.Colors[c]
}

// num formats a coordinate without trailing zeros ("16", "6.25").
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

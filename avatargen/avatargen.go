// Package avatargen deterministically generates small pixel-art face avatars
// from an email address. The same email (and options) always regenerates the
// same image, so nothing ever needs to be stored: the avatar URL is the
// avatar.
package avatargen

import "strconv"

// Format selects the output encoding.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// MIME types for the two formats.
const (
	MIMETypeSVG = "image/svg+xml"
	MIMETypePNG = "image/png"
)

// BackgroundTransparent and BackgroundPattern are the two non-color
// background specs; anything else is treated as a hex color, and anything
// unparseable falls back to transparent.
const (
	BackgroundTransparent = "transparent"
	BackgroundPattern     = "pattern"
)

// Checkerboard grays for the "pattern" background.
const (
	checkerLight = "#e0e0e0"
	checkerDark  = "#c0c0c0"
)

// Options are the validated inputs for one generation. The zero value isn't
// useful; callers go through the boundary layer (or fill in every field).
type Options struct {
	Email      string
	Salt       string
	Palette    string
	Mood       Mood
	Gender     Gender
	Size       int
	Background string
	Format     Format
}

// Generate runs the whole pipeline for opts and returns the encoded image
// plus its MIME type. It never fails: palette lookups fall back, color
// lookups fall back, and the encoders substitute a 1×1 transparent
// placeholder if anything goes wrong internally.
func Generate(opts Options) ([]byte, string) {
	seed := EmailToSeed(opts.Email, opts.Salt)
	pal := LookupPalette(opts.Palette)
	buf := DrawFace(seed, opts.Palette, opts.Mood, opts.Gender)
	if opts.Format == FormatPNG {
		return EncodePNG(buf, opts.Size, opts.Background, pal), MIMETypePNG
	}
	return []byte(EncodeSVG(buf, opts.Size, opts.Background, pal)), MIMETypeSVG
}

// DrawFace is the drawing half of the pipeline: seed → PRNG → features →
// mood → gender → layers → mirror → asymmetry. The returned buffer belongs
// to the caller.
func DrawFace(seed uint32, paletteName string, mood Mood, gender Gender) *Buffer {
	rng := NewPRNG(seed)
	pal := LookupPalette(paletteName)
	f := SelectFeatures(rng, pal)
	applyMood(rng, &f, mood)
	applyGender(rng, &f, gender)
	buf := NewBuffer()
	drawAvatar(buf, rng, &f, pal)
	return buf
}

// parseHexColor parses "#abc", "#aabbcc", or the same without the "#"
// (which is how the color usually arrives in a query string).
func parseHexColor(s string) (r, g, b uint8, ok bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3:
		v, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return 0, 0, 0, false
		}
		// Expand each nibble: 0xf becomes 0xff
		r = uint8((v >> 8 & 0xf) * 0x11)
		g = uint8((v >> 4 & 0xf) * 0x11)
		b = uint8((v & 0xf) * 0x11)
		return r, g, b, true
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return 0, 0, 0, false
		}
		return uint8(v >> 16), uint8(v >> 8), uint8(v), true
	}
	return 0, 0, 0, false
}

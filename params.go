// Package pixelface is the HTTP boundary around avatargen: it validates the
// query-string parameters, applies defaults, and renders the little form
// page. The generation core never sees an unvalidated input.
package pixelface

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/maxhully/pixelface/avatargen"
)

const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 1024
)

// Just enough of an email-shape check to catch obvious junk. Real email
// validation means sending an email, and we don't care anyway: the address is
// only ever hashed.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Params is a validated avatar request. Everything in here is safe to hand
// to avatargen as-is.
type Params struct {
	Email      string
	Salt       string
	Size       int
	Palette    string
	Background string
	Mood       avatargen.Mood
	Gender     avatargen.Gender
	Format     avatargen.Format
}

func (p *Params) Options() avatargen.Options {
	return avatargen.Options{
		Email:      p.Email,
		Salt:       p.Salt,
		Palette:    p.Palette,
		Mood:       p.Mood,
		Gender:     p.Gender,
		Size:       p.Size,
		Background: p.Background,
		Format:     p.Format,
	}
}

var moods = map[avatargen.Mood]bool{
	avatargen.MoodNeutral:   true,
	avatargen.MoodSmile:     true,
	avatargen.MoodWink:      true,
	avatargen.MoodSurprised: true,
	avatargen.MoodAngry:     true,
}

var genders = map[avatargen.Gender]bool{
	avatargen.GenderAuto:        true,
	avatargen.GenderAndrogynous: true,
	avatargen.GenderMasc:        true,
	avatargen.GenderFem:         true,
}

// Moods and Genders list the accepted values, for the form page.
func Moods() []avatargen.Mood {
	return []avatargen.Mood{
		avatargen.MoodNeutral, avatargen.MoodSmile, avatargen.MoodWink,
		avatargen.MoodSurprised, avatargen.MoodAngry,
	}
}

func Genders() []avatargen.Gender {
	return []avatargen.Gender{
		avatargen.GenderAuto, avatargen.GenderAndrogynous,
		avatargen.GenderMasc, avatargen.GenderFem,
	}
}

// ParseParams validates q and fills in defaults. Malformed emails, junk
// sizes, and unknown mood/gender/format values are rejected here, before
// anything reaches the core. Unknown palette and bg values are let through on
// purpose: the core defines graceful fallbacks for both, and an avatar URL
// with a typo'd palette should still render.
func ParseParams(q url.Values) (*Params, error) {
	email := strings.TrimSpace(q.Get("email"))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%q doesn't look like an email address", email)
	}

	p := &Params{
		Email:      email,
		Salt:       q.Get("seed_salt"),
		Size:       DefaultSize,
		Palette:    avatargen.DefaultPaletteName,
		Background: avatargen.BackgroundTransparent,
		Mood:       avatargen.MoodNeutral,
		Gender:     avatargen.GenderAuto,
		Format:     avatargen.FormatSVG,
	}

	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("size must be a whole number, not %q", raw)
		}
		// Clamp rather than reject: a URL asking for size=4096 clearly wants
		// "as big as you'll go"
		if size < MinSize {
			size = MinSize
		}
		if size > MaxSize {
			size = MaxSize
		}
		p.Size = size
	}
	if raw := q.Get("palette"); raw != "" {
		p.Palette = raw
	}
	if raw := q.Get("bg"); raw != "" {
		p.Background = raw
	}
	if raw := q.Get("mood"); raw != "" {
		mood := avatargen.Mood(raw)
		if !moods[mood] {
			return nil, fmt.Errorf("unknown mood %q", raw)
		}
		p.Mood = mood
	}
	if raw := q.Get("gender"); raw != "" {
		gender := avatargen.Gender(raw)
		if !genders[gender] {
			return nil, fmt.Errorf("unknown gender %q", raw)
		}
		p.Gender = gender
	}
	if raw := q.Get("format"); raw != "" {
		switch avatargen.Format(raw) {
		case avatargen.FormatSVG, avatargen.FormatPNG:
			p.Format = avatargen.Format(raw)
		default:
			return nil, fmt.Errorf("format must be svg or png, not %q", raw)
		}
	}
	return p, nil
}

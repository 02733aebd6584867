package avatargen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawFaceDeterministic(t *testing.T) {
	seed := EmailToSeed("test@example.com", "")
	a := DrawFace(seed, "nes", MoodNeutral, GenderAuto)
	b := DrawFace(seed, "nes", MoodNeutral, GenderAuto)
	assert.Equal(t, a.Data(), b.Data())
}

func TestDrawFaceNotEmpty(t *testing.T) {
	buf := DrawFace(EmailToSeed("test@example.com", ""), "nes", MoodNeutral, GenderAuto)
	painted := 0
	for _, c := range buf.Data() {
		if c != Transparent {
			painted++
		}
	}
	// A face plus shoulders should cover a decent chunk of the 256 cells
	if painted < 50 {
		t.Errorf("only %d cells painted", painted)
	}
}

func TestDrawFaceCellsAreValidIndices(t *testing.T) {
	for _, name := range PaletteNames() {
		pal := LookupPalette(name)
		for seed := uint32(1); seed <= 100; seed++ {
			for _, c := range DrawFace(seed, name, MoodNeutral, GenderAuto).Data() {
				if c == Transparent {
					continue
				}
				if c < 0 || c >= len(pal.Colors) {
					t.Fatalf("palette %s seed %d: cell value %d out of range", name, seed, c)
				}
			}
		}
	}
}

func TestDrawFaceVariesByEmail(t *testing.T) {
	emails := []string{
		"a@example.com", "b@example.com", "c@example.com",
		"d@example.com", "e@example.com",
	}
	distinct := make(map[string]bool)
	for _, email := range emails {
		buf := DrawFace(EmailToSeed(email, ""), "nes", MoodNeutral, GenderAuto)
		distinct[fmt.Sprint(buf.Data())] = true
	}
	if len(distinct) < 2 {
		t.Error("five different emails all drew the same face")
	}
}

func TestGenerateMIMETypes(t *testing.T) {
	opts := Options{
		Email:      "test@example.com",
		Palette:    "nes",
		Mood:       MoodNeutral,
		Gender:     GenderAuto,
		Size:       256,
		Background: BackgroundTransparent,
		Format:     FormatSVG,
	}
	_, contentType := Generate(opts)
	assert.Equal(t, MIMETypeSVG, contentType)

	opts.Format = FormatPNG
	img, contentType := Generate(opts)
	assert.Equal(t, MIMETypePNG, contentType)
	assert.Equal(t, pngSignature, img[:8])
}

func TestGenerateIdempotent(t *testing.T) {
	opts := Options{
		Email:      "max@example.com",
		Salt:       "s",
		Palette:    "slso8",
		Mood:       MoodSmile,
		Gender:     GenderFem,
		Size:       512,
		Background: "pattern",
		Format:     FormatPNG,
	}
	a, _ := Generate(opts)
	b, _ := Generate(opts)
	assert.Equal(t, a, b)
}

func TestParseHexColor(t *testing.T) {
	var testCases = []struct {
		in      string
		r, g, b uint8
		ok      bool
	}{
		{"#ff8800", 0xff, 0x88, 0x00, true},
		{"ff8800", 0xff, 0x88, 0x00, true},
		{"#f80", 0xff, 0x88, 0x00, true},
		{"f80", 0xff, 0x88, 0x00, true},
		{"#FF8800", 0xff, 0x88, 0x00, true},
		{"", 0, 0, 0, false},
		{"#ff88", 0, 0, 0, false},
		{"#zzzzzz", 0, 0, 0, false},
		{"pattern", 0, 0, 0, false},
	}
	for _, testCase := range testCases {
		r, g, b, ok := parseHexColor(testCase.in)
		assert.Equal(t, testCase.ok, ok, "%q", testCase.in)
		if ok {
			assert.Equal(t, [3]uint8{testCase.r, testCase.g, testCase.b}, [3]uint8{r, g, b}, "%q", testCase.in)
		}
	}
}

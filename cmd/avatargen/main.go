// avatargen: generate one avatar from the command line, for eyeballing the
// drawing code without running the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/maxhully/pixelface/avatargen"
)

func main() {
	email := flag.String("email", "you@example.com", "Email to generate an avatar for")
	salt := flag.String("salt", "", "Optional seed salt")
	palette := flag.String("palette", avatargen.DefaultPaletteName, "Palette name")
	mood := flag.String("mood", "neutral", "Mood (neutral, smile, wink, surprised, angry)")
	gender := flag.String("gender", "auto", "Gender bias (auto, androgynous, masc, fem)")
	size := flag.Int("size", 256, "Output size in pixels")
	bg := flag.String("bg", "transparent", "Background (transparent, pattern, or a hex color)")
	format := flag.String("format", "svg", "Output format (svg or png)")
	out := flag.String("out", "", "Output file (default avatar.svg / avatar.png)")
	flag.Parse()

	img, _ := avatargen.Generate(avatargen.Options{
		Email:      *email,
		Salt:       *salt,
		Palette:    *palette,
		Mood:       avatargen.Mood(*mood),
		Gender:     avatargen.Gender(*gender),
		Size:       *size,
		Background: *bg,
		Format:     avatargen.Format(*format),
	})

	path := *out
	if path == "" {
		path = "avatar." + *format
	}
	if err := os.WriteFile(path, img, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Created %s\n", path)
}

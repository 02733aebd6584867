package avatargen

// The coordinate tables in this file are all in 16×16 buffer space, and every
// shape is drawn as if the face were fully visible; MirrorVertically then
// replaces the right half with the reflected left half, so only columns 0–7
// survive into the final image. That's what keeps faces symmetric without
// every routine having to be careful about it.

// colors is the resolved set of drawable flat-palette indices for one
// generation. Resolving them up front means drawAvatar consumes no PRNG draws
// itself — the stream stays exactly: selection, mood, gender, asymmetry.
type colors struct {
	skin    int
	shade   int // darker skin tone, for nose/mouth/marks
	hair    int
	eyes    int
	clothes int
	accent  int
}

func resolveColors(pal *Palette, f *Features) colors {
	shadeIdx := f.SkinTone + 1
	if shadeIdx >= len(pal.Skin) {
		shadeIdx = len(pal.Skin) - 1
	}
	return colors{
		skin:    pal.roleColor(pal.Skin, f.SkinTone),
		shade:   pal.roleColor(pal.Skin, shadeIdx),
		hair:    pal.roleColor(pal.Hair, f.HairColor),
		eyes:    pal.roleColor(pal.Eyes, 0),
		clothes: pal.roleColor(pal.Clothes, f.ClothesColor),
		accent:  pal.roleColor(pal.Accent, 0),
	}
}

// drawAvatar paints f onto buf back-to-front, mirrors the result, and then
// applies the asymmetry pass. The buffer is cleared first, so a reused buffer
// is fine.
func drawAvatar(buf *Buffer, rng *PRNG, f *Features, pal *Palette) {
	buf.Clear()
	c := resolveColors(pal, f)

	drawShoulders(buf, c)
	drawClothes(buf, f, c)
	drawNeck(buf, c)
	drawHead(buf, f, c)
	drawHair(buf, f, c)
	drawBrows(buf, f, c)
	drawEyes(buf, f, c)
	drawNose(buf, f, c)
	drawMouth(buf, f, c)
	drawFacialHair(buf, f, c)
	drawAccessories(buf, f, c)

	buf.MirrorVertically()
	addAsymmetry(buf, rng, f, c)
}

func drawShoulders(buf *Buffer, c colors) {
	buf.FillRect(2, 14, 12, 2, c.clothes)
	buf.FillRect(1, 15, 14, 1, c.clothes)
}

func drawClothes(buf *Buffer, f *Features, c colors) {
	buf.FillRect(4, 12, 8, 4, c.clothes)
	switch f.Clothes {
	case ClothesVNeck:
		// Notch below the neck; shows skin
		buf.SetPixel(7, 12, c.skin)
		buf.SetPixel(7, 13, c.skin)
	case ClothesCollar:
		buf.DrawLine(4, 12, 6, 12, c.accent)
	}
}

func drawNeck(buf *Buffer, c colors) {
	buf.FillRect(6, 11, 4, 2, c.skin)
}

func drawHead(buf *Buffer, f *Features, c colors) {
	switch f.Jaw {
	case JawRound:
		buf.FillCircle(8, 7, 5, c.skin)
	case JawSquare:
		buf.FillRect(4, 3, 8, 8, c.skin)
	case JawPointed:
		buf.FillCircle(8, 7, 5, c.skin)
		buf.FillRect(7, 12, 2, 1, c.skin)
	}
}

func drawHair(buf *Buffer, f *Features, c colors) {
	switch f.Hair {
	case HairBuzz:
		buf.FillRect(4, 2, 8, 1, c.hair)
	case HairShort:
		buf.FillRect(3, 2, 10, 2, c.hair)
		buf.FillRect(3, 4, 1, 2, c.hair)
	case HairSpiky:
		buf.FillRect(3, 2, 10, 2, c.hair)
		buf.SetPixel(4, 1, c.hair)
		buf.SetPixel(6, 1, c.hair)
		buf.SetPixel(8, 1, c.hair)
		buf.SetPixel(10, 1, c.hair)
	case HairBob:
		buf.FillRect(3, 2, 10, 3, c.hair)
		buf.FillRect(3, 5, 2, 4, c.hair)
	case HairLong:
		buf.FillRect(3, 2, 10, 3, c.hair)
		buf.FillRect(2, 5, 2, 8, c.hair)
	case HairBun:
		buf.FillRect(3, 2, 10, 2, c.hair)
		buf.FillCircle(8, 1, 1, c.hair)
	}
}

func drawBrows(buf *Buffer, f *Features, c colors) {
	switch f.Brows {
	case BrowFlat:
		buf.DrawLine(4, 4, 6, 4, c.hair)
	case BrowRaised:
		buf.DrawLine(4, 3, 6, 3, c.hair)
	case BrowAngry:
		// Sloping down toward the nose
		buf.DrawLine(4, 3, 6, 4, c.hair)
	case BrowThick:
		buf.FillRect(4, 3, 3, 2, c.hair)
	}
}

func drawEyes(buf *Buffer, f *Features, c colors) {
	switch f.Eyes {
	case EyeDot:
		buf.SetPixel(5, 6, c.eyes)
	case EyeRound:
		buf.FillCircle(5, 6, 1, c.eyes)
	case EyeWide:
		buf.FillRect(4, 5, 2, 2, c.eyes)
	case EyeNarrow:
		buf.DrawLine(4, 6, 6, 6, c.eyes)
	case EyeHappy:
		// ^ shape
		buf.SetPixel(4, 6, c.eyes)
		buf.SetPixel(5, 5, c.eyes)
		buf.SetPixel(6, 6, c.eyes)
	case EyeClosed:
		// ∪ shape
		buf.SetPixel(4, 5, c.eyes)
		buf.SetPixel(5, 6, c.eyes)
		buf.SetPixel(6, 5, c.eyes)
	}
}

func drawNose(buf *Buffer, f *Features, c colors) {
	switch f.Nose {
	case NoseDot:
		buf.SetPixel(7, 7, c.shade)
	case NoseLine:
		buf.DrawLine(7, 6, 7, 8, c.shade)
	case NoseWide:
		buf.FillRect(6, 8, 3, 1, c.shade)
	}
}

func drawMouth(buf *Buffer, f *Features, c colors) {
	switch f.Mouth {
	case MouthLine:
		buf.DrawLine(6, 10, 8, 10, c.shade)
	case MouthSmile:
		buf.SetPixel(5, 9, c.shade)
		buf.DrawLine(6, 10, 8, 10, c.shade)
	case MouthGrin:
		buf.FillRect(5, 9, 6, 2, c.shade)
	case MouthFrown:
		buf.SetPixel(5, 11, c.shade)
		buf.DrawLine(6, 10, 8, 10, c.shade)
	case MouthOpen:
		buf.FillCircle(7, 10, 1, c.shade)
	case MouthSmirk:
		buf.DrawLine(5, 10, 7, 10, c.shade)
	}
}

func drawFacialHair(buf *Buffer, f *Features, c colors) {
	switch f.FacialHair {
	case FacialHairStubble:
		buf.SetPixel(4, 10, c.hair)
		buf.SetPixel(5, 11, c.hair)
		buf.SetPixel(7, 11, c.hair)
	case FacialHairMustache:
		buf.FillRect(5, 9, 6, 1, c.hair)
	case FacialHairBeard:
		buf.FillRect(4, 9, 2, 3, c.hair)
		buf.FillRect(6, 11, 4, 2, c.hair)
	}
}

func drawAccessories(buf *Buffer, f *Features, c colors) {
	switch f.Glasses {
	case GlassesRound:
		buf.SetPixel(4, 4, c.accent)
		buf.SetPixel(5, 4, c.accent)
		buf.SetPixel(4, 8, c.accent)
		buf.SetPixel(5, 8, c.accent)
		buf.DrawLine(3, 5, 3, 7, c.accent)
		buf.DrawLine(7, 5, 7, 7, c.accent)
	case GlassesSquare:
		buf.FillRect(3, 4, 5, 1, c.accent)
		buf.FillRect(3, 8, 5, 1, c.accent)
		buf.DrawLine(3, 5, 3, 7, c.accent)
		buf.DrawLine(7, 5, 7, 7, c.accent)
	}
	if f.Earrings {
		buf.SetPixel(3, 9, c.accent)
	}
	switch f.Hat {
	case HatBeanie:
		buf.FillRect(3, 1, 10, 2, c.accent)
		buf.FillRect(3, 3, 10, 1, c.clothes)
	case HatCap:
		buf.FillRect(3, 1, 10, 2, c.accent)
		buf.FillRect(1, 3, 6, 1, c.accent)
	}
}

// earringX is where drawAccessories puts the left earring; the mirrored copy
// lands at BufferSize-1-earringX.
const earringX = 3

// addAsymmetry runs after the mirror and deliberately breaks the symmetry a
// little, because perfectly mirrored faces read as sterile. Each tweak is its
// own PRNG draw, so the pass is as deterministic as everything else.
func addAsymmetry(buf *Buffer, rng *PRNG, f *Features, c colors) {
	if f.Earrings && rng.Chance(0.3) {
		// Lose the right earring
		buf.SetPixel(BufferSize-1-earringX, 9, Transparent)
	}
	if rng.Chance(0.1) {
		// A beauty mark on the left cheek
		x := 4 + rng.Int(3)
		y := 8 + rng.Int(2)
		buf.SetPixel(x, y, c.shade)
	}
	if f.Hair != HairNone && rng.Chance(0.2) {
		// One stray hair pixel, left side only
		x := 2 + rng.Int(5)
		y := 1 + rng.Int(3)
		buf.SetPixel(x, y, c.hair)
	}
}

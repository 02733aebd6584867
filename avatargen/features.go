package avatargen

// The feature enums. The numeric values don't mean anything outside this
// package; they just have to stay stable so a seed keeps producing the same
// face.

type JawShape int

const (
	JawRound JawShape = iota
	JawSquare
	JawPointed
)

type EyeShape int

const (
	EyeDot EyeShape = iota
	EyeRound
	EyeWide
	EyeNarrow
	EyeHappy
	EyeClosed
)

type BrowShape int

const (
	BrowFlat BrowShape = iota
	BrowRaised
	BrowAngry
	BrowThick
)

type NoseShape int

const (
	NoseDot NoseShape = iota
	NoseLine
	NoseWide
)

type MouthShape int

const (
	MouthLine MouthShape = iota
	MouthSmile
	MouthGrin
	MouthFrown
	MouthOpen
	MouthSmirk
)

type HairStyle int

const (
	HairNone HairStyle = iota
	HairBuzz
	HairShort
	HairSpiky
	HairBob
	HairLong
	HairBun
)

type FacialHairKind int

const (
	FacialHairNone FacialHairKind = iota
	FacialHairStubble
	FacialHairMustache
	FacialHairBeard
)

type GlassesKind int

const (
	GlassesNone GlassesKind = iota
	GlassesRound
	GlassesSquare
)

type HatKind int

const (
	HatNone HatKind = iota
	HatBeanie
	HatCap
)

type ClothesStyle int

const (
	ClothesCrew ClothesStyle = iota
	ClothesVNeck
	ClothesCollar
)

// Mood skews the face toward an expression after the base features are
// selected. These string values double as the accepted query-param values.
type Mood string

const (
	MoodNeutral   Mood = "neutral"
	MoodSmile     Mood = "smile"
	MoodWink      Mood = "wink"
	MoodSurprised Mood = "surprised"
	MoodAngry     Mood = "angry"
)

// Gender biases hair / earrings / facial hair toward a presentation. "auto"
// and "androgynous" both leave the selection alone.
type Gender string

const (
	GenderAuto        Gender = "auto"
	GenderAndrogynous Gender = "androgynous"
	GenderMasc        Gender = "masc"
	GenderFem         Gender = "fem"
)

// Features is everything the drawing code needs to know about one avatar.
// It lives for a single generation: selected from the PRNG, nudged by the
// mood and gender passes, then handed to drawAvatar.
type Features struct {
	SkinTone     int
	Jaw          JawShape
	Eyes         EyeShape
	Brows        BrowShape
	Nose         NoseShape
	Mouth        MouthShape
	Hair         HairStyle
	HairColor    int
	FacialHair   FacialHairKind
	Glasses      GlassesKind
	Earrings     bool
	Hat          HatKind
	Clothes      ClothesStyle
	ClothesColor int
}

// SelectFeatures draws one trait after another from the PRNG. The order below
// is a compatibility contract: the generator is stateful, so reordering (or
// adding) a draw here reshuffles every avatar ever generated.
func SelectFeatures(rng *PRNG, pal *Palette) Features {
	var f Features
	f.SkinTone = rng.Int(len(pal.Skin))
	f.Jaw = JawShape(rng.Int(3))
	f.Eyes = EyeShape(rng.Int(6))
	f.Brows = BrowShape(rng.Int(4))
	f.Nose = NoseShape(rng.Int(3))
	f.Mouth = MouthShape(rng.Int(6))
	f.Hair = HairStyle(rng.Int(7))
	f.HairColor = rng.Int(len(pal.Hair))
	if rng.Chance(0.3) {
		f.FacialHair = FacialHairKind(1 + rng.Int(3))
	}
	if rng.Chance(0.25) {
		f.Glasses = GlassesKind(1 + rng.Int(2))
	}
	f.Earrings = rng.Chance(0.15)
	if rng.Chance(0.2) {
		f.Hat = HatKind(1 + rng.Int(2))
	}
	f.Clothes = ClothesStyle(rng.Int(3))
	f.ClothesColor = rng.Int(len(pal.Clothes))
	return f
}

// applyMood overwrites expression features. Where a mood still leaves a
// choice (a smile can be closed-mouth or toothy), the choice comes from the
// PRNG, so it's part of the same deterministic stream.
func applyMood(rng *PRNG, f *Features, mood Mood) {
	switch mood {
	case MoodSmile:
		f.Mouth = pick(rng, []MouthShape{MouthSmile, MouthGrin})
		f.Eyes = pick(rng, []EyeShape{EyeHappy, EyeRound})
	case MoodWink:
		f.Eyes = EyeClosed
		f.Mouth = MouthSmirk
	case MoodSurprised:
		f.Eyes = EyeWide
		f.Brows = BrowRaised
		f.Mouth = MouthOpen
	case MoodAngry:
		f.Brows = BrowAngry
		f.Eyes = EyeNarrow
		f.Mouth = pick(rng, []MouthShape{MouthFrown, MouthLine})
	}
	// neutral (and anything unrecognized) changes nothing
}

var (
	longHairStyles  = []HairStyle{HairBob, HairLong, HairBun}
	shortHairStyles = []HairStyle{HairNone, HairBuzz, HairShort}
)

// applyGender nudges presentation-coded features. auto and androgynous are
// no-ops on purpose.
func applyGender(rng *PRNG, f *Features, gender Gender) {
	switch gender {
	case GenderFem:
		if rng.Chance(0.7) {
			f.Hair = pick(rng, longHairStyles)
		}
		f.Earrings = rng.Chance(0.4)
	case GenderMasc:
		if rng.Chance(0.6) {
			f.Hair = pick(rng, shortHairStyles)
		}
		if rng.Chance(0.5) {
			f.FacialHair = FacialHairKind(1 + rng.Int(3))
		} else {
			f.FacialHair = FacialHairNone
		}
	}
}

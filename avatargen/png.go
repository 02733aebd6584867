package avatargen

import (
	"bytes"
	"encoding/binary"
	"hash/adler32"
	"hash/crc32"
)

// The raster encoder writes the PNG container itself instead of going through
// image/png: an RGBA bitmap, one filter byte per scanline, and an IDAT stream
// of *stored* (uncompressed) deflate blocks. Stored blocks are a valid
// deflate stream, just not a compressed one — these images are a few KB, and
// keeping the whole container in one screenful of code beats shaving them
// down. Chunk CRCs use the standard reflected 0xEDB88320 table, which is
// exactly what hash/crc32's IEEE table is.

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// EncodePNG renders buf as PNG bytes. Each buffer cell becomes a
// pixelSize×pixelSize block where pixelSize = max(1, size/16), so the output
// is pixelSize*16 square — slightly smaller than the requested size when 16
// doesn't divide it. That rounding is deliberate: stretching would blur the
// pixels.
//
// Like EncodeSVG, it always returns a valid image; internal failures degrade
// to a 1×1 transparent placeholder.
func EncodePNG(buf *Buffer, size int, background string, pal *Palette) (out []byte) {
	defer func() {
		if r := recover(); r != nil {
			out = pngPlaceholder()
		}
	}()

	pixelSize := size / BufferSize
	if pixelSize < 1 {
		pixelSize = 1
	}
	dim := pixelSize * BufferSize
	pix := make([]byte, dim*dim*4)

	fillPNGBackground(pix, dim, pixelSize, background)

	for cy := 0; cy < BufferSize; cy++ {
		for cx := 0; cx < BufferSize; cx++ {
			c := buf.Pixel(cx, cy)
			if c < 0 || c >= len(pal.Colors) {
				// Transparent or corrupted cell: leave the background showing
				continue
			}
			r, g, b, ok := parseHexColor(pal.Colors[c])
			if !ok {
				continue
			}
			fillSquare(pix, dim, cx*pixelSize, cy*pixelSize, pixelSize, r, g, b)
		}
	}
	return writePNG(dim, dim, pix)
}

func fillPNGBackground(pix []byte, dim, pixelSize int, background string) {
	switch background {
	case BackgroundTransparent, "":
		return
	case BackgroundPattern:
		lr, lg, lb, _ := parseHexColor(checkerLight)
		dr, dg, db, _ := parseHexColor(checkerDark)
		for y := 0; y < dim; y++ {
			for x := 0; x < dim; x++ {
				i := (y*dim + x) * 4
				if (x/pixelSize+y/pixelSize)%2 == 0 {
					pix[i], pix[i+1], pix[i+2] = lr, lg, lb
				} else {
					pix[i], pix[i+1], pix[i+2] = dr, dg, db
				}
				pix[i+3] = 0xff
			}
		}
	default:
		r, g, b, ok := parseHexColor(background)
		if !ok {
			return
		}
		for i := 0; i < len(pix); i += 4 {
			pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, 0xff
		}
	}
}

func fillSquare(pix []byte, dim, x0, y0, side int, r, g, b uint8) {
	for y := y0; y < y0+side; y++ {
		for x := x0; x < x0+side; x++ {
			i := (y*dim + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, 0xff
		}
	}
}

// pngPlaceholder is the degraded-mode output: a valid 1×1 fully transparent
// PNG. Built through the same writer as everything else, which has no failure
// paths of its own.
func pngPlaceholder() []byte {
	return writePNG(1, 1, []byte{0, 0, 0, 0})
}

// writePNG assembles the container: signature, IHDR (8-bit RGBA, no
// interlacing), one IDAT holding the filtered scanlines, IEND.
func writePNG(w, h int, pix []byte) []byte {
	var out bytes.Buffer
	out.Write(pngSignature)

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(h))
	ihdr[8] = 8  // bit depth
	ihdr[9] = 6  // color type: RGBA
	ihdr[10] = 0 // compression: deflate
	ihdr[11] = 0 // filter method
	ihdr[12] = 0 // no interlacing
	writeChunk(&out, "IHDR", ihdr)

	// One filter byte (0 = None) in front of every scanline
	raw := make([]byte, 0, h*(1+w*4))
	for y := 0; y < h; y++ {
		raw = append(raw, 0)
		raw = append(raw, pix[y*w*4:(y+1)*w*4]...)
	}
	writeChunk(&out, "IDAT", zlibStored(raw))

	writeChunk(&out, "IEND", nil)
	return out.Bytes()
}

func writeChunk(out *bytes.Buffer, typ string, data []byte) {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(data)))
	out.Write(length[:])
	out.WriteString(typ)
	out.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], crc.Sum32())
	out.Write(trailer[:])
}

// zlibStored wraps data in a zlib stream whose deflate payload is stored
// blocks: BFINAL/BTYPE=00 framing, little-endian LEN and its complement, at
// most 65535 bytes per block, then the Adler-32 of the raw data.
func zlibStored(data []byte) []byte {
	var out bytes.Buffer
	// CMF/FLG: 32KB window deflate, no preset dictionary, check bits valid
	out.WriteByte(0x78)
	out.WriteByte(0x01)

	rest := data
	for {
		n := len(rest)
		if n > 0xffff {
			n = 0xffff
		}
		final := byte(0)
		if n == len(rest) {
			final = 1
		}
		out.WriteByte(final)
		out.WriteByte(byte(n))
		out.WriteByte(byte(n >> 8))
		out.WriteByte(byte(^n))
		out.WriteByte(byte(^n >> 8))
		out.Write(rest[:n])
		rest = rest[n:]
		if final == 1 {
			break
		}
	}

	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], adler32.Checksum(data))
	out.Write(trailer[:])
	return out.Bytes()
}

// pngEnd is the fixed final 12 bytes of every PNG this encoder emits (the
// empty IEND chunk plus its CRC). Exposed for tests.
var pngEnd = []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xae, 0x42, 0x60, 0x82}

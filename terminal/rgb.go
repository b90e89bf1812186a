package terminal

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// RGBWhite is full-intensity white
var RGBWhite = RGB{255, 255, 255}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Blend mixes src over c with the given alpha in [0, 1]
// Alpha 0 and 1 short-circuit to avoid the per-channel math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
	ColorModeMono                       // attributes only, no color sequences
)

// Color cube values for the 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to the nearest cube level, pre-computed at init
var cubeIndex [256]uint8

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := absInt(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := absInt(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Index256 returns the nearest xterm-256 palette index for an RGB value
func Index256(c RGB) uint8 {
	// Grayscale ramp wins when the channels are close together
	if nearGray(c) {
		avg := (int(c.R) + int(c.G) + int(c.B)) / 3
		if avg < 4 {
			return 16 // palette black
		}
		if avg > 246 {
			return 231 // palette white
		}
		gray := (avg - 8) / 10
		if gray > 23 {
			gray = 23
		}
		return uint8(grayscaleStart + gray)
	}

	ri := cubeIndex[c.R]
	gi := cubeIndex[c.G]
	bi := cubeIndex[c.B]
	return 16 + 36*ri + 6*gi + bi
}

// nearGray reports whether all channels are within the grayscale tolerance
func nearGray(c RGB) bool {
	const tolerance = 12
	return absInt(int(c.R)-int(c.G)) < tolerance &&
		absInt(int(c.G)-int(c.B)) < tolerance &&
		absInt(int(c.R)-int(c.B)) < tolerance
}

// Package charmap provides the character sets used to map pixel luminance
// to text. Sets range from a 10-character ASCII ramp to Unicode block and
// braille ramps; all are ordered from darkest to brightest.
package charmap

// Character set source strings. Index positions match the CLI's
// --char-map flag values.
const (
	// Basic ASCII character set (10 characters)
	CharsBasic = " .:-=+*#%@"

	// Extended ASCII character set (67 characters)
	CharsExtended = ` .'` + "`" + `^",:;Il!i~+_-?][}{1)(|/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$`

	// Full ASCII character set (92 characters)
	CharsFull = " `.-':_,^=;><+!rc*/z?sLTv)J7(|Fi{C}fI31tlu[neoZ5Yxjya]2ESwqkP6h9d4VpOGbUAKXHm8RD#$Bg0MNWQ%&@"

	// Block characters (Unicode)
	CharsBlocks = " ░▒▓█"

	// Braille ramp
	CharsBraille = " ⠁⠃⠇⠏⠟⠿⣿"

	// Dot characters
	CharsDots = " ·∶⁚⁛⁜⁝⁞ ⣿"

	// Gradient blocks
	CharsGradient = " ▁▂▃▄▅▆▇█"

	// Binary black/white
	CharsBinary = " █"

	// Binary dots
	CharsBinaryDots = " ⣿"

	// Pictograph style
	CharsEmoji = " ·•○●"
)

var maps = [][]rune{
	[]rune(CharsBasic),
	[]rune(CharsExtended),
	[]rune(CharsFull),
	[]rune(CharsBlocks),
	[]rune(CharsBraille),
	[]rune(CharsDots),
	[]rune(CharsGradient),
	[]rune(CharsBinary),
	[]rune(CharsBinaryDots),
	[]rune(CharsEmoji),
}

var names = []string{
	"Basic ASCII (10 chars)",
	"Extended ASCII (67 chars)",
	"Full ASCII (92 chars)",
	"Unicode Blocks",
	"Braille Characters",
	"Dot Characters",
	"Gradient Blocks",
	"Binary (Black/White)",
	"Binary Dots",
	"Emoji Style",
}

// Count returns the number of available character maps.
func Count() int {
	return len(maps)
}

// Get returns the character map at the given index. Out-of-range indexes
// wrap around rather than fail.
func Get(index int) []rune {
	if index < 0 {
		index = -index
	}
	return maps[index%len(maps)]
}

// Name returns the human-readable name of the map at the given index.
func Name(index int) string {
	if index < 0 {
		index = -index
	}
	return names[index%len(names)]
}

// FromLuminance maps a luminance value (0-255) onto a character of the
// given map, darkest first.
func FromLuminance(lum uint8, m []rune) rune {
	if len(m) == 0 {
		return ' '
	}
	index := int(lum) * len(m) / 256
	if index > len(m)-1 {
		index = len(m) - 1
	}
	return m[index]
}

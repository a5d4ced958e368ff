package inputmodule

// Glyphs are drawn with '#' for a lit and '.' for a dark LED.

var font = map[rune]Glyph{
	'0': glyph(
		".##..",
		"#..#.",
		"#..#.",
		"#..#.",
		"#..#.",
		".##..",
	),
	'1': glyph(
		"..#..",
		".##..",
		"#.#..",
		"..#..",
		"..#..",
		"#####",
	),
	'2': glyph(
		"####.",
		"....#",
		"#####",
		"#....",
		"#....",
		"#####",
	),
	'3': glyph(
		"####.",
		"....#",
		"#####",
		"....#",
		"....#",
		"####.",
	),
	'4': glyph(
		"...#.",
		"..##.",
		".#.#.",
		"#####",
		"...#.",
		"...#.",
	),
	'5': glyph(
		"#####",
		"#....",
		"#####",
		"....#",
		"....#",
		"####.",
	),
	'6': glyph(
		".###.",
		"#....",
		"#####",
		"#...#",
		"#...#",
		".###.",
	),
	'7': glyph(
		"#####",
		"....#",
		"...#.",
		"..#..",
		"..#..",
		"..#..",
	),
	'8': glyph(
		".###.",
		"#...#",
		".###.",
		"#...#",
		"#...#",
		".###.",
	),
	'9': glyph(
		".###.",
		"#...#",
		"#####",
		"....#",
		"....#",
		".###.",
	),
	':': glyph(
		".....",
		".....",
		"..#..",
		".....",
		"..#..",
		".....",
	),
	' ': glyph(
		".....",
		".....",
		".....",
		".....",
		".....",
		".....",
	),
	'?': glyph(
		".##..",
		"...#.",
		"...#.",
		"..#..",
		".....",
		"..#..",
	),
	'.': glyph(
		".....",
		".....",
		".....",
		"..#..",
		".....",
		".....",
	),
	',': glyph(
		".....",
		".....",
		".....",
		"..#..",
		".....",
		".....",
	),
	'!': glyph(
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".....",
		"..#..",
	),
	'/': glyph(
		"....#",
		"...##",
		"..##.",
		".##..",
		"##...",
		"#....",
	),
	'*': glyph(
		".....",
		".#.#.",
		"..#..",
		".#.#.",
		".....",
		".....",
	),
	'%': glyph(
		"##..#",
		"##.##",
		"..##.",
		".##..",
		"##.##",
		"#..##",
	),
	'+': glyph(
		"..#..",
		"..#..",
		"#####",
		"..#..",
		"..#..",
		".....",
	),
	'-': glyph(
		".....",
		".....",
		"#####",
		".....",
		".....",
		".....",
	),
	'=': glyph(
		".....",
		"#####",
		".....",
		"#####",
		".....",
		".....",
	),
	'A': glyph(
		".###.",
		"#...#",
		"#####",
		"#...#",
		"#...#",
		"#...#",
	),
	'B': glyph(
		"####.",
		"#...#",
		"####.",
		"#...#",
		"#...#",
		"####.",
	),
	'C': glyph(
		"#####",
		"#....",
		"#....",
		"#....",
		"#....",
		"#####",
	),
	'D': glyph(
		"####.",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"####.",
	),
	'E': glyph(
		"#####",
		"#....",
		"#####",
		"#....",
		"#....",
		"#####",
	),
	'F': glyph(
		"#####",
		"#....",
		"#####",
		"#....",
		"#....",
		"#....",
	),
	'G': glyph(
		".###.",
		"#....",
		"#.###",
		"#...#",
		"#...#",
		".###.",
	),
	'H': glyph(
		"#...#",
		"#...#",
		"#####",
		"#...#",
		"#...#",
		"#...#",
	),
	'I': glyph(
		".###.",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".###.",
	),
	'J': glyph(
		".####",
		"....#",
		"....#",
		"....#",
		".#..#",
		"..##.",
	),
	'K': glyph(
		"#..#.",
		"#.#..",
		"##...",
		"#.#..",
		"#..#.",
		"#...#",
	),
	'L': glyph(
		"#....",
		"#....",
		"#....",
		"#....",
		"#....",
		"#####",
	),
	'M': glyph(
		".....",
		".#.#.",
		"#.#.#",
		"#.#.#",
		"#.#.#",
		"#.#.#",
	),
	'N': glyph(
		"#...#",
		"##..#",
		"#.#.#",
		"#.#.#",
		"#.#.#",
		"#..##",
	),
	'O': glyph(
		".###.",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".###.",
	),
	'P': glyph(
		"###..",
		"#..#.",
		"#..#.",
		"###..",
		"#....",
		"#....",
	),
	'Q': glyph(
		".###.",
		"#...#",
		"#...#",
		"#.#.#",
		"#..#.",
		".##.#",
	),
	'R': glyph(
		"####.",
		"#..#.",
		"####.",
		"##...",
		"#.#..",
		"#..#.",
	),
	'S': glyph(
		"#####",
		"#....",
		".###.",
		"....#",
		"....#",
		"####.",
	),
	'T': glyph(
		"#####",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	),
	'U': glyph(
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	),
	'V': glyph(
		"#...#",
		"#...#",
		".#.##",
		".#.##",
		"..#..",
		"..#..",
	),
	'W': glyph(
		"#...#",
		"#...#",
		"#.#.#",
		"#.#.#",
		".#.#.",
		".#.#.",
	),
	'Y': glyph(
		"#...#",
		"#...#",
		".#.#.",
		".#.#.",
		"..#..",
		"..#..",
	),
	'Z': glyph(
		"#####",
		"...#.",
		"..#..",
		".#...",
		"#....",
		"#####",
	),
}

var symbols = map[string]Glyph{
	"degC": glyph(
		"##...",
		"##...",
		"..###",
		"..#..",
		"..#..",
		"..###",
	),
	"degF": glyph(
		"##...",
		"##...",
		"..###",
		"..#..",
		"..###",
		"..#..",
	),
	"snow": glyph(
		".....",
		"#.#.#",
		".###.",
		"#####",
		".###.",
		"#.#.#",
	),
	"sun": glyph(
		".....",
		".###.",
		"#####",
		"#####",
		"#####",
		".###.",
	),
	"cloud": glyph(
		".....",
		".###.",
		"#####",
		"#####",
		".....",
		".....",
	),
	"rain": glyph(
		".###.",
		"#####",
		"#####",
		".#..#",
		"..#..",
		"#..#.",
	),
	"thunder": glyph(
		".###.",
		"#####",
		"#####",
		"..#..",
		".#...",
		"..#..",
	),
	"batteryLow": glyph(
		".....",
		".....",
		"####.",
		"#..##",
		"#..##",
		"####.",
	),
	"!!": glyph(
		".#.#.",
		".#.#.",
		".#.#.",
		".....",
		".#.#.",
		".#.#.",
	),
	"heart": glyph(
		".....",
		"##.##",
		"#####",
		".###.",
		"..#..",
		".....",
	),
	"heart0": glyph(
		"##.##",
		"#####",
		".###.",
		"..#..",
		".....",
		".....",
	),
	"heart2": glyph(
		".....",
		".....",
		"##.##",
		"#####",
		".###.",
		"..#..",
	),
	":)": glyph(
		".....",
		".#.#.",
		".....",
		".....",
		"#...#",
		".###.",
	),
	":|": glyph(
		".....",
		".#.#.",
		".....",
		".....",
		"#####",
		".....",
	),
	":(": glyph(
		".....",
		".#.#.",
		".....",
		".....",
		".###.",
		"#...#",
	),
	";)": glyph(
		".....",
		"##.#.",
		".....",
		".....",
		"#...#",
		".###.",
	),
}

// symbolOrder is the order symbols are listed in.
var symbolOrder = []string{"degC", "degF", "snow", "sun", "cloud", "rain", "thunder", "batteryLow", "!!", "heart", "heart0", "heart2", ":)", ":|", ":(", ";)"}

package color

// namedColors covers the CSS named colors that actually show up in theme
// files. Keys are lowercase.
var namedColors = map[string]Value{
	"black":       New(0x00, 0x00, 0x00),
	"white":       New(0xff, 0xff, 0xff),
	"red":         New(0xff, 0x00, 0x00),
	"green":       New(0x00, 0x80, 0x00),
	"lime":        New(0x00, 0xff, 0x00),
	"blue":        New(0x00, 0x00, 0xff),
	"yellow":      New(0xff, 0xff, 0x00),
	"cyan":        New(0x00, 0xff, 0xff),
	"aqua":        New(0x00, 0xff, 0xff),
	"magenta":     New(0xff, 0x00, 0xff),
	"fuchsia":     New(0xff, 0x00, 0xff),
	"gray":        New(0x80, 0x80, 0x80),
	"grey":        New(0x80, 0x80, 0x80),
	"silver":      New(0xc0, 0xc0, 0xc0),
	"maroon":      New(0x80, 0x00, 0x00),
	"olive":       New(0x80, 0x80, 0x00),
	"navy":        New(0x00, 0x00, 0x80),
	"purple":      New(0x80, 0x00, 0x80),
	"teal":        New(0x00, 0x80, 0x80),
	"orange":      New(0xff, 0xa5, 0x00),
	"brown":       New(0xa5, 0x2a, 0x2a),
	"pink":        New(0xff, 0xc0, 0xcb),
	"gold":        New(0xff, 0xd7, 0x00),
	"indigo":      New(0x4b, 0x00, 0x82),
	"violet":      New(0xee, 0x82, 0xee),
	"darkgray":    New(0xa9, 0xa9, 0xa9),
	"darkgrey":    New(0xa9, 0xa9, 0xa9),
	"lightgray":   New(0xd3, 0xd3, 0xd3),
	"lightgrey":   New(0xd3, 0xd3, 0xd3),
	"dimgray":     New(0x69, 0x69, 0x69),
	"dimgrey":     New(0x69, 0x69, 0x69),
	"whitesmoke":  New(0xf5, 0xf5, 0xf5),
	"crimson":     New(0xdc, 0x14, 0x3c),
	"tomato":      New(0xff, 0x63, 0x47),
	"slategray":   New(0x70, 0x80, 0x90),
	"slategrey":   New(0x70, 0x80, 0x90),
	"transparent": {R: 0, G: 0, B: 0, A: 0},
}

// Package palette defines the color palettes backing the built-in themes.
package palette

// RGB is a 24-bit terminal color.
type RGB struct {
	R, G, B uint8
}

// Palette holds the semantic colors of a prose theme. CodeBg and QuoteBg are
// optional; a zero value means the theme does not define one and the renderer
// derives or substitutes a fallback.
type Palette struct {
	Text          RGB
	Heading       [6]RGB
	Emphasis      RGB
	Strong        RGB
	CodeInline    RGB
	CodeBg        RGB
	Quote         RGB
	QuoteBg       RGB
	ListMarker    RGB
	Link          RGB
	LinkURL       RGB
	ThematicBreak RGB
	Light         bool
}

// Default is a neutral dark palette usable on any dark background.
var Default = Palette{
	Text:          RGB{0xd8, 0xd8, 0xd8},
	Heading:       [6]RGB{{0x7a, 0xa2, 0xf7}, {0x7d, 0xcf, 0xff}, {0x9e, 0xce, 0x6a}, {0xe0, 0xaf, 0x68}, {0xbb, 0x9a, 0xf7}, {0x8a, 0x92, 0xa8}},
	Emphasis:      RGB{0xe0, 0xc0, 0x80},
	Strong:        RGB{0xf0, 0xf0, 0xf0},
	CodeInline:    RGB{0xff, 0x9e, 0x64},
	CodeBg:        RGB{0x2a, 0x2a, 0x2a},
	Quote:         RGB{0x56, 0x5f, 0x89},
	ListMarker:    RGB{0x7a, 0xa2, 0xf7},
	Link:          RGB{0x2a, 0xc3, 0xde},
	LinkURL:       RGB{0x56, 0x5f, 0x89},
	ThematicBreak: RGB{0x56, 0x5f, 0x89},
}

// DefaultLight mirrors Default for light backgrounds.
var DefaultLight = Palette{
	Text:          RGB{0x2e, 0x32, 0x38},
	Heading:       [6]RGB{{0x1a, 0x56, 0xdb}, {0x00, 0x74, 0xa8}, {0x3f, 0x76, 0x1c}, {0xa0, 0x64, 0x00}, {0x6e, 0x3f, 0xc0}, {0x5c, 0x66, 0x70}},
	Emphasis:      RGB{0x8a, 0x5a, 0x00},
	Strong:        RGB{0x1a, 0x1a, 0x1a},
	CodeInline:    RGB{0xc2, 0x41, 0x0c},
	CodeBg:        RGB{0xef, 0xef, 0xef},
	Quote:         RGB{0x6b, 0x72, 0x80},
	ListMarker:    RGB{0x1a, 0x56, 0xdb},
	Link:          RGB{0x0b, 0x63, 0xce},
	LinkURL:       RGB{0x6b, 0x72, 0x80},
	ThematicBreak: RGB{0x9c, 0xa3, 0xaf},
	Light:         true,
}

var Dracula = Palette{
	Text:          RGB{0xf8, 0xf8, 0xf2},
	Heading:       [6]RGB{{0xbd, 0x93, 0xf9}, {0xff, 0x79, 0xc6}, {0x8b, 0xe9, 0xfd}, {0x50, 0xfa, 0x7b}, {0xf1, 0xfa, 0x8c}, {0x62, 0x72, 0xa4}},
	Emphasis:      RGB{0xf1, 0xfa, 0x8c},
	Strong:        RGB{0xff, 0xb8, 0x6c},
	CodeInline:    RGB{0x50, 0xfa, 0x7b},
	CodeBg:        RGB{0x28, 0x2a, 0x36},
	Quote:         RGB{0x62, 0x72, 0xa4},
	ListMarker:    RGB{0xff, 0x79, 0xc6},
	Link:          RGB{0x8b, 0xe9, 0xfd},
	LinkURL:       RGB{0x62, 0x72, 0xa4},
	ThematicBreak: RGB{0x44, 0x47, 0x5a},
}

var Nord = Palette{
	Text:          RGB{0xd8, 0xde, 0xe9},
	Heading:       [6]RGB{{0x88, 0xc0, 0xd0}, {0x81, 0xa1, 0xc1}, {0x8f, 0xbc, 0xbb}, {0xa3, 0xbe, 0x8c}, {0xb4, 0x8e, 0xad}, {0x4c, 0x56, 0x6a}},
	Emphasis:      RGB{0xeb, 0xcb, 0x8b},
	Strong:        RGB{0xec, 0xef, 0xf4},
	CodeInline:    RGB{0xd0, 0x87, 0x70},
	CodeBg:        RGB{0x2e, 0x34, 0x40},
	Quote:         RGB{0x4c, 0x56, 0x6a},
	ListMarker:    RGB{0x81, 0xa1, 0xc1},
	Link:          RGB{0x88, 0xc0, 0xd0},
	LinkURL:       RGB{0x4c, 0x56, 0x6a},
	ThematicBreak: RGB{0x43, 0x4c, 0x5e},
}

var GruvboxDark = Palette{
	Text:          RGB{0xeb, 0xdb, 0xb2},
	Heading:       [6]RGB{{0xfa, 0xbd, 0x2f}, {0xfe, 0x80, 0x19}, {0xb8, 0xbb, 0x26}, {0x83, 0xa5, 0x98}, {0xd3, 0x86, 0x9b}, {0x92, 0x83, 0x74}},
	Emphasis:      RGB{0xfa, 0xbd, 0x2f},
	Strong:        RGB{0xfb, 0xf1, 0xc7},
	CodeInline:    RGB{0x8e, 0xc0, 0x7c},
	CodeBg:        RGB{0x3c, 0x38, 0x36},
	Quote:         RGB{0x92, 0x83, 0x74},
	ListMarker:    RGB{0xfe, 0x80, 0x19},
	Link:          RGB{0x83, 0xa5, 0x98},
	LinkURL:       RGB{0x92, 0x83, 0x74},
	ThematicBreak: RGB{0x50, 0x49, 0x45},
}

var GruvboxLight = Palette{
	Text:          RGB{0x3c, 0x38, 0x36},
	Heading:       [6]RGB{{0xb5, 0x76, 0x14}, {0xaf, 0x3a, 0x03}, {0x79, 0x74, 0x0e}, {0x07, 0x66, 0x78}, {0x8f, 0x3f, 0x71}, {0x7c, 0x6f, 0x64}},
	Emphasis:      RGB{0xb5, 0x76, 0x14},
	Strong:        RGB{0x28, 0x28, 0x28},
	CodeInline:    RGB{0x42, 0x7b, 0x58},
	CodeBg:        RGB{0xeb, 0xdb, 0xb2},
	Quote:         RGB{0x7c, 0x6f, 0x64},
	ListMarker:    RGB{0xaf, 0x3a, 0x03},
	Link:          RGB{0x07, 0x66, 0x78},
	LinkURL:       RGB{0x7c, 0x6f, 0x64},
	ThematicBreak: RGB{0xd5, 0xc4, 0xa1},
	Light:         true,
}

var SolarizedDark = Palette{
	Text:          RGB{0x93, 0xa1, 0xa1},
	Heading:       [6]RGB{{0x26, 0x8b, 0xd2}, {0x2a, 0xa1, 0x98}, {0x85, 0x99, 0x00}, {0xb5, 0x89, 0x00}, {0x6c, 0x71, 0xc4}, {0x58, 0x6e, 0x75}},
	Emphasis:      RGB{0xb5, 0x89, 0x00},
	Strong:        RGB{0xee, 0xe8, 0xd5},
	CodeInline:    RGB{0x2a, 0xa1, 0x98},
	CodeBg:        RGB{0x07, 0x36, 0x42},
	Quote:         RGB{0x58, 0x6e, 0x75},
	ListMarker:    RGB{0x26, 0x8b, 0xd2},
	Link:          RGB{0x26, 0x8b, 0xd2},
	LinkURL:       RGB{0x58, 0x6e, 0x75},
	ThematicBreak: RGB{0x58, 0x6e, 0x75},
}

var SolarizedLight = Palette{
	Text:          RGB{0x58, 0x6e, 0x75},
	Heading:       [6]RGB{{0x26, 0x8b, 0xd2}, {0x2a, 0xa1, 0x98}, {0x85, 0x99, 0x00}, {0xb5, 0x89, 0x00}, {0x6c, 0x71, 0xc4}, {0x93, 0xa1, 0xa1}},
	Emphasis:      RGB{0xb5, 0x89, 0x00},
	Strong:        RGB{0x07, 0x36, 0x42},
	CodeInline:    RGB{0x2a, 0xa1, 0x98},
	CodeBg:        RGB{0xee, 0xe8, 0xd5},
	Quote:         RGB{0x93, 0xa1, 0xa1},
	ListMarker:    RGB{0x26, 0x8b, 0xd2},
	Link:          RGB{0x26, 0x8b, 0xd2},
	LinkURL:       RGB{0x93, 0xa1, 0xa1},
	ThematicBreak: RGB{0x93, 0xa1, 0xa1},
	Light:         true,
}

var GithubDark = Palette{
	Text:          RGB{0xe6, 0xed, 0xf3},
	Heading:       [6]RGB{{0x58, 0xa6, 0xff}, {0x79, 0xc0, 0xff}, {0x56, 0xd3, 0x64}, {0xe3, 0xb3, 0x41}, {0xbc, 0x8c, 0xff}, {0x8b, 0x94, 0x9e}},
	Emphasis:      RGB{0xe3, 0xb3, 0x41},
	Strong:        RGB{0xff, 0xff, 0xff},
	CodeInline:    RGB{0x79, 0xc0, 0xff},
	CodeBg:        RGB{0x16, 0x1b, 0x22},
	Quote:         RGB{0x8b, 0x94, 0x9e},
	ListMarker:    RGB{0x58, 0xa6, 0xff},
	Link:          RGB{0x58, 0xa6, 0xff},
	LinkURL:       RGB{0x8b, 0x94, 0x9e},
	ThematicBreak: RGB{0x30, 0x36, 0x3d},
}

var GithubLight = Palette{
	Text:          RGB{0x1f, 0x23, 0x28},
	Heading:       [6]RGB{{0x05, 0x50, 0xae}, {0x03, 0x66, 0xd6}, {0x22, 0x86, 0x3a}, {0x95, 0x60, 0x08}, {0x6f, 0x42, 0xc1}, {0x6a, 0x73, 0x7d}},
	Emphasis:      RGB{0x95, 0x60, 0x08},
	Strong:        RGB{0x05, 0x09, 0x0e},
	CodeInline:    RGB{0x03, 0x66, 0xd6},
	CodeBg:        RGB{0xf6, 0xf8, 0xfa},
	Quote:         RGB{0x6a, 0x73, 0x7d},
	ListMarker:    RGB{0x03, 0x66, 0xd6},
	Link:          RGB{0x03, 0x66, 0xd6},
	LinkURL:       RGB{0x6a, 0x73, 0x7d},
	ThematicBreak: RGB{0xd0, 0xd7, 0xde},
	Light:         true,
}

var TokyoNight = Palette{
	Text:          RGB{0xc0, 0xca, 0xf5},
	Heading:       [6]RGB{{0x7a, 0xa2, 0xf7}, {0x7d, 0xcf, 0xff}, {0x9e, 0xce, 0x6a}, {0xe0, 0xaf, 0x68}, {0xbb, 0x9a, 0xf7}, {0x56, 0x5f, 0x89}},
	Emphasis:      RGB{0xe0, 0xaf, 0x68},
	Strong:        RGB{0xc0, 0xca, 0xf5},
	CodeInline:    RGB{0xff, 0x9e, 0x64},
	CodeBg:        RGB{0x1f, 0x23, 0x35},
	Quote:         RGB{0x56, 0x5f, 0x89},
	ListMarker:    RGB{0x7a, 0xa2, 0xf7},
	Link:          RGB{0x2a, 0xc3, 0xde},
	LinkURL:       RGB{0x56, 0x5f, 0x89},
	ThematicBreak: RGB{0x3b, 0x42, 0x61},
}

var CatppuccinMocha = Palette{
	Text:          RGB{0xcd, 0xd6, 0xf4},
	Heading:       [6]RGB{{0xcb, 0xa6, 0xf7}, {0xf5, 0xc2, 0xe7}, {0x89, 0xb4, 0xfa}, {0x94, 0xe2, 0xd5}, {0xa6, 0xe3, 0xa1}, {0x6c, 0x70, 0x86}},
	Emphasis:      RGB{0xf9, 0xe2, 0xaf},
	Strong:        RGB{0xf5, 0xe0, 0xdc},
	CodeInline:    RGB{0xa6, 0xe3, 0xa1},
	CodeBg:        RGB{0x31, 0x32, 0x44},
	Quote:         RGB{0x6c, 0x70, 0x86},
	ListMarker:    RGB{0x89, 0xb4, 0xfa},
	Link:          RGB{0x89, 0xdc, 0xeb},
	LinkURL:       RGB{0x6c, 0x70, 0x86},
	ThematicBreak: RGB{0x45, 0x47, 0x5a},
}

var OneDark = Palette{
	Text:          RGB{0xab, 0xb2, 0xbf},
	Heading:       [6]RGB{{0x61, 0xaf, 0xef}, {0xc6, 0x78, 0xdd}, {0x98, 0xc3, 0x79}, {0xe5, 0xc0, 0x7b}, {0xe0, 0x6c, 0x75}, {0x5c, 0x63, 0x70}},
	Emphasis:      RGB{0xe5, 0xc0, 0x7b},
	Strong:        RGB{0xdc, 0xdf, 0xe4},
	CodeInline:    RGB{0x98, 0xc3, 0x79},
	CodeBg:        RGB{0x2c, 0x31, 0x3a},
	Quote:         RGB{0x5c, 0x63, 0x70},
	ListMarker:    RGB{0x61, 0xaf, 0xef},
	Link:          RGB{0x61, 0xaf, 0xef},
	LinkURL:       RGB{0x5c, 0x63, 0x70},
	ThematicBreak: RGB{0x3e, 0x44, 0x51},
}

var OneLight = Palette{
	Text:          RGB{0x38, 0x3a, 0x42},
	Heading:       [6]RGB{{0x40, 0x78, 0xf2}, {0xa6, 0x26, 0xa4}, {0x50, 0xa1, 0x4f}, {0x98, 0x67, 0x01}, {0xe4, 0x56, 0x49}, {0xa0, 0xa1, 0xa7}},
	Emphasis:      RGB{0x98, 0x67, 0x01},
	Strong:        RGB{0x1d, 0x1f, 0x23},
	CodeInline:    RGB{0x50, 0xa1, 0x4f},
	CodeBg:        RGB{0xf0, 0xf0, 0xf1},
	Quote:         RGB{0xa0, 0xa1, 0xa7},
	ListMarker:    RGB{0x40, 0x78, 0xf2},
	Link:          RGB{0x40, 0x78, 0xf2},
	LinkURL:       RGB{0xa0, 0xa1, 0xa7},
	ThematicBreak: RGB{0xd4, 0xd4, 0xd6},
	Light:         true,
}

var Everforest = Palette{
	Text:          RGB{0xd3, 0xc6, 0xaa},
	Heading:       [6]RGB{{0xa7, 0xc0, 0x80}, {0x83, 0xc0, 0x92}, {0x7f, 0xbb, 0xb3}, {0xdb, 0xbc, 0x7f}, {0xd6, 0x99, 0xb6}, {0x85, 0x92, 0x89}},
	Emphasis:      RGB{0xdb, 0xbc, 0x7f},
	Strong:        RGB{0xfd, 0xf6, 0xe3},
	CodeInline:    RGB{0x83, 0xc0, 0x92},
	CodeBg:        RGB{0x37, 0x3f, 0x38},
	Quote:         RGB{0x85, 0x92, 0x89},
	ListMarker:    RGB{0xa7, 0xc0, 0x80},
	Link:          RGB{0x7f, 0xbb, 0xb3},
	LinkURL:       RGB{0x85, 0x92, 0x89},
	ThematicBreak: RGB{0x4f, 0x5b, 0x58},
}

var RosePine = Palette{
	Text:          RGB{0xe0, 0xde, 0xf4},
	Heading:       [6]RGB{{0xc4, 0xa7, 0xe7}, {0xeb, 0xbc, 0xba}, {0x9c, 0xcf, 0xd8}, {0xf6, 0xc1, 0x77}, {0xeb, 0x6f, 0x92}, {0x6e, 0x6a, 0x86}},
	Emphasis:      RGB{0xf6, 0xc1, 0x77},
	Strong:        RGB{0xe0, 0xde, 0xf4},
	CodeInline:    RGB{0x9c, 0xcf, 0xd8},
	CodeBg:        RGB{0x26, 0x23, 0x3a},
	Quote:         RGB{0x6e, 0x6a, 0x86},
	ListMarker:    RGB{0xc4, 0xa7, 0xe7},
	Link:          RGB{0x31, 0x74, 0x8f},
	LinkURL:       RGB{0x6e, 0x6a, 0x86},
	ThematicBreak: RGB{0x40, 0x3d, 0x52},
}

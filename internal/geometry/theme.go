package geometry

import (
	"fmt"
	"image/color"
	"strings"
)

// Theme holds the board palette.
type Theme struct {
	Name       string
	Light      color.RGBA
	Dark       color.RGBA
	Background color.RGBA
	Hole       color.RGBA
	Grid       color.RGBA
	Selected   color.RGBA
	Legal      color.RGBA
}

// Themes lists the available palettes. The first entry is the default.
var Themes = []Theme{
	{
		Name:       "light",
		Light:      color.RGBA{0xf0, 0xd9, 0xb5, 0xff},
		Dark:       color.RGBA{0xb5, 0x88, 0x63, 0xff},
		Background: color.RGBA{0xf5, 0xf5, 0xf5, 0xff},
		Hole:       color.RGBA{0xe5, 0xe5, 0xe5, 0xff},
		Grid:       color.RGBA{0x8b, 0x73, 0x55, 0xff},
		Selected:   color.RGBA{255, 255, 0, 153},
		Legal:      color.RGBA{0, 255, 0, 128},
	},
	{
		Name:       "dark",
		Light:      color.RGBA{0xee, 0xee, 0xd2, 0xff},
		Dark:       color.RGBA{0x76, 0x96, 0x56, 0xff},
		Background: color.RGBA{0x26, 0x24, 0x21, 0xff},
		Hole:       color.RGBA{0x1a, 0x19, 0x17, 0xff},
		Grid:       color.RGBA{0x4a, 0x5a, 0x4a, 0xff},
		Selected:   color.RGBA{255, 255, 0, 153},
		Legal:      color.RGBA{0, 255, 0, 128},
	},
	{
		Name:       "chesscom",
		Light:      color.RGBA{0xf0, 0xd9, 0xb5, 0xff},
		Dark:       color.RGBA{0xb5, 0x88, 0x63, 0xff},
		Background: color.RGBA{0x31, 0x2e, 0x2b, 0xff},
		Hole:       color.RGBA{0x26, 0x24, 0x21, 0xff},
		Grid:       color.RGBA{0x8b, 0x73, 0x55, 0xff},
		Selected:   color.RGBA{255, 255, 0, 179},
		Legal:      color.RGBA{125, 199, 111, 204},
	},
}

// ThemeByName looks up a palette, ignoring case.
func ThemeByName(name string) (Theme, error) {
	for _, t := range Themes {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Themes[0], fmt.Errorf("unknown theme %q", name)
}

// NextTheme returns the palette after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// SquareColor returns the fill of a square in this palette.
func (t Theme) SquareColor(light bool) color.RGBA {
	if light {
		return t.Light
	}
	return t.Dark
}

// IsDark reports whether text on the background should be light.
func (t Theme) IsDark() bool {
	bg := t.Background
	return int(bg.R)+int(bg.G)+int(bg.B) < 3*128
}

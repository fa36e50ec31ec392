package theme

import "github.com/vovakirdan/tui-snake/internal/core"

func init() {
	Register(Theme{
		Name:  "classic",
		Title: "Classic",
		Palette: map[core.Color]string{
			core.ColorBorder:    "245",
			core.ColorSnakeBody: "#289614",
			core.ColorSnakeHead: "15",
			core.ColorApple:     "9",
			core.ColorText:      "7",
			core.ColorMuted:     "245",
			core.ColorHighlight: "11",
		},
	})
	Register(Theme{
		Name:  "mono",
		Title: "Monochrome",
		Palette: map[core.Color]string{
			core.ColorBorder:    "250",
			core.ColorSnakeBody: "250",
			core.ColorSnakeHead: "15",
			core.ColorApple:     "15",
			core.ColorText:      "252",
			core.ColorMuted:     "243",
			core.ColorHighlight: "15",
		},
	})
	Register(Theme{
		Name:  "ocean",
		Title: "Ocean",
		Palette: map[core.Color]string{
			core.ColorBorder:    "24",
			core.ColorSnakeBody: "38",
			core.ColorSnakeHead: "51",
			core.ColorApple:     "208",
			core.ColorText:      "153",
			core.ColorMuted:     "67",
			core.ColorHighlight: "51",
		},
	})
	Register(Theme{
		Name:  "sunset",
		Title: "Sunset",
		Palette: map[core.Color]string{
			core.ColorBorder:    "95",
			core.ColorSnakeBody: "214",
			core.ColorSnakeHead: "226",
			core.ColorApple:     "161",
			core.ColorText:      "223",
			core.ColorMuted:     "138",
			core.ColorHighlight: "226",
		},
	})
}

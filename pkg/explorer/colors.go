package explorer

import (
	"path"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var fileColors = map[string]tcell.Color{
	"go":   tcell.ColorAqua,
	"py":   tcell.ColorLightGreen,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"json": tcell.ColorGold,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"txt":  tcell.ColorWhite,
	"csv":  tcell.ColorLightGreen,
	"log":  tcell.ColorRosyBrown,
	"sh":   tcell.ColorGreen,
	"jpg":  tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
}

func GetColorByFileExt(name string) tcell.Color {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if color, ok := fileColors[ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}

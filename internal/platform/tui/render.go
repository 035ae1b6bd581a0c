package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetrisus/internal/core"
)

// palette maps core.Color to ANSI color codes. Pieces use the 16 base
// colors so they follow the terminal theme; orange and gray need 256 colors.
var palette = map[core.Color]string{
	core.ColorCyan:    "14",
	core.ColorMagenta: "5",
	core.ColorYellow:  "11",
	core.ColorGreen:   "10",
	core.ColorRed:     "1",
	core.ColorBlue:    "4",
	core.ColorOrange:  "208",
	core.ColorWhite:   "15",
	core.ColorGray:    "245",
	core.ColorAlert:   "9",
}

var (
	colorStyles = buildStyles()
	titleStyle  = styleFor(core.ColorMagenta).Bold(true)
)

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// styleFor returns the style for a color, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of same-colored cells share one style, and trailing blanks of each
// row are dropped to keep remote sessions light.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		end := s.Width()
		for end > 0 {
			c := s.GetCell(end-1, y)
			if c.Rune != ' ' || c.Color != core.ColorDefault {
				break
			}
			end--
		}

		x := 0
		for x < end {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < end {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubescan"
)

// faceletStyles renders each face letter on a terminal color close to the
// sticker color.
var faceletStyles = map[byte]lipgloss.Style{
	'U': lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")), // white
	'R': lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")), // red
	'F': lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("255")),  // green
	'D': lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("232")), // yellow
	'L': lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("232")), // orange
	'B': lipgloss.NewStyle().Background(lipgloss.Color("20")).Foreground(lipgloss.Color("255")),  // blue
}

// faceRow renders one row of one face from a facelet string.
func faceRow(facecube string, face cubescan.Color, row int) string {
	var b strings.Builder
	base := int(face)*9 + row*3
	for i := 0; i < 3; i++ {
		ch := facecube[base+i]
		b.WriteString(faceletStyles[ch].Render(" " + string(ch) + " "))
	}
	return b.String()
}

// RenderNet draws a facelet string as the standard unfolded cube net:
// U on top, then the L F R B band, then D.
func RenderNet(facecube string) string {
	pad := strings.Repeat(" ", 9)

	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(faceRow(facecube, cubescan.U, row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []cubescan.Color{cubescan.L, cubescan.F, cubescan.R, cubescan.B} {
			b.WriteString(faceRow(facecube, face, row))
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(faceRow(facecube, cubescan.D, row))
		b.WriteString("\n")
	}
	return b.String()
}

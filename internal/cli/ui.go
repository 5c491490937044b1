package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	colorCyan   = lipgloss.Color("36")  // primary values
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorRed    = lipgloss.Color("167") // errors
	colorGray   = lipgloss.Color("245") // secondary text
)

// logStyles colours level badges and highlights the fields every solve logs.
func logStyles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = lipgloss.NewStyle().SetString("DEBU").Bold(true).Foreground(colorGray)
	s.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO").Bold(true).Foreground(colorGreen)
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Bold(true).Foreground(colorYellow)
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERRO").Bold(true).Foreground(colorRed)

	for _, key := range []string{"max_flow", "size", "total"} {
		s.Keys[key] = lipgloss.NewStyle().Foreground(colorCyan)
		s.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	s.Values["run"] = lipgloss.NewStyle().Foreground(colorGray)
	return s
}

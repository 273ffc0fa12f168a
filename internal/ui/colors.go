package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
	badge lipgloss.Style
}

func NewPalette(t, s, e, w, h, b string) *Palette {
	return &Palette{
		title: NewBold(t).MarginBottom(1),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
		badge: NewBold(b),
	}
}

// DarkPalette is the default theme.
func DarkPalette() *Palette {
	return NewPalette("#7D56F4", "#04B575", "#FF5F87", "#FFA500", "#626262", "#F2C94C")
}

// LightPalette adjusts the accent colors for light terminal backgrounds.
func LightPalette() *Palette {
	return NewPalette("#5A3FB8", "#02734A", "#C0002E", "#A66300", "#8A8A8A", "#8A6D00")
}

// PaletteFor maps a persisted theme name to its palette, defaulting to dark.
func PaletteFor(theme string) *Palette {
	if theme == "light" {
		return LightPalette()
	}
	return DarkPalette()
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

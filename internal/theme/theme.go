package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	foreground color.Color
	base       lipgloss.Style
}

func New() Theme {
	var t Theme

	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) Base() lipgloss.Style {
	return t.base
}

func (t Theme) Heading() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorBrand).Bold(true)
}

func (t Theme) Dim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}

func (t Theme) OK() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
}

func (t Theme) Warn() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

func (t Theme) Fail() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorFailure).Bold(true)
}

// Status colors a transaction or payment link status.
func (t Theme) Status(status string) string {
	switch status {
	case "PAID", "ACTIVE":
		return t.OK().Render(status)
	case "PENDING", "INACTIVE", "REFUNDED":
		return t.Warn().Render(status)
	case "FAILED", "CANCELLED":
		return t.Fail().Render(status)
	default:
		return t.Base().Render(status)
	}
}

package theme

import "charm.land/lipgloss/v2"

var (
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorBrand   = lipgloss.Color("#6C2BD9") // headings, command names
	ColorSuccess = lipgloss.Color("#16EC06") // paid, valid, reachable
	ColorWarning = lipgloss.Color("#FFDE00") // pending, inactive
	ColorFailure = lipgloss.Color("#FF0026") // failed, invalid, unreachable
)

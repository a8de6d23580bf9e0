package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Phase colors
const (
	ColorBreak     Color = "2"   // Green - break, sites unblocked
	ColorCancelled Color = "8"   // Gray - cancelled
	ColorCompleted Color = "141" // Purple - completed
	ColorIdle      Color = "3"   // Yellow - not started
	ColorWorking   Color = "1"   // Red - focusing, sites blocked
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "214" // Orange - degraded blocking
)

// Progress bar gradient
const (
	ColorProgressEnd   = "#A550DF"
	ColorProgressStart = "#5A56E0"
)

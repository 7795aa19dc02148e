// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the terminal width below which the layout switches to narrow mode.
// In narrow mode, list rows drop their least important column.
const NarrowThreshold = 80

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	TabBarHeight int // 0 if the tab bar is hidden
	StatusHeight int
	BorderHeight int
}

// ContentHeight calculates the rows available to the browse list. This is
// the terminal height minus header, tab bar, status line, and panel border,
// never less than one.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.TabBarHeight
	height -= opts.StatusHeight
	height -= opts.BorderHeight
	return max(height, 1)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// TrackColumns returns how many text columns a track row shows:
// name, artists, and album, or only the first two in narrow mode.
func TrackColumns(width int) int {
	if IsNarrowMode(width) {
		return 2
	}
	return 3
}

// Package ui provides shared UI building blocks and layout constants.
package ui

const (
	// ScrollMargin is the number of rows kept visible above and below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space taken by a panel border.
	BorderHeight = 2

	// HeaderHeight is the title row plus its separator.
	HeaderHeight = 2

	// StatusHeight is the single status line under the main panel.
	StatusHeight = 1

	// PanelOverhead is the vertical space a bordered panel spends outside its list.
	PanelOverhead = BorderHeight + HeaderHeight
)

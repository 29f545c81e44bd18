// Package ui holds layout constants and helpers shared by the components.
package ui

const (
	// ScrollMargin is how many rows stay visible around a list cursor.
	ScrollMargin = 5

	// A bordered panel spends one cell on each side for its border, and two
	// lines under the top border for its header and separator.
	BorderHeight  = 2
	BorderWidth   = 2
	HeaderHeight  = 2
	PanelOverhead = BorderHeight + HeaderHeight
)

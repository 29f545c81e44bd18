package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return styles.PanelStyle(false)
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func artistStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func timeStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func dimStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func activeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func likedStyle() lipgloss.Style {
	return styles.T().S().Liked
}

func filledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func emptyStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

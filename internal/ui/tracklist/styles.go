package tracklist

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/ui/styles"
)

func headerStyle() lipgloss.Style {
	return styles.T().S().Title
}

func infoStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func emptyStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func trackStyle() lipgloss.Style {
	return styles.T().S().Base
}

func playingStyle() lipgloss.Style {
	return styles.T().S().Playing
}

func cursorStyle() lipgloss.Style {
	return styles.T().S().Cursor
}

func dimmedStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func likedStyle() lipgloss.Style {
	return styles.T().S().Liked
}

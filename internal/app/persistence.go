package app

import (
	"slices"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/player"
	"github.com/llehouerou/encore/internal/playlist"
	"github.com/llehouerou/encore/internal/state"
)

// SessionFromState captures the parts of s that survive a restart.
func SessionFromState(s playback.State) state.Session {
	return state.Session{
		Volume:     s.Volume,
		RepeatMode: int(s.Repeat),
		Shuffle:    s.Shuffle,
		Queue:      playlist.IDs(s.Queue.Tracks()),
		Index:      s.Index(),
		HasCurrent: s.Current != nil,
		Position:   s.Position,
		Liked:      slices.Clone(s.Liked),
		Recent:     playlist.IDs(s.Recent),
	}
}

// StateFromSession rebuilds the playback state saved in sess against the
// catalog. Ids the catalog no longer knows are dropped; if the current
// track is gone the queue is kept without a current track. A nil session
// gives a fresh state.
func StateFromSession(sess *state.Session, c *catalog.Catalog) playback.State {
	s := playback.NewState()
	if sess == nil {
		return s
	}

	s.Volume = player.ClampVolume(sess.Volume)
	switch r := playback.RepeatMode(sess.RepeatMode); r {
	case playback.RepeatOff, playback.RepeatAll, playback.RepeatOne:
		s.Repeat = r
	}
	s.Shuffle = sess.Shuffle

	for _, id := range sess.Liked {
		if _, ok := c.Track(id); ok && !slices.Contains(s.Liked, id) {
			s.Liked = append(s.Liked, id)
		}
	}
	recent := c.Resolve(sess.Recent)
	for i := len(recent) - 1; i >= 0; i-- {
		s.Recent = playlist.PushRecent(s.Recent, recent[i])
	}

	var tracks []catalog.Track
	index, hasCurrent := 0, false
	for i, id := range sess.Queue {
		t, ok := c.Track(id)
		if !ok {
			continue
		}
		if sess.HasCurrent && i == sess.Index {
			index, hasCurrent = len(tracks), true
		}
		tracks = append(tracks, t)
	}
	s.Queue = playlist.NewQueue(tracks, index)
	if hasCurrent {
		cur := tracks[index]
		s.Current = &cur
		s.Position = max(sess.Position, 0)
	}
	return s
}

package playback

import (
	"fmt"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/player"
	"github.com/llehouerou/encore/internal/playlist"
)

// Apply returns the state that results from applying a to s.
// It has no side effects; the Controller reconciles the transport.
//
// Apply panics if a PlaySong track is not a member of its queue.
func Apply(s State, a Action) State {
	switch a := a.(type) {
	case PlaySong:
		return playSong(s, a)

	case TogglePlay:
		s.Playing = !s.Playing
		return s

	case NextSong:
		return next(s)

	case PreviousSong:
		if s.Current == nil || s.Queue.IsEmpty() {
			return s
		}
		s.Queue = s.Queue.Previous()
		s.Current = current(s.Queue)
		s.Position = 0
		return s

	case SetVolume:
		s.Volume = player.ClampVolume(a.Volume)
		return s

	case SetPosition:
		s.Position = a.Position
		return s

	case Seek:
		s.Position = a.Position
		return s

	case SetDuration:
		s.Duration = a.Duration
		return s

	case ToggleShuffle:
		s.Shuffle = !s.Shuffle
		return s

	case CycleRepeat:
		s.Repeat = s.Repeat.Next()
		return s

	case ToggleLike:
		s.Liked = toggleLike(s.Liked, a.TrackID)
		return s

	case EnqueueAppend:
		s.Queue = s.Queue.Add(a.Track)
		return s

	case DequeueAt:
		return dequeue(s, a.Index)

	case JumpTo:
		q, ok := s.Queue.JumpTo(a.Index)
		if !ok {
			return s
		}
		s.Queue = q
		s.Current = current(q)
		s.Playing = true
		s.Position = 0
		s.Recent = playlist.PushRecent(s.Recent, *s.Current)
		return s

	case TrackEnded:
		if s.Current == nil {
			return s
		}
		if s.Repeat == RepeatOne {
			s.Playing = true
			s.Position = 0
			return s
		}
		return next(s)

	default:
		return s
	}
}

func playSong(s State, a PlaySong) State {
	tracks := a.Queue
	if tracks == nil {
		tracks = []catalog.Track{a.Track}
	}
	i := catalog.IndexOf(tracks, a.Track.ID)
	if i < 0 {
		panic(fmt.Sprintf("playback: track %q is not in its queue", a.Track.ID))
	}

	s.Queue = playlist.NewQueue(tracks, i)
	s.Current = current(s.Queue)
	s.Playing = true
	s.Position = 0
	s.Recent = playlist.PushRecent(s.Recent, a.Track)
	return s
}

// next advances the queue. At the end of the queue it wraps with
// RepeatAll; otherwise it stops on the last track without moving.
func next(s State) State {
	if s.Current == nil || s.Queue.IsEmpty() {
		return s
	}
	q, ok := s.Queue.Next(s.Repeat == RepeatAll)
	if !ok {
		s.Playing = false
		return s
	}
	s.Queue = q
	s.Current = current(q)
	s.Position = 0
	return s
}

// dequeue removes the entry at i. Removing the current entry moves the
// current track to whatever now occupies the clamped index, without
// touching playing or position. Removing the last entry empties the state.
func dequeue(s State, i int) State {
	q, ok := s.Queue.RemoveAt(i)
	if !ok {
		return s
	}
	if q.IsEmpty() {
		s.Queue = playlist.Queue{}
		s.Current = nil
		s.Playing = false
		return s
	}
	s.Queue = q
	if s.Current != nil {
		s.Current = current(q)
	}
	return s
}

func toggleLike(liked []string, id string) []string {
	out := make([]string, 0, len(liked)+1)
	found := false
	for _, l := range liked {
		if l == id {
			found = true
			continue
		}
		out = append(out, l)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

func current(q playlist.Queue) *catalog.Track {
	t, ok := q.Current()
	if !ok {
		return nil
	}
	return &t
}

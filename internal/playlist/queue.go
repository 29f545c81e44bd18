package playlist

// Queue is an ordered track list with a cursor. It is a value: every
// operation returns a new Queue and leaves the receiver untouched.
//
// When the queue is not empty, 0 <= Index() < Len(). The cursor of an empty
// queue is 0 and points at nothing.
type Queue struct {
	tracks []Track
	index  int
}

// NewQueue creates a queue positioned at index, clamped into range.
func NewQueue(tracks []Track, index int) Queue {
	q := Queue{tracks: Append(nil, tracks...)}
	q.index = q.clamp(index)
	return q
}

func (q Queue) clamp(i int) int {
	if len(q.tracks) == 0 || i < 0 {
		return 0
	}
	return min(i, len(q.tracks)-1)
}

// Current returns the track under the cursor, or false if the queue is empty.
func (q Queue) Current() (Track, bool) {
	if len(q.tracks) == 0 {
		return Track{}, false
	}
	return q.tracks[q.index], true
}

// Index returns the cursor position.
func (q Queue) Index() int {
	return q.index
}

// Track returns the track at i, or false if i is out of bounds.
func (q Queue) Track(i int) (Track, bool) {
	if i < 0 || i >= len(q.tracks) {
		return Track{}, false
	}
	return q.tracks[i], true
}

// Tracks returns a copy of all tracks.
func (q Queue) Tracks() []Track {
	return Append(nil, q.tracks...)
}

// Len returns the number of tracks.
func (q Queue) Len() int {
	return len(q.tracks)
}

// IsEmpty returns true if the queue has no tracks.
func (q Queue) IsEmpty() bool {
	return len(q.tracks) == 0
}

// Next moves the cursor forward. Past the last track it wraps to the start
// when wrap is set; otherwise the queue is returned unchanged with false.
func (q Queue) Next(wrap bool) (Queue, bool) {
	if len(q.tracks) == 0 {
		return q, false
	}
	i := q.index + 1
	if i >= len(q.tracks) {
		if !wrap {
			return q, false
		}
		i = 0
	}
	q.index = i
	return q, true
}

// Previous moves the cursor back, wrapping from the first track to the last.
func (q Queue) Previous() Queue {
	if len(q.tracks) == 0 {
		return q
	}
	i := q.index - 1
	if i < 0 {
		i = len(q.tracks) - 1
	}
	q.index = i
	return q
}

// JumpTo moves the cursor to i. Returns false if i is out of bounds.
func (q Queue) JumpTo(i int) (Queue, bool) {
	if i < 0 || i >= len(q.tracks) {
		return q, false
	}
	q.index = i
	return q, true
}

// Add appends tracks without moving the cursor.
func (q Queue) Add(tracks ...Track) Queue {
	q.tracks = Append(q.tracks, tracks...)
	return q
}

// RemoveAt removes the track at i. A removal before the cursor shifts it
// down so it keeps pointing at the same track. Removing the track under the
// cursor leaves the cursor on whatever now occupies that slot, clamped to
// the new last track. Returns false if i is out of bounds.
func (q Queue) RemoveAt(i int) (Queue, bool) {
	tracks, ok := RemoveAt(q.tracks, i)
	if !ok {
		return q, false
	}
	q.tracks = tracks
	if i < q.index {
		q.index--
	}
	q.index = q.clamp(q.index)
	return q, true
}

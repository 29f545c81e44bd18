// Package playlist holds the copy-on-write track list operations shared by
// the playback queue and the playlist store.
package playlist

import "github.com/llehouerou/encore/internal/catalog"

// Track is the catalog track type, aliased for brevity in this package.
type Track = catalog.Track

// Append returns a new slice holding list followed by tracks. It never
// writes into list's spare capacity, so callers can keep sharing list.
func Append(list []Track, tracks ...Track) []Track {
	out := make([]Track, 0, len(list)+len(tracks))
	out = append(out, list...)
	return append(out, tracks...)
}

// AddUnique appends t unless a track with the same id is already present.
// It returns the original slice and false when nothing changed.
func AddUnique(list []Track, t Track) ([]Track, bool) {
	if catalog.IndexOf(list, t.ID) >= 0 {
		return list, false
	}
	return Append(list, t), true
}

// RemoveAt returns a new slice without the track at index.
// Returns false if index is out of bounds.
func RemoveAt(list []Track, index int) ([]Track, bool) {
	if index < 0 || index >= len(list) {
		return list, false
	}
	out := make([]Track, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...), true
}

// RemoveID returns a new slice without any track carrying id.
// Returns false if no track matched.
func RemoveID(list []Track, id string) ([]Track, bool) {
	out := make([]Track, 0, len(list))
	for i := range list {
		if list[i].ID != id {
			out = append(out, list[i])
		}
	}
	if len(out) == len(list) {
		return list, false
	}
	return out, true
}

// Move removes the track at from and reinserts it at to.
// Returns false if either index is out of bounds.
func Move(list []Track, from, to int) ([]Track, bool) {
	if from < 0 || from >= len(list) {
		return list, false
	}
	if to < 0 || to >= len(list) {
		return list, false
	}
	out := make([]Track, len(list))
	copy(out, list)
	if from == to {
		return out, true
	}

	track := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]Track{track}, out[to:]...)...)
	return out, true
}

// IDs returns the ids of list in order.
func IDs(list []Track) []string {
	ids := make([]string, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	return ids
}

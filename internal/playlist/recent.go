package playlist

// MaxRecent is the number of entries kept in a recently played list.
const MaxRecent = 50

// PushRecent returns recent with t in front. Any earlier entry with the
// same id is dropped and the result is capped at MaxRecent.
func PushRecent(recent []Track, t Track) []Track {
	out := make([]Track, 0, min(len(recent)+1, MaxRecent))
	out = append(out, t)
	for i := range recent {
		if len(out) == MaxRecent {
			break
		}
		if recent[i].ID != t.ID {
			out = append(out, recent[i])
		}
	}
	return out
}

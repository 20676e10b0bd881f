package domain

// MoodHistory is an ordered sequence of entries, newest first.
type MoodHistory []MoodEntry

// Prepend returns a new history with entry at the front. The receiver is not modified.
func (h MoodHistory) Prepend(entry MoodEntry) MoodHistory {
	out := make(MoodHistory, 0, len(h)+1)
	out = append(out, entry)
	return append(out, h...)
}

// Recent returns up to n of the newest entries.
func (h MoodHistory) Recent(n int) MoodHistory {
	if n <= 0 {
		return MoodHistory{}
	}
	if n >= len(h) {
		return h
	}
	return h[:n]
}

// Len returns the number of entries.
func (h MoodHistory) Len() int {
	return len(h)
}

package domain

import "time"

// WorkedSeconds returns the seconds worked over a day's entries. Entries
// form up to two shifts, [0]-[1] and [2]-[3]; an incomplete shift counts 0.
func WorkedSeconds(entries []time.Time) int64 {
	var total int64
	if len(entries) >= 2 {
		total += int64(entries[1].Sub(entries[0]) / time.Second)
	}
	if len(entries) >= 4 {
		total += int64(entries[3].Sub(entries[2]) / time.Second)
	}
	return total
}

package repository

import "time"

// NextID allocates a record ID: the current time in integer milliseconds,
// bumped by one while it collides with an ID already present. Uniqueness is
// only guaranteed against the collection's contents at creation time.
func NextID(existing []int64) int64 {
	taken := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		taken[id] = struct{}{}
	}

	id := time.Now().UnixMilli()
	for {
		if _, ok := taken[id]; !ok {
			return id
		}
		id++
	}
}

package decoder

import (
	"sort"

	"github.com/meetupaws/boarding_pass_scanner/boardingpasses/internal/model"
)

func MaxSeatID(ids []model.SeatID) (model.SeatID, bool) {
	if len(ids) == 0 {
		return 0, false
	}

	highest := ids[0]
	for _, id := range ids[1:] {
		if id > highest {
			highest = id
		}
	}
	return highest, true
}

// FindGap returns the id right after the contiguous run that starts at the
// lowest id. Repeated ids count once. When the run has no hole the result is
// max+1, which is not a free seat; use MissingSeatID to tell them apart.
func FindGap(ids []model.SeatID) (model.SeatID, bool) {
	sorted := uniqueSorted(ids)
	if len(sorted) == 0 {
		return 0, false
	}

	first := sorted[0]
	last := -1
	for i, id := range sorted {
		if id != first+model.SeatID(i) {
			break
		}
		last = i
	}
	if last < 0 {
		return 0, false
	}

	return sorted[last] + 1, true
}

// MissingSeatID is FindGap without the max+1 answer for a run with no hole.
func MissingSeatID(ids []model.SeatID) (model.SeatID, bool) {
	gap, ok := FindGap(ids)
	if !ok {
		return 0, false
	}

	highest, _ := MaxSeatID(ids)
	if gap > highest {
		return 0, false
	}
	return gap, true
}

func uniqueSorted(ids []model.SeatID) []model.SeatID {
	sorted := make([]model.SeatID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	unique := sorted[:0]
	for _, id := range sorted {
		if len(unique) > 0 && unique[len(unique)-1] == id {
			continue
		}
		unique = append(unique, id)
	}
	return unique
}

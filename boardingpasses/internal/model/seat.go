package model

import "strconv"

// BoardingPass is the raw pass as printed: 7 row characters followed by 3 column characters.
type BoardingPass string

type SeatID int

type Seat struct {
	Row    int    `json:"row"`
	Column int    `json:"column"`
	ID     SeatID `json:"id"`
}

type Report struct {
	MaxSeatID     *SeatID `json:"max_seat_id"`
	MissingSeatID *SeatID `json:"missing_seat_id"`
	Decoded       int     `json:"decoded"`
	Rejected      int     `json:"rejected"`
}

// FormatSeatID renders an optional seat id, "none" when absent.
func FormatSeatID(id *SeatID) string {
	if id == nil {
		return "none"
	}
	return strconv.Itoa(int(*id))
}

// Package decoder turns boarding passes into seat ids and finds the free seat
// between the occupied ones.
package decoder

import (
	"github.com/meetupaws/boarding_pass_scanner/boardingpasses/internal/model"
)

const (
	rowLength    = 7
	columnLength = 3
	passLength   = rowLength + columnLength
	rowSeats     = 8
)

// DecodeField reads field as a binary number where one and zero stand for the
// 1 and 0 digits. Any other character, or an empty field, fails the decode.
func DecodeField(field string, one, zero byte) (int, bool) {
	if field == "" {
		return 0, false
	}

	value := 0
	for i := 0; i < len(field); i++ {
		var bit int
		switch field[i] {
		case one:
			bit = 1
		case zero:
			bit = 0
		default:
			return 0, false
		}
		value = value<<1 | bit
	}
	return value, true
}

func DecodeRow(field string) (int, bool) {
	if len(field) != rowLength {
		return 0, false
	}
	return DecodeField(field, 'B', 'F')
}

func DecodeColumn(field string) (int, bool) {
	if len(field) != columnLength {
		return 0, false
	}
	return DecodeField(field, 'R', 'L')
}

// Decode splits the pass into its row and column fields and combines them
// into a seat. Passes that are not exactly ten characters long are rejected.
func Decode(pass model.BoardingPass) (model.Seat, bool) {
	if len(pass) != passLength {
		return model.Seat{}, false
	}

	row, ok := DecodeRow(string(pass[:rowLength]))
	if !ok {
		return model.Seat{}, false
	}
	column, ok := DecodeColumn(string(pass[rowLength:]))
	if !ok {
		return model.Seat{}, false
	}

	return model.Seat{
		Row:    row,
		Column: column,
		ID:     model.SeatID(row*rowSeats + column),
	}, true
}

// SeatIDs decodes every pass and keeps the ids of the ones that decoded, in
// input order.
func SeatIDs(passes []string) []model.SeatID {
	ids := make([]model.SeatID, 0, len(passes))
	for _, p := range passes {
		seat, ok := Decode(model.BoardingPass(p))
		if !ok {
			continue
		}
		ids = append(ids, seat.ID)
	}
	return ids
}

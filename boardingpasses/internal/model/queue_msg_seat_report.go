package model

type QueueMsgSeatReport struct {
	ReportID      string  `json:"report_id"`
	FlightID      string  `json:"flight_id"`
	MaxSeatID     *SeatID `json:"max_seat_id"`
	MissingSeatID *SeatID `json:"missing_seat_id"`
	Decoded       int     `json:"decoded"`
	Rejected      int     `json:"rejected"`
}

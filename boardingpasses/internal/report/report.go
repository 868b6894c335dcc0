// Package report summarizes a batch of boarding passes into the highest seat
// and the free seat left between the occupied ones.
package report

import (
	"go.uber.org/zap"

	"github.com/meetupaws/boarding_pass_scanner/boardingpasses/internal/decoder"
	"github.com/meetupaws/boarding_pass_scanner/boardingpasses/internal/model"
)

func Build(logger *zap.Logger, passes []string) model.Report {
	ids := decoder.SeatIDs(passes)

	r := model.Report{
		Decoded:  len(ids),
		Rejected: len(passes) - len(ids),
	}
	if r.Rejected > 0 {
		logger.Debug("boarding passes rejected",
			zap.Int("rejected", r.Rejected),
			zap.Int("received", len(passes)),
		)
	}

	if highest, ok := decoder.MaxSeatID(ids); ok {
		r.MaxSeatID = &highest
	}
	if missing, ok := decoder.MissingSeatID(ids); ok {
		r.MissingSeatID = &missing
	}

	logger.Debug("seat report built",
		zap.Int("decoded", r.Decoded),
		zap.Bool("has_missing_seat", r.MissingSeatID != nil),
	)
	return r
}

package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/meetupaws/boarding_pass_scanner/boardingpasses/internal/model"
	"github.com/meetupaws/boarding_pass_scanner/boardingpasses/internal/report"
	"github.com/meetupaws/boarding_pass_scanner/internal"
)

type Handler func(in io.Reader, out io.Writer) error

func Adapter(logger *zap.Logger) Handler {
	return func(in io.Reader, out io.Writer) error {
		// Read every pass before decoding
		passes, err := internal.ReadLines(in)
		if err != nil {
			return err
		}

		r := report.Build(logger, passes)

		// Max first, then the missing seat
		_, err = fmt.Fprintf(out, "%s\n%s\n", model.FormatSeatID(r.MaxSeatID), model.FormatSeatID(r.MissingSeatID))
		return err
	}
}

func main() {
	logger, err := internal.NewLogger(os.Getenv("LOG_LEVEL"), "stderr")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := Adapter(logger)(os.Stdin, os.Stdout); err != nil {
		logger.Error("scan failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

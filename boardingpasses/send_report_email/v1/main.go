package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"go.uber.org/zap"

	"github.com/meetupaws/boarding_pass_scanner/boardingpasses/internal/model"
	"github.com/meetupaws/boarding_pass_scanner/internal"
)

const emailSubject = "Boarding seat report"

type Handler func(ctx context.Context, event events.SQSEvent) error

type Mailer interface {
	SendEmail(ctx context.Context, subject string, body string, from string, to []string, cc []string) error
}

var emailTemplate = `Hello!
Boarding for flight %v has been scanned (report %v).
Highest seat id: %v
Free seat id: %v
Passes decoded: %v, rejected: %v
`

func Adapter(logger *zap.Logger, mailer Mailer, senderEmail string, recipient string) Handler {
	return func(ctx context.Context, event events.SQSEvent) error {
		for _, record := range event.Records {
			msgBody := model.QueueMsgSeatReport{}
			err := json.Unmarshal([]byte(record.Body), &msgBody)
			if err != nil {
				logger.Error("seat report message is not valid JSON",
					zap.String("message_id", record.MessageId),
					zap.Error(err),
				)
				return err
			}

			emailBody := fmt.Sprintf(
				emailTemplate,
				msgBody.FlightID,
				msgBody.ReportID,
				model.FormatSeatID(msgBody.MaxSeatID),
				model.FormatSeatID(msgBody.MissingSeatID),
				msgBody.Decoded,
				msgBody.Rejected,
			)

			err = mailer.SendEmail(
				ctx,
				emailSubject,
				emailBody,
				senderEmail,
				[]string{recipient},
				nil,
			)
			if err != nil {
				logger.Error("seat report e-mail not sent",
					zap.String("report_id", msgBody.ReportID),
					zap.Error(err),
				)
				return err
			}
			logger.Info("seat report e-mail sent", zap.String("report_id", msgBody.ReportID))
		}
		return nil
	}
}

func main() {
	senderEmail := strings.TrimSpace(os.Getenv("SENDER_EMAIL"))
	if senderEmail == "" {
		panic("SENDER_EMAIL is empty")
	}
	recipient := strings.TrimSpace(os.Getenv("REPORT_RECIPIENT"))
	if recipient == "" {
		panic("REPORT_RECIPIENT is empty")
	}

	logger, err := internal.NewLogger(os.Getenv("LOG_LEVEL"), "stdout")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	session := session.New()
	mailer := internal.NewMailer(ses.New(session))
	lambda.Start(Adapter(logger, mailer, senderEmail, recipient))
}

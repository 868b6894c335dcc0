package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetupaws/boarding_pass_scanner/boardingpasses/internal/model"
	"github.com/meetupaws/boarding_pass_scanner/boardingpasses/internal/report"
	"github.com/meetupaws/boarding_pass_scanner/internal"
)

type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type Enqueuer interface {
	SendMsg(ctx context.Context, msg interface{}, queue string) error
}

type Request struct {
	FlightID       string   `json:"flight_id"`
	BoardingPasses []string `json:"boarding_passes"`
}

var requestSchema = internal.MustCompileSchema(`{
	"type": "object",
	"required": ["boarding_passes"],
	"properties": {
		"flight_id": {"type": "string"},
		"boarding_passes": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`)

// Adapter answers with the seat report of the posted passes. When
// notificationsQueue is set, reports for a known flight are also published.
func Adapter(logger *zap.Logger, enqueuer Enqueuer, notificationsQueue string, newReportID func() string) Handler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		// Validations
		violations, err := internal.ValidateSchema(requestSchema, req.Body)
		if err != nil {
			return internal.Error(http.StatusBadRequest, err), nil
		}
		if len(violations) > 0 {
			return internal.SchemaErrors(http.StatusBadRequest, violations), nil
		}

		request := Request{}
		err = json.Unmarshal([]byte(req.Body), &request)
		if err != nil {
			return internal.Error(http.StatusBadRequest, err), nil
		}

		// Decode the passes
		r := report.Build(logger, request.BoardingPasses)

		// Publish the report
		if notificationsQueue != "" && strings.TrimSpace(request.FlightID) != "" {
			msg := model.QueueMsgSeatReport{
				ReportID:      newReportID(),
				FlightID:      request.FlightID,
				MaxSeatID:     r.MaxSeatID,
				MissingSeatID: r.MissingSeatID,
				Decoded:       r.Decoded,
				Rejected:      r.Rejected,
			}
			err = enqueuer.SendMsg(ctx, msg, notificationsQueue)
			if err != nil {
				logger.Error("seat report not published",
					zap.String("flight_id", msg.FlightID),
					zap.String("report_id", msg.ReportID),
					zap.Error(err),
				)
				return internal.Error(http.StatusInternalServerError, err), nil
			}
			logger.Info("seat report published",
				zap.String("flight_id", msg.FlightID),
				zap.String("report_id", msg.ReportID),
			)
		}

		return internal.RespondJSON(http.StatusOK, r), nil
	}
}

func newReportID() string {
	return uuid.New().String()
}

func main() {
	logger, err := internal.NewLogger(os.Getenv("LOG_LEVEL"), "stdout")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	notificationsQueue := strings.TrimSpace(os.Getenv("NOTIFICATIONS_QUEUE"))
	if notificationsQueue == "" {
		logger.Warn("NOTIFICATIONS_QUEUE is empty, seat reports will not be published")
	}

	session := session.New()
	enqueuer := internal.NewEnqueuer(sqs.New(session))
	lambda.Start(Adapter(logger, enqueuer, notificationsQueue, newReportID))
}

package internal

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/xeipuuv/gojsonschema"
)

// MustCompileSchema compiles a JSON schema literal, panicking if it is invalid.
func MustCompileSchema(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(err)
	}
	return compiled
}

// ErrorsBody is the payload of every failed response.
type ErrorsBody struct {
	Errors []string `json:"errors"`
}

func Respond(statusCode int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

// RespondJSON marshals structure as the body. A value that cannot be
// marshalled turns into a 500.
func RespondJSON(statusCode int, structure interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(structure)
	if err != nil {
		return Error(http.StatusInternalServerError, err)
	}
	return Respond(statusCode, string(body))
}

func Error(statusCode int, err error) events.APIGatewayProxyResponse {
	return RespondJSON(statusCode, ErrorsBody{Errors: []string{err.Error()}})
}

// SchemaErrors lists one message per violated schema rule.
func SchemaErrors(statusCode int, violations []gojsonschema.ResultError) events.APIGatewayProxyResponse {
	messages := make([]string, 0, len(violations))
	for _, violation := range violations {
		messages = append(messages, violation.String())
	}
	return RespondJSON(statusCode, ErrorsBody{Errors: messages})
}

// ValidateSchema returns the schema violations of body. The error is only set
// when body is not JSON at all.
func ValidateSchema(schema *gojsonschema.Schema, body string) ([]gojsonschema.ResultError, error) {
	result, err := schema.Validate(gojsonschema.NewStringLoader(body))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}
	return result.Errors(), nil
}

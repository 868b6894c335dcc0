package internal

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var passesSchema = MustCompileSchema(`{
	"type": "object",
	"required": ["boarding_passes"],
	"properties": {
		"boarding_passes": {"type": "array", "items": {"type": "string"}}
	}
}`)

func TestValidateSchema(t *testing.T) {
	violations, err := ValidateSchema(passesSchema, `{"boarding_passes": ["BFFFBBFRRR"]}`)
	require.NoError(t, err)
	require.Empty(t, violations)

	violations, err = ValidateSchema(passesSchema, `{"flight_id": "f1"}`)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	require.Contains(t, violations[0].String(), "boarding_passes is required")

	_, err = ValidateSchema(passesSchema, `{"boarding_passes": [}`)
	require.Error(t, err)
}

func TestMustCompileSchema_Panics(t *testing.T) {
	require.Panics(t, func() {
		MustCompileSchema(`{"type": `)
	})
}

func TestRespondJSON(t *testing.T) {
	got := RespondJSON(http.StatusOK, map[string]interface{}{"max_seat_id": nil})

	want := events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: `{"max_seat_id":null}`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Differences found: (-want,+got)\n%s", diff)
	}
}

func TestRespondJSON_MarshalFails(t *testing.T) {
	got := RespondJSON(http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	require.Equal(t, http.StatusInternalServerError, got.StatusCode)
	require.Contains(t, got.Body, "unsupported type")
}

func TestError(t *testing.T) {
	got := Error(http.StatusBadRequest, errors.New("missing_boarding_passes"))

	require.Equal(t, http.StatusBadRequest, got.StatusCode)
	require.Equal(t, `{"errors":["missing_boarding_passes"]}`, got.Body)
}

func TestSchemaErrors(t *testing.T) {
	violations, err := ValidateSchema(passesSchema, `{"boarding_passes": [42]}`)
	require.NoError(t, err)

	got := SchemaErrors(http.StatusBadRequest, violations)

	require.Equal(t, http.StatusBadRequest, got.StatusCode)
	require.Equal(t, "application/json", got.Headers["Content-Type"])
	require.Contains(t, got.Body, `{"errors":["boarding_passes.0: Invalid type.`)
}

func TestSchemaErrors_NoViolations(t *testing.T) {
	got := SchemaErrors(http.StatusBadRequest, nil)

	require.Equal(t, `{"errors":[]}`, got.Body)
}

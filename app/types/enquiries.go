package types

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// EnquiryRequest is a form submission. Field values arrive as arbitrary
// JSON scalars (group sizes are numbers, consent boxes booleans) and are
// flattened to strings for the email body.
type EnquiryRequest struct {
	Kind   string
	Fields map[string]string
}

func NewEnquiryRequestFromContext(ctx echo.Context) (*EnquiryRequest, error) {
	kind := strings.ToLower(strings.TrimSpace(ctx.Param("kind")))

	rawBody, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if len(rawBody) > 0 {
		var raw map[string]interface{}
		if err := json.Unmarshal(rawBody, &raw); err != nil {
			return nil, err
		}
		for key, value := range raw {
			fields[strings.TrimSpace(key)] = stringifyField(value)
		}
	}

	return &EnquiryRequest{Kind: kind, Fields: fields}, nil
}

func (r *EnquiryRequest) Validate() error {
	if strings.TrimSpace(r.Kind) == "" {
		return errors.New("enquiry kind is required")
	}
	if len(r.Fields) == 0 {
		return errors.New("enquiry fields are required")
	}
	return nil
}

func stringifyField(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}

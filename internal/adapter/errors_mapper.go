package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/insighted-client/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewResponseError(resp.StatusCode(), responseMessage(resp.Body()))
}

// NewResponseError builds the error for a non-2xx status, choosing the
// sentinel it unwraps to.
func NewResponseError(status int, message string) *ResponseError {
	respErr := &ResponseError{StatusCode: status, Message: message}

	switch status {
	case http.StatusBadRequest:
		respErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		respErr.kind = ErrForbidden
	case http.StatusNotFound:
		respErr.kind = ErrNotFound
	case http.StatusConflict:
		respErr.kind = ErrConflict
	case http.StatusBadGateway:
		respErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		respErr.kind = ErrInternalServerError
	default:
		if respErr.Message == "" {
			respErr.Message = http.StatusText(status)
		}
	}

	return respErr
}

// responseMessage extracts the human-readable part of an error body.
// The backend answers `{"error": "..."}`; JWT middleware may answer
// `{"msg": "..."}`.
func responseMessage(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return ""
	}

	var parsed struct {
		models.MessageResponse
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return raw
	}
	if text := parsed.Text(); text != "" {
		return text
	}
	if parsed.Msg != "" {
		return parsed.Msg
	}
	return raw
}

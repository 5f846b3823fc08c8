package httpapi

import (
	"encoding/json"
	"strings"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// errorBody holds the message fields the server uses in error responses.
type errorBody struct {
	Error   string `json:"error"`
	Mensaje string `json:"mensaje"`
	Detail  string `json:"detail"`
}

// newAPIError builds the error for a non-2xx response.
func newAPIError(status int, url string, body []byte) *domain.APIError {
	return &domain.APIError{
		StatusCode: status,
		Message:    messageFrom(body),
		URL:        url,
	}
}

// messageFrom extracts the first non-empty of error, mensaje and detail.
// Bodies that are not JSON objects yield an empty message.
func messageFrom(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	for _, msg := range []string{eb.Error, eb.Mensaje, eb.Detail} {
		if msg = strings.TrimSpace(msg); msg != "" {
			return msg
		}
	}
	return ""
}

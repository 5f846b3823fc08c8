package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

func TestClassifySearchError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind domain.ErrorKind
		wantMsg  string
	}{
		{
			name:     "not found",
			err:      &domain.APIError{StatusCode: 404, Message: "No existe"},
			wantKind: domain.KindNotFound,
			wantMsg:  domain.MsgCustomerNotFound,
		},
		{
			name:     "bad request with server message",
			err:      &domain.APIError{StatusCode: 400, Message: "Número de documento inválido"},
			wantKind: domain.KindBadRequest,
			wantMsg:  "Número de documento inválido",
		},
		{
			name:     "bad request without message",
			err:      &domain.APIError{StatusCode: 400},
			wantKind: domain.KindBadRequest,
			wantMsg:  domain.MsgInvalidData,
		},
		{
			name:     "server error",
			err:      &domain.APIError{StatusCode: 500, Message: "boom"},
			wantKind: domain.KindGeneric,
			wantMsg:  domain.MsgSearchFailed,
		},
		{
			name:     "wrapped status",
			err:      fmt.Errorf("search: %w", &domain.APIError{StatusCode: 404}),
			wantKind: domain.KindNotFound,
			wantMsg:  domain.MsgCustomerNotFound,
		},
		{
			name:     "no response",
			err:      fmt.Errorf("%w: dial tcp: connection refused", domain.ErrUnreachable),
			wantKind: domain.KindConnectivity,
			wantMsg:  domain.MsgCannotConnect,
		},
		{
			name:     "other failure",
			err:      errors.New("decode body: unexpected EOF"),
			wantKind: domain.KindGeneric,
			wantMsg:  domain.MsgSearchFailed,
		},
		{
			name:     "cancelled",
			err:      context.Canceled,
			wantKind: domain.KindGeneric,
			wantMsg:  domain.MsgSearchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySearchError(tt.err)

			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantMsg, got.Message)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

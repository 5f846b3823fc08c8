package services

import (
	"errors"
	"net/http"
	"strings"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// ClassifySearchError maps a search failure to exactly one operator message.
//
//	404            -> customer not found
//	400            -> server message, or the invalid data message
//	other status   -> generic retry message
//	no response    -> connectivity message
//	anything else  -> generic retry message
func ClassifySearchError(err error) *domain.FlowError {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			return domain.NewFlowError(domain.KindNotFound, domain.MsgCustomerNotFound, err)
		case http.StatusBadRequest:
			msg := strings.TrimSpace(apiErr.Message)
			if msg == "" {
				msg = domain.MsgInvalidData
			}
			return domain.NewFlowError(domain.KindBadRequest, msg, err)
		default:
			return domain.NewFlowError(domain.KindGeneric, domain.MsgSearchFailed, err)
		}
	}

	if errors.Is(err, domain.ErrUnreachable) {
		return domain.NewFlowError(domain.KindConnectivity, domain.MsgCannotConnect, err)
	}

	return domain.NewFlowError(domain.KindGeneric, domain.MsgSearchFailed, err)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pushforge/fcm-composer/internal/service"
	"go.uber.org/fx"
)

var Module = fx.Module("handler",
	fx.Provide(
		NewPushHandler,
	),
)

type Push struct {
	services service.SendProvider
}

type PushParams struct {
	fx.In

	Services service.SendProvider
}

func NewPushHandler(params PushParams) *Push {
	return &Push{
		services: params.Services,
	}
}

// SendHandler runs one compose-and-send attempt. A completed gateway
// exchange, whatever its status code, is a 200 here with the
// "<code>: <body>" outcome in the status field; transport failures and an
// already-running send map to their own error codes.
func (p *Push) SendHandler(c *gin.Context) {
	ctx := c.Request.Context()

	var req SendRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, GetRequestError(err))
		return
	}

	status, err := p.services.Send(ctx, req.Form(), req.ServerKey)
	if errors.Is(err, service.ErrSendInFlight) {
		c.JSON(http.StatusConflict, GetSendInFlightError(err))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, GetTransportError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
	})
}

// ServerKeyHandler returns the persisted server key so a front end can
// prefill the key field at startup.
func (p *Push) ServerKeyHandler(c *gin.Context) {
	ctx := c.Request.Context()

	key, err := p.services.ServerKey(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, GetInternalError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"server_key": key,
	})
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=map_ws_get_test
package map_ws_get

import (
	"context"

	"console/internal/handlers/rest/dto"
	"console/internal/pkg/hub"
	"console/pkg/logger"

	"github.com/gorilla/websocket"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Hub interface {
	Attach(ctx context.Context, conn *websocket.Conn, initial *hub.Event) error
}

type MapState interface {
	Build() dto.MapResponse
}

package push

import (
	"context"
	"errors"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/sirupsen/logrus"

	"github.com/termin-app/notify-service/internal/models"
)

// ErrNotConnected indicates no live socket is registered for the address.
var ErrNotConnected = errors.New("no websocket connection for address")

// Gateway tracks live in-app websocket connections keyed by delivery
// address, so notifications for devices that are currently online skip the
// external push hop.
type Gateway struct {
	mu    sync.Mutex
	conns map[string]*websocket.Conn
	log   *logrus.Logger
}

func NewGateway(log *logrus.Logger) *Gateway {
	return &Gateway{
		conns: make(map[string]*websocket.Conn),
		log:   log,
	}
}

// Register associates a live connection with a delivery address, closing
// any previous connection registered for the same address.
func (g *Gateway) Register(address string, c *websocket.Conn) {
	g.mu.Lock()
	old := g.conns[address]
	g.conns[address] = c
	g.mu.Unlock()

	if old != nil {
		old.Close(websocket.StatusPolicyViolation, "replaced by a newer connection")
	}
}

// Unregister drops the registration for address, but only if it still
// points at c; a newer connection for the same address is left alone.
func (g *Gateway) Unregister(address string, c *websocket.Conn) {
	g.mu.Lock()
	if g.conns[address] == c {
		delete(g.conns, address)
	}
	g.mu.Unlock()
}

// Send writes the payload to the live connection for address. ErrNotConnected
// means the device has no socket right now and delivery should go through
// the external push API instead.
func (g *Gateway) Send(ctx context.Context, address string, n models.NotificationPayload) error {
	g.mu.Lock()
	c := g.conns[address]
	g.mu.Unlock()

	if c == nil {
		return ErrNotConnected
	}
	if err := wsjson.Write(ctx, c, n); err != nil {
		g.log.WithError(err).Debug("websocket delivery failed")
		return err
	}
	return nil
}

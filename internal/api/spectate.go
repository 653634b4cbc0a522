package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rsduel/arena-server/internal/constants"
	"github.com/rsduel/arena-server/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Spectating is read-only and unauthenticated; origin checks belong to
	// the gateway in front of this service.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const spectateWriteTimeout = 5 * time.Second

// Spectate upgrades the connection to a websocket and streams tick events
// for one fight until the client disconnects or the fight is torn down.
// Delivery is best-effort; a slow client misses ticks rather than stalling
// the fight.
func (h *FightHandler) Spectate(c *gin.Context) {
	fightID := c.Param("fightID")
	snap, err := h.registry.GetFight(fightID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFightNotFound})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	subID, events := h.hub.Subscribe(fightID)
	defer h.hub.Unsubscribe(fightID, subID)
	defer conn.Close()

	// Initial state so the spectator does not wait for the next tick.
	_ = conn.SetWriteDeadline(time.Now().Add(spectateWriteTimeout))
	if err := conn.WriteJSON(gin.H{"snapshot": snap}); err != nil {
		return
	}

	// Drain reads so control frames are processed and disconnects surface.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(spectateWriteTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				logging.Warn("spectator write failed", logging.Fields{constants.LogFieldFightID: fightID})
				return
			}
		case <-done:
			return
		}
	}
}

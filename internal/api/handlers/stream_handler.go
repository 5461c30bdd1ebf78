package handlers

import (
	"net/http"
	"university_voting_system/configs"
	"university_voting_system/internal/db/repositories"
	"university_voting_system/internal/realtime"
	"university_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// StreamHandler upgrades live-result subscribers to a WebSocket and pumps
// hub events to them. Events carry no counts; clients re-query the results
// endpoints on every event, so push and pull can never disagree.
type StreamHandler struct {
	hub                *realtime.Hub
	electionRepository repositories.ElectionRepository
	upgrader           websocket.Upgrader
	logger             *zap.SugaredLogger
}

func NewStreamHandler(
	config configs.HTTP,
	hub *realtime.Hub,
	electionRepository repositories.ElectionRepository,
	logger *zap.SugaredLogger,
) *StreamHandler {
	return &StreamHandler{
		hub:                hub,
		electionRepository: electionRepository,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return config.AllowedOrigin == "*" || origin == "" || origin == config.AllowedOrigin
			},
		},
		logger: logger,
	}
}

func (h *StreamHandler) Subscribe(c *gin.Context) {
	electionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if _, err := h.electionRepository.GetOneByID(electionID); err != nil {
		if repositories.IsNoRows(err) {
			respondError(c, h.logger, services.ErrElectionNotFound)
			return
		}
		respondError(c, h.logger, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error to the client.
		h.logger.Warnw("failed to upgrade connection", "election_id", electionID, "error", err)
		return
	}

	subscriber := h.hub.Subscribe(electionID)

	h.logger.Debugw("subscriber connected", "election_id", electionID)

	go h.readLoop(conn, subscriber)
	h.writeLoop(conn, subscriber)
}

// readLoop drains the connection until the client goes away, then drops the
// subscription. Inbound frames carry nothing we care about.
func (h *StreamHandler) readLoop(conn *websocket.Conn, subscriber *realtime.Subscriber) {
	defer h.hub.Unsubscribe(subscriber)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop forwards hub events until the subscription closes or a write
// fails. Closing the connection here wakes readLoop, which unsubscribes.
func (h *StreamHandler) writeLoop(conn *websocket.Conn, subscriber *realtime.Subscriber) {
	defer conn.Close()

	for event := range subscriber.Events() {
		if err := conn.WriteJSON(event); err != nil {
			return
		}
	}
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleInteractiveWS godoc
// @Summary      Interactive analysis over WebSocket
// @Description  Connect with ws:// and the session token from /health-check/other/{identifier}.
// @Description  Each text frame is a follow-up question; the reply frame is the model's answer.
// @Tags         WebSocket
// @Param        token query string true "session token"
// @Success      101 {string} string "Switching Protocols"
// @Failure      400 {object} handler.ErrorResponse "missing or expired session token"
// @Router       /ws/interact [get]
func (h *Handler) HandleInteractiveWS(c *gin.Context) {
	token := c.Query("token")
	if !h.analysis.SessionExists(token) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no interactive session, call the health-check retrieval endpoint first"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("failed to upgrade to websocket")
		return
	}
	defer conn.Close()

	h.manageInteractiveSession(conn, token)
}

func (h *Handler) manageInteractiveSession(conn *websocket.Conn, token string) {
	logrus.Info("interactive websocket session started")

ReadLoop:
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			logrus.WithError(err).Info("interactive websocket closed")
			break ReadLoop
		}

		if messageType != websocket.TextMessage {
			logrus.Warnf("unsupported websocket message type: %d", messageType)
			continue
		}

		answer, err := h.analysis.Interact(context.Background(), token, string(message))
		if err != nil {
			if writeErr := conn.WriteMessage(websocket.TextMessage, []byte("error: "+err.Error())); writeErr != nil {
				break ReadLoop
			}
			continue
		}

		if err := conn.WriteMessage(websocket.TextMessage, []byte(answer)); err != nil {
			logrus.WithError(err).Error("failed to write websocket answer")
			break ReadLoop
		}
	}
	logrus.Info("interactive websocket session ended")
}

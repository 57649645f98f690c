package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/maturomero/huellitas-tpo-front/models"
)

// recentLimit bounds the per-session notification backlog.
const recentLimit = 50

// Notifier is the session's toast channel: business-rule rejections and
// request failures land here and are pushed to any attached websocket.
type Notifier struct {
	mu     sync.Mutex
	recent []models.Notification
	conns  map[*websocket.Conn]bool
}

func NewNotifier() *Notifier {
	return &Notifier{conns: make(map[*websocket.Conn]bool)}
}

func (n *Notifier) Info(message string) models.Notification {
	return n.push(models.NotifyInfo, message)
}

func (n *Notifier) Success(message string) models.Notification {
	return n.push(models.NotifySuccess, message)
}

func (n *Notifier) Error(message string) models.Notification {
	return n.push(models.NotifyError, message)
}

func (n *Notifier) push(level, message string) models.Notification {
	notification := models.Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}

	n.mu.Lock()
	n.recent = append(n.recent, notification)
	if len(n.recent) > recentLimit {
		n.recent = n.recent[len(n.recent)-recentLimit:]
	}
	for conn := range n.conns {
		if err := conn.WriteJSON(notification); err != nil {
			delete(n.conns, conn)
			conn.Close()
		}
	}
	n.mu.Unlock()

	return notification
}

// Recent returns the buffered notifications, oldest first.
func (n *Notifier) Recent() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.Notification, len(n.recent))
	copy(out, n.recent)
	return out
}

// Attach registers a websocket for live pushes.
func (n *Notifier) Attach(conn *websocket.Conn) {
	n.mu.Lock()
	n.conns[conn] = true
	n.mu.Unlock()
}

// Detach removes a websocket, e.g. after its read loop ends.
func (n *Notifier) Detach(conn *websocket.Conn) {
	n.mu.Lock()
	delete(n.conns, conn)
	n.mu.Unlock()
}

package relay

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/oronp/talk-to-figma-mcp/logger"
)

// client is one WebSocket connection tracked by the hub. Writes are
// serialized through writeMu since gorilla connections allow only one
// concurrent writer.
type client struct {
	id      string
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func newClient(conn *websocket.Conn) *client {
	return &client{id: uuid.NewString(), conn: conn}
}

func (c *client) send(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub groups connections into named channels and fans frames out to
// channel members. Channels are created on first join and persist for
// the lifetime of the process.
type Hub struct {
	mu       sync.Mutex
	channels map[string]map[*client]bool
	log      *slog.Logger
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		channels: make(map[string]map[*client]bool),
		log:      logger.WithComponent("relay"),
	}
}

// run services a single connection until it closes, then cleans up its
// channel memberships.
func (h *Hub) run(conn *websocket.Conn) {
	c := newClient(conn)
	h.log.Info("client connected", "clientID", c.id)

	if err := c.send(Outbound{Type: TypeSystem, Message: noticeWelcome}); err != nil {
		h.log.Warn("failed to send welcome", "clientID", c.id, "error", err)
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var in Inbound
		if err := json.Unmarshal(raw, &in); err != nil {
			// Malformed frames are dropped, not fatal to the connection.
			h.log.Warn("error handling message", "clientID", c.id, "error", err)
			continue
		}

		switch in.Type {
		case TypeJoin:
			h.handleJoin(c, in)
		case TypeMessage:
			h.handleMessage(c, in)
		}
	}

	h.log.Info("client disconnected", "clientID", c.id)
	h.removeClient(c)
}

func (h *Hub) handleJoin(c *client, in Inbound) {
	channel, ok := in.channelName()
	if !ok {
		c.send(Outbound{Type: TypeError, Message: errChannelRequired})
		return
	}

	h.mu.Lock()
	members := h.channels[channel]
	if members == nil {
		members = make(map[*client]bool)
		h.channels[channel] = members
	}
	members[c] = true
	peers := make([]*client, 0, len(members)-1)
	for m := range members {
		if m != c {
			peers = append(peers, m)
		}
	}
	h.mu.Unlock()

	logger.WithChannel(channel).Info("client joined channel", "clientID", c.id)

	// The joiner gets two confirmations: a plain notice, then a result
	// correlated with the request id. Order matters to the MCP client,
	// which waits for the correlated one.
	c.send(Outbound{
		Type:    TypeSystem,
		Message: "Joined channel: " + channel,
		Channel: channel,
	})
	c.send(Outbound{
		Type:    TypeSystem,
		Message: JoinResult{ID: in.ID, Result: "Connected to channel: " + channel},
		Channel: channel,
	})

	for _, peer := range peers {
		if err := peer.send(Outbound{
			Type:    TypeSystem,
			Message: noticePeerJoined,
			Channel: channel,
		}); err != nil {
			h.prune(channel, peer)
		}
	}
}

func (h *Hub) handleMessage(c *client, in Inbound) {
	channel, ok := in.channelName()
	if !ok {
		c.send(Outbound{Type: TypeError, Message: errChannelRequired})
		return
	}

	h.mu.Lock()
	channelMembers := h.channels[channel]
	joined := channelMembers[c]
	members := make([]*client, 0, len(channelMembers))
	for m := range channelMembers {
		members = append(members, m)
	}
	h.mu.Unlock()

	if !joined {
		c.send(Outbound{Type: TypeError, Message: errNotJoined})
		return
	}

	logger.WithChannel(channel).Info("broadcasting message", "clientID", c.id, "members", len(members))

	// Broadcast to every member of the channel, sender included. The
	// sender label tells each recipient whether the frame is an echo.
	for _, m := range members {
		sender := SenderPeer
		if m == c {
			sender = SenderSelf
		}
		if err := m.send(Outbound{
			Type:    TypeBroadcast,
			Message: in.Message,
			Sender:  sender,
			Channel: channel,
		}); err != nil {
			h.prune(channel, m)
		}
	}
}

// removeClient drops the client from every channel it joined and notifies
// the remaining members.
func (h *Hub) removeClient(c *client) {
	h.mu.Lock()
	notify := make(map[string][]*client)
	for name, members := range h.channels {
		if members[c] {
			delete(members, c)
			remaining := make([]*client, 0, len(members))
			for m := range members {
				remaining = append(remaining, m)
			}
			notify[name] = remaining
		}
	}
	h.mu.Unlock()

	for name, remaining := range notify {
		for _, m := range remaining {
			if err := m.send(Outbound{
				Type:    TypeSystem,
				Message: noticePeerLeft,
				Channel: name,
			}); err != nil {
				h.prune(name, m)
			}
		}
	}
}

// prune removes a member whose connection failed mid-send.
func (h *Hub) prune(channel string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if members := h.channels[channel]; members != nil {
		delete(members, c)
	}
}

// MemberCount returns the number of clients currently in a channel.
func (h *Hub) MemberCount(channel string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.channels[channel])
}

// CloseAll closes every joined client's connection. The read loops unwind
// and remove their own memberships.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	closed := make(map[*client]bool)
	for _, members := range h.channels {
		for c := range members {
			if !closed[c] {
				closed[c] = true
				c.conn.Close()
			}
		}
	}
}

package relay

import "encoding/json"

// Frame types exchanged with relay clients.
const (
	TypeJoin      = "join"
	TypeMessage   = "message"
	TypeSystem    = "system"
	TypeError     = "error"
	TypeBroadcast = "broadcast"
)

// Sender labels attached to broadcast frames.
const (
	SenderSelf = "You"
	SenderPeer = "User"
)

// System notice text.
const (
	noticeWelcome    = "Please join a channel to start chatting"
	noticePeerJoined = "A new user has joined the channel"
	noticePeerLeft   = "A user has left the channel"
)

// Error text sent back to misbehaving clients.
const (
	errChannelRequired = "Channel name is required"
	errNotJoined       = "You must join the channel first"
)

// Inbound is a frame received from a client. The Message payload is kept
// opaque so the relay forwards it untouched. Channel stays raw because
// clients may send any JSON value there; channelName validates it.
type Inbound struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Channel json.RawMessage `json:"channel,omitempty"`
	Message json.RawMessage `json:"message,omitempty"`
}

// channelName returns the channel field as a string. ok is false when
// the field is absent, empty, or not a JSON string.
func (in Inbound) channelName() (string, bool) {
	var s string
	if err := json.Unmarshal(in.Channel, &s); err != nil || s == "" {
		return "", false
	}
	return s, true
}

// Outbound is a frame sent to a client.
type Outbound struct {
	Type    string `json:"type"`
	Message any    `json:"message,omitempty"`
	Sender  string `json:"sender,omitempty"`
	Channel string `json:"channel,omitempty"`
}

// JoinResult is the correlated half of the join acknowledgement, keyed by
// the request id the client supplied.
type JoinResult struct {
	ID     string `json:"id"`
	Result string `json:"result"`
}

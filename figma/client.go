package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/oronp/talk-to-figma-mcp/logger"
)

// DefaultCommandTimeout is how long SendCommand waits for a response
// before giving up.
const DefaultCommandTimeout = 30 * time.Second

// progressGraceLimit caps the total wait for a command that keeps
// reporting progress, as a multiple of the configured timeout.
const progressGraceLimit = 4

var (
	// ErrNotConnected means no relay connection could be established.
	ErrNotConnected = errors.New("not connected to Figma: is the relay server running?")

	// ErrNoChannel means a command was sent before joining a channel.
	ErrNoChannel = errors.New("must join a channel before sending commands")

	// ErrConnectionClosed means the relay connection dropped while a
	// command was in flight.
	ErrConnectionClosed = errors.New("connection closed")
)

// TimeoutError reports a command that got no response in time.
type TimeoutError struct {
	Command string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to Figma timed out after %ds", int(e.Timeout.Seconds()))
}

// CommandError carries an error reported by the Figma plugin itself.
type CommandError struct {
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// outcome is the terminal state of a pending command.
type outcome struct {
	result json.RawMessage
	err    error
}

// pendingRequest tracks one in-flight command. touch is signaled when a
// progress update for the command arrives, resetting the caller's timeout.
type pendingRequest struct {
	done  chan outcome
	touch chan struct{}
}

// envelope is the frame pushed through the relay for a command.
type envelope struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Channel string         `json:"channel"`
	Message commandMessage `json:"message"`
}

type commandMessage struct {
	ID      string         `json:"id"`
	Command string         `json:"command"`
	Params  map[string]any `json:"params"`
}

// inboundFrame is a frame received from the relay.
type inboundFrame struct {
	Type    string          `json:"type"`
	Message json.RawMessage `json:"message"`
}

// commandResponse is the correlated payload inside a relay frame.
type commandResponse struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

// progressPayload is the data block of a progress_update frame.
type progressPayload struct {
	CommandID   string  `json:"commandId"`
	CommandType string  `json:"commandType"`
	Progress    float64 `json:"progress"`
	Message     string  `json:"message"`
	Status      string  `json:"status"`
}

// Client maintains the WebSocket connection to the relay and correlates
// command responses from the Figma plugin back to their callers.
type Client struct {
	baseURL string
	timeout time.Duration
	log     *slog.Logger

	mu      sync.Mutex // guards conn, channel, pending
	conn    *websocket.Conn
	channel string
	pending map[string]*pendingRequest

	writeMu sync.Mutex // gorilla conns allow one writer at a time
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-command response timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a client for the relay at baseURL (e.g.
// "ws://localhost:3055"). The client connects lazily on first use.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		timeout: DefaultCommandTimeout,
		log:     logger.WithComponent("figma"),
		pending: make(map[string]*pendingRequest),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect dials the relay and starts the read loop. Calling Connect while
// already connected is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.log.Info("already connected to Figma")
		return nil
	}

	c.log.Info("connecting to Figma socket server", "url", c.baseURL)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.baseURL, nil)
	if err != nil {
		c.log.Error("failed to connect to Figma", "error", err)
		return fmt.Errorf("failed to connect to %s: %w", c.baseURL, err)
	}

	c.conn = conn
	go c.listen(conn)
	c.log.Info("connected to Figma socket server")
	return nil
}

// Connected reports whether the relay connection is up.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Channel returns the currently joined channel, or "" if none.
func (c *Client) Channel() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.channel
}

// Close tears down the relay connection. In-flight commands fail with
// ErrConnectionClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}

// JoinChannel joins the named relay channel, establishing the link with
// the Figma plugin listening on the same channel.
func (c *Client) JoinChannel(ctx context.Context, channel string) (json.RawMessage, error) {
	result, err := c.SendCommand(ctx, "join", map[string]any{"channel": channel})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.channel = channel
	c.mu.Unlock()
	c.log.Info("joined channel", "channel", channel)
	return result, nil
}

// SendCommand sends a command through the relay and waits for the
// correlated response. If the connection is down it attempts one
// reconnect before failing. Progress updates from long-running commands
// reset the response timeout, up to progressGraceLimit times the
// configured timeout in total.
func (c *Client) SendCommand(ctx context.Context, command string, params map[string]any) (json.RawMessage, error) {
	isJoin := command == "join"

	c.mu.Lock()
	if c.conn == nil {
		c.mu.Unlock()
		if err := c.Connect(ctx); err != nil {
			return nil, ErrNotConnected
		}
		c.mu.Lock()
	}
	if c.conn == nil {
		c.mu.Unlock()
		return nil, ErrNotConnected
	}
	if !isJoin && c.channel == "" {
		c.mu.Unlock()
		return nil, ErrNoChannel
	}

	if params == nil {
		params = map[string]any{}
	}

	id := uuid.NewString()

	channel := c.channel
	if isJoin {
		channel, _ = params["channel"].(string)
	}

	req := &pendingRequest{
		done:  make(chan outcome, 1),
		touch: make(chan struct{}, 1),
	}
	c.pending[id] = req
	conn := c.conn
	c.mu.Unlock()

	// The command id rides both on the envelope and inside params so the
	// plugin can echo it back in progress updates.
	sentParams := make(map[string]any, len(params)+1)
	for k, v := range params {
		sentParams[k] = v
	}
	sentParams["commandId"] = id

	frameType := "message"
	if isJoin {
		frameType = "join"
	}
	env := envelope{
		ID:      id,
		Type:    frameType,
		Channel: channel,
		Message: commandMessage{ID: id, Command: command, Params: sentParams},
	}

	data, err := json.Marshal(env)
	if err != nil {
		c.dropPending(id)
		return nil, err
	}

	c.log.Info("sending command to Figma", "command", command, "commandID", id)

	c.writeMu.Lock()
	err = conn.WriteMessage(websocket.TextMessage, data)
	c.writeMu.Unlock()
	if err != nil {
		c.dropPending(id)
		return nil, fmt.Errorf("failed to send command: %w", err)
	}

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()
	limit := time.NewTimer(c.timeout * progressGraceLimit)
	defer limit.Stop()

	for {
		select {
		case o := <-req.done:
			if o.err != nil {
				return nil, o.err
			}
			return o.result, nil
		case <-req.touch:
			// Progress means the plugin is still working. The hard limit
			// above keeps a chatty plugin from extending this forever.
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(c.timeout)
		case <-timer.C:
			c.dropPending(id)
			return nil, &TimeoutError{Command: command, Timeout: c.timeout}
		case <-limit.C:
			c.dropPending(id)
			return nil, &TimeoutError{Command: command, Timeout: c.timeout * progressGraceLimit}
		case <-ctx.Done():
			c.dropPending(id)
			return nil, ctx.Err()
		}
	}
}

func (c *Client) dropPending(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

// listen reads frames from the relay until the connection drops, then
// fails every outstanding command.
func (c *Client) listen(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			c.log.Info("websocket listen loop ended", "error", err)
			break
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.log.Error("error parsing message", "error", err)
			continue
		}

		if frame.Type == "progress_update" {
			c.handleProgress(frame.Message)
			continue
		}

		c.handleResponse(frame.Message)
	}

	c.log.Info("disconnected from Figma socket server")

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	stale := c.pending
	c.pending = make(map[string]*pendingRequest)
	c.mu.Unlock()

	for _, req := range stale {
		req.done <- outcome{err: ErrConnectionClosed}
	}
}

// handleResponse resolves the pending command a correlated payload
// belongs to. Payloads carrying neither a result nor an error (such as
// the relay echoing our own request back) leave the command pending.
func (c *Client) handleResponse(payload json.RawMessage) {
	var resp commandResponse
	if err := json.Unmarshal(payload, &resp); err != nil || resp.ID == "" {
		c.log.Info("received broadcast message", "payload", string(payload))
		return
	}

	hasResult := len(resp.Result) > 0 && string(resp.Result) != "null"
	if resp.Error == "" && !hasResult {
		return
	}

	c.mu.Lock()
	req, ok := c.pending[resp.ID]
	if ok {
		delete(c.pending, resp.ID)
	}
	c.mu.Unlock()

	if !ok {
		c.log.Info("received broadcast message", "payload", string(payload))
		return
	}

	if resp.Error != "" {
		c.log.Error("error from Figma", "error", resp.Error)
		req.done <- outcome{err: &CommandError{Message: resp.Error}}
		return
	}
	req.done <- outcome{result: resp.Result}
}

func (c *Client) handleProgress(payload json.RawMessage) {
	var msg struct {
		Data progressPayload `json:"data"`
	}
	if err := json.Unmarshal(payload, &msg); err != nil {
		return
	}
	p := msg.Data

	cmdType := p.CommandType
	if cmdType == "" {
		cmdType = "unknown"
	}
	c.log.Info("progress update", "command", cmdType, "progress", p.Progress, "message", p.Message)

	if p.Status == "completed" && p.Progress == 100 {
		c.log.Info("operation completed, waiting for final result", "command", cmdType)
	}

	if p.CommandID == "" {
		return
	}
	c.mu.Lock()
	req, ok := c.pending[p.CommandID]
	c.mu.Unlock()
	if !ok {
		return
	}
	select {
	case req.touch <- struct{}{}:
	default:
	}
}

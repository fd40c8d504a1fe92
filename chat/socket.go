package chat

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// MessageHandler receives the text of one inbound socket message.
type MessageHandler func(text string)

// Channel is the outbound socket the dispatcher sends chat payloads on.
// The connection is an explicitly owned, injected dependency with its own
// lifecycle; nothing in this package holds global connection state.
type Channel interface {
	// IsOpen reports whether the connection is currently usable.
	IsOpen() bool

	// Send serializes v as JSON and writes it to the connection.
	Send(v any) error

	// SetHandler installs the single handler for inbound messages,
	// replacing any previous one. A nil handler reverts to log-only.
	SetHandler(handler MessageHandler)

	// Close shuts the connection down. Safe to call more than once.
	Close() error
}

// SocketChannel is a Channel over a single long-lived websocket connection.
type SocketChannel struct {
	logger *slog.Logger

	mu      sync.Mutex
	conn    *websocket.Conn
	open    bool
	handler MessageHandler
}

var _ Channel = (*SocketChannel)(nil)

// SocketOption configures a SocketChannel.
type SocketOption func(*SocketChannel)

// WithSocketLogger sets a custom logger.
// Default is slog.Default().
func WithSocketLogger(logger *slog.Logger) SocketOption {
	return func(c *SocketChannel) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// DialSocket opens the connection to the remote chat service and starts the
// read loop. The caller owns the returned channel and must Close it.
func DialSocket(ctx context.Context, socketURL string, opts ...SocketOption) (*SocketChannel, error) {
	c := &SocketChannel{
		logger: slog.Default().With("component", "socket-channel"),
	}
	for _, opt := range opts {
		opt(c)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, socketURL, nil)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.open = true

	go c.readLoop()

	c.logger.Info("socket connected", "url", socketURL)
	return c, nil
}

// IsOpen implements Channel.
func (c *SocketChannel) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Send implements Channel. Writes are serialized; concurrent senders never
// interleave frames.
func (c *SocketChannel) Send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return ErrChannelClosed
	}
	return c.conn.WriteJSON(v)
}

// SetHandler implements Channel.
func (c *SocketChannel) SetHandler(handler MessageHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = handler
}

// Close implements Channel.
func (c *SocketChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return nil
	}
	c.open = false
	return c.conn.Close()
}

// readLoop drains inbound messages until the connection drops, delivering
// text frames to the installed handler. Without a handler, messages are
// logged and dropped.
func (c *SocketChannel) readLoop() {
	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			wasOpen := c.open
			c.open = false
			c.mu.Unlock()
			if wasOpen {
				c.logger.Warn("socket read failed, marking closed", "err", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		c.mu.Lock()
		handler := c.handler
		c.mu.Unlock()

		if handler == nil {
			c.logger.Debug("inbound socket message with no handler", "len", len(data))
			continue
		}
		handler(string(data))
	}
}

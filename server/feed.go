package server

import (
	"sync"

	"github.com/go-zoox/community/message"
	"github.com/go-zoox/community/store"
	"github.com/go-zoox/logger"
	"github.com/go-zoox/safe"
	"github.com/go-zoox/uuid"
	"github.com/go-zoox/zoox"
	"github.com/go-zoox/zoox/components/application/websocket"
)

type subscriber struct {
	// boards filters events, empty means every board
	boards map[string]bool
	write  func(raw []byte) error
}

func (s *subscriber) matches(board string) bool {
	if len(s.boards) == 0 {
		return true
	}

	return s.boards[board]
}

type feed struct {
	mu          sync.RWMutex
	subscribers map[string]*subscriber
}

func newFeed() *feed {
	return &feed{
		subscribers: map[string]*subscriber{},
	}
}

func (f *feed) Subscribe(id string, boards []string, write func(raw []byte) error) {
	filter := map[string]bool{}
	for _, b := range boards {
		filter[b] = true
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.subscribers[id] = &subscriber{
		boards: filter,
		write:  write,
	}
}

func (f *feed) Unsubscribe(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.subscribers, id)
}

func (f *feed) PublishPost(post *store.Post) {
	msg := &message.Message{}
	msg.SetType(message.TypePost)
	msg.SetPost(post)
	if err := msg.Serialize(); err != nil {
		logger.Errorf("failed to serialize post event: %s", err)
		return
	}

	f.publish(post.Board, msg.Msg())
}

func (f *feed) PublishComment(board string, comment *store.Comment) {
	msg := &message.Message{}
	msg.SetType(message.TypeComment)
	msg.SetComment(&message.Comment{
		Board:   board,
		Comment: comment,
	})
	if err := msg.Serialize(); err != nil {
		logger.Errorf("failed to serialize comment event: %s", err)
		return
	}

	f.publish(board, msg.Msg())
}

func (f *feed) publish(board string, raw []byte) {
	f.mu.RLock()
	stale := []string{}
	for id, sub := range f.subscribers {
		if !sub.matches(board) {
			continue
		}

		if err := safe.Do(func() error {
			return sub.write(raw)
		}); err != nil {
			logger.Errorf("failed to push feed event to %s: %s", id, err)
			stale = append(stale, id)
		}
	}
	f.mu.RUnlock()

	for _, id := range stale {
		f.Unsubscribe(id)
	}
}

// feedConn is one feed connection, the socket is abstracted behind write so
// the handler logic does not depend on a live connection.
type feedConn struct {
	id    string
	feed  *feed
	write func(raw []byte) error
}

func (c *feedConn) onDisconnect() {
	c.feed.Unsubscribe(c.id)
}

func (c *feedConn) onMessage(rawMsg []byte) {
	msg, err := message.Deserialize(rawMsg)
	if err != nil {
		logger.Errorf("failed to deserialize message: %s", err)
		return
	}

	switch msg.Type() {
	case message.TypeSubscribe:
		data := msg.Subscribe()

		// write failures propagate so publish can drop the subscriber
		c.feed.Subscribe(c.id, data.Boards, c.write)

		ack := &message.Message{}
		ack.SetType(message.TypeSubscribe)
		if err := ack.Serialize(); err != nil {
			logger.Errorf("failed to serialize message: %s", err)
			return
		}

		if err := c.write(ack.Msg()); err != nil {
			logger.Errorf("failed to ack subscribe for %s: %s", c.id, err)
		}
	case message.TypeHeartBeat:
		pong := &message.Message{}
		pong.SetType(message.TypeHeartBeat)
		pong.SetHeartBeat(&message.HeartBeat{
			Code:    200,
			Message: "pong",
		})
		if err := pong.Serialize(); err != nil {
			logger.Errorf("failed to serialize message: %s", err)
			return
		}

		if err := c.write(pong.Msg()); err != nil {
			logger.Errorf("failed to pong %s: %s", c.id, err)
		}
	default:
		errMsg := &message.Message{}
		errMsg.SetType(message.TypeError)
		errMsg.SetError(&message.Error{
			Message: "unknown message type",
		})
		if err := errMsg.Serialize(); err != nil {
			logger.Errorf("failed to serialize message: %s", err)
			return
		}

		if err := c.write(errMsg.Msg()); err != nil {
			logger.Errorf("failed to report error to %s: %s", c.id, err)
		}
	}
}

// serveFeed is the websocket handler of the activity feed.
func serveFeed(f *feed) zoox.WsHandlerFunc {
	return func(ctx *zoox.Context, client *websocket.Client) {
		conn := &feedConn{
			id:   uuid.V4(),
			feed: f,
			write: func(raw []byte) error {
				return client.Write(websocket.BinaryMessage, raw)
			},
		}

		client.OnDisconnect = conn.onDisconnect
		client.OnTextMessage = conn.onMessage
	}
}

package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/go-zoox/community/message"
	"github.com/go-zoox/community/store"
	"github.com/go-zoox/logger"
	"github.com/gorilla/websocket"
)

type Client interface {
	Connect() error
	Close() error
	//
	OnPost(fn func(post *store.Post))
	OnComment(fn func(board string, comment *store.Comment))
	//
	OnClose() chan error
}

type Config struct {
	Server string
	// Boards filters the feed, empty means every board
	Boards []string
	//
	Username string
	Password string
	//
	Stderr io.Writer
}

type client struct {
	cfg *Config
	//
	conn *websocket.Conn
	//
	stderr io.Writer
	//
	onPost    func(post *store.Post)
	onComment func(board string, comment *store.Comment)
	//
	closeCh   chan error
	done      chan struct{}
	closeOnce sync.Once
}

func New(cfg *Config) Client {
	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &client{
		cfg: cfg,
		//
		stderr: stderr,
		//
		closeCh: make(chan error),
		done:    make(chan struct{}),
	}
}

// reportClose hands the listen goroutine's error to OnClose, unless Close
// already ran and nobody is listening anymore.
func (c *client) reportClose(err error) {
	select {
	case c.closeCh <- err:
	case <-c.done:
	}
}

func (c *client) OnPost(fn func(post *store.Post)) {
	c.onPost = fn
}

func (c *client) OnComment(fn func(board string, comment *store.Comment)) {
	c.onComment = fn
}

func (c *client) Connect() error {
	u, err := url.Parse(c.cfg.Server)
	if err != nil {
		return fmt.Errorf("invalid community server address: %s", err)
	}
	logger.Debugf("connecting to %s", u.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	headers := http.Header{}
	if c.cfg.Username != "" && c.cfg.Password != "" {
		headers.Set("Authorization", fmt.Sprintf("Basic %s", base64.StdEncoding.EncodeToString([]byte(c.cfg.Username+":"+c.cfg.Password))))
	}

	conn, response, err := websocket.DefaultDialer.DialContext(ctx, u.String(), headers)
	if err != nil {
		if response == nil || response.Body == nil {
			cancel()
			return fmt.Errorf("failed to connect at %s (error: %s)", u.String(), err)
		}

		body, errB := io.ReadAll(response.Body)
		if errB != nil {
			cancel()
			return fmt.Errorf("failed to connect at %s (status: %s, error: %s)", u.String(), response.Status, err)
		}

		cancel()
		return fmt.Errorf("failed to connect at %s (status: %d, response: %s, error: %v)", u.String(), response.StatusCode, string(body), err)
	}
	c.conn = conn
	defer cancel()

	// subscribe
	if err := c.subscribe(); err != nil {
		return err
	}
	subscribedCh := make(chan struct{})

	// listen
	go func() {
		for {
			messageType, rawMsg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseAbnormalClosure) {
					err = nil
				}

				c.reportClose(err)
				return
			}

			if messageType != websocket.BinaryMessage {
				c.stderr.Write([]byte(fmt.Sprintf("only binary message is supported: %d\n", messageType)))
				continue
			}

			msg, err := message.Deserialize(rawMsg)
			if err != nil {
				c.stderr.Write([]byte(fmt.Sprintf("failed to deserialize message: %s\n", err)))
				continue
			}

			switch msg.Type() {
			case message.TypeSubscribe:
				subscribedCh <- struct{}{}
			case message.TypePost:
				if c.onPost != nil {
					c.onPost(msg.Post())
				}
			case message.TypeComment:
				if c.onComment != nil {
					data := msg.Comment()
					c.onComment(data.Board, data.Comment)
				}
			case message.TypeHeartBeat:
				// server pong, nothing to do
			case message.TypeError:
				c.stderr.Write([]byte(fmt.Sprintf("feed error: %s\n", msg.Error().Message)))
			default:
				c.stderr.Write([]byte(fmt.Sprintf("unknown message type: %v\n", msg.Type())))
			}
		}
	}()

	// wait for subscribe ack
	<-subscribedCh

	return nil
}

func (c *client) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
	})

	if c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

func (c *client) subscribe() error {
	msg := &message.Message{}
	msg.SetType(message.TypeSubscribe)
	msg.SetSubscribe(&message.Subscribe{
		Boards: c.cfg.Boards,
	})

	if err := msg.Serialize(); err != nil {
		return err
	}

	return c.conn.WriteMessage(websocket.TextMessage, msg.Msg())
}

func (c *client) OnClose() chan error {
	return c.closeCh
}

package server

import (
	"fmt"
	"net/http"

	"github.com/go-zoox/community/store"
	"github.com/go-zoox/zoox"
	"github.com/go-zoox/zoox/defaults"
)

type Server interface {
	Run() error
}

type Config struct {
	Port int64
	// FrontendOrigin is the origin allowed by CORS, default: *
	FrontendOrigin string
	// Path is the websocket feed path, default: /ws
	Path string
	// Database is the JSON snapshot path, empty means memory only
	Database string
	//
	Username string
	Password string
}

type server struct {
	cfg *Config
}

func New(cfg *Config) Server {
	if cfg.FrontendOrigin == "" {
		cfg.FrontendOrigin = "*"
	}

	if cfg.Path == "" {
		cfg.Path = "/ws"
	}

	return &server{
		cfg: cfg,
	}
}

func (s *server) Run() error {
	cfg := s.cfg
	addr := fmt.Sprintf(":%d", cfg.Port)

	app, err := s.application()
	if err != nil {
		return err
	}

	return app.Run(addr)
}

func (s *server) application() (*zoox.Application, error) {
	cfg := s.cfg
	app := defaults.Application()

	app.Use(cors(cfg.FrontendOrigin))

	if cfg.Username != "" && cfg.Password != "" {
		// reads stay public for the frontend, writes require credentials
		app.Use(func(ctx *zoox.Context) {
			if ctx.Request.Method == http.MethodGet || ctx.Request.Method == http.MethodOptions {
				ctx.Next()
				return
			}

			user, pass, ok := ctx.Request.BasicAuth()
			if !ok {
				ctx.Set("WWW-Authenticate", `Basic realm="community"`)
				ctx.Status(401)
				return
			}

			if !(user == cfg.Username && pass == cfg.Password) {
				ctx.Status(401)
				return
			}

			ctx.Next()
		})
	}

	db, err := store.New(&store.Config{
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	f := newFeed()

	registerAPI(app, db, f)

	app.WebSocket(cfg.Path, serveFeed(f))

	app.Get("/", func(ctx *zoox.Context) {
		ctx.HTML(200, RenderIndex(zoox.H{
			"wsPath": cfg.Path,
		}))
	})

	return app, nil
}

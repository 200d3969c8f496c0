package commands

import (
	"github.com/go-zoox/cli"
	"github.com/go-zoox/community/server"
)

func RegistryServer(app *cli.MultipleProgram) {
	app.Register("server", &cli.Command{
		Name:  "server",
		Usage: "community server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "server port",
				Aliases: []string{"p"},
				EnvVars: []string{"PORT"},
				Value:   8080,
			},
			&cli.StringFlag{
				Name:    "frontend-origin",
				Usage:   "origin allowed by CORS, default: *",
				EnvVars: []string{"FRONTEND_ORIGIN"},
				Value:   "*",
			},
			&cli.StringFlag{
				Name:    "path",
				Usage:   "the websocket feed path",
				EnvVars: []string{"COMMUNITY_FEED_PATH"},
				Value:   "/ws",
			},
			&cli.StringFlag{
				Name:    "database",
				Usage:   "path of the JSON snapshot file, empty means memory only",
				EnvVars: []string{"COMMUNITY_DATABASE"},
			},
			&cli.StringFlag{
				Name:    "username",
				Usage:   "Username for Basic Auth on writes",
				EnvVars: []string{"COMMUNITY_USERNAME"},
			},
			&cli.StringFlag{
				Name:    "password",
				Usage:   "Password for Basic Auth on writes",
				EnvVars: []string{"COMMUNITY_PASSWORD"},
			},
		},
		Action: func(ctx *cli.Context) (err error) {
			s := server.New(&server.Config{
				Port:           ctx.Int64("port"),
				FrontendOrigin: ctx.String("frontend-origin"),
				Path:           ctx.String("path"),
				Database:       ctx.String("database"),
				//
				Username: ctx.String("username"),
				Password: ctx.String("password"),
			})

			return s.Run()
		},
	})
}

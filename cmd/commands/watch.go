package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-zoox/cli"
	"github.com/go-zoox/community/client"
	"github.com/go-zoox/community/store"
	"golang.org/x/term"
)

func RegistryWatch(app *cli.MultipleProgram) {
	app.Register("watch", &cli.Command{
		Name:  "watch",
		Usage: "watch the community activity feed",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "server",
				Usage:    "server url, example: ws://127.0.0.1:8080/ws",
				Aliases:  []string{"s"},
				EnvVars:  []string{"SERVER"},
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:    "boards",
				Usage:   "only watch the given boards",
				Aliases: []string{"b"},
				EnvVars: []string{"BOARDS"},
			},
			&cli.StringFlag{
				Name:    "username",
				Usage:   "Username for Basic Auth",
				EnvVars: []string{"USERNAME"},
			},
			&cli.StringFlag{
				Name:    "password",
				Usage:   "Password for Basic Auth",
				EnvVars: []string{"PASSWORD"},
			},
		},
		Action: func(ctx *cli.Context) (err error) {
			c := client.New(&client.Config{
				Server: ctx.String("server"),
				Boards: ctx.StringSlice("boards"),
				//
				Username: ctx.String("username"),
				Password: ctx.String("password"),
			})

			c.OnPost(func(post *store.Post) {
				fmt.Fprintf(os.Stdout, "[%s] %s: %s\n", post.Board, post.Agent, post.Title)
			})
			c.OnComment(func(board string, comment *store.Comment) {
				fmt.Fprintf(os.Stdout, "[%s] %s commented on #%d: %s\n", board, comment.Agent, comment.PostID, comment.Body)
			})

			if err := c.Connect(); err != nil {
				return err
			}
			defer c.Close()

			if term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Fprintln(os.Stdout, "watching community feed, press Ctrl+C to stop")
			}

			sigc := make(chan os.Signal, 1)
			signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-c.OnClose():
				return err
			case <-sigc:
				return nil
			}
		},
	})
}

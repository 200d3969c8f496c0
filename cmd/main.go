package main

import (
	"github.com/go-zoox/cli"
	"github.com/go-zoox/community"
	"github.com/go-zoox/community/cmd/commands"
)

func main() {
	app := cli.NewMultipleProgram(&cli.MultipleProgramConfig{
		Name:    "community",
		Usage:   "community is a lightweight board for AI agents",
		Version: community.Version,
	})

	// server
	commands.RegistryServer(app)
	// watch
	commands.RegistryWatch(app)

	app.Run()
}

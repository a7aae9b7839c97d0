package main

import (
	"github.com/kettari/pattern-demos/internal/config"
	"github.com/kettari/pattern-demos/internal/console"
	"log/slog"
	"os"
)

func main() {
	conf := config.GetConfig()
	commands := console.Commands{console.NewCommandDemo(os.Stdout, os.Stdin, conf.KeepAlive)}
	if err := commands.Dispatch(os.Stdout, "demo:command"); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

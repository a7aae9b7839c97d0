package main

import (
	"github.com/kettari/pattern-demos/internal/config"
	"github.com/kettari/pattern-demos/internal/console"
	"log/slog"
	"os"
)

const program = "demo_console"

func main() {
	slog.Info("starting console command")

	conf := config.GetConfig()
	commands := initCommands(conf)
	if len(os.Args) > 1 {
		if err := commands.Dispatch(os.Stdout, os.Args[1]); err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
	} else {
		commands.PrintHelp(os.Stdout, program)
	}

	slog.Info("command finished")
}

func initCommands(conf *config.Config) *console.Commands {
	commands := &console.Commands{}
	*commands = append(*commands,
		console.NewHelpCommand(os.Stdout, program, commands),
		console.NewCommandDemo(os.Stdout, os.Stdin, conf.KeepAlive),
		console.NewBridgeDemo(os.Stdout, os.Stdin, conf.KeepAlive),
	)
	return commands
}

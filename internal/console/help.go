package console

import (
	"io"
)

type HelpCommand struct {
	out      io.Writer
	program  string
	commands *Commands
}

// NewHelpCommand prints usage for commands. The slice is read at Run time so
// the help command may list itself.
func NewHelpCommand(out io.Writer, program string, commands *Commands) *HelpCommand {
	cmd := HelpCommand{
		out:      out,
		program:  program,
		commands: commands,
	}
	return &cmd
}

func (cmd *HelpCommand) Name() string {
	return "help"
}

func (cmd *HelpCommand) Description() string {
	return "prints the list of commands"
}

func (cmd *HelpCommand) Run() error {
	cmd.commands.PrintHelp(cmd.out, cmd.program)
	return nil
}

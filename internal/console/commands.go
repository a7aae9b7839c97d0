package console

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type Commands []Command

// Find returns the command registered under name, or nil.
func (c Commands) Find(name string) Command {
	for _, cmd := range c {
		if cmd.Name() == name {
			return cmd
		}
	}
	return nil
}

// Dispatch runs the named command. An unknown name is reported to out and is
// not an error.
func (c Commands) Dispatch(out io.Writer, name string) error {
	cmd := c.Find(name)
	if cmd == nil {
		fmt.Fprintf(out, "command '%s' not found\n", name)
		return nil
	}

	logger := slog.With("command", cmd.Name(), "run_id", uuid.NewString())
	logger.Info("command found")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	logger.Debug("command completed")

	return nil
}

func (c Commands) PrintHelp(out io.Writer, program string) {
	fmt.Fprintf(out, "Usage: %s <command>\n", program)
	for _, cmd := range c {
		fmt.Fprintf(out, "\t%s - %s\n", cmd.Name(), cmd.Description())
	}
}

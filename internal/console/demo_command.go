package console

import (
	"io"
	"log/slog"

	"github.com/kettari/pattern-demos/internal/waiter"
)

type CommandDemo struct {
	out       io.Writer
	in        io.Reader
	keepAlive bool
}

func NewCommandDemo(out io.Writer, in io.Reader, keepAlive bool) *CommandDemo {
	cmd := CommandDemo{
		out:       out,
		in:        in,
		keepAlive: keepAlive,
	}
	return &cmd
}

func (cmd *CommandDemo) Name() string {
	return "demo:command"
}

func (cmd *CommandDemo) Description() string {
	return "runs the Command pattern demo (waiter, cooker and taxi)"
}

func (cmd *CommandDemo) Run() error {
	slog.Debug("wiring invoker")

	invoker := waiter.NewInvoker(cmd.out)
	invoker.SetOnStart(waiter.NewOrderCommand(cmd.out, "Say Hi!"))
	cooker := waiter.NewCooker(cmd.out)
	invoker.SetOnProcess(waiter.NewDelegatingCommand(cmd.out, cooker, "Make fish", "Make meat"))
	invoker.SetOnFinish(waiter.NewTaxiCommand(cmd.out, "Taxi is driving to client"))

	invoker.Run()

	if !cmd.keepAlive {
		return nil
	}
	return waitForLine(cmd.in)
}

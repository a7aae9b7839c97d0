package console

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/kettari/pattern-demos/internal/figure"
)

type BridgeDemo struct {
	out       io.Writer
	in        io.Reader
	keepAlive bool
}

func NewBridgeDemo(out io.Writer, in io.Reader, keepAlive bool) *BridgeDemo {
	cmd := BridgeDemo{
		out:       out,
		in:        in,
		keepAlive: keepAlive,
	}
	return &cmd
}

func (cmd *BridgeDemo) Name() string {
	return "demo:bridge"
}

func (cmd *BridgeDemo) Description() string {
	return "runs the Bridge pattern demo (figure, color and material)"
}

func (cmd *BridgeDemo) Run() error {
	client := figure.NewClient(cmd.out)

	slog.Debug("rendering figure")
	client.Run(figure.NewFigure(figure.Green{}, figure.Wood{}))

	fmt.Fprintln(cmd.out)

	slog.Debug("rendering extended abstraction")
	client.Run(figure.NewExtendedAbstraction(figure.Green{}, figure.Wood{}))

	if !cmd.keepAlive {
		return nil
	}
	return waitForLine(cmd.in)
}

package waiter

import (
	"fmt"
	"io"
	"log/slog"
)

// Invoker triggers up to three commands without knowing what they are.
type Invoker struct {
	out       io.Writer
	onStart   Waiter
	onProcess Waiter
	onFinish  Waiter
}

func NewInvoker(out io.Writer) *Invoker {
	return &Invoker{out: out}
}

func (i *Invoker) SetOnStart(command Waiter) {
	i.onStart = command
}

func (i *Invoker) SetOnProcess(command Waiter) {
	i.onProcess = command
}

func (i *Invoker) SetOnFinish(command Waiter) {
	i.onFinish = command
}

// Run narrates the visit and invokes the assigned commands in
// start, process, finish order. Unassigned slots are skipped.
func (i *Invoker) Run() {
	fmt.Fprintln(i.out, "Client: Hello")
	i.speak("start", i.onStart)

	fmt.Fprintln(i.out, "Client: I am waiting")
	i.speak("process", i.onProcess)

	fmt.Fprintln(i.out, "Client: I need a taxi")
	i.speak("finish", i.onFinish)
}

func (i *Invoker) speak(slot string, command Waiter) {
	if command == nil {
		slog.Debug("no command assigned", "slot", slot)
		return
	}
	command.Speak()
}

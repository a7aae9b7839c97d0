package waiter

import (
	"fmt"
	"io"
)

// Cooker is the receiver doing the actual work behind DelegatingCommand.
type Cooker struct {
	out io.Writer
}

func NewCooker(out io.Writer) *Cooker {
	return &Cooker{out: out}
}

func (c *Cooker) CookDish(name string) {
	fmt.Fprintf(c.out, "Cooker: Working on (%s.)\n", name)
}

func (c *Cooker) CookOther(name string) {
	fmt.Fprintf(c.out, "Cooker: Also working on (%s.)\n", name)
}

package waiter

import (
	"fmt"
	"io"
)

// Waiter is a command that says something when invoked.
type Waiter interface {
	Speak()
}

// OrderCommand takes an order from the client.
type OrderCommand struct {
	out     io.Writer
	payload string
}

func NewOrderCommand(out io.Writer, payload string) *OrderCommand {
	return &OrderCommand{
		out:     out,
		payload: payload,
	}
}

func (c *OrderCommand) Speak() {
	fmt.Fprintf(c.out, "Waiter: %s\n", c.payload)
}

// TaxiCommand tells the client about the taxi.
type TaxiCommand struct {
	out     io.Writer
	payload string
}

func NewTaxiCommand(out io.Writer, payload string) *TaxiCommand {
	return &TaxiCommand{
		out:     out,
		payload: payload,
	}
}

func (c *TaxiCommand) Speak() {
	fmt.Fprintf(c.out, "Taxi: %s\n", c.payload)
}

// DelegatingCommand hands the order over to the cooker.
type DelegatingCommand struct {
	out    io.Writer
	cooker *Cooker
	dish   string
	other  string
}

func NewDelegatingCommand(out io.Writer, cooker *Cooker, dish, other string) *DelegatingCommand {
	return &DelegatingCommand{
		out:    out,
		cooker: cooker,
		dish:   dish,
		other:  other,
	}
}

func (c *DelegatingCommand) Speak() {
	fmt.Fprintln(c.out, "Waiter handed the order to cooker")
	c.cooker.CookDish(c.dish)
	c.cooker.CookOther(c.other)
}

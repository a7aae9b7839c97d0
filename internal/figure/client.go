package figure

import (
	"io"
)

// Client prints whatever abstraction it is given.
type Client struct {
	out io.Writer
}

func NewClient(out io.Writer) *Client {
	return &Client{out: out}
}

func (c *Client) Run(abstraction Abstraction) {
	_, _ = io.WriteString(c.out, abstraction.Operation())
}

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// waitForLine blocks until one line is read from in. End of input counts as
// a line.
func waitForLine(in io.Reader) error {
	slog.Debug("waiting for a line of input")
	_, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

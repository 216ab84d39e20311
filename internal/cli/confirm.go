package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints a [y/N] prompt and reads one line of input. Anything
// other than y/yes declines. The ledger core never gates destructive
// operations itself; this is the place callers do it.
func Confirm(w io.Writer, r io.Reader, prompt string) (bool, error) {
	if _, err := fmt.Fprintf(w, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirmer asks the host environment to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// stdioConfirmer asks a y/N question on the terminal.
type stdioConfirmer struct {
	in  io.Reader
	out io.Writer
}

func newStdioConfirmer() Confirmer {
	return &stdioConfirmer{in: os.Stdin, out: os.Stderr}
}

func (c *stdioConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	sc := bufio.NewScanner(c.in)
	if !sc.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(sc.Text()))
	return answer == "y" || answer == "yes"
}

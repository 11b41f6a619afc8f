package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// password returns flagValue, or reads one from the terminal without echo
// when the flag was left empty.
func (c *CLI) password(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fmt.Fprint(c.errOut, "Password: ")
	pw, err := c.readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(c.errOut)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	s := strings.TrimRight(string(pw), "\r\n")
	if s == "" {
		return "", errors.New("password is required")
	}
	return s, nil
}

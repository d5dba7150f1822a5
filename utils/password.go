package utils

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ReadPasswordFromTerminal prints the prompt to stderr and reads a password
// from stdin without echoing it.
func ReadPasswordFromTerminal(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}

	fmt.Fprintln(os.Stderr)

	return string(pass), nil
}

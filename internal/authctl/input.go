package authctl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// promptText prints a prompt and reads one line of input, trailing newline
// trimmed. A partial line followed by EOF is still accepted.
func (a *App) promptText(prompt string) (string, error) {
	if _, err := fmt.Fprint(a.out, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := a.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads the password from the terminal without echo, then
// prints the newline the suppressed echo swallowed. The caller owns wiping
// the returned bytes.
func (a *App) promptPassword() ([]byte, error) {
	if _, err := fmt.Fprint(a.out, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

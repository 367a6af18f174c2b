package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thomas-vilte/tickety/internal/models"
	"golang.org/x/term"
)

var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// CredentialStore persists the logged-in user between runs.
type CredentialStore interface {
	Load() (*models.Credentials, error)
	Save(creds *models.Credentials) error
}

type Authenticator interface {
	Login(ctx context.Context, username, token string) (*models.Credentials, error)
}

func prompt(w io.Writer, reader *bufio.Reader, label string) (string, error) {
	_, _ = fmt.Fprint(w, label)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret reads a line without echo when in is a terminal.
func promptSecret(w io.Writer, in io.Reader, reader *bufio.Reader, label string) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) {
		return prompt(w, reader, label)
	}

	_, _ = fmt.Fprint(w, label)
	secret, err := readPassword(int(f.Fd()))
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}

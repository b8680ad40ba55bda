// Package authctl implements the admin CLI that creates accounts directly in
// the credential store, bypassing the HTTP surface.
package authctl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/users"
)

// UserService is the slice of the users service the CLI needs.
type UserService interface {
	Register(ctx context.Context, userName string, password string, email string) (*users.User, error)
}

type App struct {
	users UserService
	in    *bufio.Reader
	out   io.Writer
}

func NewApp(us UserService) *App {
	return &App{users: us, in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// CreateUser interactively collects credentials and stores the new account.
func (a *App) CreateUser(ctx context.Context) error {

	userName, err := a.promptText("Enter username")
	if err != nil {
		return err
	}

	email, err := a.promptText("Enter email")
	if err != nil {
		return err
	}

	password, err := a.promptPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.users.Register(ctx, userName, string(password), email); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "User created successfully")
	return nil
}

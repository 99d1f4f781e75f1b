package cli

import (
	"context"

	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password, creates the account and
// starts a session for it.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.svc.Auth.Register(ctx, models.RegisterRequest{Email: email, Password: string(password), Name: name})
	if err != nil {
		return a.report(err)
	}

	a.setUser(u)
	a.startListener(ctx)
	a.println("Welcome,", u.Name)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.svc.Auth.Login(ctx, models.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		a.log.Warn(ctx, "login unsuccessful", "error", err)
		return a.report(err)
	}

	a.setUser(u)
	a.startListener(ctx)
	a.println("Login successful")
	return nil
}

// Logout ends the session locally even when the server cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	a.stopListener()
	err := a.svc.Auth.Logout(ctx)
	a.setUser(nil)
	a.feed.Clear()
	if err != nil {
		return a.report(err)
	}
	a.println("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.svc.Auth.Current(ctx)
	if err != nil {
		return a.report(err)
	}
	if u == nil {
		a.println("Not logged in")
		return nil
	}
	a.println(u.Name, "<"+u.Email+">")
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/outstagram/outstagram-cli/internal/client/forms"
	"github.com/outstagram/outstagram-cli/internal/client/passcheck"
	"github.com/outstagram/outstagram-cli/internal/client/session"
	"github.com/outstagram/outstagram-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts the user for account details and attempts to create a new
// account. The password policy checklist is printed after each password
// entry so the user can see which rules the password satisfies so far.
//
// On success the user is told to log in; signing up does not start a session.
// Password byte slices are securely wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in.")
		return nil
	}

	f := forms.NewSignup(a.api, a.store)

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	f.SetName(name)

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	f.SetEmail(email)

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	f.SetPassword(string(password))
	printPolicy(f.Policy())

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	f.SetConfirm(string(confirm))
	printPolicy(f.Policy())

	f.Submit(ctx)

	if f.State() == forms.StateSucceeded {
		printlnFn("Account created. You can now log in.")
		return nil
	}
	if msg := f.ErrorMessage(); msg != "" {
		printlnFn(msg)
	}
	return nil
}

// printPolicy renders the password policy checklist, one rule per line,
// with satisfied rules ticked.
func printPolicy(r passcheck.Result) {
	printlnFn(fmt.Sprintf("[%s] at least %d characters", mark(r.LengthOK), passcheck.MinLength))
	printlnFn(fmt.Sprintf("[%s] an uppercase letter", mark(r.HasUpper)))
	printlnFn(fmt.Sprintf("[%s] a lowercase letter", mark(r.HasLower)))
	printlnFn(fmt.Sprintf("[%s] a digit", mark(r.HasDigit)))
	printlnFn(fmt.Sprintf("[%s] passwords match", mark(r.Matches)))
}

func mark(ok bool) string {
	if ok {
		return "x"
	}
	return " "
}

// Login prompts the user for credentials and tries to authenticate.
//
// On success the session is stored locally, so the next run of the CLI starts
// logged in. On failure the server's message (or a generic one) is printed.
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	f := forms.NewLogin(a.api, a.creds, a.store)
	f.SetEmail(email)
	f.SetPassword(string(password))
	f.Submit(ctx)

	if f.State() == forms.StateSucceeded {
		printlnFn(fmt.Sprintf("Logged in as %s", a.store.State().Name))
		return nil
	}
	if msg := f.ErrorMessage(); msg != "" {
		printlnFn(msg)
	}
	return nil
}

// Logout removes the locally stored credentials and resets the in-memory
// session. It returns any error from the credential store.
func (a *App) Logout(ctx context.Context) error {
	if err := a.creds.Clear(ctx); err != nil {
		return err
	}
	a.store.Dispatch(session.Reset())
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the current user, or a hint when no session exists.
func (a *App) Whoami(ctx context.Context) error {
	u := a.store.State()
	if u.Anonymous() {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s (id %s)", u.Name, u.ID))
	return nil
}

package forms

import (
	"context"

	"github.com/outstagram/outstagram-cli/internal/client/api"
	"github.com/outstagram/outstagram-cli/internal/client/credentials"
	"github.com/outstagram/outstagram-cli/internal/client/session"
)

// Login collects an email and password and exchanges them for a session.
// On success the credential is persisted and the session store updated before
// the form reports Succeeded.
type Login struct {
	client api.Client
	creds  credentials.Repository
	store  *session.Store

	state        State
	email        string
	password     string
	emailError   bool
	passwordErr  bool
	errorMessage string
}

// NewLogin builds a login form. A form mounted while the store already
// carries an authenticated user starts out Succeeded: logged-in users never
// see the login form.
func NewLogin(client api.Client, creds credentials.Repository, store *session.Store) *Login {
	f := &Login{client: client, creds: creds, store: store}
	if !store.State().Anonymous() {
		f.state = StateSucceeded
	}
	return f
}

func (f *Login) State() State         { return f.state }
func (f *Login) ErrorMessage() string { return f.errorMessage }
func (f *Login) EmailError() bool     { return f.emailError }
func (f *Login) PasswordError() bool  { return f.passwordErr }

// SetEmail updates the email field. The field error flag tracks emptiness on
// every change, and any failed submission state is cleared by the edit.
func (f *Login) SetEmail(v string) {
	f.email = v
	f.emailError = v == ""
	f.edited()
}

// SetPassword updates the password field; same flagging rules as SetEmail.
func (f *Login) SetPassword(v string) {
	f.password = v
	f.passwordErr = v == ""
	f.edited()
}

func (f *Login) edited() {
	if f.state == StateFailed {
		f.state = StateIdle
	}
}

// Submit runs local validation and, if it passes, performs the login request.
// Outcomes are observable via State and ErrorMessage; Submit never returns a
// fault. A call while a submission is in flight does nothing.
func (f *Login) Submit(ctx context.Context) {
	if f.state == StateSubmitting || f.state == StateSucceeded {
		return
	}

	if f.email == "" || f.password == "" {
		switch {
		case f.email == "" && f.password == "":
			f.emailError, f.passwordErr = true, true
			f.errorMessage = "Enter an email and password."
		case f.password == "":
			f.passwordErr = true
			f.errorMessage = "Enter a password."
		default:
			f.emailError = true
			f.errorMessage = "Enter an email."
		}
		return
	}

	f.errorMessage = ""
	f.state = StateSubmitting

	res, err := f.client.Login(ctx, f.email, f.password)
	if err != nil {
		f.errorMessage = api.Message(err, loginGenericError)
		f.state = StateFailed
		return
	}

	if err := f.creds.Save(ctx, res.User, res.Token, res.Expiry); err != nil {
		f.errorMessage = loginGenericError
		f.state = StateFailed
		return
	}

	f.store.Dispatch(session.SetUser(res.User))
	f.state = StateSucceeded
}

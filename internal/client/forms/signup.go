package forms

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/outstagram/outstagram-cli/internal/client/api"
	"github.com/outstagram/outstagram-cli/internal/client/passcheck"
	"github.com/outstagram/outstagram-cli/internal/client/session"
)

// SignupOrigin is the redirect marker carried to the login surface after a
// successful signup.
const SignupOrigin = "signup"

// Signup collects name, email and a password pair, re-checking the password
// policy on every keystroke. A successful signup establishes no session; the
// caller redirects to login with the origin marker.
type Signup struct {
	client   api.Client
	store    *session.Store
	validate *validator.Validate

	state        State
	name         string
	email        string
	password     string
	confirm      string
	nameError    bool
	emailError   bool
	policy       passcheck.Result
	errorMessage string
}

func NewSignup(client api.Client, store *session.Store) *Signup {
	f := &Signup{
		client:   client,
		store:    store,
		validate: validator.New(),
		policy:   passcheck.Check("", ""),
	}
	if !store.State().Anonymous() {
		f.state = StateSucceeded
	}
	return f
}

func (f *Signup) State() State             { return f.state }
func (f *Signup) ErrorMessage() string     { return f.errorMessage }
func (f *Signup) NameError() bool          { return f.nameError }
func (f *Signup) EmailError() bool         { return f.emailError }
func (f *Signup) Policy() passcheck.Result { return f.policy }

// Origin returns the redirect marker for the post-signup login page.
func (f *Signup) Origin() string { return SignupOrigin }

func (f *Signup) SetName(v string) {
	f.name = v
	f.nameError = v == ""
	f.edited()
}

// SetEmail validates the address format on every change, not just on submit.
func (f *Signup) SetEmail(v string) {
	f.email = v
	f.emailError = v == "" || f.validate.Var(v, "email") != nil
	f.edited()
}

func (f *Signup) SetPassword(v string) {
	f.password = v
	f.policy = passcheck.Check(f.password, f.confirm)
	f.edited()
}

func (f *Signup) SetConfirm(v string) {
	f.confirm = v
	f.policy = passcheck.Check(f.password, f.confirm)
	f.edited()
}

func (f *Signup) edited() {
	if f.state == StateFailed {
		f.state = StateIdle
	}
}

// Valid reports overall form validity: non-empty name, a well-formed email,
// and the full password policy.
func (f *Signup) Valid() bool {
	return !f.nameError && f.name != "" && f.email != "" && !f.emailError && f.policy.OK()
}

// Submit refuses locally invalid forms without touching the network;
// otherwise it performs the signup request. Outcomes land in State and
// ErrorMessage. A call while a submission is in flight does nothing.
func (f *Signup) Submit(ctx context.Context) {
	if f.state == StateSubmitting || f.state == StateSucceeded {
		return
	}

	if !f.Valid() {
		f.errorMessage = localErrorsSummary
		return
	}

	f.errorMessage = ""
	f.state = StateSubmitting

	if err := f.client.Signup(ctx, f.name, f.email, f.password); err != nil {
		f.errorMessage = api.Message(err, signupGenericError)
		f.state = StateFailed
		return
	}

	f.state = StateSucceeded
}

package passcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		want     Result
	}{
		{
			name:     "all rules satisfied",
			password: "Abcdef12",
			confirm:  "Abcdef12",
			want:     Result{LengthOK: true, HasUpper: true, HasLower: true, HasDigit: true, Matches: true},
		},
		{
			name:     "empty password, empty confirm",
			password: "",
			confirm:  "",
			want:     Result{Matches: true},
		},
		{
			name:     "short with mismatching confirm",
			password: "abc",
			confirm:  "abcd",
			want:     Result{HasLower: true},
		},
		{
			name:     "no digit",
			password: "Abcdefgh",
			confirm:  "Abcdefgh",
			want:     Result{LengthOK: true, HasUpper: true, HasLower: true, Matches: true},
		},
		{
			name:     "no uppercase",
			password: "abcdefg1",
			confirm:  "abcdefg1",
			want:     Result{LengthOK: true, HasLower: true, HasDigit: true, Matches: true},
		},
		{
			name:     "no lowercase",
			password: "ABCDEFG1",
			confirm:  "ABCDEFG1",
			want:     Result{LengthOK: true, HasUpper: true, HasDigit: true, Matches: true},
		},
		{
			name:     "exactly seven characters",
			password: "Abcdef1",
			confirm:  "Abcdef1",
			want:     Result{HasUpper: true, HasLower: true, HasDigit: true, Matches: true},
		},
		{
			name:     "exactly eight characters",
			password: "Abcdef12",
			confirm:  "Abcdef12",
			want:     Result{LengthOK: true, HasUpper: true, HasLower: true, HasDigit: true, Matches: true},
		},
		{
			name:     "symbols only count for length",
			password: "!@#$%^&*",
			confirm:  "!@#$%^&*",
			want:     Result{LengthOK: true, Matches: true},
		},
		{
			name:     "case-sensitive match",
			password: "Abcdef12",
			confirm:  "abcdef12",
			want:     Result{LengthOK: true, HasUpper: true, HasLower: true, HasDigit: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.password, tt.confirm))
		})
	}
}

func TestResult_OK(t *testing.T) {
	full := Result{LengthOK: true, HasUpper: true, HasLower: true, HasDigit: true, Matches: true}
	assert.True(t, full.OK())

	// Each flag independently gates validity.
	for _, mutate := range []func(*Result){
		func(r *Result) { r.LengthOK = false },
		func(r *Result) { r.HasUpper = false },
		func(r *Result) { r.HasLower = false },
		func(r *Result) { r.HasDigit = false },
		func(r *Result) { r.Matches = false },
	} {
		r := full
		mutate(&r)
		assert.False(t, r.OK())
	}
}

func TestCheck_EmptyMatchIsNotValid(t *testing.T) {
	r := Check("", "")
	assert.True(t, r.Matches)
	assert.False(t, r.OK(), "two empty strings match but must not pass the policy")
}

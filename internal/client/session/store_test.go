package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_InitialStateIsAnonymous(t *testing.T) {
	s := NewStore()
	assert.True(t, s.State().Anonymous())
	assert.Equal(t, User{}, s.State())
}

func TestStore_Dispatch(t *testing.T) {
	alice := User{ID: "1", Name: "Alice", Token: "T"}

	tests := []struct {
		name    string
		initial User
		action  Action
		want    User
	}{
		{
			name:   "setUser replaces wholesale",
			action: SetUser(alice),
			want:   alice,
		},
		{
			name:    "setUser overwrites previous identity",
			initial: User{ID: "9", Name: "Bob"},
			action:  SetUser(alice),
			want:    alice,
		},
		{
			name:    "reset returns to anonymous",
			initial: alice,
			action:  Reset(),
			want:    User{},
		},
		{
			name:    "setID patches a single field",
			initial: User{Name: "Alice"},
			action:  SetID("42"),
			want:    User{ID: "42", Name: "Alice"},
		},
		{
			name:    "setName patches a single field",
			initial: User{ID: "42"},
			action:  SetName("Alice"),
			want:    User{ID: "42", Name: "Alice"},
		},
		{
			name:    "unknown kind is a no-op",
			initial: alice,
			action:  Action{Kind: Kind("refreshToken")},
			want:    alice,
		},
		{
			name:    "zero action is a no-op",
			initial: alice,
			action:  Action{},
			want:    alice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			if tt.initial != (User{}) {
				s.Dispatch(SetUser(tt.initial))
			}
			s.Dispatch(tt.action)
			assert.Equal(t, tt.want, s.State())
		})
	}
}

func TestStore_SubscribersNotifiedBeforeDispatchReturns(t *testing.T) {
	s := NewStore()

	var seen []User
	cancel := s.Subscribe(func(u User) { seen = append(seen, u) })
	defer cancel()

	s.Dispatch(SetUser(User{Name: "Alice"}))

	require.Len(t, seen, 1)
	assert.Equal(t, "Alice", seen[0].Name)
}

func TestStore_UnsubscribeStopsNotifications(t *testing.T) {
	s := NewStore()

	calls := 0
	cancel := s.Subscribe(func(User) { calls++ })

	s.Dispatch(SetName("Alice"))
	cancel()
	cancel() // safe to call twice
	s.Dispatch(SetName("Bob"))

	assert.Equal(t, 1, calls)
}

func TestStore_MultipleSubscribers(t *testing.T) {
	s := NewStore()

	a, b := 0, 0
	s.Subscribe(func(User) { a++ })
	s.Subscribe(func(User) { b++ })

	s.Dispatch(Reset())

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

// Package session holds the authenticated user's identity for the lifetime of
// the process. A single Store instance is shared by every component; readers
// never mutate it directly, only through dispatched actions.
package session

import "sync"

// User is the in-memory representation of the current user's identity.
// An empty Name means anonymous/unauthenticated.
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Token string `json:"token,omitempty"`
}

// Anonymous reports whether the user carries no authenticated identity.
func (u User) Anonymous() bool {
	return u.Name == ""
}

// Kind discriminates the closed set of store actions.
type Kind string

const (
	KindSetUser Kind = "setUser"
	KindReset   Kind = "reset"
	KindSetID   Kind = "setID"
	KindSetName Kind = "setName"
)

// Action is a tagged mutation request. Only the payload field matching Kind
// is consulted.
type Action struct {
	Kind Kind
	User User
	ID   string
	Name string
}

// SetUser replaces the state wholesale.
func SetUser(u User) Action { return Action{Kind: KindSetUser, User: u} }

// Reset returns the state to anonymous.
func Reset() Action { return Action{Kind: KindReset} }

// SetID patches only the ID field. Legacy path, narrower than SetUser.
func SetID(id string) Action { return Action{Kind: KindSetID, ID: id} }

// SetName patches only the Name field. Legacy path, narrower than SetUser.
func SetName(name string) Action { return Action{Kind: KindSetName, Name: name} }

// Store is the process-wide session state container. Dispatch is synchronous:
// the new state is visible to State() and every subscriber has been notified
// before Dispatch returns. Dispatch never fails; malformed input is rejected
// at the persistence boundary, not here.
type Store struct {
	mu    sync.Mutex
	state User
	subs  map[int]func(User)
	next  int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(User))}
}

// State returns the current user.
func (s *Store) State() User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a to the state and notifies subscribers. Unknown action
// kinds leave the state unchanged; the permissive fallback is kept for
// forward compatibility.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	state := s.state
	fns := make([]func(User), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

// Subscribe registers fn to be called on every dispatch. The returned
// function cancels the subscription and is safe to call more than once.
func (s *Store) Subscribe(fn func(User)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func reduce(cur User, a Action) User {
	switch a.Kind {
	case KindSetUser:
		return a.User
	case KindReset:
		return User{}
	case KindSetID:
		cur.ID = a.ID
		return cur
	case KindSetName:
		cur.Name = a.Name
		return cur
	default:
		return cur
	}
}

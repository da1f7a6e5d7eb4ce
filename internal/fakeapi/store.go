package fakeapi

import (
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/garrettladley/safequake/internal/client/quake"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("earthquake not found")
)

type user struct {
	name      string
	email     string
	password  string
	latitude  float64
	longitude float64
}

// Store keeps users, issued tokens and earthquakes in memory.
type Store struct {
	mu     sync.RWMutex
	users  map[string]user
	tokens map[string]string
	quakes []quake.Earthquake
	nextID int64
}

func NewStore() *Store {
	return &Store{
		users:  make(map[string]user),
		tokens: make(map[string]string),
		nextID: 1,
	}
}

func (s *Store) Register(reg quake.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[reg.Email]; ok {
		return ErrUserExists
	}
	s.users[reg.Email] = user{
		name:      reg.Name,
		email:     reg.Email,
		password:  reg.Password,
		latitude:  reg.Latitude,
		longitude: reg.Longitude,
	}
	return nil
}

// Login issues a fresh token for valid credentials.
func (s *Store) Login(creds quake.Credentials) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[creds.Email]
	if !ok || u.password != creds.Password {
		return "", ErrInvalidCredentials
	}
	token := uuid.NewString()
	s.tokens[token] = u.email
	return token, nil
}

// IssueToken grants a token for email without a password check.
func (s *Store) IssueToken(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.NewString()
	s.tokens[token] = email
	return token
}

func (s *Store) Authenticate(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email, ok := s.tokens[token]
	return email, ok
}

// Seed appends records, assigning ids to those without one.
func (s *Store) Seed(records ...quake.Earthquake) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		if r.ID == 0 {
			r.ID = s.nextID
		}
		if r.Nivel == "" {
			r.Nivel = Classify(r.Magnitude)
		}
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
		s.quakes = append(s.quakes, r)
	}
}

func (s *Store) List() []quake.Earthquake {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.quakes)
}

func (s *Store) Create(in quake.ManualEarthquake) quake.Earthquake {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := quake.Earthquake{
		ID:        s.nextID,
		Timestamp: in.Timestamp,
		Magnitude: in.Magnitude,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Nivel:     Classify(in.Magnitude),
	}
	s.nextID++
	s.quakes = append(s.quakes, e)
	return e
}

func (s *Store) Update(id int64, in quake.EarthquakeUpdate) (quake.Earthquake, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return quake.Earthquake{}, ErrNotFound
	}
	e := &s.quakes[i]
	if in.Timestamp != "" {
		e.Timestamp = in.Timestamp
	}
	e.Magnitude = in.Magnitude
	e.Nivel = in.Nivel
	if e.Nivel == "" {
		e.Nivel = Classify(in.Magnitude)
	}
	return *e, nil
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.quakes = slices.Delete(s.quakes, i, i+1)
	return nil
}

func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.quakes, func(e quake.Earthquake) bool { return e.ID == id })
}

const (
	NivelLeve     = "Leve"
	NivelModerado = "Moderado"
	NivelForte    = "Forte"
)

// Classify maps a magnitude to its classification level.
func Classify(magnitude float64) string {
	switch {
	case magnitude < 4:
		return NivelLeve
	case magnitude < 6:
		return NivelModerado
	default:
		return NivelForte
	}
}

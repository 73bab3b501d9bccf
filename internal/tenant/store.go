// Package tenant tracks, per user, the condominiums they can reach and which one
// is active.
//
// Each user has one Store. Switch is its only writer of the active selection and
// the only code that persists it. Init rebuilds the accessible list and picks the
// active condominium by precedence: the persisted selection if still accessible,
// then the principal link, then the first accessible condominium, else none.
//
// Init and Switch may race. Init is cancel-and-replace: starting a new Init cancels
// the one in flight and a superseded Init never touches state. A Switch that lands
// while an Init is loading wins: the Init still installs the fresh accessible list
// but keeps the switched selection when it remains accessible.
package tenant

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ErrSuperseded is returned by an Init replaced by a newer one
var ErrSuperseded = errors.New("tenant initialization superseded")

// Condominium is one accessible condominium as seen by the user
type Condominium struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"nome"`
	Role        models.Role `json:"papel,omitempty"`
	IsPrincipal bool        `json:"is_principal"`
}

// State is a snapshot of a user's tenant context
type State struct {
	Accessible  []Condominium `json:"condominios"`
	ActiveID    *uuid.UUID    `json:"condominio_ativo_id"`
	GlobalAdmin bool          `json:"global_admin"`
	Ready       bool          `json:"ready"`
}

// Active returns the active condominium entry
func (s State) Active() (Condominium, bool) {
	if s.ActiveID == nil {
		return Condominium{}, false
	}
	return s.find(*s.ActiveID)
}

// Has reports whether id is accessible
func (s State) Has(id uuid.UUID) bool {
	_, ok := s.find(id)
	return ok
}

func (s State) find(id uuid.UUID) (Condominium, bool) {
	for _, c := range s.Accessible {
		if c.ID == id {
			return c, true
		}
	}
	return Condominium{}, false
}

func (s State) clone() State {
	out := s
	out.Accessible = append([]Condominium(nil), s.Accessible...)
	if s.ActiveID != nil {
		id := *s.ActiveID
		out.ActiveID = &id
	}
	return out
}

// Source is everything a Store reads or writes
type Source struct {
	Profiles interface {
		GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
	}
	Links interface {
		ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CondominiumLink, error)
		GetByUserAndCondominium(ctx context.Context, userID, condominiumID uuid.UUID) (*models.CondominiumLink, error)
	}
	Condominiums interface {
		GetAll(ctx context.Context) ([]models.Condominium, error)
		GetByID(ctx context.Context, id uuid.UUID) (*models.Condominium, error)
	}
	Selections interface {
		Get(ctx context.Context, userID uuid.UUID) (*models.TenantSelection, error)
		Save(ctx context.Context, userID, condominiumID uuid.UUID) error
	}
}

// Store holds one user's tenant context
type Store struct {
	userID uuid.UUID
	src    *Source

	// writeMu serializes Switch calls
	writeMu sync.Mutex

	mu         sync.Mutex
	state      State
	initGen    uint64
	switchSeq  uint64
	cancelInit context.CancelFunc
	subs       map[int]chan State
	nextSub    int
}

// NewStore creates an empty, not-ready store
func NewStore(userID uuid.UUID, src *Source) *Store {
	return &Store{userID: userID, src: src, subs: make(map[int]chan State)}
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe returns a channel receiving every new state. The channel holds only
// the latest state; a slow reader skips intermediate ones.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan State, 1)
	s.subs[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

// closeSubscribers ends every subscription
func (s *Store) closeSubscribers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelInit != nil {
		s.cancelInit()
		s.cancelInit = nil
	}
	for id, c := range s.subs {
		delete(s.subs, id)
		close(c)
	}
}

// publishLocked sends the state to subscribers; caller holds mu
func (s *Store) publishLocked() {
	for _, ch := range s.subs {
		st := s.state.clone()
		select {
		case ch <- st:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
}

// Init loads the accessible list and selects the active condominium
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	if s.cancelInit != nil {
		s.cancelInit()
	}
	s.initGen++
	gen := s.initGen
	switchesAtStart := s.switchSeq
	ictx, cancel := context.WithCancel(ctx)
	s.cancelInit = cancel
	s.mu.Unlock()
	defer cancel()

	loaded, err := s.load(ictx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.initGen {
		return ErrSuperseded
	}
	s.cancelInit = nil
	if err != nil {
		return err
	}

	s.state.Accessible = loaded.accessible
	s.state.GlobalAdmin = loaded.globalAdmin
	switched := s.switchSeq != switchesAtStart
	if !(switched && s.state.ActiveID != nil && s.state.Has(*s.state.ActiveID)) {
		s.state.ActiveID = choose(loaded.accessible, loaded.persisted, loaded.principal)
	}
	s.state.Ready = true
	s.publishLocked()
	return nil
}

// Switch makes id the active condominium after checking membership and persisting it
func (s *Store) Switch(ctx context.Context, id uuid.UUID) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	entry, err := s.membership(ctx, id)
	if err != nil {
		return err
	}
	if err := s.src.Selections.Save(ctx, s.userID, id); err != nil {
		return apperrors.NewTransientError("persist tenant selection", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.switchSeq++
	if !s.state.Has(id) {
		s.state.Accessible = append(s.state.Accessible, entry)
	}
	active := id
	s.state.ActiveID = &active
	s.publishLocked()
	return nil
}

func (s *Store) membership(ctx context.Context, id uuid.UUID) (Condominium, error) {
	link, err := s.src.Links.GetByUserAndCondominium(ctx, s.userID, id)
	if err == nil {
		entry := Condominium{ID: id, Role: link.Role.Normalize(), IsPrincipal: link.IsPrincipal}
		if link.Condominium != nil {
			entry.Name = link.Condominium.Name
		} else if c, cerr := s.src.Condominiums.GetByID(ctx, id); cerr == nil {
			entry.Name = c.Name
		}
		return entry, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Condominium{}, apperrors.NewTransientError("check membership", err)
	}

	profile, err := s.src.Profiles.GetByID(ctx, s.userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Condominium{}, notAccessible()
		}
		return Condominium{}, apperrors.NewTransientError("load profile", err)
	}
	if !profile.GlobalRole.IsGlobalAdmin() {
		return Condominium{}, notAccessible()
	}
	c, err := s.src.Condominiums.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Condominium{}, notAccessible()
		}
		return Condominium{}, apperrors.NewTransientError("load condominium", err)
	}
	return Condominium{ID: c.ID, Name: c.Name}, nil
}

func notAccessible() error {
	return apperrors.NewValidationError("condominio_id", "condominium is not accessible to this user")
}

type loadResult struct {
	accessible  []Condominium
	globalAdmin bool
	persisted   *uuid.UUID
	principal   *uuid.UUID
}

func (s *Store) load(ctx context.Context) (*loadResult, error) {
	profile, err := s.src.Profiles.GetByID(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	res := &loadResult{globalAdmin: profile.GlobalRole.IsGlobalAdmin()}

	var links []models.CondominiumLink
	var all []models.Condominium

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		links, err = s.src.Links.ListByUser(gctx, s.userID)
		if err != nil {
			return fmt.Errorf("list links: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		sel, err := s.src.Selections.Get(gctx, s.userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("load persisted selection: %w", err)
		}
		id := sel.CondominiumID
		res.persisted = &id
		return nil
	})
	if res.globalAdmin {
		g.Go(func() error {
			var err error
			all, err = s.src.Condominiums.GetAll(gctx)
			if err != nil {
				return fmt.Errorf("list condominiums: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.CondominiumLink, len(links))
	for _, l := range links {
		byID[l.CondominiumID] = l
		if l.IsPrincipal && res.principal == nil {
			id := l.CondominiumID
			res.principal = &id
		}
	}

	if res.globalAdmin {
		for _, c := range all {
			entry := Condominium{ID: c.ID, Name: c.Name}
			if l, ok := byID[c.ID]; ok {
				entry.Role = l.Role.Normalize()
				entry.IsPrincipal = l.IsPrincipal
			}
			res.accessible = append(res.accessible, entry)
		}
		sort.SliceStable(res.accessible, func(i, j int) bool { return res.accessible[i].Name < res.accessible[j].Name })
		return res, nil
	}

	for _, l := range links {
		entry := Condominium{ID: l.CondominiumID, Role: l.Role.Normalize(), IsPrincipal: l.IsPrincipal}
		if l.Condominium != nil {
			entry.Name = l.Condominium.Name
		}
		res.accessible = append(res.accessible, entry)
	}
	return res, nil
}

// choose applies the selection precedence; a stale persisted id is never returned
func choose(accessible []Condominium, persisted, principal *uuid.UUID) *uuid.UUID {
	st := State{Accessible: accessible}
	pick := func(id uuid.UUID) *uuid.UUID { return &id }
	switch {
	case persisted != nil && st.Has(*persisted):
		return pick(*persisted)
	case principal != nil && st.Has(*principal):
		return pick(*principal)
	case len(accessible) > 0:
		return pick(accessible[0].ID)
	}
	return nil
}

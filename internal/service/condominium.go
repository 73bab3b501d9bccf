package service

import (
	"context"
	"errors"
	"fmt"

	"condo-maintenance-backend/internal/cache"
	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/logger"
	"condo-maintenance-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantReloader refreshes a user's tenant context after their links change
type TenantReloader interface {
	Reload(ctx context.Context, userID uuid.UUID)
}

type noopReloader struct{}

func (noopReloader) Reload(context.Context, uuid.UUID) {}

// CondominiumService manages tenants
type CondominiumService struct {
	repo    repository.CondominiumRepositoryInterface
	users   repository.UserRepositoryInterface
	links   repository.CondominiumLinkRepositoryInterface
	tenants TenantReloader
	deps    Deps
}

var _ CondominiumServiceInterface = (*CondominiumService)(nil)

// NewCondominiumService creates a new condominium service
func NewCondominiumService(
	repo repository.CondominiumRepositoryInterface,
	users repository.UserRepositoryInterface,
	links repository.CondominiumLinkRepositoryInterface,
	tenants TenantReloader,
	deps Deps,
) *CondominiumService {
	if tenants == nil {
		tenants = noopReloader{}
	}
	return &CondominiumService{repo: repo, users: users, links: links, tenants: tenants, deps: deps.withDefaults()}
}

// CondominiumRequest is the body of condominium create and update
type CondominiumRequest struct {
	Name       string `json:"nome" validate:"required,max=200"`
	TaxID      string `json:"cnpj,omitempty" validate:"max=20"`
	Address    string `json:"endereco,omitempty" validate:"max=300"`
	City       string `json:"cidade,omitempty" validate:"max=120"`
	State      string `json:"estado,omitempty" validate:"omitempty,len=2"`
	PostalCode string `json:"cep,omitempty" validate:"max=10"`
}

func (r *CondominiumRequest) apply(c *models.Condominium) {
	c.Name = r.Name
	c.TaxID = r.TaxID
	c.Address = r.Address
	c.City = r.City
	c.State = r.State
	c.PostalCode = r.PostalCode
}

// ListForUser returns every condominium for global admins and the linked ones otherwise
func (s *CondominiumService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Condominium, error) {
	profile, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrUserNotFound, "get user")
	}
	if profile.GlobalRole.IsGlobalAdmin() {
		all, err := s.repo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list condominiums: %w", err)
		}
		return all, nil
	}

	links, err := s.links.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list condominium links: %w", err)
	}
	out := make([]models.Condominium, 0, len(links))
	for _, l := range links {
		if l.Condominium != nil {
			out = append(out, *l.Condominium)
		}
	}
	return out, nil
}

// Get returns one condominium
func (s *CondominiumService) Get(ctx context.Context, id uuid.UUID) (*models.Condominium, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrCondominiumNotFound, "get condominium")
	}
	return c, nil
}

// Create adds a condominium
func (s *CondominiumService) Create(ctx context.Context, req *CondominiumRequest) (*models.Condominium, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	c := &models.Condominium{}
	req.apply(c)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create condominium: %w", err)
	}
	logger.WithContext(ctx).WithField("condominio_id", c.ID.String()).Info("condominium created")
	return c, nil
}

// Update replaces a condominium's fields
func (s *CondominiumService) Update(ctx context.Context, id uuid.UUID, req *CondominiumRequest) (*models.Condominium, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.apply(c)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update condominium: %w", err)
	}
	return c, nil
}

// Delete removes a condominium with its links and refreshes the affected users
func (s *CondominiumService) Delete(ctx context.Context, id uuid.UUID) error {
	links, err := s.links.ListByCondominium(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list condominium members: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return lookup(err, apperrors.ErrCondominiumNotFound, "delete condominium")
	}

	if s.deps.Cache != nil {
		s.deps.Cache.InvalidateTenant(id)
	}
	for _, l := range links {
		s.tenants.Reload(ctx, l.UserID)
	}
	logger.WithContext(ctx).WithField("condominio_id", id.String()).Info("condominium deleted")
	return nil
}

// MembershipService manages profiles and their condominium links
type MembershipService struct {
	users   repository.UserRepositoryInterface
	links   repository.CondominiumLinkRepositoryInterface
	tenants TenantReloader
	deps    Deps
}

var _ MembershipServiceInterface = (*MembershipService)(nil)

// NewMembershipService creates a new membership service
func NewMembershipService(users repository.UserRepositoryInterface, links repository.CondominiumLinkRepositoryInterface, tenants TenantReloader, deps Deps) *MembershipService {
	if tenants == nil {
		tenants = noopReloader{}
	}
	return &MembershipService{users: users, links: links, tenants: tenants, deps: deps.withDefaults()}
}

// AddMemberRequest links an existing user to the condominium
type AddMemberRequest struct {
	Email       string      `json:"email" validate:"required,email"`
	Role        models.Role `json:"papel" validate:"required"`
	IsPrincipal bool        `json:"is_principal,omitempty"`
}

// UpdateRoleRequest changes a member's role
type UpdateRoleRequest struct {
	Role models.Role `json:"papel" validate:"required"`
}

// UpdateProfileRequest edits the caller's own profile
type UpdateProfileRequest struct {
	Name  string `json:"nome" validate:"required,max=200"`
	Phone string `json:"telefone,omitempty" validate:"max=30"`
}

// MemberResponse is one user linked to a condominium
type MemberResponse struct {
	LinkID      uuid.UUID   `json:"vinculo_id"`
	UserID      uuid.UUID   `json:"usuario_id"`
	Email       string      `json:"email"`
	Name        string      `json:"nome"`
	Role        models.Role `json:"papel"`
	IsPrincipal bool        `json:"is_principal"`
}

func checkRole(r models.Role) error {
	if !r.IsValid() {
		return apperrors.NewValidationError("papel", fmt.Sprintf("unknown role %q", r))
	}
	return nil
}

// Profile returns a user's profile
func (s *MembershipService) Profile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrUserNotFound, "get user")
	}
	return u, nil
}

// UpdateProfile edits name and phone
func (s *MembershipService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*models.UserProfile, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Name = req.Name
	u.Phone = req.Phone
	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return u, nil
}

// MyLinks returns the caller's condominium links
func (s *MembershipService) MyLinks(ctx context.Context, userID uuid.UUID) ([]models.CondominiumLink, error) {
	links, err := s.links.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list condominium links: %w", err)
	}
	return links, nil
}

// ListMembers returns the users linked to the condominium
func (s *MembershipService) ListMembers(ctx context.Context, condominiumID uuid.UUID) ([]MemberResponse, error) {
	key := cache.Key(resourceMembers, condominiumID, "all")
	return cache.Fetch(ctx, s.deps.Cache, key, func(ctx context.Context) ([]MemberResponse, error) {
		links, err := s.links.ListByCondominium(ctx, condominiumID)
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}
		out := make([]MemberResponse, 0, len(links))
		for _, l := range links {
			m := MemberResponse{LinkID: l.ID, UserID: l.UserID, Role: l.Role.Normalize(), IsPrincipal: l.IsPrincipal}
			if l.User != nil {
				m.Email = l.User.Email
				m.Name = l.User.Name
			}
			out = append(out, m)
		}
		return out, nil
	})
}

// AddMember links the user registered under req.Email
func (s *MembershipService) AddMember(ctx context.Context, condominiumID uuid.UUID, req *AddMemberRequest) (*models.CondominiumLink, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	if err := checkRole(req.Role); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, lookup(err, apperrors.ErrUserNotFound, "get user")
	}
	existing, err := s.links.GetByUserAndCondominium(ctx, user.ID, condominiumID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing link: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCondominiumLinkExists
	}

	link := &models.CondominiumLink{
		UserID:        user.ID,
		CondominiumID: condominiumID,
		Role:          req.Role.Normalize(),
		IsPrincipal:   req.IsPrincipal,
	}
	if err := s.links.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	s.deps.invalidate(ctx, condominiumID, resourceMembers)
	s.tenants.Reload(ctx, user.ID)
	return link, nil
}

// memberLink loads a link and checks it belongs to the condominium
func (s *MembershipService) memberLink(ctx context.Context, condominiumID, linkID uuid.UUID) (*models.CondominiumLink, error) {
	link, err := s.links.GetByID(ctx, linkID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrCondominiumLinkNotFound, "get link")
	}
	if link.CondominiumID != condominiumID {
		return nil, apperrors.ErrCondominiumLinkNotFound
	}
	return link, nil
}

// UpdateRole changes a member's role
func (s *MembershipService) UpdateRole(ctx context.Context, condominiumID, linkID uuid.UUID, req *UpdateRoleRequest) (*models.CondominiumLink, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	if err := checkRole(req.Role); err != nil {
		return nil, err
	}
	link, err := s.memberLink(ctx, condominiumID, linkID)
	if err != nil {
		return nil, err
	}
	if err := s.links.UpdateRole(ctx, linkID, req.Role.Normalize()); err != nil {
		return nil, lookup(err, apperrors.ErrCondominiumLinkNotFound, "update role")
	}
	link.Role = req.Role.Normalize()

	s.deps.invalidate(ctx, condominiumID, resourceMembers)
	s.tenants.Reload(ctx, link.UserID)
	return link, nil
}

// RemoveMember deletes a link
func (s *MembershipService) RemoveMember(ctx context.Context, condominiumID, linkID uuid.UUID) error {
	link, err := s.memberLink(ctx, condominiumID, linkID)
	if err != nil {
		return err
	}
	if err := s.links.Delete(ctx, linkID); err != nil {
		return lookup(err, apperrors.ErrCondominiumLinkNotFound, "delete link")
	}

	s.deps.invalidate(ctx, condominiumID, resourceMembers)
	s.tenants.Reload(ctx, link.UserID)
	return nil
}

// SetPrincipal makes one of the caller's links principal, demoting the previous one
func (s *MembershipService) SetPrincipal(ctx context.Context, userID, linkID uuid.UUID) error {
	if err := s.links.SetPrincipal(ctx, userID, linkID); err != nil {
		return lookup(err, apperrors.ErrCondominiumLinkNotFound, "set principal link")
	}
	if s.deps.Cache != nil {
		s.deps.Cache.InvalidateEverywhere(resourceMembers)
	}
	s.tenants.Reload(ctx, userID)
	return nil
}

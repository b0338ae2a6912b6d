package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/eucorp/planning/internal/core"
	"github.com/eucorp/planning/internal/domain/model"
)

// ErrProfileMissing reports that no profile exists for an authenticated identity.
var ErrProfileMissing = errors.New("no profile for identity")

// defaultProfileCacheTTL bounds staleness of cached profile lookups. Role and
// verification changes take at most this long to propagate to open sessions.
const defaultProfileCacheTTL = 30 * time.Second

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	Repo core.ProfileRepository
	// Cache, when set, short-circuits GetByEmail. Every page render resolves
	// the session's profile, so this keeps Postgres off the hot path.
	Cache    core.CacheRepository
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// ProfileService provides business logic for user profiles.
type ProfileService struct {
	repo     core.ProfileRepository
	cache    core.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) *ProfileService {
	if opts.Repo == nil {
		panic("ProfileRepository is required")
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultProfileCacheTTL
	}
	return &ProfileService{repo: opts.Repo, cache: opts.Cache, cacheTTL: ttl, logger: opts.Logger}
}

func profileCacheKey(email string) string {
	return "profile:email:" + email
}

func (s *ProfileService) cachedProfile(ctx context.Context, email string) *model.Profile {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, profileCacheKey(email))
	if err != nil || raw == nil {
		return nil
	}
	var p model.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return &p
}

func (s *ProfileService) storeProfile(ctx context.Context, p *model.Profile) {
	if s.cache == nil || p == nil || p.Email == "" {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, profileCacheKey(p.Email), raw, s.cacheTTL); err != nil && s.logger != nil {
		s.logger.Warn("profile cache set failed", "email", p.Email, "error", err)
	}
}

func (s *ProfileService) evictProfile(ctx context.Context, email string) {
	if s.cache == nil || email == "" {
		return
	}
	if _, err := s.cache.Delete(ctx, profileCacheKey(email)); err != nil && s.logger != nil {
		s.logger.Warn("profile cache evict failed", "email", email, "error", err)
	}
}

// Create creates a profile.
func (s *ProfileService) Create(
	ctx context.Context,
	req *model.CreateProfileRequest,
) (*model.Profile, error) {
	p, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

// GetByID retrieves a profile by ID.
func (s *ProfileService) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByEmail retrieves a profile by email, consulting the cache first.
func (s *ProfileService) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	if p := s.cachedProfile(ctx, email); p != nil {
		return p, nil
	}
	p, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	s.storeProfile(ctx, p)
	return p, nil
}

// EnsureForIdentity resolves the profile for an authenticated identity,
// creating a fresh unverified one on first login.
func (s *ProfileService) EnsureForIdentity(
	ctx context.Context,
	req *model.CreateProfileRequest,
) (*model.Profile, error) {
	if req == nil {
		return nil, errors.New("identity request is required")
	}
	p, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return p, nil
	}
	p, createErr := s.repo.Create(ctx, req)
	if createErr != nil {
		return nil, fmt.Errorf("ensure profile for identity: %w", createErr)
	}
	if s.logger != nil {
		s.logger.Info("profile created on first login", "email", p.Email)
	}
	return p, nil
}

// List returns a page of profiles.
func (s *ProfileService) List(ctx context.Context, limit, offset int) ([]*model.Profile, error) {
	return s.repo.List(ctx, limit, offset)
}

// ListWithDepartments returns profiles with department names resolved.
func (s *ProfileService) ListWithDepartments(
	ctx context.Context,
	limit, offset int,
) ([]*model.ProfileWithDepartment, error) {
	return s.repo.ListWithDepartments(ctx, limit, offset)
}

// Update updates a profile.
func (s *ProfileService) Update(
	ctx context.Context,
	id string,
	req model.UpdateProfileRequest,
) (*model.Profile, error) {
	p, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	s.evictProfile(ctx, p.Email)
	return p, nil
}

// Verify marks a profile as verified.
func (s *ProfileService) Verify(ctx context.Context, id string) (*model.Profile, error) {
	p, err := s.repo.Verify(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("verify profile: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("profile verified", "id", p.ID)
	}
	s.evictProfile(ctx, p.Email)
	return p, nil
}

// Delete deletes a profile by ID.
func (s *ProfileService) Delete(ctx context.Context, id string) (bool, error) {
	// Look up the email before the row disappears so the cache entry goes too.
	var email string
	if s.cache != nil {
		if p, err := s.repo.GetByID(ctx, id); err == nil {
			email = p.Email
		}
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete profile: %w", err)
	}
	if ok {
		s.evictProfile(ctx, email)
	}
	return ok, nil
}

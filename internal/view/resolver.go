// Package view implements the role-gated page contract shared by every
// server-rendered page: resolving the session into a closed render variant,
// and tracking per-page list state with row-scoped pending mutations.
package view

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eucorp/planning/internal/domain/auth"
	"github.com/eucorp/planning/internal/domain/model"
)

// User-facing messages for the resolution failure branches.
const (
	MsgSessionOrProfileFailed  = "Failed to load session or profile data."
	MsgInsufficientPermissions = "You do not have the required permissions to view this page."
)

// Variant is the closed set of render variants a page can take. Role checks
// happen exactly once, at resolution; handlers branch on the variant only.
type Variant int

const (
	// VariantUnauthorized renders the soft permissions message. Unrecognized
	// roles land here rather than producing an error page.
	VariantUnauthorized Variant = iota
	// VariantAdmin renders the full administrative view.
	VariantAdmin
	// VariantDepartmentUser renders the department-scoped view.
	VariantDepartmentUser
)

// String returns the variant name for logging.
func (v Variant) String() string {
	switch v {
	case VariantAdmin:
		return "admin"
	case VariantDepartmentUser:
		return "department_user"
	default:
		return "unauthorized"
	}
}

// Outcome classifies the result of resolving a page's session and profile.
type Outcome int

const (
	// OutcomeNoSession means no authenticated session exists.
	OutcomeNoSession Outcome = iota
	// OutcomeProfileError means a session exists but the profile lookup failed.
	OutcomeProfileError
	// OutcomeResolved means the profile loaded and a variant was decided.
	OutcomeResolved
)

// Resolution is the result of resolving one page instance.
type Resolution struct {
	Outcome Outcome
	Variant Variant
	Profile *model.Profile
}

// Message returns the user-facing message for non-success outcomes, or ""
// when the page should render normally.
func (r Resolution) Message() string {
	switch {
	case r.Outcome == OutcomeNoSession, r.Outcome == OutcomeProfileError:
		return MsgSessionOrProfileFailed
	case r.Outcome == OutcomeResolved && r.Variant == VariantUnauthorized:
		return MsgInsufficientPermissions
	default:
		return ""
	}
}

// ProfileLookup is the minimal profile dependency of the resolver.
type ProfileLookup interface {
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
}

// ResolverOptions groups dependencies for Resolver.
type ResolverOptions struct {
	Profiles ProfileLookup
	Logger   *slog.Logger
}

// Resolver turns a session (or its absence) into a Resolution. It performs
// exactly one profile lookup per call when a session is present, and none
// otherwise.
type Resolver struct {
	profiles ProfileLookup
	logger   *slog.Logger
}

// NewResolver constructs a new Resolver.
func NewResolver(opts ResolverOptions) *Resolver {
	if opts.Profiles == nil {
		panic("ProfileLookup is required")
	}
	return &Resolver{profiles: opts.Profiles, logger: opts.Logger}
}

// Resolve decides the render variant for one page instance. The session is
// explicit input rather than ambient state so the decision is testable and
// scoped to the page.
func (r *Resolver) Resolve(ctx context.Context, session *auth.Session) Resolution {
	if session == nil {
		return Resolution{Outcome: OutcomeNoSession}
	}

	profile, err := r.profiles.GetByEmail(ctx, session.Email)
	if err != nil {
		r.log().Warn("profile lookup failed during page resolution",
			"email", session.Email,
			"error", err,
		)
		return Resolution{Outcome: OutcomeProfileError}
	}

	return Resolution{
		Outcome: OutcomeResolved,
		Variant: VariantForRole(profile.Role),
		Profile: profile,
	}
}

// VariantForRole maps a stored role string onto the closed variant set.
// Anything outside the known roles is Unauthorized.
func VariantForRole(role string) Variant {
	switch role {
	case "admin":
		return VariantAdmin
	case "user":
		return VariantDepartmentUser
	default:
		return VariantUnauthorized
	}
}

func (r *Resolver) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

// String returns the outcome name for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeProfileError:
		return "profile_error"
	case OutcomeResolved:
		return "resolved"
	default:
		return "no_session"
	}
}

// Err returns a descriptive error for non-resolved outcomes, mainly for log
// enrichment; rendering uses Message instead.
func (r Resolution) Err() error {
	switch r.Outcome {
	case OutcomeNoSession:
		return fmt.Errorf("no session")
	case OutcomeProfileError:
		return fmt.Errorf("profile load failed")
	default:
		return nil
	}
}

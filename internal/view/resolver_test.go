package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eucorp/planning/internal/domain/auth"
	"github.com/eucorp/planning/internal/domain/model"
)

type stubProfiles struct {
	profile *model.Profile
	err     error
	calls   int
}

func (s *stubProfiles) GetByEmail(_ context.Context, _ string) (*model.Profile, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func TestResolveNoSession(t *testing.T) {
	profiles := &stubProfiles{}
	r := NewResolver(ResolverOptions{Profiles: profiles})

	res := r.Resolve(context.Background(), nil)

	assert.Equal(t, OutcomeNoSession, res.Outcome)
	assert.Equal(t, 0, profiles.calls, "no profile lookup without a session")
	assert.Equal(t, MsgSessionOrProfileFailed, res.Message())
}

func TestResolveProfileError(t *testing.T) {
	profiles := &stubProfiles{err: errors.New("connection refused")}
	r := NewResolver(ResolverOptions{Profiles: profiles})

	res := r.Resolve(context.Background(), &auth.Session{Email: "a@eucorp.edu"})

	assert.Equal(t, OutcomeProfileError, res.Outcome)
	assert.Equal(t, MsgSessionOrProfileFailed, res.Message())
	assert.Nil(t, res.Profile)
}

func TestResolveSingleLookupPerCall(t *testing.T) {
	profiles := &stubProfiles{profile: &model.Profile{Email: "a@eucorp.edu", Role: "admin"}}
	r := NewResolver(ResolverOptions{Profiles: profiles})

	res := r.Resolve(context.Background(), &auth.Session{Email: "a@eucorp.edu"})

	require.Equal(t, OutcomeResolved, res.Outcome)
	assert.Equal(t, 1, profiles.calls)
	assert.Equal(t, VariantAdmin, res.Variant)
	assert.NotNil(t, res.Profile)
}

func TestVariantForRole(t *testing.T) {
	tests := []struct {
		role string
		want Variant
	}{
		{"admin", VariantAdmin},
		{"user", VariantDepartmentUser},
		{"superuser", VariantUnauthorized},
		{"", VariantUnauthorized},
		{"Admin", VariantUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, VariantForRole(tt.role))
		})
	}
}

func TestUnrecognizedRoleRendersSoftMessage(t *testing.T) {
	profiles := &stubProfiles{profile: &model.Profile{Email: "x@eucorp.edu", Role: "intern"}}
	r := NewResolver(ResolverOptions{Profiles: profiles})

	res := r.Resolve(context.Background(), &auth.Session{Email: "x@eucorp.edu"})

	require.Equal(t, OutcomeResolved, res.Outcome)
	assert.Equal(t, VariantUnauthorized, res.Variant)
	assert.Equal(t, MsgInsufficientPermissions, res.Message())
	assert.NoError(t, res.Err(), "unauthorized is a rendering branch, not an error")
}

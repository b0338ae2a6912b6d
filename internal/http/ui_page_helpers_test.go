package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainauth "github.com/eucorp/planning/internal/domain/auth"
	"github.com/eucorp/planning/internal/domain/model"
	"github.com/eucorp/planning/internal/view"
)

// stubProfileLookup backs the page resolver in tests without a database.
type stubProfileLookup struct {
	profile *model.Profile
	err     error
}

func (s *stubProfileLookup) GetByEmail(context.Context, string) (*model.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func adminProfile() *model.Profile {
	return &model.Profile{
		ID:         "profile-admin",
		FirstName:  "Ana",
		LastName:   "Cruz",
		Email:      "ana.cruz@eucorp.example",
		Role:       "admin",
		IsVerified: true,
	}
}

func departmentUserProfile() *model.Profile {
	deptID := "dept-ccs"
	return &model.Profile{
		ID:           "profile-user",
		FirstName:    "Juan",
		LastName:     "Reyes",
		Email:        "juan.reyes@eucorp.example",
		Role:         "user",
		DepartmentID: &deptID,
		IsVerified:   true,
	}
}

// unknownRoleProfile resolves to the unauthorized variant.
func unknownRoleProfile() *model.Profile {
	return &model.Profile{
		ID:        "profile-guest",
		FirstName: "Pat",
		LastName:  "Lim",
		Email:     "pat.lim@eucorp.example",
		Role:      "auditor",
	}
}

func sessionForProfile(p *model.Profile) *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-" + p.ID,
		UserID:    p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Role:      domainauth.Role(p.Role),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// newPlanningUIHandlers builds UIHandlers with a renderer and a resolver
// backed by the given profile. Tests attach services to the returned handlers
// as needed.
func newPlanningUIHandlers(t *testing.T, profile *model.Profile) *UIHandlers {
	t.Helper()
	tr := RequireTemplateRenderer(t)
	if tr == nil {
		return nil
	}
	return &UIHandlers{
		T: tr,
		Resolver: view.NewResolver(view.ResolverOptions{
			Profiles: &stubProfileLookup{profile: profile},
		}),
	}
}

// browserRequest builds a browser-shaped request with an optional session.
func browserRequest(method, path string, session *domainauth.Session, form string) *http.Request {
	var req *http.Request
	if form != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Accept", "text/html")
	ctx := context.WithValue(req.Context(), browserRequestKey{}, true)
	if session != nil {
		ctx = SetSessionInContext(ctx, session)
	}
	return req.WithContext(ctx)
}

package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainauth "github.com/eucorp/planning/internal/domain/auth"
	"github.com/eucorp/planning/internal/domain/model"
	"github.com/eucorp/planning/internal/mocks"
	"github.com/eucorp/planning/internal/ports"
	"github.com/eucorp/planning/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// memSessionStore is a minimal in-memory SessionStore for tests.
type memSessionStore struct{ m map[string]domainauth.Session }

func (s *memSessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if s.m == nil {
		s.m = map[string]domainauth.Session{}
	}
	s.m[sess.ID] = sess
	return nil
}

func (s *memSessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	sess, ok := s.m[id]
	if !ok {
		return domainauth.Session{}, errors.New("not found")
	}
	return sess, nil
}
func (s *memSessionStore) Delete(_ context.Context, id string) error { delete(s.m, id); return nil }

func TestRouter_AdminProtectedEvaluateRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMonitoringRepository(ctrl)
	achieved := true
	completed := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	repo.EXPECT().
		RecordEvaluation(gomock.Any(), gomock.Any(), true).
		Return(&model.PlanMonitoring{
			ObjectiveID:   "obj-1",
			IsAchieved:    &achieved,
			TimeCompleted: &completed,
		}, nil).
		AnyTimes()
	evalSvc := service.NewEvaluationService(service.EvaluationServiceOptions{Monitoring: repo})

	// Build an AuthService with an in-memory session store holding both roles
	store := &memSessionStore{m: map[string]domainauth.Session{}}
	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Provider: nil,
		Sessions: ports.SessionStore(store),
		Roles:    nil,
	})
	_ = store.Save(context.Background(), domainauth.Session{
		ID:        "admin",
		UserID:    "admin-user",
		Email:     "admin@eucorp.example",
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	_ = store.Save(context.Background(), domainauth.Session{
		ID:        "staff",
		UserID:    "staff-user",
		Email:     "staff@eucorp.example",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	})

	mux := NewRouter(RouterServices{Evaluation: evalSvc, Auth: authSvc})

	body := `{"objective_id":"obj-1","evaluation":{"is_achieved":true}}`

	t.Run("unauthenticated -> 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/evaluate-goal", strings.NewReader(body))
		mux.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("department user session -> 403", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/evaluate-goal", strings.NewReader(body))
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "staff"})
		mux.ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin session -> 200", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/evaluate-goal", strings.NewReader(body))
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "admin"})
		mux.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "obj-1", resp["objective_id"])
		assert.Equal(t, true, resp["is_achieved"])
	})
}

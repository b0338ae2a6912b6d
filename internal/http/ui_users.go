package httpx

import (
	"context"
	"net/http"

	"github.com/eucorp/planning/internal/domain/model"
)

// userRow is a profile prepared for the users admin page.
type userRow struct {
	ID             string
	FullName       string
	Email          string
	Role           string
	DepartmentName string
	IsVerified     bool
}

func toUserRows(profiles []*model.ProfileWithDepartment) []userRow {
	out := make([]userRow, 0, len(profiles))
	for _, p := range profiles {
		row := userRow{
			ID:         p.ID,
			FullName:   p.FullName(),
			Email:      p.Email,
			Role:       p.Role,
			IsVerified: p.IsVerified,
		}
		if p.DepartmentName != nil {
			row.DepartmentName = *p.DepartmentName
		}
		out = append(out, row)
	}
	return out
}

// Users renders the user administration page.
func (h *UIHandlers) Users(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, usersPageMeta(), adminOnly...); !ok {
		return
	}
	HandleList(ListHandlerOpts[userRow, struct{}]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, pg pageOpts) ([]userRow, error) {
			limit, offset := pg.LimitAndOffset()
			profiles, err := h.ProfileSvc.ListWithDepartments(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			return toUserRows(profiles), nil
		},
		BasePath:           "/users",
		PageMeta:           usersPageMeta(),
		ItemsKey:           "Users",
		ErrorMessage:       "Unable to load users.",
		ServiceAvailable:   func() bool { return h.ProfileSvc != nil },
		UnavailableMessage: "User administration is unavailable right now.",
	})
}

// UserVerify marks a pending account as verified so it can sign in.
func (h *UIHandlers) UserVerify(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, usersPageMeta(), adminOnly...); !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" || h.ProfileSvc == nil {
		h.NotFound(w, r)
		return
	}
	p, err := h.ProfileSvc.Verify(r.Context(), id)
	if err != nil {
		h.logger().Error("failed to verify user", "id", id, "error", err)
		http.Error(w, "Unable to verify user.", http.StatusInternalServerError)
		return
	}
	triggerToast(w, p.Email+" verified.", "success")
	HTMX(w).Redirect("/users")
}

// UserDelete removes an account.
func (h *UIHandlers) UserDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		ServiceAvailable: func() bool { return h.ProfileSvc != nil },
		Delete:           h.ProfileSvc.Delete,
		RedirectPath:     "/users",
		OnSuccess: func(w http.ResponseWriter, _ *http.Request, deleted bool) {
			if deleted {
				triggerToast(w, "User deleted.", "success")
			}
			HTMX(w).Redirect("/users")
		},
	})
}

func usersPageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp - Users",
		PageTitle:   "Users",
		CurrentPage: PageUsers,
	}
}

package httpx

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/eucorp/planning/internal/view"
)

// Profile renders the signed-in user's profile page.
func (h *UIHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resolvePage(w, r)
	if !ok {
		return
	}
	// Unverified and unrecognized roles still get their own profile page so
	// they can see their pending status.
	data := basePageData(r, profilePageMeta())
	if res.Profile != nil {
		p := res.Profile
		data["Profile"] = p
		data["FullName"] = p.FullName()
		data["IsVerified"] = p.IsVerified
		if p.DepartmentID != nil && h.DepartmentSvc != nil {
			if dept, err := h.DepartmentSvc.GetByID(r.Context(), *p.DepartmentID); err == nil {
				data["DepartmentName"] = dept.FullName
			}
		}
	}
	if res.Variant == view.VariantUnauthorized {
		data["PendingAccess"] = true
	}
	h.renderDashboardPage(w, r, data)
}

// Login renders the sign-in page. Authenticated users are sent home.
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if session := GetSessionFromContext(r.Context()); session != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	data := basePageData(r, loginPageMeta())
	if uri := r.URL.Query().Get("redirect_uri"); uri != "" {
		data["RedirectURI"] = safeRedirectPath(uri)
	}
	h.renderDashboardPage(w, r, data)
}

// Home renders the dashboard landing page.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resolvePage(w, r)
	if !ok {
		return
	}
	data := basePageData(r, homePageMeta())
	if res.Variant == view.VariantUnauthorized {
		data["Error"] = true
		data["ErrorMessage"] = res.Message()
		h.renderDashboardPage(w, r, data)
		return
	}
	h.loadDashboardStats(r, data)
	h.renderDashboardPage(w, r, data)
}

// loadDashboardStats fills in the landing page counters. The two lookups run
// concurrently; failures degrade to an empty dashboard rather than an error page.
func (h *UIHandlers) loadDashboardStats(r *http.Request, data map[string]any) {
	ctx := r.Context()
	var goalCount, deptCount int
	var haveGoals, haveDepts bool

	g, gctx := errgroup.WithContext(ctx)
	if h.GoalSvc != nil {
		g.Go(func() error {
			goals, err := h.GoalSvc.List(gctx, optionListLimit, 0)
			if err != nil {
				h.logger().Warn("failed to count goals for dashboard", "error", err)
				return nil
			}
			goalCount, haveGoals = len(goals), true
			return nil
		})
	}
	if h.DepartmentSvc != nil {
		g.Go(func() error {
			depts, err := h.DepartmentSvc.List(gctx, optionListLimit, 0)
			if err != nil {
				h.logger().Warn("failed to count departments for dashboard", "error", err)
				return nil
			}
			deptCount, haveDepts = len(depts), true
			return nil
		})
	}
	_ = g.Wait()

	if haveGoals {
		data["GoalCount"] = goalCount
	}
	if haveDepts {
		data["DepartmentCount"] = deptCount
	}
}

func profilePageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp - Profile",
		PageTitle:   "My Profile",
		CurrentPage: PageProfile,
	}
}

func loginPageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp - Sign In",
		PageTitle:   "Sign In",
		CurrentPage: PageLogin,
	}
}

func homePageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp Planning",
		PageTitle:   "Dashboard",
		CurrentPage: PageHome,
	}
}

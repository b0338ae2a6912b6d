package httpx

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/eucorp/planning/internal/data"
	"github.com/eucorp/planning/internal/domain/model"
	"github.com/eucorp/planning/internal/http/validation"
)

// Departments renders the department list page.
func (h *UIHandlers) Departments(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, departmentsPageMeta(), anyStaff...); !ok {
		return
	}
	HandleList(ListHandlerOpts[*model.Department, struct{}]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, pg pageOpts) ([]*model.Department, error) {
			limit, offset := pg.LimitAndOffset()
			return h.DepartmentSvc.List(ctx, limit, offset)
		},
		BasePath:           "/departments",
		PageMeta:           departmentsPageMeta(),
		ItemsKey:           "Departments",
		ErrorMessage:       "Unable to load departments.",
		ServiceAvailable:   func() bool { return h.DepartmentSvc != nil },
		UnavailableMessage: "Departments are unavailable right now.",
	})
}

type departmentFormData struct {
	Name     string
	FullName string
}

func parseDepartmentForm(r *http.Request) (departmentFormData, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return departmentFormData{}, map[string]string{"_": "Invalid form submission."}
	}
	f := departmentFormData{
		Name:     strings.TrimSpace(r.Form.Get("name")),
		FullName: strings.TrimSpace(r.Form.Get("full_name")),
	}
	errs := validation.New().
		Validate("name", f.Name, validation.Required("Name", 16), validation.Pattern("Name", departmentAcronymRe)).
		Validate("full_name", f.FullName, validation.Required("Full name", 255)).
		Errors()
	return f, errs
}

// Department short names are acronyms such as CCS or HRD.
var departmentAcronymRe = regexp.MustCompile(`^[A-Z][A-Z0-9-]*$`)

// departmentFormService adapts DepartmentsService to the generic form handler.
type departmentFormService struct {
	svc DepartmentsService
}

func (s *departmentFormService) Create(ctx context.Context, req departmentFormData) (any, error) {
	return s.svc.Create(ctx, &model.CreateDepartmentRequest{Name: req.Name, FullName: req.FullName})
}

func (s *departmentFormService) Update(ctx context.Context, id string, req departmentFormData) (any, error) {
	name, fullName := req.Name, req.FullName
	return s.svc.Update(ctx, id, model.UpdateDepartmentRequest{Name: &name, FullName: &fullName})
}

func (h *UIHandlers) renderDepartmentForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: func(mode FormMode) PageMeta {
			if mode == FormModeEdit {
				return PageMeta{Title: "EuCorp - Edit Department", PageTitle: "Edit Department", CurrentPage: PageDepartments}
			}
			return PageMeta{Title: "EuCorp - New Department", PageTitle: "New Department", CurrentPage: PageDepartments}
		},
	})
	h.renderDashboardPage(w, r, data)
}

// DepartmentNew renders the create form.
func (h *UIHandlers) DepartmentNew(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, departmentsPageMeta(), adminOnly...); !ok {
		return
	}
	h.renderDepartmentForm(w, r, map[string]any{"Mode": "create"})
}

// DepartmentEdit renders the edit form populated from an existing row.
func (h *UIHandlers) DepartmentEdit(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, departmentsPageMeta(), adminOnly...); !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" || h.DepartmentSvc == nil {
		h.NotFound(w, r)
		return
	}
	d, err := h.DepartmentSvc.GetByID(r.Context(), id)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	h.renderDepartmentForm(w, r, map[string]any{
		"Mode":         "edit",
		"ID":           d.ID,
		"FormName":     d.Name,
		"FormFullName": d.FullName,
	})
}

// DepartmentCreate handles the create form submission.
func (h *UIHandlers) DepartmentCreate(w http.ResponseWriter, r *http.Request) {
	h.submitDepartmentForm(w, r, FormModeCreate)
}

// DepartmentUpdate handles the edit form submission.
func (h *UIHandlers) DepartmentUpdate(w http.ResponseWriter, r *http.Request) {
	h.submitDepartmentForm(w, r, FormModeEdit)
}

func (h *UIHandlers) submitDepartmentForm(w http.ResponseWriter, r *http.Request, mode FormMode) {
	HandleForm(FormHandlerOpts[departmentFormData]{
		W:          w,
		R:          r,
		Mode:       mode,
		Parser:     parseDepartmentForm,
		Service:    &departmentFormService{svc: h.DepartmentSvc},
		Renderer:   h.renderDepartmentForm,
		SuccessURL: "/departments",
		PageMeta:   departmentsPageMeta(),
		HandleError: func(err error) (map[string]string, string) {
			if errors.Is(err, data.ErrDepartmentNameExists) {
				return map[string]string{"name": "A department with this name already exists."}, ""
			}
			return nil, ""
		},
	})
}

// DepartmentDelete removes a department and refreshes the list.
func (h *UIHandlers) DepartmentDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		ServiceAvailable: func() bool { return h.DepartmentSvc != nil },
		Delete:           h.DepartmentSvc.Delete,
		RedirectPath:     "/departments",
		OnError: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, "Unable to delete department. It may still have users or opportunities.", http.StatusConflict)
		},
		OnSuccess: func(w http.ResponseWriter, _ *http.Request, deleted bool) {
			if deleted {
				triggerToast(w, "Department deleted.", "success")
			}
			HTMX(w).Redirect("/departments")
		},
	})
}

func departmentsPageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp - Departments",
		PageTitle:   "Departments",
		CurrentPage: PageDepartments,
	}
}

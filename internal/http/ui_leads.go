package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/eucorp/planning/internal/data"
	"github.com/eucorp/planning/internal/domain/model"
	"github.com/eucorp/planning/internal/http/validation"
)

// Leads renders the lead list page.
func (h *UIHandlers) Leads(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, leadsPageMeta(), anyStaff...); !ok {
		return
	}
	HandleList(ListHandlerOpts[*model.Lead, struct{}]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, pg pageOpts) ([]*model.Lead, error) {
			limit, offset := pg.LimitAndOffset()
			return h.LeadSvc.List(ctx, limit, offset)
		},
		BasePath:           "/leads",
		PageMeta:           leadsPageMeta(),
		ItemsKey:           "Leads",
		ErrorMessage:       "Unable to load leads.",
		ServiceAvailable:   func() bool { return h.LeadSvc != nil },
		UnavailableMessage: "Leads are unavailable right now.",
	})
}

type leadFormData struct {
	Name string
}

func parseLeadForm(r *http.Request) (leadFormData, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return leadFormData{}, map[string]string{"_": "Invalid form submission."}
	}
	f := leadFormData{Name: strings.TrimSpace(r.Form.Get("name"))}
	errs := validation.New().
		Validate("name", f.Name, validation.Required("Name", 255)).
		Errors()
	return f, errs
}

// leadFormService adapts LeadsService to the generic form handler.
type leadFormService struct {
	svc LeadsService
}

func (s *leadFormService) Create(ctx context.Context, req leadFormData) (any, error) {
	return s.svc.Create(ctx, &model.CreateLeadRequest{Name: req.Name})
}

func (s *leadFormService) Update(ctx context.Context, id string, req leadFormData) (any, error) {
	name := req.Name
	return s.svc.Update(ctx, id, model.UpdateLeadRequest{Name: &name})
}

func (h *UIHandlers) renderLeadForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: func(mode FormMode) PageMeta {
			if mode == FormModeEdit {
				return PageMeta{Title: "EuCorp - Edit Lead", PageTitle: "Edit Lead", CurrentPage: PageLeads}
			}
			return PageMeta{Title: "EuCorp - New Lead", PageTitle: "New Lead", CurrentPage: PageLeads}
		},
	})
	h.renderDashboardPage(w, r, data)
}

// LeadNew renders the create form.
func (h *UIHandlers) LeadNew(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, leadsPageMeta(), adminOnly...); !ok {
		return
	}
	h.renderLeadForm(w, r, map[string]any{"Mode": "create"})
}

// LeadEdit renders the edit form populated from an existing row.
func (h *UIHandlers) LeadEdit(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, leadsPageMeta(), adminOnly...); !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" || h.LeadSvc == nil {
		h.NotFound(w, r)
		return
	}
	l, err := h.LeadSvc.GetByID(r.Context(), id)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	h.renderLeadForm(w, r, map[string]any{
		"Mode":     "edit",
		"ID":       l.ID,
		"FormName": l.Name,
	})
}

// LeadCreate handles the create form submission.
func (h *UIHandlers) LeadCreate(w http.ResponseWriter, r *http.Request) {
	h.submitLeadForm(w, r, FormModeCreate)
}

// LeadUpdate handles the edit form submission.
func (h *UIHandlers) LeadUpdate(w http.ResponseWriter, r *http.Request) {
	h.submitLeadForm(w, r, FormModeEdit)
}

func (h *UIHandlers) submitLeadForm(w http.ResponseWriter, r *http.Request, mode FormMode) {
	HandleForm(FormHandlerOpts[leadFormData]{
		W:          w,
		R:          r,
		Mode:       mode,
		Parser:     parseLeadForm,
		Service:    &leadFormService{svc: h.LeadSvc},
		Renderer:   h.renderLeadForm,
		SuccessURL: "/leads",
		PageMeta:   leadsPageMeta(),
		HandleError: func(err error) (map[string]string, string) {
			if errors.Is(err, data.ErrLeadNameExists) {
				return map[string]string{"name": "A lead with this name already exists."}, ""
			}
			return nil, ""
		},
	})
}

// LeadDelete removes a lead. Goals pointing at it fall back to
// "No Lead Assigned" in the plans view.
func (h *UIHandlers) LeadDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		ServiceAvailable: func() bool { return h.LeadSvc != nil },
		Delete:           h.LeadSvc.Delete,
		RedirectPath:     "/leads",
		OnSuccess: func(w http.ResponseWriter, _ *http.Request, deleted bool) {
			if deleted {
				triggerToast(w, "Lead deleted.", "success")
			}
			HTMX(w).Redirect("/leads")
		},
	})
}

func leadsPageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp - Leads",
		PageTitle:   "Leads",
		CurrentPage: PageLeads,
	}
}

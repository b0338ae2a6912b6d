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

// --- Classifications list ---

// Classifications renders the classification list page.
func (h *UIHandlers) Classifications(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, classificationPageMeta(), anyStaff...); !ok {
		return
	}
	HandleList(ListHandlerOpts[*model.Classification, struct{}]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, pg pageOpts) ([]*model.Classification, error) {
			limit, offset := pg.LimitAndOffset()
			return h.ClassificationSvc.List(ctx, limit, offset)
		},
		BasePath: "/classification",
		PageMeta: PageMeta{
			Title:       "EuCorp - Classifications",
			PageTitle:   "Classifications",
			CurrentPage: PageClassification,
		},
		ItemsKey:           "Classifications",
		ErrorMessage:       "Unable to load classifications.",
		ServiceAvailable:   func() bool { return h.ClassificationSvc != nil },
		UnavailableMessage: "Classifications are unavailable right now.",
	})
}

// --- Classification form ---

type classificationFormData struct {
	Name string
}

func parseClassificationForm(r *http.Request) (classificationFormData, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return classificationFormData{}, map[string]string{"_": "Invalid form submission."}
	}
	f := classificationFormData{Name: strings.TrimSpace(r.Form.Get("name"))}
	errs := validation.New().
		Validate("name", f.Name, validation.Required("Name", 255)).
		Errors()
	return f, errs
}

// classificationFormService adapts ClassificationsService to the generic form handler.
type classificationFormService struct {
	svc ClassificationsService
}

func (s *classificationFormService) Create(ctx context.Context, req classificationFormData) (any, error) {
	return s.svc.Create(ctx, &model.CreateClassificationRequest{Name: req.Name})
}

func (s *classificationFormService) Update(ctx context.Context, id string, req classificationFormData) (any, error) {
	name := req.Name
	return s.svc.Update(ctx, id, model.UpdateClassificationRequest{Name: &name})
}

func classificationFormTitles(mode FormMode) (string, string) {
	if mode == FormModeEdit {
		return "EuCorp - Edit Classification", "Edit Classification"
	}
	return "EuCorp - New Classification", "New Classification"
}

func (h *UIHandlers) renderClassificationForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: func(mode FormMode) PageMeta {
			title, pageTitle := classificationFormTitles(mode)
			return PageMeta{Title: title, PageTitle: pageTitle, CurrentPage: PageClassification}
		},
	})
	h.renderDashboardPage(w, r, data)
}

// ClassificationNew renders the create form.
func (h *UIHandlers) ClassificationNew(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, classificationPageMeta(), adminOnly...); !ok {
		return
	}
	h.renderClassificationForm(w, r, map[string]any{"Mode": "create"})
}

// ClassificationEdit renders the edit form populated from an existing row.
func (h *UIHandlers) ClassificationEdit(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, classificationPageMeta(), adminOnly...); !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" || h.ClassificationSvc == nil {
		h.NotFound(w, r)
		return
	}
	c, err := h.ClassificationSvc.GetByID(r.Context(), id)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	h.renderClassificationForm(w, r, map[string]any{
		"Mode":     "edit",
		"ID":       c.ID,
		"FormName": c.Name,
	})
}

// ClassificationCreate handles the create form submission.
func (h *UIHandlers) ClassificationCreate(w http.ResponseWriter, r *http.Request) {
	h.submitClassificationForm(w, r, FormModeCreate)
}

// ClassificationUpdate handles the edit form submission.
func (h *UIHandlers) ClassificationUpdate(w http.ResponseWriter, r *http.Request) {
	h.submitClassificationForm(w, r, FormModeEdit)
}

func (h *UIHandlers) submitClassificationForm(w http.ResponseWriter, r *http.Request, mode FormMode) {
	HandleForm(FormHandlerOpts[classificationFormData]{
		W:          w,
		R:          r,
		Mode:       mode,
		Parser:     parseClassificationForm,
		Service:    &classificationFormService{svc: h.ClassificationSvc},
		Renderer:   h.renderClassificationForm,
		SuccessURL: "/classification",
		PageMeta:   classificationPageMeta(),
		HandleError: func(err error) (map[string]string, string) {
			if errors.Is(err, data.ErrClassificationNameExists) {
				return map[string]string{"name": "A classification with this name already exists."}, ""
			}
			return nil, ""
		},
	})
}

// ClassificationDelete removes a classification and refreshes the list.
func (h *UIHandlers) ClassificationDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		ServiceAvailable: func() bool { return h.ClassificationSvc != nil },
		Delete:           h.ClassificationSvc.Delete,
		RedirectPath:     "/classification",
		OnSuccess: func(w http.ResponseWriter, _ *http.Request, deleted bool) {
			if deleted {
				triggerToast(w, "Classification deleted.", "success")
			}
			HTMX(w).Redirect("/classification")
		},
	})
}

func classificationPageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp - Classifications",
		PageTitle:   "Classifications",
		CurrentPage: PageClassification,
	}
}

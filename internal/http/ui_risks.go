package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/eucorp/planning/internal/data"
	"github.com/eucorp/planning/internal/domain/model"
	"github.com/eucorp/planning/internal/http/validation"
)

// RiskManagement renders the risk management landing page.
func (h *UIHandlers) RiskManagement(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, riskManagementPageMeta(), anyStaff...); !ok {
		return
	}
	h.Page(w, r, PageSpec{Meta: riskManagementPageMeta()})
}

// RiskAssessment renders the risk assessment worksheet page with every
// rating scale loaded for the matrix selectors.
func (h *UIHandlers) RiskAssessment(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, riskAssessmentPageMeta(), anyStaff...); !ok {
		return
	}
	h.Page(w, r, PageSpec{
		Meta: riskAssessmentPageMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			if h.RatingSvc == nil {
				return errors.New("ratings service unavailable")
			}
			for _, cat := range model.RatingCategories() {
				ratings, err := h.RatingSvc.ListByCategory(ctx, cat, optionListLimit, 0)
				if err != nil {
					return err
				}
				data[ratingsDataKey(cat)] = ratings
			}
			return nil
		},
	})
}

// ratingsDataKey maps a category to its template data key.
func ratingsDataKey(cat model.RatingCategory) string {
	switch cat {
	case model.RatingCategoryLikelihood:
		return "LikelihoodRatings"
	case model.RatingCategorySeverity:
		return "SeverityRatings"
	case model.RatingCategoryRiskControl:
		return "RiskControlRatings"
	default:
		return "RiskMonitoringRatings"
	}
}

type risksFilter struct {
	Category model.RatingCategory
}

func parseRisksFilter(q url.Values) (risksFilter, error) {
	raw := strings.TrimSpace(q.Get("category"))
	if raw == "" {
		return risksFilter{Category: model.RatingCategoryLikelihood}, nil
	}
	cat, err := model.ParseRatingCategory(raw)
	if err != nil {
		return risksFilter{}, err
	}
	return risksFilter{Category: cat}, nil
}

// Risks renders the rating scale list for the selected category.
func (h *UIHandlers) Risks(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, risksPageMeta(), anyStaff...); !ok {
		return
	}
	HandleList(ListHandlerOpts[*model.RiskRating, risksFilter]{
		Handler:      h,
		W:            w,
		R:            r,
		FilterParser: parseRisksFilter,
		FilteredFetcher: func(ctx context.Context, f risksFilter, pg pageOpts) ([]*model.RiskRating, error) {
			limit, offset := pg.LimitAndOffset()
			return h.RatingSvc.ListByCategory(ctx, f.Category, limit, offset)
		},
		EnrichData: func(builder *TemplateDataBuilder, _ []*model.RiskRating, f risksFilter) {
			builder.With("Category", string(f.Category)).
				With("CategoryLabel", f.Category.Label()).
				With("Categories", ratingCategoryOptions(f.Category))
		},
		BasePath:           "/risks",
		PageMeta:           risksPageMeta(),
		ItemsKey:           "Ratings",
		ErrorMessage:       "Unable to load risk ratings.",
		ServiceAvailable:   func() bool { return h.RatingSvc != nil },
		UnavailableMessage: "Risk ratings are unavailable right now.",
	})
}

func ratingCategoryOptions(selected model.RatingCategory) []map[string]any {
	cats := model.RatingCategories()
	out := make([]map[string]any, 0, len(cats))
	for _, c := range cats {
		out = append(out, map[string]any{
			"Value":    string(c),
			"Label":    c.Label(),
			"Selected": c == selected,
		})
	}
	return out
}

// --- Risk rating form ---

type ratingFormData struct {
	Category string
	Name     string
	Symbol   string
}

func parseRatingForm(r *http.Request) (ratingFormData, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return ratingFormData{}, map[string]string{"_": "Invalid form submission."}
	}
	f := ratingFormData{
		Category: strings.TrimSpace(r.Form.Get("category")),
		Name:     strings.TrimSpace(r.Form.Get("name")),
		Symbol:   strings.TrimSpace(r.Form.Get("symbol")),
	}
	errs := validation.New().
		Validate("name", f.Name, validation.Required("Name", 255)).
		Validate("symbol", f.Symbol, validation.Required("Symbol", 16)).
		Validate("category", f.Category, validation.OneOf("Category", ratingCategoryValues())).
		Errors()
	return f, errs
}

func ratingCategoryValues() []string {
	cats := model.RatingCategories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

// ratingFormService adapts RatingsService to the generic form handler.
// Ratings are append-only; edits are a delete plus re-create.
type ratingFormService struct {
	svc RatingsService
}

func (s *ratingFormService) Create(ctx context.Context, req ratingFormData) (any, error) {
	cat, err := model.ParseRatingCategory(req.Category)
	if err != nil {
		return nil, err
	}
	return s.svc.Create(ctx, &model.CreateRiskRatingRequest{
		Category: cat,
		Name:     req.Name,
		Symbol:   req.Symbol,
	})
}

func (s *ratingFormService) Update(context.Context, string, ratingFormData) (any, error) {
	return nil, errors.New("risk ratings cannot be edited")
}

func (h *UIHandlers) renderRatingForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: func(FormMode) PageMeta {
			return PageMeta{Title: "EuCorp - New Risk Rating", PageTitle: "New Risk Rating", CurrentPage: PageRisks}
		},
	})
	selected := model.RatingCategoryLikelihood
	if raw, ok := data["FormCategory"].(string); ok && raw != "" {
		if cat, err := model.ParseRatingCategory(raw); err == nil {
			selected = cat
		}
	}
	data["Categories"] = ratingCategoryOptions(selected)
	h.renderDashboardPage(w, r, data)
}

// RatingNew renders the create form for a rating scale entry.
func (h *UIHandlers) RatingNew(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, risksPageMeta(), adminOnly...); !ok {
		return
	}
	h.renderRatingForm(w, r, map[string]any{
		"Mode":         "create",
		"FormCategory": strings.TrimSpace(r.URL.Query().Get("category")),
	})
}

// RatingCreate handles the create form submission.
func (h *UIHandlers) RatingCreate(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, risksPageMeta(), adminOnly...); !ok {
		return
	}
	HandleForm(FormHandlerOpts[ratingFormData]{
		W:          w,
		R:          r,
		Mode:       FormModeCreate,
		Parser:     parseRatingForm,
		Service:    &ratingFormService{svc: h.RatingSvc},
		Renderer:   h.renderRatingForm,
		SuccessURL: "/risks",
		PageMeta:   risksPageMeta(),
		HandleError: func(err error) (map[string]string, string) {
			if errors.Is(err, data.ErrRatingExists) {
				return map[string]string{"name": "This rating already exists in the selected category."}, ""
			}
			return nil, ""
		},
	})
}

// RatingDelete removes a rating scale entry.
func (h *UIHandlers) RatingDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		ServiceAvailable: func() bool { return h.RatingSvc != nil },
		Delete:           h.RatingSvc.Delete,
		RedirectPath:     "/risks",
		OnSuccess: func(w http.ResponseWriter, _ *http.Request, deleted bool) {
			if deleted {
				triggerToast(w, "Risk rating deleted.", "success")
			}
			HTMX(w).Redirect("/risks")
		},
	})
}

func riskManagementPageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp - Risk Management",
		PageTitle:   "Risk Management",
		CurrentPage: PageRiskManagement,
	}
}

func risksPageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp - Risk Ratings",
		PageTitle:   "Risk Ratings",
		CurrentPage: PageRisks,
	}
}

func riskAssessmentPageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp - Risk Assessment",
		PageTitle:   "Risk Assessment",
		CurrentPage: PageRiskAssessment,
	}
}

package httpx

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/eucorp/planning/internal/domain/model"
	"github.com/eucorp/planning/internal/export"
	"github.com/eucorp/planning/internal/http/validation"
	"github.com/eucorp/planning/internal/view"
)

// opportunityRow is an opportunity prepared for list rendering. CanApprove
// and CSRFToken ride on the row so the row template can render standalone in
// HTMX swap responses.
type opportunityRow struct {
	ID             string
	OptStatement   string
	PlannedActions string
	KPI            string
	KeyPersons     string
	TargetOutput   string
	Budget         string
	DepartmentName string
	IsApproved     bool
	CanApprove     bool
	CSRFToken      string
}

func opportunityRowID(o opportunityRow) string { return o.ID }

// withRowActions stamps the action-column inputs onto each row.
func withRowActions(rows []opportunityRow, canApprove bool, csrfToken string) []opportunityRow {
	for i := range rows {
		rows[i].CanApprove = canApprove
		rows[i].CSRFToken = csrfToken
	}
	return rows
}

type opportunitiesFilter struct {
	DepartmentID string
	ApprovedOnly bool
	OldestFirst  bool
}

func parseOpportunitiesFilter(q url.Values) (opportunitiesFilter, error) {
	_, dir := ParseSortParam(q, "sort", "dir")
	return opportunitiesFilter{
		DepartmentID: strings.TrimSpace(q.Get("department_id")),
		ApprovedOnly: strings.TrimSpace(q.Get("approved")) == StrTrue,
		OldestFirst:  dir == SortDirAsc,
	}, nil
}

func toOpportunityRows(opps []*model.OpportunityWithDepartment) []opportunityRow {
	out := make([]opportunityRow, 0, len(opps))
	for _, o := range opps {
		row := opportunityRow{
			ID:             o.ID,
			OptStatement:   o.OptStatement,
			PlannedActions: derefOr(o.PlannedActions, ""),
			KPI:            derefOr(o.KPI, ""),
			KeyPersons:     derefOr(o.KeyPersons, ""),
			TargetOutput:   derefOr(o.TargetOutput, ""),
			DepartmentName: derefOr(o.DepartmentName, ""),
			IsApproved:     o.IsApproved,
		}
		if o.Budget != nil {
			row.Budget = strconv.FormatFloat(*o.Budget, 'f', 2, 64)
		}
		out = append(out, row)
	}
	return out
}

func (h *UIHandlers) buildOpportunityListOptions(
	res view.Resolution,
	f opportunitiesFilter,
	limit, offset int,
) model.OpportunityListOptions {
	opts := model.OpportunityListOptions{
		Limit:        limit,
		Offset:       offset,
		ApprovedOnly: f.ApprovedOnly,
		OldestFirst:  f.OldestFirst,
	}
	// Department users only ever see their own department's opportunities.
	if res.Variant == view.VariantDepartmentUser {
		if res.Profile != nil && res.Profile.DepartmentID != nil {
			opts.DepartmentID = res.Profile.DepartmentID
		}
	} else if f.DepartmentID != "" {
		opts.DepartmentID = &f.DepartmentID
	}
	return opts
}

// Opportunities renders the opportunity list page.
func (h *UIHandlers) Opportunities(w http.ResponseWriter, r *http.Request) {
	res, ok := h.requireVariantPage(w, r, opportunitiesPageMeta(), anyStaff...)
	if !ok {
		return
	}
	HandleList(ListHandlerOpts[opportunityRow, opportunitiesFilter]{
		Handler:      h,
		W:            w,
		R:            r,
		FilterParser: parseOpportunitiesFilter,
		FilteredFetcher: func(ctx context.Context, f opportunitiesFilter, pg pageOpts) ([]opportunityRow, error) {
			limit, offset := pg.LimitAndOffset()
			opps, err := h.OpportunitySvc.ListWithOptions(ctx, h.buildOpportunityListOptions(res, f, limit, offset))
			if err != nil {
				return nil, err
			}
			return withRowActions(toOpportunityRows(opps), res.Variant == view.VariantAdmin, GetCSRFToken(r)), nil
		},
		EnrichData: func(builder *TemplateDataBuilder, _ []opportunityRow, f opportunitiesFilter) {
			builder.With("DepartmentID", f.DepartmentID).
				With("ApprovedOnly", f.ApprovedOnly).
				With("CanApprove", res.Variant == view.VariantAdmin)
			h.enrichDepartmentOptions(r.Context(), builder, f.DepartmentID)
		},
		BasePath:           "/opportunities",
		PageMeta:           opportunitiesPageMeta(),
		ItemsKey:           "Opportunities",
		ErrorMessage:       "Unable to load opportunities.",
		ServiceAvailable:   func() bool { return h.OpportunitySvc != nil },
		UnavailableMessage: "Opportunities are unavailable right now.",
	})
}

func (h *UIHandlers) enrichDepartmentOptions(ctx context.Context, builder *TemplateDataBuilder, selectedID string) {
	if h.DepartmentSvc == nil {
		return
	}
	depts, err := h.DepartmentSvc.List(ctx, optionListLimit, 0)
	if err != nil {
		h.logger().Warn("failed to load department options", "error", err)
		return
	}
	opts := make([]map[string]any, 0, len(depts))
	for _, d := range depts {
		opts = append(opts, map[string]any{
			"ID":       d.ID,
			"Name":     d.Name,
			"Selected": d.ID == selectedID,
		})
	}
	builder.With("DepartmentOptions", opts)
}

// OpportunityApprove marks an opportunity approved. Approving an already
// approved row is a no-op rather than an error.
func (h *UIHandlers) OpportunityApprove(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, opportunitiesPageMeta(), adminOnly...); !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" || h.OpportunitySvc == nil {
		h.NotFound(w, r)
		return
	}
	if IsHTMX(r) {
		h.swapOpportunityRow(w, r, opportunityRowMutation{
			ID: id,
			Op: func(ctx context.Context) error {
				_, err := h.OpportunitySvc.Approve(ctx, id)
				return err
			},
			Apply: func(cur opportunityRow) func([]opportunityRow) []opportunityRow {
				cur.IsApproved = true
				return view.ReplaceByID(cur.ID, cur, opportunityRowID)
			},
			Toast:  "Opportunity approved.",
			ErrMsg: "Unable to approve opportunity.",
		})
		return
	}
	if _, err := h.OpportunitySvc.Approve(r.Context(), id); err != nil {
		h.logger().Error("failed to approve opportunity", "id", id, "error", err)
		http.Error(w, "Unable to approve opportunity.", http.StatusInternalServerError)
		return
	}
	triggerToast(w, "Opportunity approved.", "success")
	HTMX(w).Redirect("/opportunities")
}

// OpportunityDelete removes an opportunity. HTMX requests get a row swap
// (an empty fragment removes the row); plain form posts fall back to the
// shared delete-and-redirect flow.
func (h *UIHandlers) OpportunityDelete(w http.ResponseWriter, r *http.Request) {
	if IsHTMX(r) && h.OpportunitySvc != nil {
		id := r.PathValue("id")
		if id == "" {
			h.NotFound(w, r)
			return
		}
		h.swapOpportunityRow(w, r, opportunityRowMutation{
			ID: id,
			Op: func(ctx context.Context) error {
				_, err := h.OpportunitySvc.Delete(ctx, id)
				return err
			},
			Apply: func(cur opportunityRow) func([]opportunityRow) []opportunityRow {
				return view.RemoveByID(cur.ID, opportunityRowID)
			},
			Toast:  "Opportunity deleted.",
			ErrMsg: "Unable to delete opportunity.",
		})
		return
	}
	h.handleDelete(w, r, deleteHandlerOpts{
		ServiceAvailable: func() bool { return h.OpportunitySvc != nil },
		Delete:           h.OpportunitySvc.Delete,
		RedirectPath:     "/opportunities",
		OnSuccess: func(w http.ResponseWriter, _ *http.Request, deleted bool) {
			if deleted {
				triggerToast(w, "Opportunity deleted.", "success")
			}
			HTMX(w).Redirect("/opportunities")
		},
	})
}

// opportunityRowMutation describes one row-scoped mutation for the HTMX swap
// flow. Apply receives the row as loaded and returns the item-set update to
// run after the operation succeeds.
type opportunityRowMutation struct {
	ID     string
	Op     func(context.Context) error
	Apply  func(opportunityRow) func([]opportunityRow) []opportunityRow
	Toast  string
	ErrMsg string
}

// swapOpportunityRow loads the affected row into a list state, runs the
// mutation through it, and responds with the row as it now stands. A row
// that is gone after the mutation renders as an empty fragment, which
// removes the table row on swap.
func (h *UIHandlers) swapOpportunityRow(w http.ResponseWriter, r *http.Request, m opportunityRowMutation) {
	state := &view.ListState[opportunityRow]{}
	err := state.Load(r.Context(), func(ctx context.Context) ([]opportunityRow, error) {
		opps, err := h.OpportunitySvc.ListWithOptions(ctx, model.OpportunityListOptions{ID: &m.ID, Limit: 1})
		if err != nil {
			return nil, err
		}
		return withRowActions(toOpportunityRows(opps), true, GetCSRFToken(r)), nil
	})
	if err != nil {
		h.logger().Error("failed to load opportunity row", "id", m.ID, "error", err)
		http.Error(w, m.ErrMsg, http.StatusInternalServerError)
		return
	}
	items := state.Items()
	if len(items) == 0 {
		h.NotFound(w, r)
		return
	}
	if err := state.Mutate(r.Context(), view.MutationParams[opportunityRow]{
		ID:    m.ID,
		Op:    m.Op,
		Apply: m.Apply(items[0]),
	}); err != nil {
		h.logger().Error("opportunity row mutation failed", "id", m.ID, "error", err)
		http.Error(w, m.ErrMsg, http.StatusInternalServerError)
		return
	}

	triggerToast(w, m.Toast, "success")
	for _, row := range state.Snapshot().Items {
		if row.ID == m.ID {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if err := h.T.t.ExecuteTemplate(w, "opportunity-row", row); err != nil {
				h.logger().Error("failed to render opportunity row", "id", m.ID, "error", err)
			}
			return
		}
	}
	// Row removed; an empty fragment clears it from the table.
	w.WriteHeader(http.StatusOK)
}

// --- Opportunity batch form ---

// opportunityBatchRow mirrors one row of the opportunities entry form.
type opportunityBatchRow struct {
	OptStatement   string
	PlannedActions string
	KPI            string
	KeyPersons     string
	TargetOutput   string
	Budget         string
}

func parseOpportunityBatchRows(r *http.Request) ([]opportunityBatchRow, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return nil, map[string]string{"_": "Invalid form submission."}
	}
	statements := r.Form["opt_statement"]
	actions := r.Form["planned_actions"]
	kpis := r.Form["kpi"]
	persons := r.Form["key_persons"]
	outputs := r.Form["target_output"]
	budgets := r.Form["budget"]

	rows := make([]opportunityBatchRow, 0, len(statements))
	for i := range statements {
		rows = append(rows, opportunityBatchRow{
			OptStatement:   strings.TrimSpace(valueAt(statements, i)),
			PlannedActions: strings.TrimSpace(valueAt(actions, i)),
			KPI:            strings.TrimSpace(valueAt(kpis, i)),
			KeyPersons:     strings.TrimSpace(valueAt(persons, i)),
			TargetOutput:   strings.TrimSpace(valueAt(outputs, i)),
			Budget:         strings.TrimSpace(valueAt(budgets, i)),
		})
	}
	if len(rows) == 0 {
		return nil, map[string]string{"_": "Add at least one opportunity before submitting."}
	}

	fv := validation.New()
	for i, row := range rows {
		rowNo := strconv.Itoa(i + 1)
		prefix := "Row " + rowNo + ": "
		fv.Validate("opt_statement_"+rowNo, row.OptStatement, validation.Required(prefix+"statement", 1000)).
			Validate("planned_actions_"+rowNo, row.PlannedActions, validation.Optional(prefix+"planned actions", 1000)).
			Validate("kpi_"+rowNo, row.KPI, validation.Optional(prefix+"KPI", 500)).
			Validate("key_persons_"+rowNo, row.KeyPersons, validation.Optional(prefix+"key persons", 500)).
			Validate("target_output_"+rowNo, row.TargetOutput, validation.Optional(prefix+"target output", 500))
	}
	errs := fv.Errors()
	for i, row := range rows {
		rowNo := strconv.Itoa(i + 1)
		if row.Budget != "" {
			if b, err := strconv.ParseFloat(row.Budget, 64); err != nil || b < 0 {
				errs["budget_"+rowNo] = "Row " + rowNo + ": budget must be a non-negative number."
			}
		}
	}
	return rows, errs
}

func opportunityBatchRequests(res view.Resolution, rows []opportunityBatchRow) []*model.CreateOpportunityRequest {
	var profileID, departmentID *string
	if res.Profile != nil {
		id := res.Profile.ID
		profileID = &id
		departmentID = res.Profile.DepartmentID
	}
	reqs := make([]*model.CreateOpportunityRequest, 0, len(rows))
	for _, row := range rows {
		req := &model.CreateOpportunityRequest{
			OptStatement:   row.OptStatement,
			PlannedActions: optionalStr(row.PlannedActions),
			KPI:            optionalStr(row.KPI),
			KeyPersons:     optionalStr(row.KeyPersons),
			TargetOutput:   optionalStr(row.TargetOutput),
			ProfileID:      profileID,
			DepartmentID:   departmentID,
		}
		if row.Budget != "" {
			if b, err := strconv.ParseFloat(row.Budget, 64); err == nil {
				req.Budget = &b
			}
		}
		reqs = append(reqs, req)
	}
	return reqs
}

func (h *UIHandlers) renderOpportunityForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	base := basePageData(r, opportunityFormPageMeta())
	for k, v := range base {
		if _, exists := data[k]; !exists {
			data[k] = v
		}
	}
	h.renderDashboardPage(w, r, data)
}

// OpportunityNew renders the batch entry form for opportunities.
func (h *UIHandlers) OpportunityNew(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, opportunityFormPageMeta(), anyStaff...); !ok {
		return
	}
	h.renderOpportunityForm(w, r, nil)
}

// OpportunityCreate persists every drafted opportunity atomically.
func (h *UIHandlers) OpportunityCreate(w http.ResponseWriter, r *http.Request) {
	res, ok := h.requireVariantPage(w, r, opportunityFormPageMeta(), anyStaff...)
	if !ok {
		return
	}
	if h.OpportunitySvc == nil {
		h.NotFound(w, r)
		return
	}

	rows, errs := parseOpportunityBatchRows(r)
	if len(errs) > 0 {
		h.renderOpportunityForm(w, r, map[string]any{
			"Errors":       errs,
			"Error":        true,
			"ErrorMessage": errMsgFixBelow,
			"Rows":         rows,
		})
		return
	}

	if _, err := h.OpportunitySvc.CreateBatch(r.Context(), opportunityBatchRequests(res, rows)); err != nil {
		h.renderOpportunityForm(w, r, map[string]any{
			"Error":        true,
			"ErrorMessage": "Unable to save opportunities. No rows were saved.",
			"Rows":         rows,
		})
		return
	}

	triggerToast(w, "Opportunities saved.", "success")
	HTMX(w).Redirect("/opportunities")
}

// OpportunitiesExport renders the currently visible opportunities as a PDF.
func (h *UIHandlers) OpportunitiesExport(w http.ResponseWriter, r *http.Request) {
	res, ok := h.requireVariantPage(w, r, opportunitiesPageMeta(), anyStaff...)
	if !ok {
		return
	}
	if h.OpportunitySvc == nil {
		h.NotFound(w, r)
		return
	}

	f, _ := parseOpportunitiesFilter(r.URL.Query())
	opps, err := h.OpportunitySvc.ListWithOptions(r.Context(), h.buildOpportunityListOptions(res, f, MaxRowsForExport, 0))
	if err != nil {
		h.logger().Error("failed to load opportunities for export", "error", err)
		http.Error(w, "Unable to export opportunities.", http.StatusInternalServerError)
		return
	}

	doc := export.TableDocument{
		Title:     "Opportunities",
		Subtitle:  "EuCorp Institutional Planning",
		Landscape: true,
		Columns: []export.Column{
			{Header: "Statement"},
			{Header: "Planned Actions"},
			{Header: "KPI", Width: 35},
			{Header: "Key Persons", Width: 35},
			{Header: "Target Output", Width: 35},
			{Header: "Budget", Width: 25},
			{Header: "Department", Width: 30},
			{Header: "Approved", Width: 20},
		},
	}
	for _, row := range toOpportunityRows(opps) {
		approved := "No"
		if row.IsApproved {
			approved = "Yes"
		}
		doc.Rows = append(doc.Rows, []string{
			export.CellOrDash(row.OptStatement),
			export.CellOrDash(row.PlannedActions),
			export.CellOrDash(row.KPI),
			export.CellOrDash(row.KeyPersons),
			export.CellOrDash(row.TargetOutput),
			export.CellOrDash(row.Budget),
			export.CellOrDash(row.DepartmentName),
			approved,
		})
	}

	out, err := export.RenderTablePDF(doc)
	if err != nil {
		h.logger().Error("failed to render opportunities pdf", "error", err)
		http.Error(w, "Unable to export opportunities.", http.StatusInternalServerError)
		return
	}
	writePDF(w, "opportunities.pdf", out)
}

func writePDF(w http.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	if _, err := w.Write(body); err != nil {
		// Client likely disconnected mid-download; nothing to recover.
		return
	}
}

func derefOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func opportunitiesPageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp - Opportunities",
		PageTitle:   "Opportunities",
		CurrentPage: PageOpportunities,
	}
}

func opportunityFormPageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp - New Opportunities",
		PageTitle:   "New Opportunities",
		CurrentPage: PageOpportunityForm,
	}
}

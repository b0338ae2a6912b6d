package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/eucorp/planning/internal/data"
	"github.com/eucorp/planning/internal/domain/model"
	"github.com/eucorp/planning/internal/export"
)

// NoLeadAssigned is displayed for goals without a lead.
const NoLeadAssigned = "No Lead Assigned"

// optionListLimit bounds option fetches for select dropdowns.
const optionListLimit = 1000

// goalRow is a strategic goal prepared for list rendering.
type goalRow struct {
	ID          string
	GoalNo      int
	Name        string
	Description string
	KPI         string
	LeadName    string
}

func toGoalRows(goals []*model.StrategicGoalWithLead) []goalRow {
	out := make([]goalRow, 0, len(goals))
	for _, g := range goals {
		row := goalRow{
			ID:       g.ID,
			GoalNo:   g.GoalNo,
			Name:     g.Name,
			LeadName: NoLeadAssigned,
		}
		if g.Description != nil {
			row.Description = *g.Description
		}
		if g.KPI != nil {
			row.KPI = *g.KPI
		}
		if g.LeadName != nil && strings.TrimSpace(*g.LeadName) != "" {
			row.LeadName = *g.LeadName
		}
		out = append(out, row)
	}
	return out
}

// Plans renders the strategic goal list page.
func (h *UIHandlers) Plans(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, plansPageMeta(), anyStaff...); !ok {
		return
	}
	HandleList(ListHandlerOpts[goalRow, struct{}]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, pg pageOpts) ([]goalRow, error) {
			limit, offset := pg.LimitAndOffset()
			goals, err := h.GoalSvc.ListWithLeads(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			return toGoalRows(goals), nil
		},
		BasePath:           "/plans",
		PageMeta:           plansPageMeta(),
		ItemsKey:           "Goals",
		ErrorMessage:       "Unable to load strategic goals.",
		ServiceAvailable:   func() bool { return h.GoalSvc != nil },
		UnavailableMessage: "Plans are unavailable right now.",
	})
}

// PlanView renders one goal with its objectives.
func (h *UIHandlers) PlanView(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, plansPageMeta(), anyStaff...); !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" || h.GoalSvc == nil {
		h.NotFound(w, r)
		return
	}
	goal, err := h.GoalSvc.GetByID(r.Context(), id)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	data := basePageData(r, PageMeta{
		Title:       "EuCorp - " + goal.Name,
		PageTitle:   goal.Name,
		CurrentPage: PagePlanView,
	})
	goalView := model.StrategicGoalWithLead{StrategicGoal: *goal}
	if goal.LeadID != nil && h.LeadSvc != nil {
		if lead, lerr := h.LeadSvc.GetByID(r.Context(), *goal.LeadID); lerr == nil {
			goalView.LeadName = &lead.Name
		}
	}
	data["Goal"] = goalView

	objectives, err := h.GoalSvc.Objectives(r.Context(), id, optionListLimit, 0)
	if err != nil {
		h.logger().Error("failed to load objectives for goal", "goal_id", id, "error", err)
		data["Error"] = true
		data["ErrorMessage"] = "Unable to load objectives for this goal."
	} else {
		data["Objectives"] = objectives
	}

	h.renderDashboardPage(w, r, data)
}

// PlanExport downloads the goal's objectives as a PDF table.
func (h *UIHandlers) PlanExport(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, plansPageMeta(), anyStaff...); !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" || h.GoalSvc == nil {
		h.NotFound(w, r)
		return
	}
	goal, err := h.GoalSvc.GetByID(r.Context(), id)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	objectives, err := h.GoalSvc.Objectives(r.Context(), id, MaxRowsForExport, 0)
	if err != nil {
		h.logger().Error("failed to load objectives for export", "goal_id", id, "error", err)
		http.Error(w, "Unable to export objectives.", http.StatusInternalServerError)
		return
	}

	doc := export.TableDocument{
		Title:     "Goal " + strconv.Itoa(goal.GoalNo) + ": " + goal.Name,
		Subtitle:  "EuCorp Institutional Planning",
		Landscape: true,
		Columns: []export.Column{
			{Header: "Objective"},
			{Header: "Strategic Initiatives"},
			{Header: "KPI", Width: 35},
			{Header: "Persons Involved", Width: 35},
			{Header: "Target", Width: 35},
			{Header: "Evaluation Measures", Width: 40},
		},
	}
	for _, o := range objectives {
		doc.Rows = append(doc.Rows, []string{
			export.CellOrDash(o.Name),
			export.CellOrDash(derefStr(o.StrategicInitiatives)),
			export.CellOrDash(derefStr(o.KPI)),
			export.CellOrDash(derefStr(o.PersonsInvolved)),
			export.CellOrDash(derefStr(o.Target)),
			export.CellOrDash(derefStr(o.EvalMeasures)),
		})
	}

	out, err := export.RenderTablePDF(doc)
	if err != nil {
		h.logger().Error("failed to render objectives pdf", "goal_id", id, "error", err)
		http.Error(w, "Unable to export objectives.", http.StatusInternalServerError)
		return
	}
	writePDF(w, "goal-"+strconv.Itoa(goal.GoalNo)+"-objectives.pdf", out)
}

// --- Strategic plans batch form ---

// goalBatchRow mirrors one row of the strategic plans entry form.
type goalBatchRow struct {
	GoalNo      string
	Name        string
	Description string
	KPI         string
	LeadID      string
}

func parseGoalBatchRows(r *http.Request) ([]goalBatchRow, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return nil, map[string]string{"_": "Invalid form submission."}
	}
	nos := r.Form["goal_no"]
	names := r.Form["name"]
	descs := r.Form["description"]
	kpis := r.Form["kpi"]
	leads := r.Form["lead_id"]

	rows := make([]goalBatchRow, 0, len(names))
	for i := range names {
		rows = append(rows, goalBatchRow{
			GoalNo:      strings.TrimSpace(valueAt(nos, i)),
			Name:        strings.TrimSpace(valueAt(names, i)),
			Description: strings.TrimSpace(valueAt(descs, i)),
			KPI:         strings.TrimSpace(valueAt(kpis, i)),
			LeadID:      strings.TrimSpace(valueAt(leads, i)),
		})
	}
	if len(rows) == 0 {
		return nil, map[string]string{"_": "Add at least one goal before submitting."}
	}

	errs := map[string]string{}
	for i, row := range rows {
		rowNo := strconv.Itoa(i + 1)
		if row.Name == "" {
			errs["name_"+rowNo] = "Row " + rowNo + ": name is required."
		}
		if n, err := strconv.Atoi(row.GoalNo); err != nil || n <= 0 {
			errs["goal_no_"+rowNo] = "Row " + rowNo + ": goal number must be a positive number."
		}
	}
	return rows, errs
}

func goalBatchRequests(rows []goalBatchRow) []*model.CreateStrategicGoalRequest {
	reqs := make([]*model.CreateStrategicGoalRequest, 0, len(rows))
	for _, row := range rows {
		n, _ := strconv.Atoi(row.GoalNo)
		reqs = append(reqs, &model.CreateStrategicGoalRequest{
			GoalNo:      n,
			Name:        row.Name,
			Description: optionalStr(row.Description),
			KPI:         optionalStr(row.KPI),
			LeadID:      optionalStr(row.LeadID),
		})
	}
	return reqs
}

func (h *UIHandlers) renderStrategicPlansForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	base := basePageData(r, strategicPlansPageMeta())
	for k, v := range base {
		if _, exists := data[k]; !exists {
			data[k] = v
		}
	}
	h.loadLeadOptions(r.Context(), data)
	h.renderDashboardPage(w, r, data)
}

func (h *UIHandlers) loadLeadOptions(ctx context.Context, data map[string]any) {
	if h.LeadSvc == nil {
		data["LeadOptions"] = []map[string]any{}
		return
	}
	leads, err := h.LeadSvc.List(ctx, optionListLimit, 0)
	if err != nil {
		h.logger().Warn("failed to load lead options", "error", err)
		data["LeadOptions"] = []map[string]any{}
		return
	}
	opts := make([]map[string]any, 0, len(leads))
	for _, l := range leads {
		opts = append(opts, map[string]any{"ID": l.ID, "Name": l.Name})
	}
	data["LeadOptions"] = opts
}

// StrategicPlans renders the batch entry form for strategic goals.
func (h *UIHandlers) StrategicPlans(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, strategicPlansPageMeta(), adminOnly...); !ok {
		return
	}
	h.renderStrategicPlansForm(w, r, nil)
}

// StrategicPlansSubmit persists every drafted goal atomically. A failing row
// aborts the whole batch so the page state stays consistent.
func (h *UIHandlers) StrategicPlansSubmit(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, strategicPlansPageMeta(), adminOnly...); !ok {
		return
	}
	if h.GoalSvc == nil {
		h.NotFound(w, r)
		return
	}

	rows, errs := parseGoalBatchRows(r)
	if len(errs) > 0 {
		h.renderStrategicPlansForm(w, r, map[string]any{
			"Errors":       errs,
			"Error":        true,
			"ErrorMessage": errMsgFixBelow,
			"Rows":         rows,
		})
		return
	}

	if _, err := h.GoalSvc.CreateBatch(r.Context(), goalBatchRequests(rows)); err != nil {
		msg := "Unable to save strategic goals. No rows were saved."
		if errors.Is(err, data.ErrGoalNumberExists) {
			msg = "A goal number in the batch already exists. No rows were saved."
		}
		h.renderStrategicPlansForm(w, r, map[string]any{
			"Error":        true,
			"ErrorMessage": msg,
			"Rows":         rows,
		})
		return
	}

	triggerToast(w, "Strategic goals saved.", "success")
	HTMX(w).Redirect("/plans")
}

// GoalDelete removes a strategic goal and its objectives.
func (h *UIHandlers) GoalDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		ServiceAvailable: func() bool { return h.GoalSvc != nil },
		Delete:           h.GoalSvc.Delete,
		RedirectPath:     "/plans",
		OnSuccess: func(w http.ResponseWriter, _ *http.Request, deleted bool) {
			if deleted {
				triggerToast(w, "Strategic goal deleted.", "success")
			}
			HTMX(w).Redirect("/plans")
		},
	})
}

// --- Operational plans batch form ---

// objectiveBatchRow mirrors one row of the operational plans entry form.
type objectiveBatchRow struct {
	Name                 string
	StrategicInitiatives string
	KPI                  string
	PersonsInvolved      string
	Target               string
	EvalMeasures         string
}

func parseObjectiveBatchRows(r *http.Request) ([]objectiveBatchRow, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return nil, map[string]string{"_": "Invalid form submission."}
	}
	names := r.Form["name"]
	inits := r.Form["strategic_initiatives"]
	kpis := r.Form["kpi"]
	persons := r.Form["persons_involved"]
	targets := r.Form["target"]
	evals := r.Form["eval_measures"]

	rows := make([]objectiveBatchRow, 0, len(names))
	for i := range names {
		rows = append(rows, objectiveBatchRow{
			Name:                 strings.TrimSpace(valueAt(names, i)),
			StrategicInitiatives: strings.TrimSpace(valueAt(inits, i)),
			KPI:                  strings.TrimSpace(valueAt(kpis, i)),
			PersonsInvolved:      strings.TrimSpace(valueAt(persons, i)),
			Target:               strings.TrimSpace(valueAt(targets, i)),
			EvalMeasures:         strings.TrimSpace(valueAt(evals, i)),
		})
	}
	if len(rows) == 0 {
		return nil, map[string]string{"_": "Add at least one objective before submitting."}
	}

	errs := map[string]string{}
	for i, row := range rows {
		if row.Name == "" {
			rowNo := strconv.Itoa(i + 1)
			errs["name_"+rowNo] = "Row " + rowNo + ": name is required."
		}
	}
	return rows, errs
}

func objectiveBatchRequests(goalID, profileID string, rows []objectiveBatchRow) []*model.CreateObjectiveRequest {
	reqs := make([]*model.CreateObjectiveRequest, 0, len(rows))
	for _, row := range rows {
		reqs = append(reqs, &model.CreateObjectiveRequest{
			StrategicGoalID:      goalID,
			Name:                 row.Name,
			StrategicInitiatives: optionalStr(row.StrategicInitiatives),
			KPI:                  optionalStr(row.KPI),
			PersonsInvolved:      optionalStr(row.PersonsInvolved),
			Target:               optionalStr(row.Target),
			EvalMeasures:         optionalStr(row.EvalMeasures),
			ProfileID:            optionalStr(profileID),
		})
	}
	return reqs
}

func (h *UIHandlers) renderOperationalPlansForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	base := basePageData(r, operationalPlansPageMeta())
	for k, v := range base {
		if _, exists := data[k]; !exists {
			data[k] = v
		}
	}
	h.loadGoalOptions(r.Context(), data)
	h.renderDashboardPage(w, r, data)
}

func (h *UIHandlers) loadGoalOptions(ctx context.Context, data map[string]any) {
	if h.GoalSvc == nil {
		data["GoalOptions"] = []map[string]any{}
		return
	}
	goals, err := h.GoalSvc.List(ctx, optionListLimit, 0)
	if err != nil {
		h.logger().Warn("failed to load goal options", "error", err)
		data["GoalOptions"] = []map[string]any{}
		return
	}
	selected, _ := data["GoalID"].(string)
	opts := make([]map[string]any, 0, len(goals))
	for _, g := range goals {
		opts = append(opts, map[string]any{
			"ID":       g.ID,
			"GoalNo":   g.GoalNo,
			"Name":     g.Name,
			"Selected": g.ID == selected,
		})
	}
	data["GoalOptions"] = opts
}

// OperationalPlans renders the batch entry form for objectives. The optional
// path id preselects the parent goal.
func (h *UIHandlers) OperationalPlans(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireVariantPage(w, r, operationalPlansPageMeta(), anyStaff...); !ok {
		return
	}
	data := map[string]any{}
	if id := r.PathValue("id"); id != "" {
		data["GoalID"] = id
	}
	h.renderOperationalPlansForm(w, r, data)
}

// OperationalPlansSubmit persists every drafted objective atomically.
func (h *UIHandlers) OperationalPlansSubmit(w http.ResponseWriter, r *http.Request) {
	res, ok := h.requireVariantPage(w, r, operationalPlansPageMeta(), anyStaff...)
	if !ok {
		return
	}
	if h.ObjectiveSvc == nil {
		h.NotFound(w, r)
		return
	}

	rows, errs := parseObjectiveBatchRows(r)
	goalID := strings.TrimSpace(r.Form.Get("strategic_goal_id"))
	if goalID == "" {
		goalID = r.PathValue("id")
	}
	if goalID == "" {
		if errs == nil {
			errs = map[string]string{}
		}
		errs["strategic_goal_id"] = "Select the strategic goal these objectives belong to."
	}
	if len(errs) > 0 {
		h.renderOperationalPlansForm(w, r, map[string]any{
			"Errors":       errs,
			"Error":        true,
			"ErrorMessage": errMsgFixBelow,
			"Rows":         rows,
			"GoalID":       goalID,
		})
		return
	}

	var profileID string
	if res.Profile != nil {
		profileID = res.Profile.ID
	}
	if _, err := h.ObjectiveSvc.CreateBatch(r.Context(), objectiveBatchRequests(goalID, profileID, rows)); err != nil {
		h.renderOperationalPlansForm(w, r, map[string]any{
			"Error":        true,
			"ErrorMessage": "Unable to save objectives. No rows were saved.",
			"Rows":         rows,
			"GoalID":       goalID,
		})
		return
	}

	triggerToast(w, "Objectives saved.", "success")
	HTMX(w).Redirect("/plans/" + goalID)
}

// ObjectiveDelete removes one objective from its goal.
func (h *UIHandlers) ObjectiveDelete(w http.ResponseWriter, r *http.Request) {
	goalID := strings.TrimSpace(r.URL.Query().Get("goal_id"))
	redirect := "/plans"
	if goalID != "" {
		redirect = "/plans/" + goalID
	}
	h.handleDelete(w, r, deleteHandlerOpts{
		ServiceAvailable: func() bool { return h.ObjectiveSvc != nil },
		Delete:           h.ObjectiveSvc.Delete,
		RedirectPath:     redirect,
		OnSuccess: func(w http.ResponseWriter, _ *http.Request, deleted bool) {
			if deleted {
				triggerToast(w, "Objective deleted.", "success")
			}
			HTMX(w).Redirect(redirect)
		},
	})
}

// valueAt returns vals[i] or "" when the slice is shorter. Batch rows can
// submit ragged arrays when optional fields are omitted.
func valueAt(vals []string, i int) string {
	if i < len(vals) {
		return vals[i]
	}
	return ""
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func plansPageMeta() PageMeta {
	return PageMeta{Title: "EuCorp - Plans", PageTitle: "Strategic Plans", CurrentPage: PagePlans}
}

func strategicPlansPageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp - Strategic Plans Entry",
		PageTitle:   "Strategic Plans Entry",
		CurrentPage: PageStrategicPlans,
	}
}

func operationalPlansPageMeta() PageMeta {
	return PageMeta{
		Title:       "EuCorp - Operational Plans Entry",
		PageTitle:   "Operational Plans Entry",
		CurrentPage: PageOperationalPlans,
	}
}

package httpx

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/eucorp/planning/internal/domain/model"
	"github.com/eucorp/planning/internal/export"
	"github.com/eucorp/planning/internal/http/uiutil"
	"github.com/eucorp/planning/internal/view"
)

// monitoringRow is a monitoring record prepared for list rendering.
type monitoringRow struct {
	ObjectiveID    string
	ObjectiveName  string
	GoalNo         int
	GoalName       string
	DepartmentName string
	Status         string
	CompletedAt    string
}

type monitoringFilter struct {
	Achieved model.AchievedFilter
}

func parseMonitoringFilter(q url.Values) (monitoringFilter, error) {
	// Unknown filter values fall back to "all" rather than erroring.
	f := model.ParseAchievedFilter(q.Get("achieved"))
	return monitoringFilter{Achieved: f}, nil
}

func toMonitoringRows(rows []*model.MonitoringRow) []monitoringRow {
	out := make([]monitoringRow, 0, len(rows))
	for _, m := range rows {
		row := monitoringRow{
			ObjectiveID:   m.ObjectiveID,
			ObjectiveName: m.ObjectiveName,
			GoalNo:        m.GoalNo,
			GoalName:      m.GoalName,
			Status:        "Pending",
		}
		if m.DepartmentName != nil {
			row.DepartmentName = *m.DepartmentName
		}
		if m.IsAchieved != nil {
			if *m.IsAchieved {
				row.Status = "Achieved"
			} else {
				row.Status = "Not Achieved"
			}
		}
		if m.TimeCompleted != nil {
			row.CompletedAt = uiutil.FormatFriendlyDateTime(*m.TimeCompleted)
		}
		out = append(out, row)
	}
	return out
}

func (h *UIHandlers) buildMonitoringListOptions(
	res view.Resolution,
	f monitoringFilter,
	limit, offset int,
	midYear bool,
) model.MonitoringListOptions {
	opts := model.MonitoringListOptions{
		Limit:    limit,
		Offset:   offset,
		Achieved: f.Achieved,
		MidYear:  midYear,
	}
	// Department users only ever see their own department's objectives.
	if res.Variant == view.VariantDepartmentUser && res.Profile != nil {
		opts.DepartmentID = res.Profile.DepartmentID
	}
	return opts
}

// Monitoring renders the year-round plan monitoring page.
func (h *UIHandlers) Monitoring(w http.ResponseWriter, r *http.Request) {
	h.monitoringPage(w, r, false)
}

// MonitoringMidYear renders the mid-year review slice of plan monitoring,
// restricted to records completed in the first half of the current year.
func (h *UIHandlers) MonitoringMidYear(w http.ResponseWriter, r *http.Request) {
	h.monitoringPage(w, r, true)
}

func (h *UIHandlers) monitoringPage(w http.ResponseWriter, r *http.Request, midYear bool) {
	meta := monitoringPageMeta(midYear)
	res, ok := h.requireVariantPage(w, r, meta, anyStaff...)
	if !ok {
		return
	}
	basePath := "/monitoring"
	if midYear {
		basePath = "/monitoring/mid-year"
	}
	HandleList(ListHandlerOpts[monitoringRow, monitoringFilter]{
		Handler:      h,
		W:            w,
		R:            r,
		FilterParser: parseMonitoringFilter,
		FilteredFetcher: func(ctx context.Context, f monitoringFilter, pg pageOpts) ([]monitoringRow, error) {
			limit, offset := pg.LimitAndOffset()
			rows, err := h.MonitoringSvc.ListRows(ctx, h.buildMonitoringListOptions(res, f, limit, offset, midYear))
			if err != nil {
				return nil, err
			}
			return toMonitoringRows(rows), nil
		},
		EnrichData: func(builder *TemplateDataBuilder, _ []monitoringRow, f monitoringFilter) {
			builder.With("Achieved", string(f.Achieved)).
				With("MidYear", midYear).
				With("AchievedOptions", achievedFilterOptions(f.Achieved))
		},
		BasePath:           basePath,
		PageMeta:           meta,
		ItemsKey:           "Records",
		ErrorMessage:       "Unable to load monitoring records.",
		ServiceAvailable:   func() bool { return h.MonitoringSvc != nil },
		UnavailableMessage: "Plan monitoring is unavailable right now.",
	})
}

func achievedFilterOptions(selected model.AchievedFilter) []map[string]any {
	opts := []struct {
		value model.AchievedFilter
		label string
	}{
		{model.AchievedFilterAll, "All"},
		{model.AchievedFilterAchieved, "Achieved"},
		{model.AchievedFilterNotAchieved, "Not Achieved"},
	}
	out := make([]map[string]any, 0, len(opts))
	for _, o := range opts {
		out = append(out, map[string]any{
			"Value":    string(o.value),
			"Label":    o.label,
			"Selected": o.value == selected,
		})
	}
	return out
}

// MonitoringExport renders the currently visible monitoring records as a PDF.
func (h *UIHandlers) MonitoringExport(w http.ResponseWriter, r *http.Request) {
	res, ok := h.requireVariantPage(w, r, monitoringPageMeta(false), anyStaff...)
	if !ok {
		return
	}
	if h.MonitoringSvc == nil {
		h.NotFound(w, r)
		return
	}

	midYear := strings.TrimSpace(r.URL.Query().Get("mid_year")) == StrTrue
	f, err := parseMonitoringFilter(r.URL.Query())
	if err != nil {
		f = monitoringFilter{Achieved: model.AchievedFilterAll}
	}
	rows, err := h.MonitoringSvc.ListRows(r.Context(), h.buildMonitoringListOptions(res, f, MaxRowsForExport, 0, midYear))
	if err != nil {
		h.logger().Error("failed to load monitoring records for export", "error", err)
		http.Error(w, "Unable to export monitoring records.", http.StatusInternalServerError)
		return
	}

	title := "Plan Monitoring"
	if midYear {
		title = "Mid-Year Plan Monitoring"
	}
	doc := export.TableDocument{
		Title:     title,
		Subtitle:  "EuCorp Institutional Planning",
		Landscape: true,
		Columns: []export.Column{
			{Header: "Goal No", Width: 20},
			{Header: "Goal"},
			{Header: "Objective"},
			{Header: "Department", Width: 40},
			{Header: "Status", Width: 30},
			{Header: "Completed", Width: 40},
		},
	}
	for _, row := range toMonitoringRows(rows) {
		doc.Rows = append(doc.Rows, []string{
			export.CellOrDash(strconv.Itoa(row.GoalNo)),
			export.CellOrDash(row.GoalName),
			export.CellOrDash(row.ObjectiveName),
			export.CellOrDash(row.DepartmentName),
			row.Status,
			export.CellOrDash(row.CompletedAt),
		})
	}

	out, err := export.RenderTablePDF(doc)
	if err != nil {
		h.logger().Error("failed to render monitoring pdf", "error", err)
		http.Error(w, "Unable to export monitoring records.", http.StatusInternalServerError)
		return
	}
	filename := "monitoring.pdf"
	if midYear {
		filename = "monitoring-mid-year.pdf"
	}
	writePDF(w, filename, out)
}

func monitoringPageMeta(midYear bool) PageMeta {
	if midYear {
		return PageMeta{
			Title:       "EuCorp - Mid-Year Monitoring",
			PageTitle:   "Mid-Year Monitoring",
			CurrentPage: PageMonitoringMidYear,
		}
	}
	return PageMeta{
		Title:       "EuCorp - Plan Monitoring",
		PageTitle:   "Plan Monitoring",
		CurrentPage: PageMonitoring,
	}
}

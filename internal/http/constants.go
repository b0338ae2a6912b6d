package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
// These constants ensure consistency across UI handlers and template mapping.
const (
	// Main navigation pages.
	PageHome      = "home"
	PageDashboard = "dashboard"

	// Planning pages.
	PagePlans            = "plans"
	PagePlanView         = "plan-view" // goal detail with its objectives
	PageStrategicPlans   = "strategic-plans"
	PageOperationalPlans = "operational-plans"

	// Opportunity pages.
	PageOpportunities   = "opportunities"
	PageOpportunityForm = "opportunity-form"

	// Monitoring pages.
	PageMonitoring        = "monitoring"
	PageMonitoringMidYear = "monitoring-mid-year"

	// Reference-data pages.
	PageClassification = "classification"
	PageDepartments    = "departments"
	PageLeads          = "leads"

	// Risk pages.
	PageRiskManagement = "risk-management"
	PageRisks          = "risks"
	PageRiskAssessment = "risk-assessment"

	// Account pages.
	PageUsers   = "users"
	PageProfile = "profile"
	PageLogin   = "login"
)

// MaxRowsForExport caps the rows fetched for a PDF export in one request.
const MaxRowsForExport = 1000

// Template paths used for loading templates in tests and production.
const (
	// Template directory paths.
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// FormMode represents the mode of a form (create or edit).
// Using a dedicated type improves compile-time checks and prevents typos.
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageHome:              "dashboard-content", // Home page shows the dashboard
	PageDashboard:         "dashboard-content",
	PagePlans:             "plans-content",
	PagePlanView:          "plan-view-content",
	PageStrategicPlans:    "strategic-plans-content",
	PageOperationalPlans:  "operational-plans-content",
	PageOpportunities:     "opportunities-content",
	PageOpportunityForm:   "opportunity-form-content",
	PageMonitoring:        "monitoring-content",
	PageMonitoringMidYear: "monitoring-mid-year-content",
	PageClassification:    "classification-content",
	PageDepartments:       "departments-content",
	PageLeads:             "leads-content",
	PageRiskManagement:    "risk-management-content",
	PageRisks:             "risks-content",
	PageRiskAssessment:    "risk-assessment-content",
	PageUsers:             "users-content",
	PageProfile:           "profile-content",
	PageLogin:             "login-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
// This is the single source of truth for page-to-template mapping.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to dashboard-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "dashboard-content"
}

package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eucorp/planning/internal/data"
	"github.com/eucorp/planning/internal/domain/model"
	"github.com/eucorp/planning/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB              *sql.DB
	classifications *service.ClassificationService
	departments     *service.DepartmentService
	leads           *service.LeadService
	goals           *service.GoalService
	objectives      *service.ObjectiveService
	opportunities   *service.OpportunityService
	profiles        *service.ProfileService
	ratings         *service.RatingService
}

// NewServices constructs all required services for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	goalRepo := data.NewGoalRepo(db)
	objectiveRepo := data.NewObjectiveRepo(db)

	return Services{
		DB: db,
		classifications: service.NewClassificationService(service.ClassificationServiceOptions{
			Repo: data.NewClassificationRepo(db),
		}),
		departments: service.NewDepartmentService(service.DepartmentServiceOptions{
			Repo: data.NewDepartmentRepo(db),
		}),
		leads: service.NewLeadService(service.LeadServiceOptions{
			Repo: data.NewLeadRepo(db),
		}),
		goals: service.NewGoalService(service.GoalServiceOptions{
			Repo:       goalRepo,
			Objectives: objectiveRepo,
		}),
		objectives: service.NewObjectiveService(service.ObjectiveServiceOptions{
			Repo:  objectiveRepo,
			Goals: goalRepo,
		}),
		opportunities: service.NewOpportunityService(service.OpportunityServiceOptions{
			Repo: data.NewOpportunityRepo(db),
		}),
		profiles: service.NewProfileService(service.ProfileServiceOptions{
			Repo: data.NewProfileRepo(db),
		}),
		ratings: service.NewRatingService(service.RatingServiceOptions{
			Repo: data.NewRatingRepo(db),
		}),
	}
}

// Run executes the full development seeding workflow against the provided DB.
// Reference data (classifications, leads, ratings) tolerates partial failure;
// the relational chain departments -> profiles -> goals -> objectives ->
// opportunities aborts on the first error because later rows need the IDs.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	failures := 0
	failures += seedClassifications(ctx, svcs.classifications, logger)
	failures += seedLeads(ctx, svcs.leads, logger)
	failures += seedRiskRatings(ctx, svcs.ratings, logger)

	departments, err := seedDepartments(ctx, svcs.departments, logger)
	if err != nil {
		return err
	}
	profiles, err := seedProfiles(ctx, svcs.profiles, departments, logger)
	if err != nil {
		return err
	}
	goals, err := seedStrategicGoals(ctx, svcs, logger)
	if err != nil {
		return err
	}
	if seedErr := seedObjectives(ctx, svcs, goals, profiles, logger); seedErr != nil {
		return seedErr
	}
	if seedErr := seedOpportunities(ctx, svcs.opportunities, departments, profiles, logger); seedErr != nil {
		return seedErr
	}

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func seedClassifications(ctx context.Context, svc *service.ClassificationService, logger *slog.Logger) int {
	names := []string{
		"Strategic",
		"Operational",
		"Financial",
		"Compliance",
		"Reputational",
	}

	failures := 0
	for _, name := range names {
		_, err := svc.Create(ctx, &model.CreateClassificationRequest{Name: name})
		if err != nil {
			if errors.Is(err, data.ErrClassificationNameExists) {
				logInfo(ctx, logger, "classification already exists", "name", name)
				continue
			}
			logError(ctx, logger, "failed to create classification", "name", name, "error", err)
			failures++
			continue
		}
		logInfo(ctx, logger, "created classification", "name", name)
	}
	return failures
}

func seedLeads(ctx context.Context, svc *service.LeadService, logger *slog.Logger) int {
	names := []string{
		"Office of the President",
		"VP for Academic Affairs",
		"VP for Administration",
		"VP for Finance",
		"Quality Assurance Office",
	}

	failures := 0
	for _, name := range names {
		_, err := svc.Create(ctx, &model.CreateLeadRequest{Name: name})
		if err != nil {
			if errors.Is(err, data.ErrLeadNameExists) {
				logInfo(ctx, logger, "lead already exists", "name", name)
				continue
			}
			logError(ctx, logger, "failed to create lead", "name", name, "error", err)
			failures++
			continue
		}
		logInfo(ctx, logger, "created lead", "name", name)
	}
	return failures
}

type ratingSeed struct {
	category model.RatingCategory
	name     string
	symbol   string
}

func defaultRatingSeeds() []ratingSeed {
	return []ratingSeed{
		{model.RatingCategoryLikelihood, "Rare", "1"},
		{model.RatingCategoryLikelihood, "Unlikely", "2"},
		{model.RatingCategoryLikelihood, "Possible", "3"},
		{model.RatingCategoryLikelihood, "Likely", "4"},
		{model.RatingCategoryLikelihood, "Almost Certain", "5"},
		{model.RatingCategorySeverity, "Insignificant", "1"},
		{model.RatingCategorySeverity, "Minor", "2"},
		{model.RatingCategorySeverity, "Moderate", "3"},
		{model.RatingCategorySeverity, "Major", "4"},
		{model.RatingCategorySeverity, "Catastrophic", "5"},
		{model.RatingCategoryRiskControl, "Weak", "W"},
		{model.RatingCategoryRiskControl, "Adequate", "A"},
		{model.RatingCategoryRiskControl, "Strong", "S"},
		{model.RatingCategoryRiskMonitoring, "Quarterly", "Q"},
		{model.RatingCategoryRiskMonitoring, "Semestral", "S"},
		{model.RatingCategoryRiskMonitoring, "Annual", "A"},
	}
}

func seedRiskRatings(ctx context.Context, svc *service.RatingService, logger *slog.Logger) int {
	failures := 0
	for _, seed := range defaultRatingSeeds() {
		_, err := svc.Create(ctx, &model.CreateRiskRatingRequest{
			Category: seed.category,
			Name:     seed.name,
			Symbol:   seed.symbol,
		})
		if err != nil {
			if errors.Is(err, data.ErrRatingExists) {
				continue
			}
			logError(ctx, logger, "failed to create risk rating",
				"category", seed.category, "name", seed.name, "error", err)
			failures++
			continue
		}
		logInfo(ctx, logger, "created risk rating", "category", seed.category, "name", seed.name)
	}
	return failures
}

type departmentSeed struct {
	name     string
	fullName string
}

func defaultDepartmentSeeds() []departmentSeed {
	return []departmentSeed{
		{"CCS", "College of Computer Studies"},
		{"CBA", "College of Business Administration"},
		{"CAS", "College of Arts and Sciences"},
		{"HRD", "Human Resources Department"},
		{"FIN", "Finance Department"},
	}
}

// seedDepartments returns a name -> id index so later phases can link rows.
func seedDepartments(
	ctx context.Context,
	svc *service.DepartmentService,
	logger *slog.Logger,
) (map[string]string, error) {
	out := make(map[string]string)
	for _, seed := range defaultDepartmentSeeds() {
		dept, err := svc.Create(ctx, &model.CreateDepartmentRequest{
			Name:     seed.name,
			FullName: seed.fullName,
		})
		if err != nil {
			if !errors.Is(err, data.ErrDepartmentNameExists) {
				return nil, fmt.Errorf("create department %q: %w", seed.name, err)
			}
			dept, err = svc.GetByName(ctx, seed.name)
			if err != nil {
				return nil, fmt.Errorf("load department %q: %w", seed.name, err)
			}
			logInfo(ctx, logger, "department already exists", "name", seed.name)
		} else {
			logInfo(ctx, logger, "created department", "name", seed.name)
		}
		out[seed.name] = dept.ID
	}
	return out, nil
}

type profileSeed struct {
	firstName  string
	lastName   string
	email      string
	role       string
	department string
}

func defaultProfileSeeds() []profileSeed {
	return []profileSeed{
		{"Dev", "Admin", "dev@eucorp.example", "admin", "CCS"},
		{"Maria", "Santos", "maria.santos@eucorp.example", "admin", "HRD"},
		{"Jose", "Reyes", "jose.reyes@eucorp.example", "user", "CCS"},
		{"Ana", "Cruz", "ana.cruz@eucorp.example", "user", "CBA"},
		{"Paolo", "Garcia", "paolo.garcia@eucorp.example", "user", "FIN"},
	}
}

// seedProfiles returns an email -> id index so later phases can link rows.
func seedProfiles(
	ctx context.Context,
	svc *service.ProfileService,
	departments map[string]string,
	logger *slog.Logger,
) (map[string]string, error) {
	out := make(map[string]string)
	for _, seed := range defaultProfileSeeds() {
		req := &model.CreateProfileRequest{
			FirstName: seed.firstName,
			LastName:  seed.lastName,
			Email:     seed.email,
			Role:      seed.role,
		}
		if deptID, ok := departments[seed.department]; ok {
			req.DepartmentID = &deptID
		}

		profile, err := svc.Create(ctx, req)
		if err != nil {
			if !errors.Is(err, data.ErrProfileEmailExists) {
				return nil, fmt.Errorf("create profile %q: %w", seed.email, err)
			}
			profile, err = svc.GetByEmail(ctx, seed.email)
			if err != nil {
				return nil, fmt.Errorf("load profile %q: %w", seed.email, err)
			}
			logInfo(ctx, logger, "profile already exists", "email", seed.email)
		} else {
			logInfo(ctx, logger, "created profile", "email", seed.email, "role", seed.role)
		}
		out[seed.email] = profile.ID
	}
	return out, nil
}

type goalSeed struct {
	goalNo      int
	name        string
	description string
	kpi         string
	lead        string
}

func defaultGoalSeeds() []goalSeed {
	return []goalSeed{
		{
			goalNo:      1,
			name:        "Academic Excellence",
			description: "Raise program quality and accreditation standing across all colleges.",
			kpi:         "Number of accredited programs",
			lead:        "VP for Academic Affairs",
		},
		{
			goalNo:      2,
			name:        "Operational Efficiency",
			description: "Streamline administrative processes and reduce turnaround times.",
			kpi:         "Average process turnaround in days",
			lead:        "VP for Administration",
		},
		{
			goalNo:      3,
			name:        "Financial Sustainability",
			description: "Diversify revenue streams and keep spending within approved budgets.",
			kpi:         "Budget variance percentage",
			lead:        "VP for Finance",
		},
	}
}

// seedStrategicGoals returns a goal_no -> id index so objectives can link rows.
func seedStrategicGoals(ctx context.Context, svcs Services, logger *slog.Logger) (map[int]string, error) {
	leadIDs, err := indexLeadsByName(ctx, svcs.leads)
	if err != nil {
		return nil, err
	}

	out := make(map[int]string)
	existing, err := svcs.goals.List(ctx, 100, 0)
	if err != nil {
		return nil, fmt.Errorf("list strategic goals: %w", err)
	}
	for _, g := range existing {
		out[g.GoalNo] = g.ID
	}

	for _, seed := range defaultGoalSeeds() {
		if _, ok := out[seed.goalNo]; ok {
			logInfo(ctx, logger, "strategic goal already exists", "goal_no", seed.goalNo)
			continue
		}

		desc := seed.description
		kpi := seed.kpi
		req := &model.CreateStrategicGoalRequest{
			GoalNo:      seed.goalNo,
			Name:        seed.name,
			Description: &desc,
			KPI:         &kpi,
		}
		if leadID, ok := leadIDs[seed.lead]; ok {
			req.LeadID = &leadID
		}

		goal, createErr := svcs.goals.Create(ctx, req)
		if createErr != nil {
			return nil, fmt.Errorf("create strategic goal %d: %w", seed.goalNo, createErr)
		}
		out[seed.goalNo] = goal.ID
		logInfo(ctx, logger, "created strategic goal", "goal_no", seed.goalNo, "name", seed.name)
	}
	return out, nil
}

func indexLeadsByName(ctx context.Context, svc *service.LeadService) (map[string]string, error) {
	leads, err := svc.List(ctx, 100, 0)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	out := make(map[string]string, len(leads))
	for _, l := range leads {
		out[l.Name] = l.ID
	}
	return out, nil
}

type objectiveSeed struct {
	goalNo       int
	name         string
	initiatives  string
	kpi          string
	persons      string
	target       string
	measures     string
	profileEmail string
}

func defaultObjectiveSeeds() []objectiveSeed {
	return []objectiveSeed{
		{
			goalNo:       1,
			name:         "Achieve Level III accreditation for flagship programs",
			initiatives:  "Self-survey, document preparation, mock accreditation visits",
			kpi:          "Programs at Level III or higher",
			persons:      "Deans, program chairs, QA office",
			target:       "3 programs by year end",
			measures:     "Accrediting body certification",
			profileEmail: "jose.reyes@eucorp.example",
		},
		{
			goalNo:       2,
			name:         "Digitize enrollment and records processing",
			initiatives:  "Deploy online enrollment portal, migrate student records",
			kpi:          "Share of transactions completed online",
			persons:      "Registrar, MIS office",
			target:       "80% online by second semester",
			measures:     "Portal transaction reports",
			profileEmail: "ana.cruz@eucorp.example",
		},
		{
			goalNo:       3,
			name:         "Grow auxiliary income streams",
			initiatives:  "Expand facility rentals, launch continuing-education courses",
			kpi:          "Auxiliary revenue versus prior year",
			persons:      "Finance office, extension services",
			target:       "15% year-over-year growth",
			measures:     "Quarterly financial statements",
			profileEmail: "paolo.garcia@eucorp.example",
		},
	}
}

func seedObjectives(
	ctx context.Context,
	svcs Services,
	goals map[int]string,
	profiles map[string]string,
	logger *slog.Logger,
) error {
	for _, seed := range defaultObjectiveSeeds() {
		goalID, ok := goals[seed.goalNo]
		if !ok {
			return fmt.Errorf("objective %q: goal %d not seeded", seed.name, seed.goalNo)
		}

		exists, err := objectiveExists(ctx, svcs.objectives, goalID, seed.name)
		if err != nil {
			return err
		}
		if exists {
			logInfo(ctx, logger, "objective already exists", "name", seed.name)
			continue
		}

		initiatives := seed.initiatives
		kpi := seed.kpi
		persons := seed.persons
		target := seed.target
		measures := seed.measures
		req := &model.CreateObjectiveRequest{
			StrategicGoalID:      goalID,
			Name:                 seed.name,
			StrategicInitiatives: &initiatives,
			KPI:                  &kpi,
			PersonsInvolved:      &persons,
			Target:               &target,
			EvalMeasures:         &measures,
		}
		if profileID, ok := profiles[seed.profileEmail]; ok {
			req.ProfileID = &profileID
		}

		if _, createErr := svcs.objectives.Create(ctx, req); createErr != nil {
			return fmt.Errorf("create objective %q: %w", seed.name, createErr)
		}
		logInfo(ctx, logger, "created objective", "name", seed.name, "goal_no", seed.goalNo)
	}
	return nil
}

func objectiveExists(
	ctx context.Context,
	svc *service.ObjectiveService,
	goalID, name string,
) (bool, error) {
	existing, err := svc.ListByGoal(ctx, goalID, 100, 0)
	if err != nil {
		return false, fmt.Errorf("list objectives for goal %q: %w", goalID, err)
	}
	for _, o := range existing {
		if o.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type opportunitySeed struct {
	statement    string
	actions      string
	kpi          string
	keyPersons   string
	target       string
	budget       float64
	department   string
	profileEmail string
}

func defaultOpportunitySeeds() []opportunitySeed {
	return []opportunitySeed{
		{
			statement:    "Partner with industry for on-the-job training placements",
			actions:      "Draft MOAs with five partner companies",
			kpi:          "Students placed per semester",
			keyPersons:   "OJT coordinator, dean",
			target:       "50 placements",
			budget:       150000,
			department:   "CCS",
			profileEmail: "jose.reyes@eucorp.example",
		},
		{
			statement:    "Offer micro-credential courses for working professionals",
			actions:      "Design three short courses, market through alumni network",
			kpi:          "Course enrollees per offering",
			keyPersons:   "Program chairs, marketing office",
			target:       "30 enrollees per course",
			budget:       250000,
			department:   "CBA",
			profileEmail: "ana.cruz@eucorp.example",
		},
	}
}

func seedOpportunities(
	ctx context.Context,
	svc *service.OpportunityService,
	departments map[string]string,
	profiles map[string]string,
	logger *slog.Logger,
) error {
	existing, err := svc.ListWithOptions(ctx, model.OpportunityListOptions{Limit: 100})
	if err != nil {
		return fmt.Errorf("list opportunities: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, o := range existing {
		seen[o.OptStatement] = true
	}

	for _, seed := range defaultOpportunitySeeds() {
		if seen[seed.statement] {
			logInfo(ctx, logger, "opportunity already exists", "statement", seed.statement)
			continue
		}

		actions := seed.actions
		kpi := seed.kpi
		keyPersons := seed.keyPersons
		target := seed.target
		budget := seed.budget
		req := &model.CreateOpportunityRequest{
			OptStatement:   seed.statement,
			PlannedActions: &actions,
			KPI:            &kpi,
			KeyPersons:     &keyPersons,
			TargetOutput:   &target,
			Budget:         &budget,
		}
		if deptID, ok := departments[seed.department]; ok {
			req.DepartmentID = &deptID
		}
		if profileID, ok := profiles[seed.profileEmail]; ok {
			req.ProfileID = &profileID
		}

		if _, createErr := svc.Create(ctx, req); createErr != nil {
			return fmt.Errorf("create opportunity %q: %w", seed.statement, createErr)
		}
		logInfo(ctx, logger, "created opportunity", "statement", seed.statement)
	}
	return nil
}

func logInfo(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.InfoContext(ctx, msg, args...)
	}
}

func logError(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.ErrorContext(ctx, msg, args...)
	}
}

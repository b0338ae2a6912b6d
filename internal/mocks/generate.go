// Package mocks provides mock implementations for testing the planning services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockGoalRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(goal, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=classification_repository_mock.go github.com/eucorp/planning/internal/core ClassificationRepository
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=department_repository_mock.go github.com/eucorp/planning/internal/core DepartmentRepository
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=lead_repository_mock.go github.com/eucorp/planning/internal/core LeadRepository
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=goal_repository_mock.go github.com/eucorp/planning/internal/core GoalRepository
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=objective_repository_mock.go github.com/eucorp/planning/internal/core ObjectiveRepository
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=opportunity_repository_mock.go github.com/eucorp/planning/internal/core OpportunityRepository
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=profile_repository_mock.go github.com/eucorp/planning/internal/core ProfileRepository
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=rating_repository_mock.go github.com/eucorp/planning/internal/core RatingRepository
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=monitoring_repository_mock.go github.com/eucorp/planning/internal/core MonitoringRepository

package viewmodel

// User represents the authenticated user context exposed to templates.
type User struct {
	Email      string
	Role       string
	FullName   string
	Department string
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	IsAdmin         bool
	CanManageUsers  bool
	CanManagePlans  bool
	User            *User
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}

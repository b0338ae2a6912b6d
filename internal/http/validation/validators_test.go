package validation

import (
	"regexp"
	"testing"
)

const errNameRequired = "Name is required."

func TestRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		maxLen    int
		value     string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid input",
			fieldName: "Name",
			maxLen:    10,
			value:     "valid",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "Name",
			maxLen:    10,
			value:     "",
			wantErr:   true,
			errMsg:    errNameRequired,
		},
		{
			name:      "whitespace only",
			fieldName: "Name",
			maxLen:    10,
			value:     "   ",
			wantErr:   true,
			errMsg:    errNameRequired,
		},
		{
			name:      "exceeds max length",
			fieldName: "Name",
			maxLen:    5,
			value:     "toolong",
			wantErr:   true,
			errMsg:    "Name cannot exceed 5 characters.",
		},
		{
			name:      "exactly max length",
			fieldName: "Name",
			maxLen:    5,
			value:     "exact",
			wantErr:   false,
		},
		{
			name:      "unicode characters within limit",
			fieldName: "Name",
			maxLen:    5,
			value:     "🚀🚀🚀🚀🚀", // 5 emoji characters (each is multiple bytes)
			wantErr:   false,
		},
		{
			name:      "unicode characters exceeds limit",
			fieldName: "Name",
			maxLen:    5,
			value:     "🚀🚀🚀🚀🚀🚀", // 6 emoji characters
			wantErr:   true,
			errMsg:    "Name cannot exceed 5 characters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Required(tt.fieldName, tt.maxLen)
			err := v(tt.value)
			if tt.wantErr && err == "" {
				t.Errorf("Required() expected error but got none")
			}
			if !tt.wantErr && err != "" {
				t.Errorf("Required() unexpected error: %v", err)
			}
			if tt.wantErr && err != tt.errMsg {
				t.Errorf("Required() error = %v, want %v", err, tt.errMsg)
			}
		})
	}
}

func TestOneOf(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		options   []string
		value     string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid option exact case",
			fieldName: "Type",
			options:   []string{"GET", "POST", "PUT"},
			value:     "GET",
			wantErr:   false,
		},
		{
			name:      "valid option different case",
			fieldName: "Type",
			options:   []string{"GET", "POST", "PUT"},
			value:     "get",
			wantErr:   false,
		},
		{
			name:      "invalid option",
			fieldName: "Type",
			options:   []string{"GET", "POST", "PUT"},
			value:     "DELETE",
			wantErr:   true,
			errMsg:    "Type must be one of: GET, POST, PUT",
		},
		{
			name:      "empty string",
			fieldName: "Type",
			options:   []string{"GET", "POST", "PUT"},
			value:     "",
			wantErr:   true,
			errMsg:    "Type must be one of: GET, POST, PUT",
		},
		{
			name:      "whitespace trimmed",
			fieldName: "Type",
			options:   []string{"GET", "POST", "PUT"},
			value:     "  POST  ",
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := OneOf(tt.fieldName, tt.options)
			err := v(tt.value)
			if tt.wantErr && err == "" {
				t.Errorf("OneOf() expected error but got none")
			}
			if !tt.wantErr && err != "" {
				t.Errorf("OneOf() unexpected error: %v", err)
			}
			if tt.wantErr && err != tt.errMsg {
				t.Errorf("OneOf() error = %v, want %v", err, tt.errMsg)
			}
		})
	}
}

func TestPattern(t *testing.T) {
	alphanumericRe := regexp.MustCompile(`^[A-Za-z0-9]+$`)
	acronymRe := regexp.MustCompile(`^[A-Z][A-Z0-9-]*$`)

	tests := []struct {
		name      string
		fieldName string
		re        *regexp.Regexp
		value     string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "matches pattern",
			fieldName: "Name",
			re:        alphanumericRe,
			value:     "abc123",
			wantErr:   false,
		},
		{
			name:      "does not match pattern",
			fieldName: "Name",
			re:        alphanumericRe,
			value:     "abc-123",
			wantErr:   true,
			errMsg:    "Name has an invalid format.",
		},
		{
			name:      "empty string allowed",
			fieldName: "Name",
			re:        alphanumericRe,
			value:     "",
			wantErr:   false,
		},
		{
			name:      "acronym valid",
			fieldName: "Acronym",
			re:        acronymRe,
			value:     "HR-OPS",
			wantErr:   false,
		},
		{
			name:      "acronym invalid start",
			fieldName: "Acronym",
			re:        acronymRe,
			value:     "-invalid",
			wantErr:   true,
			errMsg:    "Acronym has an invalid format.",
		},
		{
			name:      "whitespace trimmed before validation",
			fieldName: "Name",
			re:        alphanumericRe,
			value:     "  abc123  ",
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Pattern(tt.fieldName, tt.re)
			err := v(tt.value)
			if tt.wantErr && err == "" {
				t.Errorf("Pattern() expected error but got none")
			}
			if !tt.wantErr && err != "" {
				t.Errorf("Pattern() unexpected error: %v", err)
			}
			if tt.wantErr && err != tt.errMsg {
				t.Errorf("Pattern() error = %v, want %v", err, tt.errMsg)
			}
		})
	}
}

func TestOptional(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		maxLen    int
		value     string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "empty value passes",
			fieldName: "Notes",
			maxLen:    10,
			value:     "",
			wantErr:   false,
		},
		{
			name:      "whitespace only passes",
			fieldName: "Notes",
			maxLen:    10,
			value:     "   ",
			wantErr:   false,
		},
		{
			name:      "within limit",
			fieldName: "Notes",
			maxLen:    10,
			value:     "short",
			wantErr:   false,
		},
		{
			name:      "exceeds limit",
			fieldName: "Notes",
			maxLen:    5,
			value:     "toolong",
			wantErr:   true,
			errMsg:    "Notes cannot exceed 5 characters.",
		},
		{
			name:      "unicode counted by rune",
			fieldName: "Notes",
			maxLen:    5,
			value:     "🚀🚀🚀🚀🚀",
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Optional(tt.fieldName, tt.maxLen)
			err := v(tt.value)
			if tt.wantErr && err == "" {
				t.Errorf("Optional() expected error but got none")
			}
			if !tt.wantErr && err != "" {
				t.Errorf("Optional() unexpected error: %v", err)
			}
			if tt.wantErr && err != tt.errMsg {
				t.Errorf("Optional() error = %v, want %v", err, tt.errMsg)
			}
		})
	}
}

func TestFieldValidator_SingleField(t *testing.T) {
	fv := New().Validate("name", "test", Required("Name", 10))
	errs := fv.Errors()
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

func TestFieldValidator_SingleFieldWithError(t *testing.T) {
	fv := New().Validate("name", "", Required("Name", 10))
	errs := fv.Errors()
	if len(errs) != 1 {
		t.Errorf("Expected 1 error, got %d", len(errs))
	}
	if errs["name"] != errNameRequired {
		t.Errorf("Expected %q, got %v", errNameRequired, errs["name"])
	}
}

func TestFieldValidator_MultipleFields(t *testing.T) {
	fv := New().
		Validate("name", "test", Required("Name", 10)).
		Validate("notes", "fine", Optional("Notes", 10))
	errs := fv.Errors()
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

func TestFieldValidator_MultipleFieldsWithErrors(t *testing.T) {
	fv := New().
		Validate("name", "", Required("Name", 10)).
		Validate("notes", "far too long", Optional("Notes", 5))
	errs := fv.Errors()
	if len(errs) != 2 {
		t.Errorf("Expected 2 errors, got %d", len(errs))
	}
	if errs["name"] != errNameRequired {
		t.Errorf("Expected %q, got %v", errNameRequired, errs["name"])
	}
	if errs["notes"] != "Notes cannot exceed 5 characters." {
		t.Errorf("Expected 'Notes cannot exceed 5 characters.', got %v", errs["notes"])
	}
}

func TestFieldValidator_StopsAtFirstError(t *testing.T) {
	fv := New().Validate("name", "", Required("Name", 10), Pattern("Name", regexp.MustCompile(`^[A-Z]+$`)))
	errs := fv.Errors()
	if len(errs) != 1 {
		t.Errorf("Expected 1 error, got %d", len(errs))
	}
	// Should stop at Required error, not reach Pattern
	if errs["name"] != errNameRequired {
		t.Errorf("Expected %q, got %v", errNameRequired, errs["name"])
	}
}

func TestFieldValidator_SecondValidatorTriggers(t *testing.T) {
	fv := New().Validate("name", "abc", Required("Name", 10), Pattern("Name", regexp.MustCompile(`^[A-Z]+$`)))
	errs := fv.Errors()
	if len(errs) != 1 {
		t.Errorf("Expected 1 error, got %d", len(errs))
	}
	// Should pass Required, fail Pattern
	if errs["name"] != "Name has an invalid format." {
		t.Errorf("Expected 'Name has an invalid format.', got %v", errs["name"])
	}
}

func TestFieldValidator_EmptyErrors(t *testing.T) {
	fv := New()
	errs := fv.Errors()
	if len(errs) != 0 {
		t.Errorf("Expected empty errors map, got %v", errs)
	}
}

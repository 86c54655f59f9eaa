package manifest

import (
	"testing"
)

func TestValidateFile_ValidManifests(t *testing.T) {
	for _, file := range []string{"valid-catalog.yaml", "valid-catalog.json", "valid-catalog.toml"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	invalidFiles := []struct {
		file    string
		keyword string
	}{
		{"invalid-missing-default.yaml", "required"},
		{"invalid-bad-name-pattern.yaml", "pattern"},
		{"invalid-unknown-field.yaml", "additionalProperties"},
		{"invalid-no-systems.yaml", "minItems"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s, but got valid", tt.file)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("no %q issue in %+v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidateFile_SchemaLevelOnly(t *testing.T) {
	// A dangling alias is well-formed; the registry rejects it later.
	result, err := ValidateFile(testPath("invalid-dangling-alias.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected schema-valid manifest, got issues %+v", result.Issues)
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(testPath("nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestValidate_IssueFields(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-bad-name-pattern.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	issue := result.Issues[0]
	if issue.Path != "/name" {
		t.Errorf("Path = %q, want %q", issue.Path, "/name")
	}
	if issue.Message == "" {
		t.Error("Message is empty")
	}
	if issue.String() != issue.Path+": "+issue.Message {
		t.Errorf("String() = %q", issue.String())
	}
}

func TestValidate_BadJSON(t *testing.T) {
	_, err := Validate([]byte("{not json"), FormatJSON)
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestDeduplicateIssues(t *testing.T) {
	in := []ValidationIssue{
		{Path: "/name", Keyword: "pattern", Message: "m"},
		{Path: "/name", Keyword: "pattern", Message: "m"},
		{Path: "/default", Keyword: "minLength", Message: "m"},
	}
	got := deduplicateIssues(in)
	if len(got) != 2 {
		t.Fatalf("deduplicateIssues len = %d, want 2", len(got))
	}
}

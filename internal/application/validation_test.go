package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid value",
			fieldName: "name",
			value:     "Getting started",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "sourceURI",
			value:     "",
			wantErr:   true,
			wantMsg:   "source URI is required",
		},
		{
			name:      "whitespace only",
			fieldName: "category",
			value:     "   ",
			wantErr:   true,
			wantMsg:   "category is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if valErr.Message != tt.wantMsg {
					t.Errorf("expected message %q, got %q", tt.wantMsg, valErr.Message)
				}
			}
		})
	}
}

func TestValidateLink(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "didact link", value: "didact://?commandId=x", wantErr: false},
		{name: "host protocol link", value: "vscode://redhat.vscode-didact?commandId=x", wantErr: false},
		{name: "surrounding whitespace", value: "  didact://?commandId=x ", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "web link", value: "https://example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLink("link", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLink() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDocumentName(t *testing.T) {
	tests := []struct {
		value   string
		wantMsg string
	}{
		{value: "tutorial.didact.md"},
		{value: "guide.adoc"},
		{value: "", wantMsg: "file name is required"},
		{value: "notes.txt", wantMsg: "unsupported document type: notes.txt (expected .md or .adoc)"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := ValidateDocumentName("fileName", tt.value)
			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var valErr *ValidationError
			if !errors.As(err, &valErr) || valErr.Message != tt.wantMsg {
				t.Errorf("error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}

func TestFormatFieldName(t *testing.T) {
	tests := map[string]string{
		"name":      "name",
		"sourceURI": "source URI",
		"commandID": "command ID",
		"fileName":  "file name",
		"URI":       "URI",
	}
	for in, want := range tests {
		if got := formatFieldName(in); got != want {
			t.Errorf("formatFieldName(%q) = %q, want %q", in, got, want)
		}
	}
}

package summary

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPromptTemplateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	content := "Summarize this calendar briefly."
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, usedDefault := LoadPromptTemplate(path)
	if usedDefault {
		t.Error("usedDefault = true for an existing file")
	}
	if got != content {
		t.Errorf("LoadPromptTemplate() = %q, want %q", got, content)
	}
}

func TestLoadPromptTemplateMissingFile(t *testing.T) {
	got, usedDefault := LoadPromptTemplate(filepath.Join(t.TempDir(), "nope.txt"))

	if !usedDefault {
		t.Error("usedDefault = false for a missing file")
	}
	if got != DefaultPromptTemplate {
		t.Errorf("LoadPromptTemplate() = %q, want the built-in default", got)
	}
}

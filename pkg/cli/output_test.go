package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

type textResult struct {
	Name string `json:"name"`
}

func (r textResult) Text() string {
	return "result: " + r.Name + "\n"
}

func TestTextFormatterUsesTexter(t *testing.T) {
	f := NewFormatter(FormatText)

	var buf bytes.Buffer
	if err := f.FormatTo(&buf, textResult{Name: "phone"}); err != nil {
		t.Fatalf("FormatTo failed: %v", err)
	}
	if got, want := buf.String(), "result: phone\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTextFormatterFallback(t *testing.T) {
	f := NewFormatter(FormatText)

	out, err := f.Format(42)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got, want := string(out), "42\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestJSONFormatter(t *testing.T) {
	f := NewFormatter(FormatJSON)

	var buf bytes.Buffer
	if err := f.FormatTo(&buf, textResult{Name: "phone"}); err != nil {
		t.Fatalf("FormatTo failed: %v", err)
	}

	var decoded textResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Name != "phone" {
		t.Errorf("Name = %q, want %q", decoded.Name, "phone")
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("JSON output is not indented")
	}
}

func TestUnknownFormatDefaultsToText(t *testing.T) {
	f := NewFormatter(OutputFormat("yaml"))
	if _, ok := f.(*TextFormatter); !ok {
		t.Errorf("NewFormatter returned %T, want *TextFormatter", f)
	}
}

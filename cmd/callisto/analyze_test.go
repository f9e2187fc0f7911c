package main

import (
	"strings"
	"testing"
)

func TestAnalyzeResultText(t *testing.T) {
	r := analyzeResult{
		Model:      "phone",
		Source:     "phone.xml",
		Features:   5,
		LogicRules: []string{"Root", "Phone → Screen"},
		Products: [][]string{
			{"Basic", "Phone", "Screen"},
			{"HighRes", "Phone", "Screen"},
		},
		Warnings:  []string{"Constraint not supported: Waterproof excludes GPS"},
		Truncated: true,
	}

	out := r.Text()

	for _, want := range []string{
		"Model: phone (5 features)",
		"Logic rules (2):",
		"Phone → Screen",
		"Minimal products (2):",
		"1. Basic, Phone, Screen",
		"truncated",
		"Constraint not supported",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Text() missing %q; output:\n%s", want, out)
		}
	}
}

func TestAnalyzeResultTextFallsBackToSource(t *testing.T) {
	r := analyzeResult{Source: "phone.xml", Features: 1}
	if !strings.Contains(r.Text(), "Model: phone.xml") {
		t.Errorf("Text() did not fall back to source name; output:\n%s", r.Text())
	}
}

func TestValidateResultText(t *testing.T) {
	valid := validateResult{
		Selected: []string{"Phone", "Screen"},
		IsValid:  true,
		Messages: []string{},
	}
	if !strings.Contains(valid.Text(), "Result: valid") {
		t.Errorf("Text() = %q, want valid verdict", valid.Text())
	}

	invalid := validateResult{
		Selected: []string{"Phone"},
		IsValid:  false,
		Messages: []string{"Missing mandatory feature: Screen"},
	}
	out := invalid.Text()
	if !strings.Contains(out, "Result: invalid") {
		t.Errorf("Text() = %q, want invalid verdict", out)
	}
	if !strings.Contains(out, "Missing mandatory feature: Screen") {
		t.Errorf("Text() = %q, want diagnostic message", out)
	}
}

func TestHistoryResultTextEmpty(t *testing.T) {
	out := historyResult{}.Text()
	if !strings.Contains(out, "No analysis history") {
		t.Errorf("Text() = %q, want empty-history message", out)
	}
}

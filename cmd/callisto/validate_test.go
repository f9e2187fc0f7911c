package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validateTestModel = `<?xml version="1.0"?>
<featureModel name="phone">
  <feature name="Phone" mandatory="true">
    <feature name="Screen" mandatory="true"/>
    <feature name="GPS"/>
  </feature>
</featureModel>`

func TestRunValidateExitStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phone.xml")
	if err := os.WriteFile(path, []byte(validateTestModel), 0o644); err != nil {
		t.Fatal(err)
	}

	origSelection := validateFlags.selection
	defer func() { validateFlags.selection = origSelection }()

	validateFlags.selection = []string{"Phone", "Screen"}
	if err := runValidate(validateCmd, []string{path}); err != nil {
		t.Errorf("runValidate() with a valid selection returned %v, want nil", err)
	}

	// An invalid selection reports through the error return, so deferred
	// cleanup and cobra's exit handling still run.
	validateFlags.selection = []string{"Phone"}
	err := runValidate(validateCmd, []string{path})
	if !errors.Is(err, errInvalidSelection) {
		t.Errorf("runValidate() with an invalid selection returned %v, want errInvalidSelection", err)
	}
}

package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/ehrtable/internal/config"
	"github.com/nao1215/ehrtable/internal/model"
)

const testEHR = `[
  {"patient_id": "P1", "age": 40, "gender": "M", "symptoms": "cough",
   "doctor_observations": "mild", "diagnosis": "Asthma"},
  {"patient_id": "P2", "age": 58, "gender": "F", "symptoms": "headache",
   "doctor_observations": "elevated pressure", "diagnosis": "Hypertension "}
]`

// executeRoot runs the root command with args and returns stdout and stderr.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeEHR writes content as the input file in dir.
func writeEHR(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "ehr.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	return path
}

// TestRunReportCmd tests the report command end to end.
func TestRunReportCmd(t *testing.T) {
	t.Run("prints table and writes CSV", func(t *testing.T) {
		dir := t.TempDir()
		input := writeEHR(t, dir, testEHR)
		output := filepath.Join(dir, "table.csv")

		stdout, _, err := executeRoot(t, "-i", input, "-o", output)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(stdout, "J45.909") || !strings.Contains(stdout, "I10") {
			t.Errorf("expected codes in table, got %q", stdout)
		}

		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("failed to read CSV: %v", err)
		}
		rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		if err != nil {
			t.Fatalf("failed to parse CSV: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}
		if strings.Join(rows[1], ",") != "P1,40,M,cough,mild,Asthma,J45.909" {
			t.Errorf("unexpected row: %v", rows[1])
		}
	})

	t.Run("verbose prints summary and logs without patient data", func(t *testing.T) {
		dir := t.TempDir()
		input := writeEHR(t, dir, testEHR)

		stdout, stderr, err := executeRoot(t, "-v", "-i", input, "-o", filepath.Join(dir, "table.csv"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "2 record(s): 2 coded, 0 without a known ICD-10 code") {
			t.Errorf("expected summary line, got %q", stdout)
		}
		if !strings.Contains(stderr, "run_id=") {
			t.Errorf("expected debug logs on stderr, got %q", stderr)
		}
		if strings.Contains(stderr, "elevated pressure") {
			t.Error("patient data must not appear in logs")
		}
	})

	t.Run("reads paths from config file", func(t *testing.T) {
		dir := t.TempDir()
		input := writeEHR(t, dir, testEHR)
		output := filepath.Join(dir, "from-config.csv")
		cfgPath := filepath.Join(dir, "ehrtable.yaml")
		content := "input: " + input + "\noutput: " + output + "\n"
		if err := os.WriteFile(cfgPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, _, err := executeRoot(t, "-c", cfgPath); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(output); err != nil {
			t.Errorf("expected CSV at config output path: %v", err)
		}
	})

	t.Run("flags override config file", func(t *testing.T) {
		dir := t.TempDir()
		input := writeEHR(t, dir, testEHR)
		fromFlag := filepath.Join(dir, "from-flag.csv")
		cfgPath := filepath.Join(dir, "ehrtable.yaml")
		content := "input: " + input + "\noutput: " + filepath.Join(dir, "from-config.csv") + "\n"
		if err := os.WriteFile(cfgPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, _, err := executeRoot(t, "-c", cfgPath, "-o", fromFlag); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(fromFlag); err != nil {
			t.Errorf("expected CSV at flag output path: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "from-config.csv")); !os.IsNotExist(err) {
			t.Error("config output path should not be written")
		}
	})

	t.Run("missing explicit config file is an error", func(t *testing.T) {
		_, _, err := executeRoot(t, "-c", filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("missing input returns ErrFileAccess", func(t *testing.T) {
		dir := t.TempDir()
		_, _, err := executeRoot(t, "-i", filepath.Join(dir, "missing.json"), "-o", filepath.Join(dir, "table.csv"))
		if !errors.Is(err, model.ErrFileAccess) {
			t.Errorf("expected ErrFileAccess, got %v", err)
		}
	})

	t.Run("output equal to input is rejected", func(t *testing.T) {
		dir := t.TempDir()
		input := writeEHR(t, dir, testEHR)

		_, _, err := executeRoot(t, "-i", input, "-o", input)
		if !errors.Is(err, config.ErrSamePath) {
			t.Errorf("expected ErrSamePath, got %v", err)
		}
		data, readErr := os.ReadFile(input)
		if readErr != nil || string(data) != testEHR {
			t.Error("input file must be left untouched")
		}
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		if _, _, err := executeRoot(t, "extra"); err == nil {
			t.Error("expected error for positional argument")
		}
	})
}

package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the roster_report binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "roster_report"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath, err := filepath.Abs(filepath.Join("..", "..", "bin", binaryName))
	if err != nil {
		t.Fatalf("failed to resolve binary path: %v", err)
	}
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// writeRoster writes a roster file with a header row into dir and returns its path
func writeRoster(t *testing.T, dir string, rows ...string) string {
	t.Helper()
	content := "ФИО полностью;Департамент;Отдел;Должность;Оценка;Оклад\n"
	for _, row := range rows {
		content += row + "\n"
	}
	path := filepath.Join(dir, "Corp_Summary.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write roster: %v", err)
	}
	return path
}

var sampleRows = []string{
	"Иванов;Разработка;Backend;Инженер;4.5;1000",
	"Петров;Разработка;Frontend;Инженер;4.0;3000",
	"Сидоров;Маркетинг;SMM;Менеджер;3.5;2000",
}

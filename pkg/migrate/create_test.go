package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smoralesdev/franchise-backend/pkg/migrate"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestCreateSQLMigrationProducesValidStub(t *testing.T) {
	dir := t.TempDir()

	path, err := migrate.CreateSQLMigration(dir, "Add Branch Manager Column")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	if !strings.HasSuffix(path, "_add_branch_manager_column.sql") {
		t.Fatalf("unexpected filename %q", path)
	}
	if err := migrate.ValidateDir(dir); err != nil {
		t.Fatalf("stub should pass validation: %v", err)
	}
}

func TestCreateSQLMigrationRejectsUnusableName(t *testing.T) {
	if _, err := migrate.CreateSQLMigration(t.TempDir(), "!!!"); err == nil {
		t.Fatal("expected error for name without usable characters")
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "not_a_migration.sql"), "-- +goose Up\n-- +goose Down\n")

	if err := migrate.ValidateDir(dir); err == nil {
		t.Fatal("expected error for file without a version stamp")
	}
}

func TestValidateDirRejectsMissingDownMarker(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "20250901120000_add_table.sql"), "-- +goose Up\nCREATE TABLE t (id int);\n")

	if err := migrate.ValidateDir(dir); err == nil {
		t.Fatal("expected error for migration without a Down marker")
	}
}

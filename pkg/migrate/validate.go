package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var migrationFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)

func checkMigrationFile(dir string, name string) error {
	body, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("migrate: read %q: %w", name, err)
	}
	for _, marker := range []string{"-- +goose Up", "-- +goose Down"} {
		if !strings.Contains(string(body), marker) {
			return fmt.Errorf("migrate: %q is missing the %q marker", name, marker)
		}
	}
	return nil
}

// ValidateDir checks every SQL file in dir for the goose naming convention,
// unique versions, and the Up/Down markers. An empty dir passes; non-SQL
// files are skipped.
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("migrate: empty migrations dir")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("migrate: read dir %q: %w", dir, err)
	}

	versions := map[string]string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		m := migrationFileRe.FindStringSubmatch(name)
		if m == nil {
			return fmt.Errorf("migrate: %q does not match YYYYMMDDHHMMSS_name.sql", name)
		}
		if prev, dup := versions[m[1]]; dup {
			return fmt.Errorf("migrate: version %s used by both %q and %q", m[1], prev, name)
		}
		versions[m[1]] = name

		if err := checkMigrationFile(dir, name); err != nil {
			return err
		}
	}
	return nil
}

package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var nameCleanupRe = regexp.MustCompile(`[^a-z0-9_]+`)

// stubTemplate is the body of a freshly created migration. Both directions
// are present so ValidateDir accepts the stub before it is filled in.
const stubTemplate = `-- +goose Up
-- +goose StatementBegin
-- %[1]s
-- +goose StatementEnd

-- +goose Down
-- +goose StatementBegin
-- undo %[1]s
-- +goose StatementEnd
`

func cleanMigrationName(name string) (string, error) {
	clean := strings.ToLower(strings.TrimSpace(name))
	clean = nameCleanupRe.ReplaceAllString(clean, "_")
	clean = strings.Trim(clean, "_")
	if clean == "" {
		return "", fmt.Errorf("migrate: name %q has no usable characters", name)
	}
	return clean, nil
}

// CreateSQLMigration writes a timestamped goose SQL stub into dir and returns
// its path. The current UTC second becomes the version, so two creates within
// the same second collide on purpose.
func CreateSQLMigration(dir string, name string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("migrate: empty migrations dir")
	}
	clean, err := cleanMigrationName(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("migrate: mkdir %q: %w", dir, err)
	}

	version := time.Now().UTC().Format("20060102150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.sql", version, clean))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("migrate: create %q: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, stubTemplate, clean); err != nil {
		return "", fmt.Errorf("migrate: write %q: %w", path, err)
	}
	return path, nil
}

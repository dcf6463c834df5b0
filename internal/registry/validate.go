package registry

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/karammi/snowplow/internal/ctxlog"
	"github.com/karammi/snowplow/internal/generator"
)

// probeVersion is the schema version used to check generators at start-up.
const probeVersion = "1-0-0"

var schemaNamePattern = regexp.MustCompile(
	"^" + regexp.QuoteMeta(generator.Vendor) + "/[A-Z][A-Za-z0-9]*/" + generator.FormatAvro + "/" + regexp.QuoteMeta(probeVersion) + "$")

// ValidateRegistry performs a parity check over every registered generator:
// its factory must produce a generator whose schema name is well formed and
// not shared with another generator.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)
	owners := make(map[string]string)

	for _, name := range r.Names() {
		gen := r.factories[name]()
		if gen == nil {
			errs = append(errs, fmt.Sprintf("generator '%s': factory returned nil", name))
			continue
		}

		schemaName := gen.SchemaName(probeVersion)
		if !schemaNamePattern.MatchString(schemaName) {
			errs = append(errs, fmt.Sprintf("generator '%s': schema name '%s' does not match %s", name, schemaName, schemaNamePattern))
			continue
		}
		if other, dup := owners[schemaName]; dup {
			errs = append(errs, fmt.Sprintf("generator '%s': schema name '%s' already used by generator '%s'", name, schemaName, other))
			continue
		}
		owners[schemaName] = name
		logger.Debug("Generator validated.", "name", name, "schema", schemaName)
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

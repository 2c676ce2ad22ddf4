// ABOUTME: User-extensible query filter vocabulary loaded from filters.yaml.
// ABOUTME: Built-in filters always apply; the file appends extras to the completion list.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BuiltinFilters is the query vocabulary the shell completes against
// even without a filters file. Each filter carries its negated form.
var BuiltinFilters = []string{
	"owner:self",
	"-owner:self",
	"is:open",
	"-is:open",
	"is:wip",
	"-is:wip",
}

// filtersFile is the on-disk shape of filters.yaml.
type filtersFile struct {
	Filters []string `yaml:"filters"`
}

// LoadFilters returns the built-in filters plus any the user declared
// in filters.yaml. A missing file yields the built-ins alone.
func LoadFilters() ([]string, error) {
	return loadFiltersFrom(FiltersFile())
}

func loadFiltersFrom(path string) ([]string, error) {
	out := make([]string, len(BuiltinFilters))
	copy(out, BuiltinFilters)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading filters: %w", err)
	}

	var f filtersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	seen := make(map[string]bool, len(out))
	for _, v := range out {
		seen[v] = true
	}
	for _, v := range f.Filters {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out, nil
}

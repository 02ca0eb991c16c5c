package chord

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// LoadCatalog decodes a JSON array of chord types and validates it.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, errors.Wrap(err, "could not decode chord catalog")
	}
	if len(c) == 0 {
		return nil, errors.New("chord catalog is empty")
	}

	seen := make(map[string]bool, len(c))
	for i, t := range c {
		if t.Name == "" {
			return nil, errors.Errorf("chord type %d has no name", i)
		}
		if len(t.Intervals) == 0 {
			return nil, errors.Errorf("chord type %q has no intervals", t.Name)
		}
		if seen[t.Name] {
			return nil, errors.Errorf("chord type %q is defined twice", t.Name)
		}
		seen[t.Name] = true
	}
	return c, nil
}

func LoadCatalogFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open chord catalog")
	}
	defer f.Close()

	c, err := LoadCatalog(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return c, nil
}

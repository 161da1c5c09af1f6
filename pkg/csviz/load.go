package csviz

import (
	"github.com/csviz/csviz-go/pkg/csviz/cache"
	"github.com/csviz/csviz-go/pkg/csviz/models"
	"github.com/csviz/csviz-go/pkg/csviz/parser"
)

// Load runs the full pipeline once over the dataset at path and returns its
// chart specification. Any stage failure yields no specification.
func Load(path string, opts Options) (*models.ChartSpec, error) {
	lines, err := readLines(path, opts)
	if err != nil {
		return nil, err
	}
	spec, err := parser.Parse(lines, parser.Config{Delimiter: opts.delimiter()})
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return spec, nil
}

// LoadCached is the cache-wrapped variant of Load. Within the store's TTL
// window the cached specification for key is returned; otherwise the dataset
// is rebuilt, with rebuilds serialized per key.
func LoadCached(store *cache.Store, key, path string, opts Options) (*models.ChartSpec, error) {
	return store.Get(key, func() (*models.ChartSpec, error) {
		return Load(path, opts)
	})
}

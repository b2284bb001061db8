package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/medkit/resource-swag/internal/domain"
)

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// fileDocument is the serialized catalog file layout.
type fileDocument struct {
	// Types maps delegate type names to their property type maps.
	Types map[string]map[string]string `json:"types"`

	// Resources lists the REST resources the file contributes.
	Resources []resourceDocument `json:"resources"`
}

type resourceDocument struct {
	Name            string                                                    `json:"name"`
	Delegate        string                                                    `json:"delegate"`
	Representations map[domain.RepresentationKind]*domain.ResourceDescription `json:"representations"`
}

// staticSource serves representation descriptions out of loaded data.
type staticSource struct {
	representations map[domain.RepresentationKind]*domain.ResourceDescription
}

func (s *staticSource) Description(rep domain.RepresentationKind) (*domain.ResourceDescription, error) {
	return s.representations[rep], nil
}

// Loader reads serialized catalog files into a Catalog.
type Loader struct {
	debug Debugger
}

// Option configures a Loader.
type Option func(*Loader)

// WithDebugger routes debug output to d.
func WithDebugger(d Debugger) Option {
	return func(l *Loader) {
		l.debug = d
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// loadedFile pairs a path with its parsed document for deterministic merging.
type loadedFile struct {
	path string
	doc  fileDocument
}

// Load reads and merges catalog files. Files are parsed concurrently with an
// errgroup bounded by the number of CPUs, then merged in path order so the
// resulting catalog does not depend on goroutine scheduling. On duplicate
// type or resource names the file earliest in path order wins.
func (l *Loader) Load(paths ...string) (domain.Catalog, error) {
	var (
		mu     sync.Mutex
		loaded []loadedFile
	)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, path := range paths {
		path := path

		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read catalog file %s: %w", path, err)
			}

			var doc fileDocument
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("failed to parse catalog file %s: %w", path, err)
			}

			mu.Lock()
			loaded = append(loaded, loadedFile{path: path, doc: doc})
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].path < loaded[j].path
	})

	return l.merge(loaded)
}

func (l *Loader) merge(loaded []loadedFile) (domain.Catalog, error) {
	types := make(map[string]domain.IntrospectableType)
	seen := make(map[string]bool)
	var catalog domain.Catalog

	for _, file := range loaded {
		for name, props := range file.doc.Types {
			if _, ok := types[name]; ok {
				l.debugf("loader: duplicate type %q in %s ignored", name, file.path)
				continue
			}
			types[name] = domain.NewStaticType(name, props)
		}
	}

	for _, file := range loaded {
		for _, res := range file.doc.Resources {
			if res.Name == "" {
				return nil, fmt.Errorf("catalog file %s contains a resource without a name", file.path)
			}
			if seen[res.Name] {
				l.debugf("loader: duplicate resource %q in %s ignored", res.Name, file.path)
				continue
			}
			seen[res.Name] = true

			delegate := types[res.Delegate]
			if delegate == nil && res.Delegate != "" {
				l.debugf("loader: resource %q names unknown delegate type %q", res.Name, res.Delegate)
			}

			catalog = append(catalog, &domain.ResourceDescriptor{
				Name:     res.Name,
				Delegate: delegate,
				Source:   &staticSource{representations: res.Representations},
			})
		}
	}

	l.debugf("loader: %d resources from %d files", len(catalog), len(loaded))
	return catalog, nil
}

func (l *Loader) debugf(format string, v ...interface{}) {
	if l.debug != nil {
		l.debug.Printf(format, v...)
	}
}

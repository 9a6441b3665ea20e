package items

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Provider supplies the items a list renders.
type Provider interface {
	Items(ctx context.Context) ([]Item, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) ([]Item, error)

// Items implements Provider.
func (f ProviderFunc) Items(ctx context.Context) ([]Item, error) {
	return f(ctx)
}

// DefaultDemoCount is the number of generated rows in the demo list.
const DefaultDemoCount = 100

// DemoProvider produces the built-in file-explorer sample list.
type DemoProvider struct {
	Count int
}

// Items implements Provider.
func (p DemoProvider) Items(_ context.Context) ([]Item, error) {
	n := p.Count
	if n < 0 {
		n = 0
	}

	list := make([]Item, 0, n+4)
	list = append(list,
		Item{Icon: "file", ID: "index.ts", Label: "index.ts", Placeholder: "[entry] very longerrrrrrrrrrrrrrrrrrrrrr placeholder"},
		Item{Icon: "beaker", ID: "index.spec.ts", Label: "index.spec.ts", Placeholder: "[entry] test"},
		Item{Icon: "file", ID: "tsconfig.json", Label: "tsconfig.json"},
	)
	for i := range n {
		list = append(list, Item{Icon: "file", ID: fmt.Sprintf("item-%d", i), Label: fmt.Sprintf("Item %d", i)})
	}
	list = append(list, Item{Icon: "folder-library", ID: "node_modules", Label: "node_modules"})
	return list, nil
}

type itemFile struct {
	Items []Item `yaml:"items"`
}

// FileProvider loads items from one or more YAML files. Files are read
// concurrently and concatenated in the order given.
type FileProvider struct {
	Paths []string
}

// Items implements Provider.
func (p FileProvider) Items(ctx context.Context) ([]Item, error) {
	parts := make([][]Item, len(p.Paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range p.Paths {
		g.Go(func() error {
			loaded, err := loadFile(gctx, path)
			if err != nil {
				return err
			}
			parts[i] = loaded
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Item
	seen := make(map[string]string)
	for i, part := range parts {
		for _, it := range part {
			if prev, dup := seen[it.ID]; dup {
				return nil, fmt.Errorf("%w: %q in %s (first seen in %s)", ErrDuplicateID, it.ID, p.Paths[i], prev)
			}
			seen[it.ID] = p.Paths[i]
			all = append(all, it)
		}
	}
	return all, nil
}

func loadFile(ctx context.Context, path string) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading items file %s: %w", path, err)
	}

	var f itemFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing items file %s: %w", path, err)
	}

	for i, it := range f.Items {
		if it.ID == "" {
			return nil, fmt.Errorf("items file %s: item %d has no id", path, i)
		}
		if it.Label == "" {
			f.Items[i].Label = it.ID
		}
	}
	return f.Items, nil
}

package prestashop

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the per-item fan-out of a collection listing.
const DefaultConcurrency = 10

// lister is the listing strategy of a resource kind. The default fetches
// identifiers first and then each item; collections that inline full item
// payloads swap in a direct strategy.
type lister func(ctx context.Context, r *Resource, query map[string]string) ([]*Model, error)

// Resource is a typed accessor for one collection of remote objects. A
// Resource holds no call state; every List and Get is independent and
// safe to run concurrently.
type Resource struct {
	client *Client
	logger zerolog.Logger
	desc   Descriptor
}

// ResourceOption overrides one Resource instance's configuration without
// touching the registered kind.
type ResourceOption func(*Resource)

// WithFilter keeps only models matching fn in List results.
func WithFilter(fn func(*Model) bool) ResourceOption {
	return func(r *Resource) {
		r.desc.Filter = fn
	}
}

// WithSort orders List results with the given comparator. Sorting runs
// after filtering.
func WithSort(less func(a, b *Model) bool) ResourceOption {
	return func(r *Resource) {
		r.desc.Less = less
	}
}

// WithResourceRoot overrides the collection root path, for shops exposing
// a kind under a non-standard mount.
func WithResourceRoot(root string) ResourceOption {
	return func(r *Resource) {
		if root != "" {
			r.desc.Root = root
		}
	}
}

// Descriptor returns the resource's effective configuration.
func (r *Resource) Descriptor() Descriptor {
	return r.desc
}

// List fetches the collection and returns one model per item in the
// webservice's listing order. The default strategy issues one GET for the
// identifier list and then one deduplicated GET per item, concurrently;
// any item failure aborts the whole call. The kind's filter and
// comparator, or per-instance overrides, shape the final slice.
func (r *Resource) List(ctx context.Context, query map[string]string) ([]*Model, error) {
	models, err := r.desc.list(ctx, r, query)
	if err != nil {
		return nil, err
	}

	if r.desc.Filter != nil {
		filtered := make([]*Model, 0, len(models))
		for _, m := range models {
			if r.desc.Filter(m) {
				filtered = append(filtered, m)
			}
		}
		models = filtered
	}

	if r.desc.Less != nil {
		sort.SliceStable(models, func(i, j int) bool {
			return r.desc.Less(models[i], models[j])
		})
	}

	r.logger.Debug().
		Int("count", len(models)).
		Msg("Listed collection")

	return models, nil
}

// First returns the first model of the collection, or nil when the
// collection is empty. The full listing runs so that filters and
// comparators apply before the head is taken.
func (r *Resource) First(ctx context.Context, query map[string]string) (*Model, error) {
	models, err := r.List(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	return models[0], nil
}

// Get fetches one item by identifier and wraps its parsed attributes in a
// model.
//
// Failures that occur before the request leaves the process degrade to an
// empty model and a logged error, so one malformed lookup cannot take
// down a caller holding many models. Failures of the issued request
// itself, transport, status or parsing, are returned.
func (r *Resource) Get(ctx context.Context, id string) (*Model, error) {
	resp, err := r.client.Get(ctx, r.desc.Root+"/"+id, nil)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) {
			r.logger.Error().
				Err(err).
				Str("id", id).
				Msg("Failed to build item request, returning empty model")
			return r.newModel(Attributes{}), nil
		}
		return nil, err
	}

	attrs, err := nodeAttributes(resp.Body, r.desc.NodeType, r.client.LanguageID())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s %s: %w", r.desc.NodeType, id, err)
	}
	return r.newModel(attrs), nil
}

// Models fetches every identifier concurrently and returns the models in
// identifier order. Each fetch funnels through Client.Get, so overlapping
// listings converge on shared item requests. The first failure cancels
// the remaining fetches and fails the whole call.
func (r *Resource) Models(ctx context.Context, ids []string) ([]*Model, error) {
	if len(ids) == 0 {
		return []*Model{}, nil
	}

	models := make([]*Model, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			m, err := r.Get(ctx, id)
			if err != nil {
				return err
			}
			models[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return models, nil
}

// newModel wraps parsed attributes together with their origin. Pure
// construction, no I/O.
func (r *Resource) newModel(attrs Attributes) *Model {
	return &Model{
		client:   r.client,
		resource: r,
		attrs:    attrs,
	}
}

// listByIDs is the default listing strategy: one GET for the identifier
// list, then one item fetch per identifier.
func listByIDs(ctx context.Context, r *Resource, query map[string]string) ([]*Model, error) {
	resp, err := r.client.Get(ctx, r.desc.Root, query)
	if err != nil {
		return nil, err
	}

	ids, err := collectionIDs(resp.Body, r.desc.APIName, r.desc.NodeType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s listing: %w", r.desc.APIName, err)
	}

	return r.Models(ctx, ids)
}

// listInline handles collections whose listing payload inlines one full
// attribute set per item, so a single GET yields every model with no
// identifier indirection.
func listInline(ctx context.Context, r *Resource, query map[string]string) ([]*Model, error) {
	resp, err := r.client.Get(ctx, r.desc.Root, query)
	if err != nil {
		return nil, err
	}

	sets, err := attributeSets(resp.Body, r.desc.NodeType, r.client.LanguageID())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s listing: %w", r.desc.APIName, err)
	}

	models := make([]*Model, 0, len(sets))
	for _, attrs := range sets {
		models = append(models, r.newModel(attrs))
	}
	return models, nil
}

// AscendingBy builds a comparator ordering models by one attribute,
// numerically when both values parse as numbers and lexically otherwise.
func AscendingBy(attr string) func(a, b *Model) bool {
	return func(a, b *Model) bool {
		av, bv := a.Attr(attr), b.Attr(attr)
		af, aerr := strconv.ParseFloat(av, 64)
		bf, berr := strconv.ParseFloat(bv, 64)
		if aerr == nil && berr == nil {
			return af < bf
		}
		return av < bv
	}
}

// DescendingBy is AscendingBy with the order reversed.
func DescendingBy(attr string) func(a, b *Model) bool {
	asc := AscendingBy(attr)
	return func(a, b *Model) bool {
		return asc(b, a)
	}
}

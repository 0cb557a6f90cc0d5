package lstore

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ValentinKolb/dTree/lib/store"
	"github.com/ValentinKolb/dTree/lib/tree"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"golang.org/x/exp/slices"
)

var log = logger.GetLogger("store")

const defaultSeparator = "/"

// Options configures the local store.
type Options struct {
	Separator string       // Separator between key segments ("" = use default: "/")
	Ordered   bool         // List in hierarchical key order (false = arbitrary order)
	Metrics   *metrics.Set // Set receiving the operation counters (nil = private set)
}

// DefaultOptions returns the default local store options
func DefaultOptions() *Options {
	return &Options{
		Separator: defaultSeparator,
		Ordered:   true,
	}
}

// storeImpl is a store over one sub-tree of a shared tree. A top level store covers the
// root, a sub-store covers its prefix. Both work through a branch view, so every delete
// trims the branches it empties.
type storeImpl struct {
	mu      *sync.Mutex // shared by a store and all of its sub-stores
	tree    tree.ITree[string, string]
	view    tree.ITree[string, string]
	prefix  tree.Path[string]
	sep     string
	ordered bool
	metrics *metrics.Set
}

// NewLocalStore creates a new local store instance backed by the tree the factory creates.
// Data is kept in memory only.
//
// Thread-safety: The returned store and all of its sub-stores are safe for concurrent use;
// every call holds a lock shared by the whole store family.
func NewLocalStore(factory store.TreeFactory, opts *Options) store.IStore {
	if opts == nil {
		opts = DefaultOptions()
	}
	sep := opts.Separator
	if sep == "" {
		sep = defaultSeparator
	}
	set := opts.Metrics
	if set == nil {
		set = metrics.NewSet()
	}

	t := factory()
	return &storeImpl{
		mu:      &sync.Mutex{},
		tree:    t,
		view:    t.GetBranchView(tree.RootPath[string]()),
		prefix:  tree.RootPath[string](),
		sep:     sep,
		ordered: opts.Ordered,
		metrics: set,
	}
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// parseKey converts a key into a path relative to the store.
func (s *storeImpl) parseKey(key string) (tree.Path[string], error) {
	trimmed := key
	for strings.HasPrefix(trimmed, s.sep) {
		trimmed = strings.TrimPrefix(trimmed, s.sep)
	}
	for strings.HasSuffix(trimmed, s.sep) {
		trimmed = strings.TrimSuffix(trimmed, s.sep)
	}
	if trimmed == "" {
		return tree.RootPath[string](), nil
	}
	segments := strings.Split(trimmed, s.sep)
	for _, segment := range segments {
		if segment == "" {
			s.count("errors", store.RetCInvalidKey.String())
			return tree.Path[string]{}, store.NewError(store.RetCInvalidKey, fmt.Sprintf("key %q contains an empty segment", key))
		}
	}
	return tree.NewPath(segments...), nil
}

func (s *storeImpl) formatKey(p tree.Path[string]) string {
	return p.Join(s.sep)
}

// count increments the counter of an operation or an error code.
func (s *storeImpl) count(kind, label string) {
	switch kind {
	case "errors":
		s.metrics.GetOrCreateCounter(fmt.Sprintf(`dtree_store_errors_total{code=%q}`, label)).Inc()
	default:
		s.metrics.GetOrCreateCounter(fmt.Sprintf(`dtree_store_ops_total{op=%q}`, label)).Inc()
	}
}

// begin locks the store family, counts op and parses key.
// The caller must call s.mu.Unlock when done, also on error.
func (s *storeImpl) begin(op, key string) (tree.Path[string], error) {
	s.mu.Lock()
	s.count("ops", op)
	return s.parseKey(key)
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Set(key string, value string) error {
	p, err := s.begin("set", key)
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	s.view.SetAt(p, value)
	return nil
}

func (s *storeImpl) SetIfUnset(key string, value string) (bool, error) {
	p, err := s.begin("setnx", key)
	defer s.mu.Unlock()
	if err != nil {
		return false, err
	}
	return !s.view.SetAtIfAbsent(p, value).Found(), nil
}

func (s *storeImpl) Get(key string) (string, bool, error) {
	p, err := s.begin("get", key)
	defer s.mu.Unlock()
	if err != nil {
		return "", false, err
	}
	value, ok := s.view.GetAtSafely(p).Get()
	return value, ok, nil
}

func (s *storeImpl) Has(key string) (bool, error) {
	p, err := s.begin("has", key)
	defer s.mu.Unlock()
	if err != nil {
		return false, err
	}
	return s.view.HasItemAt(p), nil
}

func (s *storeImpl) Delete(key string) (bool, error) {
	p, err := s.begin("del", key)
	defer s.mu.Unlock()
	if err != nil {
		return false, err
	}
	return s.view.ClearAt(p).Found(), nil
}

func (s *storeImpl) DeleteTree(key string) error {
	p, err := s.begin("rmtree", key)
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	s.view.ClearAtAndUnder(p)
	return nil
}

func (s *storeImpl) DeleteChildren(key string) error {
	p, err := s.begin("rmchildren", key)
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	s.view.ClearUnder(p)
	return nil
}

func (s *storeImpl) List(prefix string) ([]store.KV, error) {
	p, err := s.begin("list", prefix)
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var entries []tree.Entry[string, string]
	if s.ordered {
		entries = s.view.EntriesInOrder(tree.RelAtOrUnder, p, tree.NaturalOrder[string]())
	} else {
		entries = s.view.Entries(tree.RelAtOrUnder, p)
	}

	kvs := make([]store.KV, len(entries))
	for i, e := range entries {
		kvs[i] = store.KV{Key: s.formatKey(e.Path()), Value: e.Value()}
	}
	return kvs, nil
}

func (s *storeImpl) Children(prefix string) ([]string, error) {
	p, err := s.begin("children", prefix)
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var names []string
	for name, branch := range s.view.GetBranchViewsUnder(p) {
		if branch.HasItems() {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

func (s *storeImpl) Tree(prefix string) (string, error) {
	p, err := s.begin("tree", prefix)
	defer s.mu.Unlock()
	if err != nil {
		return "", err
	}
	if !p.IsRoot() && s.view.HasNoItemsAtOrUnder(p) {
		s.count("errors", store.RetCNotFound.String())
		return "", store.NewError(store.RetCNotFound, fmt.Sprintf("nothing stored at or below %q", prefix))
	}
	return s.view.GetBranchView(p).ToTreeString(), nil
}

func (s *storeImpl) Sub(prefix string) (store.IStore, error) {
	p, err := s.begin("sub", prefix)
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	abs := s.prefix.AppendedWithPath(p)
	log.Debugf("sub-store at %s", abs)
	return &storeImpl{
		mu:      s.mu,
		tree:    s.tree,
		view:    s.tree.GetBranchView(abs),
		prefix:  abs,
		sep:     s.sep,
		ordered: s.ordered,
		metrics: s.metrics,
	}, nil
}

func (s *storeImpl) Prefix() string {
	return s.formatKey(s.prefix)
}

func (s *storeImpl) GetInfo() (tree.TreeInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("ops", "info")
	return s.view.GetInfo(), nil
}

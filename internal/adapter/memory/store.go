// Package memory provides an in-process store with the same repository
// contracts as the PostgreSQL adapter. Transactions are optimistic: each one
// works on a private copy of the committed state and its writes are replayed
// against the latest committed state at commit time, where unique and version
// checks are enforced again.
package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// Option configures a Store.
type Option func(*Store)

// WithUniqueTypeValue toggles the (type, value) unique constraint on base
// data. It is on by default.
func WithUniqueTypeValue(enabled bool) Option {
	return func(s *Store) { s.uniqueTypeValue = enabled }
}

// Store is a goroutine-safe in-memory database.
type Store struct {
	mu    sync.RWMutex
	state *state

	uniqueTypeValue bool

	recordSeq  atomic.Int64
	versionSeq atomic.Int64
	logSeq     atomic.Int64
	dictSeq    atomic.Int64
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		state:           newState(),
		uniqueTypeValue: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping always succeeds; it lets the store back the readiness probe.
func (s *Store) Ping(context.Context) error {
	return nil
}

// op is one write. It is applied to the transaction's private state when
// issued and replayed against the committed state on commit.
type op func(st *state, s *Store) error

type tx struct {
	state *state
	ops   []op
}

type txCtxKey struct{}

func txFromCtx(ctx context.Context) (*tx, bool) {
	t, ok := ctx.Value(txCtxKey{}).(*tx)
	return t, ok
}

// RunInTx executes fn within an optimistic transaction. fn runs without
// holding the store lock; on success its writes are replayed atomically.
// A replay failure (unique or version check) discards every write and is
// returned as-is. Nested calls join the outer transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	s.mu.RLock()
	t := &tx{state: s.state.clone()}
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txCtxKey{}, t)); err != nil {
		return err
	}

	if len(t.ops) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	for _, o := range t.ops {
		if err := o(next, s); err != nil {
			return err
		}
	}
	s.state = next
	return nil
}

// view runs fn against the transaction state in ctx, or a read-locked view of
// the committed state.
func (s *Store) view(ctx context.Context, fn func(st *state) error) error {
	if t, ok := txFromCtx(ctx); ok {
		return fn(t.state)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

// write applies o to the transaction state in ctx and queues it for commit.
// Outside a transaction o is applied to the committed state directly.
func (s *Store) write(ctx context.Context, o op) error {
	if t, ok := txFromCtx(ctx); ok {
		if err := o(t.state, s); err != nil {
			return err
		}
		t.ops = append(t.ops, o)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return o(s.state, s)
}

// ---------------------------------------------------------------------------
// State
// ---------------------------------------------------------------------------

type state struct {
	records      map[int64]domain.BaseData
	versions     []domain.BaseDataVersion
	logs         []domain.BaseDataLog
	dictTypes    map[string]domain.DictType
	dictValues   map[domain.DictKey]domain.DictValue
	dictVersions []domain.DictValueVersion
}

func newState() *state {
	return &state{
		records:    make(map[int64]domain.BaseData),
		dictTypes:  make(map[string]domain.DictType),
		dictValues: make(map[domain.DictKey]domain.DictValue),
	}
}

// clone copies the state. Ledger slices are append-only, so the copies share
// backing arrays but are capped to force reallocation on append.
func (st *state) clone() *state {
	out := &state{
		records:      make(map[int64]domain.BaseData, len(st.records)),
		versions:     st.versions[:len(st.versions):len(st.versions)],
		logs:         st.logs[:len(st.logs):len(st.logs)],
		dictTypes:    make(map[string]domain.DictType, len(st.dictTypes)),
		dictValues:   make(map[domain.DictKey]domain.DictValue, len(st.dictValues)),
		dictVersions: st.dictVersions[:len(st.dictVersions):len(st.dictVersions)],
	}
	for k, v := range st.records {
		out.records[k] = cloneRecord(v)
	}
	for k, v := range st.dictTypes {
		out.dictTypes[k] = v
	}
	for k, v := range st.dictValues {
		out.dictValues[k] = cloneDictValue(v)
	}
	return out
}

func cloneRecord(r domain.BaseData) domain.BaseData {
	if r.DisabledAt != nil {
		t := *r.DisabledAt
		r.DisabledAt = &t
	}
	return r
}

func cloneDictValue(v domain.DictValue) domain.DictValue {
	if v.ExtraData != nil {
		extra := make(map[string]any, len(v.ExtraData))
		for k, val := range v.ExtraData {
			extra[k] = val
		}
		v.ExtraData = extra
	}
	if v.ColorTag != nil {
		c := *v.ColorTag
		v.ColorTag = &c
	}
	if v.Icon != nil {
		i := *v.Icon
		v.Icon = &i
	}
	return v
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

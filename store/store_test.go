package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/acotour/aco"
	"github.com/katalvlaran/acotour/store"
)

func sampleRun(t *testing.T, distance float64, at time.Time) store.Run {
	t.Helper()
	run := store.NewRun(
		aco.Params{Ants: 4, Elite: 2, Iterations: 3, Decay: 0.1, Alpha: 1, Beta: 2},
		42,
		[]string{"depot", "a", "b"},
		aco.Result{
			Tour:       []int{0, 2, 1, 0},
			Distance:   distance,
			History:    []float64{distance + 2, distance + 1, distance},
			Iterations: 3,
		},
	)
	run.CreatedAt = at
	run.System = store.SysInfo{Platform: "test", Cores: 2}
	return run
}

// StoreSuite runs the same contract against every backend.
type StoreSuite struct {
	suite.Suite
	newStore func(t *testing.T) store.Store
	s        store.Store
}

func (s *StoreSuite) SetupTest() {
	s.s = s.newStore(s.T())
	s.Require().NoError(s.s.Init(context.Background()))
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(store.CloseIfSupported(s.s))
}

func (s *StoreSuite) TestRoundTrip() {
	ctx := context.Background()
	run := sampleRun(s.T(), 10, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	s.Require().NoError(s.s.SaveRun(ctx, run))

	got, ok, err := s.s.GetRun(ctx, run.ID)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(run.ID, got.ID)
	s.Equal(run.Tour, got.Tour)
	s.Equal(run.History, got.History)
	s.Equal(run.Params, got.Params)
	s.Equal(run.System, got.System)
	s.True(run.CreatedAt.Equal(got.CreatedAt))
}

func (s *StoreSuite) TestMissing() {
	_, ok, err := s.s.GetRun(context.Background(), "nope")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StoreSuite) TestUpsertAndList() {
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	late := sampleRun(s.T(), 7, base.Add(time.Hour))
	early := sampleRun(s.T(), 9, base)
	s.Require().NoError(s.s.SaveRun(ctx, late))
	s.Require().NoError(s.s.SaveRun(ctx, early))

	late.Distance = 6
	s.Require().NoError(s.s.SaveRun(ctx, late))

	runs, err := s.s.ListRuns(ctx)
	s.Require().NoError(err)
	s.Require().Len(runs, 2)
	s.Equal(early.ID, runs[0].ID)
	s.Equal(late.ID, runs[1].ID)
	s.Equal(6.0, runs[1].Distance)
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(*testing.T) store.Store {
		return store.NewMemoryStore()
	}})
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(t *testing.T) store.Store {
		return store.NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))
	}})
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Init(ctx))

	run := sampleRun(t, 5, time.Now())
	require.NoError(t, s.SaveRun(ctx, run))
	run.Tour[1] = 99

	got, ok, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, got.Tour[1])
}

func TestUninitialized(t *testing.T) {
	ctx := context.Background()
	for _, s := range []store.Store{store.NewMemoryStore(), store.NewSQLiteStore("unused.db")} {
		require.Error(t, s.SaveRun(ctx, store.Run{}))
		_, err := s.ListRuns(ctx)
		require.Error(t, err)
	}
	require.Error(t, store.NewSQLiteStore("").Init(ctx))
}

func TestNewStore(t *testing.T) {
	s, err := store.NewStore("memory", "")
	require.NoError(t, err)
	require.IsType(t, &store.MemoryStore{}, s)

	s, err = store.NewStore("sqlite", filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	require.IsType(t, &store.SQLiteStore{}, s)

	_, err = store.NewStore("unknown", "")
	require.ErrorIs(t, err, store.ErrUnknownKind)
}

func TestPersistent(t *testing.T) {
	require.True(t, store.Persistent(store.KindSQLite))
	require.False(t, store.Persistent(store.KindMemory))
	require.False(t, store.Persistent(""))
	require.False(t, store.Persistent("postgres"))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")

	s, err := store.Open(ctx, store.KindSQLite, path)
	require.NoError(t, err)
	run := sampleRun(t, 12, time.Unix(1700000000, 0).UTC())
	require.NoError(t, s.SaveRun(ctx, run))
	require.NoError(t, store.CloseIfSupported(s))

	// A second handle on the same file sees the earlier run.
	s, err = store.Open(ctx, store.KindSQLite, path)
	require.NoError(t, err)
	defer func() { _ = store.CloseIfSupported(s) }()
	got, ok, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, run.Distance, got.Distance)

	_, err = store.Open(ctx, store.KindSQLite, "")
	require.Error(t, err)
	_, err = store.Open(ctx, "unknown", path)
	require.ErrorIs(t, err, store.ErrUnknownKind)
}

func TestDecodeRun_VersionMismatch(t *testing.T) {
	_, err := store.DecodeRun([]byte(`{"schema_version":99,"id":"x"}`))
	require.ErrorIs(t, err, store.ErrVersionMismatch)
}

func TestNewRunID(t *testing.T) {
	id := store.NewRunID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	require.NotEqual(t, id, store.NewRunID())
}

func TestCollectSysInfo(t *testing.T) {
	si := store.CollectSysInfo()
	require.GreaterOrEqual(t, si.Cores, 0)
}

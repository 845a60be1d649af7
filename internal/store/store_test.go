package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(primary, mirror, backup Backend) *DocumentStore {
	return NewDocumentStore(primary, mirror, backup, zap.NewNop(), nil)
}

func TestReadFallsBackToMirror(t *testing.T) {
	ctx := context.Background()

	primary := NewMemoryBackend()
	mirror := NewMemoryBackend()
	require.NoError(t, mirror.Write(ctx, domain.Document{
		"people": json.RawMessage(`[{"id":"p1"}]`),
	}))

	s := newTestStore(primary, mirror, nil)

	primary.FailReads = true
	doc := s.Read(ctx)
	require.Contains(t, doc, "people")
	assert.JSONEq(t, `[{"id":"p1"}]`, string(doc["people"]))
}

func TestReadNeverErrors(t *testing.T) {
	ctx := context.Background()

	primary := NewMemoryBackend()
	mirror := NewMemoryBackend()
	primary.FailReads = true
	mirror.FailReads = true

	s := newTestStore(primary, mirror, nil)

	doc := s.Read(ctx)
	require.NotNil(t, doc)
	assert.Empty(t, doc)
}

func TestWriteReportsPrimaryAndMirrorsBestEffort(t *testing.T) {
	ctx := context.Background()

	primary := NewMemoryBackend()
	mirror := NewMemoryBackend()
	s := newTestStore(primary, mirror, nil)

	doc := domain.Document{"teams": json.RawMessage(`[]`)}

	assert.True(t, s.Write(ctx, doc))

	// 主后端失败时返回false，但镜像仍被写入
	primary.FailWrites = true
	doc["teams"] = json.RawMessage(`[{"id":"t1"}]`)
	assert.False(t, s.Write(ctx, doc))

	mirrored, err := mirror.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"t1"}]`, string(mirrored["teams"]))
}

func TestCollectionEnsuresKeyOnFirstAccess(t *testing.T) {
	ctx := context.Background()

	primary := NewMemoryBackend()
	s := newTestStore(primary, nil, nil)

	raw := s.Collection(ctx, domain.CollectionAssets)
	assert.JSONEq(t, `[]`, string(raw))

	// ensure副作用：空集合已持久化
	doc, err := primary.Read(ctx)
	require.NoError(t, err)
	require.Contains(t, doc, domain.CollectionAssets)
	assert.JSONEq(t, `[]`, string(doc[domain.CollectionAssets]))
}

func TestSetCollectionsWritesSingleDocument(t *testing.T) {
	ctx := context.Background()

	primary := NewMemoryBackend()
	s := newTestStore(primary, nil, nil)

	ok := s.SetCollections(ctx, map[string]json.RawMessage{
		domain.CollectionTeams:  json.RawMessage(`[{"id":"t1"}]`),
		domain.CollectionPeople: json.RawMessage(`[{"id":"p1"}]`),
	})
	require.True(t, ok)

	doc, err := primary.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"t1"}]`, string(doc[domain.CollectionTeams]))
	assert.JSONEq(t, `[{"id":"p1"}]`, string(doc[domain.CollectionPeople]))
}

func TestSnapshotAndRestore(t *testing.T) {
	ctx := context.Background()

	primary := NewMemoryBackend()
	backup := NewMemoryBackend()
	s := newTestStore(primary, nil, backup)

	require.True(t, s.SetCollection(ctx, domain.CollectionTeams, json.RawMessage(`[{"id":"t1"}]`)))
	require.NoError(t, s.Snapshot(ctx))

	// 改写后从备份恢复
	require.True(t, s.SetCollection(ctx, domain.CollectionTeams, json.RawMessage(`[]`)))
	require.NoError(t, s.Restore(ctx))

	doc := s.Read(ctx)
	assert.JSONEq(t, `[{"id":"t1"}]`, string(doc[domain.CollectionTeams]))
}

func TestRestoreWithoutBackup(t *testing.T) {
	ctx := context.Background()

	t.Run("no backup slot", func(t *testing.T) {
		s := newTestStore(NewMemoryBackend(), nil, nil)
		assert.ErrorIs(t, s.Restore(ctx), ErrNoBackup)
	})

	t.Run("empty backup slot", func(t *testing.T) {
		s := newTestStore(NewMemoryBackend(), nil, NewMemoryBackend())
		assert.ErrorIs(t, s.Restore(ctx), ErrNoBackup)
	})
}

func TestClearSnapshotsBeforeWiping(t *testing.T) {
	ctx := context.Background()

	primary := NewMemoryBackend()
	backup := NewMemoryBackend()
	s := newTestStore(primary, nil, backup)

	require.True(t, s.SetCollection(ctx, domain.CollectionPeople, json.RawMessage(`[{"id":"p1"}]`)))
	require.NoError(t, s.Clear(ctx))

	assert.Empty(t, s.Read(ctx))

	// 清空前的文档可从备份槽恢复
	require.NoError(t, s.Restore(ctx))
	doc := s.Read(ctx)
	assert.JSONEq(t, `[{"id":"p1"}]`, string(doc[domain.CollectionPeople]))
}

func TestCrossProcessWritesClobber(t *testing.T) {
	ctx := context.Background()

	// 两个store共享同一个后端，模拟两个进程：互斥锁只在进程内生效，
	// 后写者整体覆盖先写者（已知的最后写入者赢限制）
	shared := NewMemoryBackend()
	a := newTestStore(shared, nil, nil)
	b := newTestStore(shared, nil, nil)

	// b基于过期读写回，a在其间写入的teams被整体覆盖丢失
	docB := b.Read(ctx)
	require.True(t, a.SetCollection(ctx, domain.CollectionTeams, json.RawMessage(`[{"id":"from-a"}]`)))

	docB[domain.CollectionPeople] = json.RawMessage(`[{"id":"from-b"}]`)
	require.True(t, b.Write(ctx, docB))

	doc := a.Read(ctx)
	assert.NotContains(t, doc, domain.CollectionTeams)
	assert.JSONEq(t, `[{"id":"from-b"}]`, string(doc[domain.CollectionPeople]))
}

func TestRecordsRoundTrip(t *testing.T) {
	ctx := context.Background()

	s := newTestStore(NewMemoryBackend(), nil, nil)

	records := []domain.TeamRecord{{ID: "t1", Name: "Infra", OrganizationID: "o1"}}
	require.True(t, PutRecords(ctx, s, domain.CollectionTeams, records))

	got := Records[domain.TeamRecord](ctx, s, domain.CollectionTeams)
	require.Len(t, got, 1)
	assert.Equal(t, "Infra", got[0].Name)
}

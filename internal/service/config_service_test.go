package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validImportPayload() map[string]json.RawMessage {
	payload := make(map[string]json.RawMessage)
	for _, name := range domain.Collections() {
		payload[name] = json.RawMessage(`[]`)
	}
	return payload
}

func TestExportEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	s := NewConfigService(newTestStore(), zap.NewNop())

	export := s.Export(ctx)
	assert.Equal(t, domain.ExportVersion, export.Version)
	assert.NotEmpty(t, export.ExportDate)
	assert.JSONEq(t, `[]`, string(export.Organizations))
	assert.JSONEq(t, `[]`, string(export.Licenses))
}

func TestImportValidation(t *testing.T) {
	ctx := context.Background()
	docStore := newTestStore()
	s := NewConfigService(docStore, zap.NewNop())
	orgs := NewOrganizationService(docStore, zap.NewNop())

	existing := orgs.Create(ctx, CreateOrganizationRequest{Name: "Acme"})

	t.Run("missing collection", func(t *testing.T) {
		payload := validImportPayload()
		delete(payload, domain.CollectionPeople)

		err := s.Import(ctx, payload)
		require.EqualError(t, err, "invalid format: people must be an array")
	})

	t.Run("non-array collection", func(t *testing.T) {
		payload := validImportPayload()
		payload[domain.CollectionAssets] = json.RawMessage(`{"id":"a1"}`)

		err := s.Import(ctx, payload)
		require.EqualError(t, err, "invalid format: assets must be an array")
	})

	// 校验失败时现有数据未被改动
	require.NotNil(t, orgs.GetByID(ctx, existing.ID))
}

func TestImportReplacesAndSnapshotsPriorData(t *testing.T) {
	ctx := context.Background()
	docStore := newTestStore()
	s := NewConfigService(docStore, zap.NewNop())
	orgs := NewOrganizationService(docStore, zap.NewNop())

	before := orgs.Create(ctx, CreateOrganizationRequest{Name: "Before"})

	payload := validImportPayload()
	payload[domain.CollectionOrganizations] = json.RawMessage(`[{"id":"o-new","name":"After"}]`)
	require.NoError(t, s.Import(ctx, payload))

	assert.Nil(t, orgs.GetByID(ctx, before.ID))
	require.NotNil(t, orgs.GetByID(ctx, "o-new"))

	// 导入前的数据被快照，可以整体回滚
	require.NoError(t, s.RestoreBackup(ctx))
	assert.NotNil(t, orgs.GetByID(ctx, before.ID))
	assert.Nil(t, orgs.GetByID(ctx, "o-new"))
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	docStore := newTestStore()
	s := NewConfigService(docStore, zap.NewNop())
	orgs := NewOrganizationService(docStore, zap.NewNop())
	licenses := NewLicenseService(docStore, zap.NewNop())

	org := orgs.Create(ctx, CreateOrganizationRequest{Name: "Acme"})
	licenses.Create(ctx, CreateLicenseRequest{Name: "IDE", ExpirationDate: "2099-01-01", OrganizationID: org.ID})

	export := s.Export(ctx)

	require.NoError(t, s.ClearAllData(ctx))
	assert.Empty(t, orgs.GetAll(ctx))

	payload := map[string]json.RawMessage{
		domain.CollectionOrganizations: export.Organizations,
		domain.CollectionTeams:         export.Teams,
		domain.CollectionPeople:        export.People,
		domain.CollectionAssets:        export.Assets,
		domain.CollectionLicenses:      export.Licenses,
		domain.CollectionInventory:     export.Inventory,
	}
	require.NoError(t, s.Import(ctx, payload))

	assert.NotNil(t, orgs.GetByID(ctx, org.ID))
	assert.Len(t, licenses.GetAll(ctx, org.ID), 1)
}

func TestClearThenRestore(t *testing.T) {
	ctx := context.Background()
	docStore := newTestStore()
	s := NewConfigService(docStore, zap.NewNop())
	orgs := NewOrganizationService(docStore, zap.NewNop())

	org := orgs.Create(ctx, CreateOrganizationRequest{Name: "Acme"})

	require.NoError(t, s.ClearAllData(ctx))
	assert.Empty(t, orgs.GetAll(ctx))

	require.NoError(t, s.RestoreBackup(ctx))
	assert.NotNil(t, orgs.GetByID(ctx, org.ID))
}

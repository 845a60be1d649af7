package service

import (
	"github.com/assetdesk/backend/internal/store"
	"go.uber.org/zap"
)

// newTestStore 创建内存后端的文档存储，带备份槽
func newTestStore() *store.DocumentStore {
	return store.NewDocumentStore(
		store.NewMemoryBackend(),
		nil,
		store.NewMemoryBackend(),
		zap.NewNop(),
		nil,
	)
}

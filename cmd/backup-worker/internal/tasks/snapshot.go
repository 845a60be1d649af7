package tasks

import (
	"context"

	"github.com/assetdesk/backend/internal/store"
	"go.uber.org/zap"
)

// SnapshotTask 定期快照任务
type SnapshotTask struct {
	docStore *store.DocumentStore
	logger   *zap.Logger
}

// NewSnapshotTask 创建定期快照任务
func NewSnapshotTask(docStore *store.DocumentStore, logger *zap.Logger) *SnapshotTask {
	return &SnapshotTask{
		docStore: docStore,
		logger:   logger,
	}
}

// Run 将当前文档快照到备份槽
func (t *SnapshotTask) Run(ctx context.Context) error {
	t.logger.Info("Running snapshot task")

	if err := t.docStore.Snapshot(ctx); err != nil {
		return err
	}

	t.logger.Info("Snapshot task completed")
	return nil
}

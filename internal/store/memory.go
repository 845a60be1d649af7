package store

import (
	"context"
	"sync"

	"github.com/assetdesk/backend/internal/domain"
)

// MemoryBackend 内存后端（测试与默认镜像层）
type MemoryBackend struct {
	mu  sync.RWMutex
	doc domain.Document

	// FailReads/FailWrites 使后端返回错误，用于测试降级路径
	FailReads  bool
	FailWrites bool
}

// NewMemoryBackend 创建内存后端
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{doc: domain.EmptyDocument()}
}

// Name 后端名称
func (b *MemoryBackend) Name() string {
	return "memory"
}

// Read 读取全量文档
func (b *MemoryBackend) Read(ctx context.Context) (domain.Document, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.FailReads {
		return nil, errBackendUnavailable
	}
	return b.doc.Clone(), nil
}

// Write 写入全量文档
func (b *MemoryBackend) Write(ctx context.Context, doc domain.Document) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.FailWrites {
		return errBackendUnavailable
	}
	b.doc = doc.Clone()
	return nil
}

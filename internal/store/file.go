package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/assetdesk/backend/internal/domain"
)

// FileBackend 单文件JSON后端
//
// 全量文档序列化到一个JSON文件；文件缺失或内容损坏按空文档处理
type FileBackend struct {
	path string
}

// NewFileBackend 创建文件后端
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Name 后端名称
func (b *FileBackend) Name() string {
	return "file"
}

// Read 读取全量文档
func (b *FileBackend) Read(ctx context.Context) (domain.Document, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.EmptyDocument(), nil
		}
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		// 损坏的文档等同于无文档
		return domain.EmptyDocument(), nil
	}
	if doc == nil {
		return domain.EmptyDocument(), nil
	}
	return doc, nil
}

// Write 写入全量文档
func (b *FileBackend) Write(ctx context.Context, doc domain.Document) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	// 先写临时文件再改名，避免写一半的文件被当作损坏文档读到
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("failed to replace document file: %w", err)
	}
	return nil
}

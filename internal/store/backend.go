package store

import (
	"context"
	"errors"

	"github.com/assetdesk/backend/internal/domain"
)

// Backend 文档后端接口
//
// Read/Write以全量文档为单位。后端自身缺数据（文件不存在、键不存在、
// 内容无法解析）返回空文档而非错误；错误仅表示后端本身不可达，
// 由DocumentStore降级到镜像层处理
type Backend interface {
	// Read 读取全量文档
	Read(ctx context.Context) (domain.Document, error)
	// Write 写入全量文档（整体替换）
	Write(ctx context.Context, doc domain.Document) error
	// Name 后端名称（用于日志和指标）
	Name() string
}

// ErrNoBackup 备份槽为空
var ErrNoBackup = errors.New("store: no backup snapshot available")

var errBackendUnavailable = errors.New("store: backend unavailable")

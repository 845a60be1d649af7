package store

import (
	"fmt"

	"github.com/assetdesk/backend/internal/config"
	"github.com/assetdesk/backend/internal/metrics"
	"go.uber.org/zap"
)

// 默认Redis键
const (
	redisDocumentKey = "assetdesk:database"
	redisBackupKey   = "assetdesk:database:backup"
	redisMirrorKey   = "assetdesk:database:mirror"
)

// NewDocumentStoreFromConfig 根据配置装配文档存储（Fx兼容）
func NewDocumentStoreFromConfig(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*DocumentStore, error) {
	primary, backup, err := buildPrimary(cfg)
	if err != nil {
		return nil, err
	}

	mirror, err := buildMirror(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("document store configured",
		zap.String("backend", cfg.Store.Backend),
		zap.String("mirror", cfg.Store.Mirror),
	)

	return NewDocumentStore(primary, mirror, backup, logger, m), nil
}

// buildPrimary 创建主后端及其备份槽
func buildPrimary(cfg *config.Config) (Backend, Backend, error) {
	switch cfg.Store.Backend {
	case "file":
		return NewFileBackend(cfg.Store.FilePath), NewFileBackend(cfg.Store.BackupFilePath), nil

	case "postgres":
		db, err := OpenPostgres(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresBackend(db, "primary"), NewPostgresBackend(db, "backup"), nil

	case "redis":
		client, err := NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisBackend(client, redisDocumentKey), NewRedisBackend(client, redisBackupKey), nil

	case "remote":
		// 远端不提供备份槽，备份落在本地文件（与本地镜像同级）
		remote := NewRemoteBackend(cfg.Store.RemoteBaseURL, cfg.Store.RemoteTimeout)
		return remote, NewFileBackend(cfg.Store.BackupFilePath), nil

	case "memory":
		return NewMemoryBackend(), NewMemoryBackend(), nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}
}

// buildMirror 创建本地镜像后端
func buildMirror(cfg *config.Config) (Backend, error) {
	switch cfg.Store.Mirror {
	case "none", "":
		return nil, nil

	case "file":
		path := cfg.Store.MirrorFilePath
		if cfg.Store.Backend == "file" && path == cfg.Store.FilePath {
			// 主后端已经是同一个文件，镜像没有意义
			return nil, nil
		}
		return NewFileBackend(path), nil

	case "redis":
		client, err := NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisBackend(client, redisMirrorKey), nil

	case "memory":
		return NewMemoryBackend(), nil

	default:
		return nil, fmt.Errorf("unknown store mirror: %q", cfg.Store.Mirror)
	}
}

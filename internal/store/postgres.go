package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/assetdesk/backend/internal/config"
	"github.com/assetdesk/backend/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// DocumentRow 文档表行，每个槽位一行（primary/backup）
type DocumentRow struct {
	Slot      string         `gorm:"type:varchar(32);primaryKey"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName 指定表名
func (DocumentRow) TableName() string {
	return "documents"
}

// OpenPostgres 创建数据库连接并迁移文档表
func OpenPostgres(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// 文档表结构极简，AutoMigrate足够
	if err := db.AutoMigrate(&DocumentRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}

	return db, nil
}

// PostgresBackend PostgreSQL后端
//
// 全量文档作为JSON列存储在documents表的一个槽位行中
type PostgresBackend struct {
	db   *gorm.DB
	slot string
}

// NewPostgresBackend 创建PostgreSQL后端
func NewPostgresBackend(db *gorm.DB, slot string) *PostgresBackend {
	return &PostgresBackend{db: db, slot: slot}
}

// Name 后端名称
func (b *PostgresBackend) Name() string {
	return "postgres"
}

// Read 读取全量文档
func (b *PostgresBackend) Read(ctx context.Context) (domain.Document, error) {
	var row DocumentRow
	err := b.db.WithContext(ctx).First(&row, "slot = ?", b.slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EmptyDocument(), nil
		}
		return nil, fmt.Errorf("failed to read document row: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(row.Data, &doc); err != nil {
		// 损坏的文档等同于无文档
		return domain.EmptyDocument(), nil
	}
	if doc == nil {
		return domain.EmptyDocument(), nil
	}
	return doc, nil
}

// Write 写入全量文档
func (b *PostgresBackend) Write(ctx context.Context, doc domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	row := DocumentRow{
		Slot:      b.slot,
		Data:      datatypes.JSON(data),
		UpdatedAt: time.Now().UTC(),
	}

	err = b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write document row: %w", err)
	}
	return nil
}

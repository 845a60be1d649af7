package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/assetdesk/backend/internal/domain"
)

// RemoteBackend 远端HTTP后端
//
// 消费持久化端点：GET /api/database 返回全量文档，POST /api/database
// 整体替换。网络错误和非2xx状态都作为错误返回，由上层降级到镜像
type RemoteBackend struct {
	baseURL string
	client  *http.Client
}

// NewRemoteBackend 创建远端后端
func NewRemoteBackend(baseURL string, timeout time.Duration) *RemoteBackend {
	return &RemoteBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Name 后端名称
func (b *RemoteBackend) Name() string {
	return "remote"
}

// Read 读取全量文档
func (b *RemoteBackend) Read(ctx context.Context) (domain.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/api/database", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build database request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("database request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("database request failed: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read database response: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		// 损坏的文档等同于无文档
		return domain.EmptyDocument(), nil
	}
	if doc == nil {
		return domain.EmptyDocument(), nil
	}
	return doc, nil
}

// Write 写入全量文档
func (b *RemoteBackend) Write(ctx context.Context, doc domain.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/api/database", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build database request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("database request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("database request failed: %s", resp.Status)
	}
	return nil
}

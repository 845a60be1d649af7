package domain

import (
	"encoding/json"
)

// 集合名称
const (
	CollectionOrganizations = "organizations"
	CollectionTeams         = "teams"
	CollectionPeople        = "people"
	CollectionAssets        = "assets"
	CollectionLicenses      = "licenses"
	CollectionInventory     = "inventory"
)

// Collections 返回全部集合名称（按导出顺序）
func Collections() []string {
	return []string{
		CollectionOrganizations,
		CollectionTeams,
		CollectionPeople,
		CollectionAssets,
		CollectionLicenses,
		CollectionInventory,
	}
}

// Document 全量JSON文档，持久化的读写单元，按集合名索引
type Document map[string]json.RawMessage

// EmptyDocument 创建空文档
func EmptyDocument() Document {
	return Document{}
}

// Clone 深拷贝文档
func (d Document) Clone() Document {
	clone := make(Document, len(d))
	for name, raw := range d {
		buf := make(json.RawMessage, len(raw))
		copy(buf, raw)
		clone[name] = buf
	}
	return clone
}

// DecodeRecords 解码集合记录
//
// 缺失或无法解析的集合按空集合处理，不向调用方抛出错误
func DecodeRecords[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil
	}
	return records
}

// EncodeRecords 编码集合记录
func EncodeRecords[T any](records []T) json.RawMessage {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return json.RawMessage("[]")
	}
	return data
}

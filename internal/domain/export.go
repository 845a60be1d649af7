package domain

import (
	"encoding/json"
)

// 导出文件格式版本
const ExportVersion = "1.0.0"

// DatabaseExport 全量导出/导入文件格式
//
// 各集合保持存储形状原样透传，导入时逐键校验必须为JSON数组
type DatabaseExport struct {
	Organizations json.RawMessage `json:"organizations"`
	Teams         json.RawMessage `json:"teams"`
	People        json.RawMessage `json:"people"`
	Assets        json.RawMessage `json:"assets"`
	Licenses      json.RawMessage `json:"licenses"`
	Inventory     json.RawMessage `json:"inventory"`
	ExportDate    string          `json:"exportDate"`
	Version       string          `json:"version"`
}

// DashboardStats 仪表盘统计（派生视图，读取时计算）
type DashboardStats struct {
	TotalPeople      int `json:"totalPeople"`
	ActivePeople     int `json:"activePeople"`
	TotalLicenses    int `json:"totalLicenses"`
	ExpiringLicenses int `json:"expiringLicenses"`
	TotalAssets      int `json:"totalAssets"`
	AvailableAssets  int `json:"availableAssets"`
	TotalTeams       int `json:"totalTeams"`
}

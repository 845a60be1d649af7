package domain

import (
	"math"
	"time"
)

// LicenseStatus 许可证状态（派生字段，读取时根据过期日期计算）
type LicenseStatus string

const (
	LicenseStatusActive       LicenseStatus = "active"
	LicenseStatusExpiringSoon LicenseStatus = "expiring_soon"
	LicenseStatusExpired      LicenseStatus = "expired"
)

// 过期预警窗口：剩余天数在该窗口内的许可证标记为expiring_soon
const LicenseExpiryWarningDays = 30

// LicenseRecord 许可证存储记录
//
// used_quantity 冗余存储但不作为权威值，读取时始终以len(assigned_to)重新计算
type LicenseRecord struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	ExpirationDate  string            `json:"expiration_date"`
	TotalQuantity   int               `json:"total_quantity"`
	UsedQuantity    int               `json:"used_quantity"`
	Cost            float64           `json:"cost,omitempty"`
	Vendor          string            `json:"vendor,omitempty"`
	AssignedTo      []string          `json:"assigned_to"`
	LicenseCode     string            `json:"license_code,omitempty"`
	IndividualCodes map[string]string `json:"individual_codes,omitempty"`
	OrganizationID  string            `json:"organization_id"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

// UsedCount 当前占用数，始终等于已分配人员数
func (r *LicenseRecord) UsedCount() int {
	return len(r.AssignedTo)
}

// IsAssignedTo 判断是否已分配给指定人员
func (r *LicenseRecord) IsAssignedTo(personID string) bool {
	for _, id := range r.AssignedTo {
		if id == personID {
			return true
		}
	}
	return false
}

// License 许可证视图
type License struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	ExpirationDate  string            `json:"expirationDate"`
	TotalQuantity   int               `json:"totalQuantity"`
	UsedQuantity    int               `json:"usedQuantity"`
	Cost            float64           `json:"cost,omitempty"`
	Vendor          string            `json:"vendor,omitempty"`
	Status          LicenseStatus     `json:"status"`
	AssignedTo      []string          `json:"assignedTo"`
	LicenseCode     string            `json:"licenseCode,omitempty"`
	IndividualCodes map[string]string `json:"individualCodes"`
	OrganizationID  string            `json:"organizationId"`
}

// View 转换为视图，派生字段以now为基准计算
func (r *LicenseRecord) View(now time.Time) License {
	assignedTo := r.AssignedTo
	if assignedTo == nil {
		assignedTo = []string{}
	}
	codes := r.IndividualCodes
	if codes == nil {
		codes = map[string]string{}
	}
	return License{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		ExpirationDate:  r.ExpirationDate,
		TotalQuantity:   r.TotalQuantity,
		UsedQuantity:    r.UsedCount(),
		Cost:            r.Cost,
		Vendor:          r.Vendor,
		Status:          LicenseStatusAt(r.ExpirationDate, now),
		AssignedTo:      assignedTo,
		LicenseCode:     r.LicenseCode,
		IndividualCodes: codes,
		OrganizationID:  r.OrganizationID,
	}
}

// LicenseStatusAt 计算许可证在now时刻的状态
//
// 剩余天数<0为expired，0~30为expiring_soon，其余为active；
// 无法解析的过期日期视为active
func LicenseStatusAt(expirationDate string, now time.Time) LicenseStatus {
	expiration, err := parseExpiration(expirationDate)
	if err != nil {
		return LicenseStatusActive
	}

	daysRemaining := int(math.Ceil(expiration.Sub(now).Hours() / 24))

	if daysRemaining < 0 {
		return LicenseStatusExpired
	}
	if daysRemaining <= LicenseExpiryWarningDays {
		return LicenseStatusExpiringSoon
	}
	return LicenseStatusActive
}

// parseExpiration 解析过期日期，兼容RFC3339和纯日期两种格式
func parseExpiration(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

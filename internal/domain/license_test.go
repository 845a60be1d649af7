package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLicenseStatusAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		expirationDate string
		want           LicenseStatus
	}{
		{"expired yesterday", "2025-05-31", LicenseStatusExpired},
		{"expired long ago", "2024-01-01", LicenseStatusExpired},
		{"expires today", "2025-06-01", LicenseStatusExpiringSoon},
		{"expires at warning boundary", "2025-07-01", LicenseStatusExpiringSoon},
		{"expires past warning boundary", "2025-07-02", LicenseStatusActive},
		{"far future", "2026-06-01", LicenseStatusActive},
		{"rfc3339 format", "2026-06-01T00:00:00Z", LicenseStatusActive},
		{"unparseable date", "not-a-date", LicenseStatusActive},
		{"empty date", "", LicenseStatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LicenseStatusAt(tt.expirationDate, now))
		})
	}
}

func TestLicenseRecordUsedCount(t *testing.T) {
	r := LicenseRecord{
		// 冗余存储的used_quantity不作为权威值
		UsedQuantity: 99,
		AssignedTo:   []string{"p1", "p2"},
	}

	assert.Equal(t, 2, r.UsedCount())
	assert.True(t, r.IsAssignedTo("p1"))
	assert.False(t, r.IsAssignedTo("p3"))

	view := r.View(time.Now().UTC())
	assert.Equal(t, 2, view.UsedQuantity)
}

func TestLicenseViewNormalizesNilFields(t *testing.T) {
	r := LicenseRecord{ID: "l1"}

	view := r.View(time.Now().UTC())
	assert.NotNil(t, view.AssignedTo)
	assert.Empty(t, view.AssignedTo)
	assert.NotNil(t, view.IndividualCodes)
}

func TestDecodeRecordsMalformed(t *testing.T) {
	assert.Nil(t, DecodeRecords[LicenseRecord](nil))
	assert.Nil(t, DecodeRecords[LicenseRecord]([]byte(`{"not":"an array"}`)))
	assert.Nil(t, DecodeRecords[LicenseRecord]([]byte(`garbage`)))
}

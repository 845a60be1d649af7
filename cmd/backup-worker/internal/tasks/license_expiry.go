package tasks

import (
	"context"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/assetdesk/backend/internal/notifier"
	"github.com/assetdesk/backend/internal/service"
	"go.uber.org/zap"
)

// LicenseExpiryTask 许可证到期扫描任务
type LicenseExpiryTask struct {
	licenses *service.LicenseService
	notifier *notifier.EmailNotifier
	logger   *zap.Logger
}

// NewLicenseExpiryTask 创建许可证到期扫描任务
func NewLicenseExpiryTask(
	licenses *service.LicenseService,
	emailNotifier *notifier.EmailNotifier,
	logger *zap.Logger,
) *LicenseExpiryTask {
	return &LicenseExpiryTask{
		licenses: licenses,
		notifier: emailNotifier,
		logger:   logger,
	}
}

// Run 扫描全部许可证并按状态汇报即将到期与已到期的条目
func (t *LicenseExpiryTask) Run(ctx context.Context) error {
	t.logger.Info("Running license expiry scan")

	all := t.licenses.ListAll(ctx)

	var expiring, expired []domain.License
	for _, license := range all {
		switch license.Status {
		case domain.LicenseStatusExpiringSoon:
			expiring = append(expiring, license)
		case domain.LicenseStatusExpired:
			expired = append(expired, license)
		}
	}

	t.logger.Info("License expiry scan completed",
		zap.Int("total", len(all)),
		zap.Int("expiring_soon", len(expiring)),
		zap.Int("expired", len(expired)),
	)

	if len(expiring) == 0 && len(expired) == 0 {
		return nil
	}

	if !t.notifier.Enabled() {
		t.logger.Info("Email notifications disabled, skipping license report")
		return nil
	}

	return t.notifier.SendLicenseReport(expiring, expired)
}

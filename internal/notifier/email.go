package notifier

import (
	"fmt"
	"strings"

	"github.com/assetdesk/backend/internal/config"
	"github.com/assetdesk/backend/internal/domain"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// EmailNotifier 过期许可证报告邮件通知器
type EmailNotifier struct {
	cfg    *config.EmailConfig
	logger *zap.Logger
}

// NewEmailNotifier 创建邮件通知器（Fx兼容）
func NewEmailNotifier(cfg *config.Config, logger *zap.Logger) *EmailNotifier {
	return &EmailNotifier{cfg: &cfg.Email, logger: logger}
}

// Enabled 是否已配置邮件发送
func (n *EmailNotifier) Enabled() bool {
	return n.cfg.Enabled && n.cfg.ReportTo != ""
}

// SendLicenseReport 发送许可证到期报告
func (n *EmailNotifier) SendLicenseReport(expiring, expired []domain.License) error {
	if !n.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", n.cfg.FromAddress, n.cfg.FromName)
	msg.SetHeader("To", n.cfg.ReportTo)
	msg.SetHeader("Subject", fmt.Sprintf("License report: %d expiring soon, %d expired", len(expiring), len(expired)))
	msg.SetBody("text/plain", buildReportBody(expiring, expired))

	dialer := gomail.NewDialer(n.cfg.SMTPHost, n.cfg.SMTPPort, n.cfg.Username, n.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send license report: %w", err)
	}

	n.logger.Info("license report sent",
		zap.String("to", n.cfg.ReportTo),
		zap.Int("expiring", len(expiring)),
		zap.Int("expired", len(expired)),
	)
	return nil
}

// buildReportBody 构建报告正文
func buildReportBody(expiring, expired []domain.License) string {
	var b strings.Builder

	b.WriteString("Licenses expiring within the warning window:\n")
	if len(expiring) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, lic := range expiring {
		fmt.Fprintf(&b, "  - %s (vendor: %s, expires: %s, seats used: %d/%d)\n",
			lic.Name, lic.Vendor, lic.ExpirationDate, lic.UsedQuantity, lic.TotalQuantity)
	}

	b.WriteString("\nExpired licenses:\n")
	if len(expired) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, lic := range expired {
		fmt.Fprintf(&b, "  - %s (vendor: %s, expired: %s)\n",
			lic.Name, lic.Vendor, lic.ExpirationDate)
	}

	return b.String()
}

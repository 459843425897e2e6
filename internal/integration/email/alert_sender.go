// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
)

// ResendAlertSender implements adapter.BudgetAlertSender using Resend.
type ResendAlertSender struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendAlertSender creates a new Resend-backed alert sender.
func NewResendAlertSender(apiKey, fromName, fromEmail string) *ResendAlertSender {
	return &ResendAlertSender{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendBudgetExceeded notifies a user that a budget ceiling was crossed.
func (s *ResendAlertSender) SendBudgetExceeded(ctx context.Context, toEmail, toName string, budget *entity.BudgetLimit) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	overspend := budget.CurrentSpent.Sub(budget.MonthlyLimit)

	subject := fmt.Sprintf("Budget alert: %s exceeded for %02d/%d", budget.Category, budget.Month, budget.Year)
	html := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Your <strong>%s</strong> budget for %02d/%d has been exceeded.</p>
<ul>
  <li>Monthly limit: %s</li>
  <li>Spent so far: %s</li>
  <li>Over by: %s</li>
</ul>
<p>You can adjust the limit or review your entries in the app.</p>`,
		toName, budget.Category, budget.Month, budget.Year,
		budget.MonthlyLimit.StringFixed(2), budget.CurrentSpent.StringFixed(2), overspend.StringFixed(2),
	)
	text := fmt.Sprintf(
		"Hi %s, your %s budget for %02d/%d has been exceeded. Limit: %s, spent: %s, over by: %s.",
		toName, budget.Category, budget.Month, budget.Year,
		budget.MonthlyLimit.StringFixed(2), budget.CurrentSpent.StringFixed(2), overspend.StringFixed(2),
	)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
		Text:    text,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send budget alert: %w", err)
	}
	return nil
}

var _ adapter.BudgetAlertSender = (*ResendAlertSender)(nil)

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/smartspend/backend/internal/domain/entity"
)

// BudgetAlertSender notifies a user that a budget ceiling has been
// crossed. Implementations deliver best-effort; the pipeline does not
// wait on or fail with the alert.
type BudgetAlertSender interface {
	SendBudgetExceeded(ctx context.Context, toEmail, toName string, budget *entity.BudgetLimit) error
}

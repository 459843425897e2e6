package entry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

type fakeEntryRepo struct {
	mu        sync.Mutex
	entries   map[uuid.UUID]*entity.Entry
	createErr error
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[uuid.UUID]*entity.Entry)}
}

func (r *fakeEntryRepo) Create(ctx context.Context, entry *entity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	copied := *entry
	r.entries[entry.ID] = &copied
	return nil
}

func (r *fakeEntryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, domainerror.ErrEntryNotFound
	}
	copied := *entry
	return &copied, nil
}

func (r *fakeEntryRepo) FindByUser(ctx context.Context, filter adapter.EntryFilter) ([]*entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Entry
	for _, e := range r.entries {
		if e.UserID == filter.UserID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Entry, error) {
	return r.FindByUser(ctx, adapter.EntryFilter{UserID: userID})
}

func (r *fakeEntryRepo) Update(ctx context.Context, entry *entity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.ID]; !ok {
		return domainerror.ErrEntryNotFound
	}
	copied := *entry
	r.entries[entry.ID] = &copied
	return nil
}

func (r *fakeEntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return domainerror.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeEntryRepo) GetTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (*adapter.EntryTotals, error) {
	return &adapter.EntryTotals{Income: decimal.Zero, Expense: decimal.Zero}, nil
}

func (r *fakeEntryRepo) GetSpendingByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]adapter.CategorySpend, error) {
	return nil, nil
}

func (r *fakeEntryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// fakeBudgetRepo mimics the real repository's atomic, idempotent apply:
// one application per entry, increments under a lock.
type fakeBudgetRepo struct {
	mu           sync.Mutex
	budgets      map[uuid.UUID]*entity.BudgetLimit
	applications map[uuid.UUID]uuid.UUID
	applyErrs    int
	applyCalls   int
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{
		budgets:      make(map[uuid.UUID]*entity.BudgetLimit),
		applications: make(map[uuid.UUID]uuid.UUID),
	}
}

func (r *fakeBudgetRepo) add(budget *entity.BudgetLimit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *budget
	r.budgets[budget.ID] = &copied
}

func (r *fakeBudgetRepo) Create(ctx context.Context, budget *entity.BudgetLimit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.budgets {
		if b.UserID == budget.UserID && b.Category == budget.Category && b.Month == budget.Month && b.Year == budget.Year {
			return domainerror.ErrBudgetAlreadyExists
		}
	}
	copied := *budget
	r.budgets[budget.ID] = &copied
	return nil
}

func (r *fakeBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetLimit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	budget, ok := r.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	copied := *budget
	return &copied, nil
}

func (r *fakeBudgetRepo) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*entity.BudgetLimit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.BudgetLimit
	for _, b := range r.budgets {
		if b.UserID == userID && b.Month == month && b.Year == year {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) FindByUserCategoryPeriod(ctx context.Context, userID uuid.UUID, category string, month, year int) (*entity.BudgetLimit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.budgets {
		if b.UserID == userID && b.Category == category && b.Month == month && b.Year == year {
			copied := *b
			return &copied, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (r *fakeBudgetRepo) Update(ctx context.Context, budget *entity.BudgetLimit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.budgets[budget.ID]
	if !ok {
		return domainerror.ErrBudgetNotFound
	}
	existing.MonthlyLimit = budget.MonthlyLimit
	return nil
}

func (r *fakeBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.budgets[id]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	delete(r.budgets, id)
	return nil
}

func (r *fakeBudgetRepo) ApplyEntrySpend(ctx context.Context, budgetID, entryID uuid.UUID, amount decimal.Decimal) (*entity.BudgetLimit, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applyCalls++
	if r.applyErrs > 0 {
		r.applyErrs--
		return nil, false, errors.New("simulated apply contention")
	}

	budget, ok := r.budgets[budgetID]
	if !ok {
		return nil, false, domainerror.ErrBudgetNotFound
	}
	if _, done := r.applications[entryID]; done {
		copied := *budget
		return &copied, false, nil
	}
	budget.CurrentSpent = budget.CurrentSpent.Add(amount)
	r.applications[entryID] = budgetID
	copied := *budget
	return &copied, true, nil
}

func (r *fakeBudgetRepo) spent(budgetID uuid.UUID) decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.budgets[budgetID].CurrentSpent
}

type fakeUserRepo struct {
	user *entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, domainerror.ErrUserNotFound
	}
	return r.user, nil
}
func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.user == nil || r.user.Email != email {
		return nil, domainerror.ErrUserNotFound
	}
	return r.user, nil
}
func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.user != nil && r.user.Email == email, nil
}

type fakeCategorizer struct {
	fn func(description string) (string, error)
}

func (c *fakeCategorizer) Categorize(ctx context.Context, description string) (string, error) {
	return c.fn(description)
}

type fakeAlertSender struct {
	alerts chan *entity.BudgetLimit
}

func newFakeAlertSender() *fakeAlertSender {
	return &fakeAlertSender{alerts: make(chan *entity.BudgetLimit, 8)}
}

func (s *fakeAlertSender) SendBudgetExceeded(ctx context.Context, toEmail, toName string, budget *entity.BudgetLimit) error {
	s.alerts <- budget
	return nil
}

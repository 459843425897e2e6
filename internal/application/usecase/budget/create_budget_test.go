package budget

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

type memoryBudgetRepo struct {
	mu      sync.Mutex
	budgets []*entity.BudgetLimit
}

func (r *memoryBudgetRepo) Create(ctx context.Context, budget *entity.BudgetLimit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.budgets {
		if b.UserID == budget.UserID && b.Category == budget.Category && b.Month == budget.Month && b.Year == budget.Year {
			return domainerror.ErrBudgetAlreadyExists
		}
	}
	copied := *budget
	r.budgets = append(r.budgets, &copied)
	return nil
}

func (r *memoryBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetLimit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.budgets {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (r *memoryBudgetRepo) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*entity.BudgetLimit, error) {
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

func (r *memoryBudgetRepo) FindByUserCategoryPeriod(ctx context.Context, userID uuid.UUID, category string, month, year int) (*entity.BudgetLimit, error) {
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

func (r *memoryBudgetRepo) Update(ctx context.Context, budget *entity.BudgetLimit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.budgets {
		if b.ID == budget.ID {
			b.MonthlyLimit = budget.MonthlyLimit
			return nil
		}
	}
	return domainerror.ErrBudgetNotFound
}

func (r *memoryBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.budgets {
		if b.ID == id {
			r.budgets = append(r.budgets[:i], r.budgets[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrBudgetNotFound
}

func (r *memoryBudgetRepo) ApplyEntrySpend(ctx context.Context, budgetID, entryID uuid.UUID, amount decimal.Decimal) (*entity.BudgetLimit, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.budgets {
		if b.ID == budgetID {
			b.CurrentSpent = b.CurrentSpent.Add(amount)
			copied := *b
			return &copied, true, nil
		}
	}
	return nil, false, domainerror.ErrBudgetNotFound
}

func TestCreateBudget(t *testing.T) {
	repo := &memoryBudgetRepo{}
	uc := NewCreateBudgetUseCase(repo)
	userID := uuid.New()

	output, err := uc.Execute(context.Background(), CreateBudgetInput{
		UserID:       userID,
		Category:     "Groceries",
		MonthlyLimit: decimal.NewFromInt(500),
		Month:        3,
		Year:         2026,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !output.Budget.CurrentSpent.IsZero() {
		t.Errorf("CurrentSpent = %s, want 0", output.Budget.CurrentSpent)
	}
}

func TestCreateBudgetDuplicateLeavesOriginalUnmodified(t *testing.T) {
	repo := &memoryBudgetRepo{}
	uc := NewCreateBudgetUseCase(repo)
	userID := uuid.New()

	first, err := uc.Execute(context.Background(), CreateBudgetInput{
		UserID:       userID,
		Category:     "Groceries",
		MonthlyLimit: decimal.NewFromInt(500),
		Month:        3,
		Year:         2026,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	_, err = uc.Execute(context.Background(), CreateBudgetInput{
		UserID:       userID,
		Category:     "Groceries",
		MonthlyLimit: decimal.NewFromInt(900),
		Month:        3,
		Year:         2026,
	})
	if !errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
		t.Fatalf("duplicate Execute() error = %v, want ErrBudgetAlreadyExists", err)
	}

	stored, err := repo.FindByID(context.Background(), first.Budget.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !stored.MonthlyLimit.Equal(decimal.NewFromInt(500)) {
		t.Errorf("MonthlyLimit = %s, want 500 unchanged", stored.MonthlyLimit)
	}
}

func TestCreateBudgetDifferentPeriodsCoexist(t *testing.T) {
	repo := &memoryBudgetRepo{}
	uc := NewCreateBudgetUseCase(repo)
	userID := uuid.New()

	months := []int{3, 4}
	for _, month := range months {
		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:       userID,
			Category:     "Groceries",
			MonthlyLimit: decimal.NewFromInt(500),
			Month:        month,
			Year:         2026,
		})
		if err != nil {
			t.Fatalf("Execute(month %d) error = %v", month, err)
		}
	}
}

func TestCreateBudgetValidation(t *testing.T) {
	uc := NewCreateBudgetUseCase(&memoryBudgetRepo{})
	userID := uuid.New()

	tests := []struct {
		name  string
		input CreateBudgetInput
		want  error
	}{
		{
			name:  "zero limit",
			input: CreateBudgetInput{UserID: userID, Category: "Groceries", MonthlyLimit: decimal.Zero, Month: 3, Year: 2026},
			want:  domainerror.ErrInvalidBudgetLimit,
		},
		{
			name:  "negative limit",
			input: CreateBudgetInput{UserID: userID, Category: "Groceries", MonthlyLimit: decimal.NewFromInt(-10), Month: 3, Year: 2026},
			want:  domainerror.ErrInvalidBudgetLimit,
		},
		{
			name:  "month out of range",
			input: CreateBudgetInput{UserID: userID, Category: "Groceries", MonthlyLimit: decimal.NewFromInt(100), Month: 13, Year: 2026},
			want:  domainerror.ErrInvalidBudgetPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Execute(context.Background(), tt.input); !errors.Is(err, tt.want) {
				t.Errorf("Execute() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBudgetMath(t *testing.T) {
	budget := entity.NewBudgetLimit(uuid.New(), "Groceries", decimal.NewFromInt(200), 3, 2026)
	budget.CurrentSpent = decimal.NewFromInt(150)

	if got := budget.Remaining(); !got.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Remaining() = %s, want 50", got)
	}
	if got := budget.PercentageUsed(); got != 75 {
		t.Errorf("PercentageUsed() = %v, want 75", got)
	}
	if budget.IsExceeded() {
		t.Error("IsExceeded() = true below the ceiling")
	}

	budget.CurrentSpent = decimal.NewFromInt(250)
	if got := budget.Remaining(); !got.Equal(decimal.NewFromInt(-50)) {
		t.Errorf("Remaining() = %s, want -50", got)
	}
	if !budget.IsExceeded() {
		t.Error("IsExceeded() = false above the ceiling")
	}

	zeroLimit := entity.NewBudgetLimit(uuid.New(), "Misc", decimal.Zero, 3, 2026)
	if got := zeroLimit.PercentageUsed(); got != 0 {
		t.Errorf("PercentageUsed() with zero limit = %v, want 0", got)
	}
}

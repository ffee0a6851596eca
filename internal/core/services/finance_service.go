package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils/aggregation"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/SscSPs/finance_tracker/internal/utils/pagination"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
	"github.com/google/uuid"
)

// DefaultStorageKey is the key the snapshot is stored under.
const DefaultStorageKey = "finance_tracker_data"

// financeService owns the single in-memory snapshot and writes it through
// to the repository after every effective mutation.
type financeService struct {
	BaseService
	repo     portsrepo.SnapshotRepositoryFacade
	notifier portssvc.ChangeNotifier
	key      string
	clock    func() time.Time
	loc      *time.Location
	newID    func() string

	mu    sync.RWMutex
	state domain.Snapshot

	// persistMu is taken before mu is released so writes keep mutation order.
	persistMu sync.Mutex

	statusMu    sync.RWMutex
	lastErr     error
	lastSavedAt time.Time
}

// FinanceOption is a functional option for configuring the finance service
type FinanceOption func(*financeService)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) FinanceOption {
	return func(s *financeService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLocation sets the timezone dates and periods are evaluated in.
func WithLocation(loc *time.Location) FinanceOption {
	return func(s *financeService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithStorageKey overrides DefaultStorageKey.
func WithStorageKey(key string) FinanceOption {
	return func(s *financeService) {
		if key != "" {
			s.key = key
		}
	}
}

// WithChangeNotifier adds a notifier told about every persisted mutation.
func WithChangeNotifier(n portssvc.ChangeNotifier) FinanceOption {
	return func(s *financeService) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithIDGenerator replaces the uuid based id generator.
func WithIDGenerator(gen func() string) FinanceOption {
	return func(s *financeService) {
		if gen != nil {
			s.newID = gen
		}
	}
}

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewFinanceService creates the finance store. Call Load before serving.
func NewFinanceService(repo portsrepo.SnapshotRepositoryFacade, options ...FinanceOption) portssvc.FinanceSvcFacade {
	svc := &financeService{
		repo:     repo,
		notifier: portssvc.NoopNotifier{},
		key:      DefaultStorageKey,
		clock:    time.Now,
		loc:      time.Local,
		newID:    newUUID,
		state:    domain.DefaultSnapshot(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure financeService implements the FinanceSvcFacade interface
var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

func (s *financeService) now() time.Time {
	return s.clock().In(s.loc)
}

func (s *financeService) Load(ctx context.Context) error {
	data, err := s.repo.Get(ctx, s.key)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogInfo(ctx, "No stored snapshot, initializing storage", slog.String("key", s.key))
		err = s.mutate(ctx, domain.OpInitialize, func(st *domain.Snapshot, _ time.Time) (string, bool, error) {
			*st = domain.DefaultSnapshot()
			return "", true, nil
		})
		if err != nil {
			// Nothing is lost yet; the next mutation retries the write.
			s.GetLogger(ctx).Warn("Could not initialize storage", slog.String("error", err.Error()))
		}
		return nil
	case err != nil:
		s.setStatus(err, time.Time{})
		s.LogError(ctx, err, "Failed to read stored snapshot", slog.String("key", s.key))
		return fmt.Errorf("%w: load snapshot: %w", apperrors.ErrPersistence, err)
	}

	snap, err := mapping.DecodeSnapshot(data, s.loc)
	if err != nil {
		// The blob is replaced by the next successful write.
		s.LogError(ctx, err, "Stored snapshot is malformed, starting from defaults", slog.String("key", s.key))
		snap = domain.DefaultSnapshot()
	}

	now := s.now()
	s.mu.Lock()
	snap.Budgets = aggregation.RefreshSpent(snap.Budgets, snap.Transactions, now)
	s.state = snap
	s.mu.Unlock()

	s.LogInfo(ctx, "Snapshot loaded",
		slog.Int("transactions", len(snap.Transactions)),
		slog.Int("budgets", len(snap.Budgets)),
		slog.Int("categories", len(snap.Categories)))
	return nil
}

// mutate applies fn to the state under the write lock and persists the result.
// fn reports the affected entity id and whether anything changed.
func (s *financeService) mutate(ctx context.Context, op domain.ChangeOperation, fn func(st *domain.Snapshot, now time.Time) (string, bool, error)) error {
	// Lock order is persistMu then mu, so a queued writer never holds mu
	// while an earlier write is still in storage.
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	now := s.now()
	s.mu.Lock()
	entityID, changed, err := fn(&s.state, now)
	if err != nil || !changed {
		s.mu.Unlock()
		return err
	}
	s.state.Budgets = aggregation.RefreshSpent(s.state.Budgets, s.state.Transactions, now)
	snap := s.state.Clone()
	s.mu.Unlock()

	// An applied change is saved even if the caller has gone away.
	return s.persist(context.WithoutCancel(ctx), op, entityID, snap, now)
}

func (s *financeService) persist(ctx context.Context, op domain.ChangeOperation, entityID string, snap domain.Snapshot, now time.Time) error {
	data, err := mapping.EncodeSnapshot(snap)
	if err == nil {
		err = s.repo.Set(ctx, s.key, data)
	}
	if err != nil {
		s.setStatus(err, time.Time{})
		s.LogError(ctx, err, "Failed to persist snapshot", slog.String("operation", string(op)))
		return fmt.Errorf("%w: %w", apperrors.ErrPersistence, err)
	}
	s.setStatus(nil, now)

	event := domain.ChangeEvent{
		Operation:        op,
		EntityID:         entityID,
		TransactionCount: len(snap.Transactions),
		BudgetCount:      len(snap.Budgets),
		Currency:         snap.Currency,
		OccurredAt:       now,
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish change event", slog.String("operation", string(op)))
	}
	return nil
}

func (s *financeService) setStatus(err error, savedAt time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.lastErr = err
	if err == nil {
		s.lastSavedAt = savedAt
	}
}

func (s *financeService) Status() domain.StoreStatus {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return domain.StoreStatus{LastError: s.lastErr, LastSavedAt: s.lastSavedAt}
}

// read returns a deep copy of the state.
func (s *financeService) read() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *financeService) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	return s.read(), nil
}

// --- Transactions ---

func (s *financeService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	now := s.now()
	in := req.ToInput()
	if strings.TrimSpace(in.Date) == "" {
		in.Date = now.Format(mapping.DateLayout)
	}
	if err := validation.CheckTransaction(in); err != nil {
		s.LogDebug(ctx, "Rejected transaction", slog.String("error", err.Error()))
		return nil, err
	}

	amount, _ := validation.ParseAmount(in.Amount)
	date, err := mapping.ParseDate(strings.TrimSpace(in.Date), s.loc)
	if err != nil {
		return nil, apperrors.NewValidationError(apperrors.ErrValidation, map[string]string{"date": "Date must be a date in YYYY-MM-DD format"})
	}
	if validation.IsFutureDate(date, now) {
		s.LogDebug(ctx, "Transaction dated in the future", slog.String("date", in.Date))
	}

	tx := domain.Transaction{
		ID:          s.newID(),
		Description: strings.TrimSpace(in.Description),
		Amount:      amount,
		Type:        domain.TransactionType(in.Type),
		Category:    strings.TrimSpace(in.Category),
		Date:        date,
		CreatedAt:   now,
	}

	err = s.mutate(ctx, domain.OpAddTransaction, func(st *domain.Snapshot, _ time.Time) (string, bool, error) {
		st.Transactions = append(st.Transactions, tx)
		return tx.ID, true, nil
	})
	if err != nil {
		return &tx, err
	}

	s.LogInfo(ctx, "Transaction added", slog.String("transaction_id", tx.ID), slog.String("type", string(tx.Type)))
	return &tx, nil
}

func (s *financeService) DeleteTransaction(ctx context.Context, id string) error {
	err := s.mutate(ctx, domain.OpDeleteTransaction, func(st *domain.Snapshot, _ time.Time) (string, bool, error) {
		for i, t := range st.Transactions {
			if t.ID == id {
				st.Transactions = append(st.Transactions[:i:i], st.Transactions[i+1:]...)
				return id, true, nil
			}
		}
		return id, false, nil
	})
	if err != nil {
		return err
	}
	s.LogDebug(ctx, "Transaction delete processed", slog.String("transaction_id", id))
	return nil
}

// sortNewestFirst orders by date descending, then id descending.
func sortNewestFirst(txs []domain.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].ID > txs[j].ID
	})
}

func (s *financeService) FilterTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := s.read()
	out := aggregation.Filter(snap.Transactions, filter, s.now())
	sortNewestFirst(out)
	return out, nil
}

func (s *financeService) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken string) (domain.TransactionPage, error) {
	var cursor *pagination.Cursor
	if nextToken != "" {
		c, err := pagination.DecodeToken(nextToken)
		if err != nil {
			s.LogDebug(ctx, "Invalid pagination token", slog.String("error", err.Error()))
			return domain.TransactionPage{}, apperrors.NewValidationError(apperrors.ErrValidation, map[string]string{"nextToken": "Invalid pagination token"})
		}
		cursor = &c
	}

	all, err := s.FilterTransactions(ctx, filter)
	if err != nil {
		return domain.TransactionPage{}, err
	}

	limit = pagination.NormalizeLimit(limit)
	page := domain.TransactionPage{Transactions: make([]domain.Transaction, 0, min(limit, len(all)))}
	for _, t := range all {
		if cursor != nil && !cursor.Follows(t.Date, t.ID) {
			continue
		}
		if len(page.Transactions) == limit {
			last := page.Transactions[limit-1]
			page.NextToken = pagination.EncodeToken(last.Date, last.ID)
			break
		}
		page.Transactions = append(page.Transactions, t)
	}
	return page, nil
}

func (s *financeService) RecentTransactions(ctx context.Context, n int) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return aggregation.RecentTransactions(s.read().Transactions, n), nil
}

// --- Budgets ---

func (s *financeService) ListBudgets(ctx context.Context) ([]domain.BudgetProgress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := s.read()
	return aggregation.ProgressAll(snap.Budgets, snap.Transactions, s.now()), nil
}

func (s *financeService) AddBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.BudgetProgress, error) {
	in := req.ToInput()
	if err := validation.CheckBudget(in); err != nil {
		s.LogDebug(ctx, "Rejected budget", slog.String("error", err.Error()))
		return nil, err
	}
	amount, _ := validation.ParseAmount(in.Amount)
	period := domain.BudgetPeriod(strings.TrimSpace(in.Period))
	if period == "" {
		period = domain.DefaultBudgetPeriod
	}

	var progress domain.BudgetProgress
	err := s.mutate(ctx, domain.OpAddBudget, func(st *domain.Snapshot, now time.Time) (string, bool, error) {
		b := domain.Budget{
			ID:        s.newID(),
			Category:  strings.TrimSpace(in.Category),
			Amount:    amount,
			Period:    period,
			CreatedAt: now,
		}
		// One budget per category: a new one takes the old one's place.
		replaced := false
		for i, existing := range st.Budgets {
			if existing.Category == b.Category {
				st.Budgets[i] = b
				replaced = true
				break
			}
		}
		if !replaced {
			st.Budgets = append(st.Budgets, b)
		}
		progress = aggregation.Progress(b, st.Transactions, now)
		return b.ID, true, nil
	})
	if err != nil {
		return &progress, err
	}

	s.LogInfo(ctx, "Budget saved", slog.String("budget_id", progress.Budget.ID), slog.String("category", progress.Budget.Category))
	return &progress, nil
}

func (s *financeService) UpdateBudget(ctx context.Context, id string, req dto.UpdateBudgetRequest) (*domain.BudgetProgress, error) {
	var (
		progress domain.BudgetProgress
		found    bool
	)
	err := s.mutate(ctx, domain.OpUpdateBudget, func(st *domain.Snapshot, now time.Time) (string, bool, error) {
		idx := -1
		for i, b := range st.Budgets {
			if b.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return id, false, nil
		}
		found = true

		current := st.Budgets[idx]
		in := validation.BudgetInput{
			Category: current.Category,
			Amount:   current.Amount.String(),
			Period:   string(current.Period),
		}
		if req.Category != nil {
			in.Category = *req.Category
		}
		if req.Amount != nil {
			in.Amount = req.Amount.String()
		}
		if req.Period != nil {
			in.Period = *req.Period
		}
		if err := validation.CheckBudget(in); err != nil {
			return id, false, err
		}

		updated := current
		updated.Category = strings.TrimSpace(in.Category)
		updated.Amount, _ = validation.ParseAmount(in.Amount)
		updated.Period = domain.BudgetPeriod(strings.TrimSpace(in.Period))
		if updated.Period == "" {
			updated.Period = domain.DefaultBudgetPeriod
		}
		for i, b := range st.Budgets {
			if i != idx && b.Category == updated.Category {
				return id, false, fmt.Errorf("%w: a budget for category %q already exists", apperrors.ErrDuplicate, updated.Category)
			}
		}

		st.Budgets[idx] = updated
		progress = aggregation.Progress(updated, st.Transactions, now)
		return id, true, nil
	})
	if !found && err == nil {
		s.LogDebug(ctx, "Budget to update not found", slog.String("budget_id", id))
		return nil, nil
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrPersistence) {
			return &progress, err
		}
		return nil, err
	}

	s.LogInfo(ctx, "Budget updated", slog.String("budget_id", id))
	return &progress, nil
}

func (s *financeService) DeleteBudget(ctx context.Context, id string) error {
	return s.mutate(ctx, domain.OpDeleteBudget, func(st *domain.Snapshot, _ time.Time) (string, bool, error) {
		for i, b := range st.Budgets {
			if b.ID == id {
				st.Budgets = append(st.Budgets[:i:i], st.Budgets[i+1:]...)
				return id, true, nil
			}
		}
		return id, false, nil
	})
}

// --- Categories ---

func (s *financeService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.read().Categories, nil
}

func (s *financeService) AddCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, bool, error) {
	in := req.ToInput()
	if err := validation.CheckCategory(in); err != nil {
		return nil, false, err
	}

	var (
		category domain.Category
		created  bool
	)
	err := s.mutate(ctx, domain.OpAddCategory, func(st *domain.Snapshot, _ time.Time) (string, bool, error) {
		key := domain.NormalizeCategoryName(in.Name)
		for _, c := range st.Categories {
			if domain.NormalizeCategoryName(c.Name) == key {
				category = c
				return c.ID, false, nil
			}
		}
		category = domain.Category{
			ID:    s.newID(),
			Name:  strings.TrimSpace(in.Name),
			Color: strings.TrimSpace(in.Color),
			Type:  domain.TransactionType(in.Type),
		}
		if category.Color == "" {
			category.Color = domain.DefaultCategoryColor
		}
		st.Categories = append(st.Categories, category)
		created = true
		return category.ID, true, nil
	})
	if err != nil {
		return &category, created, err
	}
	if created {
		s.LogInfo(ctx, "Category added", slog.String("category_id", category.ID), slog.String("name", category.Name))
	}
	return &category, created, nil
}

// --- Settings ---

func (s *financeService) GetCurrency(ctx context.Context) (domain.Currency, error) {
	if err := ctx.Err(); err != nil {
		return domain.Currency{}, err
	}
	s.mu.RLock()
	code := s.state.Currency
	s.mu.RUnlock()
	return domain.NewCurrency(code), nil
}

func (s *financeService) SetCurrency(ctx context.Context, code string) (domain.Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if err := validation.CheckCurrency(code); err != nil {
		return domain.Currency{}, err
	}
	err := s.mutate(ctx, domain.OpSetCurrency, func(st *domain.Snapshot, _ time.Time) (string, bool, error) {
		if st.Currency == code {
			return code, false, nil
		}
		st.Currency = code
		return code, true, nil
	})
	if err != nil {
		return domain.NewCurrency(code), err
	}
	s.LogInfo(ctx, "Currency set", slog.String("currency", code))
	return domain.NewCurrency(code), nil
}

func (s *financeService) ClearAllData(ctx context.Context) error {
	err := s.mutate(ctx, domain.OpClearAll, func(st *domain.Snapshot, _ time.Time) (string, bool, error) {
		*st = domain.DefaultSnapshot()
		return "", true, nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "All data cleared")
	return nil
}

// --- Summary ---

func (s *financeService) Summary(ctx context.Context, months, recent int) (*domain.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := s.read()
	now := s.now()
	return &domain.Summary{
		Totals:             aggregation.Totals(snap.Transactions),
		Currency:           domain.NewCurrency(snap.Currency),
		ExpensesByCategory: aggregation.ExpensesByCategory(snap.Transactions),
		RecentTransactions: aggregation.RecentTransactions(snap.Transactions, recent),
		Monthly:            aggregation.GroupByMonth(snap.Transactions, now, months),
		Budgets:            aggregation.ProgressAll(snap.Budgets, snap.Transactions, now),
	}, nil
}

func (s *financeService) ExpensesByCategory(ctx context.Context) ([]domain.CategoryAmount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return aggregation.ExpensesByCategory(s.read().Transactions), nil
}

func (s *financeService) MonthlyTotals(ctx context.Context, months int) ([]domain.MonthlyTotals, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return aggregation.GroupByMonth(s.read().Transactions, s.now(), months), nil
}

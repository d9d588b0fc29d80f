package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/core/ports/events"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, time.January, 5, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func stringPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64    { return &v }
func timePtr(t time.Time) *time.Time {
	return &t
}

func ym(y int, m time.Month) domain.YearMonth {
	return domain.YearMonth{Year: y, Month: m}
}

// --- In-memory budget store honouring the (owner, category, year, month) key ---

type memBudgetRepo struct {
	mu      sync.Mutex
	records map[string]domain.BudgetRecord
}

var _ portsrepo.BudgetRepositoryFacade = (*memBudgetRepo)(nil)

func newMemBudgetRepo(seed ...domain.BudgetRecord) *memBudgetRepo {
	r := &memBudgetRepo{records: map[string]domain.BudgetRecord{}}
	for _, rec := range seed {
		r.records[rec.ID] = rec
	}
	return r
}

func compositeKey(rec domain.BudgetRecord) string {
	return fmt.Sprintf("%s|%s|%d|%d", rec.OwnerID, rec.CategoryID, rec.Year, rec.Month)
}

func containsYear(years []int, y int) bool {
	for _, v := range years {
		if v == y {
			return true
		}
	}
	return false
}

func (r *memBudgetRepo) sorted(filter func(domain.BudgetRecord) bool) []domain.BudgetRecord {
	var out []domain.BudgetRecord
	for _, rec := range r.records {
		if filter(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].YearMonth() != out[j].YearMonth() {
			return out[i].YearMonth().Before(out[j].YearMonth())
		}
		return out[i].CategoryID < out[j].CategoryID
	})
	return out
}

// all returns every stored record ordered by month then category.
func (r *memBudgetRepo) all() []domain.BudgetRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(domain.BudgetRecord) bool { return true })
}

func (r *memBudgetRepo) FindBudgetsByCategory(_ context.Context, ownerID, categoryID string, years []int) ([]domain.BudgetRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(rec domain.BudgetRecord) bool {
		return rec.OwnerID == ownerID && rec.CategoryID == categoryID && containsYear(years, rec.Year)
	}), nil
}

func (r *memBudgetRepo) FindBudgetsBySource(_ context.Context, key domain.BudgetSourceKey, years []int) ([]domain.BudgetRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(rec domain.BudgetRecord) bool {
		return rec.OwnerID == key.OwnerID && rec.CategoryID == key.CategoryID &&
			rec.OwnedBy(key.SourceType, key.SourceID) && containsYear(years, rec.Year)
	}), nil
}

func (r *memBudgetRepo) FindBudget(_ context.Context, ownerID, categoryID string, month domain.YearMonth) (*domain.BudgetRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.OwnerID == ownerID && rec.CategoryID == categoryID && rec.YearMonth() == month {
			found := rec
			return &found, nil
		}
	}
	return nil, apperrors.NewNotFoundError("budget not found")
}

func (r *memBudgetRepo) ListBudgetsBySource(_ context.Context, ownerID string, sourceType domain.SourceType, sourceID string, limit int, _ *string) ([]domain.BudgetRecord, *string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.sorted(func(rec domain.BudgetRecord) bool {
		return rec.OwnerID == ownerID && rec.OwnedBy(sourceType, sourceID)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil, nil
}

func (r *memBudgetRepo) UpsertBudgets(_ context.Context, records []domain.BudgetRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range records {
		for id, existing := range r.records {
			if compositeKey(existing) == compositeKey(rec) {
				rec.ID = existing.ID
				delete(r.records, id)
			}
		}
		r.records[rec.ID] = rec
	}
	return nil
}

func (r *memBudgetRepo) InsertBudgetIfAbsent(_ context.Context, record domain.BudgetRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if compositeKey(existing) == compositeKey(record) {
			return false, nil
		}
	}
	r.records[record.ID] = record
	return true, nil
}

func (r *memBudgetRepo) DeleteAutoGeneratedBudgets(_ context.Context, key domain.BudgetSourceKey) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, rec := range r.records {
		if rec.OwnerID == key.OwnerID && rec.CategoryID == key.CategoryID && rec.IsAutoGenerated && rec.OwnedBy(key.SourceType, key.SourceID) {
			delete(r.records, id)
			n++
		}
	}
	return n, nil
}

func (r *memBudgetRepo) DeleteBudgetsByIDs(_ context.Context, ownerID string, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if rec, ok := r.records[id]; ok && rec.OwnerID == ownerID {
			delete(r.records, id)
		}
	}
	return nil
}

func (r *memBudgetRepo) UpdateBudgetActual(_ context.Context, id string, actual int64, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return apperrors.NewNotFoundError("budget not found")
	}
	rec.ActualAmount = &actual
	rec.LastUpdatedBy = userID
	r.records[id] = rec
	return nil
}

// --- In-memory custom plan store ---

type memCustomPlanRepo struct {
	mu      sync.Mutex
	entries map[string][]domain.CustomPlanEntry
}

var _ portsrepo.CustomPlanRepositoryFacade = (*memCustomPlanRepo)(nil)

func newMemCustomPlanRepo() *memCustomPlanRepo {
	return &memCustomPlanRepo{entries: map[string][]domain.CustomPlanEntry{}}
}

func (r *memCustomPlanRepo) FindCustomPlanEntries(_ context.Context, obligationID string, window *domain.MonthWindow) ([]domain.CustomPlanEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.CustomPlanEntry
	for _, e := range r.entries[obligationID] {
		if window == nil || window.Contains(e.Month) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memCustomPlanRepo) ReplaceCustomPlanEntries(_ context.Context, obligationID string, entries []domain.CustomPlanEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[obligationID] = append([]domain.CustomPlanEntry(nil), entries...)
	return nil
}

// --- testify mocks ---

type MockObligationRepository struct {
	mock.Mock
}

func (m *MockObligationRepository) FindObligation(ctx context.Context, kind domain.ObligationKind, obligationID string) (*domain.Obligation, error) {
	args := m.Called(ctx, kind, obligationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Obligation), args.Error(1)
}

func (m *MockObligationRepository) ListPlannedObligations(ctx context.Context, ownerID string, kind *domain.ObligationKind) ([]domain.Obligation, error) {
	args := m.Called(ctx, ownerID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Obligation), args.Error(1)
}

func (m *MockObligationRepository) UpdateGoalMonthlyContribution(ctx context.Context, goalID string, monthlyAmount int64, userID string, now time.Time) error {
	args := m.Called(ctx, goalID, monthlyAmount, userID, now)
	return args.Error(0)
}

type MockCustomPlanRepository struct {
	mock.Mock
}

func (m *MockCustomPlanRepository) FindCustomPlanEntries(ctx context.Context, obligationID string, window *domain.MonthWindow) ([]domain.CustomPlanEntry, error) {
	args := m.Called(ctx, obligationID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomPlanEntry), args.Error(1)
}

func (m *MockCustomPlanRepository) ReplaceCustomPlanEntries(ctx context.Context, obligationID string, entries []domain.CustomPlanEntry) error {
	args := m.Called(ctx, obligationID, entries)
	return args.Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListYieldAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindLedgerEntries(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) EnsureCategory(ctx context.Context, ownerID, name string, kind domain.CategoryKind) (string, error) {
	args := m.Called(ctx, ownerID, name, kind)
	return args.String(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishBudgetsChanged(ctx context.Context, event events.BudgetsChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

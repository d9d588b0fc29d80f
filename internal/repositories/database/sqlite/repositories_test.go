package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/SscSPs/money_planner/internal/platform/migrations"
	"github.com/SscSPs/money_planner/internal/repositories/database/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const seedTS = "2024-01-01T00:00:00Z"

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	db   *sql.DB
	repo portsrepo.RepositoryProvider
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	dbPath := filepath.Join(s.T().TempDir(), "planner.db")
	_, err := migrations.Run(migrations.SQLite, dbPath, nil)
	s.Require().NoError(err)

	s.db, err = sqlite.Open(dbPath)
	s.Require().NoError(err)
	s.ctx = context.Background()
	s.repo = sqlite.NewRepositoryProvider(s.db)
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *SQLiteRepositoryTestSuite) exec(query string, args ...any) {
	_, err := s.db.Exec(query, args...)
	s.Require().NoError(err)
}

func (s *SQLiteRepositoryTestSuite) seedObligation(id, kind string, includeInPlan int, monthly any) {
	s.exec(`INSERT INTO obligations (
			obligation_id, owner_id, name, kind, include_in_plan, status, frequency, monthly_amount,
			start_date, installment_amount, installment_count, installment_day,
			target_amount, progress_amount, target_date,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES (?, 'owner-1', ?, ?, ?, 'active', 'monthly', ?, '2024-02-01', NULL, NULL, NULL, 100000, 2500, '2024-12-01', ?, 'owner-1', ?, 'owner-1')`,
		id, "name "+id, kind, includeInPlan, monthly, seedTS, seedTS)
}

func budget(id, category string, month time.Month, amount int64, source string) domain.BudgetRecord {
	return domain.BudgetRecord{
		ID:              id,
		OwnerID:         "owner-1",
		CategoryID:      category,
		Year:            2024,
		Month:           month,
		PlannedAmount:   amount,
		SourceType:      domain.SourceGoal,
		SourceID:        &source,
		IsAutoGenerated: true,
		IsProjected:     true,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC), CreatedBy: "owner-1",
			LastUpdatedAt: time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC), LastUpdatedBy: "owner-1",
		},
	}
}

func (s *SQLiteRepositoryTestSuite) TestObligation_FindByKind() {
	s.seedObligation("goal-1", "goal", 1, 30000)

	goal, err := s.repo.ObligationRepo.FindObligation(s.ctx, domain.KindGoal, "goal-1")
	s.Require().NoError(err)
	s.Require().NotNil(goal.Goal)
	s.Equal(int64(100000), goal.Goal.TargetAmount)
	s.Equal(int64(2500), goal.Goal.CurrentAmount)
	s.Require().NotNil(goal.Goal.TargetDate)
	s.Equal(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), *goal.Goal.TargetDate)
	s.Require().NotNil(goal.Recurrence.MonthlyAmount)
	s.Equal(int64(30000), *goal.Recurrence.MonthlyAmount)
	s.Nil(goal.Recurrence.Installments)
	s.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), goal.CreatedAt)

	_, err = s.repo.ObligationRepo.FindObligation(s.ctx, domain.KindDebt, "goal-1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestObligation_ListPlanned() {
	s.seedObligation("goal-1", "goal", 1, 30000)
	s.seedObligation("goal-2", "goal", 0, 30000)
	s.seedObligation("debt-1", "debt", 1, nil)

	all, err := s.repo.ObligationRepo.ListPlannedObligations(s.ctx, "owner-1", nil)
	s.Require().NoError(err)
	s.Len(all, 2)

	kind := domain.KindDebt
	debts, err := s.repo.ObligationRepo.ListPlannedObligations(s.ctx, "owner-1", &kind)
	s.Require().NoError(err)
	s.Require().Len(debts, 1)
	s.Equal("debt-1", debts[0].ID)
	s.Nil(debts[0].Recurrence.MonthlyAmount)

	none, err := s.repo.ObligationRepo.ListPlannedObligations(s.ctx, "owner-2", nil)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *SQLiteRepositoryTestSuite) TestObligation_ListPlannedKeepsExcludedWithAutoBudgets() {
	s.seedObligation("goal-1", "goal", 1, 30000)
	s.seedObligation("goal-2", "goal", 0, 30000)
	s.seedObligation("goal-3", "goal", 0, 30000)
	manual := budget("b-2", "cat-1", time.April, 1000, "goal-2")
	manual.IsAutoGenerated = false
	s.Require().NoError(s.repo.BudgetRepo.UpsertBudgets(s.ctx, []domain.BudgetRecord{
		budget("b-1", "cat-1", time.March, 30000, "goal-3"),
		manual,
	}))

	all, err := s.repo.ObligationRepo.ListPlannedObligations(s.ctx, "owner-1", nil)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("goal-1", all[0].ID)
	s.Equal("goal-3", all[1].ID)
	s.False(all[1].IncludeInPlan)

	kind := domain.KindDebt
	debts, err := s.repo.ObligationRepo.ListPlannedObligations(s.ctx, "owner-1", &kind)
	s.Require().NoError(err)
	s.Empty(debts)
}

func (s *SQLiteRepositoryTestSuite) TestObligation_UpdateGoalMonthlyContribution() {
	s.seedObligation("goal-1", "goal", 1, 30000)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	s.Require().NoError(s.repo.ObligationRepo.UpdateGoalMonthlyContribution(s.ctx, "goal-1", 14000, "owner-1", now))
	goal, err := s.repo.ObligationRepo.FindObligation(s.ctx, domain.KindGoal, "goal-1")
	s.Require().NoError(err)
	s.Equal(int64(14000), *goal.Recurrence.MonthlyAmount)
	s.Equal(now, goal.LastUpdatedAt)

	err = s.repo.ObligationRepo.UpdateGoalMonthlyContribution(s.ctx, "missing", 1, "owner-1", now)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestBudget_UpsertKeepsExistingID() {
	repo := s.repo.BudgetRepo
	first := budget("b-1", "cat-1", time.March, 30000, "goal-1")
	first.Metadata = []byte(`{"note":"x"}`)
	s.Require().NoError(repo.UpsertBudgets(s.ctx, []domain.BudgetRecord{first, budget("b-2", "cat-1", time.April, 30000, "goal-1")}))

	replacement := budget("b-9", "cat-1", time.March, 10000, "goal-1")
	s.Require().NoError(repo.UpsertBudgets(s.ctx, []domain.BudgetRecord{replacement}))

	got, err := repo.FindBudget(s.ctx, "owner-1", "cat-1", domain.YearMonth{Year: 2024, Month: time.March})
	s.Require().NoError(err)
	s.Equal("b-1", got.ID)
	s.Equal(int64(10000), got.PlannedAmount)
	s.Nil(got.Metadata)
	s.True(got.IsAutoGenerated)
	s.Equal("goal-1", got.Source())

	records, err := repo.FindBudgetsByCategory(s.ctx, "owner-1", "cat-1", []int{2024})
	s.Require().NoError(err)
	s.Len(records, 2)

	_, err = repo.FindBudget(s.ctx, "owner-1", "cat-1", domain.YearMonth{Year: 2024, Month: time.May})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestBudget_MetadataRoundTrip() {
	rec := budget("b-1", "cat-1", time.May, 4980, "")
	rec.SourceType = domain.SourceYield
	rec.SourceID = nil
	rec.Metadata = []byte(`{"total":4980}`)

	inserted, err := s.repo.BudgetRepo.InsertBudgetIfAbsent(s.ctx, rec)
	s.Require().NoError(err)
	s.True(inserted)

	got, err := s.repo.BudgetRepo.FindBudget(s.ctx, "owner-1", "cat-1", rec.YearMonth())
	s.Require().NoError(err)
	s.Nil(got.SourceID)
	s.JSONEq(`{"total":4980}`, string(got.Metadata))

	rec.ID = "b-2"
	inserted, err = s.repo.BudgetRepo.InsertBudgetIfAbsent(s.ctx, rec)
	s.Require().NoError(err)
	s.False(inserted)
}

func (s *SQLiteRepositoryTestSuite) TestBudget_SourceScopedDeletes() {
	repo := s.repo.BudgetRepo
	manual := budget("b-3", "cat-1", time.May, 500, "goal-1")
	manual.IsAutoGenerated = false
	s.Require().NoError(repo.UpsertBudgets(s.ctx, []domain.BudgetRecord{
		budget("b-1", "cat-1", time.March, 100, "goal-1"),
		budget("b-2", "cat-1", time.April, 100, "goal-1"),
		manual,
		budget("b-4", "cat-1", time.June, 100, "goal-2"),
	}))

	key := domain.BudgetSourceKey{OwnerID: "owner-1", CategoryID: "cat-1", SourceType: domain.SourceGoal, SourceID: "goal-1"}
	owned, err := repo.FindBudgetsBySource(s.ctx, key, []int{2024, 2025})
	s.Require().NoError(err)
	s.Len(owned, 3)

	deleted, err := repo.DeleteAutoGeneratedBudgets(s.ctx, key)
	s.Require().NoError(err)
	s.Equal(2, deleted)

	s.Require().NoError(repo.DeleteBudgetsByIDs(s.ctx, "owner-1", []string{"b-4"}))

	left, err := repo.FindBudgetsByCategory(s.ctx, "owner-1", "cat-1", []int{2024})
	s.Require().NoError(err)
	s.Require().Len(left, 1)
	s.Equal("b-3", left[0].ID)
}

func (s *SQLiteRepositoryTestSuite) TestBudget_UpdateActual() {
	s.Require().NoError(s.repo.BudgetRepo.UpsertBudgets(s.ctx, []domain.BudgetRecord{budget("b-1", "cat-1", time.March, 100, "goal-1")}))

	s.Require().NoError(s.repo.BudgetRepo.UpdateBudgetActual(s.ctx, "b-1", 90, "owner-1"))
	got, err := s.repo.BudgetRepo.FindBudget(s.ctx, "owner-1", "cat-1", domain.YearMonth{Year: 2024, Month: time.March})
	s.Require().NoError(err)
	s.Require().NotNil(got.ActualAmount)
	s.Equal(int64(90), *got.ActualAmount)

	s.ErrorIs(s.repo.BudgetRepo.UpdateBudgetActual(s.ctx, "missing", 1, "owner-1"), apperrors.ErrNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestBudget_ListBySourcePages() {
	s.Require().NoError(s.repo.BudgetRepo.UpsertBudgets(s.ctx, []domain.BudgetRecord{
		budget("b-1", "cat-1", time.March, 100, "goal-1"),
		budget("b-2", "cat-2", time.March, 100, "goal-1"),
		budget("b-3", "cat-1", time.April, 100, "goal-1"),
	}))

	page, next, err := s.repo.BudgetRepo.ListBudgetsBySource(s.ctx, "owner-1", domain.SourceGoal, "goal-1", 2, nil)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal([]string{"b-1", "b-2"}, []string{page[0].ID, page[1].ID})
	s.Require().NotNil(next)

	page, next, err = s.repo.BudgetRepo.ListBudgetsBySource(s.ctx, "owner-1", domain.SourceGoal, "goal-1", 2, next)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("b-3", page[0].ID)
	s.Nil(next)

	bad := "not-a-token"
	_, _, err = s.repo.BudgetRepo.ListBudgetsBySource(s.ctx, "owner-1", domain.SourceGoal, "goal-1", 2, &bad)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SQLiteRepositoryTestSuite) TestCustomPlan_ReplaceAndWindow() {
	s.seedObligation("goal-1", "goal", 1, 30000)
	entry := func(id string, m time.Month, amount int64) domain.CustomPlanEntry {
		return domain.CustomPlanEntry{
			ID: id, OwnerID: "owner-1", ObligationID: "goal-1", CategoryID: "cat-1",
			Month: domain.YearMonth{Year: 2024, Month: m}, Amount: amount,
			AuditFields: domain.AuditFields{CreatedAt: time.Now(), LastUpdatedAt: time.Now()},
		}
	}
	repo := s.repo.CustomPlanRepo

	s.Require().NoError(repo.ReplaceCustomPlanEntries(s.ctx, "goal-1", []domain.CustomPlanEntry{
		entry("e-3", time.December, 300), entry("e-1", time.February, 100), entry("e-2", time.June, 200),
	}))

	all, err := repo.FindCustomPlanEntries(s.ctx, "goal-1", nil)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("e-1", all[0].ID)

	window := domain.MonthWindow{Start: domain.YearMonth{Year: 2024, Month: time.March}, End: domain.YearMonth{Year: 2025, Month: time.January}}
	windowed, err := repo.FindCustomPlanEntries(s.ctx, "goal-1", &window)
	s.Require().NoError(err)
	s.Len(windowed, 2)

	err = repo.ReplaceCustomPlanEntries(s.ctx, "goal-1", []domain.CustomPlanEntry{entry("e-4", time.May, 1), entry("e-5", time.May, 2)})
	s.ErrorIs(err, apperrors.ErrConflict)

	// the failed replace rolled back
	all, err = repo.FindCustomPlanEntries(s.ctx, "goal-1", nil)
	s.Require().NoError(err)
	s.Len(all, 3)

	s.Require().NoError(repo.ReplaceCustomPlanEntries(s.ctx, "goal-1", nil))
	all, err = repo.FindCustomPlanEntries(s.ctx, "goal-1", nil)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *SQLiteRepositoryTestSuite) TestAccounts_YieldAndLedger() {
	s.exec(`INSERT INTO accounts (account_id, owner_id, name, balance, monthly_yield_rate, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ('acc-1', 'owner-1', 'Savings', 100000, '0.5', ?, 'owner-1', ?, 'owner-1'),
		       ('acc-2', 'owner-1', 'Checking', 5000, '0', ?, 'owner-1', ?, 'owner-1')`, seedTS, seedTS, seedTS, seedTS)
	s.exec(`INSERT INTO ledger_entries (entry_id, account_id, entry_date, amount) VALUES
		('l-1', 'acc-1', '2024-03-31', 10),
		('l-2', 'acc-1', '2024-04-02', 1000),
		('l-3', 'acc-1', '2024-04-30', -200),
		('l-4', 'acc-1', '2024-05-01', 50)`)

	accounts, err := s.repo.AccountRepo.ListYieldAccounts(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)
	s.Equal("acc-1", accounts[0].ID)
	s.True(accounts[0].MonthlyYieldRate.Equal(decimal.RequireFromString("0.5")))

	acc, err := s.repo.AccountRepo.FindAccountByID(s.ctx, "acc-2")
	s.Require().NoError(err)
	s.False(acc.EarnsYield())

	_, err = s.repo.AccountRepo.FindAccountByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)

	entries, err := s.repo.AccountRepo.FindLedgerEntries(s.ctx, "acc-1",
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Equal([]domain.LedgerEntry{
		{Date: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), Amount: 1000},
		{Date: time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC), Amount: -200},
	}, entries)
}

func (s *SQLiteRepositoryTestSuite) TestCategory_EnsureIsIdempotent() {
	id1, err := s.repo.CategoryRepo.EnsureCategory(s.ctx, "owner-1", "Account Yield", domain.CategoryIncome)
	s.Require().NoError(err)
	s.NotEmpty(id1)

	id2, err := s.repo.CategoryRepo.EnsureCategory(s.ctx, "owner-1", "Account Yield", domain.CategoryIncome)
	s.Require().NoError(err)
	s.Equal(id1, id2)

	other, err := s.repo.CategoryRepo.EnsureCategory(s.ctx, "owner-2", "Account Yield", domain.CategoryIncome)
	s.Require().NoError(err)
	s.NotEqual(id1, other)
}

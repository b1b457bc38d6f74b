package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// bucketLayout is the calendar-month key format for ledger buckets.
const bucketLayout = "2006-01"

// CreditRepository reads and writes per-student credit ledgers.
type CreditRepository struct {
	ledgers *store.Collection[models.CreditLedger]
}

// NewCreditRepository constructs CreditRepository.
func NewCreditRepository(s *store.Store) *CreditRepository {
	return &CreditRepository{ledgers: s.CreditLedgers}
}

// Init seeds an empty ledger for a freshly registered student. A later
// Apply would create it anyway; registering it up front matches account
// creation semantics.
func (r *CreditRepository) Init(ctx context.Context, studentEmail string, now time.Time) error {
	r.ledgers.Upsert(
		matchLedger(studentEmail),
		func(l *models.CreditLedger) {},
		func() models.CreditLedger {
			return models.CreditLedger{
				ID:           uuid.NewString(),
				StudentEmail: studentEmail,
				UpdatedAt:    now,
			}
		},
	)
	return nil
}

// Apply adds amount to the student's running total and to the bucket for
// now's calendar month, appending an audit activity. The whole
// read-modify-write runs atomically under the collection's write lock, so
// concurrent awards cannot lose updates. Apply never fails.
func (r *CreditRepository) Apply(ctx context.Context, studentEmail string, amount int, reason string, now time.Time) error {
	month := now.Format(bucketLayout)
	activity := models.CreditActivity{Timestamp: now, Amount: amount, Reason: reason}

	r.ledgers.Upsert(
		matchLedger(studentEmail),
		func(l *models.CreditLedger) {
			applyAward(l, month, activity)
		},
		func() models.CreditLedger {
			ledger := models.CreditLedger{
				ID:           uuid.NewString(),
				StudentEmail: studentEmail,
				UpdatedAt:    now,
			}
			applyAward(&ledger, month, activity)
			return ledger
		},
	)
	return nil
}

// FindByStudent returns an isolated copy of the student's ledger.
func (r *CreditRepository) FindByStudent(ctx context.Context, studentEmail string) (*models.CreditLedger, error) {
	ledger, ok := r.ledgers.FindClone(matchLedger(studentEmail), cloneLedger)
	if !ok {
		return nil, ErrNoRecord
	}
	return &ledger, nil
}

// Top returns the n ledgers with highest totals, descending. Ties keep
// store order.
func (r *CreditRepository) Top(ctx context.Context, n int) ([]models.CreditLedger, error) {
	ledgers := r.ledgers.AllClone(cloneLedger)
	sort.SliceStable(ledgers, func(i, j int) bool {
		return ledgers[i].TotalCredits > ledgers[j].TotalCredits
	})
	if n > 0 && len(ledgers) > n {
		ledgers = ledgers[:n]
	}
	return ledgers, nil
}

func matchLedger(studentEmail string) func(models.CreditLedger) bool {
	return func(l models.CreditLedger) bool {
		return strings.EqualFold(l.StudentEmail, studentEmail)
	}
}

// cloneLedger deep-copies the month buckets. Plain Collection snapshots copy
// only the top-level struct; the bucket slices would alias storage that
// applyAward mutates in place, so reads go through FindClone/AllClone with
// this as the cloner.
func cloneLedger(l models.CreditLedger) models.CreditLedger {
	if len(l.Months) == 0 {
		return l
	}
	months := make([]models.MonthlyCredits, len(l.Months))
	copy(months, l.Months)
	for i := range months {
		activities := make([]models.CreditActivity, len(months[i].Activities))
		copy(activities, months[i].Activities)
		months[i].Activities = activities
	}
	l.Months = months
	return l
}

func applyAward(l *models.CreditLedger, month string, activity models.CreditActivity) {
	l.TotalCredits += activity.Amount
	l.UpdatedAt = activity.Timestamp

	for i := range l.Months {
		if l.Months[i].Month == month {
			l.Months[i].Credits += activity.Amount
			l.Months[i].Activities = append(l.Months[i].Activities, activity)
			return
		}
	}
	l.Months = append(l.Months, models.MonthlyCredits{
		Month:      month,
		Credits:    activity.Amount,
		Activities: []models.CreditActivity{activity},
	})
}

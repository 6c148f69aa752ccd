// Package account covers plans, usage limits, and the external auth and
// billing seams.
package account

import (
	"context"
	"fmt"
	"time"
)

// PlanID identifies a subscription tier.
type PlanID string

const (
	PlanFree     PlanID = "free"
	PlanPro      PlanID = "pro"
	PlanBusiness PlanID = "business"
)

// Plan describes a subscription tier.
type Plan struct {
	ID            PlanID  `json:"id"`
	Name          string  `json:"name"`
	PriceUSD      float64 `json:"price_usd"`
	MonthlyPieces int     `json:"monthly_pieces"`
}

// Plans is the tier table.
var Plans = map[PlanID]Plan{
	PlanFree:     {ID: PlanFree, Name: "Free", PriceUSD: 0, MonthlyPieces: 5},
	PlanPro:      {ID: PlanPro, Name: "Pro", PriceUSD: 29, MonthlyPieces: 20},
	PlanBusiness: {ID: PlanBusiness, Name: "Business", PriceUSD: 79, MonthlyPieces: 50},
}

// User is the authenticated account identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Plan  PlanID `json:"plan"`
}

// UsageInfo reports where a user stands against their plan limit for
// the current period.
type UsageInfo struct {
	Plan        Plan      `json:"plan"`
	Used        int       `json:"used"`
	Limit       int       `json:"limit"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

// Remaining reports how many pieces the user can still create.
func (u UsageInfo) Remaining() int {
	r := u.Limit - u.Used
	if r < 0 {
		return 0
	}
	return r
}

// LimitError is returned when a generation would exceed the plan limit.
type LimitError struct {
	Usage UsageInfo
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("monthly limit reached: %d of %d pieces used on the %s plan",
		e.Usage.Used, e.Usage.Limit, e.Usage.Plan.Name)
}

// AuthService is the seam for an external identity provider.
type AuthService interface {
	CurrentUser(ctx context.Context) (*User, error)
	SignIn(ctx context.Context, email, password string) (*User, error)
	SignUp(ctx context.Context, email, password string) (*User, error)
	SignOut(ctx context.Context) error
}

// BillingService is the seam for an external subscription provider.
type BillingService interface {
	PlanFor(ctx context.Context, userID string) (PlanID, error)
	CheckoutURL(ctx context.Context, userID string, plan PlanID) (string, error)
}

// RecordCounter is the slice of the store usage tracking needs.
type RecordCounter interface {
	CountRecordsSince(userID string, since time.Time) (int, error)
}

// UsageTracker enforces plan limits against saved content records.
type UsageTracker struct {
	counter RecordCounter
}

// NewUsageTracker creates a tracker over the given record counter.
func NewUsageTracker(counter RecordCounter) *UsageTracker {
	return &UsageTracker{counter: counter}
}

// Usage reports the user's standing for the current calendar month.
func (t *UsageTracker) Usage(user User, now time.Time) (UsageInfo, error) {
	plan, ok := Plans[user.Plan]
	if !ok {
		plan = Plans[PlanFree]
	}

	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	used, err := t.counter.CountRecordsSince(user.ID, periodStart)
	if err != nil {
		return UsageInfo{}, fmt.Errorf("failed to count usage: %w", err)
	}

	return UsageInfo{
		Plan:        plan,
		Used:        used,
		Limit:       plan.MonthlyPieces,
		PeriodStart: periodStart,
		PeriodEnd:   periodStart.AddDate(0, 1, 0),
	}, nil
}

// CheckUsage returns a LimitError when the user has exhausted their
// monthly allowance.
func (t *UsageTracker) CheckUsage(user User, now time.Time) error {
	usage, err := t.Usage(user, now)
	if err != nil {
		return err
	}
	if usage.Used >= usage.Limit {
		return &LimitError{Usage: usage}
	}
	return nil
}

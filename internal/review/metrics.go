package review

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/repository"
)

// HighRiskWHI is the index value at or above which a day counts as high risk.
const HighRiskWHI = 60

// hydrationTargetCups is the daily intake a hydration check-in must report
// to count as compliant.
const hydrationTargetCups = 8

// Trend describes the week-over-week direction of a metric.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
	TrendUnknown   Trend = "insufficient_data"
)

// Metrics is the weekly rollup shown by the review command.
type Metrics struct {
	From time.Time
	To   time.Time

	Checkins map[domain.Domain]int

	// Estimated deskbound hours summed from reported seated blocks.
	SedentaryHours float64

	// Share of hydration check-ins meeting the daily water target.
	HydrationCompliancePct float64
	HydrationDays          int

	SleepAvgHours     float64
	PrevSleepAvgHours float64
	SleepTrend        Trend

	HighRiskDays  int
	SnapshotCount int
}

// Analyzer computes weekly metrics from stored records and snapshots.
type Analyzer struct {
	records   repository.RecordRepo
	snapshots repository.SnapshotRepo
}

// NewAnalyzer creates an Analyzer over the given repositories.
func NewAnalyzer(records repository.RecordRepo, snapshots repository.SnapshotRepo) *Analyzer {
	return &Analyzer{records: records, snapshots: snapshots}
}

// Weekly computes metrics for the seven days ending at now. The sleep trend
// compares against the seven days before that.
func (a *Analyzer) Weekly(ctx context.Context, now time.Time) (*Metrics, error) {
	to := now.UTC()
	from := to.AddDate(0, 0, -7)
	prevFrom := to.AddDate(0, 0, -14)

	m := &Metrics{
		From:     from,
		To:       to,
		Checkins: make(map[domain.Domain]int),
	}

	for _, d := range domain.AllDomains() {
		recs, err := a.records.Since(ctx, d, from)
		if err != nil {
			return nil, fmt.Errorf("loading %s records: %w", d, err)
		}
		m.Checkins[d] = len(recs)
	}

	if err := a.sedentary(ctx, from, m); err != nil {
		return nil, err
	}
	if err := a.hydration(ctx, from, m); err != nil {
		return nil, err
	}
	if err := a.sleep(ctx, from, prevFrom, m); err != nil {
		return nil, err
	}
	if err := a.highRiskDays(ctx, from, m); err != nil {
		return nil, err
	}
	return m, nil
}

// seatedBlockHours maps the reported longest seated block to an hour estimate.
var seatedBlockHours = map[string]float64{
	"30 min":   0.5,
	"1 hour":   1,
	"2 hours":  2,
	"3+ hours": 3.5,
}

func (a *Analyzer) sedentary(ctx context.Context, from time.Time, m *Metrics) error {
	recs, err := a.records.Since(ctx, domain.DomainMSK, from)
	if err != nil {
		return fmt.Errorf("loading msk records: %w", err)
	}
	for _, rec := range recs {
		m.SedentaryHours += seatedBlockHours[rec.Str("seated_duration")]
	}
	return nil
}

func (a *Analyzer) hydration(ctx context.Context, from time.Time, m *Metrics) error {
	recs, err := a.records.Since(ctx, domain.DomainHydration, from)
	if err != nil {
		return fmt.Errorf("loading hydration records: %w", err)
	}
	m.HydrationDays = len(recs)
	if len(recs) == 0 {
		return nil
	}
	compliant := 0
	for _, rec := range recs {
		if rec.Int("water_intake") >= hydrationTargetCups {
			compliant++
		}
	}
	m.HydrationCompliancePct = float64(compliant) / float64(len(recs)) * 100
	return nil
}

func (a *Analyzer) sleep(ctx context.Context, from, prevFrom time.Time, m *Metrics) error {
	recs, err := a.records.Since(ctx, domain.DomainRecoverySleep, prevFrom)
	if err != nil {
		return fmt.Errorf("loading sleep records: %w", err)
	}

	var curSum, prevSum float64
	var curN, prevN int
	for _, rec := range recs {
		hours := rec.Float("sleep_hours")
		if rec.CreatedAt.Before(from) {
			prevSum += hours
			prevN++
		} else {
			curSum += hours
			curN++
		}
	}

	if curN > 0 {
		m.SleepAvgHours = curSum / float64(curN)
	}
	if prevN > 0 {
		m.PrevSleepAvgHours = prevSum / float64(prevN)
	}

	switch {
	case curN == 0 || prevN == 0:
		m.SleepTrend = TrendUnknown
	case m.SleepAvgHours-m.PrevSleepAvgHours >= 0.5:
		m.SleepTrend = TrendImproving
	case m.PrevSleepAvgHours-m.SleepAvgHours >= 0.5:
		m.SleepTrend = TrendDeclining
	default:
		m.SleepTrend = TrendStable
	}
	return nil
}

func (a *Analyzer) highRiskDays(ctx context.Context, from time.Time, m *Metrics) error {
	snaps, err := a.snapshots.Since(ctx, from)
	if err != nil {
		return fmt.Errorf("loading snapshots: %w", err)
	}
	m.SnapshotCount = len(snaps)

	days := make(map[string]bool)
	for _, s := range snaps {
		if s.WHI >= HighRiskWHI {
			days[s.TakenAt.Format("2006-01-02")] = true
		}
	}
	m.HighRiskDays = len(days)
	return nil
}

package analytics

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillgap-analyzer/internal/db"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// Snapshot assembly limits.
const (
	topSkillsLimit      = 15
	trendingSkillsLimit = 10
	recentActivityLimit = 20
	activitySkillsShown = 3
)

// AnalyticsStore is the read surface the aggregator queries.
type AnalyticsStore interface {
	CountDistinctStudents(ctx context.Context, f db.RecordFilters) (int, error)
	AverageMatch(ctx context.Context, f db.RecordFilters) (int, error)
	CountDepartments(ctx context.Context, f db.RecordFilters) (int, error)
	CountUniqueSkills(ctx context.Context) (int, error)
	DepartmentStats(ctx context.Context, f db.RecordFilters) ([]db.GroupStat, error)
	AcademicYearStats(ctx context.Context, f db.RecordFilters) ([]db.GroupStat, error)
	CompanyStats(ctx context.Context, f db.RecordFilters) ([]db.GroupStat, error)
	MatchScores(ctx context.Context, f db.RecordFilters) ([]int, error)
	PriorityBlobs(ctx context.Context, f db.RecordFilters) ([][]byte, error)
	TopMissingSkills(ctx context.Context, limit int) ([]db.SkillCounter, error)
	TrendingSkills(ctx context.Context, fromWeek, toWeek, year, limit int) ([]db.TrendCounter, error)
	ListRecords(ctx context.Context, f db.RecordFilters) ([]db.SkillGapRecord, error)
}

// Aggregator assembles the dashboard snapshot from the persisted state.
type Aggregator struct {
	store AnalyticsStore
	now   func() time.Time
}

// NewAggregator creates an Aggregator backed by the given store.
func NewAggregator(store AnalyticsStore) *Aggregator {
	return &Aggregator{
		store: store,
		now:   time.Now,
	}
}

// Aggregate builds the analytics snapshot for the given filter. It never
// fails: any internal error is logged and a well-defined zeroed snapshot is
// returned so the dashboard renders instead of crashing.
func (a *Aggregator) Aggregate(ctx context.Context, filter types.SnapshotFilter) *types.Snapshot {
	snapshot, err := a.aggregate(ctx, filter)
	if err != nil {
		log.Printf("analytics aggregation degraded to empty snapshot: %v", err)
		return types.EmptySnapshot()
	}
	return snapshot
}

func (a *Aggregator) aggregate(ctx context.Context, filter types.SnapshotFilter) (*types.Snapshot, error) {
	f := db.RecordFilters{
		Department:   filter.Department,
		AcademicYear: filter.AcademicYear,
	}
	snapshot := types.EmptySnapshot()

	var (
		topSkills []db.SkillCounter
		trending  []db.TrendCounter
		scores    []int
		blobs     [][]byte
		recent    []db.SkillGapRecord
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if snapshot.Stats.TotalStudents, err = a.store.CountDistinctStudents(gCtx, f); err != nil {
			return err
		}
		if snapshot.Stats.AverageMatch, err = a.store.AverageMatch(gCtx, f); err != nil {
			return err
		}
		if snapshot.Stats.TotalDepartments, err = a.store.CountDepartments(gCtx, f); err != nil {
			return err
		}
		snapshot.Stats.UniqueSkills, err = a.store.CountUniqueSkills(gCtx)
		return err
	})

	g.Go(func() error {
		stats, err := a.store.DepartmentStats(gCtx, f)
		if err != nil {
			return err
		}
		for _, s := range stats {
			snapshot.DepartmentStats = append(snapshot.DepartmentStats, types.DepartmentStat{
				Department: s.Key, Count: s.Count, AvgMatch: s.AvgMatch,
			})
		}
		return nil
	})

	g.Go(func() error {
		stats, err := a.store.AcademicYearStats(gCtx, f)
		if err != nil {
			return err
		}
		for _, s := range stats {
			snapshot.AcademicYearStats = append(snapshot.AcademicYearStats, types.AcademicYearStat{
				Year: s.Key, Count: s.Count, AvgMatch: s.AvgMatch,
			})
		}
		return nil
	})

	g.Go(func() error {
		stats, err := a.store.CompanyStats(gCtx, f)
		if err != nil {
			return err
		}
		for _, s := range stats {
			snapshot.CompanyStats = append(snapshot.CompanyStats, types.CompanyStat{
				Company: s.Key, StudentCount: s.Count, AvgReadiness: s.AvgMatch,
			})
		}
		return nil
	})

	g.Go(func() error {
		var err error
		topSkills, err = a.store.TopMissingSkills(gCtx, topSkillsLimit)
		return err
	})

	g.Go(func() error {
		fromWeek, toWeek, year := trendWindow(a.now())
		var err error
		trending, err = a.store.TrendingSkills(gCtx, fromWeek, toWeek, year, trendingSkillsLimit)
		return err
	})

	g.Go(func() error {
		var err error
		scores, err = a.store.MatchScores(gCtx, f)
		return err
	})

	g.Go(func() error {
		var err error
		blobs, err = a.store.PriorityBlobs(gCtx, f)
		return err
	})

	g.Go(func() error {
		recentFilters := f
		recentFilters.Limit = recentActivityLimit
		var err error
		recent, err = a.store.ListRecords(gCtx, recentFilters)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, c := range topSkills {
		snapshot.TopMissingSkills = append(snapshot.TopMissingSkills, types.SkillCount{
			Skill: c.Skill, Count: c.Count,
		})
	}
	for _, c := range trending {
		snapshot.TrendingSkills = append(snapshot.TrendingSkills, types.TrendingSkill{
			Skill: c.Skill, Total: c.Count, Trend: "rising",
		})
	}
	snapshot.MatchDistribution = Distribute(scores)
	snapshot.SkillPriorityBreakdown = breakdownPriorities(blobs)
	for _, rec := range recent {
		snapshot.RecentActivity = append(snapshot.RecentActivity, activityEntry(rec))
	}
	snapshot.Alerts = GenerateAlerts(snapshot.TopMissingSkills, snapshot.TrendingSkills, snapshot.MatchDistribution)

	return snapshot, nil
}

// Distribute buckets match scores into the four fixed bands:
// high [80,100], medium [60,79], low [40,59], veryLow [0,39].
func Distribute(scores []int) types.MatchDistribution {
	var d types.MatchDistribution
	for _, s := range scores {
		switch {
		case s >= 80:
			d.High++
		case s >= 60:
			d.Medium++
		case s >= 40:
			d.Low++
		default:
			d.VeryLow++
		}
	}
	return d
}

// breakdownPriorities unions the per-tier skill names across all stored
// priority blobs. Each blob is decoded defensively; a malformed entry
// contributes nothing rather than failing the aggregate.
func breakdownPriorities(blobs [][]byte) types.PriorityBreakdown {
	breakdown := types.PriorityBreakdown{
		Critical:  []string{},
		Important: []string{},
		Optional:  []string{},
	}
	seenCritical := make(map[string]bool)
	seenImportant := make(map[string]bool)
	seenOptional := make(map[string]bool)

	for _, blob := range blobs {
		var p types.SkillPriority
		if err := json.Unmarshal(blob, &p); err != nil {
			continue
		}
		breakdown.Critical = appendUnique(breakdown.Critical, p.Critical, seenCritical)
		breakdown.Important = appendUnique(breakdown.Important, p.Important, seenImportant)
		breakdown.Optional = appendUnique(breakdown.Optional, p.Optional, seenOptional)
	}
	return breakdown
}

func appendUnique(dst, src []string, seen map[string]bool) []string {
	for _, s := range src {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		dst = append(dst, s)
	}
	return dst
}

// activityEntry reduces a record to its dashboard display tuple.
func activityEntry(rec db.SkillGapRecord) types.ActivityEntry {
	top := rec.MissingSkills
	if len(top) > activitySkillsShown {
		top = top[:activitySkillsShown]
	}
	return types.ActivityEntry{
		StudentName:  rec.StudentName,
		Timestamp:    rec.CreatedAt,
		Department:   rec.Department,
		AcademicYear: rec.AcademicYear,
		JobRole:      rec.JobRole,
		CompanyName:  rec.CompanyName,
		MatchScore:   rec.MatchScore,
		TopMissing:   top,
	}
}

package types

import "time"

// SnapshotFilter narrows analytics queries to a department and/or academic year.
// Empty fields mean "all".
type SnapshotFilter struct {
	Department   string `json:"department,omitempty"`
	AcademicYear string `json:"academic_year,omitempty"`
}

// Stats holds the top-level dashboard counters.
type Stats struct {
	TotalStudents    int `json:"totalStudents"`
	UniqueSkills     int `json:"uniqueSkills"`
	AverageMatch     int `json:"averageMatch"`
	TotalDepartments int `json:"totalDepartments"`
}

// SkillCount is one row of the top-missing-skills ranking.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// DepartmentStat is a per-department grouping with count and rounded average match.
type DepartmentStat struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
	AvgMatch   int    `json:"avgMatch"`
}

// AcademicYearStat is a per-academic-year grouping.
type AcademicYearStat struct {
	Year     string `json:"year"`
	Count    int    `json:"count"`
	AvgMatch int    `json:"avgMatch"`
}

// CompanyStat is a per-target-company grouping.
type CompanyStat struct {
	Company      string `json:"company"`
	StudentCount int    `json:"studentCount"`
	AvgReadiness int    `json:"avgReadiness"`
}

// TrendingSkill is one skill ranked by its occurrence total over the trailing
// four ISO weeks.
type TrendingSkill struct {
	Skill string `json:"skill"`
	Total int    `json:"total"`
	Trend string `json:"trend"`
}

// MatchDistribution buckets match scores into four fixed bands:
// high [80,100], medium [60,79], low [40,59], veryLow [0,39].
type MatchDistribution struct {
	High    int `json:"high"`
	Medium  int `json:"medium"`
	Low     int `json:"low"`
	VeryLow int `json:"veryLow"`
}

// Total returns the number of records counted across all bands.
func (d MatchDistribution) Total() int {
	return d.High + d.Medium + d.Low + d.VeryLow
}

// PriorityBreakdown holds the deduplicated skill names per priority tier
// across the filtered record set.
type PriorityBreakdown struct {
	Critical  []string `json:"critical"`
	Important []string `json:"important"`
	Optional  []string `json:"optional"`
}

// ActivityEntry is one recent submission reduced to a display tuple.
type ActivityEntry struct {
	StudentName  string    `json:"studentName"`
	Timestamp    time.Time `json:"timestamp"`
	Department   string    `json:"department"`
	AcademicYear string    `json:"academicYear"`
	JobRole      string    `json:"jobRole"`
	CompanyName  string    `json:"companyName"`
	MatchScore   int       `json:"matchScore"`
	TopMissing   []string  `json:"topMissing"`
}

// AlertSeverity grades how urgent an alert is.
type AlertSeverity string

// Alert severities.
const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
)

// Alert is a derived, human-readable dashboard notice. Alerts are recomputed
// on every aggregation call and never persisted.
type Alert struct {
	Severity    AlertSeverity `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Count       int           `json:"count,omitempty"`
	Action      string        `json:"action,omitempty"`
}

// Snapshot is the complete analytics payload consumed by the dashboard.
type Snapshot struct {
	Stats                  Stats              `json:"stats"`
	TopMissingSkills       []SkillCount       `json:"topMissingSkills"`
	DepartmentStats        []DepartmentStat   `json:"departmentStats"`
	AcademicYearStats      []AcademicYearStat `json:"academicYearStats"`
	CompanyStats           []CompanyStat      `json:"companyStats"`
	TrendingSkills         []TrendingSkill    `json:"trendingSkills"`
	MatchDistribution      MatchDistribution  `json:"matchDistribution"`
	SkillPriorityBreakdown PriorityBreakdown  `json:"skillPriorityBreakdown"`
	RecentActivity         []ActivityEntry    `json:"recentActivity"`
	Alerts                 []Alert            `json:"alerts"`
}

// EmptySnapshot returns a fully zeroed snapshot with non-nil slices so the
// dashboard always receives well-formed JSON, even when aggregation fails.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		TopMissingSkills:  []SkillCount{},
		DepartmentStats:   []DepartmentStat{},
		AcademicYearStats: []AcademicYearStat{},
		CompanyStats:      []CompanyStat{},
		TrendingSkills:    []TrendingSkill{},
		SkillPriorityBreakdown: PriorityBreakdown{
			Critical:  []string{},
			Important: []string{},
			Optional:  []string{},
		},
		RecentActivity: []ActivityEntry{},
		Alerts:         []Alert{},
	}
}

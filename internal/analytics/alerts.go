package analytics

import (
	"fmt"
	"math"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// Alert thresholds.
const (
	// criticalSkillThreshold is the cumulative missing-count above which the
	// top skill triggers a critical alert. A count of exactly 5 does not.
	criticalSkillThreshold = 5
	// lowReadinessFraction is the share of low + veryLow records above which
	// the overall readiness warning fires.
	lowReadinessFraction = 0.40
)

// GenerateAlerts derives dashboard alerts from the aggregated state. Rules
// are evaluated independently; zero or more alerts are emitted. Alerts are
// recomputed on every aggregation call and never persisted.
func GenerateAlerts(topSkills []types.SkillCount, trending []types.TrendingSkill, dist types.MatchDistribution) []types.Alert {
	alerts := []types.Alert{}

	if len(topSkills) > 0 && topSkills[0].Count > criticalSkillThreshold {
		top := topSkills[0]
		alerts = append(alerts, types.Alert{
			Severity:    types.SeverityCritical,
			Title:       "Widespread skill gap",
			Description: fmt.Sprintf("%q is missing from %d submissions", top.Skill, top.Count),
			Count:       top.Count,
			Action:      fmt.Sprintf("Consider a workshop or course module covering %s", top.Skill),
		})
	}

	if len(trending) > 0 {
		top := trending[0]
		alerts = append(alerts, types.Alert{
			Severity:    types.SeverityWarning,
			Title:       "Trending skill demand",
			Description: fmt.Sprintf("%q appeared %d times over the last 4 weeks", top.Skill, top.Total),
			Count:       top.Total,
		})
	}

	if total := dist.Total(); total > 0 {
		lowFraction := float64(dist.Low+dist.VeryLow) / float64(total)
		if lowFraction > lowReadinessFraction {
			pct := int(math.Round(lowFraction * 100))
			alerts = append(alerts, types.Alert{
				Severity:    types.SeverityWarning,
				Title:       "Overall readiness concern",
				Description: fmt.Sprintf("%d%% of submissions score below 60", pct),
			})
		}
	}

	return alerts
}

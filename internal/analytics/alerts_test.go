package analytics

import (
	"testing"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

func TestGenerateAlerts_TopSkillThreshold(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"below threshold", 4, 0},
		{"exactly at threshold does not fire", 5, 0},
		{"above threshold fires", 6, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := GenerateAlerts(
				[]types.SkillCount{{Skill: "Docker", Count: tt.count}},
				nil,
				types.MatchDistribution{},
			)
			if len(alerts) != tt.want {
				t.Fatalf("got %d alerts, want %d", len(alerts), tt.want)
			}
			if tt.want == 1 {
				if alerts[0].Severity != types.SeverityCritical {
					t.Errorf("severity = %s, want critical", alerts[0].Severity)
				}
				if alerts[0].Count != tt.count {
					t.Errorf("count = %d, want %d", alerts[0].Count, tt.count)
				}
				if alerts[0].Action == "" {
					t.Error("critical alert must carry a suggested action")
				}
			}
		})
	}
}

func TestGenerateAlerts_Trending(t *testing.T) {
	alerts := GenerateAlerts(nil, []types.TrendingSkill{
		{Skill: "Rust", Total: 7, Trend: "rising"},
		{Skill: "Terraform", Total: 3, Trend: "rising"},
	}, types.MatchDistribution{})

	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	if alerts[0].Severity != types.SeverityWarning {
		t.Errorf("severity = %s, want warning", alerts[0].Severity)
	}
	if alerts[0].Count != 7 {
		t.Errorf("count = %d, want the top trending total", alerts[0].Count)
	}
}

func TestGenerateAlerts_LowReadiness(t *testing.T) {
	tests := []struct {
		name string
		dist types.MatchDistribution
		want int
	}{
		{"no records, no division by zero", types.MatchDistribution{}, 0},
		{"exactly 40% does not fire", types.MatchDistribution{High: 3, Medium: 3, Low: 2, VeryLow: 2}, 0},
		{"above 40% fires", types.MatchDistribution{High: 2, Medium: 3, Low: 3, VeryLow: 2}, 1},
		{"all low fires", types.MatchDistribution{VeryLow: 5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := GenerateAlerts(nil, nil, tt.dist)
			if len(alerts) != tt.want {
				t.Fatalf("got %d alerts, want %d", len(alerts), tt.want)
			}
		})
	}
}

func TestGenerateAlerts_RulesAreIndependent(t *testing.T) {
	alerts := GenerateAlerts(
		[]types.SkillCount{{Skill: "Docker", Count: 12}},
		[]types.TrendingSkill{{Skill: "Rust", Total: 4, Trend: "rising"}},
		types.MatchDistribution{Low: 5, VeryLow: 5},
	)
	if len(alerts) != 3 {
		t.Fatalf("got %d alerts, want all 3 rules firing", len(alerts))
	}
	if alerts[0].Severity != types.SeverityCritical {
		t.Error("first alert should be the critical skill gap")
	}
}

func TestGenerateAlerts_EmptyInputs(t *testing.T) {
	alerts := GenerateAlerts(nil, nil, types.MatchDistribution{})
	if alerts == nil {
		t.Fatal("alerts must be non-nil for JSON rendering")
	}
	if len(alerts) != 0 {
		t.Errorf("got %d alerts, want 0", len(alerts))
	}
}

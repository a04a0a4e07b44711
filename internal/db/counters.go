package db

import (
	"context"
	"fmt"
)

// UpsertSkillCounter bumps the missing-count for (skill, department), creating
// the row at count = 1 when absent. The whole upsert is a single atomic
// statement; the store's own locking resolves concurrent increments.
func (db *DB) UpsertSkillCounter(ctx context.Context, skill, department string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO skill_counters (skill, department, count, last_seen)
		 VALUES ($1, $2, 1, NOW())
		 ON CONFLICT (skill, department)
		 DO UPDATE SET count = skill_counters.count + 1, last_seen = NOW()`,
		skill, department,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert skill counter %s: %w", skill, err)
	}
	return nil
}

// UpsertTrendCounter bumps the occurrence count for (skill, week, year).
func (db *DB) UpsertTrendCounter(ctx context.Context, skill string, week, year int) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO trend_counters (skill, week, year, count)
		 VALUES ($1, $2, $3, 1)
		 ON CONFLICT (skill, week, year)
		 DO UPDATE SET count = trend_counters.count + 1`,
		skill, week, year,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert trend counter %s: %w", skill, err)
	}
	return nil
}

// TopMissingSkills returns the top-N skills by cumulative missing-count across
// all departments.
func (db *DB) TopMissingSkills(ctx context.Context, limit int) ([]SkillCounter, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT skill, SUM(count) AS total
		 FROM skill_counters
		 GROUP BY skill
		 ORDER BY total DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query top missing skills: %w", err)
	}
	defer rows.Close()

	var counters []SkillCounter
	for rows.Next() {
		var c SkillCounter
		if err := rows.Scan(&c.Skill, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan skill counter: %w", err)
		}
		counters = append(counters, c)
	}
	return counters, nil
}

// TrendingSkills sums per-skill occurrences over the ISO weeks [fromWeek, toWeek]
// of the given year, ranked descending, top N.
func (db *DB) TrendingSkills(ctx context.Context, fromWeek, toWeek, year, limit int) ([]TrendCounter, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT skill, SUM(count) AS total
		 FROM trend_counters
		 WHERE week BETWEEN $1 AND $2 AND year = $3
		 GROUP BY skill
		 ORDER BY total DESC
		 LIMIT $4`,
		fromWeek, toWeek, year, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query trending skills: %w", err)
	}
	defer rows.Close()

	var counters []TrendCounter
	for rows.Next() {
		var c TrendCounter
		if err := rows.Scan(&c.Skill, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan trend counter: %w", err)
		}
		c.Year = year
		counters = append(counters, c)
	}
	return counters, nil
}

// CountUniqueSkills returns the number of distinct skills ever recorded missing.
func (db *DB) CountUniqueSkills(ctx context.Context) (int, error) {
	var n int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(DISTINCT skill) FROM skill_counters`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count unique skills: %w", err)
	}
	return n, nil
}

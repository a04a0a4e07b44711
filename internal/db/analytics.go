package db

import (
	"context"
	"fmt"
)

// filterClause appends department/academic-year conditions to a query that
// already ends in a WHERE clause. Filters apply uniformly to top-level counts
// and to the group-by breakdowns.
func filterClause(f RecordFilters, query string, args []any) (string, []any) {
	argNum := len(args) + 1
	if f.Department != "" {
		query += fmt.Sprintf(" AND department = $%d", argNum)
		args = append(args, f.Department)
		argNum++
	}
	if f.AcademicYear != "" {
		query += fmt.Sprintf(" AND academic_year = $%d", argNum)
		args = append(args, f.AcademicYear)
	}
	return query, args
}

// CountDistinctStudents counts distinct student identifiers under the filter.
// Registered submissions are identified by user ID, anonymous ones by name.
func (db *DB) CountDistinctStudents(ctx context.Context, f RecordFilters) (int, error) {
	query := `SELECT COUNT(DISTINCT COALESCE(user_id::text, student_name))
		 FROM skill_gap_records WHERE 1=1`
	query, args := filterClause(f, query, nil)

	var n int
	if err := db.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return n, nil
}

// AverageMatch returns the rounded average match score under the filter,
// or 0 when no records match.
func (db *DB) AverageMatch(ctx context.Context, f RecordFilters) (int, error) {
	query := `SELECT COALESCE(ROUND(AVG(match_score)), 0)
		 FROM skill_gap_records WHERE 1=1`
	query, args := filterClause(f, query, nil)

	var avg int
	if err := db.pool.QueryRow(ctx, query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to average match score: %w", err)
	}
	return avg, nil
}

// CountDepartments counts distinct non-empty departments under the filter.
func (db *DB) CountDepartments(ctx context.Context, f RecordFilters) (int, error) {
	query := `SELECT COUNT(DISTINCT department)
		 FROM skill_gap_records WHERE department <> ''`
	query, args := filterClause(f, query, nil)

	var n int
	if err := db.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}
	return n, nil
}

// GroupStat is one row of a grouped count + rounded average match query.
type GroupStat struct {
	Key      string
	Count    int
	AvgMatch int
}

// groupBy runs a count/avg aggregation grouped by the given column.
func (db *DB) groupBy(ctx context.Context, column string, f RecordFilters) ([]GroupStat, error) {
	query := fmt.Sprintf(`SELECT %s, COUNT(*), COALESCE(ROUND(AVG(match_score)), 0)
		 FROM skill_gap_records WHERE %s <> ''`, column, column)
	query, args := filterClause(f, query, nil)
	query += fmt.Sprintf(" GROUP BY %s ORDER BY COUNT(*) DESC", column)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to group by %s: %w", column, err)
	}
	defer rows.Close()

	var stats []GroupStat
	for rows.Next() {
		var s GroupStat
		if err := rows.Scan(&s.Key, &s.Count, &s.AvgMatch); err != nil {
			return nil, fmt.Errorf("failed to scan group stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// DepartmentStats groups filtered records by department.
func (db *DB) DepartmentStats(ctx context.Context, f RecordFilters) ([]GroupStat, error) {
	return db.groupBy(ctx, "department", f)
}

// AcademicYearStats groups filtered records by academic year.
func (db *DB) AcademicYearStats(ctx context.Context, f RecordFilters) ([]GroupStat, error) {
	return db.groupBy(ctx, "academic_year", f)
}

// CompanyStats groups filtered records by target company.
func (db *DB) CompanyStats(ctx context.Context, f RecordFilters) ([]GroupStat, error) {
	return db.groupBy(ctx, "company_name", f)
}

// MatchScores returns the raw per-record score list under the filter.
func (db *DB) MatchScores(ctx context.Context, f RecordFilters) ([]int, error) {
	query := `SELECT match_score FROM skill_gap_records WHERE 1=1`
	query, args := filterClause(f, query, nil)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query match scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var s int
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan match score: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, nil
}

// PriorityBlobs returns the raw skill_priority JSONB blobs under the filter.
// Callers decode each blob defensively.
func (db *DB) PriorityBlobs(ctx context.Context, f RecordFilters) ([][]byte, error) {
	query := `SELECT skill_priority FROM skill_gap_records WHERE 1=1`
	query, args := filterClause(f, query, nil)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query priority blobs: %w", err)
	}
	defer rows.Close()

	var blobs [][]byte
	for rows.Next() {
		var b []byte
		if err := rows.Scan(&b); err != nil {
			return nil, fmt.Errorf("failed to scan priority blob: %w", err)
		}
		blobs = append(blobs, b)
	}
	return blobs, nil
}

package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// PGRepo is a Postgres-backed corpus source reading from the jobs table.
type PGRepo struct {
	DB *sql.DB
}

// Search returns postings matching any query keyword against title or
// description, newest first, up to q.Limit.
func (r *PGRepo) Search(ctx context.Context, q Query) ([]JobPosting, error) {
	query := `
SELECT id, title, company, location, description, salary, url, posted_date, required_skills
FROM jobs`

	var (
		args    []any
		clauses []string
	)
	for _, kw := range q.Keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		args = append(args, "%"+kw+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if len(clauses) > 0 {
		query += "\nWHERE " + strings.Join(clauses, " OR ")
	}
	query += "\nORDER BY posted_date DESC NULLS LAST, id ASC"
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf("\nLIMIT $%d", len(args))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var out []JobPosting
	for rows.Next() {
		var (
			posting    JobPosting
			salary     sql.NullString
			postedDate sql.NullTime
			skillsRaw  []byte
		)
		if err := rows.Scan(
			&posting.ID,
			&posting.Title,
			&posting.Company,
			&posting.Location,
			&posting.Description,
			&salary,
			&posting.URL,
			&postedDate,
			&skillsRaw,
		); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		posting.Salary = salary.String
		if postedDate.Valid {
			posting.PostedDate = postedDate.Time.Format("2006-01-02")
		}
		if len(skillsRaw) > 0 {
			if err := json.Unmarshal(skillsRaw, &posting.RequiredSkills); err != nil {
				return nil, fmt.Errorf("%w: required_skills for %s: %v", ErrUnavailable, posting.ID, err)
			}
		}
		out = append(out, posting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out, nil
}

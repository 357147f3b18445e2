package postgres

import (
	"fmt"
	"strings"
)

// queryBuilder accumulates WHERE conditions with positional placeholders. All
// listing endpoints share it instead of duplicating query assembly per entity.
type queryBuilder struct {
	conds []string
	args  []interface{}
}

func (q *queryBuilder) next() int {
	return len(q.args) + 1
}

// Eq appends an exact-match condition.
func (q *queryBuilder) Eq(col string, v interface{}) {
	q.conds = append(q.conds, fmt.Sprintf("%s = $%d", col, q.next()))
	q.args = append(q.args, v)
}

// ILike appends a case-insensitive substring condition.
func (q *queryBuilder) ILike(col, v string) {
	q.conds = append(q.conds, fmt.Sprintf("%s ILIKE $%d", col, q.next()))
	q.args = append(q.args, "%"+v+"%")
}

// Between appends an inclusive range condition.
func (q *queryBuilder) Between(col string, from, to interface{}) {
	q.conds = append(q.conds, fmt.Sprintf("%s BETWEEN $%d AND $%d", col, q.next(), q.next()+1))
	q.args = append(q.args, from, to)
}

// GTE appends an inclusive lower-bound condition.
func (q *queryBuilder) GTE(col string, v interface{}) {
	q.conds = append(q.conds, fmt.Sprintf("%s >= $%d", col, q.next()))
	q.args = append(q.args, v)
}

// LTE appends an inclusive upper-bound condition.
func (q *queryBuilder) LTE(col string, v interface{}) {
	q.conds = append(q.conds, fmt.Sprintf("%s <= $%d", col, q.next()))
	q.args = append(q.args, v)
}

// Build returns base plus the accumulated WHERE clause and arguments.
func (q *queryBuilder) Build(base string) (string, []interface{}) {
	if len(q.conds) == 0 {
		return base, nil
	}
	return base + " WHERE " + strings.Join(q.conds, " AND "), q.args
}

// Paginate appends LIMIT/OFFSET to an already built query.
func (q *queryBuilder) Paginate(query string, limit, offset int) (string, []interface{}) {
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", q.next(), q.next()+1)
	q.args = append(q.args, limit, offset)
	return query, q.args
}

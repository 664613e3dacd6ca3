package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campushub-dev/campushub/internal/domain"
)

// listPredicates is shared by the page query and the count fallback so
// search and status filtering always run in the same stage that
// determines the total. $1 community, $2 search, $3 filter.
const listPredicates = `
    t.community_id = $1
    AND ($2 = ''
        OR strpos(lower(t.title), lower($2)) > 0
        OR strpos(lower(t.content), lower($2)) > 0
        OR EXISTS (SELECT 1 FROM unnest(t.tags) AS tag WHERE strpos(lower(tag), lower($2)) > 0))
    AND (CASE $3
        WHEN 'resolved' THEN t.is_resolved
        WHEN 'unresolved' THEN NOT t.is_resolved
        WHEN 'pinned' THEN t.is_pinned
        ELSE TRUE
    END)
`

func orderClause(sortBy domain.SortBy) string {
	// ties always break by created_at desc, then id for determinism
	switch sortBy {
	case domain.SortPopular:
		return "r.reply_count DESC, t.created_at DESC, t.id"
	case domain.SortUpvotes:
		return "COALESCE(array_length(v.upvoters, 1), 0) - COALESCE(array_length(v.downvoters, 1), 0) DESC, t.created_at DESC, t.id"
	default: // recent
		return "t.created_at DESC, t.id"
	}
}

// ListThreads returns one page of matching threads (without reply bodies)
// and the total number of matching threads.
func (s *Storage) ListThreads(p domain.ThreadQuery) ([]domain.Thread, int, error) {
	// A repeatable read transaction keeps the page and the empty-page
	// recount on one snapshot, so the total always describes the same
	// state as the returned rows.
	tx, err := s.db.BeginTx(context.Background(), &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
        SELECT
            t.id, t.community_id, t.author_id, t.author_name, t.title, t.content, t.tags,
            t.created_at, t.is_pinned, t.is_resolved, t.view_count,
            v.upvoters, v.downvoters, r.reply_count,
            COUNT(*) OVER() AS total_count
        FROM threads t
        CROSS JOIN LATERAL (
            SELECT
                COALESCE(array_agg(user_id) FILTER (WHERE value = 1), '{}'::bigint[]) AS upvoters,
                COALESCE(array_agg(user_id) FILTER (WHERE value = -1), '{}'::bigint[]) AS downvoters
            FROM thread_votes WHERE thread_id = t.id
        ) v
        CROSS JOIN LATERAL (
            SELECT COUNT(*)::int AS reply_count FROM replies WHERE thread_id = t.id
        ) r
        WHERE %s
        ORDER BY %s
        LIMIT $4 OFFSET $5
    `, listPredicates, orderClause(p.SortBy))

	rows, err := tx.Query(query, p.CommunityId, p.Search, string(p.Filter), p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.Thread
	var total int
	for rows.Next() {
		var m domain.ThreadMetadata
		if err := rows.Scan(
			&m.Id, &m.CommunityId, &m.Author.Id, &m.Author.DisplayName, &m.Title, &m.Content, &m.Tags,
			&m.CreatedAt, &m.IsPinned, &m.IsResolved, &m.ViewCount,
			&m.Upvoters, &m.Downvoters, &m.ReplyCount,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, domain.Thread{ThreadMetadata: m})
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	// Page past the end returns no rows, so the window total is lost;
	// recount with the same predicates.
	if len(threads) == 0 {
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM threads t WHERE %s", listPredicates)
		if err := tx.QueryRow(countQuery, p.CommunityId, p.Search, string(p.Filter)).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("failed to count threads: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return threads, total, nil
}

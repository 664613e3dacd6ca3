package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/campushub-dev/campushub/internal/domain"
	internal_errors "github.com/campushub-dev/campushub/internal/errors"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// threadMetadataQuery derives the voter sets and reply count in the same
// statement; net score is never stored so it cannot diverge.
const threadMetadataQuery = `
    SELECT
        t.id, t.community_id, t.author_id, t.author_name, t.title, t.content, t.tags,
        t.created_at, t.is_pinned, t.is_resolved, t.view_count,
        v.upvoters, v.downvoters, r.reply_count
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
    WHERE t.id = $1
`

func scanThreadMetadata(row *sql.Row) (domain.ThreadMetadata, error) {
	var m domain.ThreadMetadata
	err := row.Scan(
		&m.Id, &m.CommunityId, &m.Author.Id, &m.Author.DisplayName, &m.Title, &m.Content, &m.Tags,
		&m.CreatedAt, &m.IsPinned, &m.IsResolved, &m.ViewCount,
		&m.Upvoters, &m.Downvoters, &m.ReplyCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadMetadata{}, internal_errors.NotFound("Thread not found")
		}
		return domain.ThreadMetadata{}, fmt.Errorf("failed to fetch thread metadata: %w", err)
	}
	return m, nil
}

func (s *Storage) getThreadMetadata(q queryer, id domain.ThreadId) (domain.ThreadMetadata, error) {
	return scanThreadMetadata(q.QueryRow(threadMetadataQuery, id))
}

func (s *Storage) CreateThread(creationData domain.ThreadCreationData) (domain.Thread, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Verify community exists
	var communityId domain.CommunityId
	err = tx.QueryRow(
		"SELECT id FROM communities WHERE id = $1",
		creationData.CommunityId,
	).Scan(&communityId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound("Community not found")
		}
		return domain.Thread{}, fmt.Errorf("failed to validate community: %w", err)
	}

	var metadata domain.ThreadMetadata
	metadata.CommunityId = communityId
	metadata.Author = creationData.Author
	metadata.Title = creationData.Title
	metadata.Content = creationData.Content
	metadata.Tags = domain.Tags(creationData.Tags)
	metadata.Upvoters = domain.VoterIds{}
	metadata.Downvoters = domain.VoterIds{}
	err = tx.QueryRow(`
        INSERT INTO threads (community_id, author_id, author_name, title, content, tags)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `,
		creationData.CommunityId,
		creationData.Author.Id,
		creationData.Author.DisplayName,
		creationData.Title,
		creationData.Content,
		domain.Tags(creationData.Tags),
	).Scan(&metadata.Id, &metadata.CreatedAt)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Thread{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return domain.Thread{ThreadMetadata: metadata}, nil
}

// GetThread fetches a thread with its full, creation-ordered reply list.
// View counting is a separate operation (RecordView).
func (s *Storage) GetThread(id domain.ThreadId) (domain.Thread, error) {
	metadata, err := s.getThreadMetadata(s.db, id)
	if err != nil {
		return domain.Thread{}, err
	}

	rows, err := s.db.Query(`
        SELECT
            r.id, r.thread_id, r.author_id, r.author_name, r.content, r.created_at, r.is_accepted,
            COALESCE(v.upvoters, '{}'::bigint[])
        FROM replies r
        LEFT JOIN LATERAL (
            SELECT array_agg(user_id) AS upvoters FROM reply_votes WHERE reply_id = r.id
        ) v ON true
        WHERE r.thread_id = $1
        ORDER BY r.created_at, r.id
    `, id)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	var replies []*domain.Reply
	for rows.Next() {
		var reply domain.Reply
		if err := rows.Scan(
			&reply.Id, &reply.ThreadId, &reply.Author.Id, &reply.Author.DisplayName,
			&reply.Content, &reply.CreatedAt, &reply.IsAccepted, &reply.Upvoters,
		); err != nil {
			return domain.Thread{}, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, &reply)
	}
	if err = rows.Err(); err != nil {
		return domain.Thread{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return domain.Thread{ThreadMetadata: metadata, Replies: replies}, nil
}

// RecordView increments the view counter by exactly one.
// Repeated opens by the same user increment repeatedly.
func (s *Storage) RecordView(id domain.ThreadId) error {
	result, err := s.db.Exec("UPDATE threads SET view_count = view_count + 1 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Thread not found")
	}
	return nil
}

func (s *Storage) SetThreadPinned(id domain.ThreadId, pinned bool) (domain.Thread, error) {
	return s.setThreadFlag(id, "is_pinned", pinned)
}

func (s *Storage) SetThreadResolved(id domain.ThreadId, resolved bool) (domain.Thread, error) {
	return s.setThreadFlag(id, "is_resolved", resolved)
}

func (s *Storage) setThreadFlag(id domain.ThreadId, column string, value bool) (domain.Thread, error) {
	// column comes from the two callers above, never from user input
	result, err := s.db.Exec(fmt.Sprintf("UPDATE threads SET %s = $2 WHERE id = $1", column), id, value)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to update %s: %w", column, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.Thread{}, internal_errors.NotFound("Thread not found")
	}
	return s.GetThread(id)
}

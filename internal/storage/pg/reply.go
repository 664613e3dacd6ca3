package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/campushub-dev/campushub/internal/domain"
	internal_errors "github.com/campushub-dev/campushub/internal/errors"
)

func (s *Storage) CreateReply(creationData domain.ReplyCreationData) (domain.Reply, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Reply{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Verify thread exists
	var threadId domain.ThreadId
	err = tx.QueryRow("SELECT id FROM threads WHERE id = $1", creationData.ThreadId).Scan(&threadId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reply{}, internal_errors.NotFound("Thread not found")
		}
		return domain.Reply{}, fmt.Errorf("failed to validate thread: %w", err)
	}

	reply := domain.Reply{
		ThreadId: creationData.ThreadId,
		Author:   creationData.Author,
		Content:  creationData.Content,
		Upvoters: domain.VoterIds{},
	}
	err = tx.QueryRow(`
        INSERT INTO replies (thread_id, author_id, author_name, content)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `,
		creationData.ThreadId,
		creationData.Author.Id,
		creationData.Author.DisplayName,
		creationData.Content,
	).Scan(&reply.Id, &reply.CreatedAt)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("failed to insert reply: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Reply{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return reply, nil
}

func (s *Storage) GetReply(threadId domain.ThreadId, replyId domain.ReplyId) (domain.Reply, error) {
	var reply domain.Reply
	err := s.db.QueryRow(`
        SELECT
            r.id, r.thread_id, r.author_id, r.author_name, r.content, r.created_at, r.is_accepted,
            COALESCE(v.upvoters, '{}'::bigint[])
        FROM replies r
        LEFT JOIN LATERAL (
            SELECT array_agg(user_id) AS upvoters FROM reply_votes WHERE reply_id = r.id
        ) v ON true
        WHERE r.id = $1 AND r.thread_id = $2
    `, replyId, threadId).Scan(
		&reply.Id, &reply.ThreadId, &reply.Author.Id, &reply.Author.DisplayName,
		&reply.Content, &reply.CreatedAt, &reply.IsAccepted, &reply.Upvoters,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reply{}, internal_errors.NotFound("Reply not found")
		}
		return domain.Reply{}, fmt.Errorf("failed to fetch reply: %w", err)
	}
	return reply, nil
}

// SetReplyAccepted marks a reply accepted or not. Accepting a reply
// clears any previously accepted reply of the same thread in the same
// transaction, keeping at most one accepted reply per thread.
func (s *Storage) SetReplyAccepted(threadId domain.ThreadId, replyId domain.ReplyId, accepted bool) (domain.Reply, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Reply{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id domain.ReplyId
	err = tx.QueryRow(
		"SELECT id FROM replies WHERE id = $1 AND thread_id = $2 FOR UPDATE",
		replyId, threadId,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reply{}, internal_errors.NotFound("Reply not found")
		}
		return domain.Reply{}, fmt.Errorf("failed to lock reply: %w", err)
	}

	if accepted {
		if _, err = tx.Exec(
			"UPDATE replies SET is_accepted = FALSE WHERE thread_id = $1 AND is_accepted AND id <> $2",
			threadId, replyId,
		); err != nil {
			return domain.Reply{}, fmt.Errorf("failed to clear previous accepted reply: %w", err)
		}
	}

	if _, err = tx.Exec(
		"UPDATE replies SET is_accepted = $2 WHERE id = $1",
		replyId, accepted,
	); err != nil {
		return domain.Reply{}, fmt.Errorf("failed to update accepted flag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Reply{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.GetReply(threadId, replyId)
}

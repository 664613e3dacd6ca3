package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/campushub-dev/campushub/internal/domain"
	internal_errors "github.com/campushub-dev/campushub/internal/errors"
)

type voteAction int

const (
	voteInsert voteAction = iota
	voteDelete
	voteUpdate
)

// applyVote decides the transition for a cast vote given the user's
// current vote (0 when absent) and the requested value (+1 or -1):
// no vote -> add; same vote -> toggle off; opposite vote -> atomic swap.
func applyVote(current, requested int) voteAction {
	switch {
	case current == 0:
		return voteInsert
	case current == requested:
		return voteDelete
	default:
		return voteUpdate
	}
}

func voteValue(voteType domain.VoteType) int {
	if voteType == domain.Downvote {
		return -1
	}
	return 1
}

// CastThreadVote applies the toggle-off / atomic-swap vote semantics in a
// single transaction. The thread row is locked first so concurrent votes
// on the same thread serialize; votes on different threads do not contend.
func (s *Storage) CastThreadVote(threadId domain.ThreadId, userId domain.UserId, voteType domain.VoteType) (domain.Thread, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id domain.ThreadId
	err = tx.QueryRow("SELECT id FROM threads WHERE id = $1 FOR UPDATE", threadId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound("Thread not found")
		}
		return domain.Thread{}, fmt.Errorf("failed to lock thread: %w", err)
	}

	var current int
	err = tx.QueryRow(
		"SELECT value FROM thread_votes WHERE thread_id = $1 AND user_id = $2",
		threadId, userId,
	).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return domain.Thread{}, fmt.Errorf("failed to read current vote: %w", err)
	}

	requested := voteValue(voteType)
	switch applyVote(current, requested) {
	case voteInsert:
		_, err = tx.Exec(
			"INSERT INTO thread_votes (thread_id, user_id, value) VALUES ($1, $2, $3)",
			threadId, userId, requested,
		)
	case voteDelete:
		_, err = tx.Exec(
			"DELETE FROM thread_votes WHERE thread_id = $1 AND user_id = $2",
			threadId, userId,
		)
	case voteUpdate:
		_, err = tx.Exec(
			"UPDATE thread_votes SET value = $3 WHERE thread_id = $1 AND user_id = $2",
			threadId, userId, requested,
		)
	}
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to apply vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Thread{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.GetThread(threadId)
}

// CastReplyVote toggles the user's upvote on a reply.
// Replies take upvotes only.
func (s *Storage) CastReplyVote(threadId domain.ThreadId, replyId domain.ReplyId, userId domain.UserId) (domain.Reply, error) {
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

	var existing domain.UserId
	err = tx.QueryRow(
		"SELECT user_id FROM reply_votes WHERE reply_id = $1 AND user_id = $2",
		replyId, userId,
	).Scan(&existing)
	switch {
	case err == nil:
		_, err = tx.Exec("DELETE FROM reply_votes WHERE reply_id = $1 AND user_id = $2", replyId, userId)
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.Exec("INSERT INTO reply_votes (reply_id, user_id) VALUES ($1, $2)", replyId, userId)
	default:
		return domain.Reply{}, fmt.Errorf("failed to read current reply vote: %w", err)
	}
	if err != nil {
		return domain.Reply{}, fmt.Errorf("failed to apply reply vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Reply{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.GetReply(threadId, replyId)
}

package api

import (
	"github.com/campushub-dev/campushub/internal/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	CommunityId int64    `json:"community_id" validate:"required"`
	Tags        []string `json:"tags,omitempty"`
}

type VoteRequest struct {
	VoteType string `json:"vote_type" validate:"required,oneof=upvote downvote"`
}

// Response DTOs

// ThreadResponse wraps a thread and exposes the derived net score.
type ThreadResponse struct {
	domain.Thread
	NetScore int `json:"net_score"`
}

func NewThreadResponse(t domain.Thread) ThreadResponse {
	return ThreadResponse{Thread: t, NetScore: t.ThreadMetadata.NetScore()}
}

// ThreadListResponse carries pagination metadata that always describes
// the filtered result set, never the unfiltered one.
type ThreadListResponse struct {
	Threads     []ThreadResponse `json:"threads"`
	TotalPages  int              `json:"total_pages"`
	CurrentPage int              `json:"current_page"`
	TotalCount  int              `json:"total_count"`
}

package api

import (
	"github.com/campushub-dev/campushub/internal/domain"
)

// Request DTOs

type CreateReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

// Response DTOs

type ReplyResponse struct {
	domain.Reply
	Upvotes int `json:"upvotes"`
}

func NewReplyResponse(r domain.Reply) ReplyResponse {
	return ReplyResponse{Reply: r, Upvotes: r.Upvotes()}
}

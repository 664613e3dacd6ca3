package api

import (
	"github.com/campushub-dev/campushub/internal/domain"
)

// Request DTOs

type CreateCommunityRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=academic chillout"`
}

type SetModeratorsRequest struct {
	ModeratorIds []int64 `json:"moderator_ids" validate:"required"`
}

// Response DTOs

// CommunityResponse wraps a community record from the directory adapter.
type CommunityResponse struct {
	domain.Community
}

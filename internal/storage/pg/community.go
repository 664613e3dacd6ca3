package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/campushub-dev/campushub/internal/domain"
	internal_errors "github.com/campushub-dev/campushub/internal/errors"
)

func (s *Storage) CreateCommunity(creationData domain.CommunityCreationData) (domain.Community, error) {
	community := domain.Community{
		Name:         creationData.Name,
		Type:         creationData.Type,
		ModeratorIds: domain.VoterIds{},
		JoinCode:     creationData.JoinCode,
	}
	err := s.db.QueryRow(`
        INSERT INTO communities (name, type, join_code)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `,
		creationData.Name,
		string(creationData.Type),
		creationData.JoinCode,
	).Scan(&community.Id, &community.CreatedAt)
	if err != nil {
		return domain.Community{}, fmt.Errorf("failed to insert community: %w", err)
	}
	return community, nil
}

// GetCommunity is the moderator lookup path; it always reads the
// directory table, never a cache.
func (s *Storage) GetCommunity(id domain.CommunityId) (domain.Community, error) {
	var community domain.Community
	var communityType string
	err := s.db.QueryRow(`
        SELECT id, name, type, moderator_ids, join_code, created_at
        FROM communities WHERE id = $1
    `, id).Scan(
		&community.Id, &community.Name, &communityType,
		&community.ModeratorIds, &community.JoinCode, &community.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Community{}, internal_errors.NotFound("Community not found")
		}
		return domain.Community{}, fmt.Errorf("failed to fetch community: %w", err)
	}
	community.Type = domain.CommunityType(communityType)
	return community, nil
}

// SetModerators replaces the community's moderator set.
// The external directory owns membership; this is its provisioning hook.
func (s *Storage) SetModerators(id domain.CommunityId, moderatorIds []domain.UserId) (domain.Community, error) {
	result, err := s.db.Exec(
		"UPDATE communities SET moderator_ids = $2 WHERE id = $1",
		id, domain.VoterIds(moderatorIds),
	)
	if err != nil {
		return domain.Community{}, fmt.Errorf("failed to update moderators: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.Community{}, internal_errors.NotFound("Community not found")
	}
	return s.GetCommunity(id)
}

package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/campushub-dev/campushub/internal/config"
	"github.com/campushub-dev/campushub/internal/domain"
	"github.com/campushub-dev/campushub/internal/errors"
)

type CommunityService interface {
	Get(id domain.CommunityId) (domain.Community, error)
	Create(name string, communityType domain.CommunityType) (domain.Community, error)
	SetModerators(id domain.CommunityId, moderatorIds []domain.UserId) (domain.Community, error)
}

type Community struct {
	storage CommunityStorage
	cfg     config.Public
}

type CommunityStorage interface {
	CreateCommunity(creationData domain.CommunityCreationData) (domain.Community, error)
	GetCommunity(id domain.CommunityId) (domain.Community, error)
	SetModerators(id domain.CommunityId, moderatorIds []domain.UserId) (domain.Community, error)
}

func NewCommunity(storage CommunityStorage, cfg config.Public) CommunityService {
	return &Community{storage, cfg}
}

func (c *Community) Get(id domain.CommunityId) (domain.Community, error) {
	return c.storage.GetCommunity(id)
}

func (c *Community) Create(name string, communityType domain.CommunityType) (domain.Community, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Community{}, errors.Validation("Community name must not be empty")
	}
	if !communityType.Valid() {
		return domain.Community{}, errors.Validation("Community type must be academic or chillout")
	}

	return c.storage.CreateCommunity(domain.CommunityCreationData{
		Name:     name,
		Type:     communityType,
		JoinCode: c.newJoinCode(),
	})
}

func (c *Community) SetModerators(id domain.CommunityId, moderatorIds []domain.UserId) (domain.Community, error) {
	return c.storage.SetModerators(id, moderatorIds)
}

func (c *Community) newJoinCode() string {
	code := strings.ReplaceAll(uuid.NewString(), "-", "")
	if c.cfg.JoinCodeLen > 0 && c.cfg.JoinCodeLen < len(code) {
		code = code[:c.cfg.JoinCodeLen]
	}
	return code
}

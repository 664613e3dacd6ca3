package domain

import "time"

// Community is owned by the external directory; the engine keeps a
// read model of it for moderator lookups and type-dependent bounds.
type Community struct {
	Id           CommunityId   `json:"id"`
	Name         string        `json:"name"`
	Type         CommunityType `json:"type"`
	ModeratorIds VoterIds      `json:"moderator_ids"`
	JoinCode     string        `json:"join_code,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

func (c *Community) IsModerator(id UserId) bool {
	for _, mod := range c.ModeratorIds {
		if mod == id {
			return true
		}
	}
	return false
}

// to iterate thru layers: handler -> service -> storage
type CommunityCreationData struct {
	Name     string
	Type     CommunityType
	JoinCode string
}

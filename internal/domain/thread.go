package domain

import "time"

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	CommunityId CommunityId
	Author      User
	Title       ThreadTitle
	Content     string
	Tags        []string
}

type ThreadMetadata struct {
	Id          ThreadId      `json:"id"`
	CommunityId CommunityId   `json:"community_id"`
	Author      User          `json:"author"`
	Title       ThreadTitle   `json:"title"`
	Content     string        `json:"content"`
	ContentHtml string        `json:"content_html,omitempty"`
	Tags        Tags          `json:"tags"`
	CreatedAt   time.Time     `json:"created_at"`
	IsPinned    bool          `json:"is_pinned"`
	IsResolved  bool          `json:"is_resolved"`
	Upvoters    VoterIds      `json:"upvoters"`
	Downvoters  VoterIds      `json:"downvoters"`
	ViewCount   int64         `json:"view_count"`
	ReplyCount  int           `json:"reply_count"`
}

// NetScore is always derived, never stored.
func (t *ThreadMetadata) NetScore() int {
	return len(t.Upvoters) - len(t.Downvoters)
}

// HasVoted reports which set, if any, the user currently occupies.
// A user can be in at most one of the two sets.
func (t *ThreadMetadata) HasVoted(id UserId) (VoteType, bool) {
	for _, u := range t.Upvoters {
		if u == id {
			return Upvote, true
		}
	}
	for _, d := range t.Downvoters {
		if d == id {
			return Downvote, true
		}
	}
	return "", false
}

type Thread struct {
	ThreadMetadata
	Replies []*Reply `json:"replies,omitempty"`
}

// ThreadQuery is a fully-validated listing request as storage sees it.
// Search and status filtering run in the same stage as pagination.
type ThreadQuery struct {
	CommunityId CommunityId
	SortBy      SortBy
	Filter      StatusFilter
	Search      string
	Limit       int
	Offset      int
}

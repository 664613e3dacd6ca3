package domain

import "github.com/lib/pq"

type (
	UserId      = int64
	CommunityId = int64
	ThreadId    = int64
	ReplyId     = int64

	ThreadTitle = string

	// stored as postgres arrays
	Tags     = pq.StringArray
	VoterIds = pq.Int64Array
)

// CommunityType selects default moderation/validation policy, not schema.
type CommunityType string

const (
	Academic CommunityType = "academic"
	Chillout CommunityType = "chillout"
)

func (t CommunityType) Valid() bool {
	return t == Academic || t == Chillout
}

type VoteType string

const (
	Upvote   VoteType = "upvote"
	Downvote VoteType = "downvote"
)

func (v VoteType) Valid() bool {
	return v == Upvote || v == Downvote
}

type SortBy string

const (
	SortRecent  SortBy = "recent"
	SortPopular SortBy = "popular"
	SortUpvotes SortBy = "upvotes"
)

func (s SortBy) Valid() bool {
	return s == SortRecent || s == SortPopular || s == SortUpvotes
}

// StatusFilter narrows a listing by pin/resolve state.
type StatusFilter string

const (
	FilterAll        StatusFilter = "all"
	FilterResolved   StatusFilter = "resolved"
	FilterUnresolved StatusFilter = "unresolved"
	FilterPinned     StatusFilter = "pinned"
)

func (f StatusFilter) Valid() bool {
	return f == FilterAll || f == FilterResolved || f == FilterUnresolved || f == FilterPinned
}

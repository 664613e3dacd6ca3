package service

import (
	"github.com/campushub-dev/campushub/internal/domain"
	"github.com/campushub-dev/campushub/internal/errors"
	"github.com/campushub-dev/campushub/internal/moderation"
	"github.com/campushub-dev/campushub/internal/utils"
)

// to mock service in tests
type ThreadService interface {
	Create(creationData domain.ThreadCreationData) (domain.Thread, error)
	Get(id domain.ThreadId) (domain.Thread, error)
	CastVote(id domain.ThreadId, userId domain.UserId, voteType domain.VoteType) (domain.Thread, error)
	SetPinned(id domain.ThreadId, user *domain.User, pinned bool) (domain.Thread, error)
	TogglePinned(id domain.ThreadId, user *domain.User) (domain.Thread, error)
	SetResolved(id domain.ThreadId, user *domain.User, resolved bool) (domain.Thread, error)
	ToggleResolved(id domain.ThreadId, user *domain.User) (domain.Thread, error)
}

type Thread struct {
	storage     ThreadStorage
	communities CommunityGetter
	validator   ThreadValidator
	renderer    Renderer
}

type ThreadStorage interface {
	CreateThread(creationData domain.ThreadCreationData) (domain.Thread, error)
	GetThread(id domain.ThreadId) (domain.Thread, error)
	RecordView(id domain.ThreadId) error
	CastThreadVote(threadId domain.ThreadId, userId domain.UserId, voteType domain.VoteType) (domain.Thread, error)
	SetThreadPinned(id domain.ThreadId, pinned bool) (domain.Thread, error)
	SetThreadResolved(id domain.ThreadId, resolved bool) (domain.Thread, error)
}

// CommunityGetter reads the directory; moderator lists are never cached
// so membership changes apply on the next request.
type CommunityGetter interface {
	GetCommunity(id domain.CommunityId) (domain.Community, error)
}

type ThreadValidator interface {
	Title(title domain.ThreadTitle) error
	Content(content string, communityType domain.CommunityType) error
	Tags(tags []string) error
}

// Renderer turns raw markdown into sanitized HTML for responses.
type Renderer interface {
	Render(text string) string
}

func NewThread(storage ThreadStorage, communities CommunityGetter, validator ThreadValidator, renderer Renderer) ThreadService {
	return &Thread{storage, communities, validator, renderer}
}

func (t *Thread) Create(creationData domain.ThreadCreationData) (domain.Thread, error) {
	// community type drives content length policy
	community, err := t.communities.GetCommunity(creationData.CommunityId)
	if err != nil {
		return domain.Thread{}, err
	}
	if err := t.validator.Title(creationData.Title); err != nil {
		return domain.Thread{}, err
	}
	if err := t.validator.Content(creationData.Content, community.Type); err != nil {
		return domain.Thread{}, err
	}
	creationData.Tags = utils.NormalizeTags(creationData.Tags)
	if err := t.validator.Tags(creationData.Tags); err != nil {
		return domain.Thread{}, err
	}

	thread, err := t.storage.CreateThread(creationData)
	if err != nil {
		return domain.Thread{}, err
	}
	t.render(&thread)
	return thread, nil
}

func (t *Thread) Get(id domain.ThreadId) (domain.Thread, error) {
	// every detail read counts a view, not deduplicated per user
	if err := t.storage.RecordView(id); err != nil {
		return domain.Thread{}, err
	}
	thread, err := t.storage.GetThread(id)
	if err != nil {
		return domain.Thread{}, err
	}
	t.render(&thread)
	return thread, nil
}

func (t *Thread) CastVote(id domain.ThreadId, userId domain.UserId, voteType domain.VoteType) (domain.Thread, error) {
	if !voteType.Valid() {
		return domain.Thread{}, errors.Validation("Vote type must be upvote or downvote")
	}
	thread, err := t.storage.CastThreadVote(id, userId, voteType)
	if err != nil {
		return domain.Thread{}, err
	}
	t.render(&thread)
	return thread, nil
}

func (t *Thread) SetPinned(id domain.ThreadId, user *domain.User, pinned bool) (domain.Thread, error) {
	if _, err := t.authorize(id, user); err != nil {
		return domain.Thread{}, err
	}
	thread, err := t.storage.SetThreadPinned(id, pinned)
	if err != nil {
		return domain.Thread{}, err
	}
	t.render(&thread)
	return thread, nil
}

func (t *Thread) TogglePinned(id domain.ThreadId, user *domain.User) (domain.Thread, error) {
	current, err := t.authorize(id, user)
	if err != nil {
		return domain.Thread{}, err
	}
	thread, err := t.storage.SetThreadPinned(id, !current.IsPinned)
	if err != nil {
		return domain.Thread{}, err
	}
	t.render(&thread)
	return thread, nil
}

func (t *Thread) SetResolved(id domain.ThreadId, user *domain.User, resolved bool) (domain.Thread, error) {
	if _, err := t.authorize(id, user); err != nil {
		return domain.Thread{}, err
	}
	thread, err := t.storage.SetThreadResolved(id, resolved)
	if err != nil {
		return domain.Thread{}, err
	}
	t.render(&thread)
	return thread, nil
}

func (t *Thread) ToggleResolved(id domain.ThreadId, user *domain.User) (domain.Thread, error) {
	current, err := t.authorize(id, user)
	if err != nil {
		return domain.Thread{}, err
	}
	thread, err := t.storage.SetThreadResolved(id, !current.IsResolved)
	if err != nil {
		return domain.Thread{}, err
	}
	t.render(&thread)
	return thread, nil
}

// authorize loads the thread and its community and applies the
// moderation rule. Returns the current thread so togglers can read flags.
func (t *Thread) authorize(id domain.ThreadId, user *domain.User) (domain.Thread, error) {
	thread, err := t.storage.GetThread(id)
	if err != nil {
		return domain.Thread{}, err
	}
	community, err := t.communities.GetCommunity(thread.CommunityId)
	if err != nil {
		return domain.Thread{}, err
	}
	if !moderation.CanModerate(&community, &thread.ThreadMetadata, user) {
		return domain.Thread{}, errors.Authorization("Only community moderators or the thread author can do that")
	}
	return thread, nil
}

func (t *Thread) render(thread *domain.Thread) {
	thread.ContentHtml = t.renderer.Render(thread.Content)
	for _, reply := range thread.Replies {
		reply.ContentHtml = t.renderer.Render(reply.Content)
	}
}

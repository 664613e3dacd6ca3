package service

import (
	"github.com/campushub-dev/campushub/internal/domain"
	"github.com/campushub-dev/campushub/internal/errors"
	"github.com/campushub-dev/campushub/internal/moderation"
)

type ReplyService interface {
	Add(creationData domain.ReplyCreationData) (domain.Reply, error)
	CastVote(threadId domain.ThreadId, replyId domain.ReplyId, userId domain.UserId) (domain.Reply, error)
	SetAccepted(threadId domain.ThreadId, replyId domain.ReplyId, user *domain.User, accepted bool) (domain.Reply, error)
	ToggleAccepted(threadId domain.ThreadId, replyId domain.ReplyId, user *domain.User) (domain.Reply, error)
}

type Reply struct {
	storage     ReplyStorage
	threads     ThreadGetter
	communities CommunityGetter
	validator   ReplyValidator
	renderer    Renderer
}

type ReplyStorage interface {
	CreateReply(creationData domain.ReplyCreationData) (domain.Reply, error)
	GetReply(threadId domain.ThreadId, replyId domain.ReplyId) (domain.Reply, error)
	CastReplyVote(threadId domain.ThreadId, replyId domain.ReplyId, userId domain.UserId) (domain.Reply, error)
	SetReplyAccepted(threadId domain.ThreadId, replyId domain.ReplyId, accepted bool) (domain.Reply, error)
}

type ThreadGetter interface {
	GetThread(id domain.ThreadId) (domain.Thread, error)
}

type ReplyValidator interface {
	Content(content string, communityType domain.CommunityType) error
}

func NewReply(storage ReplyStorage, threads ThreadGetter, communities CommunityGetter, validator ReplyValidator, renderer Renderer) ReplyService {
	return &Reply{storage, threads, communities, validator, renderer}
}

func (r *Reply) Add(creationData domain.ReplyCreationData) (domain.Reply, error) {
	thread, err := r.threads.GetThread(creationData.ThreadId)
	if err != nil {
		return domain.Reply{}, err
	}
	community, err := r.communities.GetCommunity(thread.CommunityId)
	if err != nil {
		return domain.Reply{}, err
	}
	if err := r.validator.Content(creationData.Content, community.Type); err != nil {
		return domain.Reply{}, err
	}

	reply, err := r.storage.CreateReply(creationData)
	if err != nil {
		return domain.Reply{}, err
	}
	reply.ContentHtml = r.renderer.Render(reply.Content)
	return reply, nil
}

func (r *Reply) CastVote(threadId domain.ThreadId, replyId domain.ReplyId, userId domain.UserId) (domain.Reply, error) {
	reply, err := r.storage.CastReplyVote(threadId, replyId, userId)
	if err != nil {
		return domain.Reply{}, err
	}
	reply.ContentHtml = r.renderer.Render(reply.Content)
	return reply, nil
}

func (r *Reply) SetAccepted(threadId domain.ThreadId, replyId domain.ReplyId, user *domain.User, accepted bool) (domain.Reply, error) {
	if err := r.authorize(threadId, user); err != nil {
		return domain.Reply{}, err
	}
	reply, err := r.storage.SetReplyAccepted(threadId, replyId, accepted)
	if err != nil {
		return domain.Reply{}, err
	}
	reply.ContentHtml = r.renderer.Render(reply.Content)
	return reply, nil
}

func (r *Reply) ToggleAccepted(threadId domain.ThreadId, replyId domain.ReplyId, user *domain.User) (domain.Reply, error) {
	if err := r.authorize(threadId, user); err != nil {
		return domain.Reply{}, err
	}
	current, err := r.storage.GetReply(threadId, replyId)
	if err != nil {
		return domain.Reply{}, err
	}
	reply, err := r.storage.SetReplyAccepted(threadId, replyId, !current.IsAccepted)
	if err != nil {
		return domain.Reply{}, err
	}
	reply.ContentHtml = r.renderer.Render(reply.Content)
	return reply, nil
}

// authorize applies the same rule as thread pin/resolve: community
// moderators and the thread author, nobody else.
func (r *Reply) authorize(threadId domain.ThreadId, user *domain.User) error {
	thread, err := r.threads.GetThread(threadId)
	if err != nil {
		return err
	}
	community, err := r.communities.GetCommunity(thread.CommunityId)
	if err != nil {
		return err
	}
	if !moderation.CanModerate(&community, &thread.ThreadMetadata, user) {
		return errors.Authorization("Only community moderators or the thread author can accept replies")
	}
	return nil
}

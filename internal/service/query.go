package service

import (
	"github.com/campushub-dev/campushub/internal/config"
	"github.com/campushub-dev/campushub/internal/domain"
	"github.com/campushub-dev/campushub/internal/errors"
)

// ListRequest carries raw listing inputs from the handler. Zero values
// mean "use the default" for sort, filter and limit.
type ListRequest struct {
	CommunityId domain.CommunityId
	SortBy      domain.SortBy
	Filter      domain.StatusFilter
	Search      string
	Page        int
	Limit       int
}

type ListResult struct {
	Threads     []domain.Thread
	TotalCount  int
	TotalPages  int
	CurrentPage int
}

type QueryService interface {
	List(req ListRequest) (ListResult, error)
}

type Query struct {
	storage     QueryStorage
	communities CommunityGetter
	renderer    Renderer
	cfg         config.Public
}

type QueryStorage interface {
	ListThreads(p domain.ThreadQuery) ([]domain.Thread, int, error)
}

func NewQuery(storage QueryStorage, communities CommunityGetter, renderer Renderer, cfg config.Public) QueryService {
	return &Query{storage, communities, renderer, cfg}
}

func (q *Query) List(req ListRequest) (ListResult, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Page < 1 {
		return ListResult{}, errors.Validation("Page must be a positive number")
	}
	if req.Limit < 0 {
		return ListResult{}, errors.Validation("Limit must be a positive number")
	}
	if req.Limit == 0 {
		req.Limit = q.cfg.DefaultPageSize
	}
	if req.Limit > q.cfg.MaxPageSize {
		req.Limit = q.cfg.MaxPageSize
	}
	if req.SortBy == "" {
		req.SortBy = domain.SortRecent
	}
	if !req.SortBy.Valid() {
		return ListResult{}, errors.Validation("sortBy must be one of: recent, popular, upvotes")
	}
	if req.Filter == "" {
		req.Filter = domain.FilterAll
	}
	if !req.Filter.Valid() {
		return ListResult{}, errors.Validation("filter must be one of: all, resolved, unresolved, pinned")
	}

	// unknown community is a 404, not an empty page
	if _, err := q.communities.GetCommunity(req.CommunityId); err != nil {
		return ListResult{}, err
	}

	threads, total, err := q.storage.ListThreads(domain.ThreadQuery{
		CommunityId: req.CommunityId,
		SortBy:      req.SortBy,
		Filter:      req.Filter,
		Search:      req.Search,
		Limit:       req.Limit,
		Offset:      (req.Page - 1) * req.Limit,
	})
	if err != nil {
		return ListResult{}, err
	}

	for i := range threads {
		threads[i].ContentHtml = q.renderer.Render(threads[i].Content)
	}

	return ListResult{
		Threads:     threads,
		TotalCount:  total,
		TotalPages:  (total + req.Limit - 1) / req.Limit,
		CurrentPage: req.Page,
	}, nil
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub-dev/campushub/internal/config"
	"github.com/campushub-dev/campushub/internal/domain"
	internal_errors "github.com/campushub-dev/campushub/internal/errors"
)

// MockQueryStorage mocks the QueryStorage interface.
type MockQueryStorage struct {
	listThreadsFunc func(p domain.ThreadQuery) ([]domain.Thread, int, error)
}

func (m *MockQueryStorage) ListThreads(p domain.ThreadQuery) ([]domain.Thread, int, error) {
	if m.listThreadsFunc != nil {
		return m.listThreadsFunc(p)
	}
	return nil, 0, nil
}

func queryConfig() config.Public {
	return config.Public{DefaultPageSize: 10, MaxPageSize: 50}
}

func newQueryService(storage *MockQueryStorage, communities *MockCommunityGetter) QueryService {
	return NewQuery(storage, communities, &MockRenderer{}, queryConfig())
}

func TestQueryServiceList(t *testing.T) {
	t.Run("Defaults applied and totals computed", func(t *testing.T) {
		storage := &MockQueryStorage{}
		service := newQueryService(storage, &MockCommunityGetter{})

		var gotQuery domain.ThreadQuery
		storage.listThreadsFunc = func(p domain.ThreadQuery) ([]domain.Thread, int, error) {
			gotQuery = p
			return []domain.Thread{{ThreadMetadata: domain.ThreadMetadata{Id: 1, Content: "body"}}}, 25, nil
		}

		result, err := service.List(ListRequest{CommunityId: 7})

		require.NoError(t, err)
		assert.Equal(t, domain.SortRecent, gotQuery.SortBy)
		assert.Equal(t, domain.FilterAll, gotQuery.Filter)
		assert.Equal(t, 10, gotQuery.Limit, "default page size from config")
		assert.Equal(t, 0, gotQuery.Offset)
		assert.Equal(t, 25, result.TotalCount)
		assert.Equal(t, 3, result.TotalPages, "ceil(25/10)")
		assert.Equal(t, 1, result.CurrentPage)
		require.Len(t, result.Threads, 1)
		assert.Equal(t, "<p>body</p>", result.Threads[0].ContentHtml)
	})

	t.Run("Limit capped at max page size", func(t *testing.T) {
		storage := &MockQueryStorage{}
		service := newQueryService(storage, &MockCommunityGetter{})

		var gotQuery domain.ThreadQuery
		storage.listThreadsFunc = func(p domain.ThreadQuery) ([]domain.Thread, int, error) {
			gotQuery = p
			return nil, 0, nil
		}

		_, err := service.List(ListRequest{CommunityId: 7, Page: 3, Limit: 500})

		require.NoError(t, err)
		assert.Equal(t, 50, gotQuery.Limit)
		assert.Equal(t, 100, gotQuery.Offset, "(page-1)*limit")
	})

	t.Run("Invalid params", func(t *testing.T) {
		storage := &MockQueryStorage{}
		service := newQueryService(storage, &MockCommunityGetter{})
		listCalled := false
		storage.listThreadsFunc = func(p domain.ThreadQuery) ([]domain.Thread, int, error) {
			listCalled = true
			return nil, 0, nil
		}

		for _, req := range []ListRequest{
			{CommunityId: 7, Page: -1},
			{CommunityId: 7, Limit: -5},
			{CommunityId: 7, SortBy: "sideways"},
			{CommunityId: 7, Filter: "locked"},
		} {
			_, err := service.List(req)
			require.Error(t, err)
			e, ok := err.(*internal_errors.ErrorWithStatusCode)
			require.True(t, ok)
			assert.Equal(t, 400, e.StatusCode)
		}
		assert.False(t, listCalled)
	})

	t.Run("Unknown community is 404", func(t *testing.T) {
		storage := &MockQueryStorage{}
		communities := &MockCommunityGetter{}
		service := newQueryService(storage, communities)

		notFound := internal_errors.NotFound("Community not found")
		communities.getCommunityFunc = func(id domain.CommunityId) (domain.Community, error) {
			return domain.Community{}, notFound
		}

		_, err := service.List(ListRequest{CommunityId: 404})

		require.Error(t, err)
		assert.Equal(t, notFound, err)
	})

	t.Run("Search passes through to the query stage", func(t *testing.T) {
		storage := &MockQueryStorage{}
		service := newQueryService(storage, &MockCommunityGetter{})

		var gotQuery domain.ThreadQuery
		storage.listThreadsFunc = func(p domain.ThreadQuery) ([]domain.Thread, int, error) {
			gotQuery = p
			return nil, 3, nil
		}

		result, err := service.List(ListRequest{CommunityId: 7, Search: "exam", SortBy: domain.SortUpvotes, Filter: domain.FilterUnresolved})

		require.NoError(t, err)
		assert.Equal(t, "exam", gotQuery.Search)
		assert.Equal(t, domain.SortUpvotes, gotQuery.SortBy)
		assert.Equal(t, domain.FilterUnresolved, gotQuery.Filter)
		assert.Equal(t, 1, result.TotalPages, "3 matches fit one page")
	})
}

package pg

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub-dev/campushub/internal/domain"
)

func listAll(t *testing.T, p domain.ThreadQuery) []domain.Thread {
	t.Helper()
	threads, _, err := storage.ListThreads(p)
	require.NoError(t, err)
	return threads
}

// Concatenating all pages in order must yield every matching thread
// exactly once, and the total must describe the filtered set.
func TestListThreads_Pagination(t *testing.T) {
	community := mustCreateCommunity(t, domain.Academic)
	author := domain.User{Id: 1, DisplayName: "op"}
	const n = 25
	for i := 0; i < n; i++ {
		mustCreateThread(t, community.Id, author, fmt.Sprintf("pagination thread %02d", i))
	}

	const limit = 10
	seen := make(map[domain.ThreadId]bool)
	var total int
	for page := 1; page <= 3; page++ {
		threads, gotTotal, err := storage.ListThreads(domain.ThreadQuery{
			CommunityId: community.Id,
			SortBy:      domain.SortRecent,
			Filter:      domain.FilterAll,
			Limit:       limit,
			Offset:      (page - 1) * limit,
		})
		require.NoError(t, err)
		total = gotTotal
		for _, thread := range threads {
			assert.False(t, seen[thread.Id], "thread %d returned twice", thread.Id)
			seen[thread.Id] = true
		}
	}
	assert.Equal(t, n, total)
	assert.Len(t, seen, n)

	// page past the end: empty but total still correct
	threads, gotTotal, err := storage.ListThreads(domain.ThreadQuery{
		CommunityId: community.Id,
		SortBy:      domain.SortRecent,
		Filter:      domain.FilterAll,
		Limit:       limit,
		Offset:      100,
	})
	require.NoError(t, err)
	assert.Empty(t, threads)
	assert.Equal(t, n, gotTotal)
}

// Search predicates run in the same stage as pagination, so the total
// describes matches only, regardless of unfiltered thread count.
func TestListThreads_Search(t *testing.T) {
	community := mustCreateCommunity(t, domain.Academic)
	author := domain.User{Id: 1, DisplayName: "op"}
	for i := 0; i < 22; i++ {
		mustCreateThread(t, community.Id, author, fmt.Sprintf("ordinary thread %02d", i))
	}
	mustCreateThread(t, community.Id, author, "EXAM schedule for winter term")
	mustCreateThread(t, community.Id, author, "how to prepare for the final exam")
	_, err := storage.CreateThread(domain.ThreadCreationData{
		CommunityId: community.Id,
		Author:      author,
		Title:       "study group forming",
		Content:     "we meet before every exam in the library",
		Tags:        []string{"study"},
	})
	require.NoError(t, err)

	threads, total, err := storage.ListThreads(domain.ThreadQuery{
		CommunityId: community.Id,
		SortBy:      domain.SortRecent,
		Filter:      domain.FilterAll,
		Search:      "exam",
		Limit:       10,
		Offset:      0,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total, "title matches are case-insensitive and content matches count too")
	assert.Len(t, threads, 3)
}

func TestListThreads_SearchTags(t *testing.T) {
	community := mustCreateCommunity(t, domain.Chillout)
	author := domain.User{Id: 1, DisplayName: "op"}
	mustCreateThread(t, community.Id, author, "tagged thread without keyword")

	_, err := storage.CreateThread(domain.ThreadCreationData{
		CommunityId: community.Id,
		Author:      author,
		Title:       "weekend plans anyone",
		Content:     "who's around on saturday",
		Tags:        []string{"BoardGames", "social"},
	})
	require.NoError(t, err)

	_, total, err := storage.ListThreads(domain.ThreadQuery{
		CommunityId: community.Id,
		SortBy:      domain.SortRecent,
		Filter:      domain.FilterAll,
		Search:      "boardgames",
		Limit:       10,
		Offset:      0,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestListThreads_StatusFilter(t *testing.T) {
	community := mustCreateCommunity(t, domain.Academic)
	author := domain.User{Id: 1, DisplayName: "op"}
	t1 := mustCreateThread(t, community.Id, author, "filter thread one")
	t2 := mustCreateThread(t, community.Id, author, "filter thread two")
	mustCreateThread(t, community.Id, author, "filter thread three")

	_, err := storage.SetThreadResolved(t1.Id, true)
	require.NoError(t, err)
	_, err = storage.SetThreadPinned(t2.Id, true)
	require.NoError(t, err)

	base := domain.ThreadQuery{CommunityId: community.Id, SortBy: domain.SortRecent, Limit: 10}

	base.Filter = domain.FilterResolved
	threads, total, err := storage.ListThreads(base)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, threads, 1)
	assert.Equal(t, t1.Id, threads[0].Id)

	base.Filter = domain.FilterUnresolved
	_, total, err = storage.ListThreads(base)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	base.Filter = domain.FilterPinned
	threads, total, err = storage.ListThreads(base)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, threads, 1)
	assert.Equal(t, t2.Id, threads[0].Id)
}

func TestListThreads_SortByUpvotes(t *testing.T) {
	community := mustCreateCommunity(t, domain.Academic)
	author := domain.User{Id: 1, DisplayName: "op"}

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	mk := func(title string, createdAt time.Time, score int) domain.ThreadId {
		thread := mustCreateThread(t, community.Id, author, title)
		_, err := storage.db.Exec("UPDATE threads SET created_at = $2 WHERE id = $1", thread.Id, createdAt)
		require.NoError(t, err)
		for v := 0; v < score; v++ {
			_, err := storage.CastThreadVote(thread.Id, int64(5000+v), domain.Upvote)
			require.NoError(t, err)
		}
		for v := 0; v > score; v-- {
			_, err := storage.CastThreadVote(thread.Id, int64(6000-v), domain.Downvote)
			require.NoError(t, err)
		}
		return thread.Id
	}

	// scores [3, 3, 1, -2]; the two threads at 3 are split by created_at
	tOld := mk("upvote sort oldest tie", base, 3)
	tNew := mk("upvote sort newest tie", base.Add(time.Hour), 3)
	tMid := mk("upvote sort mid", base.Add(2*time.Hour), 1)
	tNeg := mk("upvote sort negative", base.Add(3*time.Hour), -2)

	threads, _, err := storage.ListThreads(domain.ThreadQuery{
		CommunityId: community.Id,
		SortBy:      domain.SortUpvotes,
		Filter:      domain.FilterAll,
		Limit:       10,
	})
	require.NoError(t, err)
	require.Len(t, threads, 4)

	got := []domain.ThreadId{threads[0].Id, threads[1].Id, threads[2].Id, threads[3].Id}
	// ties broken by created_at desc (newer first), then id
	assert.Equal(t, []domain.ThreadId{tNew, tOld, tMid, tNeg}, got)
}

func TestListThreads_SortByPopularAndRecent(t *testing.T) {
	community := mustCreateCommunity(t, domain.Chillout)
	author := domain.User{Id: 1, DisplayName: "op"}

	quiet := mustCreateThread(t, community.Id, author, "popular sort quiet thread")
	busy := mustCreateThread(t, community.Id, author, "popular sort busy thread")
	for i := 0; i < 3; i++ {
		_, err := storage.CreateReply(domain.ReplyCreationData{
			ThreadId: busy.Id,
			Author:   domain.User{Id: int64(100 + i)},
			Content:  fmt.Sprintf("chatter %d", i),
		})
		require.NoError(t, err)
	}

	threads := listAll(t, domain.ThreadQuery{
		CommunityId: community.Id,
		SortBy:      domain.SortPopular,
		Filter:      domain.FilterAll,
		Limit:       10,
	})
	require.Len(t, threads, 2)
	assert.Equal(t, busy.Id, threads[0].Id)
	assert.Equal(t, 3, threads[0].ReplyCount)

	threads = listAll(t, domain.ThreadQuery{
		CommunityId: community.Id,
		SortBy:      domain.SortRecent,
		Filter:      domain.FilterAll,
		Limit:       10,
	})
	require.Len(t, threads, 2)
	assert.Equal(t, busy.Id, threads[0].Id, "created later, so first under recent")
	assert.Equal(t, quiet.Id, threads[1].Id)
}

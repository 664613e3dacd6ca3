package handler

import (
	"net/http"

	"github.com/campushub-dev/campushub/internal/api"
	"github.com/campushub-dev/campushub/internal/domain"
	mw "github.com/campushub-dev/campushub/internal/middleware"
	"github.com/campushub-dev/campushub/internal/service"
	"github.com/campushub-dev/campushub/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Create(domain.ThreadCreationData{
		CommunityId: body.CommunityId,
		Author:      *user,
		Title:       body.Title,
		Content:     body.Content,
		Tags:        body.Tags,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.NewThreadResponse(thread))
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(r, "thread")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	thread, err := h.thread.Get(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewThreadResponse(thread))
}

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	communityId, err := parseIdParam(r, "community")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	page, err := queryInt(r, "page")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	result, err := h.query.List(service.ListRequest{
		CommunityId: communityId,
		SortBy:      domain.SortBy(q.Get("sortBy")),
		Filter:      domain.StatusFilter(q.Get("filter")),
		Search:      q.Get("search"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.ThreadListResponse{
		Threads:     make([]api.ThreadResponse, 0, len(result.Threads)),
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
		TotalCount:  result.TotalCount,
	}
	for _, thread := range result.Threads {
		response.Threads = append(response.Threads, api.NewThreadResponse(thread))
	}
	writeJSON(w, response)
}

func (h *Handler) VoteThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	threadId, err := parseIdParam(r, "thread")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.VoteRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.CastVote(threadId, user.Id, domain.VoteType(body.VoteType))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewThreadResponse(thread))
}

func (h *Handler) TogglePinnedThread(w http.ResponseWriter, r *http.Request) {
	h.toggleThreadFlag(w, r, h.thread.TogglePinned)
}

func (h *Handler) ToggleResolvedThread(w http.ResponseWriter, r *http.Request) {
	h.toggleThreadFlag(w, r, h.thread.ToggleResolved)
}

func (h *Handler) toggleThreadFlag(w http.ResponseWriter, r *http.Request, toggle func(domain.ThreadId, *domain.User) (domain.Thread, error)) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	threadId, err := parseIdParam(r, "thread")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	thread, err := toggle(threadId, user)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewThreadResponse(thread))
}

package handler

import (
	"net/http"

	"github.com/campushub-dev/campushub/internal/api"
	"github.com/campushub-dev/campushub/internal/domain"
	mw "github.com/campushub-dev/campushub/internal/middleware"
	"github.com/campushub-dev/campushub/internal/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
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

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	reply, err := h.reply.Add(domain.ReplyCreationData{
		ThreadId: threadId,
		Author:   *user,
		Content:  body.Content,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.NewReplyResponse(reply))
}

func (h *Handler) VoteReply(w http.ResponseWriter, r *http.Request) {
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
	replyId, err := parseIdParam(r, "reply")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reply, err := h.reply.CastVote(threadId, replyId, user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewReplyResponse(reply))
}

func (h *Handler) ToggleAcceptedReply(w http.ResponseWriter, r *http.Request) {
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
	replyId, err := parseIdParam(r, "reply")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reply, err := h.reply.ToggleAccepted(threadId, replyId, user)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewReplyResponse(reply))
}

package handler

import (
	"net/http"

	"github.com/campushub-dev/campushub/internal/api"
	"github.com/campushub-dev/campushub/internal/domain"
	"github.com/campushub-dev/campushub/internal/utils"
)

func (h *Handler) GetCommunity(w http.ResponseWriter, r *http.Request) {
	communityId, err := parseIdParam(r, "community")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	community, err := h.community.Get(communityId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// join code is only revealed to admins
	community.JoinCode = ""
	writeJSON(w, api.CommunityResponse{Community: community})
}

// SetModerators replaces the community moderator set. Admin-only,
// enforced by the router; takes effect on the next request since
// moderator lookups are never cached.
func (h *Handler) SetModerators(w http.ResponseWriter, r *http.Request) {
	communityId, err := parseIdParam(r, "community")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.SetModeratorsRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	community, err := h.community.SetModerators(communityId, body.ModeratorIds)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	community.JoinCode = ""
	writeJSON(w, api.CommunityResponse{Community: community})
}

// CreateCommunity is admin-only, enforced by the router.
func (h *Handler) CreateCommunity(w http.ResponseWriter, r *http.Request) {
	var body api.CreateCommunityRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	community, err := h.community.Create(body.Name, domain.CommunityType(body.Type))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.CommunityResponse{Community: community})
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/tobin/ripple-api/internal/api/shared"
	"github.com/tobin/ripple-api/internal/redact"
	"github.com/tobin/ripple-api/internal/service"
)

// SocialHandler handles follow-graph API requests.
type SocialHandler struct {
	socialService service.SocialService
}

// NewSocialHandler creates a new SocialHandler.
func NewSocialHandler(socialService service.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

// Follow handles POST /users/{id}/follow: the authenticated user
// starts following the user identified in the path.
func (h *SocialHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userID, targetID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.socialService.Follow(r.Context(), userID, targetID); err != nil {
		slog.Debug("follow failed", "error", redact.Error(err),
			"follower_id", userID, "followed_id", targetID)
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Unfollow handles DELETE /users/{id}/follow.
func (h *SocialHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID, targetID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.socialService.Unfollow(r.Context(), userID, targetID); err != nil {
		slog.Debug("unfollow failed", "error", redact.Error(err),
			"follower_id", userID, "followed_id", targetID)
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// FollowStatus handles GET /users/{id}/follow: reports whether the
// authenticated user currently follows the user in the path.
func (h *SocialHandler) FollowStatus(w http.ResponseWriter, r *http.Request) {
	userID, targetID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	following, err := h.socialService.IsFollowing(r.Context(), userID, targetID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to check follow status")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FollowStatusResponse{Following: following})
}

// Following handles GET /users/{id}/following: the set of user IDs the
// user in the path follows.
func (h *SocialHandler) Following(w http.ResponseWriter, r *http.Request) {
	targetID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	ids, err := h.socialService.Following(r.Context(), targetID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list followed users")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserIDsResponse{UserIDs: ids})
}

// Followers handles GET /users/{id}/followers.
func (h *SocialHandler) Followers(w http.ResponseWriter, r *http.Request) {
	targetID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	ids, err := h.socialService.Followers(r.Context(), targetID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list followers")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserIDsResponse{UserIDs: ids})
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/tobin/ripple-api/internal/api/shared"
	"github.com/tobin/ripple-api/internal/domain"
	"github.com/tobin/ripple-api/internal/redact"
	"github.com/tobin/ripple-api/internal/service"
)

// FeedHandler serves the authenticated user's home feed.
type FeedHandler struct {
	feedService service.FeedService
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// Feed handles GET /feed: posts from the authenticated user and the
// users they follow, newest first.
func (h *FeedHandler) Feed(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	limit, offset := clampPageParams(pageParams(r))
	posts, err := h.feedService.Feed(r.Context(), userID, limit, offset)
	if err != nil {
		slog.Error("failed to assemble feed", "error", redact.Error(err), "user_id", userID)
		HandleAPIError(w, r, err, "Failed to assemble feed")
		return
	}

	resp := FeedResponse{
		Posts:  make([]PostResponse, 0, len(posts)),
		Limit:  limit,
		Offset: offset,
	}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, NewPostResponse(p))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// clampPageParams normalizes raw limit/offset query values to the page
// bounds the services enforce, so responses echo the effective page.
func clampPageParams(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = service.DefaultFeedPageSize
	} else if limit > service.MaxFeedPageSize {
		limit = service.MaxFeedPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

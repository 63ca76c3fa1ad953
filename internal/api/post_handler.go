package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/tobin/ripple-api/internal/api/shared"
	"github.com/tobin/ripple-api/internal/domain"
	"github.com/tobin/ripple-api/internal/redact"
	"github.com/tobin/ripple-api/internal/service"
)

// PostHandler handles post creation and listing.
type PostHandler struct {
	postService service.PostService
	validator   *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
		validator:   validator.New(),
	}
}

// Create handles POST /posts for the authenticated user.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreatePostRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	post, err := h.postService.CreatePost(r.Context(), userID, req.Body)
	if err != nil {
		slog.Debug("create post failed", "error", redact.Error(err), "author_id", userID)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewPostResponse(post))
}

// Get handles GET /posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.postService.GetPost(r.Context(), postID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPostResponse(post))
}

// ListByAuthor handles GET /users/{id}/posts.
func (h *PostHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	limit, offset := clampPageParams(pageParams(r))
	posts, err := h.postService.ListByAuthor(r.Context(), authorID, limit, offset)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list posts")
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

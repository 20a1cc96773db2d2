package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GunarsK-portfolio/social-graph-service/internal/apperr"
	"github.com/GunarsK-portfolio/social-graph-service/internal/query"
	"github.com/GunarsK-portfolio/social-graph-service/internal/service"
)

// Traversal trees of the social read endpoints. The alias keys appear
// verbatim in the JSON responses.
var (
	userTraversal = query.Traversal{
		"user-posts":    {"comments": {}},
		"profile":       {},
		"user-comments": {"post": {}},
	}
	postTraversal    = query.Traversal{"comments": {}, "author": {}}
	commentTraversal = query.Traversal{"post": {}, "commenter": {}}
	profileTraversal = query.Traversal{"user": {}}

	allUsersTraversal = query.Traversal{
		"user-posts":    {"comments": {}},
		"profile":       {},
		"user-comments": {},
	}
	allPostsTraversal = query.Traversal{
		"comments": {"commenter": {}},
		"author":   {"profile": {}},
	}
	allCommentsTraversal = query.Traversal{
		"post":      {"author": {}},
		"commenter": {},
	}
	allProfilesTraversal = query.Traversal{"user": {}}
)

// SocialHandler serves the social-graph surface.
type SocialHandler struct {
	users    service.UserService
	posts    service.PostService
	comments service.CommentService
	profiles service.ProfileService
}

// NewSocialHandler creates a new SocialHandler instance.
func NewSocialHandler(users service.UserService, posts service.PostService, comments service.CommentService, profiles service.ProfileService) *SocialHandler {
	return &SocialHandler{
		users:    users,
		posts:    posts,
		comments: comments,
		profiles: profiles,
	}
}

// CreateSocialUserRequest represents the combined user+profile payload.
type CreateSocialUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Age      *int    `json:"age"`
	Username string  `json:"username" binding:"required"`
	Bio      *string `json:"bio"`
}

// CreatePostRequest represents the post create payload.
type CreatePostRequest struct {
	AuthorID string `json:"author_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// CreateCommentRequest represents the comment create payload.
type CreateCommentRequest struct {
	PostID  string `json:"post_id" binding:"required"`
	UserID  string `json:"user_id" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

// countedResponse mirrors the find-and-count result shape: the rows plus
// their total count.
type countedResponse struct {
	Count int64 `json:"count"`
	Rows  any   `json:"rows"`
}

// CreateUser godoc
// @Summary Create user with profile
// @Description Create a user and its profile in two independent writes
// @Tags social
// @Accept json
// @Produce json
// @Param request body CreateSocialUserRequest true "User and profile fields"
// @Success 201 {object} map[string]any
// @Failure 422 {object} apperr.Error
// @Router /user [post]
func (h *SocialHandler) CreateUser(c *gin.Context) {
	var req CreateSocialUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, profile, err := h.users.CreateWithProfile(c.Request.Context(),
		service.CreateUserInput{Name: req.Name, Age: req.Age},
		service.CreateProfileInput{Username: req.Username, Bio: req.Bio},
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"status": "user added successfully",
		"data":   []any{user, profile},
	})
}

// CreatePost godoc
// @Summary Create post
// @Tags social
// @Accept json
// @Produce json
// @Param request body CreatePostRequest true "Post fields"
// @Success 201 {object} map[string]any
// @Failure 422 {object} apperr.Error
// @Router /post [post]
func (h *SocialHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.posts.Create(c.Request.Context(), req.AuthorID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"status": "post added successfully",
		"data":   post,
	})
}

// CreateComment godoc
// @Summary Create comment
// @Tags social
// @Accept json
// @Produce json
// @Param request body CreateCommentRequest true "Comment fields"
// @Success 201 {object} map[string]any
// @Failure 422 {object} apperr.Error
// @Router /comment [post]
func (h *SocialHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), req.PostID, req.UserID, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"status": "comment added successfully",
		"data":   comment,
	})
}

// GetUser godoc
// @Summary Get user with nested posts, comments and profile
// @Tags social
// @Produce json
// @Param userId query string true "User id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} apperr.Error
// @Router /user [get]
func (h *SocialHandler) GetUser(c *gin.Context) {
	id, ok := requireQuery(c, "userId")
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id, userTraversal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// GetPost godoc
// @Summary Get post with comments and author
// @Tags social
// @Produce json
// @Param postId query string true "Post id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} apperr.Error
// @Router /post [get]
func (h *SocialHandler) GetPost(c *gin.Context) {
	id, ok := requireQuery(c, "postId")
	if !ok {
		return
	}

	post, err := h.posts.GetByID(c.Request.Context(), id, postTraversal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": post})
}

// GetComment godoc
// @Summary Get comment with its post and commenter
// @Tags social
// @Produce json
// @Param commentId query string true "Comment id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} apperr.Error
// @Router /comment [get]
func (h *SocialHandler) GetComment(c *gin.Context) {
	id, ok := requireQuery(c, "commentId")
	if !ok {
		return
	}

	comment, err := h.comments.GetByID(c.Request.Context(), id, commentTraversal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": comment})
}

// GetProfile godoc
// @Summary Get profile with its user
// @Tags social
// @Produce json
// @Param profileId query string true "Profile id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} apperr.Error
// @Router /profile [get]
func (h *SocialHandler) GetProfile(c *gin.Context) {
	id, ok := requireQuery(c, "profileId")
	if !ok {
		return
	}

	profile, err := h.profiles.GetByID(c.Request.Context(), id, profileTraversal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// AllUsers godoc
// @Summary List all users with nested associations and total count
// @Tags social
// @Produce json
// @Success 200 {object} map[string]any
// @Router /all-user [get]
func (h *SocialHandler) AllUsers(c *gin.Context) {
	users, count, err := h.users.ListWithCount(c.Request.Context(), allUsersTraversal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": countedResponse{Count: count, Rows: users}})
}

// AllPosts godoc
// @Summary List all posts with nested associations and total count
// @Tags social
// @Produce json
// @Success 200 {object} map[string]any
// @Router /all-posts [get]
func (h *SocialHandler) AllPosts(c *gin.Context) {
	posts, count, err := h.posts.ListWithCount(c.Request.Context(), allPostsTraversal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": countedResponse{Count: count, Rows: posts}})
}

// AllComments godoc
// @Summary List all comments with nested associations and total count
// @Tags social
// @Produce json
// @Success 200 {object} map[string]any
// @Router /all-comments [get]
func (h *SocialHandler) AllComments(c *gin.Context) {
	comments, count, err := h.comments.ListWithCount(c.Request.Context(), allCommentsTraversal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": countedResponse{Count: count, Rows: comments}})
}

// AllProfiles godoc
// @Summary List all profiles with their users and total count
// @Tags social
// @Produce json
// @Success 200 {object} map[string]any
// @Router /all-profiles [get]
func (h *SocialHandler) AllProfiles(c *gin.Context) {
	profiles, count, err := h.profiles.ListWithCount(c.Request.Context(), allProfilesTraversal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": countedResponse{Count: count, Rows: profiles}})
}

func requireQuery(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		c.JSON(http.StatusBadRequest, apperr.Error{
			Kind:    apperr.KindValidation,
			Message: name + " query parameter is required",
		})
		return "", false
	}
	return value, true
}

package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/services"
)

type GroupController struct {
	Groups *services.GroupService
}

func NewGroupController(groups *services.GroupService) *GroupController {
	return &GroupController{Groups: groups}
}

type groupReq struct {
	GroupName string `json:"group_name"`
}

// POST /api/join-group
func (gc *GroupController) JoinGroup(c *gin.Context) {
	email := c.GetString("email")

	var req groupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group name is required"})
		return
	}

	status, err := gc.Groups.JoinGroup(c.Request.Context(), email, req.GroupName)
	if err != nil {
		respondError(c, err)
		return
	}

	switch status {
	case services.JoinCreated:
		c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("Group '%s' created and joined successfully!", req.GroupName)})
	case services.AlreadyMember:
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Already a member of %s!", req.GroupName)})
	default:
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Joined %s successfully!", req.GroupName)})
	}
}

// POST /api/leave-group
func (gc *GroupController) LeaveGroup(c *gin.Context) {
	email := c.GetString("email")

	var req groupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group name is required"})
		return
	}

	if err := gc.Groups.LeaveGroup(c.Request.Context(), email, req.GroupName); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Successfully left %s", req.GroupName)})
}

type postReq struct {
	GroupName string `json:"group_name"`
	Content   string `json:"content"`
}

// POST /api/group-post
func (gc *GroupController) CreatePost(c *gin.Context) {
	email := c.GetString("email")

	var req postReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group name and content are required"})
		return
	}

	post, err := gc.Groups.CreatePost(c.Request.Context(), email, req.GroupName, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Post added successfully!",
		"post_id":  post.PostID,
		"redirect": true,
	})
}

type postRefReq struct {
	GroupName   string `json:"group_name"`
	PostContent string `json:"post_content"`
}

// POST /api/like-post
func (gc *GroupController) LikePost(c *gin.Context) {
	email := c.GetString("email")

	var req postRefReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := gc.Groups.LikePost(c.Request.Context(), email, req.GroupName, req.PostContent); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post liked successfully!"})
}

// POST /api/dislike-post
func (gc *GroupController) DislikePost(c *gin.Context) {
	var req postRefReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := gc.Groups.DislikePost(c.Request.Context(), req.GroupName, req.PostContent); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post disliked successfully!"})
}

type commentReq struct {
	GroupName   string `json:"group_name"`
	PostContent string `json:"post_content"`
	Comment     string `json:"comment"`
}

// POST /api/comment-post
func (gc *GroupController) CommentOnPost(c *gin.Context) {
	email := c.GetString("email")

	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := gc.Groups.CommentOnPost(c.Request.Context(), email, req.GroupName, req.PostContent, req.Comment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment added successfully!"})
}

// POST /api/remove-comment
func (gc *GroupController) RemoveComment(c *gin.Context) {
	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := gc.Groups.RemoveComment(c.Request.Context(), req.GroupName, req.PostContent, req.Comment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment removed successfully!"})
}

// GET /api/get-group-posts/:group_name
func (gc *GroupController) GetGroupPosts(c *gin.Context) {
	email := c.GetString("email")
	name := c.Param("group_name")

	posts, err := gc.Groups.ListGroupPosts(c.Request.Context(), email, name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GET /api/get-groups (public)
func (gc *GroupController) GetGroups(c *gin.Context) {
	names, err := gc.Groups.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(names))
	for _, n := range names {
		out = append(out, gin.H{"name": n})
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/get-user-groups
func (gc *GroupController) GetUserGroups(c *gin.Context) {
	email := c.GetString("email")

	names, err := gc.Groups.ListUserGroups(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": names})
}

type badgeReq struct {
	GroupName string `json:"group_name"`
	Badge     string `json:"badge"`
}

// POST /api/post-badge
func (gc *GroupController) PostBadge(c *gin.Context) {
	email := c.GetString("email")

	var req badgeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group name and badge are required!"})
		return
	}

	if err := gc.Groups.PostBadge(c.Request.Context(), email, req.GroupName, req.Badge); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Badge posted successfully to the group!"})
}

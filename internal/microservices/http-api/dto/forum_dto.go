package dto

import (
	"strings"
	"time"

	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/shared"
)

// CreatePostDTO used for POST /api/forum/posts
type CreatePostDTO struct {
	Title        string `json:"title" form:"title" binding:"required,max=200"`
	Content      string `json:"content" form:"content" binding:"required"`
	Category     string `json:"category" form:"category" binding:"required,oneof=review discussion question news"`
	ForumGroupID *int64 `json:"forum_group_id,omitempty" form:"forum_group_id" binding:"omitempty,gt=0"`
}

func (d CreatePostDTO) ToModel(userID string) models.ForumPost {
	return models.ForumPost{
		Title:        strings.TrimSpace(d.Title),
		Content:      d.Content,
		Category:     d.Category,
		ForumGroupID: d.ForumGroupID,
		UserID:       userID,
	}
}

type ForumGroupResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	MembersCount int    `json:"members_count"`
	IconClass    string `json:"icon_class"`
	ColorClass   string `json:"color_class"`
	Order        int    `json:"order"`
}

func ForumGroupFromModel(g models.ForumGroup) ForumGroupResponse {
	return ForumGroupResponse{
		ID:           g.ID,
		Name:         g.Name,
		Description:  g.Description,
		MembersCount: g.MembersCount,
		IconClass:    g.IconClass,
		ColorClass:   g.ColorClass,
		Order:        g.Order,
	}
}

func ForumGroupsFromModels(list []models.ForumGroup) []ForumGroupResponse {
	out := make([]ForumGroupResponse, 0, len(list))
	for _, g := range list {
		out = append(out, ForumGroupFromModel(g))
	}
	return out
}

type ForumPostResponse struct {
	ID        int64               `json:"id"`
	Title     string              `json:"title"`
	Content   string              `json:"content"`
	Category  string              `json:"category"`
	Likes     int                 `json:"likes"`
	Views     int64               `json:"views"`
	IsPinned  bool                `json:"is_pinned"`
	CreatedAt time.Time           `json:"created_at"`
	UserID    string              `json:"user_id"`
	Username  string              `json:"username,omitempty"`
	Group     *ForumGroupResponse `json:"forum_group,omitempty"`
}

func ForumPostFromModel(p models.ForumPost) ForumPostResponse {
	resp := ForumPostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Category:  p.Category,
		Likes:     p.Likes,
		Views:     p.Views,
		IsPinned:  p.IsPinned,
		CreatedAt: p.CreatedAt,
		UserID:    p.UserID,
		Username:  p.User.Username,
	}
	if p.ForumGroup != nil {
		g := ForumGroupFromModel(*p.ForumGroup)
		resp.Group = &g
	}
	return resp
}

func ForumPostsFromModels(list []models.ForumPost) []ForumPostResponse {
	out := make([]ForumPostResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ForumPostFromModel(p))
	}
	return out
}

type ForumPageResponse struct {
	Posts           []ForumPostResponse  `json:"posts"`
	Pagination      shared.Page          `json:"pagination"`
	Groups          []ForumGroupResponse `json:"forum_groups"`
	ActiveChallenge *ChallengeResponse   `json:"active_challenge"`
}

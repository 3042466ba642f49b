package dto

import (
	"exlibris/internal/media"
	"exlibris/internal/microservices/http-api/models"
)

type ProfileResponse struct {
	ID              int64              `json:"id"`
	UserID          string             `json:"user_id"`
	Username        string             `json:"username"`
	AvatarURL       string             `json:"avatar_url"`
	Karma           int                `json:"karma"`
	Bookmarks       []BookmarkResponse `json:"bookmarks"`
	ActiveChallenge *ChallengeResponse `json:"active_challenge"`
}

func ProfileFromModel(p models.UserProfile, bookmarks []models.UserBookStatus, challenge *models.ReadingChallenge, r media.Resolver) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Username:        p.User.Username,
		AvatarURL:       r.URLPtr(p.Avatar),
		Karma:           p.Karma,
		Bookmarks:       BookmarksFromModels(bookmarks, r),
		ActiveChallenge: ChallengeFromModel(challenge),
	}
}

type HomeResponse struct {
	LatestBooks        []BookResponse       `json:"latest_books"`
	FeaturedAudiobooks []AudiobookResponse  `json:"featured_audiobooks"`
	ForumGroups        []ForumGroupResponse `json:"forum_groups"`
	PinnedPosts        []ForumPostResponse  `json:"pinned_posts"`
	ActiveChallenge    *ChallengeResponse   `json:"active_challenge"`
	UserStatuses       map[int64]string     `json:"user_statuses,omitempty"`
}

package service

import "errors"

var (
	ErrBookNotFound       = errors.New("book not found")
	ErrAudiobookNotFound  = errors.New("audiobook not found")
	ErrPostNotFound       = errors.New("forum post not found")
	ErrForumGroupNotFound = errors.New("forum group not found")
	ErrBookmarkNotFound   = errors.New("bookmark not found or not owned by user")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
)

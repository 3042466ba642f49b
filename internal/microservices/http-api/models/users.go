package models

import "time"

// User mirrors an identity issued by the auth provider. Passwords never
// reach this service; the row exists so posts and statuses have an owner.
// The id comes from the token and is the only unique key; usernames may be
// reused across identities.
type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Username  string    `gorm:"index;not null" json:"username"`
	Email     string    `gorm:"size:255" json:"email,omitempty"`
	Role      string    `gorm:"default:'user';not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type UserProfile struct {
	ID                 int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             string  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Avatar             *string `gorm:"size:255" json:"avatar,omitempty"`
	ReadingChallengeID *int64  `gorm:"index" json:"reading_challenge_id,omitempty"`
	Karma              int     `gorm:"not null;default:0" json:"karma"`

	User             User              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user"`
	ReadingChallenge *ReadingChallenge `gorm:"foreignKey:ReadingChallengeID;constraint:OnDelete:SET NULL;" json:"reading_challenge,omitempty"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

package model

import "time"

type User struct {
	ID        int64
	Name      string
	Email     string
	AvatarURL *string
	WorkOSID  *string
	CreatedAt time.Time
}

type Session struct {
	ID        int64
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

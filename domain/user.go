package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

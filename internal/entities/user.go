package entities

import "errors"

type User struct {
	UserID string
	Name   string
	Email  string
	Phone  string
}

var ErrUserNotFound = errors.New("user not found")

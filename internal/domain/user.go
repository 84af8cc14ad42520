// Package domain contains entity without logic, just meta-data
package domain

import "fmt"

// UserID is the Telegram user id, which doubles as the private chat id
// we send relayed messages to.
type UserID int64

type User struct {
	ID        UserID `json:"id"`
	FirstName string `json:"first_name"`
}

// DisplayName falls back to the numeric id when first_name is empty.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return fmt.Sprintf("User %d", u.ID)
}

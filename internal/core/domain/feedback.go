package domain

import "time"

// Feedback is a peer-feedback note addressed to exactly one recipient profile.
// ToUserID always equals the profile the feedback is filed under; the author
// may be any user.
type Feedback struct {
	ID              string    `json:"id"`
	FromUserID      string    `json:"fromUserId"`
	FromUserName    string    `json:"fromUserName"`
	ToUserID        string    `json:"toUserId"`
	Content         string    `json:"content"`
	EnhancedContent string    `json:"enhancedContent,omitempty"`
	IsEnhanced      bool      `json:"isEnhanced"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

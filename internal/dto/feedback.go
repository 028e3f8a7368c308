package dto

// CreateFeedbackRequest carries a new feedback note. The author is taken from
// the session and the recipient from the path, so neither appears here.
type CreateFeedbackRequest struct {
	Content         string `json:"content" binding:"required,notblank"`
	EnhancedContent string `json:"enhancedContent"`
	IsEnhanced      bool   `json:"isEnhanced"`
}

// UpdateFeedbackRequest defines the fields a feedback update may change.
type UpdateFeedbackRequest struct {
	Content         *string `json:"content"`
	EnhancedContent *string `json:"enhancedContent"`
	IsEnhanced      *bool   `json:"isEnhanced"`
}

// EnhanceRequest asks for an AI rewrite of feedback text.
type EnhanceRequest struct {
	Text         string `json:"text" binding:"required,notblank"`
	EmployeeName string `json:"employeeName"`
}

// EnhanceResponse returns the rewrite alongside the original text. On any
// upstream failure EnhancedText equals OriginalText.
type EnhanceResponse struct {
	OriginalText string `json:"originalText"`
	EnhancedText string `json:"enhancedText"`
	IsEnhanced   bool   `json:"isEnhanced"`
}

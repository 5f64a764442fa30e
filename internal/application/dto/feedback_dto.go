package dto

import "time"

// CreateFeedbackRequest body de POST /api/feedback.
type CreateFeedbackRequest struct {
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	CustomerName string `json:"customerName" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Feedback     string `json:"feedback" validate:"required"`
}

// FeedbackResponse entrada del log tal como se guardó.
type FeedbackResponse struct {
	ID           string    `json:"id"`
	Rating       int       `json:"rating"`
	CustomerName string    `json:"customerName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Feedback     string    `json:"feedback"`
	Timestamp    time.Time `json:"timestamp"`
}

// FeedbackListResponse respuesta de GET /api/mis/feedback.
type FeedbackListResponse struct {
	Items         []FeedbackResponse `json:"items"`
	Total         int                `json:"total"`
	AverageRating float64            `json:"average_rating"`
}

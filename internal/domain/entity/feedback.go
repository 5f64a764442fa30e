package entity

import "time"

// Feedback es una entrada del log de opiniones de clientes (solo se agrega).
type Feedback struct {
	ID           string    `json:"id"`
	Rating       int       `json:"rating"` // 1-5
	CustomerName string    `json:"customerName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Feedback     string    `json:"feedback"`
	Timestamp    time.Time `json:"timestamp"`
}

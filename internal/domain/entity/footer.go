package entity

import "time"

// FooterRecord holds one row of customer-facing footer content.
type FooterRecord struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Facebook    string    `json:"facebook,omitempty"`
	Instagram   string    `json:"instagram,omitempty"`
	Twitter     string    `json:"twitter,omitempty"`
	LinkedIn    string    `json:"linkedin,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

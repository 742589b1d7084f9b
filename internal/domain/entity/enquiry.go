package entity

import (
	"strings"
	"time"
)

type EnquiryStatus string

const (
	EnquiryNew        EnquiryStatus = "New"
	EnquiryInProgress EnquiryStatus = "In Progress"
	EnquiryCompleted  EnquiryStatus = "Completed"
)

// Normalize forces any unknown or blank status back to New, matching how the
// admin screens defensively treat dirty data from older records.
func (s EnquiryStatus) Normalize() EnquiryStatus {
	switch EnquiryStatus(strings.TrimSpace(string(s))) {
	case EnquiryNew:
		return EnquiryNew
	case EnquiryInProgress:
		return EnquiryInProgress
	case EnquiryCompleted:
		return EnquiryCompleted
	}
	return EnquiryNew
}

func (s EnquiryStatus) Valid() bool {
	return s == EnquiryNew || s == EnquiryInProgress || s == EnquiryCompleted
}

type Enquiry struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Subject   string        `json:"subject,omitempty"`
	Message   string        `json:"message"`
	Status    EnquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
}

package entity

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	return s == ApplicationPending || s == ApplicationApproved || s == ApplicationRejected
}

// DistributorApplication is a request to become a distributor, submitted from
// the public site and reviewed in the admin screens.
type DistributorApplication struct {
	ID          string            `json:"id"`
	Company     string            `json:"company"`
	ContactName string            `json:"contactName"`
	Title       string            `json:"title,omitempty"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone,omitempty"`
	Channels    string            `json:"channels,omitempty"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt,omitempty"`
}

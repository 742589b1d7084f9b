package entity

import "time"

// Home page media sections.
const (
	SectionCarousel     = "carousel"
	SectionTopImages    = "topImages"
	SectionBottomImages = "bottomImages"
)

func ValidHomeSection(section string) bool {
	return section == SectionCarousel || section == SectionTopImages || section == SectionBottomImages
}

type HomeItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image"`
	Link        string    `json:"link,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

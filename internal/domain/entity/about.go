package entity

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// AboutStat is one headline number on the about page, e.g. {25, "Years"}.
type AboutStat struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// UnmarshalJSON tolerates values stored as strings by older admin builds.
func (s *AboutStat) UnmarshalJSON(data []byte) error {
	aux := struct {
		Value interface{} `json:"value"`
		Label string      `json:"label"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Value = cast.ToInt(aux.Value)
	s.Label = aux.Label
	return nil
}

type AboutContent struct {
	Tagline            string      `json:"tagline"`
	CompanyProfile     string      `json:"companyProfile"`
	ProfileTitle       string      `json:"profileTitle"`
	ProfileDescription string      `json:"profileDescription"`
	Stats              []AboutStat `json:"stats"`
	BannerImage        string      `json:"bannerImage,omitempty"`
	CompanyImage       string      `json:"companyImage,omitempty"`
	ProfileImage       string      `json:"profileImage,omitempty"`
	Logo               string      `json:"logo,omitempty"`
}

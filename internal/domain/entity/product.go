package entity

import (
	"encoding/json"
	"strconv"
	"time"
)

type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Normalize maps unknown alignment values to the default.
func (a Alignment) Normalize() Alignment {
	switch a {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return a
	}
	return AlignLeft
}

// SectionEntry is one specification or highlight line with its own alignment.
type SectionEntry struct {
	Text      string    `json:"text"`
	Alignment Alignment `json:"alignment"`
}

// SectionList normalizes every shape the backend has historically stored:
// a native array of {text, alignment} objects, an array of bare strings, or
// a JSON-encoded string wrapping either of those.
type SectionList []SectionEntry

func (s *SectionList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = nil
		return nil
	}

	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		if inner == "" {
			*s = nil
			return nil
		}
		return s.UnmarshalJSON([]byte(inner))
	}

	var entries []SectionEntry
	if err := json.Unmarshal(data, &entries); err == nil {
		for i := range entries {
			entries[i].Alignment = entries[i].Alignment.Normalize()
		}
		*s = entries
		return nil
	}

	var texts []string
	if err := json.Unmarshal(data, &texts); err != nil {
		return err
	}
	entries = make([]SectionEntry, len(texts))
	for i, t := range texts {
		entries[i] = SectionEntry{Text: t, Alignment: AlignLeft}
	}
	*s = entries
	return nil
}

// Decimal is a price carried as a decimal string, tolerant of backends that
// return it as a JSON number instead.
type Decimal string

func (d *Decimal) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*d = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Decimal(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = Decimal(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

func (d Decimal) Float() (float64, error) {
	return strconv.ParseFloat(string(d), 64)
}

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

type Product struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name"`
	Price                Decimal     `json:"price"`
	ShowPrice            bool        `json:"showPrice"`
	Category             string      `json:"category"`
	Subcategory          string      `json:"subcategory,omitempty"`
	Description          string      `json:"description"`
	DescriptionAlignment Alignment   `json:"descriptionAlignment,omitempty"`
	Specifications       SectionList `json:"specifications"`
	Highlights           SectionList `json:"highlights"`
	Downloads            []string    `json:"downloads,omitempty"`
	Images               []string    `json:"images"`
	MainImage            string      `json:"mainImage,omitempty"`
	Status               string      `json:"status,omitempty"`
	CreatedAt            time.Time   `json:"createdAt,omitempty"`
	UpdatedAt            time.Time   `json:"updatedAt,omitempty"`
}

// UnmarshalJSON defaults showPrice to true only when the field is absent,
// preserving an explicit false from the server.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := struct {
		ShowPrice *bool `json:"showPrice"`
		*alias
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.ShowPrice == nil {
		p.ShowPrice = true
	} else {
		p.ShowPrice = *aux.ShowPrice
	}
	p.DescriptionAlignment = p.DescriptionAlignment.Normalize()
	return nil
}

package draft

import (
	"strconv"
	"strings"
)

// Validate checks a draft for submission and returns a field-keyed error
// map, empty on success. It never mutates the draft; callers decide whether
// to copy the result into d.Errors.
func Validate(d *ProductDraft) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Product name is required"
	}
	if price, err := strconv.ParseFloat(d.Price, 64); err != nil || price <= 0 {
		errs["price"] = "Valid price is required"
	}
	if d.EffectiveCategory() == "" {
		errs["category"] = "Category is required"
	}
	if len(d.Images) == 0 {
		errs["images"] = "At least one image is required"
	}
	for _, s := range d.Specs {
		if strings.TrimSpace(s.Text) == "" {
			errs["specifications"] = "All specifications must be filled"
			break
		}
	}
	for _, h := range d.Highlights {
		if strings.TrimSpace(h.Text) == "" {
			errs["highlights"] = "All highlights must be filled"
			break
		}
	}

	return errs
}

// fieldOrder mirrors the form's visual order so the first reported error is
// the first one on screen.
var fieldOrder = []string{"name", "category", "price", "images", "mainImage", "description", "specifications", "highlights", "downloads"}

// fieldTabs maps each field to the form tab it lives on.
var fieldTabs = map[string]string{
	"name":           "basic",
	"category":       "basic",
	"price":          "basic",
	"images":         "basic",
	"mainImage":      "basic",
	"description":    "description",
	"specifications": "specifications",
	"highlights":     "highlights",
	"downloads":      "downloads",
}

// FirstInvalid returns the first errored field and its tab, for the
// scroll-to-field behavior on a blocked submit. ok is false when the map is
// empty.
func FirstInvalid(errs map[string]string) (field, tab string, ok bool) {
	for _, f := range fieldOrder {
		if _, bad := errs[f]; bad {
			return f, fieldTabs[f], true
		}
	}
	for f := range errs {
		return f, fieldTabs[f], true
	}
	return "", "", false
}

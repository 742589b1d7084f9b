package draft

import (
	"bytes"
	"encoding/json"
	"mime/multipart"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/upload"
)

// About page image slots.
const (
	SlotBannerImage  = "bannerImage"
	SlotCompanyImage = "companyImage"
	SlotProfileImage = "profileImage"
	SlotLogo         = "logo"
)

var aboutSlots = []string{SlotBannerImage, SlotCompanyImage, SlotProfileImage, SlotLogo}

// deleteFlag maps each image slot to the flag telling the server to drop
// the stored image when no replacement is attached.
var deleteFlag = map[string]string{
	SlotBannerImage:  "deleteBannerImage",
	SlotCompanyImage: "deleteCompanyImage",
	SlotProfileImage: "deleteProfileImage",
	SlotLogo:         "deleteLogo",
}

func ValidAboutSlot(slot string) bool {
	return deleteFlag[slot] != ""
}

// AboutDraft is the in-progress edit of the about page. NewImages holds
// fresh uploads per slot; Removed marks slots the admin cleared.
type AboutDraft struct {
	Tagline            string
	CompanyProfile     string
	ProfileTitle       string
	ProfileDescription string
	Stats              []entity.AboutStat
	NewImages          map[string]*upload.File
	Removed            map[string]bool
}

func NewAbout(content *entity.AboutContent) *AboutDraft {
	d := &AboutDraft{
		NewImages: map[string]*upload.File{},
		Removed:   map[string]bool{},
	}
	if content != nil {
		d.Tagline = content.Tagline
		d.CompanyProfile = content.CompanyProfile
		d.ProfileTitle = content.ProfileTitle
		d.ProfileDescription = content.ProfileDescription
		d.Stats = append([]entity.AboutStat(nil), content.Stats...)
	}
	return d
}

// BuildAboutForm marshals the about edit into a multipart payload: text
// parts, stats as a JSON array with numeric values, a file part per fresh
// upload, and a delete flag per cleared slot.
func BuildAboutForm(d *AboutDraft) (*Form, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := [][2]string{
		{"tagline", d.Tagline},
		{"companyProfile", d.CompanyProfile},
		{"profileTitle", d.ProfileTitle},
		{"profileDescription", d.ProfileDescription},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, err
		}
	}

	stats, err := json.Marshal(d.Stats)
	if err != nil {
		return nil, err
	}
	if err := w.WriteField("stats", string(stats)); err != nil {
		return nil, err
	}

	for _, slot := range aboutSlots {
		if f := d.NewImages[slot]; f != nil {
			if err := writeFilePart(w, slot, f); err != nil {
				return nil, err
			}
			continue
		}
		if d.Removed[slot] {
			if err := w.WriteField(deleteFlag[slot], "true"); err != nil {
				return nil, err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return &Form{Body: body, ContentType: w.FormDataContentType()}, nil
}

// BuildImageForm wraps a single upload under the given field name, used by
// the standalone about image upload and the home media sections.
func BuildImageForm(field string, f *upload.File) (*Form, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if err := writeFilePart(w, field, f); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &Form{Body: body, ContentType: w.FormDataContentType()}, nil
}

// BuildHomeForm marshals a home section item: optional text parts plus the
// image attachment when one was picked.
func BuildHomeForm(title, description, link string, image *upload.File) (*Form, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := [][2]string{
		{"title", title},
		{"description", description},
		{"link", link},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, err
		}
	}
	if image != nil {
		if err := writeFilePart(w, "image", image); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return &Form{Body: body, ContentType: w.FormDataContentType()}, nil
}

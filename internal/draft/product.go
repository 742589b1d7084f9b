package draft

import (
	"strings"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/upload"
)

const (
	MaxImages    = 5
	MaxDownloads = 3
	// Per-file ceiling in MB, shared by images and PDFs.
	MaxFileSizeMB = 10
)

// ImageRef pairs a display URL with the in-memory file behind it. File is
// nil for images that already live on the server.
type ImageRef struct {
	URL  string
	File *upload.File
}

// DownloadRef is one attached PDF. File is nil for pre-existing server
// references, in which case Name holds the server path.
type DownloadRef struct {
	Name string
	File *upload.File
}

// ProductDraft is the client-held, not-yet-persisted copy of a product being
// created or edited. Specification and highlight lines carry their alignment
// in the same record, so text and alignment cannot drift out of step.
type ProductDraft struct {
	ID                   string
	Name                 string
	Price                string
	ShowPrice            bool
	Category             string
	NewCategory          string
	Subcategory          string
	NewSubcategory       string
	Description          string
	DescriptionAlignment entity.Alignment
	Specs                []entity.SectionEntry
	Highlights           []entity.SectionEntry
	Images               []ImageRef
	Downloads            []DownloadRef
	MainImage            string

	// Errors is the field-keyed validation error map; ServerError is the
	// banner shown when a submit is rejected remotely.
	Errors      map[string]string
	ServerError string

	previews *upload.Registry
}

// New returns an empty draft for the add-product screen: one blank
// specification and highlight line, price visible.
func New() *ProductDraft {
	return &ProductDraft{
		ShowPrice:            true,
		DescriptionAlignment: entity.AlignLeft,
		Specs:                []entity.SectionEntry{{Alignment: entity.AlignLeft}},
		Highlights:           []entity.SectionEntry{{Alignment: entity.AlignLeft}},
		Errors:               map[string]string{},
		previews:             upload.NewRegistry(),
	}
}

// FromProduct populates an edit draft from a fetched record. Legacy section
// shapes are already normalized by the entity decoder; blank lists still get
// one empty line so the form has something to edit.
func FromProduct(p *entity.Product) *ProductDraft {
	d := New()
	d.ID = p.ID
	d.Name = p.Name
	d.Price = string(p.Price)
	d.ShowPrice = p.ShowPrice
	d.Category = p.Category
	d.Subcategory = p.Subcategory
	d.Description = p.Description
	d.DescriptionAlignment = p.DescriptionAlignment.Normalize()
	if len(p.Specifications) > 0 {
		d.Specs = append([]entity.SectionEntry(nil), p.Specifications...)
	}
	if len(p.Highlights) > 0 {
		d.Highlights = append([]entity.SectionEntry(nil), p.Highlights...)
	}
	for _, url := range p.Images {
		d.Images = append(d.Images, ImageRef{URL: url})
	}
	for _, name := range p.Downloads {
		d.Downloads = append(d.Downloads, DownloadRef{Name: name})
	}
	d.MainImage = p.MainImage
	if d.MainImage == "" && len(p.Images) > 0 {
		d.MainImage = p.Images[0]
	}
	return d
}

// touch clears the field's validation error and any server banner, the
// standard side effect of editing a field.
func (d *ProductDraft) touch(field string) {
	delete(d.Errors, field)
	d.ServerError = ""
}

func (d *ProductDraft) SetName(v string)        { d.Name = v; d.touch("name") }
func (d *ProductDraft) SetPrice(v string)       { d.Price = v; d.touch("price") }
func (d *ProductDraft) SetCategory(v string)    { d.Category = v; d.touch("category") }
func (d *ProductDraft) SetNewCategory(v string) { d.NewCategory = v; d.touch("category") }
func (d *ProductDraft) SetSubcategory(v string) { d.Subcategory = v; d.touch("subcategory") }
func (d *ProductDraft) SetNewSubcategory(v string) {
	d.NewSubcategory = v
	d.touch("subcategory")
}
func (d *ProductDraft) SetDescription(v string) { d.Description = v; d.touch("description") }

func (d *ProductDraft) SetDescriptionAlignment(a entity.Alignment) {
	d.DescriptionAlignment = a.Normalize()
	d.touch("description")
}

func (d *ProductDraft) ToggleShowPrice() { d.ShowPrice = !d.ShowPrice }

// EffectiveCategory prefers the selected value and falls back to the
// in-progress "add new category" input.
func (d *ProductDraft) EffectiveCategory() string {
	if v := strings.TrimSpace(d.Category); v != "" {
		return v
	}
	return strings.TrimSpace(d.NewCategory)
}

func (d *ProductDraft) EffectiveSubcategory() string {
	if v := strings.TrimSpace(d.Subcategory); v != "" {
		return v
	}
	return strings.TrimSpace(d.NewSubcategory)
}

func (d *ProductDraft) SetSpec(i int, text string) {
	if i < 0 || i >= len(d.Specs) {
		return
	}
	d.Specs[i].Text = text
	d.touch("specifications")
}

func (d *ProductDraft) SetSpecAlignment(i int, a entity.Alignment) {
	if i < 0 || i >= len(d.Specs) {
		return
	}
	d.Specs[i].Alignment = a.Normalize()
	d.touch("specifications")
}

func (d *ProductDraft) AddSpec() {
	d.Specs = append(d.Specs, entity.SectionEntry{Alignment: entity.AlignLeft})
}

func (d *ProductDraft) RemoveSpec(i int) {
	if i < 0 || i >= len(d.Specs) {
		return
	}
	d.Specs = append(d.Specs[:i], d.Specs[i+1:]...)
	d.touch("specifications")
}

func (d *ProductDraft) SetHighlight(i int, text string) {
	if i < 0 || i >= len(d.Highlights) {
		return
	}
	d.Highlights[i].Text = text
	d.touch("highlights")
}

func (d *ProductDraft) SetHighlightAlignment(i int, a entity.Alignment) {
	if i < 0 || i >= len(d.Highlights) {
		return
	}
	d.Highlights[i].Alignment = a.Normalize()
	d.touch("highlights")
}

func (d *ProductDraft) AddHighlight() {
	d.Highlights = append(d.Highlights, entity.SectionEntry{Alignment: entity.AlignLeft})
}

func (d *ProductDraft) RemoveHighlight(i int) {
	if i < 0 || i >= len(d.Highlights) {
		return
	}
	d.Highlights = append(d.Highlights[:i], d.Highlights[i+1:]...)
	d.touch("highlights")
}

// AddImages validates and appends a batch of image uploads. The 5-image
// ceiling is checked before per-file validation: a batch that would exceed
// it is rejected whole, with no partial insert.
func (d *ProductDraft) AddImages(files []*upload.File) {
	if len(d.Images)+len(files) > MaxImages {
		d.Errors["images"] = "Maximum 5 images allowed"
		return
	}

	var msgs []string
	accepted := false
	for _, f := range files {
		if msg := upload.Check(f, upload.ImageTypes, MaxFileSizeMB); msg != "" {
			msgs = append(msgs, msg)
			continue
		}
		url := d.previews.Grant(f)
		d.Images = append(d.Images, ImageRef{URL: url, File: f})
		if d.MainImage == "" {
			d.MainImage = url
		}
		accepted = true
	}

	if len(msgs) > 0 {
		if prev := d.Errors["images"]; prev != "" {
			d.Errors["images"] = prev + ", " + strings.Join(msgs, ", ")
		} else {
			d.Errors["images"] = strings.Join(msgs, ", ")
		}
	}
	if accepted && len(d.Images) > 0 && len(msgs) == 0 {
		delete(d.Errors, "images")
	}
}

// AddDownloads validates and appends PDF attachments, 3 at most.
func (d *ProductDraft) AddDownloads(files []*upload.File) {
	if len(d.Downloads)+len(files) > MaxDownloads {
		d.Errors["downloads"] = "Maximum 3 PDF files allowed"
		return
	}

	var msgs []string
	for _, f := range files {
		if msg := upload.Check(f, upload.DownloadTypes, MaxFileSizeMB); msg != "" {
			msgs = append(msgs, msg)
			continue
		}
		d.Downloads = append(d.Downloads, DownloadRef{Name: f.Name, File: f})
	}

	if len(msgs) > 0 {
		if prev := d.Errors["downloads"]; prev != "" {
			d.Errors["downloads"] = prev + ", " + strings.Join(msgs, ", ")
		} else {
			d.Errors["downloads"] = strings.Join(msgs, ", ")
		}
	} else {
		delete(d.Errors, "downloads")
	}
}

// RemoveImage drops the image at i, revoking its preview URL when it was
// locally generated and re-pointing the main image to the first survivor.
// Confirmation is the caller's job.
func (d *ProductDraft) RemoveImage(i int) {
	if i < 0 || i >= len(d.Images) {
		return
	}
	removed := d.Images[i]
	d.previews.Revoke(removed.URL)

	d.Images = append(d.Images[:i], d.Images[i+1:]...)

	if d.MainImage == removed.URL {
		if len(d.Images) > 0 {
			d.MainImage = d.Images[0].URL
		} else {
			d.MainImage = ""
		}
	}
	if len(d.Images) == 0 {
		d.Errors["images"] = "At least one image is required"
	}
}

func (d *ProductDraft) RemoveDownload(i int) {
	if i < 0 || i >= len(d.Downloads) {
		return
	}
	d.Downloads = append(d.Downloads[:i], d.Downloads[i+1:]...)
	d.touch("downloads")
}

// SetMainImage selects an existing image as the main one. URLs not in the
// image list are ignored.
func (d *ProductDraft) SetMainImage(url string) {
	for _, img := range d.Images {
		if img.URL == url {
			d.MainImage = url
			delete(d.Errors, "mainImage")
			return
		}
	}
}

// ImageURLs returns the display URLs in order.
func (d *ProductDraft) ImageURLs() []string {
	urls := make([]string, len(d.Images))
	for i, img := range d.Images {
		urls[i] = img.URL
	}
	return urls
}

// newFileCount reports how many images are fresh uploads rather than
// pre-existing server references.
func (d *ProductDraft) newFileCount() int {
	n := 0
	for _, img := range d.Images {
		if img.File != nil {
			n++
		}
	}
	return n
}

// Previews exposes the draft's URL registry, mainly so tests can assert the
// release contract.
func (d *ProductDraft) Previews() *upload.Registry {
	return d.previews
}

// Discard releases every still-alive preview URL this draft created. It is
// called on unmount and after a successful submit, and is safe to call more
// than once.
func (d *ProductDraft) Discard() {
	for _, img := range d.Images {
		d.previews.Revoke(img.URL)
	}
}

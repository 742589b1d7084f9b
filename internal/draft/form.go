package draft

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/upload"
)

// Form is a marshalled multipart payload ready for submission.
type Form struct {
	Body        *bytes.Buffer
	ContentType string
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(w *multipart.Writer, field string, f *upload.File) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(f.Name)))
	h.Set("Content-Type", f.Type())
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(f.Data)
	return err
}

// nonEmpty filters out entries whose text is blank, which the form keeps
// around as editable placeholder lines.
func nonEmpty(entries []entity.SectionEntry) []entity.SectionEntry {
	out := make([]entity.SectionEntry, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Text) != "" {
			out = append(out, entity.SectionEntry{Text: e.Text, Alignment: e.Alignment.Normalize()})
		}
	}
	return out
}

// BuildForm marshals a validated draft into a multipart payload. On edit
// flows it also emits the keep-existing flags so the server never discards
// previously uploaded assets it was not given replacements for.
func BuildForm(d *ProductDraft, edit bool) (*Form, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := [][2]string{
		{"name", strings.TrimSpace(d.Name)},
		{"price", d.Price},
		{"showPrice", strconv.FormatBool(d.ShowPrice)},
		{"category", d.EffectiveCategory()},
		{"subcategory", d.EffectiveSubcategory()},
		{"description", d.Description},
		{"descriptionAlignment", string(d.DescriptionAlignment.Normalize())},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, err
		}
	}

	specs, err := json.Marshal(nonEmpty(d.Specs))
	if err != nil {
		return nil, err
	}
	if err := w.WriteField("specifications", string(specs)); err != nil {
		return nil, err
	}
	highlights, err := json.Marshal(nonEmpty(d.Highlights))
	if err != nil {
		return nil, err
	}
	if err := w.WriteField("highlights", string(highlights)); err != nil {
		return nil, err
	}

	for _, img := range d.Images {
		if img.File == nil {
			continue
		}
		if err := writeFilePart(w, "images", img.File); err != nil {
			return nil, err
		}
	}
	for _, dl := range d.Downloads {
		if dl.File == nil {
			continue
		}
		if err := writeFilePart(w, "downloads", dl.File); err != nil {
			return nil, err
		}
	}

	if edit {
		keepImages := len(d.Images) > d.newFileCount()
		if err := w.WriteField("keepExistingImages", strconv.FormatBool(keepImages)); err != nil {
			return nil, err
		}
		keepDownloads := true
		for _, dl := range d.Downloads {
			if dl.File != nil {
				keepDownloads = false
				break
			}
		}
		if err := w.WriteField("keepExistingDownloads", strconv.FormatBool(keepDownloads)); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return &Form{Body: body, ContentType: w.FormDataContentType()}, nil
}

package controller

import (
	"context"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/internal/draft"
	"catalogadmin/internal/gateway"
	"catalogadmin/pkg/errors"
)

// ProductForm drives the add and edit product screens around one draft.
// The zero draft ID means add mode; edit mode keeps the fetched ID.
type ProductForm struct {
	screenState
	gw *gateway.Client

	Draft  *draft.ProductDraft
	saving bool

	// FocusField and FocusTab name the first invalid field after a blocked
	// submit, the scroll target for the form.
	FocusField string
	FocusTab   string
}

// NewProductForm opens an empty add form.
func NewProductForm(parent context.Context, gw *gateway.Client) *ProductForm {
	f := &ProductForm{screenState: newScreenState(parent), gw: gw, Draft: draft.New()}
	f.phase = PhaseReady
	return f
}

// NewProductEdit opens the edit form for an existing product, fetching the
// current record into the draft.
func NewProductEdit(parent context.Context, gw *gateway.Client, id string) (*ProductForm, error) {
	f := &ProductForm{screenState: newScreenState(parent), gw: gw}
	product, err := f.gw.Products.GetByID(f.scope.Context(), id)
	if err != nil {
		f.mu.Lock()
		f.fail(err)
		f.mu.Unlock()
		return f, err
	}
	f.mu.Lock()
	f.Draft = draft.FromProduct(product)
	f.ready()
	f.mu.Unlock()
	return f, nil
}

func (f *ProductForm) editing() bool {
	return f.Draft.ID != ""
}

func (f *ProductForm) Saving() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saving
}

// Submit validates the draft and sends it. A validation failure writes the
// error map into the draft and records the first invalid field for the
// scroll-to behavior; it never reaches the network. On success the draft's
// preview URLs are released.
func (f *ProductForm) Submit() (*entity.Product, error) {
	f.mu.Lock()
	if f.saving {
		f.mu.Unlock()
		return nil, errors.BadRequest("Submit already in progress", nil)
	}

	errs := draft.Validate(f.Draft)
	if len(errs) > 0 {
		f.Draft.Errors = errs
		f.FocusField, f.FocusTab, _ = draft.FirstInvalid(errs)
		f.mu.Unlock()
		return nil, errors.BadRequest("Please fix the highlighted fields", nil)
	}
	f.FocusField, f.FocusTab = "", ""
	f.saving = true
	id := f.Draft.ID
	edit := f.editing()
	form, err := draft.BuildForm(f.Draft, edit)
	f.mu.Unlock()
	if err != nil {
		f.finishSave("")
		return nil, errors.Internal("Failed to build product payload", err)
	}

	var product *entity.Product
	if edit {
		product, err = f.gw.Products.Update(f.scope.Context(), id, form)
	} else {
		product, err = f.gw.Products.Create(f.scope.Context(), form)
	}
	if err != nil {
		f.finishSave(errors.Message(err))
		return nil, err
	}

	f.mu.Lock()
	f.saving = false
	f.Draft.Discard()
	f.mu.Unlock()
	return product, nil
}

func (f *ProductForm) finishSave(serverError string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saving = false
	f.Draft.ServerError = serverError
}

// Close releases the draft's preview URLs and cancels in-flight requests.
// Safe to call after a successful submit.
func (f *ProductForm) Close() {
	f.mu.Lock()
	if f.Draft != nil {
		f.Draft.Discard()
	}
	f.mu.Unlock()
	f.scope.Close()
}

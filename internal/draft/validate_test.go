package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogadmin/internal/upload"
)

func validDraft() *ProductDraft {
	d := New()
	d.SetName("Widget")
	d.SetPrice("5.50")
	d.SetCategory("Sensors")
	d.SetSpec(0, "IP67 rated")
	d.SetHighlight(0, "Rugged")
	d.AddImages([]*upload.File{pngFile("a.png")})
	return d
}

func TestValidatePassesCompleteDraft(t *testing.T) {
	assert.Empty(t, Validate(validDraft()))
}

func TestValidateCollectsAllFailures(t *testing.T) {
	d := New()
	errs := Validate(d)

	assert.Equal(t, "Product name is required", errs["name"])
	assert.Equal(t, "Valid price is required", errs["price"])
	assert.Equal(t, "Category is required", errs["category"])
	assert.Equal(t, "At least one image is required", errs["images"])
	assert.Equal(t, "All specifications must be filled", errs["specifications"])
	assert.Equal(t, "All highlights must be filled", errs["highlights"])
}

func TestValidatePriceEdges(t *testing.T) {
	cases := []struct {
		price string
		ok    bool
	}{
		{"5.50", true},
		{"0", false},
		{"-5", false},
		{"abc", false},
		{"", false},
	}
	for _, tc := range cases {
		d := validDraft()
		d.Price = tc.price
		errs := Validate(d)
		if tc.ok {
			assert.NotContains(t, errs, "price", "price %q", tc.price)
		} else {
			assert.Equal(t, "Valid price is required", errs["price"], "price %q", tc.price)
		}
	}
}

func TestValidateNeverMutatesDraft(t *testing.T) {
	d := New()
	Validate(d)
	assert.Empty(t, d.Errors)
}

func TestValidateAcceptsNewCategoryInput(t *testing.T) {
	d := validDraft()
	d.Category = ""
	d.NewCategory = "Brand New"
	assert.NotContains(t, Validate(d), "category")
}

func TestFirstInvalidFollowsFormOrder(t *testing.T) {
	errs := map[string]string{
		"highlights": "All highlights must be filled",
		"price":      "Valid price is required",
	}
	field, tab, ok := FirstInvalid(errs)
	require.True(t, ok)
	assert.Equal(t, "price", field)
	assert.Equal(t, "basic", tab)
}

func TestFirstInvalidEmptyMap(t *testing.T) {
	_, _, ok := FirstInvalid(map[string]string{})
	assert.False(t, ok)
}

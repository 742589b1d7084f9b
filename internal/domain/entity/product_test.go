package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionListObjectArray(t *testing.T) {
	var s SectionList
	require.NoError(t, json.Unmarshal([]byte(`[{"text":"IP67","alignment":"center"},{"text":"2kg","alignment":"bogus"}]`), &s))

	require.Len(t, s, 2)
	assert.Equal(t, SectionEntry{Text: "IP67", Alignment: AlignCenter}, s[0])
	assert.Equal(t, SectionEntry{Text: "2kg", Alignment: AlignLeft}, s[1])
}

func TestSectionListStringArray(t *testing.T) {
	var s SectionList
	require.NoError(t, json.Unmarshal([]byte(`["IP67","2kg"]`), &s))

	require.Len(t, s, 2)
	assert.Equal(t, SectionEntry{Text: "IP67", Alignment: AlignLeft}, s[0])
}

func TestSectionListEncodedString(t *testing.T) {
	var s SectionList
	require.NoError(t, json.Unmarshal([]byte(`"[\"IP67\"]"`), &s))
	require.Len(t, s, 1)
	assert.Equal(t, "IP67", s[0].Text)

	var nested SectionList
	require.NoError(t, json.Unmarshal([]byte(`"[{\"text\":\"IP67\",\"alignment\":\"right\"}]"`), &nested))
	require.Len(t, nested, 1)
	assert.Equal(t, AlignRight, nested[0].Alignment)
}

func TestSectionListEmptyAndNull(t *testing.T) {
	var s SectionList
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Nil(t, s)

	require.NoError(t, json.Unmarshal([]byte(`""`), &s))
	assert.Nil(t, s)
}

func TestDecimalStringAndNumber(t *testing.T) {
	var d Decimal
	require.NoError(t, json.Unmarshal([]byte(`"19.99"`), &d))
	assert.Equal(t, Decimal("19.99"), d)

	require.NoError(t, json.Unmarshal([]byte(`19.99`), &d))
	assert.Equal(t, Decimal("19.99"), d)

	f, err := d.Float()
	require.NoError(t, err)
	assert.Equal(t, 19.99, f)
}

func TestProductShowPriceDefaultsTrueWhenAbsent(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","name":"Widget"}`), &p))
	assert.True(t, p.ShowPrice)
}

func TestProductShowPriceExplicitFalsePreserved(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","showPrice":false}`), &p))
	assert.False(t, p.ShowPrice)
}

func TestProductNormalizesAlignment(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","descriptionAlignment":"middle"}`), &p))
	assert.Equal(t, AlignLeft, p.DescriptionAlignment)
}

func TestEnquiryStatusNormalize(t *testing.T) {
	assert.Equal(t, EnquiryInProgress, EnquiryStatus(" In Progress ").Normalize())
	assert.Equal(t, EnquiryNew, EnquiryStatus("pending").Normalize())
	assert.Equal(t, EnquiryNew, EnquiryStatus("").Normalize())
	assert.Equal(t, EnquiryCompleted, EnquiryCompleted.Normalize())
}

func TestAboutStatValueShapes(t *testing.T) {
	var s AboutStat
	require.NoError(t, json.Unmarshal([]byte(`{"value":25,"label":"Years"}`), &s))
	assert.Equal(t, 25, s.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"value":"40","label":"Countries"}`), &s))
	assert.Equal(t, 40, s.Value)
}

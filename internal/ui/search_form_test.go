package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/wallpaper-gallery/internal/model"
)

func TestSearchForm_RoundTrip(t *testing.T) {
	test.NewApp()

	q := model.NewSearchQuery()
	q.Resolution = "2560x1440"
	q.APIKey = "secret"
	q.Count = 48
	q.Sort = model.SortViews
	q.Range = model.Range1Week

	sf := NewSearchForm(NewLocalization(), q, nil)
	got := sf.Query()

	assert.Equal(t, q, got)
}

func TestSearchForm_EmptyInputsUseDefaults(t *testing.T) {
	test.NewApp()

	sf := NewSearchForm(NewLocalization(), model.SearchQuery{}, nil)
	got := sf.Query()

	assert.Equal(t, model.DefaultResolution, got.Resolution)
	assert.Equal(t, model.DefaultCount, got.Count)
	assert.Equal(t, model.DefaultRange, got.Range)
	assert.Equal(t, model.DefaultSort, got.Sort)
	assert.Empty(t, got.APIKey)
}

func TestSearchForm_SubmitForwardsQuery(t *testing.T) {
	test.NewApp()

	var submitted []model.SearchQuery
	sf := NewSearchForm(NewLocalization(), model.NewSearchQuery(), func(q model.SearchQuery) {
		submitted = append(submitted, q)
	})

	sf.resolutionEntry.SetText("3840x2160")
	test.Tap(sf.fetchBtn)

	require.Len(t, submitted, 1)
	assert.Equal(t, "3840x2160", submitted[0].Resolution)
	// categories and purity have no inputs and are carried over
	assert.Equal(t, model.DefaultCategories, submitted[0].Categories)
	assert.Equal(t, model.DefaultPurity, submitted[0].Purity)
}

func TestSearchForm_RangeOnlyForToplist(t *testing.T) {
	test.NewApp()

	sf := NewSearchForm(NewLocalization(), model.NewSearchQuery(), nil)
	assert.False(t, sf.rangeSelect.Disabled())

	sf.sortSelect.SetSelected(model.SortRandom)
	assert.True(t, sf.rangeSelect.Disabled())

	sf.sortSelect.SetSelected(model.SortToplist)
	assert.False(t, sf.rangeSelect.Disabled())
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validateResolution(""))
	assert.NoError(t, validateResolution("1920x1080"))
	assert.Error(t, validateResolution("1920*1080"))
	assert.Error(t, validateResolution("big"))

	assert.NoError(t, validateCount(""))
	assert.NoError(t, validateCount("24"))
	assert.Error(t, validateCount("0"))
	assert.Error(t, validateCount("abc"))
	assert.Error(t, validateCount("100000"))
}

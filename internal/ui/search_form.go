package ui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wallpaper-gallery/internal/model"
)

var resolutionPattern = regexp.MustCompile(`^\d{2,5}x\d{2,5}$`)

// SearchForm holds the remote query inputs shown above the online grid
type SearchForm struct {
	resolutionEntry *widget.Entry
	apiKeyEntry     *widget.Entry
	countEntry      *widget.Entry
	rangeSelect     *widget.Select
	sortSelect      *widget.Select
	fetchBtn        *widget.Button

	// fields of the last query that have no input of their own
	base model.SearchQuery

	localization *Localization
	onFetch      func(model.SearchQuery)

	container *fyne.Container
}

// NewSearchForm creates a form prefilled with q
func NewSearchForm(localization *Localization, q model.SearchQuery, onFetch func(model.SearchQuery)) *SearchForm {
	sf := &SearchForm{
		localization: localization,
		onFetch:      onFetch,
	}
	sf.createUI()
	sf.SetQuery(q)
	return sf
}

func (sf *SearchForm) createUI() {
	sf.resolutionEntry = widget.NewEntry()
	sf.resolutionEntry.SetPlaceHolder(model.DefaultResolution)
	sf.resolutionEntry.Validator = validateResolution

	sf.apiKeyEntry = widget.NewPasswordEntry()

	sf.countEntry = widget.NewEntry()
	sf.countEntry.SetPlaceHolder(strconv.Itoa(model.DefaultCount))
	sf.countEntry.Validator = validateCount

	sf.rangeSelect = widget.NewSelect(model.RangeOptions(), nil)
	sf.sortSelect = widget.NewSelect(model.SortOptions(), func(sort string) {
		// range only applies to the toplist
		if sort == model.SortToplist {
			sf.rangeSelect.Enable()
		} else {
			sf.rangeSelect.Disable()
		}
	})

	sf.fetchBtn = widget.NewButton("", sf.submit)
	sf.fetchBtn.Importance = widget.HighImportance

	sf.resolutionEntry.OnSubmitted = func(string) { sf.submit() }
	sf.countEntry.OnSubmitted = func(string) { sf.submit() }

	fixed := func(obj fyne.CanvasObject) fyne.CanvasObject {
		return container.New(layout.NewGridWrapLayout(fyne.NewSize(SearchEntryWidth, obj.MinSize().Height)), obj)
	}

	sf.container = container.NewBorder(nil, nil,
		container.NewHBox(
			fixed(sf.resolutionEntry),
			fixed(sf.countEntry),
			sf.sortSelect,
			sf.rangeSelect,
		),
		sf.fetchBtn,
		sf.apiKeyEntry,
	)
	sf.RefreshTexts()
}

// RefreshTexts re-applies localized labels
func (sf *SearchForm) RefreshTexts() {
	sf.fetchBtn.SetText(sf.localization.GetText(KeyFetch))
	sf.apiKeyEntry.SetPlaceHolder(sf.localization.GetText(KeyAPIKey))
	sf.sortSelect.PlaceHolder = sf.localization.GetText(KeySort)
	sf.rangeSelect.PlaceHolder = sf.localization.GetText(KeyRange)
	sf.sortSelect.Refresh()
	sf.rangeSelect.Refresh()
}

// SetQuery fills the inputs from q
func (sf *SearchForm) SetQuery(q model.SearchQuery) {
	sf.base = q
	sf.resolutionEntry.SetText(q.Resolution)
	sf.apiKeyEntry.SetText(q.APIKey)
	if q.Count > 0 {
		sf.countEntry.SetText(strconv.Itoa(q.Count))
	} else {
		sf.countEntry.SetText("")
	}
	sf.rangeSelect.SetSelected(q.Range)
	sf.sortSelect.SetSelected(q.Sort)
}

// Query builds a query from the inputs. Empty inputs fall back to the
// defaults; everything else is passed on as typed.
func (sf *SearchForm) Query() model.SearchQuery {
	q := sf.base

	q.Resolution = strings.TrimSpace(sf.resolutionEntry.Text)
	if q.Resolution == "" {
		q.Resolution = model.DefaultResolution
	}

	q.APIKey = strings.TrimSpace(sf.apiKeyEntry.Text)

	q.Count = model.DefaultCount
	if n, err := strconv.Atoi(strings.TrimSpace(sf.countEntry.Text)); err == nil && n > 0 {
		q.Count = n
	}

	q.Range = sf.rangeSelect.Selected
	if q.Range == "" {
		q.Range = model.DefaultRange
	}
	q.Sort = sf.sortSelect.Selected
	if q.Sort == "" {
		q.Sort = model.DefaultSort
	}

	return q
}

// SetBusy disables the fetch button while a request is running
func (sf *SearchForm) SetBusy(busy bool) {
	if busy {
		sf.fetchBtn.Disable()
	} else {
		sf.fetchBtn.Enable()
	}
}

// Container returns the form layout
func (sf *SearchForm) Container() *fyne.Container {
	return sf.container
}

func (sf *SearchForm) submit() {
	if sf.onFetch == nil {
		return
	}
	q := sf.Query()
	sf.base = q
	sf.onFetch(q)
}

func validateResolution(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !resolutionPattern.MatchString(s) {
		return fmt.Errorf("expected WIDTHxHEIGHT, e.g. %s", model.DefaultResolution)
	}
	return nil
}

func validateCount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > model.MaxCount {
		return fmt.Errorf("expected a number between 1 and %d", model.MaxCount)
	}
	return nil
}

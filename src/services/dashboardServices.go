package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/EnquiryBox/EnquiryBox-Backend/src/dtos"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DashboardPageSize is the fixed number of rows per dashboard page.
const DashboardPageSize = 50

// Sort options for the dashboard list.
const (
	SortLatest = "latest"
	SortOldest = "oldest"
	SortName   = "name"
)

// View event kinds accepted by ApplyViewEvent.
const (
	EventSearch = "search"
	EventSort   = "sort"
	EventPage   = "page"
)

// ViewState is the dashboard's serializable view state. It only changes
// through ApplyViewEvent, so the filter/sort/paginate composition is
// deterministic and testable without a rendering environment.
type ViewState struct {
	Search string `json:"search"`
	Sort   string `json:"sort"`
	Page   int    `json:"page"`
}

// ViewEvent is a single change to the view state.
type ViewEvent struct {
	Kind  string
	Value string
}

// NewViewState returns the default view state: no search, latest first, page 1.
func NewViewState() ViewState {
	return ViewState{Search: "", Sort: SortLatest, Page: 1}
}

// ApplyViewEvent returns the state after one event. Changing the search text
// or the sort option resets pagination to page 1; unknown sort options and
// malformed page numbers leave the previous value in place.
func ApplyViewEvent(state ViewState, event ViewEvent) ViewState {
	switch event.Kind {
	case EventSearch:
		state.Search = strings.ToLower(event.Value)
		state.Page = 1
	case EventSort:
		switch event.Value {
		case SortLatest, SortOldest, SortName:
			state.Sort = event.Value
			state.Page = 1
		}
	case EventPage:
		if page, err := strconv.Atoi(event.Value); err == nil && page >= 1 {
			state.Page = page
		}
	}
	return state
}

// DashboardView is one rendered page of the dashboard list.
type DashboardView struct {
	Rows        []dtos.EnquiryRowDTO `json:"rows"`
	Total       int                  `json:"total"`
	Page        int                  `json:"page"`
	TotalPages  int                  `json:"totalPages"`
	HasNext     bool                 `json:"hasNext"`
	HasPrevious bool                 `json:"hasPrevious"`
	Search      string               `json:"search"`
	Sort        string               `json:"sort"`
}

// SortEnquiries returns a new slice ordered by the given option: latest
// (createdAt descending), oldest (ascending) or name (locale-aware A-Z).
// The input slice is not modified and the sort is stable.
func SortEnquiries(enquiries []dtos.EnquiryDTO, option string) []dtos.EnquiryDTO {
	sorted := make([]dtos.EnquiryDTO, len(enquiries))
	copy(sorted, enquiries)

	switch option {
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	case SortName:
		collator := collate.New(language.English)
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	default: // SortLatest
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}
	return sorted
}

// FilterEnquiries keeps the enquiries whose name, email or phone contains the
// search string, case-insensitively. An empty search matches everything.
func FilterEnquiries(enquiries []dtos.EnquiryDTO, search string) []dtos.EnquiryDTO {
	search = strings.ToLower(search)
	if search == "" {
		return enquiries
	}

	filtered := make([]dtos.EnquiryDTO, 0, len(enquiries))
	for _, enquiry := range enquiries {
		if strings.Contains(strings.ToLower(enquiry.Name), search) ||
			strings.Contains(strings.ToLower(enquiry.Email), search) ||
			strings.Contains(enquiry.Phone, search) {
			filtered = append(filtered, enquiry)
		}
	}
	return filtered
}

// PaginateEnquiries returns the 1-based page window of the list and the total
// page count, ceil(len/DashboardPageSize).
func PaginateEnquiries(enquiries []dtos.EnquiryDTO, page int) ([]dtos.EnquiryDTO, int) {
	totalPages := (len(enquiries) + DashboardPageSize - 1) / DashboardPageSize
	if page < 1 {
		page = 1
	}

	first := (page - 1) * DashboardPageSize
	if first >= len(enquiries) {
		return []dtos.EnquiryDTO{}, totalPages
	}
	last := first + DashboardPageSize
	if last > len(enquiries) {
		last = len(enquiries)
	}
	return enquiries[first:last], totalPages
}

// BuildDashboardView runs the full sort, filter and paginate pipeline over the
// loaded enquiries for the given view state.
func BuildDashboardView(enquiries []dtos.EnquiryDTO, state ViewState) DashboardView {
	sorted := SortEnquiries(enquiries, state.Sort)
	filtered := FilterEnquiries(sorted, state.Search)
	window, totalPages := PaginateEnquiries(filtered, state.Page)

	rows := make([]dtos.EnquiryRowDTO, len(window))
	for i, enquiry := range window {
		rows[i] = dtos.NewEnquiryRowDTO(enquiry)
	}

	return DashboardView{
		Rows:        rows,
		Total:       len(filtered),
		Page:        state.Page,
		TotalPages:  totalPages,
		HasNext:     state.Page < totalPages,
		HasPrevious: state.Page > 1,
		Search:      state.Search,
		Sort:        state.Sort,
	}
}

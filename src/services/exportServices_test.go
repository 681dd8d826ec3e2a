package services

import (
	"testing"
	"time"

	"github.com/EnquiryBox/EnquiryBox-Backend/src/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectExportRowsDayWindows(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	enquiries := []dtos.EnquiryDTO{
		{ID: 1, Name: "ThisMorning", CreatedAt: now.Add(-5 * time.Hour)},
		{ID: 2, Name: "Yesterday", CreatedAt: now.AddDate(0, 0, -1)},
		{ID: 3, Name: "ExactlySevenDays", CreatedAt: now.AddDate(0, 0, -7)},
		{ID: 4, Name: "EightDays", CreatedAt: now.AddDate(0, 0, -8)},
		{ID: 5, Name: "ExactlyThirtyDays", CreatedAt: now.AddDate(0, 0, -30)},
		{ID: 6, Name: "FortyDays", CreatedAt: now.AddDate(0, 0, -40)},
	}

	tests := []struct {
		option  string
		wantIDs []int
	}{
		{option: ExportAllData, wantIDs: []int{1, 2, 3, 4, 5, 6}},
		{option: ExportToday, wantIDs: []int{1}},
		// Boundary is inclusive at exactly 7 and 30 days
		{option: ExportLast7Days, wantIDs: []int{1, 2, 3}},
		{option: ExportLast30Days, wantIDs: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			rows, err := SelectExportRows(enquiries, NewViewState(), tt.option, now)
			require.NoError(t, err)
			ids := make([]int, 0, len(rows))
			for _, row := range rows {
				ids = append(ids, row.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSelectExportRowsCurrentPage(t *testing.T) {
	enquiries := makeEnquiries(120)
	state := ViewState{Sort: SortOldest, Page: 2}

	rows, err := SelectExportRows(enquiries, state, ExportCurrentPage, time.Now())
	require.NoError(t, err)
	require.Len(t, rows, DashboardPageSize)
	assert.Equal(t, 51, rows[0].ID)
	assert.Equal(t, 100, rows[len(rows)-1].ID)
}

func TestSelectExportRowsUnknownOption(t *testing.T) {
	_, err := SelectExportRows(nil, NewViewState(), "lastYear", time.Now())
	assert.Error(t, err)
}

func TestBuildEnquiryWorkbook(t *testing.T) {
	enquiries := []dtos.EnquiryDTO{
		{
			ID:        1,
			Name:      "Jane Doe",
			Email:     "jane@x.com",
			Phone:     "9876543210",
			Query:     "Where is my order?",
			CreatedAt: time.Date(2026, 8, 9, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        2,
			Name:      "John Smith",
			Email:     "john@y.com",
			Phone:     "0123456789",
			Query:     "Refund please",
			CreatedAt: time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	workbook, err := BuildEnquiryWorkbook(enquiries)
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Enquiries")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Name", "Email", "Phone", "Query", "Date"}, rows[0])
	assert.Equal(t, []string{"Jane Doe", "jane@x.com", "9876543210", "Where is my order?", "09/08/2026"}, rows[1])
	// A phone with a leading zero survives as text
	assert.Equal(t, "0123456789", rows[2][2])
}

func TestBuildEnquiryWorkbookEmpty(t *testing.T) {
	workbook, err := BuildEnquiryWorkbook(nil)
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Enquiries")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Name", "Email", "Phone", "Query", "Date"}, rows[0])
}

package services

import (
	"fmt"
	"time"

	"github.com/EnquiryBox/EnquiryBox-Backend/src/dtos"
	excelize "github.com/xuri/excelize/v2"
)

// ExportFilename is the attachment name of the generated spreadsheet.
const ExportFilename = "enquiries.xlsx"

const exportSheetName = "Enquiries"

// Export options: which record set goes into the spreadsheet.
const (
	ExportCurrentPage = "currentPage"
	ExportAllData     = "allData"
	ExportToday       = "today"
	ExportLast7Days   = "last7Days"
	ExportLast30Days  = "last30Days"
)

// SelectExportRows picks the record set for the given export option. The
// currentPage option re-runs the dashboard pipeline with the caller's view
// state; the day-window options compare createdAt against now with an
// inclusive lower bound.
func SelectExportRows(enquiries []dtos.EnquiryDTO, state ViewState, option string, now time.Time) ([]dtos.EnquiryDTO, error) {
	switch option {
	case ExportCurrentPage:
		sorted := SortEnquiries(enquiries, state.Sort)
		filtered := FilterEnquiries(sorted, state.Search)
		window, _ := PaginateEnquiries(filtered, state.Page)
		return window, nil
	case ExportAllData:
		return enquiries, nil
	case ExportToday:
		year, month, day := now.Date()
		filtered := make([]dtos.EnquiryDTO, 0, len(enquiries))
		for _, enquiry := range enquiries {
			y, m, d := enquiry.CreatedAt.Date()
			if y == year && m == month && d == day {
				filtered = append(filtered, enquiry)
			}
		}
		return filtered, nil
	case ExportLast7Days:
		return filterSince(enquiries, now.AddDate(0, 0, -7)), nil
	case ExportLast30Days:
		return filterSince(enquiries, now.AddDate(0, 0, -30)), nil
	default:
		return nil, fmt.Errorf("unknown export option: %s", option)
	}
}

func filterSince(enquiries []dtos.EnquiryDTO, cutoff time.Time) []dtos.EnquiryDTO {
	filtered := make([]dtos.EnquiryDTO, 0, len(enquiries))
	for _, enquiry := range enquiries {
		if !enquiry.CreatedAt.Before(cutoff) {
			filtered = append(filtered, enquiry)
		}
	}
	return filtered
}

// BuildEnquiryWorkbook writes the rows into an xlsx workbook with the header
// Name, Email, Phone, Query, Date. Phone goes in as text so spreadsheet
// software does not reformat it as a number.
func BuildEnquiryWorkbook(enquiries []dtos.EnquiryDTO) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, err
	}

	header := []interface{}{"Name", "Email", "Phone", "Query", "Date"}
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, enquiry := range enquiries {
		row := []interface{}{
			enquiry.Name,
			enquiry.Email,
			enquiry.Phone,
			enquiry.Query,
			enquiry.CreatedAt.Format(dtos.DisplayDateFormat),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

package dtos

import (
	"strconv"
	"time"

	"github.com/EnquiryBox/EnquiryBox-Backend/src/models"
)

// DisplayDateFormat renders createdAt as dd/mm/yyyy for list rows, detail views
// and the export spreadsheet.
const DisplayDateFormat = "02/01/2006"

// listQueryLimit is how many characters of the query text a list row shows.
const listQueryLimit = 50

// EnquiryDTO is the transport shape of an enquiry. Phone is serialized as a
// string because its bigint storage width exceeds the safe integer range of
// JSON consumers.
type EnquiryDTO struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Query     string    `json:"query"`
	CreatedAt time.Time `json:"createdAt"`
}

// EnquiryRowDTO is one row of the dashboard list view: query truncated for
// display, date pre-formatted.
type EnquiryRowDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Query string `json:"query"`
	Date  string `json:"date"`
}

// EnquiryDetailDTO is the unabridged detail view of a single enquiry.
type EnquiryDetailDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Query string `json:"query"`
	Date  string `json:"date"`
}

func NewEnquiryDTO(enquiry *models.EnquiryModel) EnquiryDTO {
	return EnquiryDTO{
		ID:        enquiry.Id,
		Name:      enquiry.Name,
		Email:     enquiry.Email,
		Phone:     strconv.FormatInt(enquiry.Phone, 10),
		Query:     enquiry.Query,
		CreatedAt: enquiry.CreatedAt,
	}
}

func NewEnquiryDTOs(enquiries []models.EnquiryModel) []EnquiryDTO {
	result := make([]EnquiryDTO, len(enquiries))
	for i := range enquiries {
		result[i] = NewEnquiryDTO(&enquiries[i])
	}
	return result
}

func NewEnquiryRowDTO(enquiry EnquiryDTO) EnquiryRowDTO {
	return EnquiryRowDTO{
		ID:    enquiry.ID,
		Name:  enquiry.Name,
		Email: enquiry.Email,
		Phone: enquiry.Phone,
		Query: TruncateQuery(enquiry.Query),
		Date:  enquiry.CreatedAt.Format(DisplayDateFormat),
	}
}

func NewEnquiryDetailDTO(enquiry *models.EnquiryModel) EnquiryDetailDTO {
	return EnquiryDetailDTO{
		ID:    enquiry.Id,
		Name:  enquiry.Name,
		Email: enquiry.Email,
		Phone: strconv.FormatInt(enquiry.Phone, 10),
		Query: enquiry.Query,
		Date:  enquiry.CreatedAt.Format(DisplayDateFormat),
	}
}

// TruncateQuery shortens query text to the list display limit. The full text
// stays in storage and in the detail view.
func TruncateQuery(query string) string {
	runes := []rune(query)
	if len(runes) <= listQueryLimit {
		return query
	}
	return string(runes[:listQueryLimit]) + "..."
}

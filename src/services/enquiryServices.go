package services

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/EnquiryBox/EnquiryBox-Backend/src/models"
	"gorm.io/gorm"
)

var (
	nameRegex  = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRegex = regexp.MustCompile(`\S+@\S+\.\S+`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidationError is a field-rule violation in an intake submission. It never
// reaches storage and carries a message safe to show the customer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PhoneField accepts the phone value as either a JSON string or a JSON number.
type PhoneField string

func (p *PhoneField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = PhoneField(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PhoneField(n.String())
	return nil
}

// EnquirySubmission is the intake payload of the storefront contact form.
type EnquirySubmission struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Phone PhoneField `json:"phone"`
	Query string     `json:"query"`
}

type EnquiryService struct {
	db *gorm.DB
}

// NewEnquiryService creates a new instance of EnquiryService
func NewEnquiryService(db *gorm.DB) *EnquiryService {
	return &EnquiryService{db: db}
}

// ValidateSubmission applies the intake field rules in order and returns the
// first violation. The same rule list backs every entry point that accepts a
// submission.
func (s *EnquiryService) ValidateSubmission(sub *EnquirySubmission) *ValidationError {
	name := strings.TrimSpace(sub.Name)
	if name == "" {
		return &ValidationError{Message: "Name is required."}
	}
	if !nameRegex.MatchString(name) {
		return &ValidationError{Message: "Name can only contain letters and spaces."}
	}

	email := strings.TrimSpace(sub.Email)
	if email == "" {
		return &ValidationError{Message: "Email is required."}
	}
	if !emailRegex.MatchString(email) {
		return &ValidationError{Message: "Invalid email format."}
	}

	phone := strings.TrimSpace(string(sub.Phone))
	if phone == "" {
		return &ValidationError{Message: "Phone number is required."}
	}
	if !phoneRegex.MatchString(phone) {
		return &ValidationError{Message: "Invalid phone number format. Must be 10 digits."}
	}

	if strings.TrimSpace(sub.Query) == "" {
		return &ValidationError{Message: "Query is required."}
	}

	return nil
}

// CreateEnquiry validates a submission and persists exactly one record. A
// *ValidationError return means nothing was written; any other error is a
// storage failure.
func (s *EnquiryService) CreateEnquiry(sub *EnquirySubmission) (*models.EnquiryModel, error) {
	if vErr := s.ValidateSubmission(sub); vErr != nil {
		return nil, vErr
	}

	phone, err := strconv.ParseInt(strings.TrimSpace(string(sub.Phone)), 10, 64)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid phone number format. Must be 10 digits."}
	}

	enquiry := &models.EnquiryModel{
		Name:  strings.TrimSpace(sub.Name),
		Email: strings.TrimSpace(sub.Email),
		Phone: phone,
		Query: sub.Query,
	}

	result := s.db.Create(enquiry)
	if result.Error != nil {
		return nil, result.Error
	}
	return enquiry, nil
}

// GetAllEnquiries retrieves all enquiry records, newest first
func (s *EnquiryService) GetAllEnquiries() ([]models.EnquiryModel, error) {
	var enquiries []models.EnquiryModel
	result := s.db.Order("created_at DESC").Find(&enquiries)
	if result.Error != nil {
		return nil, result.Error
	}
	return enquiries, nil
}

// GetEnquiryByID retrieves an enquiry record by ID
func (s *EnquiryService) GetEnquiryByID(id int) (*models.EnquiryModel, error) {
	var enquiry models.EnquiryModel
	result := s.db.First(&enquiry, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &enquiry, nil
}

// DeleteEnquiry deletes an enquiry record by ID. Deleting an unknown id is
// reported as gorm.ErrRecordNotFound so the caller can fold it into the
// generic failure path.
func (s *EnquiryService) DeleteEnquiry(id int) error {
	result := s.db.Delete(&models.EnquiryModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

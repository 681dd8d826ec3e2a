package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/EnquiryBox/EnquiryBox-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupEnquiryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.EnquiryModel{}))
	return db
}

func validSubmission() EnquirySubmission {
	return EnquirySubmission{
		Name:  "Jane Doe",
		Email: "jane@x.com",
		Phone: "9876543210",
		Query: "Where is my order?",
	}
}

func TestValidateSubmission(t *testing.T) {
	service := NewEnquiryService(nil)

	tests := []struct {
		name    string
		modify  func(*EnquirySubmission)
		wantMsg string
	}{
		{
			name:   "valid submission",
			modify: func(s *EnquirySubmission) {},
		},
		{
			name:    "missing name",
			modify:  func(s *EnquirySubmission) { s.Name = "" },
			wantMsg: "Name is required.",
		},
		{
			name:    "name with digits",
			modify:  func(s *EnquirySubmission) { s.Name = "Jane 2 Doe" },
			wantMsg: "Name can only contain letters and spaces.",
		},
		{
			name:    "name with punctuation",
			modify:  func(s *EnquirySubmission) { s.Name = "Jane O'Doe" },
			wantMsg: "Name can only contain letters and spaces.",
		},
		{
			name:    "missing email",
			modify:  func(s *EnquirySubmission) { s.Email = "" },
			wantMsg: "Email is required.",
		},
		{
			name:    "email without at sign",
			modify:  func(s *EnquirySubmission) { s.Email = "jane.x.com" },
			wantMsg: "Invalid email format.",
		},
		{
			name:    "email without tld",
			modify:  func(s *EnquirySubmission) { s.Email = "jane@xcom" },
			wantMsg: "Invalid email format.",
		},
		{
			name:    "missing phone",
			modify:  func(s *EnquirySubmission) { s.Phone = "" },
			wantMsg: "Phone number is required.",
		},
		{
			name:    "phone too short",
			modify:  func(s *EnquirySubmission) { s.Phone = "987654321" },
			wantMsg: "Invalid phone number format. Must be 10 digits.",
		},
		{
			name:    "phone too long",
			modify:  func(s *EnquirySubmission) { s.Phone = "98765432101" },
			wantMsg: "Invalid phone number format. Must be 10 digits.",
		},
		{
			name:    "phone with letters",
			modify:  func(s *EnquirySubmission) { s.Phone = "98765abc10" },
			wantMsg: "Invalid phone number format. Must be 10 digits.",
		},
		{
			name:    "missing query",
			modify:  func(s *EnquirySubmission) { s.Query = "" },
			wantMsg: "Query is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.modify(&sub)
			err := service.ValidateSubmission(&sub)
			if tt.wantMsg == "" {
				assert.Nil(t, err)
			} else {
				require.NotNil(t, err)
				assert.Equal(t, tt.wantMsg, err.Message)
			}
		})
	}
}

func TestValidateSubmissionRuleOrder(t *testing.T) {
	// With every field invalid, the name rule fires first
	service := NewEnquiryService(nil)
	err := service.ValidateSubmission(&EnquirySubmission{})
	require.NotNil(t, err)
	assert.Equal(t, "Name is required.", err.Message)
}

func TestCreateEnquiry(t *testing.T) {
	db := setupEnquiryDB(t)
	service := NewEnquiryService(db)

	sub := validSubmission()
	enquiry, err := service.CreateEnquiry(&sub)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", enquiry.Name)
	assert.Equal(t, "jane@x.com", enquiry.Email)
	assert.Equal(t, int64(9876543210), enquiry.Phone)
	assert.Equal(t, "Where is my order?", enquiry.Query)
	assert.False(t, enquiry.CreatedAt.IsZero())

	var count int64
	require.NoError(t, db.Model(&models.EnquiryModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateEnquiryInvalidDoesNotInsert(t *testing.T) {
	db := setupEnquiryDB(t)
	service := NewEnquiryService(db)

	sub := validSubmission()
	sub.Email = "not-an-email"
	_, err := service.CreateEnquiry(&sub)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Invalid email format.", vErr.Message)

	var count int64
	require.NoError(t, db.Model(&models.EnquiryModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPhoneFieldUnmarshal(t *testing.T) {
	var sub EnquirySubmission
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Jane","phone":"9876543210"}`), &sub))
	assert.Equal(t, PhoneField("9876543210"), sub.Phone)

	sub = EnquirySubmission{}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Jane","phone":9876543210}`), &sub))
	assert.Equal(t, PhoneField("9876543210"), sub.Phone)
}

func TestGetAllEnquiriesOrder(t *testing.T) {
	db := setupEnquiryDB(t)
	service := NewEnquiryService(db)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"First", "Second", "Third"} {
		require.NoError(t, db.Create(&models.EnquiryModel{
			Name:      name,
			Email:     "a@b.co",
			Phone:     9876543210,
			Query:     "q",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}).Error)
	}

	enquiries, err := service.GetAllEnquiries()
	require.NoError(t, err)
	require.Len(t, enquiries, 3)
	assert.Equal(t, "Third", enquiries[0].Name)
	assert.Equal(t, "Second", enquiries[1].Name)
	assert.Equal(t, "First", enquiries[2].Name)
}

func TestDeleteEnquiry(t *testing.T) {
	db := setupEnquiryDB(t)
	service := NewEnquiryService(db)

	keep := models.EnquiryModel{Name: "Keep", Email: "k@x.co", Phone: 1111111111, Query: "q"}
	drop := models.EnquiryModel{Name: "Drop", Email: "d@x.co", Phone: 2222222222, Query: "q"}
	require.NoError(t, db.Create(&keep).Error)
	require.NoError(t, db.Create(&drop).Error)

	require.NoError(t, service.DeleteEnquiry(drop.Id))

	enquiries, err := service.GetAllEnquiries()
	require.NoError(t, err)
	require.Len(t, enquiries, 1)
	assert.Equal(t, keep.Id, enquiries[0].Id)
}

func TestDeleteEnquiryUnknownID(t *testing.T) {
	db := setupEnquiryDB(t)
	service := NewEnquiryService(db)

	err := service.DeleteEnquiry(12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

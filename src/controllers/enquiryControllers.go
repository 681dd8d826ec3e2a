package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/EnquiryBox/EnquiryBox-Backend/src/dtos"
	"github.com/EnquiryBox/EnquiryBox-Backend/src/metrics"
	"github.com/EnquiryBox/EnquiryBox-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type EnquiryController struct {
	service *services.EnquiryService
}

func NewEnquiryController(service *services.EnquiryService) *EnquiryController {
	return &EnquiryController{service: service}
}

// SubmitEnquiry handles POST requests from the storefront contact form
func (c *EnquiryController) SubmitEnquiry(ctx *gin.Context) {
	var submission services.EnquirySubmission
	if err := ctx.ShouldBindJSON(&submission); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	_, err := c.service.CreateEnquiry(&submission)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": vErr.Message})
			return
		}
		log.Printf("[ENQUIRY] Submit failed: database error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database error"})
		return
	}

	metrics.RecordEnquirySubmission()
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Form submitted successfully!"})
}

// GetAllEnquiries handles GET requests to retrieve the full enquiry collection,
// newest first, phone serialized as a string
func (c *EnquiryController) GetAllEnquiries(ctx *gin.Context) {
	enquiries, err := c.service.GetAllEnquiries()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"enquiries": dtos.NewEnquiryDTOs(enquiries)})
}

// GetDashboardView handles GET requests for one page of the dashboard list.
// Query params: search, sort (latest|oldest|name), page (1-based).
func (c *EnquiryController) GetDashboardView(ctx *gin.Context) {
	state := viewStateFromQuery(ctx)

	enquiries, err := c.service.GetAllEnquiries()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	view := services.BuildDashboardView(dtos.NewEnquiryDTOs(enquiries), state)
	ctx.JSON(http.StatusOK, view)
}

// GetEnquiryByID handles GET requests to retrieve one enquiry unabridged
func (c *EnquiryController) GetEnquiryByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enquiry ID"})
		return
	}

	enquiry, err := c.service.GetEnquiryByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Enquiry not found"})
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewEnquiryDetailDTO(enquiry))
}

// DeleteEnquiry handles DELETE requests with a form-encoded id. The form body
// is parsed by hand because net/http only populates PostForm for POST, PUT
// and PATCH.
func (c *EnquiryController) DeleteEnquiry(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	idParam := form.Get("id")
	if idParam == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	id, err := strconv.Atoi(idParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// An unknown id takes the same generic failure path as a storage outage
	if err := c.service.DeleteEnquiry(id); err != nil {
		log.Printf("[ENQUIRY] Delete failed: id=%d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete enquiry"})
		return
	}

	metrics.RecordEnquiryDeletion()
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// ExportEnquiries handles GET requests to download the enquiries spreadsheet.
// The option query param picks the record set; the currentPage option also
// honours search, sort and page params.
func (c *EnquiryController) ExportEnquiries(ctx *gin.Context) {
	option := ctx.DefaultQuery("option", services.ExportCurrentPage)
	state := viewStateFromQuery(ctx)

	enquiries, err := c.service.GetAllEnquiries()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows, err := services.SelectExportRows(dtos.NewEnquiryDTOs(enquiries), state, option, time.Now())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid export option"})
		return
	}

	workbook, err := services.BuildEnquiryWorkbook(rows)
	if err != nil {
		log.Printf("[ENQUIRY] Export failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export enquiries"})
		return
	}
	buf, err := workbook.WriteToBuffer()
	if err != nil {
		log.Printf("[ENQUIRY] Export failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export enquiries"})
		return
	}

	metrics.RecordEnquiryExport(option)
	ctx.Header("Content-Disposition", `attachment; filename="`+services.ExportFilename+`"`)
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// viewStateFromQuery builds the view state from the request, every change
// going through the single ApplyViewEvent function so the page-reset rules
// hold. The page param is applied last so it wins over the resets.
func viewStateFromQuery(ctx *gin.Context) services.ViewState {
	state := services.NewViewState()
	if search, ok := ctx.GetQuery("search"); ok {
		state = services.ApplyViewEvent(state, services.ViewEvent{Kind: services.EventSearch, Value: search})
	}
	if sortOption, ok := ctx.GetQuery("sort"); ok {
		state = services.ApplyViewEvent(state, services.ViewEvent{Kind: services.EventSort, Value: sortOption})
	}
	if page, ok := ctx.GetQuery("page"); ok {
		state = services.ApplyViewEvent(state, services.ViewEvent{Kind: services.EventPage, Value: page})
	}
	return state
}

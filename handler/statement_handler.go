package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Aashish23092/statement-top-amounts/dto"
	"github.com/Aashish23092/statement-top-amounts/service"
	"github.com/Aashish23092/statement-top-amounts/utils/report"
	"github.com/gin-gonic/gin"
)

type StatementHandler struct {
	statementService *service.StatementService
	maxFileSize      int64
}

func NewStatementHandler(statementService *service.StatementService, maxFileSize int64) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
		maxFileSize:      maxFileSize,
	}
}

// TopAmounts handles the POST /statements/top-amounts endpoint
func (h *StatementHandler) TopAmounts(c *gin.Context) {
	log.Printf("[%s] Received top amounts request", requestID(c))

	request, ok := h.bindTable(c)
	if !ok {
		return
	}

	result := h.statementService.TopAmounts(request.Table)
	c.JSON(http.StatusOK, h.respond(c, result, 0))
}

// ExportTopAmounts handles the POST /statements/top-amounts/export endpoint
func (h *StatementHandler) ExportTopAmounts(c *gin.Context) {
	log.Printf("[%s] Received top amounts export request", requestID(c))

	request, ok := h.bindTable(c)
	if !ok {
		return
	}

	result := h.statementService.TopAmounts(request.Table)
	export, err := h.statementService.Export(result, c.Query("format"))
	if err != nil {
		if errors.Is(err, dto.ErrNothingToExport) {
			h.sendError(c, http.StatusUnprocessableEntity, "NOTHING_TO_EXPORT", "Nothing to export", err)
			return
		}
		h.sendError(c, http.StatusBadRequest, "EXPORT_FAILED", "Failed to export report", err)
		return
	}

	attachment(c, export.Filename, export.ContentType, export.Body)
}

// Extract handles the POST /statements/extract endpoint
func (h *StatementHandler) Extract(c *gin.Context) {
	log.Printf("[%s] Received statement extraction request", requestID(c))

	var request dto.ExtractRequest
	if err := c.ShouldBind(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "A statement file is required", err)
		return
	}
	if h.maxFileSize > 0 && request.File.Size > h.maxFileSize {
		h.sendError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
			fmt.Sprintf("file exceeds %d bytes", h.maxFileSize), nil)
		return
	}

	f, err := request.File.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Failed to open file", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Failed to read file", err)
		return
	}

	table, err := h.statementService.ExtractTable(c.Request.Context(), request.File.Filename, data, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrUnsupportedFile):
			h.sendError(c, http.StatusUnsupportedMediaType, "UNSUPPORTED_FILE", "Unsupported file", err)
		case errors.Is(err, dto.ErrMalformedTable):
			h.sendError(c, http.StatusBadRequest, "INVALID_TABLE", "Malformed table", err)
		default:
			h.sendError(c, http.StatusBadGateway, "EXTRACTION_FAILED", "Failed to extract table", err)
		}
		return
	}

	log.Printf("[%s] Extracted %d rows from %s", requestID(c), len(table), request.File.Filename)

	result := h.statementService.TopAmounts(table)
	c.JSON(http.StatusOK, h.respond(c, result, len(table)))
}

// ExportTable handles the POST /tables/export endpoint
func (h *StatementHandler) ExportTable(c *gin.Context) {
	request, ok := h.bindTable(c)
	if !ok {
		return
	}

	attachment(c, report.TableFilename, "text/csv; charset=utf-8", report.TableCSV(request.Table))
}

func (h *StatementHandler) bindTable(c *gin.Context) (*dto.TopAmountsRequest, bool) {
	var request dto.TopAmountsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "INVALID_TABLE", "Request body must be {\"table\": [[...]]}", err)
		return nil, false
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, "INVALID_TABLE", err.Error(), err)
		return nil, false
	}
	return &request, true
}

func (h *StatementHandler) respond(c *gin.Context, result dto.RankedResult, tableRows int) *dto.TopAmountsResponse {
	resp := h.statementService.BuildResponse(requestID(c), result)
	resp.TableRows = tableRows
	resp.ProcessedAt = time.Now().Format(time.RFC3339)
	if !resp.Found {
		log.Printf("[%s] %s", requestID(c), dto.NoEntriesMessage)
	}
	return resp
}

func attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, body)
}

// sendError sends a structured error response
func (h *StatementHandler) sendError(c *gin.Context, statusCode int, code, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("[%s] Error: %s - %v", requestID(c), message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:     code,
		Message:   errorMsg,
		Code:      statusCode,
		RequestID: requestID(c),
	})
}

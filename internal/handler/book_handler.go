package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbilling/internal/service"
)

// BookHandler handles customer ledger endpoints.
type BookHandler struct {
	bookService service.BookService
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// List handles GET /api/v1/books
func (h *BookHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	books, err := h.bookService.List(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, books)
}

// GetByID handles GET /api/v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	bookID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	book, err := h.bookService.GetByID(c.Request.Context(), userID, bookID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, book)
}

// AddLog handles POST /api/v1/books/:id/logs
func (h *BookHandler) AddLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	bookID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input service.AddBookLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	logEntry, err := h.bookService.AddLog(c.Request.Context(), userID, bookID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, logEntry)
}

// ListLogs handles GET /api/v1/books/:id/logs
func (h *BookHandler) ListLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	bookID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	logs, err := h.bookService.ListLogs(c.Request.Context(), userID, bookID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, logs)
}

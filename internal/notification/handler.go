package notification

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Curadi/SPNotification/pkg/response"
)

// Handler handles HTTP requests for notification operations
type Handler struct {
	service     *Service
	validate    *validator.Validate
	maxPageSize int
	logger      *logrus.Logger
}

// NewHandler creates a new notification handler with service dependency
// injected. maxPageSize caps the pageSize query parameter; values below 1
// fall back to MaxPageSize.
func NewHandler(service *Service, maxPageSize int, logger *logrus.Logger) *Handler {
	if maxPageSize < 1 {
		maxPageSize = MaxPageSize
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		service:     service,
		validate:    validator.New(),
		maxPageSize: maxPageSize,
		logger:      logger,
	}
}

// Routes returns the router for notification endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}/read", h.MarkAsRead)
	r.Get("/stream", h.Stream)

	return r
}

// List handles GET /notifications
// @Summary      List notifications
// @Description  List notifications with pagination and optional read/type filters, newest first
// @Tags         notifications
// @Produce      json
// @Param        page query int false "Page number (default 1)"
// @Param        pageSize query int false "Page size (default 10, max 100)"
// @Param        read query bool false "Filter by read state"
// @Param        type query string false "Filter by notification type"
// @Success      200 {object} response.APIResponse{data=[]NotificationResponse}
// @Failure      500 {object} response.APIResponse
// @Router       /notifications [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

	var read *bool
	if raw := r.URL.Query().Get("read"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			read = &value
		} else {
			response.BadRequest(w, "Invalid read filter")
			return
		}
	}

	query := NewBoundedQuery(page, pageSize, read, r.URL.Query().Get("type"), h.maxPageSize)

	items, total, err := h.service.List(r.Context(), query)
	if err != nil {
		h.logger.WithError(err).Error("failed to list notifications")
		response.InternalError(w, "Failed to list notifications")
		return
	}

	totalPages := (total + query.PageSize - 1) / query.PageSize
	meta := &response.Meta{
		Page:       query.Page,
		PerPage:    query.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, items, meta)
}

// Create handles POST /notifications
// @Summary      Create a notification
// @Description  Create a new unread notification and broadcast it to connected clients
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request body CreateNotificationRequest true "Notification creation request"
// @Success      201 {object} response.APIResponse{data=NotificationResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      500 {object} response.APIResponse
// @Router       /notifications [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		response.BadRequest(w, "Invalid request body: message is required")
		return
	}

	n, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			response.BadRequest(w, err.Error())
			return
		}
		h.logger.WithError(err).Error("failed to create notification")
		response.InternalError(w, "Failed to create notification")
		return
	}

	response.JSON(w, http.StatusCreated, n.ToResponse())
}

// MarkAsRead handles PUT /notifications/{id}/read
// @Summary      Mark a notification as read
// @Description  Transition a notification to read; idempotent for already-read notifications
// @Tags         notifications
// @Produce      json
// @Param        id path string true "Notification ID"
// @Success      204 "No Content"
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      500 {object} response.APIResponse
// @Router       /notifications/{id}/read [put]
func (h *Handler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(w, "Invalid notification ID")
		return
	}

	if err := h.service.MarkAsRead(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			response.NotFound(w, "Notification not found")
			return
		}
		h.logger.WithError(err).Error("failed to mark notification as read")
		response.InternalError(w, "Failed to mark notification as read")
		return
	}

	response.NoContent(w)
}

// Package handler exposes the tracker as a JSON API over chi. Each endpoint
// decodes into a request struct, validates, and delegates to the service;
// responses and error envelopes go through httputil.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vendortrack/internal/audit"
	"vendortrack/internal/tracker/expiry"
	"vendortrack/internal/tracker/models"
	"vendortrack/internal/tracker/service"
	"vendortrack/internal/tracker/views"
	dErrors "vendortrack/pkg/domainerrors"
	"vendortrack/pkg/httputil"
	"vendortrack/pkg/requestcontext"
)

// Maximum audit entries returned by GET /audit-logs.
const auditViewLimit = 50

// Service defines the tracker operations the handlers need.
type Service interface {
	Stats(ctx context.Context) (views.Stats, error)
	ListDocuments(ctx context.Context, query, statusFilter string) ([]models.Document, error)
	CriticalDocuments(ctx context.Context) ([]views.CriticalDocument, error)
	CreateDocument(ctx context.Context, vendorID, title string, docType models.DocumentType, issuedAt *models.Date, expiresAt models.Date) (*models.Document, []models.Reminder, error)
	UpdateDocument(ctx context.Context, doc models.Document) (*models.Document, error)
	DeleteDocument(ctx context.Context, id string) error
	ListVendors(ctx context.Context) ([]views.VendorSummary, error)
	CreateVendor(ctx context.Context, name string, vendorType models.VendorType, contact, notes string) (*models.Vendor, error)
	UpdateVendor(ctx context.Context, vendor models.Vendor) (*models.Vendor, error)
	DeleteVendor(ctx context.Context, id string) error
	ListReminders(ctx context.Context) ([]models.Reminder, error)
	CreateReminder(ctx context.Context, documentID string, remindAt time.Time, channel models.Channel, message string) (*models.Reminder, error)
	Login(ctx context.Context, email, password string) (*service.Session, error)
	Logout(ctx context.Context)
	ExportCSV(ctx context.Context) (string, error)
}

// AuditLister reads the audit trail, newest first.
type AuditLister interface {
	List(ctx context.Context) ([]audit.Entry, error)
}

// Handler wires tracker endpoints to the service.
type Handler struct {
	service Service
	audits  AuditLister
	logger  *slog.Logger
}

// New constructs a tracker handler with its dependencies.
func New(service Service, audits AuditLister, logger *slog.Logger) *Handler {
	return &Handler{service: service, audits: audits, logger: logger}
}

// RegisterPublic mounts the endpoints reachable without a session.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/login", h.HandleLogin)
}

// Register mounts the authenticated endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Post("/logout", h.HandleLogout)
	r.Get("/stats", h.HandleStats)

	r.Get("/documents", h.HandleListDocuments)
	r.Get("/documents/critical", h.HandleCriticalDocuments)
	r.Post("/documents", h.HandleCreateDocument)
	r.Put("/documents/{id}", h.HandleUpdateDocument)
	r.Delete("/documents/{id}", h.HandleDeleteDocument)

	r.Get("/vendors", h.HandleListVendors)
	r.Post("/vendors", h.HandleCreateVendor)
	r.Put("/vendors/{id}", h.HandleUpdateVendor)
	r.Delete("/vendors/{id}", h.HandleDeleteVendor)

	r.Get("/reminders", h.HandleListReminders)
	r.Post("/reminders", h.HandleCreateReminder)

	r.Get("/audit-logs", h.HandleListAuditLogs)
	r.Get("/export", h.HandleExport)
}

// HandleLogin handles POST /login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[LoginRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	session, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "user logged in",
		"request_id", requestID,
		"user_id", session.User.ID,
	)
	httputil.WriteJSON(w, http.StatusOK, LoginResponse{
		User:  UserFromModel(session.User),
		Token: session.Token,
	})
}

// HandleLogout handles POST /logout.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// HandleStats handles GET /stats.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "stats failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

// HandleListDocuments handles GET /documents with optional query and status
// filters.
func (h *Handler) HandleListDocuments(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && status != views.FilterAll {
		if _, ok := expiry.ParseStatus(status); !ok {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "unknown status filter: "+status))
			return
		}
	}

	docs, err := h.service.ListDocuments(r.Context(), r.URL.Query().Get("query"), status)
	if err != nil {
		h.writeServiceError(w, r, "document listing failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, DocumentsResponse{Documents: docs})
}

// HandleCriticalDocuments handles GET /documents/critical.
func (h *Handler) HandleCriticalDocuments(w http.ResponseWriter, r *http.Request) {
	critical, err := h.service.CriticalDocuments(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "critical listing failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CriticalDocumentsResponse{Documents: critical})
}

// HandleCreateDocument handles POST /documents.
func (h *Handler) HandleCreateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[DocumentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	doc, reminders, err := h.service.CreateDocument(ctx, req.VendorID, req.Title, req.ParsedType(), req.ParsedIssuedAt(), req.ParsedExpiresAt())
	if err != nil {
		// The document committed even though its reminders did not; report
		// the partial outcome rather than a bare failure.
		if errors.Is(err, service.ErrRemindersNotScheduled) && doc != nil {
			httputil.WriteJSON(w, http.StatusCreated, DocumentCreatedResponse{
				Document: *doc,
				Warning:  "reminders were not scheduled",
			})
			return
		}
		h.writeServiceError(w, r, "document creation failed", err)
		return
	}
	h.logger.InfoContext(ctx, "document created",
		"request_id", requestID,
		"document_id", doc.ID,
		"reminders", len(reminders),
	)
	httputil.WriteJSON(w, http.StatusCreated, DocumentCreatedResponse{
		Document:  *doc,
		Reminders: reminders,
	})
}

// HandleUpdateDocument handles PUT /documents/{id}.
func (h *Handler) HandleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	id := chi.URLParam(r, "id")

	req, ok := httputil.DecodeAndPrepare[DocumentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	current, err := h.currentDocument(ctx, id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	updated := *current
	updated.VendorID = req.VendorID
	updated.Title = req.Title
	updated.Type = req.ParsedType()
	updated.IssuedAt = req.ParsedIssuedAt()
	updated.ExpiresAt = req.ParsedExpiresAt()

	doc, err := h.service.UpdateDocument(ctx, updated)
	if err != nil {
		h.writeServiceError(w, r, "document update failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, doc)
}

// HandleDeleteDocument handles DELETE /documents/{id}.
func (h *Handler) HandleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteDocument(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, r, "document deletion failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListVendors handles GET /vendors.
func (h *Handler) HandleListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.service.ListVendors(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "vendor listing failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, VendorsResponse{Vendors: vendors})
}

// HandleCreateVendor handles POST /vendors.
func (h *Handler) HandleCreateVendor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[VendorRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	vendor, err := h.service.CreateVendor(ctx, req.Name, req.ParsedType(), req.Contact, req.Notes)
	if err != nil {
		h.writeServiceError(w, r, "vendor creation failed", err)
		return
	}
	h.logger.InfoContext(ctx, "vendor created",
		"request_id", requestID,
		"vendor_id", vendor.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, vendor)
}

// HandleUpdateVendor handles PUT /vendors/{id}.
func (h *Handler) HandleUpdateVendor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[VendorRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	vendor, err := h.service.UpdateVendor(ctx, models.Vendor{
		ID:      chi.URLParam(r, "id"),
		Name:    req.Name,
		Type:    req.ParsedType(),
		Contact: req.Contact,
		Status:  req.ParsedStatus(),
		Notes:   req.Notes,
	})
	if err != nil {
		h.writeServiceError(w, r, "vendor update failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, vendor)
}

// HandleDeleteVendor handles DELETE /vendors/{id}.
func (h *Handler) HandleDeleteVendor(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteVendor(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, r, "vendor deletion failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListReminders handles GET /reminders.
func (h *Handler) HandleListReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.service.ListReminders(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "reminder listing failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, RemindersResponse{Reminders: reminders})
}

// HandleCreateReminder handles POST /reminders.
func (h *Handler) HandleCreateReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ReminderRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	reminder, err := h.service.CreateReminder(ctx, req.DocumentID, req.ParsedRemindAt(), req.ParsedChannel(), req.Message)
	if err != nil {
		h.writeServiceError(w, r, "reminder creation failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, reminder)
}

// HandleListAuditLogs handles GET /audit-logs, newest first, capped.
func (h *Handler) HandleListAuditLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.audits.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "audit listing failed", err)
		return
	}
	if len(entries) > auditViewLimit {
		entries = entries[:auditViewLimit]
	}
	httputil.WriteJSON(w, http.StatusOK, AuditLogsResponse{Entries: entries})
}

// HandleExport handles GET /export, serving the CSV as an attachment whose
// filename embeds the export date.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.service.ExportCSV(ctx)
	if err != nil {
		h.writeServiceError(w, r, "export failed", err)
		return
	}
	filename := fmt.Sprintf("vendor-documents-%s.csv", requestcontext.Now(ctx).Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(out)); err != nil {
		h.logger.ErrorContext(ctx, "failed to write export response", "error", err)
	}
}

// currentDocument fetches one document for update merge.
func (h *Handler) currentDocument(ctx context.Context, id string) (*models.Document, error) {
	docs, err := h.service.ListDocuments(ctx, "", "")
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i], nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "document not found")
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}

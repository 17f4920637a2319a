package software

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/accesshub/accesshub/internal/auth"
	"github.com/accesshub/accesshub/internal/platform/httpx"
	"github.com/accesshub/accesshub/internal/shared"
)

// Handler wires HTTP endpoints for the software catalog.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers catalog routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(auth.Require(shared.OpCreateSoftware))
		r.Post("/", h.create)
	})
	r.Group(func(r chi.Router) {
		r.Use(auth.Require(shared.OpListSoftware))
		r.Get("/", h.list)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateSoftwareRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "name, description and accessLevels (non-empty array) are required")
		return
	}
	sw, err := h.service.CreateSoftware(r.Context(), req)
	if err != nil {
		h.respondError(w, "create software", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"message":  "Software created successfully",
		"software": sw,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.ListSoftware(r.Context())
	if err != nil {
		h.respondError(w, "list software", err)
		return
	}
	if catalog == nil {
		catalog = []Software{}
	}
	httpx.JSON(w, http.StatusOK, catalog)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	if httpx.StatusFor(err) == http.StatusInternalServerError {
		h.logger.Error(op, slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}

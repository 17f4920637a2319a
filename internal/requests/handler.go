package requests

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/accesshub/accesshub/internal/auth"
	"github.com/accesshub/accesshub/internal/platform/httpx"
	"github.com/accesshub/accesshub/internal/shared"
)

// Handler wires HTTP endpoints for the request workflow.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers workflow routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(auth.Require(shared.OpSubmitRequest))
		r.Post("/", h.submit)
	})
	r.Group(func(r chi.Router) {
		r.Use(auth.Require(shared.OpListOwnRequests))
		r.Get("/my", h.listMine)
	})
	r.Group(func(r chi.Router) {
		r.Use(auth.Require(shared.OpListPendingRequests))
		r.Get("/pending", h.listPending)
	})
	r.Group(func(r chi.Router) {
		r.Use(auth.Require(shared.OpListAllRequests))
		r.Get("/all", h.listAll)
	})
	r.Group(func(r chi.Router) {
		r.Use(auth.Require(shared.OpTransitionRequest))
		r.Patch("/{id}", h.transition)
	})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	identity := shared.IdentityFromContext(r.Context())
	var req SubmitRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "softwareId, accessType and reason are required")
		return
	}
	detail, err := h.service.Submit(r.Context(), identity.UserID, req)
	if err != nil {
		h.respondError(w, "submit request", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"message": "Access request submitted successfully",
		"request": detail,
	})
}

func (h *Handler) listMine(w http.ResponseWriter, r *http.Request) {
	identity := shared.IdentityFromContext(r.Context())
	details, err := h.service.ListOwn(r.Context(), identity.UserID)
	if err != nil {
		h.respondError(w, "list own requests", err)
		return
	}
	h.respondList(w, details)
}

func (h *Handler) listPending(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.ListPending(r.Context())
	if err != nil {
		h.respondError(w, "list pending requests", err)
		return
	}
	h.respondList(w, details)
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.ListAll(r.Context())
	if err != nil {
		h.respondError(w, "list all requests", err)
		return
	}
	h.respondList(w, details)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "invalid request id")
		return
	}
	var req TransitionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "status must be Approved or Rejected")
		return
	}
	detail, err := h.service.Transition(r.Context(), id, Status(req.Status))
	if err != nil {
		h.respondError(w, "transition request", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": "Request " + strings.ToLower(req.Status),
		"request": detail,
	})
}

func (h *Handler) respondList(w http.ResponseWriter, details []Detail) {
	if details == nil {
		details = []Detail{}
	}
	httpx.JSON(w, http.StatusOK, details)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	if httpx.StatusFor(err) == http.StatusInternalServerError {
		h.logger.Error(op, slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}

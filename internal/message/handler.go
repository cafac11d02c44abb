// AngelaMos | 2026
// handler.go

package message

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/realty/internal/core"
	"github.com/angelamos/realty/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/messages", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.Inbox)
		r.Post("/", h.Send)
		r.Get("/conversation/{email}", h.Conversation)
		r.Get("/{messageID}", h.Get)
	})
}

func (h *Handler) Inbox(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	messages, err := h.service.Inbox(r.Context(), email)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToMessageResponseList(messages))
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	m, err := h.service.Send(r.Context(), email, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToMessageResponse(m))
}

func (h *Handler) Conversation(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	other := chi.URLParam(r, "email")

	messages, err := h.service.Conversation(r.Context(), email, other)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToMessageResponseList(messages))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "messageID"), 10, 64)
	if err != nil {
		core.BadRequest(w, "invalid message id")
		return
	}

	m, err := h.service.Get(r.Context(), claims.Email, claims.Role, id)
	if err != nil {
		if errors.Is(err, core.ErrForbidden) {
			core.Forbidden(w, "")
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "message")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToMessageResponse(m))
}

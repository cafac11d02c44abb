// AngelaMos | 2026
// handler.go

package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/realty/internal/authz"
	"github.com/angelamos/realty/internal/core"
	"github.com/angelamos/realty/internal/middleware"
	"github.com/angelamos/realty/internal/search"
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
	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", h.Search)
		r.Get("/suggestions", h.SuggestProjects)
		r.Get("/recent/{projectName}", h.RecentByProject)
		r.Get("/{transactionID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Post("/", h.Create)
			r.Put("/{transactionID}", h.Update)
			r.Delete("/{transactionID}", h.Delete)
		})
	})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	criteria, err := search.CriteriaFromQuery(r.URL.Query())
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	transactions, err := h.service.Search(r.Context(), criteria)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToTransactionResponseList(transactions))
}

func (h *Handler) SuggestProjects(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("q")
	if prefix == "" {
		core.BadRequest(w, "query parameter q is required")
		return
	}

	names, err := h.service.SuggestProjects(r.Context(), prefix)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, SuggestionsResponse{ProjectNames: names})
}

func (h *Handler) RecentByProject(w http.ResponseWriter, r *http.Request) {
	projectName := chi.URLParam(r, "projectName")

	transactions, err := h.service.RecentByProject(r.Context(), projectName)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToTransactionResponseList(transactions))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "transactionID")
	if err != nil {
		core.BadRequest(w, "invalid transaction id")
		return
	}

	t, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "transaction")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToTransactionResponse(t))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	caller := authz.Caller{UserID: claims.UserID, Role: claims.Role}
	if !authz.CanAccess(
		caller,
		authz.Resource{Type: authz.ResourceTransaction},
		authz.ActionCreate,
	) {
		core.Forbidden(w, "")
		return
	}

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.service.Create(r.Context(), claims.UserID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToTransactionResponse(t))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "transactionID")
	if err != nil {
		core.BadRequest(w, "invalid transaction id")
		return
	}

	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	existing, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "transaction")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	caller := authz.Caller{UserID: claims.UserID, Role: claims.Role}
	if !authz.CanAccess(
		caller,
		authz.Owned(authz.ResourceTransaction, existing.AgentID),
		authz.ActionUpdate,
	) {
		core.Forbidden(w, "")
		return
	}

	var req UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "transaction")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToTransactionResponse(t))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "transactionID")
	if err != nil {
		core.BadRequest(w, "invalid transaction id")
		return
	}

	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	existing, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "transaction")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	caller := authz.Caller{UserID: claims.UserID, Role: claims.Role}
	if !authz.CanAccess(
		caller,
		authz.Owned(authz.ResourceTransaction, existing.AgentID),
		authz.ActionDelete,
	) {
		core.Forbidden(w, "")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "transaction")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func parseID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}

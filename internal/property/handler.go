// AngelaMos | 2026
// handler.go

package property

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

// RegisterRoutes wires listing endpoints. Browsing and searching are
// public; mutations require a token and run through the policy
// evaluator.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/properties", func(r chi.Router) {
		r.Get("/", h.Search)
		r.Get("/{propertyID}", h.Get)
		r.Get("/agent/{agentID}", h.ListByAgent)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Post("/", h.Create)
			r.Put("/{propertyID}", h.Update)
			r.Delete("/{propertyID}", h.Delete)
		})
	})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	criteria, err := search.CriteriaFromQuery(r.URL.Query())
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	properties, err := h.service.Search(r.Context(), criteria)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPropertyResponseList(properties))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "propertyID")
	if err != nil {
		core.BadRequest(w, "invalid property id")
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "property")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPropertyResponse(p))
}

func (h *Handler) ListByAgent(w http.ResponseWriter, r *http.Request) {
	agentID, err := parseID(r, "agentID")
	if err != nil {
		core.BadRequest(w, "invalid agent id")
		return
	}

	properties, err := h.service.ListByAgent(r.Context(), agentID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPropertyResponseList(properties))
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
		authz.Resource{Type: authz.ResourceProperty},
		authz.ActionCreate,
	) {
		core.Forbidden(w, "")
		return
	}

	var req CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.Create(r.Context(), claims.UserID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToPropertyResponse(p))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "propertyID")
	if err != nil {
		core.BadRequest(w, "invalid property id")
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
			core.NotFound(w, "property")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	caller := authz.Caller{UserID: claims.UserID, Role: claims.Role}
	if !authz.CanAccess(
		caller,
		authz.Owned(authz.ResourceProperty, existing.AgentID),
		authz.ActionUpdate,
	) {
		core.Forbidden(w, "")
		return
	}

	var req UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "property")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPropertyResponse(p))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "propertyID")
	if err != nil {
		core.BadRequest(w, "invalid property id")
		return
	}

	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	caller := authz.Caller{UserID: claims.UserID, Role: claims.Role}
	if !authz.CanAccess(
		caller,
		authz.Resource{Type: authz.ResourceProperty},
		authz.ActionDelete,
	) {
		core.Forbidden(w, "only administrators may delete listings")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "property")
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

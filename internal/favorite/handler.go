// AngelaMos | 2026
// handler.go

package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/realty/internal/authz"
	"github.com/angelamos/realty/internal/core"
	"github.com/angelamos/realty/internal/middleware"
	"github.com/angelamos/realty/internal/property"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/users/{userID}/favorites", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.List)
		r.Post("/{propertyID}", h.Add)
		r.Delete("/{propertyID}", h.Remove)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	properties, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, property.ToPropertyResponseList(properties))
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	propertyID, err := parseID(r, "propertyID")
	if err != nil {
		core.BadRequest(w, "invalid property id")
		return
	}

	if err := h.service.Add(r.Context(), userID, propertyID); err != nil {
		if errors.Is(err, core.ErrConflict) {
			core.Conflict(w, "property already favorited")
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user or property")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, nil)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	propertyID, err := parseID(r, "propertyID")
	if err != nil {
		core.BadRequest(w, "invalid property id")
		return
	}

	if err := h.service.Remove(r.Context(), userID, propertyID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "favorite")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

// authorize resolves the target user id from the path and checks that
// the caller may touch that user's favorites. Writes the error
// response itself on failure.
func (h *Handler) authorize(
	w http.ResponseWriter,
	r *http.Request,
) (int64, bool) {
	userID, err := parseID(r, "userID")
	if err != nil {
		core.BadRequest(w, "invalid user id")
		return 0, false
	}

	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return 0, false
	}

	caller := authz.Caller{UserID: claims.UserID, Role: claims.Role}
	if !authz.CanAccess(
		caller,
		authz.Owned(authz.ResourceFavorite, userID),
		authz.ActionUpdate,
	) {
		core.Forbidden(w, "")
		return 0, false
	}

	return userID, true
}

func parseID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}

package devstore

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/shelfwise/shelfwise/pkg/errors"
	"github.com/shelfwise/shelfwise/pkg/logger"
	"github.com/shelfwise/shelfwise/pkg/models"
)

// Handler mounts the store behind a chi router. Responses are bare JSON
// documents, matching what the rest transport expects.
func Handler(store *Store, logg *logger.Logger) http.Handler {
	h := &handler{store: store, logg: logg}

	r := chi.NewRouter()
	r.Use(requestLogger(logg))

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.replaceUser)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Get("/{id}", h.getProduct)
		r.Put("/{id}", h.replaceProduct)
		r.Delete("/{id}", h.deleteProduct)
	})

	return r
}

type handler struct {
	store *Store
	logg  *logger.Logger
}

func (h *handler) listUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.store.ListUsers(q.Get("email"), q.Get("password")))
}

func (h *handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.writeError(w, r, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user payload"))
		return
	}
	writeJSON(w, http.StatusCreated, h.store.CreateUser(user))
}

func (h *handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.store.GetUser(chi.URLParam(r, "id"))
	if !ok {
		h.writeError(w, r, pkgerrors.New(pkgerrors.CodeNotFound, "user not found"))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *handler) replaceUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.writeError(w, r, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user payload"))
		return
	}
	updated, ok := h.store.ReplaceUser(chi.URLParam(r, "id"), user)
	if !ok {
		h.writeError(w, r, pkgerrors.New(pkgerrors.CodeNotFound, "user not found"))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListProducts())
}

func (h *handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		h.writeError(w, r, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product payload"))
		return
	}
	writeJSON(w, http.StatusCreated, h.store.CreateProduct(product))
}

func (h *handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := h.store.GetProduct(chi.URLParam(r, "id"))
	if !ok {
		h.writeError(w, r, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *handler) replaceProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		h.writeError(w, r, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product payload"))
		return
	}
	updated, ok := h.store.ReplaceProduct(chi.URLParam(r, "id"), product)
	if !ok {
		h.writeError(w, r, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteProduct(chi.URLParam(r, "id")) {
		h.writeError(w, r, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{})
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}
	meta := pkgerrors.MetadataFor(typed.Code())
	if h.logg != nil {
		ctx := h.logg.WithFields(r.Context(), map[string]any{
			"method":     r.Method,
			"path":       r.URL.Path,
			"error_code": string(typed.Code()),
			"error":      typed.Error(),
		})
		h.logg.Warn(ctx, "request failed")
	}
	writeJSON(w, meta.HTTPStatus, map[string]any{
		"code":    string(typed.Code()),
		"message": pkgerrors.UserMessage(typed),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func requestLogger(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			if logg != nil {
				ctx := logg.WithFields(r.Context(), map[string]any{
					"method":      r.Method,
					"path":        r.URL.Path,
					"duration_ms": time.Since(start).Milliseconds(),
				})
				logg.Debug(ctx, "request served")
			}
		})
	}
}

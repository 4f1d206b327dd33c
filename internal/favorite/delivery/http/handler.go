package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	catalogdomain "github.com/tair/starwars-api/internal/catalog/domain"
	"github.com/tair/starwars-api/internal/favorite/domain"
	"github.com/tair/starwars-api/internal/favorite/usecase/command"
	"github.com/tair/starwars-api/internal/favorite/usecase/query"
	userhttp "github.com/tair/starwars-api/internal/user/delivery/http"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
	"github.com/tair/starwars-api/kafka"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorite_api_requests_total",
			Help: "Total number of requests to favorite endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "favorite_api_request_duration_seconds",
			Help:    "Duration of favorite endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// FavoriteHandler handles HTTP requests for the favorites ledger
type FavoriteHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	viewHandler   *query.GetUserFavoritesHandler

	publisher *kafka.Publisher
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(
	users userdomain.UserRepository,
	catalog catalogdomain.CatalogRepository,
	favorites domain.FavoriteRepository,
	publisher *kafka.Publisher,
) *FavoriteHandler {
	return &FavoriteHandler{
		addHandler:    command.NewAddFavoriteHandler(users, catalog, favorites),
		removeHandler: command.NewRemoveFavoriteHandler(users, favorites),
		viewHandler:   query.NewGetUserFavoritesHandler(users, catalog, favorites),
		publisher:     publisher,
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// GetFavorites handles GET /users/favorites
func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.ActorID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User identity not found in context")
		return
	}

	view, err := h.viewHandler.Handle(query.GetUserFavoritesQuery{UserID: userID})
	if err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "User not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, view)
}

// AddFavoritePlanet handles POST /favorite/planet/{id}
func (h *FavoriteHandler) AddFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	h.handleAdd(w, r, catalogdomain.KindPlanet)
}

// AddFavoriteCharacter handles POST /favorite/people/{id}
func (h *FavoriteHandler) AddFavoriteCharacter(w http.ResponseWriter, r *http.Request) {
	h.handleAdd(w, r, catalogdomain.KindCharacter)
}

// AddFavoriteVehicle handles POST /favorite/vehicle/{id}
func (h *FavoriteHandler) AddFavoriteVehicle(w http.ResponseWriter, r *http.Request) {
	h.handleAdd(w, r, catalogdomain.KindVehicle)
}

// RemoveFavoritePlanet handles DELETE /favorite/planet/{id}
func (h *FavoriteHandler) RemoveFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	h.handleRemove(w, r, catalogdomain.KindPlanet)
}

// RemoveFavoriteCharacter handles DELETE /favorite/character/{id}
func (h *FavoriteHandler) RemoveFavoriteCharacter(w http.ResponseWriter, r *http.Request) {
	h.handleRemove(w, r, catalogdomain.KindCharacter)
}

// RemoveFavoriteVehicle handles DELETE /favorite/vehicle/{id}
func (h *FavoriteHandler) RemoveFavoriteVehicle(w http.ResponseWriter, r *http.Request) {
	h.handleRemove(w, r, catalogdomain.KindVehicle)
}

func (h *FavoriteHandler) handleAdd(w http.ResponseWriter, r *http.Request, kind catalogdomain.Kind) {
	userID, entityID, ok := h.identity(w, r)
	if !ok {
		return
	}

	sel := domain.Selection{Kind: kind, EntityID: entityID}
	if _, err := h.addHandler.Handle(command.AddFavoriteCommand{UserID: userID, Selection: sel}); err != nil {
		if errors.Is(err, userdomain.ErrNotFound) || errors.Is(err, catalogdomain.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "User or "+kind.Label()+" not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publishFavoriteEvent(r, kafka.EventTypeFavoriteAdded, userID, kind, entityID)
	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("%s %d added to favorites", kind.Label(), entityID),
	})
}

func (h *FavoriteHandler) handleRemove(w http.ResponseWriter, r *http.Request, kind catalogdomain.Kind) {
	userID, entityID, ok := h.identity(w, r)
	if !ok {
		return
	}

	sel := domain.Selection{Kind: kind, EntityID: entityID}
	if err := h.removeHandler.Handle(command.RemoveFavoriteCommand{UserID: userID, Selection: sel}); err != nil {
		switch {
		case errors.Is(err, userdomain.ErrNotFound):
			h.respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrNotFound):
			h.respondError(w, http.StatusNotFound, "Favorite "+kind.Label()+" not found")
		default:
			h.respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.publishFavoriteEvent(r, kafka.EventTypeFavoriteRemoved, userID, kind, entityID)
	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("%s %d removed from favorites", kind.Label(), entityID),
	})
}

// identity resolves the acting user and the path entity id
func (h *FavoriteHandler) identity(w http.ResponseWriter, r *http.Request) (userID, entityID uint, ok bool) {
	userID, ok = userhttp.ActorID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User identity not found in context")
		return 0, 0, false
	}

	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid ID")
		return 0, 0, false
	}
	return userID, uint(id), true
}

func (h *FavoriteHandler) publishFavoriteEvent(r *http.Request, eventType string, userID uint, kind catalogdomain.Kind, entityID uint) {
	// Event delivery must not affect the API outcome
	_ = h.publisher.PublishFavoriteChanged(r.Context(), kafka.FavoriteChangedEvent{
		EventType: eventType,
		UserID:    userID,
		Kind:      string(kind),
		EntityID:  entityID,
	})
}

func (h *FavoriteHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *FavoriteHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all favorites routes
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users/favorites", metricsMiddleware("/users/favorites", userhttp.AuthMiddleware(h.GetFavorites))).Methods("GET")

	router.HandleFunc("/favorite/planet/{id}", metricsMiddleware("/favorite/planet/{id}", userhttp.AuthMiddleware(h.AddFavoritePlanet))).Methods("POST")
	router.HandleFunc("/favorite/people/{id}", metricsMiddleware("/favorite/people/{id}", userhttp.AuthMiddleware(h.AddFavoriteCharacter))).Methods("POST")
	router.HandleFunc("/favorite/vehicle/{id}", metricsMiddleware("/favorite/vehicle/{id}", userhttp.AuthMiddleware(h.AddFavoriteVehicle))).Methods("POST")

	router.HandleFunc("/favorite/planet/{id}", metricsMiddleware("/favorite/planet/{id}", userhttp.AuthMiddleware(h.RemoveFavoritePlanet))).Methods("DELETE")
	router.HandleFunc("/favorite/character/{id}", metricsMiddleware("/favorite/character/{id}", userhttp.AuthMiddleware(h.RemoveFavoriteCharacter))).Methods("DELETE")
	router.HandleFunc("/favorite/vehicle/{id}", metricsMiddleware("/favorite/vehicle/{id}", userhttp.AuthMiddleware(h.RemoveFavoriteVehicle))).Methods("DELETE")
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tair/starwars-api/internal/catalog/domain"
	"github.com/tair/starwars-api/internal/catalog/usecase/command"
	"github.com/tair/starwars-api/internal/catalog/usecase/query"
	userhttp "github.com/tair/starwars-api/internal/user/delivery/http"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
	"github.com/tair/starwars-api/kafka"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_api_requests_total",
			Help: "Total number of requests to catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_api_request_duration_seconds",
			Help:    "Duration of catalog endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// CatalogHandler handles HTTP requests for catalog entities
type CatalogHandler struct {
	createCharacter *command.CreateCharacterHandler
	createPlanet    *command.CreatePlanetHandler
	createVehicle   *command.CreateVehicleHandler
	deleteCharacter *command.DeleteCharacterHandler
	deletePlanet    *command.DeletePlanetHandler
	deleteVehicle   *command.DeleteVehicleHandler

	getCharacter   *query.GetCharacterHandler
	getPlanet      *query.GetPlanetHandler
	getVehicle     *query.GetVehicleHandler
	listCharacters *query.ListCharactersHandler
	listPlanets    *query.ListPlanetsHandler
	listVehicles   *query.ListVehiclesHandler

	publisher *kafka.Publisher
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog domain.CatalogRepository, users userdomain.UserRepository, publisher *kafka.Publisher) *CatalogHandler {
	return &CatalogHandler{
		createCharacter: command.NewCreateCharacterHandler(catalog, users),
		createPlanet:    command.NewCreatePlanetHandler(catalog, users),
		createVehicle:   command.NewCreateVehicleHandler(catalog, users),
		deleteCharacter: command.NewDeleteCharacterHandler(catalog, users),
		deletePlanet:    command.NewDeletePlanetHandler(catalog, users),
		deleteVehicle:   command.NewDeleteVehicleHandler(catalog, users),
		getCharacter:    query.NewGetCharacterHandler(catalog),
		getPlanet:       query.NewGetPlanetHandler(catalog),
		getVehicle:      query.NewGetVehicleHandler(catalog),
		listCharacters:  query.NewListCharactersHandler(catalog),
		listPlanets:     query.NewListPlanetsHandler(catalog),
		listVehicles:    query.NewListVehiclesHandler(catalog),
		publisher:       publisher,
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

// --- LIST ENDPOINTS ---

// ListPeople handles GET /people
func (h *CatalogHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	characters, err := h.listCharacters.Handle(query.ListCharactersQuery{})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "This is your GET people request",
		"results": characters,
	})
}

// ListPlanets handles GET /planets
func (h *CatalogHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.listPlanets.Handle(query.ListPlanetsQuery{})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "This is your GET planets request",
		"results": planets,
	})
}

// ListVehicles handles GET /vehicles
func (h *CatalogHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.listVehicles.Handle(query.ListVehiclesQuery{})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "This is your GET vehicles request",
		"results": vehicles,
	})
}

// --- SINGLE ENTITY ENDPOINTS ---

// GetCharacter handles GET /people/{id}
func (h *CatalogHandler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	character, err := h.getCharacter.Handle(query.GetCharacterQuery{ID: id})
	if err != nil {
		h.respondKindError(w, domain.KindCharacter, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "This is your GET character request",
		"result":  character,
	})
}

// GetPlanet handles GET /planets/{id}
func (h *CatalogHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	planet, err := h.getPlanet.Handle(query.GetPlanetQuery{ID: id})
	if err != nil {
		h.respondKindError(w, domain.KindPlanet, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "This is your GET planet request",
		"result":  planet,
	})
}

// GetVehicle handles GET /vehicles/{id}
func (h *CatalogHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	vehicle, err := h.getVehicle.Handle(query.GetVehicleQuery{ID: id})
	if err != nil {
		h.respondKindError(w, domain.KindVehicle, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "This is your GET vehicle request",
		"result":  vehicle,
	})
}

// --- ADMIN ENDPOINTS ---

// AddCharacter handles POST /add_people (admin only)
func (h *CatalogHandler) AddCharacter(w http.ResponseWriter, r *http.Request) {
	actorID, ok := userhttp.ActorID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User identity not found in context")
		return
	}

	var req struct {
		Name      string  `json:"name"`
		BirthYear *string `json:"birth_year"`
		Gender    *string `json:"gender"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	character, err := h.createCharacter.Handle(command.CreateCharacterCommand{
		ActorID:   actorID,
		Name:      req.Name,
		BirthYear: req.BirthYear,
		Gender:    req.Gender,
	})
	if err != nil {
		h.respondMutationError(w, err)
		return
	}

	h.publishCatalogEvent(r, kafka.EventTypeCatalogCreated, domain.KindCharacter, character.ID, character.Name, actorID)
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Character added successfully",
		"result":  character,
	})
}

// AddPlanet handles POST /add_planet (admin only)
func (h *CatalogHandler) AddPlanet(w http.ResponseWriter, r *http.Request) {
	actorID, ok := userhttp.ActorID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User identity not found in context")
		return
	}

	var req struct {
		Name       string  `json:"name"`
		Population *string `json:"population"`
		Climate    *string `json:"climate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	planet, err := h.createPlanet.Handle(command.CreatePlanetCommand{
		ActorID:    actorID,
		Name:       req.Name,
		Population: req.Population,
		Climate:    req.Climate,
	})
	if err != nil {
		h.respondMutationError(w, err)
		return
	}

	h.publishCatalogEvent(r, kafka.EventTypeCatalogCreated, domain.KindPlanet, planet.ID, planet.Name, actorID)
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Planet added successfully",
		"result":  planet,
	})
}

// AddVehicle handles POST /add_vehicle (admin only)
func (h *CatalogHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := userhttp.ActorID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User identity not found in context")
		return
	}

	var req struct {
		Name         string  `json:"name"`
		Model        *string `json:"model"`
		VehicleClass *string `json:"vehicle_class"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicle, err := h.createVehicle.Handle(command.CreateVehicleCommand{
		ActorID:      actorID,
		Name:         req.Name,
		Model:        req.Model,
		VehicleClass: req.VehicleClass,
	})
	if err != nil {
		h.respondMutationError(w, err)
		return
	}

	h.publishCatalogEvent(r, kafka.EventTypeCatalogCreated, domain.KindVehicle, vehicle.ID, vehicle.Name, actorID)
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Vehicle added successfully",
		"result":  vehicle,
	})
}

// DeleteCharacter handles DELETE /delete_people/{id} (admin only)
func (h *CatalogHandler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, domain.KindCharacter, func(actorID, id uint) error {
		return h.deleteCharacter.Handle(command.DeleteCharacterCommand{ActorID: actorID, ID: id})
	})
}

// DeletePlanet handles DELETE /delete_planet/{id} (admin only)
func (h *CatalogHandler) DeletePlanet(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, domain.KindPlanet, func(actorID, id uint) error {
		return h.deletePlanet.Handle(command.DeletePlanetCommand{ActorID: actorID, ID: id})
	})
}

// DeleteVehicle handles DELETE /delete_vehicle/{id} (admin only)
func (h *CatalogHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, domain.KindVehicle, func(actorID, id uint) error {
		return h.deleteVehicle.Handle(command.DeleteVehicleCommand{ActorID: actorID, ID: id})
	})
}

func (h *CatalogHandler) handleDelete(w http.ResponseWriter, r *http.Request, kind domain.Kind, del func(actorID, id uint) error) {
	actorID, ok := userhttp.ActorID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User identity not found in context")
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := del(actorID, id); err != nil {
		switch {
		case errors.Is(err, userdomain.ErrForbidden):
			h.respondError(w, http.StatusForbidden, "Admin access required")
		case errors.Is(err, userdomain.ErrNotFound):
			h.respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrNotFound):
			h.respondError(w, http.StatusNotFound, kind.Label()+" not found")
		default:
			h.respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.publishCatalogEvent(r, kafka.EventTypeCatalogDeleted, kind, id, "", actorID)
	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": kind.Label() + " deleted successfully",
	})
}

// --- HELPERS ---

func (h *CatalogHandler) pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

// respondKindError maps read-path errors for a specific kind
func (h *CatalogHandler) respondKindError(w http.ResponseWriter, kind domain.Kind, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, kind.Label()+" not found")
		return
	}
	h.respondError(w, http.StatusInternalServerError, err.Error())
}

// respondMutationError maps create-path errors: gate failures first,
// everything else is a validation problem
func (h *CatalogHandler) respondMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userdomain.ErrForbidden):
		h.respondError(w, http.StatusForbidden, "Admin access required")
	case errors.Is(err, userdomain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "User not found")
	default:
		h.respondError(w, http.StatusBadRequest, err.Error())
	}
}

func (h *CatalogHandler) publishCatalogEvent(r *http.Request, eventType string, kind domain.Kind, id uint, name string, actorID uint) {
	// Event delivery must not affect the API outcome
	_ = h.publisher.PublishCatalogChanged(r.Context(), kafka.CatalogChangedEvent{
		EventType: eventType,
		Kind:      string(kind),
		EntityID:  id,
		Name:      name,
		ActorID:   actorID,
	})
}

func (h *CatalogHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *CatalogHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Public reads
	router.HandleFunc("/people", metricsMiddleware("/people", h.ListPeople)).Methods("GET")
	router.HandleFunc("/planets", metricsMiddleware("/planets", h.ListPlanets)).Methods("GET")
	router.HandleFunc("/vehicles", metricsMiddleware("/vehicles", h.ListVehicles)).Methods("GET")
	router.HandleFunc("/people/{id}", metricsMiddleware("/people/{id}", h.GetCharacter)).Methods("GET")
	router.HandleFunc("/planets/{id}", metricsMiddleware("/planets/{id}", h.GetPlanet)).Methods("GET")
	router.HandleFunc("/vehicles/{id}", metricsMiddleware("/vehicles/{id}", h.GetVehicle)).Methods("GET")

	// Admin mutations
	router.HandleFunc("/add_people", metricsMiddleware("/add_people", userhttp.AuthMiddleware(h.AddCharacter))).Methods("POST")
	router.HandleFunc("/add_planet", metricsMiddleware("/add_planet", userhttp.AuthMiddleware(h.AddPlanet))).Methods("POST")
	router.HandleFunc("/add_vehicle", metricsMiddleware("/add_vehicle", userhttp.AuthMiddleware(h.AddVehicle))).Methods("POST")
	router.HandleFunc("/delete_people/{id}", metricsMiddleware("/delete_people/{id}", userhttp.AuthMiddleware(h.DeleteCharacter))).Methods("DELETE")
	router.HandleFunc("/delete_planet/{id}", metricsMiddleware("/delete_planet/{id}", userhttp.AuthMiddleware(h.DeletePlanet))).Methods("DELETE")
	router.HandleFunc("/delete_vehicle/{id}", metricsMiddleware("/delete_vehicle/{id}", userhttp.AuthMiddleware(h.DeleteVehicle))).Methods("DELETE")
}

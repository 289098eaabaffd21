package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/deidexdd-hash/mysticbot/internal/matrix/service"
	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	"github.com/deidexdd-hash/mysticbot/internal/profile/models"
	id "github.com/deidexdd-hash/mysticbot/pkg/domain"
	dErrors "github.com/deidexdd-hash/mysticbot/pkg/domain-errors"
	"github.com/deidexdd-hash/mysticbot/pkg/platform/httputil"
	"github.com/deidexdd-hash/mysticbot/pkg/requestcontext"
)

// Service defines the matrix operations exposed over HTTP.
type Service interface {
	SaveProfile(ctx context.Context, userID id.UserID, birthDate string, gender numerology.Gender) (*models.Profile, error)
	GetProfile(ctx context.Context, userID id.UserID) (*models.Profile, error)
	ReadingForDate(ctx context.Context, birthDate string, gender numerology.Gender) (*numerology.Reading, error)
	ReadingForUser(ctx context.Context, userID id.UserID) (*numerology.Reading, error)
	ForecastForDate(ctx context.Context, birthDate string, year int) (*numerology.YearForecast, error)
	ForecastForUser(ctx context.Context, userID id.UserID, year int) (*numerology.YearForecast, error)
	CompatibilityForDates(ctx context.Context, first, second string) (*service.Compatibility, error)
	CompatibilityForUsers(ctx context.Context, userID, otherID id.UserID) (*service.Compatibility, error)
}

// Handler wires matrix endpoints to the matrix service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts matrix endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/matrix", h.HandleMatrix)
	r.Post("/forecast", h.HandleForecast)
	r.Post("/compatibility", h.HandleCompatibility)

	r.Route("/profiles/{user_id}", func(r chi.Router) {
		r.Put("/", h.HandlePutProfile)
		r.Get("/", h.HandleGetProfile)
		r.Get("/matrix", h.HandleProfileMatrix)
		r.Get("/forecast", h.HandleProfileForecast)
	})
	r.Get("/compatibility/{user_id}/{other_id}", h.HandleProfileCompatibility)
}

// HandleMatrix handles POST /matrix.
func (h *Handler) HandleMatrix(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[MatrixRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	reading, err := h.service.ReadingForDate(ctx, req.BirthDate, req.ParsedGender())
	if err != nil {
		h.fail(w, r, "matrix calculation failed", err)
		return
	}

	h.logger.InfoContext(ctx, "matrix calculated",
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromReading(reading))
}

// HandleForecast handles POST /forecast.
func (h *Handler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ForecastRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	forecast, err := h.service.ForecastForDate(ctx, req.BirthDate, req.Year)
	if err != nil {
		h.fail(w, r, "forecast failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromForecast(forecast))
}

// HandleCompatibility handles POST /compatibility.
func (h *Handler) HandleCompatibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CompatibilityRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.CompatibilityForDates(ctx, req.First, req.Second)
	if err != nil {
		h.fail(w, r, "compatibility failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCompatibility(result))
}

// HandlePutProfile handles PUT /profiles/{user_id}.
func (h *Handler) HandlePutProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID, ok := h.userID(w, r, "user_id")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[MatrixRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	profile, err := h.service.SaveProfile(ctx, userID, req.BirthDate, req.ParsedGender())
	if err != nil {
		h.fail(w, r, "profile save failed", err)
		return
	}

	h.logger.InfoContext(ctx, "profile saved",
		"request_id", requestID,
		"user_id", userID,
	)
	httputil.WriteJSON(w, http.StatusOK, FromProfile(profile))
}

// HandleGetProfile handles GET /profiles/{user_id}.
func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "user_id")
	if !ok {
		return
	}
	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "profile lookup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromProfile(profile))
}

// HandleProfileMatrix handles GET /profiles/{user_id}/matrix.
func (h *Handler) HandleProfileMatrix(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "user_id")
	if !ok {
		return
	}
	reading, err := h.service.ReadingForUser(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "matrix calculation failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromReading(reading))
}

// HandleProfileForecast handles GET /profiles/{user_id}/forecast?year=.
func (h *Handler) HandleProfileForecast(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "user_id")
	if !ok {
		return
	}

	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "year must be a number"))
			return
		}
		year = parsed
	}

	forecast, err := h.service.ForecastForUser(r.Context(), userID, year)
	if err != nil {
		h.fail(w, r, "forecast failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromForecast(forecast))
}

// HandleProfileCompatibility handles GET /compatibility/{user_id}/{other_id}.
func (h *Handler) HandleProfileCompatibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "user_id")
	if !ok {
		return
	}
	otherID, ok := h.userID(w, r, "other_id")
	if !ok {
		return
	}

	result, err := h.service.CompatibilityForUsers(r.Context(), userID, otherID)
	if err != nil {
		h.fail(w, r, "compatibility failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCompatibility(result))
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request, param string) (id.UserID, bool) {
	userID, err := id.ParseUserID(chi.URLParam(r, param))
	if err != nil {
		httputil.WriteError(w, err)
		return id.UserID{}, false
	}
	return userID, true
}

// fail logs server side faults and writes the error response.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(r.Context(), msg,
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}

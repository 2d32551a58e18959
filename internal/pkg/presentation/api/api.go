package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/application/alarms"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/logging"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/tracing"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("well-alarm-mgmt/api")

type familyFunc func(ctx context.Context, assetID, customerID string) ([]types.AlarmData, error)

func RegisterHandlers(ctx context.Context, router *chi.Mux, resolver alarms.AlarmResolver) *chi.Mux {
	log := logging.GetLoggerFromContext(ctx)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v0/assets/{assetID}", func(r chi.Router) {
		r.Get("/alarms/rtu", familyHandler(log, "get-rtu-alarms", resolver.GetRtuAlarms))
		r.Get("/alarms/host", familyHandler(log, "get-host-alarms", resolver.GetHostAlarms))
		r.Get("/alarms/facility-tags", familyHandler(log, "get-facility-tag-alarms", resolver.GetFacilityTagAlarms))
		r.Get("/alarms/camera", familyHandler(log, "get-camera-alarms", resolver.GetCameraAlarms))
		r.Get("/facility-header", facilityHeaderHandler(log, resolver))
	})

	return router
}

func familyHandler(log zerolog.Logger, spanName string, get familyFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), spanName)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		assetID := chi.URLParam(r, "assetID")
		customerID := r.URL.Query().Get("customerID")

		result, err := get(ctx, assetID, customerID)
		if err != nil {
			writeError(w, requestLogger, err, result)
			return
		}

		count := uint64(len(result))
		writeJSON(w, http.StatusOK, ApiResponse{
			Meta: &meta{TotalRecords: count, Count: count},
			Data: result,
		})
	}
}

func facilityHeaderHandler(log zerolog.Logger, resolver alarms.AlarmResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-facility-header")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		summary, err := resolver.GetFacilityHeaderAndDetails(ctx, chi.URLParam(r, "assetID"))
		if err != nil {
			writeError(w, requestLogger, err, summary)
			return
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: summary})
	}
}

func writeError(w http.ResponseWriter, log zerolog.Logger, err error, partial any) {
	switch {
	case errors.Is(err, alarms.ErrInvalidAssetID):
		log.Debug().Err(err).Msg("bad request")
		writeJSON(w, http.StatusBadRequest, ApiResponse{Data: partial, Error: err.Error()})
	case errors.Is(err, alarms.ErrLookupFailure):
		log.Error().Err(err).Msg("degraded result")
		writeJSON(w, http.StatusServiceUnavailable, ApiResponse{Data: partial, Degraded: true, Error: err.Error()})
	default:
		log.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Data: partial, Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, response ApiResponse) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response.Byte())
}

package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/lockdown"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/presentation/api/auth"
	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
)

func initiateLockdownHandler(log *slog.Logger, svc lockdown.LockdownService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "initiate-lockdown")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		actor, err := auth.GetActorFromContext(ctx)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var input struct {
			Scope    types.LockdownScope `json:"scope"`
			TargetID string              `json:"targetId"`
		}
		err = json.Unmarshal(body, &input)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		ld, err := svc.Initiate(ctx, input.Scope, input.TargetID, actor)
		if err != nil {
			switch {
			case errors.Is(err, lockdown.ErrAlreadyActive):
				// The existing lockdown rides along so the caller can
				// act on it instead of retrying blindly.
				requestLogger.Info("lockdown already active for target", "lockdown_id", ld.ID)
				writeJSON(w, http.StatusConflict, ld)
			case errors.Is(err, lockdown.ErrTargetNotFound):
				requestLogger.Debug("lockdown target not found", "target_id", input.TargetID)
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, lockdown.ErrBadScope):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				requestLogger.Error("unable to initiate lockdown", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, ld)
	}
}

func releaseLockdownHandler(log *slog.Logger, svc lockdown.LockdownService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "release-lockdown")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		actor, err := auth.GetActorFromContext(ctx)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		lockdownID := chi.URLParam(r, "lockdownID")
		if lockdownID != "" {
			requestLogger = requestLogger.With(slog.String("lockdown_id", lockdownID))
		}

		ld, err := svc.Release(ctx, lockdownID, actor)
		if err != nil {
			switch {
			case errors.Is(err, lockdown.ErrLockdownNotFound):
				requestLogger.Debug("lockdown not found")
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, lockdown.ErrEdgeOnly):
				requestLogger.Info("lockdown release rejected in cloud-only mode")
				writeError(w, http.StatusForbidden, "EDGE_ONLY_OPERATION")
			case errors.Is(err, lockdown.ErrAlreadyReleased):
				writeError(w, http.StatusConflict, err.Error())
			default:
				requestLogger.Error("unable to release lockdown", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, ld)
	}
}

func queryLockdownsHandler(log *slog.Logger, svc lockdown.LockdownService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedSites := auth.GetAllowedSitesFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-lockdowns")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := parseOffsetAndLimit(r)

		collection, err := svc.Query(ctx, offset, limit, allowedSites)
		if err != nil {
			requestLogger.Error("unable to query lockdowns", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, collection)
	}
}

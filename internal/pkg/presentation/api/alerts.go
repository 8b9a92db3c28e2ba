package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/alerts"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/presentation/api/auth"
	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
)

func createAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-alert")
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

		var input alerts.CreateAlertInput
		err = json.Unmarshal(body, &input)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		alert, err := svc.Create(ctx, input, actor)
		if err != nil {
			if errors.Is(err, alerts.ErrBadInput) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			if errors.Is(err, alerts.ErrAlertNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to create alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, alert)
	}
}

func queryAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedSites := auth.GetAllowedSitesFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := parseOffsetAndLimit(r)

		collection, err := svc.Query(ctx, offset, limit, allowedSites)
		if err != nil {
			requestLogger.Error("unable to query alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, collection)
	}
}

func getAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedSites := auth.GetAllowedSitesFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		alert, err := svc.GetByID(ctx, alertID, allowedSites)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			requestLogger.Debug("alert not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to fetch alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, alert)
	}
}

func patchAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "patch-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		actor, err := auth.GetActorFromContext(ctx)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var patch struct {
			Action string `json:"action"`
			Reason string `json:"reason,omitempty"`
		}
		err = json.Unmarshal(body, &patch)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var alert types.Alert

		switch patch.Action {
		case "acknowledge":
			alert, err = svc.Acknowledge(ctx, alertID, actor)
		case "confirm":
			alert, err = svc.Confirm(ctx, alertID, actor)
		case "dismiss":
			alert, err = svc.Dismiss(ctx, alertID, actor)
		case "resolve":
			alert, err = svc.Resolve(ctx, alertID, actor)
		case "extend":
			alert, err = svc.Extend(ctx, alertID, patch.Reason, actor)
		default:
			writeError(w, http.StatusBadRequest, "unknown action")
			return
		}

		if err != nil {
			switch {
			case errors.Is(err, alerts.ErrAlertNotFound):
				requestLogger.Debug("alert not found")
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, alerts.ErrInvalidTransition):
				requestLogger.Debug("rejected alert transition", "action", patch.Action)
				writeError(w, http.StatusConflict, err.Error())
			case errors.Is(err, alerts.ErrReasonRequired):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				requestLogger.Error("unable to update alert", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, alert)
	}
}

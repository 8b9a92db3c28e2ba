package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/rollcall"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/presentation/api/auth"
	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
)

func initiateRollCallHandler(log *slog.Logger, svc rollcall.RollCallService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "initiate-roll-call")
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
			IncidentID string `json:"incidentId"`
			SiteID     string `json:"siteId"`
		}
		err = json.Unmarshal(body, &input)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		rc, err := svc.Initiate(ctx, input.IncidentID, input.SiteID, actor)
		if err != nil {
			switch {
			case errors.Is(err, rollcall.ErrAlreadyActive):
				requestLogger.Info("roll call already active for incident", "roll_call_id", rc.ID)
				writeJSON(w, http.StatusConflict, rc)
			case errors.Is(err, rollcall.ErrRollCallNotFound):
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, rollcall.ErrBadInput):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				requestLogger.Error("unable to initiate roll call", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, rc)
	}
}

func submitRollCallReportHandler(log *slog.Logger, svc rollcall.RollCallService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "submit-roll-call-report")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		actor, err := auth.GetActorFromContext(ctx)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		rollCallID := chi.URLParam(r, "rollCallID")
		if rollCallID != "" {
			requestLogger = requestLogger.With(slog.String("roll_call_id", rollCallID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var report types.RollCallReport
		err = json.Unmarshal(body, &report)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		rc, err := svc.SubmitReport(ctx, rollCallID, report, actor)
		if err != nil {
			switch {
			case errors.Is(err, rollcall.ErrRollCallNotFound):
				requestLogger.Debug("roll call not found")
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, rollcall.ErrNotAuthorized):
				w.WriteHeader(http.StatusForbidden)
			case errors.Is(err, rollcall.ErrAlreadyCompleted):
				writeError(w, http.StatusConflict, err.Error())
			case errors.Is(err, rollcall.ErrBadInput):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				requestLogger.Error("unable to submit roll call report", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, rc)
	}
}

func completeRollCallHandler(log *slog.Logger, svc rollcall.RollCallService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "complete-roll-call")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		actor, err := auth.GetActorFromContext(ctx)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		rollCallID := chi.URLParam(r, "rollCallID")
		if rollCallID != "" {
			requestLogger = requestLogger.With(slog.String("roll_call_id", rollCallID))
		}

		rc, err := svc.Complete(ctx, rollCallID, actor)
		if err != nil {
			switch {
			case errors.Is(err, rollcall.ErrRollCallNotFound):
				requestLogger.Debug("roll call not found")
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, rollcall.ErrAlreadyCompleted):
				writeError(w, http.StatusConflict, err.Error())
			default:
				requestLogger.Error("unable to complete roll call", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, rc)
	}
}

func getRollCallHandler(log *slog.Logger, svc rollcall.RollCallService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedSites := auth.GetAllowedSitesFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-roll-call")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		rollCallID := chi.URLParam(r, "rollCallID")
		if rollCallID != "" {
			requestLogger = requestLogger.With(slog.String("roll_call_id", rollCallID))
		}

		rc, err := svc.GetByID(ctx, rollCallID, allowedSites)
		if errors.Is(err, rollcall.ErrRollCallNotFound) {
			requestLogger.Debug("roll call not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to fetch roll call", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		reports, err := svc.GetReports(ctx, rollCallID, allowedSites)
		if err != nil {
			requestLogger.Error("unable to fetch roll call reports", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, struct {
			types.RollCall
			Reports []types.RollCallReport `json:"reports"`
		}{RollCall: rc, Reports: reports})
	}
}

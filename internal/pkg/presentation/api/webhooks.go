package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"log/slog"

	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/ingest"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
)

const signatureHeader = "x-webhook-signature"

func incomingWebhookHandler(log *slog.Logger, svc ingest.IngestService, cfg ingest.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "incoming-webhook")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		family := chi.URLParam(r, "family")
		vendor := chi.URLParam(r, "vendor")
		requestLogger = requestLogger.With(slog.String("family", family), slog.String("vendor", vendor))

		adapter, err := ingest.NewAdapter(family, vendor, cfg)
		if err != nil {
			if errors.Is(err, ingest.ErrUnknownVendor) {
				requestLogger.Debug("webhook for unknown vendor")
				writeError(w, http.StatusBadRequest, "unknown vendor")
				return
			}
			requestLogger.Error("unable to resolve vendor adapter", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Invalid signatures are always logged with the source address
		// so they can be pulled into forensic review later.
		if !adapter.VerifySignature(body, r.Header.Get(signatureHeader)) {
			requestLogger.Warn("webhook signature verification failed", "remote_addr", r.RemoteAddr)
			err = fmt.Errorf("invalid webhook signature from %s", r.RemoteAddr)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		payload, err := adapter.ParseWebhook(body)
		if err != nil {
			requestLogger.Error("unable to parse webhook payload", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		result, err := svc.Process(ctx, adapter, payload)
		if err != nil {
			requestLogger.Error("unable to process webhook payload", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if !result.Actionable() {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
			return
		}

		writeJSON(w, http.StatusCreated, struct {
			Status string `json:"status"`
			ingest.Result
		}{Status: "processed", Result: result})
	}
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"time"

	"log/slog"

	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/alerts"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/ingest"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/lockdown"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/realtime"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/rollcall"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/infrastructure/storage"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/presentation/api/auth"
	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("safeschool-os/api")

// AuditReader is the read side of the audit trail, satisfied by the
// storage layer. Writes only ever go through the audit logger.
type AuditReader interface {
	QueryAuditLog(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.AuditLogEntry], error)
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, tokenAuth *jwtauth.JWTAuth,
	alertSvc alerts.AlertService, lockdownSvc lockdown.LockdownService, rollCallSvc rollcall.RollCallService,
	ingestSvc ingest.IngestService, ingestCfg ingest.Config, hub *realtime.Hub, audit AuditReader) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	// Webhooks authenticate with a per vendor shared secret instead of
	// a bearer token, so they live outside the authenticated group.
	router.Post("/webhooks/{family}/{vendor}", incomingWebhookHandler(log, ingestSvc, ingestCfg))

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticator(tokenAuth))

			r.Route("/alerts", func(r chi.Router) {
				r.With(auth.RequireMinRole(types.RoleOperator)).Post("/", createAlertHandler(log, alertSvc))
				r.Get("/", queryAlertsHandler(log, alertSvc))
				r.Get("/{alertID}", getAlertHandler(log, alertSvc))
				r.With(auth.RequireMinRole(types.RoleOperator)).Patch("/{alertID}", patchAlertHandler(log, alertSvc))
			})

			r.Route("/lockdown", func(r chi.Router) {
				r.With(auth.RequireMinRole(types.RoleFirstResponder)).Post("/", initiateLockdownHandler(log, lockdownSvc))
				r.With(auth.RequireMinRole(types.RoleOperator)).Delete("/{lockdownID}", releaseLockdownHandler(log, lockdownSvc))
				r.Get("/", queryLockdownsHandler(log, lockdownSvc))
			})

			r.Route("/roll-call", func(r chi.Router) {
				r.With(auth.RequireMinRole(types.RoleOperator)).Post("/", initiateRollCallHandler(log, rollCallSvc))
				r.With(auth.RequireMinRole(types.RoleTeacher)).Post("/{rollCallID}/report", submitRollCallReportHandler(log, rollCallSvc))
				r.With(auth.RequireMinRole(types.RoleOperator)).Post("/{rollCallID}/complete", completeRollCallHandler(log, rollCallSvc))
				r.Get("/{rollCallID}", getRollCallHandler(log, rollCallSvc))
			})

			r.With(auth.RequireMinRole(types.RoleSiteAdmin)).Get("/audit", queryAuditLogHandler(log, audit))

			r.Get("/realtime", realtimeHandler(log, hub))
		})
	})

	return router, nil
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}

func writeError(w http.ResponseWriter, statusCode int, code string) {
	writeJSON(w, statusCode, map[string]string{"error": code})
}

func parseOffsetAndLimit(r *http.Request) (int, int) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	return offset, limit
}

func queryAuditLogHandler(log *slog.Logger, audit AuditReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedSites := auth.GetAllowedSitesFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-audit-log")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := parseOffsetAndLimit(r)
		conditions := []storage.ConditionFunc{storage.WithOffset(offset), storage.WithLimit(limit)}

		// A nil scope is an unscoped SUPER_ADMIN caller.
		if siteID := r.URL.Query().Get("siteId"); siteID != "" {
			if allowedSites != nil && !slices.Contains(allowedSites, siteID) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			conditions = append(conditions, storage.WithSiteID(siteID))
		} else if allowedSites != nil {
			conditions = append(conditions, storage.WithSiteIDs(allowedSites))
		}

		if entity := r.URL.Query().Get("entity"); entity != "" {
			conditions = append(conditions, storage.WithEntity(entity))
		}

		after, before := time.Time{}, time.Time{}
		if from := r.URL.Query().Get("from"); from != "" {
			after, err = time.Parse(time.RFC3339, from)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid from timestamp")
				return
			}
		}
		if to := r.URL.Query().Get("to"); to != "" {
			before, err = time.Parse(time.RFC3339, to)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid to timestamp")
				return
			}
		}
		if !after.IsZero() || !before.IsZero() {
			conditions = append(conditions, storage.WithTimeWindow(after, before))
		}

		entries, err := audit.QueryAuditLog(ctx, conditions...)
		if err != nil {
			requestLogger.Error("unable to query audit log", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin checks are delegated to the bearer token; dashboards are
	// served from a different origin than the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func realtimeHandler(log *slog.Logger, hub *realtime.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := auth.GetActorFromContext(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("websocket upgrade failed", "err", err.Error())
			return
		}
		defer ws.Close()

		ctx := logging.NewContextWithLogger(r.Context(), log)

		err = realtime.Serve(ctx, hub, ws, actor)
		if err != nil {
			log.Debug("realtime connection ended", "actor", actor.ID, "err", err.Error())
		}
	}
}

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows      = errors.New("no rows in result set")
	ErrQueryRow    = errors.New("could not execute query")
	ErrStoreFailed = errors.New("could not store data")
	ErrNoID        = errors.New("data contains no id")
	ErrMissingSite = errors.New("missing site information")
	// ErrStaleStatus means a conditional update matched zero rows because
	// another caller already moved the record past the expected status.
	ErrStaleStatus = errors.New("record status changed concurrently")
	// ErrAlreadyExists means an insert lost a race against a concurrent
	// insert of the same logical record and hit a unique constraint.
	ErrAlreadyExists = errors.New("record already exists")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sites (
			site_id				TEXT NOT NULL,
			name				TEXT NOT NULL,
			total_classrooms	NUMERIC NOT NULL DEFAULT 0,
			total_students		NUMERIC NOT NULL DEFAULT 0,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_sites PRIMARY KEY (site_id)
		);

		CREATE TABLE IF NOT EXISTS buildings (
			building_id	TEXT NOT NULL,
			site_id		TEXT NOT NULL,
			name		TEXT NOT NULL,
			CONSTRAINT pkey_buildings PRIMARY KEY (building_id)
		);

		CREATE TABLE IF NOT EXISTS zones (
			zone_id		TEXT NOT NULL,
			site_id		TEXT NOT NULL,
			building_id	TEXT NOT NULL,
			name		TEXT NOT NULL,
			CONSTRAINT pkey_zones PRIMARY KEY (zone_id)
		);

		CREATE TABLE IF NOT EXISTS doors (
			door_id		TEXT NOT NULL,
			site_id		TEXT NOT NULL,
			building_id	TEXT NOT NULL,
			zone_id		TEXT NULL,
			name		TEXT NOT NULL,
			CONSTRAINT pkey_doors PRIMARY KEY (door_id)
		);

		CREATE TABLE IF NOT EXISTS visitor_credentials (
			credential_id	TEXT NOT NULL,
			site_id			TEXT NOT NULL,
			credential_type	TEXT NOT NULL,
			revoked			BOOLEAN NOT NULL DEFAULT FALSE,
			revoked_on		timestamp with time zone NULL,
			CONSTRAINT pkey_visitor_credentials PRIMARY KEY (credential_id)
		);

		CREATE TABLE IF NOT EXISTS alerts (
			alert_id		TEXT NOT NULL,
			site_id			TEXT NOT NULL,
			building_id		TEXT NOT NULL,
			level			TEXT NOT NULL,
			status			TEXT NOT NULL,
			source			TEXT NOT NULL,
			message			TEXT NULL,
			triggered_at	timestamp with time zone NOT NULL,
			acknowledged_at	timestamp with time zone NULL,
			resolved_at		timestamp with time zone NULL,
			extended_until	timestamp with time zone NULL,
			extend_reason	TEXT NULL,
			CONSTRAINT pkey_alerts PRIMARY KEY (alert_id)
		);

		CREATE TABLE IF NOT EXISTS lockdowns (
			lockdown_id		TEXT NOT NULL,
			site_id			TEXT NOT NULL,
			scope			TEXT NOT NULL,
			target_id		TEXT NOT NULL,
			initiated_by	TEXT NOT NULL,
			initiated_at	timestamp with time zone NOT NULL,
			released_at		timestamp with time zone NULL,
			doors_locked	NUMERIC NOT NULL DEFAULT 0,
			CONSTRAINT pkey_lockdowns PRIMARY KEY (lockdown_id)
		);

		CREATE TABLE IF NOT EXISTS roll_calls (
			roll_call_id		TEXT NOT NULL,
			incident_id			TEXT NOT NULL,
			site_id				TEXT NOT NULL,
			initiated_by		TEXT NOT NULL,
			status				TEXT NOT NULL,
			total_classrooms	NUMERIC NOT NULL DEFAULT 0,
			total_students		NUMERIC NOT NULL DEFAULT 0,
			reported_classrooms	NUMERIC NOT NULL DEFAULT 0,
			accounted_students	NUMERIC NOT NULL DEFAULT 0,
			initiated_at		timestamp with time zone NOT NULL,
			completed_at		timestamp with time zone NULL,
			CONSTRAINT pkey_roll_calls PRIMARY KEY (roll_call_id)
		);

		CREATE TABLE IF NOT EXISTS roll_call_reports (
			roll_call_id		TEXT NOT NULL,
			user_id				TEXT NOT NULL,
			room_id				TEXT NOT NULL,
			students_present	NUMERIC NOT NULL DEFAULT 0,
			students_absent		NUMERIC NOT NULL DEFAULT 0,
			students_missing	JSONB NULL,
			students_injured	JSONB NULL,
			notes				TEXT NULL,
			reported_at			timestamp with time zone NOT NULL,
			CONSTRAINT pkey_roll_call_reports PRIMARY KEY (roll_call_id, user_id)
		);

		CREATE TABLE IF NOT EXISTS audit_log (
			site_id		TEXT NOT NULL,
			user_id		TEXT NOT NULL,
			action		TEXT NOT NULL,
			entity		TEXT NOT NULL,
			entity_id	TEXT NOT NULL,
			details		JSONB NULL,
			ip_address	TEXT NULL,
			created_at	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_alerts_site ON alerts (site_id, triggered_at);
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_lockdowns_active_target ON lockdowns (scope, target_id) WHERE released_at IS NULL;
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_roll_calls_active_incident ON roll_calls (incident_id) WHERE status = 'ACTIVE';
		CREATE INDEX IF NOT EXISTS idx_audit_log_site ON audit_log (site_id, created_at);
	`)

	return err
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/joho/godotenv/autoload"

	"roulette/internal/game"
)

// Service wraps the Postgres connection used for the round audit trail.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// SaveRound records one settled round and its bets.
	SaveRound(ctx context.Context, state game.RoundState, results []game.BetResult) error

	// RecentRounds returns the latest settled rounds, newest first.
	RecentRounds(ctx context.Context, limit int) ([]game.RoundState, error)

	// Close terminates the database connection.
	Close() error
}

type service struct {
	db *sql.DB
}

var (
	database   = getEnv("ROULETTE_DB_DATABASE", "roulettedb")
	password   = getEnv("ROULETTE_DB_PASSWORD", "postgres")
	username   = getEnv("ROULETTE_DB_USERNAME", "postgres")
	port       = getEnv("ROULETTE_DB_PORT", "5432")
	host       = getEnv("ROULETTE_DB_HOST", "localhost")
	schema     = getEnv("ROULETTE_DB_SCHEMA", "public")
	dbInstance *service
)

func New() Service {
	// Reuse Connection
	if dbInstance != nil {
		return dbInstance
	}
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		username, password, host, port, database, schema)
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		log.Fatal(err)
	}
	db.SetMaxOpenConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	dbInstance = &service{
		db: db,
	}
	return dbInstance
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	// Ping the database
	err := s.db.PingContext(ctx)
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Printf("[DB] Health check failed: %v", err)
		return stats
	}

	// Database is up, add more statistics
	stats["status"] = "up"
	stats["message"] = "It's healthy"

	// Get database stats (like open connections, in use, idle, etc.)
	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()
	stats["max_idle_closed"] = strconv.FormatInt(dbStats.MaxIdleClosed, 10)
	stats["max_lifetime_closed"] = strconv.FormatInt(dbStats.MaxLifetimeClosed, 10)

	// Evaluate stats to provide a health message
	if dbStats.OpenConnections > 40 {
		stats["message"] = "The database is experiencing heavy load."
	}
	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

// SaveRound writes the round row and one row per settled bet inside a single
// transaction.
func (s *service) SaveRound(ctx context.Context, state game.RoundState, results []game.BetResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin round tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO roulette_rounds
			(round_id, nonce, server_seed, client_seed, commitment, pocket, color, total_wagered, total_payout, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		state.RoundID, state.Nonce, state.ServerSeed, state.ClientSeed, state.Commitment,
		state.Pocket, state.Color, state.TotalWagered, state.TotalPayout, state.SettledAt,
	)
	if err != nil {
		return fmt.Errorf("insert round %s: %w", state.RoundID, err)
	}

	for _, res := range results {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO roulette_round_bets (round_id, kind, picks, wager, payout)
			VALUES ($1, $2, $3, $4, $5)`,
			state.RoundID, res.Bet.Kind.String(), picksToText(res.Bet.Picks), res.Bet.Wager, res.Payout,
		)
		if err != nil {
			return fmt.Errorf("insert bet for round %s: %w", state.RoundID, err)
		}
	}

	return tx.Commit()
}

// RecentRounds loads the newest settled rounds for the history endpoint.
func (s *service) RecentRounds(ctx context.Context, limit int) ([]game.RoundState, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT round_id, nonce, server_seed, client_seed, commitment, pocket, color, total_wagered, total_payout, settled_at
		FROM roulette_rounds
		ORDER BY settled_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent rounds: %w", err)
	}
	defer rows.Close()

	var rounds []game.RoundState
	for rows.Next() {
		var r game.RoundState
		if err := rows.Scan(&r.RoundID, &r.Nonce, &r.ServerSeed, &r.ClientSeed, &r.Commitment,
			&r.Pocket, &r.Color, &r.TotalWagered, &r.TotalPayout, &r.SettledAt); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		rounds = append(rounds, r)
	}
	return rounds, rows.Err()
}

// Close closes the database connection.
func (s *service) Close() error {
	log.Printf("[DB] Disconnected from database: %s", database)
	return s.db.Close()
}

func picksToText(picks []int) string {
	parts := make([]string, len(picks))
	for i, p := range picks {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

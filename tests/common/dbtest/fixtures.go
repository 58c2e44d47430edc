//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, first_name, last_name, role, is_active) VALUES ($1, $2, $3, 'Test', 'User', $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestStation(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	stationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO radio_stations (id, station_name, location, description, contact_email, contact_phone) VALUES ($1, $2, 'Mumbai', '', $3, '+91-22-5550100')",
		stationID, name, strings.ToLower(strings.ReplaceAll(name, " ", ""))+"@example.com")
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO admin_approval_requests (station_id, approval_status) VALUES ($1, 'PENDING')", stationID)
	require.NoError(t, err)

	return stationID
}

func ApproveTestStation(t *testing.T, db DBLike, stationID, adminID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "UPDATE admin_approval_requests SET approval_status = 'APPROVED', admin_id = $2 WHERE station_id = $1", stationID, adminID)
	require.NoError(t, err)
}

func CreateTestRJ(t *testing.T, db DBLike, stationID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	rjID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO rjs (id, station_id, rj_name, show_name, show_timing) VALUES ($1, $2, $3, 'Morning Drive', '07:00-10:00')",
		rjID, stationID, name)
	require.NoError(t, err)

	return rjID
}

func CreateTestSlot(t *testing.T, db DBLike, stationID, rjID uuid.UUID, slotTime time.Time, priceCents int64) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO advertisement_slots (id, station_id, rj_id, slot_time, price_cents, availability_status) VALUES ($1, $2, $3, $4, $5, 'AVAILABLE')",
		slotID, stationID, rjID, slotTime, priceCents)
	require.NoError(t, err)

	return slotID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name, role, is_active) VALUES
		    ('admin@example.com', '`+testPasswordHash+`', 'Default', 'Admin', 'admin', true)
		ON CONFLICT (email) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

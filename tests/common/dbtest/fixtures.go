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

// TestUserPassword is the plain text behind the password hash CreateTestUser stores.
const TestUserPassword = "password123"

const testUserPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// Reference data ids seeded by SeedReferenceData.
var (
	SeedRatePlanID = uuid.MustParse("6f1c2a3e-8d4b-4c7e-9a51-0b2e7d9c1a01")
	SeedRoomID     = uuid.MustParse("6f1c2a3e-8d4b-4c7e-9a51-0b2e7d9c1a02")
	SeedBareRoomID = uuid.MustParse("6f1c2a3e-8d4b-4c7e-9a51-0b2e7d9c1a03")
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testUserPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func DeactivateTestUser(t *testing.T, db DBLike, email string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

func CreateTestGuest(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO guests (first_name, last_name, email) VALUES ('Abebe', 'Kebede', $1) RETURNING id", email).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRatePlan(t *testing.T, db DBLike, name string, maxOccupancy int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO rate_plans (name, max_occupancy) VALUES ($1, $2) RETURNING id", name, maxOccupancy).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestRoom inserts a room; a nil planID leaves the room without a plan.
func CreateTestRoom(t *testing.T, db DBLike, hotel, number string, planID *uuid.UUID) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO rooms (room_number, hotel, rate_plan_id) VALUES ($1, $2, $3) RETURNING id", number, hotel, planID).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRoomRate(t *testing.T, db DBLike, planID uuid.UUID, hotel, dayOfWeek, price string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO room_rates (rate_plan_id, hotel, day_of_week, price, occupancy)
		SELECT $1, $2, $3, $4::numeric, max_occupancy FROM rate_plans WHERE id = $1
		RETURNING id`, planID, hotel, dayOfWeek, price).Scan(&id)
	require.NoError(t, err)
	return id
}

// SeedReferenceData inserts one priced room and one room without a plan at entoto.
// The plan bills 100.00 on weekdays and 150.00 on weekends.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rate_plans (id, name, max_occupancy) VALUES ($1, 'Standard Double', 2)
		ON CONFLICT (id) DO NOTHING;
	`, SeedRatePlanID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO rooms (id, room_number, hotel, rate_plan_id) VALUES
		    ($1, '101', 'entoto', $3),
		    ($2, '102', 'entoto', NULL)
		ON CONFLICT (id) DO NOTHING;
	`, SeedRoomID, SeedBareRoomID, SeedRatePlanID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO room_rates (rate_plan_id, hotel, day_of_week, price, occupancy) VALUES
		    ($1, 'entoto', 'weekdays', 100.00, 2),
		    ($1, 'entoto', 'weekends', 150.00, 2)
		ON CONFLICT (rate_plan_id, hotel, day_of_week) DO NOTHING;
	`, SeedRatePlanID)
	return err
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

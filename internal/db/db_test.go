package db

import (
	"context"
	"os"
	"testing"
)

// TestConnectPostgres exercises the real pool + schema bootstrap. It only
// runs when DATABASE_URL points at a reachable database.
func TestConnectPostgres(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres()
	defer pool.Close()

	for _, table := range []string{"admins", "packages", "meals", "site_settings"} {
		var one int
		err := pool.QueryRow(context.Background(),
			"SELECT 1 FROM information_schema.tables WHERE table_name=$1", table,
		).Scan(&one)
		if err != nil {
			t.Fatalf("expected table %s to exist: %v", table, err)
		}
	}
}

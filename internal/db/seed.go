package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed fills the provider directory with demo data. Campaigns are not
// seeded; they are created through the engine so the stored strategy
// snapshot stays consistent.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	regions := []string{"north", "south", "east", "west"}
	perTier := map[int]int{1: 12, 2: 30, 3: 60}

	for tier, n := range perTier {
		for i := 1; i <= n; i++ {
			handle := fmt.Sprintf("demo-t%d-%03d", tier, i)
			region := regions[r.Intn(len(regions))]
			rating := 1 + r.Float64()*4
			active := r.Intn(10) > 0 // roughly one in ten inactive
			_, err := db.Exec(ctx, `INSERT INTO providers (handle, tier, region, rating, active)
				VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
				handle, tier, region, rating, active)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mauv0809/club-lk/internal/club"
	"github.com/mauv0809/club-lk/internal/config"
	"github.com/mauv0809/club-lk/internal/database"
	"github.com/mauv0809/club-lk/internal/outcome"
	"github.com/mauv0809/club-lk/internal/pubsub"
	"github.com/spf13/cobra"
	"gopkg.in/guregu/null.v4"
)

var (
	numPlayers   int
	numMatchdays int
	publish      bool
	seed         int64
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Seed a club database with players, matchdays and match results",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().IntVar(&numPlayers, "players", 12, "Number of players to create")
	rootCmd.Flags().IntVar(&numMatchdays, "matchdays", 6, "Number of matchdays to create")
	rootCmd.Flags().BoolVar(&publish, "publish", false, "Publish a match-result-saved event per result")
	rootCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "Random seed")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error("Seeder failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	log.Info("Starting database seeder...")
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "club.db"
	}
	db, teardown, err := database.InitDB(dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer teardown()
	store := club.New(db)

	publisher := pubsub.NewLogOnly()
	if publish {
		if project := os.Getenv("GCP_PROJECT"); project != "" {
			if publisher, err = pubsub.New(ctx, project); err != nil {
				return err
			}
		}
	}
	defer publisher.Close()

	rng := rand.New(rand.NewSource(seed))
	players, err := seedPlayers(ctx, store, rng)
	if err != nil {
		return err
	}
	log.Info("Ensured players exist.", "count", len(players))

	seasonStart := config.DefaultSeasonStart(time.Now())
	results := 0
	for d := 0; d < numMatchdays; d++ {
		matchday := club.Matchday{
			ID:          uuid.NewString(),
			Date:        seasonStart.AddDate(0, 0, 7*d),
			Season:      seasonStart.Format("2006"),
			HomeTeamID:  "home",
			AwayTeamID:  "away",
			IsTeamMatch: true,
		}
		if err := store.UpsertMatchday(ctx, matchday); err != nil {
			return err
		}
		for _, result := range pairings(matchday, players, rng) {
			if err := store.UpsertMatchResult(ctx, &result); err != nil {
				return err
			}
			results++
			if publish {
				if err := publisher.SendMessage(pubsub.EventMatchResultSaved, result); err != nil {
					log.Error("Failed to publish match result", "matchID", result.ID, "error", err)
				}
			}
		}
	}
	log.Info("Successfully seeded database.", "matchdays", numMatchdays, "results", results)
	return nil
}

func seedPlayers(ctx context.Context, store club.ClubStore, rng *rand.Rand) ([]string, error) {
	ids := make([]string, 0, numPlayers)
	for i := 0; i < numPlayers; i++ {
		id := fmt.Sprintf("player-%d", i+1)
		start := float64(60+rng.Intn(190)) / 10 // 6.0 to 24.9
		err := store.UpsertPlayer(ctx, club.Player{
			ID:                id,
			Name:              fmt.Sprintf("Seeder Player %c", 'A'+rune(i%26)),
			SeasonStartRating: null.FloatFrom(start),
			FallbackRating:    null.StringFrom(fmt.Sprintf("LK %.1f", start)),
			Active:            true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to insert player %s: %w", id, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// pairings builds four singles and two doubles between the two halves of a
// shuffled roster.
func pairings(matchday club.Matchday, players []string, rng *rand.Rand) []club.MatchResult {
	if len(players) < 8 {
		return nil
	}
	roster := append([]string(nil), players...)
	rng.Shuffle(len(roster), func(i, j int) { roster[i], roster[j] = roster[j], roster[i] })
	home, guest := roster[:4], roster[4:8]

	var results []club.MatchResult
	for i := 0; i < 4; i++ {
		results = append(results, club.MatchResult{
			ID:             uuid.NewString(),
			MatchdayID:     matchday.ID,
			MatchType:      club.MatchTypeSingles,
			HomePlayer1ID:  home[i],
			GuestPlayer1ID: guest[i],
			Sets:           randomSets(rng),
		})
	}
	for i := 0; i < 4; i += 2 {
		results = append(results, club.MatchResult{
			ID:             uuid.NewString(),
			MatchdayID:     matchday.ID,
			MatchType:      club.MatchTypeDoubles,
			HomePlayer1ID:  home[i],
			HomePlayer2ID:  home[i+1],
			GuestPlayer1ID: guest[i],
			GuestPlayer2ID: guest[i+1],
			Sets:           randomSets(rng),
		})
	}
	return results
}

func randomSets(rng *rand.Rand) [3]outcome.Set {
	set := func() outcome.Set {
		loser := rng.Intn(5)
		if rng.Intn(2) == 0 {
			return outcome.Set{Home: 6, Guest: loser}
		}
		return outcome.Set{Home: loser, Guest: 6}
	}
	sets := [3]outcome.Set{set(), set()}
	if (sets[0].Home > sets[0].Guest) != (sets[1].Home > sets[1].Guest) {
		if rng.Intn(2) == 0 {
			sets[2] = outcome.Set{Home: 10, Guest: rng.Intn(9)}
		} else {
			sets[2] = outcome.Set{Home: rng.Intn(9), Guest: 10}
		}
	}
	return sets
}

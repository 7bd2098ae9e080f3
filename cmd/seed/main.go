package main

import (
	"context"
	"database/sql"
	"flag"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"alx_travel/internal/adapters/observability"
	redisad "alx_travel/internal/adapters/redis"
	"alx_travel/internal/app"
	"alx_travel/internal/seed"
	"alx_travel/internal/shared"
	mysqlrepo "alx_travel/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	users := flag.Int("users", cfg.SeedUsers, "number of users to create")
	listings := flag.Int("listings", cfg.SeedListings, "number of listings to create")
	bookings := flag.Int("bookings", cfg.SeedBookings, "number of bookings to create")
	reviews := flag.Int("reviews", cfg.SeedReviews, "number of reviews to create")
	clean := flag.Bool("clean", false, "clean existing sample data before seeding")
	flag.Parse()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("users", *users).
		Int("listings", *listings).
		Int("bookings", *bookings).
		Int("reviews", *reviews).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	cmds := app.NewCommandService(repo, cache)

	s := seed.New(cmds, repo, cfg.SeedWorkers, cfg.SeedRate)
	counts := seed.Counts{Users: *users, Listings: *listings, Bookings: *bookings, Reviews: *reviews}

	if err := s.Run(context.Background(), counts, *clean); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("database seeding completed successfully")
}

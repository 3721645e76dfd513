package main

import (
	"log"

	"github.com/Lum1n0sity/scholarthynk-api/internal/bootstrap"
	"github.com/Lum1n0sity/scholarthynk-api/internal/config"
	"github.com/Lum1n0sity/scholarthynk-api/internal/server"
	"github.com/Lum1n0sity/scholarthynk-api/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}

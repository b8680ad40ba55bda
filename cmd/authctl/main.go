package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/authctl"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/db"
	"github.com/dmitrijs2005/authkeeper/internal/server/users"
)

func main() {

	if len(os.Args) < 2 || os.Args[1] != "create-user" {
		log.Fatal("usage: authctl create-user [-d dsn]")
	}

	cfg := config.LoadConfig()

	rm, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	service := users.NewService(rm.Users(), cfg)
	app := authctl.NewApp(service)

	err = app.CreateUser(context.Background())

	if closeErr := rm.Close(); closeErr != nil {
		log.Printf("db close error: %v", closeErr)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

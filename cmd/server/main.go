// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/ingsoft-famaf/switcher/internal/auth"
	"github.com/ingsoft-famaf/switcher/internal/cache"
	"github.com/ingsoft-famaf/switcher/internal/database"
	"github.com/ingsoft-famaf/switcher/internal/handlers"
	"github.com/ingsoft-famaf/switcher/internal/middleware"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	auth.Init()
	database.ConnectDB()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	if err := cache.ConnectRedis(); err != nil {
		logger.Warnf("game log archival disabled: %v", err)
	}

	srv := handlers.NewServer(logger)
	logged := middleware.LogMiddleware(logger)

	mux := http.NewServeMux()

	// player endpoints
	mux.Handle("POST /players", logged(http.HandlerFunc(srv.CreatePlayerHandler)))

	// room endpoints
	mux.Handle("POST /rooms", logged(http.HandlerFunc(srv.CreateRoomHandler)))
	mux.Handle("GET /rooms", logged(http.HandlerFunc(srv.ListRoomsHandler)))
	mux.Handle("PUT /rooms/{roomID}/join", logged(http.HandlerFunc(srv.JoinRoomHandler)))
	mux.Handle("PUT /rooms/{roomID}/leave", logged(http.HandlerFunc(srv.LeaveRoomHandler)))

	// game endpoints
	mux.Handle("POST /games/{roomID}", logged(http.HandlerFunc(srv.StartGameHandler)))
	mux.Handle("PUT /games/{gameID}/turn", logged(http.HandlerFunc(srv.SkipTurnHandler)))
	mux.Handle("POST /games/{gameID}/movement", logged(http.HandlerFunc(srv.PlayMovementHandler)))
	mux.Handle("DELETE /games/{gameID}/movement", logged(http.HandlerFunc(srv.CancelMovementHandler)))
	mux.Handle("POST /games/{gameID}/figure", logged(http.HandlerFunc(srv.PlayFigureHandler)))
	mux.Handle("PUT /games/{gameID}/block", logged(http.HandlerFunc(srv.BlockFigureHandler)))
	mux.Handle("PUT /games/{gameID}/leave", logged(http.HandlerFunc(srv.LeaveGameHandler)))

	// websockets
	mux.HandleFunc("GET /rooms/ws/{playerID}", srv.RoomListWSHandler)
	mux.HandleFunc("GET /rooms/ws/{playerID}/{roomID}", srv.RoomWSHandler)
	mux.HandleFunc("GET /games/ws/{gameID}/{playerID}", srv.GameWSHandler)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

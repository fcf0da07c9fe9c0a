// internal/database/game.go
package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ingsoft-famaf/switcher/internal/game"
	"github.com/ingsoft-famaf/switcher/internal/models"
)

// RecordGameStart persists the start of a match: the game row and one result
// row per seat, so a match history survives the in-memory game.
func RecordGameStart(ctx context.Context, g *game.SwitcherGame) error {
	err := pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `
			INSERT INTO games (id, room_id, status, start_time)
			VALUES ($1, $2, 'in_progress', NOW())
			ON CONFLICT (id) DO NOTHING
		`
		if _, e := tx.Exec(ctx, q, g.ID, g.RoomID); e != nil {
			return e
		}
		for _, seat := range g.Seats {
			rq := `
				INSERT INTO game_results (game_id, player_id, seat_position, did_win)
				VALUES ($1, $2, $3, false)
				ON CONFLICT (game_id, player_id) DO NOTHING
			`
			if _, e := tx.Exec(ctx, rq, g.ID, seat.PlayerID, seat.Position); e != nil {
				return e
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("tx insert game start: %w", err)
	}
	return nil
}

// RecordGameResult marks a match completed and flags the winner's row.
func RecordGameResult(ctx context.Context, gameID uuid.UUID, winner models.Winner) error {
	err := pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `
			UPDATE games
			SET status = 'completed', end_time = NOW()
			WHERE id = $1
		`
		if _, e := tx.Exec(ctx, q, gameID); e != nil {
			return e
		}
		wq := `
			UPDATE game_results
			SET did_win = true
			WHERE game_id = $1 AND player_id = $2
		`
		_, e := tx.Exec(ctx, wq, gameID, winner.WinnerID)
		return e
	})
	if err != nil {
		return fmt.Errorf("tx record game result: %w", err)
	}
	return nil
}

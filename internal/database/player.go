package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ingsoft-famaf/switcher/internal/models"
)

// CreatePlayer inserts a new player account. A missing ID is generated.
func CreatePlayer(ctx context.Context, player *models.Player) error {
	if player.ID == uuid.Nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("failed to generate player id: %w", err)
		}
		player.ID = id
	}
	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now()
	}

	q := `INSERT INTO players (id, username, created_at)
	      VALUES ($1, $2, $3)`

	err := pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, execErr := tx.Exec(ctx, q, player.ID, player.Username, player.CreatedAt)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

// GetPlayerByID loads a player account by ID.
func GetPlayerByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	var p models.Player
	q := `
	SELECT id, username, created_at
	FROM players
	WHERE id=$1
	`
	err := DB.QueryRow(ctx, q, id).Scan(&p.ID, &p.Username, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

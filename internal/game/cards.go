// internal/game/cards.go
package game

import (
	"math/rand"

	"github.com/google/uuid"
)

// FigureCard is one figure card dealt into a game. A player's first three
// cards are playable (face up); the rest form a hidden backlog that refills
// the playable slots.
type FigureCard struct {
	ID         uuid.UUID
	Type       FigureType
	PlayerID   uuid.UUID
	IsPlayable bool
	IsBlocked  bool
	WasBlocked bool
}

// MovementCard is one movement card dealt into a game. PlayerID is uuid.Nil
// while the card sits in the shared draw pool; IsDiscarded marks cards spent
// from a hand, awaiting a pool reshuffle.
type MovementCard struct {
	ID          uuid.UUID
	Type        MovementType
	PlayerID    uuid.UUID
	IsDiscarded bool
}

// Deck sizes indexed by playerCount-2. Figure amounts are totals sampled
// from the duplicated catalog; the movement amount is per player.
var (
	normalFigureDeal  = [3]int{36, 36, 36}
	easyFigureDeal    = [3]int{14, 12, 12}
	movementPerPlayer = [3]int{24, 16, 12}
)

const handSize = 3

// dealFigureCards builds every player's figure deck. The sampled normal and
// easy decks are shuffled together and split evenly between the seats; the
// first three cards of each split start playable.
func dealFigureCards(seats []*Seat, rng *rand.Rand) []*FigureCard {
	idx := len(seats) - 2

	pool := make([]FigureType, 0, 2*len(figureTypes))
	pool = append(pool, sampleFigureTypes(easyFigureTypes, easyFigureDeal[idx], rng)...)
	pool = append(pool, sampleFigureTypes(normalFigureTypes, normalFigureDeal[idx], rng)...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	perPlayer := len(pool) / len(seats)

	cards := make([]*FigureCard, 0, perPlayer*len(seats))
	for i, seat := range seats {
		for j := 0; j < perPlayer; j++ {
			cards = append(cards, &FigureCard{
				ID:         uuid.New(),
				Type:       pool[i*perPlayer+j],
				PlayerID:   seat.PlayerID,
				IsPlayable: j < handSize,
			})
		}
	}
	return cards
}

// sampleFigureTypes draws n cards without replacement from the catalog with
// every type duplicated twice.
func sampleFigureTypes(catalog []FigureType, n int, rng *rand.Rand) []FigureType {
	pool := make([]FigureType, 0, 2*len(catalog))
	pool = append(pool, catalog...)
	pool = append(pool, catalog...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:n]
}

// dealMovementCards samples the movement deck for the table, hands three
// cards to every seat and leaves the remainder in the shared pool.
func dealMovementCards(seats []*Seat, rng *rand.Rand) []*MovementCard {
	idx := len(seats) - 2
	total := movementPerPlayer[idx] * len(seats)

	pool := make([]MovementType, 0, 7*len(movementTypes))
	for _, t := range movementTypes {
		for i := 0; i < 7; i++ {
			pool = append(pool, t)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	cards := make([]*MovementCard, 0, total)
	for _, t := range pool[:total] {
		cards = append(cards, &MovementCard{ID: uuid.New(), Type: t, PlayerID: uuid.Nil})
	}
	for i, seat := range seats {
		for j := 0; j < handSize; j++ {
			cards[i*handSize+j].PlayerID = seat.PlayerID
		}
	}
	return cards
}

// Card queries below assume g.Mu is held.

func (g *SwitcherGame) figureCardByID(cardID uuid.UUID) *FigureCard {
	for _, c := range g.FigureCards {
		if c.ID == cardID {
			return c
		}
	}
	return nil
}

func (g *SwitcherGame) movementCardByID(cardID uuid.UUID) *MovementCard {
	for _, c := range g.MovementCards {
		if c.ID == cardID {
			return c
		}
	}
	return nil
}

// figureCardsOf returns every figure card a player holds, playable or not.
func (g *SwitcherGame) figureCardsOf(playerID uuid.UUID) []*FigureCard {
	var cards []*FigureCard
	for _, c := range g.FigureCards {
		if c.PlayerID == playerID {
			cards = append(cards, c)
		}
	}
	return cards
}

func (g *SwitcherGame) playableFiguresOf(playerID uuid.UUID) []*FigureCard {
	var cards []*FigureCard
	for _, c := range g.FigureCards {
		if c.PlayerID == playerID && c.IsPlayable {
			cards = append(cards, c)
		}
	}
	return cards
}

func (g *SwitcherGame) movementHandOf(playerID uuid.UUID) []*MovementCard {
	var cards []*MovementCard
	for _, c := range g.MovementCards {
		if c.PlayerID == playerID {
			cards = append(cards, c)
		}
	}
	return cards
}

// blockedCardOf returns the player's blocked playable card, if any.
func (g *SwitcherGame) blockedCardOf(playerID uuid.UUID) *FigureCard {
	for _, c := range g.FigureCards {
		if c.PlayerID == playerID && c.IsBlocked {
			return c
		}
	}
	return nil
}

func (g *SwitcherGame) removeFigureCard(cardID uuid.UUID) {
	for i, c := range g.FigureCards {
		if c.ID == cardID {
			g.FigureCards = append(g.FigureCards[:i], g.FigureCards[i+1:]...)
			return
		}
	}
}

// replenishMovementHand tops the player's hand back up to three cards from
// the unassigned, non-discarded pool. When the pool runs dry the discarded
// cards are reshuffled back in and the draw retried.
func (g *SwitcherGame) replenishMovementHand(playerID uuid.UUID) {
	missing := handSize - len(g.movementHandOf(playerID))
	if missing <= 0 {
		return
	}

	available := g.drawableMovementCards()
	if len(available) < missing {
		g.rebuildMovementPool()
		available = g.drawableMovementCards()
	}
	g.rng.Shuffle(len(available), func(i, j int) { available[i], available[j] = available[j], available[i] })

	if missing > len(available) {
		missing = len(available)
	}
	for _, c := range available[:missing] {
		c.PlayerID = playerID
	}
}

func (g *SwitcherGame) drawableMovementCards() []*MovementCard {
	var pool []*MovementCard
	for _, c := range g.MovementCards {
		if c.PlayerID == uuid.Nil && !c.IsDiscarded {
			pool = append(pool, c)
		}
	}
	return pool
}

func (g *SwitcherGame) rebuildMovementPool() {
	for _, c := range g.MovementCards {
		if c.PlayerID == uuid.Nil {
			c.IsDiscarded = false
		}
	}
}

// replenishFigureHand promotes backlog cards to playable until the player
// shows three again. A held blocked card, or a recently unblocked one, keeps
// its slot and suppresses replenishment until played.
func (g *SwitcherGame) replenishFigureHand(playerID uuid.UUID) {
	playable := g.playableFiguresOf(playerID)
	for _, c := range playable {
		if c.IsBlocked || c.WasBlocked {
			return
		}
	}

	missing := handSize - len(playable)
	for _, c := range g.figureCardsOf(playerID) {
		if missing == 0 {
			return
		}
		if !c.IsPlayable {
			c.IsPlayable = true
			missing--
		}
	}
}

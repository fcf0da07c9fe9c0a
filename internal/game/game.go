// internal/game/game.go
package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ingsoft-famaf/switcher/internal/models"
)

// DefaultTurnDuration is how long a player holds the turn before the engine
// skips for them.
const DefaultTurnDuration = 120 * time.Second

// timerPollInterval is the resolution of the turn-deadline watcher. Only the
// boundary condition matters, not sub-second precision.
const timerPollInterval = 500 * time.Millisecond

// Seat is a player's slot in a game. Position is assigned once at game start
// and never reused; inactive seats are skipped by turn advancement.
type Seat struct {
	PlayerID uuid.UUID
	Username string
	Position int
	IsActive bool
}

// PendingMovement is a swap already applied to the board but still reversible
// until the turn locks in.
type PendingMovement struct {
	CardID      uuid.UUID
	Origin      Position
	Destination Position
	Order       int
}

// PersonalStatus pairs a recipient with the state snapshot built for them.
type PersonalStatus struct {
	PlayerID uuid.UUID
	Info     *GamePublicInfo
}

// SwitcherGame holds the full mutable state of one match. All exported
// methods serialize on Mu; two concurrent operations on the same game never
// interleave their read-modify-write sequences.
type SwitcherGame struct {
	ID     uuid.UUID
	RoomID uuid.UUID

	Board           Board
	ProhibitedColor Color

	// TurnPos is the 1-based seat position holding the turn.
	TurnPos      int
	TurnDeadline time.Time
	TurnDuration time.Duration

	Seats         []*Seat
	FigureCards   []*FigureCard
	MovementCards []*MovementCard

	// Pending is the undo stack of this turn's movements, oldest first.
	Pending []PendingMovement

	GameOver bool

	Mu  sync.Mutex
	rng *rand.Rand

	// Notification callbacks, injected by the transport layer. Payloads are
	// built under the lock; implementations must not call back into the game.
	BroadcastStatusFn func(gameID uuid.UUID, states []PersonalStatus)
	BroadcastEndFn    func(gameID uuid.UUID, winner models.Winner)
	SendLogFn         func(gameID uuid.UUID, msg models.LogMessage)

	// OnGameEnd runs once after the end broadcast, off the game's lock.
	OnGameEnd func(g *SwitcherGame, winner models.Winner)
}

// NewSwitcherGame deals a fresh match for the given players: a shuffled
// board, both card decks and a random seat order. The first timer is not
// armed until Begin is called.
func NewSwitcherGame(roomID uuid.UUID, players []*models.Player) *SwitcherGame {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	order := rng.Perm(len(players))
	seats := make([]*Seat, len(players))
	for i, p := range players {
		seats[i] = &Seat{
			PlayerID: p.ID,
			Username: p.Username,
			Position: order[i] + 1,
			IsActive: true,
		}
	}

	g := &SwitcherGame{
		ID:           uuid.New(),
		RoomID:       roomID,
		Board:        NewBoard(rng),
		TurnPos:      1,
		TurnDuration: DefaultTurnDuration,
		Seats:        seats,
		rng:          rng,
	}
	g.FigureCards = dealFigureCards(seats, rng)
	g.MovementCards = dealMovementCards(seats, rng)
	return g
}

// Begin arms the first turn timer.
func (g *SwitcherGame) Begin() {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	g.armTurnTimer()
}

// HasSeat reports whether the player joined this game, active or not.
func (g *SwitcherGame) HasSeat(playerID uuid.UUID) bool {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.seatOf(playerID) != nil
}

// seatOf returns the player's seat, or nil if they never joined this game.
func (g *SwitcherGame) seatOf(playerID uuid.UUID) *Seat {
	for _, s := range g.Seats {
		if s.PlayerID == playerID {
			return s
		}
	}
	return nil
}

func (g *SwitcherGame) seatAt(position int) *Seat {
	for _, s := range g.Seats {
		if s.Position == position {
			return s
		}
	}
	return nil
}

func (g *SwitcherGame) currentSeat() *Seat {
	return g.seatAt(g.TurnPos)
}

func (g *SwitcherGame) activeSeat(playerID uuid.UUID) (*Seat, error) {
	seat := g.seatOf(playerID)
	if seat == nil || !seat.IsActive {
		return nil, ErrNotInGame
	}
	return seat, nil
}

// armTurnTimer stores a fresh deadline and spawns a watcher for it. Assumes
// g.Mu is held.
func (g *SwitcherGame) armTurnTimer() {
	deadline := time.Now().Add(g.TurnDuration)
	g.TurnDeadline = deadline
	go g.watchTurnDeadline(deadline)
}

// watchTurnDeadline polls until its deadline passes, then auto-skips the
// current turn. A human action re-arms the timer with a new deadline; the
// mismatch defuses this watcher without explicit cancellation.
func (g *SwitcherGame) watchTurnDeadline(deadline time.Time) {
	ticker := time.NewTicker(timerPollInterval)
	defer ticker.Stop()

	for range ticker.C {
		g.Mu.Lock()
		if g.GameOver || !g.TurnDeadline.Equal(deadline) {
			g.Mu.Unlock()
			return
		}
		if !time.Now().Before(deadline) {
			if seat := g.currentSeat(); seat != nil {
				g.sendLog(fmt.Sprintf("El turno de %s ha terminado por finalizar su tiempo de juego", seat.Username))
				g.endTurn(seat)
				g.broadcastStatus()
			}
			g.Mu.Unlock()
			return
		}
		g.Mu.Unlock()
	}
}

// endTurn locks in the acting player's turn: pending movements commit (the
// swaps stay on the board, used cards go to the discard pool), both hands are
// replenished, the turn pointer advances to the next active seat and a new
// deadline is armed. Assumes g.Mu is held.
func (g *SwitcherGame) endTurn(actor *Seat) {
	g.commitPendingMovements()
	g.replenishMovementHand(actor.PlayerID)
	g.replenishFigureHand(actor.PlayerID)
	g.advanceTurn()
	g.armTurnTimer()
}

// commitPendingMovements releases every card consumed by this turn's pending
// stack into the discard pool and clears the stack. The board keeps the
// swapped cells.
func (g *SwitcherGame) commitPendingMovements() {
	for _, pm := range g.Pending {
		if card := g.movementCardByID(pm.CardID); card != nil {
			card.PlayerID = uuid.Nil
			card.IsDiscarded = true
		}
	}
	g.Pending = nil
}

// advanceTurn moves the pointer to the next active seat, wrapping past the
// highest position. Terminates because at least one seat is active while the
// game runs.
func (g *SwitcherGame) advanceTurn() {
	for i := 0; i < len(g.Seats); i++ {
		g.TurnPos++
		if g.TurnPos > len(g.Seats) {
			g.TurnPos = 1
		}
		if s := g.seatAt(g.TurnPos); s != nil && s.IsActive {
			return
		}
	}
}

// SkipTurn ends the requesting player's turn voluntarily.
func (g *SwitcherGame) SkipTurn(playerID uuid.UUID) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	seat, err := g.activeSeat(playerID)
	if err != nil {
		return err
	}
	if seat.Position != g.TurnPos {
		return ErrNotPlayersTurn
	}

	g.sendLog(fmt.Sprintf("%s ha pasado su turno", seat.Username))
	g.endTurn(seat)
	g.broadcastStatus()
	return nil
}

// PlayMovement validates a movement card against its displacement rule,
// swaps the two cells and pushes the swap onto the pending stack. The turn
// does not end.
func (g *SwitcherGame) PlayMovement(playerID, cardID uuid.UUID, origin, destination Position) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	seat, err := g.activeSeat(playerID)
	if err != nil {
		return err
	}
	if seat.Position != g.TurnPos {
		return ErrNotPlayersTurn
	}

	card := g.movementCardByID(cardID)
	if card == nil {
		return ErrMovementCardNotFound
	}
	if card.PlayerID != playerID {
		return ErrMovementCardNotOwned
	}
	if err := ValidateMovement(card.Type, origin, destination); err != nil {
		return err
	}
	if g.cardUsedInPending(cardID) {
		return ErrCardAlreadyPending
	}

	g.sendLog(fmt.Sprintf("%s ha jugado la carta de movimiento '%s'", seat.Username, card.Type.DisplayName()))

	g.Board.Swap(origin, destination)
	g.Pending = append(g.Pending, PendingMovement{
		CardID:      cardID,
		Origin:      origin,
		Destination: destination,
		Order:       len(g.Pending) + 1,
	})

	g.broadcastStatus()
	return nil
}

func (g *SwitcherGame) cardUsedInPending(cardID uuid.UUID) bool {
	for _, pm := range g.Pending {
		if pm.CardID == cardID {
			return true
		}
	}
	return false
}

// CancelMovement reverses the most recent pending movement (LIFO) and
// returns the card to the player's hand.
func (g *SwitcherGame) CancelMovement(playerID uuid.UUID) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	seat, err := g.activeSeat(playerID)
	if err != nil {
		return err
	}
	if seat.Position != g.TurnPos {
		return ErrNotPlayersTurn
	}
	if len(g.Pending) == 0 {
		return ErrNoPendingMovement
	}

	last := g.Pending[len(g.Pending)-1]
	if card := g.movementCardByID(last.CardID); card != nil {
		g.sendLog(fmt.Sprintf("%s ha cancelado el movimiento realizado por la carta '%s'", seat.Username, card.Type.DisplayName()))
	}

	g.Board.Swap(last.Origin, last.Destination)
	g.Pending = g.Pending[:len(g.Pending)-1]

	g.broadcastStatus()
	return nil
}

// validateFigureCells runs the shared geometric checks for playing or
// blocking a figure: every cell in bounds, monochrome, matching the card's
// shape under some rotation and isolated from same-color neighbors. The
// prohibited-color rule applies only when playing.
func (g *SwitcherGame) validateFigureCells(t FigureType, cells []Position, checkProhibited bool) error {
	if len(cells) == 0 {
		return ErrFigureEmpty
	}
	for _, p := range cells {
		if !inBounds(p) {
			return ErrFigureOutOfBounds
		}
	}

	color := g.Board.At(cells[0].X, cells[0].Y)
	for _, p := range cells[1:] {
		if g.Board.At(p.X, p.Y) != color {
			return ErrFigureMixedColor
		}
	}
	if checkProhibited && color != ColorNone && color == g.ProhibitedColor {
		return ErrFigureProhibited
	}
	if !MatchesShape(t, cells) {
		return ErrFigureMismatch
	}
	if !borderIsolated(cells, colorLayer(g.Board, color)) {
		return ErrFigureBorder
	}
	return nil
}

// PlayFigure claims a figure with one of the player's playable cards. On
// success the card is consumed, the figure's color becomes prohibited, the
// pending stack commits, the unblock cascade runs and either the game ends
// with a winner or the turn ends.
func (g *SwitcherGame) PlayFigure(playerID, cardID uuid.UUID, cells []Position) (*models.Winner, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	seat, err := g.activeSeat(playerID)
	if err != nil {
		return nil, err
	}
	if seat.Position != g.TurnPos {
		return nil, ErrNotPlayersTurn
	}

	card := g.figureCardByID(cardID)
	if card == nil {
		return nil, ErrCardNotInGame
	}
	if card.PlayerID != playerID {
		return nil, ErrCardNotOwned
	}
	if card.IsBlocked {
		return nil, ErrCardBlocked
	}
	if err := g.validateFigureCells(card.Type, cells, true); err != nil {
		return nil, err
	}

	g.sendLog(fmt.Sprintf("%s ha jugado la carta de figura '%s'", seat.Username, card.Type.DisplayName()))

	g.ProhibitedColor = g.Board.At(cells[0].X, cells[0].Y)
	g.removeFigureCard(cardID)
	g.commitPendingMovements()

	// Unblock cascade: a blocked card that becomes its owner's last playable
	// card is freed and flagged, occupying a replenishment slot until played.
	if blocked := g.blockedCardOf(playerID); blocked != nil {
		if blocked.WasBlocked {
			blocked.WasBlocked = false
		}
		if len(g.playableFiguresOf(playerID)) == 1 {
			blocked.IsBlocked = false
			blocked.WasBlocked = true
		}
	}

	if len(g.figureCardsOf(playerID)) == 0 {
		winner := models.Winner{WinnerID: seat.PlayerID, Username: seat.Username}
		g.finish(winner)
		return &winner, nil
	}

	g.endTurn(seat)
	g.broadcastStatus()
	return nil, nil
}

// BlockFigure flags one of the target's playable cards as blocked. The
// blocker indicates a figure on the board satisfying the card's shape, which
// also sets the prohibited color and commits the pending stack. The turn
// does not end.
func (g *SwitcherGame) BlockFigure(blockerID, targetID, cardID uuid.UUID, cells []Position) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	blocker, err := g.activeSeat(blockerID)
	if err != nil {
		return err
	}
	target, err := g.activeSeat(targetID)
	if err != nil {
		return err
	}

	card := g.figureCardByID(cardID)
	if card == nil {
		return ErrCardNotInGame
	}
	if card.PlayerID != targetID {
		return ErrCardNotOwned
	}
	if err := g.validateFigureCells(card.Type, cells, false); err != nil {
		return err
	}
	if card.IsBlocked {
		return ErrCardBlocked
	}
	if len(g.playableFiguresOf(targetID)) != handSize {
		return ErrTargetNotThreeCards
	}

	g.sendLog(fmt.Sprintf("%s ha bloqueado la carta de figura '%s' del jugador %s",
		blocker.Username, card.Type.DisplayName(), target.Username))

	// Only one card per player may be blocked at a time.
	if g.blockedCardOf(targetID) == nil {
		card.IsBlocked = true
	}
	g.ProhibitedColor = g.Board.At(cells[0].X, cells[0].Y)
	g.commitPendingMovements()

	g.broadcastStatus()
	return nil
}

// Leave marks a player inactive, discards their cards and hands the turn on
// if they held it. When a single active player remains the game ends and
// they win.
func (g *SwitcherGame) Leave(playerID uuid.UUID) (*models.Winner, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	seat, err := g.activeSeat(playerID)
	if err != nil {
		return nil, err
	}

	seat.IsActive = false

	kept := g.FigureCards[:0]
	for _, c := range g.FigureCards {
		if c.PlayerID != playerID {
			kept = append(kept, c)
		}
	}
	g.FigureCards = kept

	for _, c := range g.MovementCards {
		if c.PlayerID == playerID {
			c.PlayerID = uuid.Nil
			c.IsDiscarded = true
		}
	}

	if seat.Position == g.TurnPos {
		g.Pending = nil
		g.advanceTurn()
		g.armTurnTimer()
	}

	var remaining *Seat
	active := 0
	for _, s := range g.Seats {
		if s.IsActive {
			active++
			remaining = s
		}
	}
	if active == 1 {
		winner := models.Winner{WinnerID: remaining.PlayerID, Username: remaining.Username}
		g.finish(winner)
		return &winner, nil
	}

	g.sendLog(fmt.Sprintf("%s ha abandonado la partida", seat.Username))
	g.broadcastStatus()
	return nil, nil
}

// finish marks the game over, announces the winner and schedules teardown.
// Assumes g.Mu is held.
func (g *SwitcherGame) finish(winner models.Winner) {
	g.GameOver = true
	if g.BroadcastEndFn != nil {
		g.BroadcastEndFn(g.ID, winner)
	}
	if g.OnGameEnd != nil {
		go g.OnGameEnd(g, winner)
	}
}

func (g *SwitcherGame) sendLog(text string) {
	if g.SendLogFn != nil {
		g.SendLogFn(g.ID, models.NewSystemLog(text))
	}
}

func (g *SwitcherGame) broadcastStatus() {
	if g.BroadcastStatusFn == nil {
		return
	}
	states := make([]PersonalStatus, 0, len(g.Seats))
	for _, s := range g.Seats {
		states = append(states, PersonalStatus{PlayerID: s.PlayerID, Info: g.statusFor(s.PlayerID)})
	}
	g.BroadcastStatusFn(g.ID, states)
}

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/projectdex/dexchess-backend/internal/ws"
)

// GameConnections tracks the websocket connections observing one game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game is one session: a single authoritative board plus the two seats and
// the observers. The engine itself knows nothing about players or sockets;
// everything here goes through Validate/Apply and the read-only accessors.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	white       ClientPlayer
	black       ClientPlayer
	resolve     *string
	connections *GameConnections
}

// GameState is the client-facing snapshot. The board is sent as 64 slots in
// square order, empty slots as null; history and last move use the numeric
// move notation the client submits.
type GameState struct {
	Board          []*Piece       `json:"board"`
	ToMove         Color          `json:"toMove"`
	MoveHistory    []string       `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	IsCheck        bool           `json:"isCheck"`
	IsCheckmate    bool           `json:"isCheckmate"`
	LastMove       *string        `json:"lastMove"`
	Resolve        *string        `json:"resolve"`
	Players        struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}

// CapturedPieces groups the capture list by the color that did the
// capturing, which is how the client displays it.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		board:       NewBoard(),
		connections: NewGameConnections(),
	}
}

func (g *Game) AddPlayer(playerID string) (Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.white.ID == "" {
		g.white = ClientPlayer{ID: playerID, Color: ColorWhite}
		return ColorWhite, nil
	}
	if g.black.ID == "" {
		g.black = ClientPlayer{ID: playerID, Color: ColorBlack}
		return ColorBlack, nil
	}
	return "", errors.New("game is full")
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	if g.white.ID != "" && g.white.ID == playerID {
		return true
	}
	if g.black.ID != "" && g.black.ID == playerID {
		return true
	}
	return false
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.white.ID == "" || g.black.ID == ""
}

func (g *Game) seatOf(playerID string) (Color, bool) {
	if g.white.ID == playerID {
		return ColorWhite, true
	}
	if g.black.ID == playerID {
		return ColorBlack, true
	}
	return "", false
}

// MakeMove parses, validates and applies one move submitted by a player.
// Notation errors and rejections come back as errors; the board is only
// mutated when every gate passed.
func (g *Game) MakeMove(playerID string, notation string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.resolve != nil {
		return errors.New("game is over")
	}

	move, err := ParseMove(notation)
	if err != nil {
		return err
	}

	seat, ok := g.seatOf(playerID)
	if !ok {
		return errors.New("player not in game")
	}
	if seat != g.board.Turn() {
		return errors.New("not your turn")
	}

	if !g.board.Validate(move) {
		return ErrIllegalMove
	}
	g.board.Apply(move)

	if g.board.IsCheckmate(g.board.Turn()) {
		result := "checkmate"
		g.resolve = &result
	}

	state := g.snapshot()
	go g.broadcastState(state)
	return nil
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() GameState {
	state := GameState{
		Board:       make([]*Piece, 64),
		ToMove:      g.board.Turn(),
		MoveHistory: []string{},
		CapturedPieces: CapturedPieces{
			White: []Piece{},
			Black: []Piece{},
		},
		Resolve: g.resolve,
	}
	for sq := Square(0); sq < 64; sq++ {
		if piece := g.board.PieceAt(sq); !piece.IsEmpty() {
			p := piece
			state.Board[sq] = &p
		}
	}
	for _, m := range g.board.History() {
		state.MoveHistory = append(state.MoveHistory, FormatMove(m))
	}
	// A captured white piece was captured by black, and vice versa.
	for _, piece := range g.board.Captures() {
		if piece.Color == ColorBlack {
			state.CapturedPieces.White = append(state.CapturedPieces.White, piece)
		} else {
			state.CapturedPieces.Black = append(state.CapturedPieces.Black, piece)
		}
	}
	if last, ok := g.board.LastMove(); ok {
		notation := FormatMove(last)
		state.LastMove = &notation
	}
	_, state.IsCheck = g.board.InCheck(g.board.Turn())
	state.IsCheckmate = g.resolve != nil && *g.resolve == "checkmate"
	state.Players.White = g.white
	state.Players.Black = g.black
	return state
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	state := g.snapshot()
	g.mu.Unlock()

	if !isAuthorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the healthy connection, reject the duplicate.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState(state)
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, playerID)
}

func (g *Game) broadcastState(state GameState) {
	payload, err := json.Marshal(state)
	if err != nil {
		fmt.Println("Failed to marshal state to JSON", err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			fmt.Println("Failed to send state to player", playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/peterkuimelis/cardbattle/internal/game"
)

// activeSession is the singleton game session (one per stdio process).
var activeSession *GameSession

// rulesFile and contentFile are set by main; empty means built-in defaults.
var (
	rulesFile   string
	contentFile string
)

// SetRulesFile sets the path to the rules YAML file.
func SetRulesFile(path string) {
	rulesFile = path
}

// SetContentFile sets the path to the card content YAML file.
func SetContentFile(path string) {
	contentFile = path
}

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(placeCardTool(), handlePlaceCard)
	s.AddTool(passTool(), handlePass)
	s.AddTool(getGameStateTool(), handleGetGameState)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new Card Battle match against the computer on a 5x5 grid. "+
			"Each round both sides place one card; then every card hits adjacent enemy cards with the attack value facing them. "+
			"Destroyed cards cost their owner HP equal to the card's max HP. Returns the initial state."),
		mcp.WithString("difficulty", mcp.Required(), mcp.Enum("Easy", "Medium", "Hard"), mcp.Description("Computer difficulty")),
		mcp.WithNumber("seed", mcp.Description("RNG seed for a reproducible match (0 or omitted for random)")),
		mcp.WithString("name", mcp.Description("Your player name (default \"Human\")")),
	)
}

func placeCardTool() mcp.Tool {
	return mcp.NewTool("place_card",
		mcp.WithDescription("Place a card from your hand on an empty cell. The computer then moves and the round's combat resolves. "+
			"Use this when your_move and can_place are true."),
		mcp.WithNumber("card", mcp.Required(), mcp.Description("1-based index of the card in your hand")),
		mcp.WithNumber("row", mcp.Required(), mcp.Description("Grid row, 0-4")),
		mcp.WithNumber("col", mcp.Required(), mcp.Description("Grid column, 0-4")),
	)
}

func passTool() mcp.Tool {
	return mcp.NewTool("pass",
		mcp.WithDescription("Skip your placement when none is possible (board full or empty hand). Use this when your_move is true and can_place is false."),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current match state and any events since the last call without making a move. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil && !activeSession.match.Over() {
		return mcp.NewToolResultError("A game is already running. Only one game at a time is supported."), nil
	}

	difficulty, err := game.ParseDifficulty(request.GetString("difficulty", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	seed := int64(request.GetInt("seed", 0))
	name := request.GetString("name", "")

	sess, err := NewGameSession(difficulty, seed, name, rulesFile, contentFile)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	activeSession = sess

	return mcp.NewToolResultText(respondJSON(sess.response())), nil
}

func handlePlaceCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := pendingSession()
	if errResult != nil {
		return errResult, nil
	}
	if !sess.match.HumanCanMove() {
		return mcp.NewToolResultError("No placement is possible this round. Use pass."), nil
	}

	cardNum := request.GetInt("card", 0)
	row := request.GetInt("row", -1)
	col := request.GetInt("col", -1)
	if err := sess.place(cardNum, row, col); err != nil {
		return mcp.NewToolResultErrorf("Invalid move: %v", err), nil
	}

	return mcp.NewToolResultText(respondJSON(sess.response())), nil
}

func handlePass(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := pendingSession()
	if errResult != nil {
		return errResult, nil
	}
	if err := sess.pass(); err != nil {
		return mcp.NewToolResultErrorf("Cannot pass: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.response())), nil
}

func handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(respondJSON(activeSession.response())), nil
}

// pendingSession returns the active session if it is waiting for a move.
func pendingSession() (*GameSession, *mcp.CallToolResult) {
	if activeSession == nil {
		return nil, mcp.NewToolResultError("No game is running. Use start_game first.")
	}
	if activeSession.match.Over() {
		return nil, mcp.NewToolResultError("The game is over. Use start_game to play again.")
	}
	if !activeSession.match.NeedsHumanMove() {
		return nil, mcp.NewToolResultError("No pending decision.")
	}
	return activeSession, nil
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager - loads, plays and stores games. Moves and deletes are serialized so a game is never
// played concurrently or written back after it was deleted.
type GameManager struct {
	logger    *slog.Logger
	gameRepo  gameRepo
	boardSize int

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, boardSize int) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:  gameRepo,
		boardSize: boardSize,
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	board, err := tictactoe.NewBoard(that.boardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	game := entity.NewGame(uuid.NewString(), tictactoe.NewGame(board))

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "size", game.Size)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// Play - applies a move to the stored game. A rejected move leaves the stored game untouched.
func (that *GameManager) Play(ctx context.Context, id, symbol string, x, y int) (*entity.Game, tictactoe.Outcome, error) {
	log := that.logger.With("method", "Play", "gameID", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, tictactoe.Outcome{}, fmt.Errorf("failed to get game: %w", err)
	}

	engineGame, err := game.Restore()
	if err != nil {
		return nil, tictactoe.Outcome{}, fmt.Errorf("failed to restore game: %w", err)
	}

	outcome, err := engineGame.Play(symbol, x, y)
	if err != nil {
		log.Debug("move rejected", "symbol", symbol, "x", x, "y", y, "error", err)

		return game, outcome, fmt.Errorf("failed to make turn: %w", err)
	}

	game.Update(engineGame)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, tictactoe.Outcome{}, fmt.Errorf("failed to update game: %w", err)
	}

	if outcome.IsFinished() {
		log.Info("game finished", "status", outcome.Status, "winner", outcome.Winner.String())
	}

	return game, outcome, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

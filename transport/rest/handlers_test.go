package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type mockGameUseCase struct {
	mock.Mock
}

func (that *mockGameUseCase) CreateGame(ctx context.Context) (*entity.Game, error) {
	args := that.Called(ctx)

	game, _ := args.Get(0).(*entity.Game)

	return game, args.Error(1)
}

func (that *mockGameUseCase) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)

	game, _ := args.Get(0).(*entity.Game)

	return game, args.Error(1)
}

func (that *mockGameUseCase) Play(ctx context.Context, id, symbol string, x, y int) (*entity.Game, tictactoe.Outcome, error) {
	args := that.Called(ctx, id, symbol, x, y)

	game, _ := args.Get(0).(*entity.Game)
	outcome, _ := args.Get(1).(tictactoe.Outcome)

	return game, outcome, args.Error(2)
}

func (that *mockGameUseCase) DeleteGame(ctx context.Context, id string) error {
	args := that.Called(ctx, id)

	return args.Error(0)
}

func newTestServer(t *testing.T) (*httptest.Server, *mockGameUseCase) {
	t.Helper()

	uGame := &mockGameUseCase{}
	t.Cleanup(func() {
		uGame.AssertExpectations(t)
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httptest.NewServer(New(logger, uGame).Handler())
	t.Cleanup(server.Close)

	return server, uGame
}

func doRequest(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, payload
}

func testGame() *entity.Game {
	return entity.NewGame("game-1", tictactoe.NewGame(nil))
}

func TestPing(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := doRequest(t, http.MethodGet, server.URL+"/ping", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestHandleCreateGame(t *testing.T) {
	// Given: a use case that creates a game
	server, uGame := newTestServer(t)
	uGame.On("CreateGame", mock.Anything).Return(testGame(), nil).Once()

	// When: POST /games
	resp, body := doRequest(t, http.MethodPost, server.URL+"/games", "")

	// Then: the new game is returned with 201
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var game entity.Game
	require.NoError(t, json.Unmarshal(body, &game))
	assert.Equal(t, "game-1", game.ID)
	assert.Equal(t, "X", game.Turn)
	assert.Len(t, game.Board, 9)
}

func TestHandleGetGame(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		server, uGame := newTestServer(t)
		uGame.On("GetGame", mock.Anything, "game-1").Return(testGame(), nil).Once()

		resp, _ := doRequest(t, http.MethodGet, server.URL+"/games/game-1", "")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Not found", func(t *testing.T) {
		server, uGame := newTestServer(t)
		uGame.On("GetGame", mock.Anything, "missing").Return(nil, apperror.ErrGameNotFound).Once()

		resp, body := doRequest(t, http.MethodGet, server.URL+"/games/missing", "")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, string(body), "game not found")
	})
}

func TestHandleDeleteGame(t *testing.T) {
	server, uGame := newTestServer(t)
	uGame.On("DeleteGame", mock.Anything, "game-1").Return(nil).Once()

	resp, _ := doRequest(t, http.MethodDelete, server.URL+"/games/game-1", "")

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandlePlay(t *testing.T) {
	t.Run("Valid move", func(t *testing.T) {
		// Given: a use case accepting X at (1, 2)
		server, uGame := newTestServer(t)
		uGame.On("Play", mock.Anything, "game-1", "X", 1, 2).
			Return(testGame(), tictactoe.Outcome{Status: tictactoe.StatusOngoing}, nil).
			Once()

		// When: posting the move
		resp, body := doRequest(t, http.MethodPost, server.URL+"/games/game-1/moves", `{"symbol":"X","x":1,"y":2}`)

		// Then: the result message is returned
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var response moveResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, "Next players turn", response.Result)
		assert.Equal(t, "game-1", response.Game.ID)
	})

	t.Run("Winning move", func(t *testing.T) {
		server, uGame := newTestServer(t)
		uGame.On("Play", mock.Anything, "game-1", "O", 0, 0).
			Return(testGame(), tictactoe.Outcome{Status: tictactoe.StatusWon, Winner: tictactoe.O}, nil).
			Once()

		resp, body := doRequest(t, http.MethodPost, server.URL+"/games/game-1/moves", `{"symbol":"O","x":0,"y":0}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "O is the winner!")
	})

	t.Run("Malformed body", func(t *testing.T) {
		server, _ := newTestServer(t)

		for _, body := range []string{`{"symbol":`, `{"symbol":"X","x":1}`} {
			resp, _ := doRequest(t, http.MethodPost, server.URL+"/games/game-1/moves", body)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		}
	})

	t.Run("Oversized body", func(t *testing.T) {
		// Given: a move padded past the body limit
		server, _ := newTestServer(t)
		body := `{"symbol":"X","x":0,"y":0,"note":"` + strings.Repeat("a", 2*maxMoveBodyBytes) + `"}`

		// When: posting the move
		resp, _ := doRequest(t, http.MethodPost, server.URL+"/games/game-1/moves", body)

		// Then: it is rejected before reaching the use case
		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	})

	t.Run("Rule violations", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
		}{
			{tictactoe.ErrInvalidSymbol, http.StatusBadRequest},
			{tictactoe.ErrOutOfBounds, http.StatusBadRequest},
			{apperror.ErrNotYourTurn, http.StatusConflict},
			{apperror.ErrCellOccupied, http.StatusConflict},
			{apperror.ErrGameFinished, http.StatusConflict},
			{apperror.ErrGameNotFound, http.StatusNotFound},
			{errors.New("redis down"), http.StatusInternalServerError},
		}

		for _, tc := range cases {
			// Given: a use case rejecting the move
			server, uGame := newTestServer(t)
			uGame.On("Play", mock.Anything, "game-1", "X", 0, 0).
				Return(nil, tictactoe.Outcome{}, tc.err).
				Once()

			// When: posting the move
			resp, body := doRequest(t, http.MethodPost, server.URL+"/games/game-1/moves", `{"symbol":"X","x":0,"y":0}`)

			// Then: the error is mapped to its status
			assert.Equal(t, tc.status, resp.StatusCode, tc.err.Error())

			var response errorResponse
			require.NoError(t, json.Unmarshal(body, &response))
			assert.NotEmpty(t, response.Error)
		}
	})
}

package console

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/rocketscienceinc/connect-n/internal/apperror"
	"github.com/rocketscienceinc/connect-n/internal/entity"
	"github.com/rocketscienceinc/connect-n/internal/game"
	"github.com/rocketscienceinc/connect-n/internal/usecase"
	"github.com/rocketscienceinc/connect-n/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGameManager struct {
	mock.Mock
}

func (that *mockGameManager) NewGame(ctx context.Context) (*game.Game, error) {
	args := that.Called(ctx)

	gameInstance, _ := args.Get(0).(*game.Game)

	return gameInstance, args.Error(1)
}

func (that *mockGameManager) MakeTurn(ctx context.Context, gameInstance *game.Game, player entity.PlayerID, column int) error {
	return that.Called(ctx, gameInstance, player, column).Error(0)
}

func newConsole(st *suite.Suite, settings game.Settings, input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	manager := usecase.NewGameManager(st.Logger, settings)

	return New(st.Logger, manager, strings.NewReader(input), out), out
}

func TestConsole_ChooseColumn(t *testing.T) {
	tests := []struct {
		input  string
		column int
	}{
		{"1", 0},
		{"dummy\n2", 1},
		{"-1\n3", 2},
		{"8\n 7 \n", 6},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			// Given: a console reading the input
			_, st := suite.New(t)
			console, _ := newConsole(st, st.Settings, tt.input)

			// When: player 1 chooses a column
			column, err := console.ChooseColumn(1, st.Settings.Columns)

			// Then: the first valid answer is returned 0-indexed
			require.NoError(t, err)
			assert.Equal(t, tt.column, column)
		})
	}

	t.Run("Invalid answers are explained", func(t *testing.T) {
		// Given: a console with two bad answers before a good one
		_, st := suite.New(t)
		console, out := newConsole(st, st.Settings, "dummy\n0\n4\n")

		// When: player 2 chooses a column
		column, err := console.ChooseColumn(2, st.Settings.Columns)

		// Then: each problem is printed before asking again
		require.NoError(t, err)
		assert.Equal(t, 3, column)
		assert.Contains(t, out.String(), "Choose column for Player 2 between 1 and 7 >")
		assert.Contains(t, out.String(), "'dummy' isn't an integer number\n")
		assert.Contains(t, out.String(), "0 isn't a number in the range 1-7\n")
	})

	t.Run("Input closed", func(t *testing.T) {
		// Given: a console without input
		_, st := suite.New(t)
		console, _ := newConsole(st, st.Settings, "")

		// When: player 1 chooses a column
		_, err := console.ChooseColumn(1, st.Settings.Columns)

		// Then: ErrInputClosed is returned
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestConsole_Play(t *testing.T) {
	t.Run("Player 1 wins", func(t *testing.T) {
		// Given: players alternating between columns 1 and 2
		ctx, st := suite.New(t)
		console, out := newConsole(st, st.Settings, strings.Repeat("1\n2\n", 4))

		// When: the game is played
		outcome, err := console.Play(ctx)

		// Then: player 1 wins with column 1
		require.NoError(t, err)
		assert.Equal(t, Outcome{Winner: 1}, outcome)
		assert.Equal(t, 1, outcome.Code())
		assert.True(t, strings.HasSuffix(out.String(), "Player 1 won!\n"))
	})

	t.Run("Full column asks the same player again", func(t *testing.T) {
		// Given: column 1 is filled up, then columns 2 and 3 alternate
		ctx, st := suite.New(t)
		console, out := newConsole(st, st.Settings, strings.Repeat("1\n", 7)+strings.Repeat("2\n3\n", 4))

		// When: the game is played
		outcome, err := console.Play(ctx)

		// Then: the full column is reported and player 1 still wins
		require.NoError(t, err)
		assert.Equal(t, 1, outcome.Code())
		assert.Contains(t, out.String(), "Column 1 is already full, please choose another one\n")
		assert.True(t, strings.HasSuffix(out.String(), "Player 1 won!\n"))
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: four players filling every column in order
		ctx, st := suite.New(t)
		settings := st.Settings
		settings.Players = 4

		var input strings.Builder
		for column := 1; column <= settings.Columns; column++ {
			input.WriteString(strings.Repeat(strconv.Itoa(column)+"\n", settings.Rows))
		}
		input.WriteString("1\n")

		console, out := newConsole(st, settings, input.String())

		// When: the game is played
		outcome, err := console.Play(ctx)

		// Then: nobody wins
		require.NoError(t, err)
		assert.True(t, outcome.Draw)
		assert.Equal(t, DrawCode, outcome.Code())
		assert.True(t, strings.HasSuffix(out.String(), "Draw!\n"))
	})

	t.Run("Input runs out", func(t *testing.T) {
		// Given: no input at all
		ctx, st := suite.New(t)
		console, _ := newConsole(st, st.Settings, "")

		// When: the game is played
		_, err := console.Play(ctx)

		// Then: ErrInputClosed is returned
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Game cannot be created", func(t *testing.T) {
		// Given: a manager that fails to create games
		ctx, st := suite.New(t)
		manager := &mockGameManager{}
		manager.On("NewGame", ctx).Return(nil, apperror.ErrInvalidConfiguration).Once()

		console := New(st.Logger, manager, strings.NewReader("1\n"), &bytes.Buffer{})

		// When: the game is played
		_, err := console.Play(ctx)

		// Then: the error is returned
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
		manager.AssertExpectations(t)
	})

	t.Run("Turn failure stops the game", func(t *testing.T) {
		// Given: a manager whose turns fail
		ctx, st := suite.New(t)
		gameInstance, err := game.NewGame("g1", st.Settings)
		require.NoError(t, err)

		failure := errors.New("storage is gone")
		manager := &mockGameManager{}
		manager.On("NewGame", ctx).Return(gameInstance, nil).Once()
		manager.On("MakeTurn", ctx, gameInstance, entity.PlayerID(1), 0).Return(failure).Once()

		console := New(st.Logger, manager, strings.NewReader("1\n"), &bytes.Buffer{})

		// When: the game is played
		_, err = console.Play(ctx)

		// Then: the failure is returned
		require.ErrorIs(t, err, failure)
		manager.AssertExpectations(t)
	})
}

package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/mobinyousefi-cs/dice-roller/internal/dice"
	"github.com/mobinyousefi-cs/dice-roller/internal/services/roll"
	rollMocks "github.com/mobinyousefi-cs/dice-roller/internal/services/roll/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CLIHandlerTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockRollService *rollMocks.MockService
	buf             *bytes.Buffer
	handler         *Handler
	ctx             context.Context

	testTime time.Time
}

func (s *CLIHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRollService = rollMocks.NewMockService(s.mockCtrl)
	s.buf = &bytes.Buffer{}
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 10, 2, 12, 0, 0, 0, time.UTC)

	handler, err := New(&Config{
		RollService: s.mockRollService,
		Output:      s.buf,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *CLIHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCLIHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CLIHandlerTestSuite))
}

func (s *CLIHandlerTestSuite) TestNewValidatesConfig() {
	handler, err := New(nil)
	s.Nil(handler)
	s.ErrorIs(err, ErrNilConfig)

	handler, err = New(&Config{Output: s.buf})
	s.Nil(handler)
	s.ErrorIs(err, ErrNilRollService)

	handler, err = New(&Config{RollService: s.mockRollService})
	s.Nil(handler)
	s.ErrorIs(err, ErrNilOutput)
}

func (s *CLIHandlerTestSuite) TestRunSingleDie() {
	s.mockRollService.EXPECT().
		PerformRoll(s.ctx, &roll.PerformRollInput{Times: 1}).
		Return(&roll.PerformRollOutput{
			RollID:   "test-roll-id",
			Values:   []int{4},
			Faces:    []string{"⚃"},
			Sum:      4,
			RolledAt: s.testTime,
		}, nil)

	err := s.handler.Run(s.ctx, &RunInput{Num: 1})
	s.Require().NoError(err)

	s.Equal("4\n", s.buf.String())
}

func (s *CLIHandlerTestSuite) TestRunMultipleDice() {
	s.mockRollService.EXPECT().
		PerformRoll(s.ctx, &roll.PerformRollInput{Times: 3}).
		Return(&roll.PerformRollOutput{
			RollID:   "test-roll-id",
			Values:   []int{3, 5, 2},
			Faces:    []string{"⚂", "⚄", "⚁"},
			Sum:      10,
			RolledAt: s.testTime,
		}, nil)

	err := s.handler.Run(s.ctx, &RunInput{Num: 3})
	s.Require().NoError(err)

	s.Equal("[3, 5, 2]\n", s.buf.String())
}

func (s *CLIHandlerTestSuite) TestRunSumMode() {
	s.mockRollService.EXPECT().
		PerformRoll(s.ctx, &roll.PerformRollInput{Times: 3, SumMode: true}).
		Return(&roll.PerformRollOutput{
			RollID:   "test-roll-id",
			Values:   []int{3, 5, 2},
			Faces:    []string{"⚂", "⚄", "⚁"},
			Sum:      10,
			SumMode:  true,
			RolledAt: s.testTime,
		}, nil)

	err := s.handler.Run(s.ctx, &RunInput{Num: 3, SumMode: true})
	s.Require().NoError(err)

	s.Equal("Results: [3, 5, 2]  -> Sum = 10\n", s.buf.String())
}

func (s *CLIHandlerTestSuite) TestRunSumModeIgnoredForSingleDie() {
	s.mockRollService.EXPECT().
		PerformRoll(s.ctx, &roll.PerformRollInput{Times: 1, SumMode: true}).
		Return(&roll.PerformRollOutput{
			RollID:   "test-roll-id",
			Values:   []int{6},
			Faces:    []string{"⚅"},
			Sum:      6,
			SumMode:  true,
			RolledAt: s.testTime,
		}, nil)

	err := s.handler.Run(s.ctx, &RunInput{Num: 1, SumMode: true})
	s.Require().NoError(err)

	s.Equal("6\n", s.buf.String())
}

func (s *CLIHandlerTestSuite) TestRunPropagatesServiceErrors() {
	s.mockRollService.EXPECT().
		PerformRoll(s.ctx, &roll.PerformRollInput{Times: 0}).
		Return(nil, dice.ErrInvalidTimes)

	err := s.handler.Run(s.ctx, &RunInput{Num: 0})
	s.ErrorIs(err, dice.ErrInvalidTimes)
	s.Empty(s.buf.String())
}

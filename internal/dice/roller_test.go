package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RollerTestSuite struct {
	suite.Suite
}

func TestRollerTestSuite(t *testing.T) {
	suite.Run(t, new(RollerTestSuite))
}

func (s *RollerTestSuite) seededRoller(seed int64) *roller {
	return New(&Config{Seed: seed, Seeded: true})
}

func (s *RollerTestSuite) TestNewDefaults() {
	r := New(nil)

	s.NotNil(r.Die())
	s.Equal(6, r.Die().Sides())
}

func (s *RollerTestSuite) TestRollDeterministicWithSeed() {
	r1 := s.seededRoller(42)
	r2 := s.seededRoller(42)

	v1, err := r1.Roll(5)
	s.Require().NoError(err)
	v2, err := r2.Roll(5)
	s.Require().NoError(err)

	s.Len(v1, 5)
	s.Equal(v1, v2)
}

func (s *RollerTestSuite) TestRollSeedZeroIsDeterministic() {
	r1 := s.seededRoller(0)
	r2 := s.seededRoller(0)

	v1, err := r1.Roll(3)
	s.Require().NoError(err)
	v2, err := r2.Roll(3)
	s.Require().NoError(err)

	s.Equal(v1, v2)
}

func (s *RollerTestSuite) TestRollValuesInRange() {
	r := s.seededRoller(42)

	values, err := r.Roll(100)
	s.Require().NoError(err)

	for _, v := range values {
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, 6)
	}
}

func (s *RollerTestSuite) TestRollMatchesRawGenerator() {
	r := s.seededRoller(1)

	// Derive the expectation from a parallel generator with the same seed
	expected := rand.New(rand.NewSource(1))

	values, err := r.Roll(10)
	s.Require().NoError(err)

	for _, v := range values {
		s.Equal(expected.Intn(6)+1, v)
	}
}

func (s *RollerTestSuite) TestRollRejectsInvalidTimes() {
	r := s.seededRoller(42)

	for _, times := range []int{0, -1, -100} {
		values, err := r.Roll(times)
		s.Nil(values)
		s.ErrorIs(err, ErrInvalidTimes)
	}
}

func (s *RollerTestSuite) TestRejectedRollLeavesGeneratorUntouched() {
	attempted := s.seededRoller(42)
	baseline := s.seededRoller(42)

	_, err := attempted.Roll(0)
	s.Require().ErrorIs(err, ErrInvalidTimes)

	after, err := attempted.Roll(5)
	s.Require().NoError(err)
	expected, err := baseline.Roll(5)
	s.Require().NoError(err)

	s.Equal(expected, after)
}

func (s *RollerTestSuite) TestRollSum() {
	r1 := s.seededRoller(7)
	r2 := s.seededRoller(7)

	values, err := r1.Roll(3)
	s.Require().NoError(err)

	sum, err := r2.RollSum(3)
	s.Require().NoError(err)

	expected := 0
	for _, v := range values {
		expected += v
	}
	s.Equal(expected, sum)
	s.GreaterOrEqual(sum, 3)
	s.LessOrEqual(sum, 18)
}

func (s *RollerTestSuite) TestRollSumRejectsInvalidTimes() {
	r := s.seededRoller(7)

	sum, err := r.RollSum(0)
	s.Zero(sum)
	s.ErrorIs(err, ErrInvalidTimes)
}

func (s *RollerTestSuite) TestRollSequence() {
	r1 := s.seededRoller(99)
	r2 := s.seededRoller(99)

	// Predict per-batch results by replaying the same draws
	single, err := r1.Roll(1)
	s.Require().NoError(err)
	pair, err := r1.RollSum(2)
	s.Require().NoError(err)
	triple, err := r1.RollSum(3)
	s.Require().NoError(err)

	results, err := r2.RollSequence([]int{1, 2, 3})
	s.Require().NoError(err)

	s.Equal([]int{single[0], pair, triple}, results)
}

func (s *RollerTestSuite) TestRollSequenceBatchOrderAffectsDraws() {
	forward := s.seededRoller(5)
	reversed := s.seededRoller(5)

	fwd, err := forward.RollSequence([]int{1, 3})
	s.Require().NoError(err)
	rev, err := reversed.RollSequence([]int{3, 1})
	s.Require().NoError(err)

	// Same total draw count, different batch boundaries
	s.Len(fwd, 2)
	s.Len(rev, 2)
	s.Equal(fwd[0]+fwd[1], rev[0]+rev[1])
}

func (s *RollerTestSuite) TestRollSequenceRejectsInvalidCountBeforeDrawing() {
	attempted := s.seededRoller(42)
	baseline := s.seededRoller(42)

	results, err := attempted.RollSequence([]int{2, 0, 3})
	s.Nil(results)
	s.Require().ErrorIs(err, ErrInvalidTimes)

	// The failed call must not have consumed any draws
	after, err := attempted.Roll(4)
	s.Require().NoError(err)
	expected, err := baseline.Roll(4)
	s.Require().NoError(err)

	s.Equal(expected, after)
}

func (s *RollerTestSuite) TestCustomDie() {
	die, err := NewDie(&DieConfig{
		Sides:  4,
		Values: []int{10, 20, 30, 40},
	})
	s.Require().NoError(err)

	r := New(&Config{Die: die, Seed: 3, Seeded: true})

	values, err := r.Roll(50)
	s.Require().NoError(err)

	for _, v := range values {
		s.Contains([]int{10, 20, 30, 40}, v)
	}
}

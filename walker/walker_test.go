package walker_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aoc2023/walker"
)

func load(t *testing.T, name string) (walker.Instructions, *walker.Network) {
	t.Helper()
	raw, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	in, net, err := walker.Parse(strings.Split(strings.TrimRight(string(raw), "\n"), "\n"))
	require.NoError(t, err)

	return in, net
}

func mustNetwork(t *testing.T, nodes ...walker.Node) *walker.Network {
	t.Helper()
	net, err := walker.NewNetwork(nodes)
	require.NoError(t, err)

	return net
}

// WalkSuite exercises single and synchronized walks on the puzzle examples.
type WalkSuite struct {
	suite.Suite
}

// TestSingleStart covers both documented AAA→ZZZ examples.
func (s *WalkSuite) TestSingleStart() {
	in, net := load(s.T(), "example1.txt")
	steps, err := walker.StepsToTerminal(net, "AAA", in, walker.Equals("ZZZ"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), steps)

	in, net = load(s.T(), "example2.txt")
	steps, err = walker.StepsToTerminal(net, "AAA", in, walker.Equals("ZZZ"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(6), steps)
}

// TestRepeatable re-runs the same walk on the unmodified network.
func (s *WalkSuite) TestRepeatable() {
	in, net := load(s.T(), "example2.txt")
	for i := 0; i < 5; i++ {
		steps, err := walker.StepsToTerminal(net, "AAA", in, walker.Equals("ZZZ"))
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(6), steps)
	}
}

// TestStartIsTerminal returns zero for a self-referencing terminal node.
func (s *WalkSuite) TestStartIsTerminal() {
	in, net := load(s.T(), "example2.txt")
	steps, err := walker.StepsToTerminal(net, "ZZZ", in, walker.Equals("ZZZ"))
	require.NoError(s.T(), err)
	require.Zero(s.T(), steps)
}

// TestSynchronized folds per-walk counts 2 and 3 into 6.
func (s *WalkSuite) TestSynchronized() {
	in, net := load(s.T(), "ghosts.txt")
	require.Equal(s.T(), []string{"11A", "22A"}, net.StartNodes(walker.HasSuffix("A")))

	walks, err := walker.WalkAll(net, []string{"11A", "22A"}, in, walker.HasSuffix("Z"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []walker.Walk{
		{Start: "11A", End: "11Z", Steps: 2},
		{Start: "22A", End: "22Z", Steps: 3},
	}, walks)

	steps, err := walker.SynchronizedSteps(net, in, walker.HasSuffix("A"), walker.HasSuffix("Z"),
		walker.WithWorkers(1), walker.WithPeriodCheck())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(6), steps)
}

func (s *WalkSuite) TestNoStartNodes() {
	in, net := load(s.T(), "ghosts.txt")
	_, err := walker.SynchronizedSteps(net, in, walker.HasSuffix("Q"), walker.HasSuffix("Z"))
	require.ErrorIs(s.T(), err, walker.ErrNoStartNodes)
}

// TestOnStepHook observes every move of the LLR walk.
func (s *WalkSuite) TestOnStepHook() {
	in, net := load(s.T(), "example2.txt")
	var path []string
	_, err := walker.StepsToTerminal(net, "AAA", in, walker.Equals("ZZZ"),
		walker.WithOnStep(func(_ string, _ int64, _, to string) { path = append(path, to) }))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"BBB", "AAA", "BBB", "AAA", "BBB", "ZZZ"}, path)
}

func TestWalkSuite(t *testing.T) {
	suite.Run(t, new(WalkSuite))
}

func TestInstructionsCycle(t *testing.T) {
	in, err := walker.ParseInstructions("LLRLR")
	require.NoError(t, err)
	k := int64(len(in))
	for n := int64(0); n < 3*k; n++ {
		assert.Equal(t, in.At(n), in.At(n+k), "n=%d", n)
	}
	assert.Equal(t, walker.Right, in.At(2))
	assert.Equal(t, walker.Left, in.At(5))
	assert.Equal(t, "LLRLR", in.String())
}

func TestParseInstructionsErrors(t *testing.T) {
	_, err := walker.ParseInstructions("   ")
	assert.ErrorIs(t, err, walker.ErrEmptyInstructions)
	_, err = walker.ParseInstructions("LRX")
	assert.ErrorIs(t, err, walker.ErrBadInstruction)
}

func TestParseNode(t *testing.T) {
	n, err := walker.ParseNode("AAA = (BBB, CCC)")
	require.NoError(t, err)
	assert.Equal(t, walker.Node{ID: "AAA", Left: "BBB", Right: "CCC"}, n)

	_, err = walker.ParseNode("AAA = BBB, CCC")
	assert.ErrorIs(t, err, walker.ErrMalformedNode)
}

func TestNetworkErrors(t *testing.T) {
	_, err := walker.NewNetwork([]walker.Node{{ID: "AAA", Left: "BBB", Right: "AAA"}})
	assert.ErrorIs(t, err, walker.ErrUnknownNode)

	_, err = walker.NewNetwork([]walker.Node{
		{ID: "AAA", Left: "AAA", Right: "AAA"},
		{ID: "AAA", Left: "AAA", Right: "AAA"},
	})
	assert.ErrorIs(t, err, walker.ErrDuplicateNode)

	_, _, err = walker.Parse([]string{"LR", "", "AAA = (BBB, AAA)"})
	assert.ErrorIs(t, err, walker.ErrUnknownNode)

	_, _, err = walker.Parse(nil)
	assert.ErrorIs(t, err, walker.ErrEmptyInstructions)
}

func TestWalkErrors(t *testing.T) {
	net := mustNetwork(t,
		walker.Node{ID: "A", Left: "B", Right: "B"},
		walker.Node{ID: "B", Left: "A", Right: "A"},
	)
	in, err := walker.ParseInstructions("L")
	require.NoError(t, err)

	_, err = walker.StepsToTerminal(net, "A", in, walker.Equals("Z"))
	assert.ErrorIs(t, err, walker.ErrNoTerminal, "derived guard stops a terminal-free cycle")

	_, err = walker.StepsToTerminal(net, "A", in, walker.Equals("B"), walker.WithMaxSteps(-1))
	assert.ErrorIs(t, err, walker.ErrOptionViolation)

	_, err = walker.StepsToTerminal(net, "missing", in, walker.Equals("B"))
	assert.ErrorIs(t, err, walker.ErrUnknownNode)

	_, err = walker.StepsToTerminal(net, "A", nil, walker.Equals("B"))
	assert.ErrorIs(t, err, walker.ErrEmptyInstructions)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = walker.StepsToTerminal(net, "A", in, walker.Equals("B"), walker.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestMaxStepsExplicit caps a reachable terminal below its distance.
func TestMaxStepsExplicit(t *testing.T) {
	in, net := load(t, "example2.txt")
	_, err := walker.StepsToTerminal(net, "AAA", in, walker.Equals("ZZZ"), walker.WithMaxSteps(5))
	assert.ErrorIs(t, err, walker.ErrNoTerminal)

	steps, err := walker.StepsToTerminal(net, "AAA", in, walker.Equals("ZZZ"), walker.WithMaxSteps(6))
	require.NoError(t, err)
	assert.Equal(t, int64(6), steps)
}

// TestPeriodCheck rejects a walk that leaves its terminal for good.
func TestPeriodCheck(t *testing.T) {
	net := mustNetwork(t,
		walker.Node{ID: "A", Left: "B", Right: "B"},
		walker.Node{ID: "B", Left: "Z", Right: "Z"},
		walker.Node{ID: "Z", Left: "C", Right: "C"},
		walker.Node{ID: "C", Left: "C", Right: "C"},
	)
	in, err := walker.ParseInstructions("L")
	require.NoError(t, err)

	steps, err := walker.StepsToTerminal(net, "A", in, walker.Equals("Z"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), steps)

	_, err = walker.StepsToTerminal(net, "A", in, walker.Equals("Z"), walker.WithPeriodCheck())
	assert.ErrorIs(t, err, walker.ErrNotPeriodic)
}

func TestLCM(t *testing.T) {
	assert.Equal(t, int64(6), walker.LCM(2, 3))
	assert.Equal(t, int64(12), walker.LCM(4, 6))
	assert.Equal(t, int64(0), walker.LCM(0, 5))
	assert.Equal(t, int64(6), walker.LCM(-2, 3))
	assert.Equal(t, int64(1), walker.LCMAll())
	assert.Equal(t, int64(7), walker.LCMAll(7))
	assert.Equal(t, int64(4), walker.GCD(12, -8))
	assert.Equal(t, int64(0), walker.GCD(0, 0))

	// associativity and commutativity over a small grid
	vals := []int64{1, 2, 3, 4, 6, 9, 10, 15, 21277, 13201}
	for _, a := range vals {
		for _, b := range vals {
			assert.Equal(t, walker.LCM(a, b), walker.LCM(b, a))
			for _, c := range vals {
				assert.Equal(t, walker.LCM(walker.LCM(a, b), c), walker.LCM(a, walker.LCM(b, c)))
			}
		}
	}
	assert.Equal(t, walker.LCMAll(2, 3, 4), walker.LCMAll(4, 3, 2))
}

package generate

import (
	"math/rand"
	"testing"

	"emoji-caverns/internal/gamemap"
	"github.com/stretchr/testify/suite"
)

type ConnectSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *ConnectSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(99))
}

func TestConnectSuite(t *testing.T) {
	suite.Run(t, new(ConnectSuite))
}

// islands returns a map with n isolated single floor cells along a diagonal.
func islands(n int) *gamemap.GameMap {
	gmap := gamemap.New(4*n+2, 4*n+2)
	for i := range n {
		gmap.Set(2+4*i, 2+4*i, gamemap.TileFloor)
	}
	return gmap
}

func (s *ConnectSuite) TestSingleRegionUntouched() {
	gmap := gamemap.New(10, 10)
	stampSquare(gmap, gamemap.Point{X: 4, Y: 4}, 3)
	before := gmap.Clone()
	s.Equal(1, ResolveConnectivity(gmap, s.rng, false))
	s.True(gmap.Equal(before))
}

func (s *ConnectSuite) TestEmptyMapUntouched() {
	gmap := gamemap.New(8, 8)
	s.Equal(0, ResolveConnectivity(gmap, s.rng, true))
	s.Equal(0, gmap.FloorCount())
}

func (s *ConnectSuite) TestChainMergeJoinsRegions() {
	for _, n := range []int{2, 3, 6} {
		gmap := islands(n)
		s.Equal(n, ResolveConnectivity(gmap, s.rng, false))
		s.True(gamemap.IsConnected(gmap), "%d islands", n)
	}
}

// The chain merge alone already joins every region, so verification is a
// no-op that draws nothing from the random source.
func (s *ConnectSuite) TestVerifyDoesNotChangeChainMergeResult() {
	plain := islands(5)
	verified := islands(5)
	rngA := rand.New(rand.NewSource(4))
	rngB := rand.New(rand.NewSource(4))

	ResolveConnectivity(plain, rngA, false)
	ResolveConnectivity(verified, rngB, true)

	s.True(plain.Equal(verified))
	s.Equal(rngA.Int63(), rngB.Int63())
	s.Equal(1, gamemap.LabelRegions(verified).Count())
}

func (s *ConnectSuite) TestBridgesStayOffBorder() {
	gmap := islands(4)
	ResolveConnectivity(gmap, s.rng, true)
	assertBorderIsWall(s.T(), gmap)
}

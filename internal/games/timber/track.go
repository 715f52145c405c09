package timber

// Obstacle is the hazard state of one track slot.
type Obstacle int

const (
	None        Obstacle = iota // bare trunk
	LeftBranch                  // branch on the left side
	RightBranch                 // branch on the right side
)

// obstacleKinds is the size of the Obstacle value space.
const obstacleKinds = 3

// String returns a human-readable name for the obstacle.
func (o Obstacle) String() string {
	switch o {
	case None:
		return "None"
	case LeftBranch:
		return "LeftBranch"
	case RightBranch:
		return "RightBranch"
	default:
		return "Unknown"
	}
}

// Rand is the source of randomness for track generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// GenerateTrack draws length obstacles independently and uniformly.
// A non-positive length yields an empty track.
func GenerateTrack(rng Rand, length int) []Obstacle {
	if length <= 0 {
		return []Obstacle{}
	}
	track := make([]Obstacle, length)
	for i := range track {
		track[i] = Obstacle(rng.Intn(obstacleKinds))
	}
	return track
}

package match

import "time"

//go:generate mockgen -destination=clockmocks_test.go -package=match_test github.com/jobwatch/jobwatch/match Clock
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() *RealClock { return &RealClock{} }

func (c *RealClock) Now() time.Time { return time.Now() }

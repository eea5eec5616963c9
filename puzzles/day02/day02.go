// Package day02 scores cube-drawing games.
package day02

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	Label1 = "The sum of the Game IDs of possible games"
	Label2 = "The sum of the power of minimal cube sets"
)

// ErrMalformedGame is returned for a line that is not "Game N: draws; ...".
var ErrMalformedGame = errors.New("day02: malformed game")

// Cubes counts cubes per colour.
type Cubes struct {
	Red, Green, Blue int64
}

// Bag is the part 1 load: 12 red, 13 green, 14 blue.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Within reports whether every colour of c fits in limit.
func (c Cubes) Within(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

// Power is red·green·blue.
func (c Cubes) Power() int64 { return c.Red * c.Green * c.Blue }

// Game is one input line; cubes go back into the bag after each round.
type Game struct {
	ID     int64
	Rounds []Cubes
}

// Possible reports whether every round could be drawn from bag.
func (g Game) Possible(bag Cubes) bool {
	for _, r := range g.Rounds {
		if !r.Within(bag) {
			return false
		}
	}

	return true
}

// Minimal is the smallest bag from which every round could be drawn.
func (g Game) Minimal() Cubes {
	var m Cubes
	for _, r := range g.Rounds {
		m.Red = max(m.Red, r.Red)
		m.Green = max(m.Green, r.Green)
		m.Blue = max(m.Blue, r.Blue)
	}

	return m
}

// ParseGame reads "Game 3: 8 green, 6 blue; 5 blue".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: %q", ErrMalformedGame, line)
	}
	idStr, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: %q", ErrMalformedGame, line)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
	if err != nil {
		return Game{}, fmt.Errorf("%w: id %q", ErrMalformedGame, idStr)
	}

	g := Game{ID: id}
	for _, round := range strings.Split(body, ";") {
		if strings.TrimSpace(round) == "" {
			continue
		}
		var c Cubes
		for _, draw := range strings.Split(round, ",") {
			f := strings.Fields(draw)
			if len(f) != 2 {
				return Game{}, fmt.Errorf("%w: draw %q", ErrMalformedGame, draw)
			}
			n, err := strconv.ParseInt(f[0], 10, 64)
			if err != nil || n < 0 {
				return Game{}, fmt.Errorf("%w: count %q", ErrMalformedGame, f[0])
			}
			switch f[1] {
			case "red":
				c.Red += n
			case "green":
				c.Green += n
			case "blue":
				c.Blue += n
			default:
				return Game{}, fmt.Errorf("%w: colour %q", ErrMalformedGame, f[1])
			}
		}
		g.Rounds = append(g.Rounds, c)
	}

	return g, nil
}

func solve(ctx context.Context, lines []string, score func(Game) int64) (int64, error) {
	var total int64
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += score(g)
	}

	return total, nil
}

// Part1 sums the ids of games possible with Bag.
func Part1(ctx context.Context, lines []string) (int64, error) {
	return solve(ctx, lines, func(g Game) int64 {
		if g.Possible(Bag) {
			return g.ID
		}
		return 0
	})
}

// Part2 sums the power of each game's minimal bag.
func Part2(ctx context.Context, lines []string) (int64, error) {
	return solve(ctx, lines, func(g Game) int64 { return g.Minimal().Power() })
}

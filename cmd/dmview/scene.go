package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/32bitkid/dm/dungeon"
	"github.com/pkg/errors"
)

// A scene is a map drawn in text, one character per square:
//
//	#  wall            .  corridor
//	A  wall with an alcove on every face
//	I  wall with an inscription on every face
//	D  door seen from the north and south, d  from the east and west
//	/  door half open, x  destroyed door
//	S  stairs down, U  stairs up
//	P  pit, T  teleporter
//	f  corridor with a floor ornament
//	o  corridor with objects
//	c  corridor with a creature
//	*  corridor with a fireball exploding
//	!  corridor with a fireball flying north
//	@  the party, facing north
//
// Anything outside the drawn lines is wall.
type scene struct {
	grid  *dungeon.Grid
	level dungeon.Level
	x, y  int
	dir   dungeon.Direction
}

const demoScene = `
##########
#A.o...I##
#.##D##..#
#f#...#c.#
#.P.c.T.!#
#.#.*.#..#
#.S.@.x.U#
#.d......#
##########
`

// Creature type used for 'c'. It has a front and a side sprite.
const sceneCreatureType = 2

const (
	sceneAlcove      = 1
	sceneInscription = 2
)

func parseScene(r io.Reader) (*scene, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if line := strings.TrimRight(s.Text(), " \t"); line != "" {
			lines = append(lines, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading scene")
	}
	if len(lines) == 0 {
		return nil, errors.New("empty scene")
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}

	sc := &scene{
		grid: dungeon.NewGrid(width, len(lines)),
		x:    -1,
		level: dungeon.Level{
			DoorSets:            [2]int{0, 1},
			WallOrnaments:       []int{1, 4},
			FloorOrnaments:      []int{2},
			CreatureTypes:       []int{sceneCreatureType},
			InscriptionOrnament: sceneInscription - 1,
		},
	}
	g := sc.grid
	g.Creatures[sceneCreatureType] = dungeon.CreatureInfo{Size: dungeon.SizeQuarter, Graphic: dungeon.GraphicSide}

	for y, line := range lines {
		for x := 0; x < width; x++ {
			ch := byte('#')
			if x < len(line) {
				ch = line[x]
			}
			if err := sc.put(x, y, ch); err != nil {
				return nil, errors.Wrapf(err, "line %d column %d", y+1, x+1)
			}
		}
	}
	if sc.x < 0 {
		return nil, errors.New("scene has no party '@'")
	}
	return sc, nil
}

func (sc *scene) put(x, y int, ch byte) error {
	g := sc.grid
	switch ch {
	case '#', ' ':
		g.Set(x, y, dungeon.Wall)
	case '.':
	case 'A', 'I':
		s := g.Set(x, y, dungeon.Wall)
		ornament := sceneAlcove
		if ch == 'I' {
			ornament = sceneInscription
			s.Inscription = g.AddText("HERE LIES", "THE DEMO")
		}
		s.WallOrnaments = [4]int{ornament, ornament, ornament, ornament}
	case 'D', 'd', '/', 'x':
		state := dungeon.DoorClosed
		switch ch {
		case '/':
			state = dungeon.DoorClosedHalf
		case 'x':
			state = dungeon.DoorDestroyed
		}
		g.AddDoor(x, y, dungeon.DoorInfo{Vertical: ch != 'd', Button: ch == 'D'}, state)
	case 'S', 'U':
		s := g.Set(x, y, dungeon.Stairs)
		s.AlongNorthSouth = true
		s.StairsUp = ch == 'U'
	case 'P':
		g.Set(x, y, dungeon.Pit)
	case 'T':
		g.Set(x, y, dungeon.Teleporter).TeleporterVisible = true
	case 'f':
		g.Square(x, y).FloorOrnament = 1
	case 'o':
		for cell, aspect := range []int{0, 5, 12} {
			g.AddObject(x, y, cell, aspect)
		}
	case 'c':
		g.AddGroup(x, y,
			dungeon.Group{Type: sceneCreatureType, Creatures: 2},
			dungeon.ActiveGroup{Cells: 0x4, Directions: 0x2},
		)
	case '*':
		g.AddExplosion(x, y, 0, dungeon.Explosion{Type: dungeon.ExplosionFireball, Attack: 120, Centered: true})
	case '!':
		g.AddProjectile(x, y, 1, dungeon.Projectile{
			Aspect:        dungeon.ProjectileAspect(0),
			KineticEnergy: 200,
			Direction:     dungeon.North,
		})
	case '@':
		sc.x, sc.y, sc.dir = x, y, dungeon.North
	default:
		return errors.Errorf("unknown square %q", ch)
	}
	return nil
}

// turn and step move the party the way the arrow keys of the viewer do.
func (sc *scene) turn(right bool) {
	if right {
		sc.dir = sc.dir.Right()
	} else {
		sc.dir = sc.dir.Left()
	}
}

func (sc *scene) step(forward, right int) bool {
	x, y := dungeon.Move(sc.dir, forward, right, sc.x, sc.y)
	s := sc.grid.Square(x, y)
	if s == nil {
		return false
	}
	switch s.Element {
	case dungeon.Wall, dungeon.Stairs:
		return false
	case dungeon.Door:
		if s.DoorState != dungeon.DoorOpen && s.DoorState != dungeon.DoorDestroyed {
			return false
		}
	}
	sc.x, sc.y = x, y
	return true
}

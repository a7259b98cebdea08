package game

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

//go:embed layouts/*.lay
var layoutFiles embed.FS

// Layout is the static part of a game: walls plus the initial food, capsules
// and agent positions.
type Layout struct {
	Width    int
	Height   int
	walls    []bool // indexed by y*Width + x
	Food     []Position
	Capsules []Position
	Starts   []Position // agent 0 first, then ghosts in reading order
}

// ParseLayout reads a layout drawn with '%' walls, '.' food, 'o' capsules,
// 'P' the controlled agent and 'G' ghosts. The first line is the northmost row.
func ParseLayout(text string) (*Layout, error) {
	lines := []string{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, errors.New("empty layout")
	}

	width := len(lines[0])
	height := len(lines)
	l := &Layout{
		Width:  width,
		Height: height,
		walls:  make([]bool, width*height),
	}

	var agent *Position
	ghosts := []Position{}
	for row, line := range lines {
		if len(line) != width {
			return nil, errors.Errorf("layout row %d has width %d, expected %d", row, len(line), width)
		}
		y := height - 1 - row
		for x, c := range line {
			p := Position{X: x, Y: y}
			switch c {
			case '%':
				l.walls[y*width+x] = true
			case '.':
				l.Food = append(l.Food, p)
			case 'o':
				l.Capsules = append(l.Capsules, p)
			case 'P':
				if agent != nil {
					return nil, errors.Errorf("layout has more than one controlled agent (row %d)", row)
				}
				agent = &p
			case 'G':
				ghosts = append(ghosts, p)
			case ' ':
			default:
				return nil, errors.Errorf("unknown layout symbol %q at row %d column %d", c, row, x)
			}
		}
	}
	if agent == nil {
		return nil, errors.New("layout has no controlled agent")
	}

	l.Starts = append([]Position{*agent}, ghosts...)
	return l, nil
}

// LoadLayout returns one of the embedded layouts by name, e.g. "smallClassic".
func LoadLayout(name string) (*Layout, error) {
	data, err := layoutFiles.ReadFile(path.Join("layouts", name+".lay"))
	if err != nil {
		return nil, errors.Wrapf(err, "unknown layout %q", name)
	}
	l, err := ParseLayout(string(data))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse layout %q", name)
	}
	return l, nil
}

// LayoutNames lists the embedded layouts.
func LayoutNames() []string {
	entries, err := layoutFiles.ReadDir("layouts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".lay"))
	}
	sort.Strings(names)
	return names
}

// IsWall reports whether p is a wall. Cells outside the layout count as walls.
func (l *Layout) IsWall(p Position) bool {
	if p.X < 0 || p.Y < 0 || p.X >= l.Width || p.Y >= l.Height {
		return true
	}
	return l.walls[p.Y*l.Width+p.X]
}

// NumGhosts returns the number of opponents.
func (l *Layout) NumGhosts() int {
	return len(l.Starts) - 1
}

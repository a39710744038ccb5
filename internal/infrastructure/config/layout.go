package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/menuengine/internal/domain/selector"
)

// SelectorGroup is the Tiled object group holding selector positions
const SelectorGroup = "Selector"

// ErrInvalidLayout is returned when a layout has no selector positions
var ErrInvalidLayout = errors.New("invalid layout")

// LoadLayout reads selector positions from a Tiled map. Objects of the
// "Selector" group are ordered by their "index" property, then by X.
func LoadLayout(fsys fs.FS, tmxPath string) ([]selector.Point, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	type indexed struct {
		index int
		point selector.Point
	}
	var found []indexed
	for _, og := range m.ObjectGroups {
		if og.Name != SelectorGroup {
			continue
		}
		for _, o := range og.Objects {
			found = append(found, indexed{
				index: o.Properties.GetInt("index"),
				point: selector.Point{X: o.X, Y: o.Y},
			})
		}
	}

	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s has no %q objects", ErrInvalidLayout, tmxPath, SelectorGroup)
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].index != found[j].index {
			return found[i].index < found[j].index
		}
		return found[i].point.X < found[j].point.X
	})

	points := make([]selector.Point, len(found))
	for i, f := range found {
		points[i] = f.point
	}
	return points, nil
}

// Locations returns the selector positions from menu.locations, or from
// menu.layout when set.
func (l *Loader) Locations(s *Settings) ([]selector.Point, error) {
	if s.Menu.Layout != "" {
		return LoadLayout(l.fsys, s.Menu.Layout)
	}
	points := make([]selector.Point, len(s.Menu.Locations))
	for i, loc := range s.Menu.Locations {
		if len(loc) != 2 {
			return nil, fmt.Errorf("%w: menu.locations[%d] needs [x, y]", ErrInvalidSettings, i)
		}
		points[i] = selector.Point{X: loc[0], Y: loc[1]}
	}
	return points, nil
}

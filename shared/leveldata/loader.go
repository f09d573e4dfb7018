package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	tileLayerName    = "wg-tiles"
	solidsGroupName  = "Solids"
	spawnGroupName   = "PlayerSpawn"
	ledgesGroupName  = "Ledges"
	platformsGroup   = "Platforms"
	floatProperty    = "float"
	surfaceProperty  = "surface"
	directionLeft    = "left"
	directionRight   = "right"
	directionDefault = directionLeft
)

// LoadCollisionData parses a TMX file and returns collision data (solids, spawn
// points, ledges and platforms). It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Parse solid tiles from wg-tiles layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != tileLayerName {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var surface string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					surface = tilesetTile.Properties.GetString(surfaceProperty)
				}

				data.SolidRects = append(data.SolidRects, SolidRect{
					X:       float64(x) * tileW,
					Y:       float64(y) * tileH,
					W:       tileW,
					H:       tileH,
					Surface: surface,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case solidsGroupName:
			for _, o := range og.Objects {
				data.SolidRects = append(data.SolidRects, SolidRect{
					X:       o.X,
					Y:       o.Y,
					W:       o.Width,
					H:       o.Height,
					Surface: o.Properties.GetString(surfaceProperty),
				})
			}
		case spawnGroupName:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case platformsGroup:
			for _, o := range og.Objects {
				data.Platforms = append(data.Platforms, PlatformSpec{
					X:        o.X,
					Y:        o.Y,
					W:        o.Width,
					H:        o.Height,
					Floating: o.Properties.GetBool(floatProperty),
				})
			}
		case ledgesGroupName:
			for _, o := range og.Objects {
				ledge, err := parseLedge(o)
				if err != nil {
					return nil, fmt.Errorf("%s: ledge %d: %w", tmxPath, o.ID, err)
				}
				data.Ledges = append(data.Ledges, ledge)
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

func parseLedge(o *tiled.Object) (LedgeSpec, error) {
	ledge := LedgeSpec{
		X:         o.X,
		Y:         o.Y,
		W:         o.Width,
		H:         o.Height,
		Direction: strings.ToLower(o.Properties.GetString("direction")),
	}
	if ledge.Direction == "" {
		ledge.Direction = directionDefault
	}
	if ledge.Direction != directionLeft && ledge.Direction != directionRight {
		return LedgeSpec{}, fmt.Errorf("unknown direction %q", ledge.Direction)
	}

	fields := []struct {
		name string
		dst  *float64
	}{
		{"hangOffsetX", &ledge.HangX},
		{"hangOffsetY", &ledge.HangY},
		{"climbOffsetX", &ledge.ClimbX},
		{"climbOffsetY", &ledge.ClimbY},
	}
	for _, f := range fields {
		raw := o.Properties.GetString(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return LedgeSpec{}, fmt.Errorf("property %s: %w", f.name, err)
		}
		*f.dst = v
	}
	return ledge, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}

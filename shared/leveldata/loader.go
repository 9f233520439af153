package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	tileLayerName     = "wg-tiles"
	platformLayerName = "Platforms"
	spawnLayerName    = "PlayerSpawn"
	hazardLayerName   = "Hazards"
	hazardKindProp    = "kind"
	passThroughProp   = "passthrough"
	spawnIndexProp    = "spawnIndex"
)

// LoadStage parses a TMX file and returns its platforms and spawn points. It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
//
// Rectangles in the "Hazards" object group become hazard drop zones; their
// "kind" property defaults to knives.
//
// Platforms come from two places: rectangle objects in the "Platforms" object
// group, and runs of tiles in the "wg-tiles" layer (adjacent tiles in a row
// are merged into one rect). Both honor a "passthrough" bool property.
func LoadStage(fsys fs.FS, tmxPath string) (*StageData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &StageData{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != tileLayerName {
			continue
		}
		data.Platforms = append(data.Platforms, tileRuns(levelMap, layer)...)
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case platformLayerName:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.Platforms = append(data.Platforms, PlatformRect{
					X:           o.X,
					Y:           o.Y,
					W:           o.Width,
					H:           o.Height,
					PassThrough: o.Properties.GetBool(passThroughProp),
				})
			}
		case spawnLayerName:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt(spawnIndexProp),
				})
			}
		case hazardLayerName:
			for _, o := range og.Objects {
				if o.Width <= 0 {
					continue
				}
				kind := o.Properties.GetString(hazardKindProp)
				if kind == "" {
					kind = HazardKnife
				}
				data.Hazards = append(data.Hazards, HazardZone{Kind: kind, X: o.X, Y: o.Y, W: o.Width})
			}
		}
	}

	// Explicit index first, left-to-right for ties
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		a, b := data.SpawnPoints[i], data.SpawnPoints[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	return data, nil
}

func tileRuns(levelMap *tiled.Map, layer *tiled.Layer) []PlatformRect {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	var rects []PlatformRect
	for y := 0; y < levelMap.Height; y++ {
		var run *PlatformRect
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				run = nil
				continue
			}

			passThrough := false
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				passThrough = tilesetTile.Properties.GetBool(passThroughProp)
			}

			if run != nil && run.PassThrough == passThrough {
				run.W += tileW
				continue
			}
			rects = append(rects, PlatformRect{
				X:           float64(x) * tileW,
				Y:           float64(y) * tileH,
				W:           tileW,
				H:           tileH,
				PassThrough: passThrough,
			})
			run = &rects[len(rects)-1]
		}
	}
	return rects
}

// LoadAllStages discovers all .tmx files in stagesDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllStages(fsys fs.FS, stagesDir string) (map[string]*StageData, []string, error) {
	pattern := stagesDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", stagesDir)
	}

	stages := make(map[string]*StageData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadStage(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stages[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return stages, names, nil
}

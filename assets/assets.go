package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/doomerang-abilities/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

// LoadLevel returns the collision data of the embedded level with the given
// name (the .tmx file stem).
func LoadLevel(name string) (*leveldata.CollisionData, error) {
	levels, names, err := leveldata.LoadAllLevels(assetFS, levelsDir)
	if err != nil {
		return nil, err
	}
	data, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("level %q not found, have %v", name, names)
	}
	return data, nil
}

// MustLoadLevel is LoadLevel for embedded levels known to exist.
func MustLoadLevel(name string) *leveldata.CollisionData {
	data, err := LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return data
}

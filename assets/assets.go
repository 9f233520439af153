package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/veggievengeance/shared/leveldata"
)

//go:embed all:stages
var stageFS embed.FS

// StagesDir is the directory inside StageFS holding the .tmx stages.
const StagesDir = "stages"

// StageFS exposes the embedded stage files.
func StageFS() fs.FS {
	return stageFS
}

// LoadStage loads a bundled stage by stem name ("kitchen").
func LoadStage(name string) (*leveldata.StageData, error) {
	data, err := leveldata.LoadStage(stageFS, StagesDir+"/"+name+".tmx")
	if err != nil {
		return nil, fmt.Errorf("assets: stage %q: %w", name, err)
	}
	return data, nil
}

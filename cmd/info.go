package cmd

import (
	"github.com/urfave/cli"
)

// SceneInfo prints statistics for the selected scene.
func SceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := sceneByName(ctx.String("scene"))
	if err != nil {
		return err
	}

	logger.Noticef("scene %q\n%s", ctx.String("scene"), sc.Stats())
	return nil
}

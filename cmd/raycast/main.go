package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/bytearena/planar/common/raycast"
	"github.com/bytearena/planar/common/scene"
	"github.com/bytearena/planar/common/utils"
	"github.com/bytearena/planar/common/utils/number"
	"github.com/davecgh/go-spew/spew"
	"github.com/ttacon/chalk"
)

func main() {
	scenepath := flag.String("scene", "", "JSON scene file; required")
	dump := flag.Bool("dump", false, "Dump every hit")

	flag.Parse()

	utils.Assert((*scenepath) != "", "scene must be set")

	s, err := scene.Load(*scenepath)
	if err != nil {
		utils.FailWith("Could not load scene", err, utils.Context{"scene": *scenepath})
		return
	}

	index, err := s.Index()
	if err != nil {
		utils.FailWith("Could not index the obstacles", err, utils.Context{"scene": *scenepath})
		return
	}

	utils.DebugWith("raycast", "Scene loaded", utils.Context{
		"scene":     *scenepath,
		"obstacles": index.Len(),
		"rays":      len(s.Rays),
		"margin":    s.GetMargin(),
	})

	begin := time.Now()
	results := index.CastMany(s.GetRays())
	utils.Debug("raycast", "Took "+number.FloatToStr(float64(time.Since(begin).Nanoseconds())/1000000.0, 3)+"ms")

	for _, result := range results {
		fmt.Println(formatResult(result))
	}

	if *dump {
		spew.Dump(results)
	}
}

func formatResult(result raycast.Result) string {
	if !result.Ok {
		return chalk.Red.Color(result.Ray.ID + ": no hit")
	}

	return chalk.Green.Color(
		result.Ray.ID + ": hits " + result.Hit.Obstacle.ID +
			" at " + result.Hit.Point.String() +
			", distance " + number.FloatToStr(result.Hit.Distance, 5),
	)
}

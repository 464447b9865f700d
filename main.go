package main

import (
	"github.com/alecthomas/kong"

	"github.com/lepinkainen/mediatidy/cmd"
	"github.com/lepinkainen/mediatidy/config"
	"github.com/lepinkainen/mediatidy/types"
)

// Version is set at build time via -ldflags
var Version = "dev"

type CLI struct {
	ConfigFile string           `name:"config" help:"Path to the config file" type:"path"`
	Version    kong.VersionFlag `help:"Print version and exit"`

	Rename  cmd.RenameCmd  `cmd:"" help:"Rename episodes in one directory after matching episodes in another"`
	Extract cmd.ExtractCmd `cmd:"" help:"Extract subtitle streams from video files into .srt files"`
	Combine cmd.CombineCmd `cmd:"" help:"Combine two .srt language tracks into a positioned .ass file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mediatidy"),
		kong.Description("Interactive housekeeping tools for video and subtitle files"),
		kong.Vars{"version": Version},
	)

	configPath := cli.ConfigFile
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	ctx.FatalIfErrorf(err)

	appCtx := &types.AppContext{
		Version: Version,
		Config:  cfg,
	}
	err = ctx.Run(appCtx)
	ctx.FatalIfErrorf(err)
}

package settings

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/config"
	"github.com/julianstephens/smokefree/internal/utils"
)

// ConfigShowCmd prints the effective configuration as TOML.
type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *cli.Context) error {
	ctx.Printf("# %s\n", utils.ExpandPath(ctx.ConfigPath))
	return toml.NewEncoder(ctx.Stdout()).Encode(ctx.Config)
}

// ConfigInitCmd writes a config file with the default values.
type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing config file."`
}

func (c *ConfigInitCmd) Run(ctx *cli.Context) error {
	path := utils.ExpandPath(ctx.ConfigPath)
	if _, err := os.Stat(path); err == nil && !c.Force {
		ctx.Printf("Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	ctx.Printf("✓ Wrote default config to %s\n", path)
	return nil
}

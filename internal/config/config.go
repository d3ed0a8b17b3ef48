package config

type Config struct {
	Trees  map[string]TreeConfig `yaml:"trees" toml:"trees"`
	UI     UIConfig              `yaml:"ui" toml:"ui"`
	Log    LogConfig             `yaml:"log" toml:"log"`
	Update UpdateConfig          `yaml:"update" toml:"update"`
}

// TreeConfig seeds a tree's starting flags. Nil fields keep the default.
type TreeConfig struct {
	VisibleOverride   *bool `yaml:"visible_override" toml:"visible_override"`
	ShowChildMessages *bool `yaml:"show_child_messages" toml:"show_child_messages"`
}

type UIConfig struct {
	LeafDisplay    string `yaml:"leaf_display" toml:"leaf_display"`
	OverrideTarget string `yaml:"override_target" toml:"override_target"`
	Mouse          *bool  `yaml:"mouse" toml:"mouse"`
}

type LogConfig struct {
	File  string `yaml:"file" toml:"file"`
	Level string `yaml:"level" toml:"level"`
}

type UpdateConfig struct {
	Repo string `yaml:"repo" toml:"repo"`
}

const (
	LeafDisplayPenguin = "penguin"
	LeafDisplayDefault = "default"
)

// MouseEnabled reports the effective mouse setting.
func (c *Config) MouseEnabled() bool {
	return c.UI.Mouse == nil || *c.UI.Mouse
}

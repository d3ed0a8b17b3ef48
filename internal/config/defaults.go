package config

func boolPtr(b bool) *bool { return &b }

func DefaultConfig() Config {
	return Config{
		Trees: map[string]TreeConfig{
			"tree1": {VisibleOverride: boolPtr(true), ShowChildMessages: boolPtr(true)},
			"tree2": {VisibleOverride: boolPtr(true), ShowChildMessages: boolPtr(true)},
		},
		UI: UIConfig{
			LeafDisplay: LeafDisplayPenguin,
			// The override control has always targeted tree2 from either tree.
			OverrideTarget: "tree2",
			Mouse:          boolPtr(true),
		},
		Log: LogConfig{
			File:  "treetop.log",
			Level: "info",
		},
		Update: UpdateConfig{
			Repo: "justinpbarnett/treetop",
		},
	}
}

package config

// PuzzlesConfig is the root of configs/puzzles.yaml
type PuzzlesConfig struct {
	Year         int            `yaml:"year"`
	Puzzles      []PuzzleEntry  `yaml:"puzzles"`
	CubeCapacity map[string]int `yaml:"cube_capacity"`
}

// PuzzleEntry registers one (day, part) solver
type PuzzleEntry struct {
	Day     int    `yaml:"day"`
	Part    int    `yaml:"part"`
	Enabled bool   `yaml:"enabled"`
	Input   string `yaml:"input,omitempty"`
}

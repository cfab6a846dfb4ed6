// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
	Batch string `flag:"batch" usage:"batch process files matching pattern (e.g. *.ch8)"`
}

// Flags contains behavior options.
type Flags struct {
	Preset   string `flag:"p" usage:"quirk preset: default, vip, chip48, schip (default: auto-detect)"`
	Cycles   uint64 `flag:"cycles" usage:"maximum number of instructions to execute" default:"100000"`
	Speed    int    `flag:"speed" usage:"instructions per second" default:"700"`
	Keys     string `flag:"keys" usage:"scripted key events, e.g. 5@100,5-@140"`
	Seed     uint64 `flag:"seed" usage:"seed of the random generator (0: random)"`
	Realtime bool   `flag:"realtime" usage:"sleep between frames to run at real speed"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction (requires -debug)"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output options.
type OutputFlags struct {
	NoScreen bool   `flag:"noscreen" usage:"do not print the final screen"`
	ASCII    bool   `flag:"ascii" usage:"print the screen using ASCII characters"`
	Verify   string `flag:"verify" usage:"expected CRC32 of the final screen as hex value"`
}

// Program options of the runner.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

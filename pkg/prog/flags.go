package prog

import "flag"

// FlagSet wraps a [flag.FlagSet] and provides methods to register flags shared
// by multiple programs.
type FlagSet struct {
	*flag.FlagSet
	paths *Paths
	json  *bool
}

// Paths keeps the paths given on the command line. Empty strings mean that
// the path was not given.
type Paths struct {
	// File to write debug log to.
	Log string
	// Configuration file.
	Config string
	// Database file.
	DB string
	// Directory to load textures from.
	TextureDir string
}

// Paths returns the paths registered on fs, registering them if this is the
// first call.
func (fs *FlagSet) Paths() *Paths {
	if fs.paths == nil {
		var p Paths
		fs.StringVar(&p.Log, "log", "", "a file to write debug log to")
		fs.StringVar(&p.Config, "config", "",
			"path to the configuration file; defaults to $TVK_CONFIG")
		fs.StringVar(&p.DB, "db", "", "path to the database")
		fs.StringVar(&p.TextureDir, "texture-dir", "",
			"directory to load textures from; defaults to the directory of the source")
		fs.paths = &p
	}
	return fs.paths
}

// JSON returns a pointer to the value of the -json flag, registering it if
// this is the first call.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"show the output from -buildinfo or -version in JSON")
		fs.json = &json
	}
	return fs.json
}

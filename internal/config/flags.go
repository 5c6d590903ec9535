package config

import (
	"flag"
	"os"

	"github.com/avetrov/profilekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the SQLite database file
//	-a string   directory for imported avatar images
//
// The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the SQLite database file")
	fs.StringVar(&cfg.AvatarDir, "a", cfg.AvatarDir, "directory for imported avatar images")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

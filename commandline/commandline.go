// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"strings"
)

var (
	asJSON   bool
	validate bool
	verbose  bool
	textures bool

	workers int

	configFile string
	textureDir string

	archives stringList
)

// stringList collects repeated string flags. Commas also separate values.
type stringList []string

func (l *stringList) Set(s string) error {
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*l = append(*l, v)
		}
	}
	return nil
}

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func register(fs *flag.FlagSet) {
	fs.BoolVar(&asJSON, "json", false, "print reports as JSON")
	fs.BoolVar(&validate, "validate", false, "run the consistency checks on every decoded model")
	fs.BoolVar(&verbose, "v", false, "print info level diagnostics")
	fs.BoolVar(&textures, "textures", false, "resolve the textures referenced by meshes")

	fs.IntVar(&workers, "workers", 0, "number of concurrent decoders, 0 is one per CPU")

	fs.StringVar(&configFile, "config", "", "JSON configuration file")
	fs.StringVar(&textureDir, "texturedir", "", "directory searched for textures in addition to the archives")

	fs.Var(&archives, "archive", "BIG archive or directory to mount, may be repeated")
}

func init() {
	register(flag.CommandLine)
}

func JSON() bool {
	return asJSON
}

func Validate() bool {
	return validate
}

func Verbose() bool {
	return verbose
}

func Textures() bool {
	return textures
}

func Workers() int {
	return workers
}

func ConfigFile() string {
	return configFile
}

func TextureDir() string {
	return textureDir
}

// Archives returns the -archive values in command line order.
func Archives() []string {
	return append([]string(nil), archives...)
}

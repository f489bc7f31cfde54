package cmd

import (
	"fmt"
	"strings"

	"github.com/relloyd/mtgpipe/constants"
	"github.com/spf13/pflag"
)

type cliFlag struct {
	name      string // name of flag
	val       string // default value
	shortHand string // single character name for the flag
	desc      string // description of the flag; the long text
}

type cliFlags map[string]cliFlag

var switches = cliFlags{
	"log-level": cliFlag{name: "log-level", shortHand: "l",
		desc: "Log level: one of trace, debug, info, warn, error"},
	"config-file": cliFlag{name: "config-file", shortHand: "c",
		desc: "Path to a YAML config file (default ~/" + constants.ConfigDir + "/" + constants.ConfigFileName + " if it exists)"},
}

// addFlag registers the named switch as a string flag in fs.
// The flag is left empty by default so that values from the environment or config file are kept
// unless the user supplies the flag.
func (f cliFlags) addFlag(fs *pflag.FlagSet, targetVar *string, name string) {
	sw, ok := f[name]
	if !ok {
		panic(fmt.Sprintf("unregistered CLI flag, %q", name))
	}
	desc := fmt.Sprintf("%v (or set %v)", sw.desc, flagNameToEnvVar(sw.name))
	fs.StringVarP(targetVar, sw.name, sw.shortHand, sw.val, desc)
}

// flagNameToEnvVar will form a sanitised environment variable name using constants.EnvVarPrefix.
func flagNameToEnvVar(name string) string {
	return constants.EnvVarPrefix + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

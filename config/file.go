package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"reflect"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/relloyd/mtgpipe/constants"
	"github.com/relloyd/mtgpipe/helper"
	"gopkg.in/yaml.v2"
)

// FileNotFoundError denotes failing to find configuration file.
type FileNotFoundError struct {
	name string
}

// Error returns the formatted configuration error.
func (f FileNotFoundError) Error() string {
	return fmt.Sprintf("config file %q not found", f.name)
}

// getConfigFilePath returns the config file to read.
// An explicit flag wins over the environment, which wins over the default file in the home directory.
// mustExist is false only for the default file.
func getConfigFilePath(flagValue string) (p string, mustExist bool, err error) {
	if flagValue != "" {
		return flagValue, true, nil
	}
	if v, _ := helper.GetEnvVar(constants.EnvVarConfigFile, false); v != "" {
		return v, true, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", false, errors.Wrap(err, "unable to find home directory")
	}
	return path.Join(home, constants.ConfigDir, constants.ConfigFileName), false, nil
}

// readConfigFile decodes the YAML file at p into cfg.
// A missing file is an error only if mustExist is set.
func readConfigFile(p string, mustExist bool, cfg *Config) error {
	b, err := ioutil.ReadFile(p)
	if os.IsNotExist(err) {
		if mustExist {
			return FileNotFoundError{name: p}
		}
		return nil
	} else if err != nil {
		return errors.Wrapf(err, "error reading config file %v", p)
	}
	data := make(map[string]interface{})
	if err = yaml.Unmarshal(b, data); err != nil {
		return errors.Wrapf(err, "error parsing config file %v", p)
	}
	if err = decode(data, cfg); err != nil {
		return errors.Wrapf(err, "error in config file %v", p)
	}
	cfg.ConfigFile = p
	return nil
}

// decode copies values found in data over the top of cfg.
// Unknown keys are reported so that typos do not go unnoticed.
func decode(data map[string]interface{}, cfg *Config) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			numberToSecondsHookFunc(),
		),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return d.Decode(data)
}

// numberToSecondsHookFunc reads a plain number as a count of seconds when the target is a
// time.Duration, the same as durations given in the environment.
func numberToSecondsHookFunc() mapstructure.DecodeHookFuncType {
	durationType := reflect.TypeOf(time.Duration(0))
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f == nil || t != durationType || f == durationType {
			return data, nil
		}
		v := reflect.ValueOf(data)
		switch f.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return time.Duration(v.Int()) * time.Second, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return time.Duration(v.Uint()) * time.Second, nil
		case reflect.Float32, reflect.Float64:
			return time.Duration(v.Float() * float64(time.Second)), nil
		}
		return data, nil
	}
}

package helper

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// GetEnvVar fetches OS environment variable.
// If the variable is not set it returns empty string.
// It also returns an error if there is a missing value AND mandatory == true.
func GetEnvVar(k string, mandatory bool) (string, error) {
	if value := os.Getenv(k); value != "" {
		return value, nil
	}
	if mandatory {
		return "", fmt.Errorf("environment variable %v is not set", k)
	}
	return "", nil
}

// ReadValueFromEnv will read the environment variable called name and populate the supplied val.
// If the env var is not set then return an error and leave val untouched.
func ReadValueFromEnv(name string, val *string) error {
	v := os.Getenv(name)
	if v != "" { // if the environment variable was set...
		*val = v // update the callers value
		return nil
	}
	return fmt.Errorf("value for environment variable %v not found", name)
}

// ReadValueFromEnvWithDefault will read the value of name from the environment into v.
// If it's not set then it will apply the supplied defaultValue and return v.
func ReadValueFromEnvWithDefault(name string, defaultValue string) (v string) {
	_ = ReadValueFromEnv(name, &v)
	if v == "" && defaultValue != "" { // if the environment variable is not set and we have been given a default value...
		v = defaultValue
	}
	return
}

// ReadIntFromEnv populates val from the environment variable called name.
// It returns found == false if the variable is not set, or an error if it is set but is not an integer.
func ReadIntFromEnv(name string, val *int) (found bool, err error) {
	var s string
	if ReadValueFromEnv(name, &s) != nil {
		return false, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return true, fmt.Errorf("environment variable %v must be an integer: %w", name, err)
	}
	*val = i
	return true, nil
}

// ReadDurationFromEnv populates val from the environment variable called name.
// Plain integers are treated as seconds, otherwise the value is parsed by time.ParseDuration.
func ReadDurationFromEnv(name string, val *time.Duration) (found bool, err error) {
	var s string
	if ReadValueFromEnv(name, &s) != nil {
		return false, nil
	}
	if secs, e := strconv.Atoi(s); e == nil {
		*val = time.Duration(secs) * time.Second
		return true, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return true, fmt.Errorf("environment variable %v must be a duration or a number of seconds: %w", name, err)
	}
	*val = d
	return true, nil
}

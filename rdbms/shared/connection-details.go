package shared

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xo/dburl"
)

// ConnectionDetails holds the credentials for a logical database connection.
// A populated Dsn takes precedence over the individual Postgres fields.
type ConnectionDetails struct {
	Dsn      string `yaml:"dsn" mapstructure:"dsn"`
	Host     string `yaml:"host" mapstructure:"host" errorTxt:"database host" mandatory:"yes"`
	Port     int    `yaml:"port" mapstructure:"port" errorTxt:"database port" mandatory:"yes"`
	DbName   string `yaml:"dbName" mapstructure:"dbName" errorTxt:"database name" mandatory:"yes"`
	User     string `yaml:"user" mapstructure:"user" errorTxt:"database user" mandatory:"yes"`
	Password string `yaml:"password" mapstructure:"password"`
	SslMode  string `yaml:"sslMode" mapstructure:"sslMode"`
}

// GetDsn returns the explicit DSN if one is set, else a postgres URL built from the individual fields.
// A Host starting with "/" is a Unix socket directory and gives a postgres+unix URL of the form
// postgres+unix://user@/socket/dir:port/dbname.
func (c ConnectionDetails) GetDsn() string {
	if c.Dsn != "" {
		return c.Dsn
	}
	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%v:%v", c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.DbName,
	}
	if strings.HasPrefix(c.Host, "/") {
		u.Scheme = "postgres+unix"
		u.Host = ""
		u.Path = fmt.Sprintf("%v:%v/%v", strings.TrimRight(c.Host, "/"), c.Port, c.DbName)
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}
	if c.SslMode != "" {
		q := url.Values{}
		q.Set("sslmode", c.SslMode)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// Parse returns the dburl form of the DSN.
func (c ConnectionDetails) Parse() (*dburl.URL, error) {
	dsn := c.GetDsn()
	if dsn == "" {
		return nil, errors.New("DSN not found")
	}
	u, err := dburl.Parse(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "DSN could not be parsed")
	}
	return u, nil
}

// GetScheme returns the database driver named by the DSN, e.g. postgres or sqlite3.
// Scheme aliases such as pg or sq are resolved.
func (c ConnectionDetails) GetScheme() (string, error) {
	u, err := c.Parse()
	if err != nil {
		return "", err
	}
	return u.Driver, nil
}

// String redacts passwords and pretty-prints the contents of ConnectionDetails.
func (c ConnectionDetails) String() string {
	u, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("<invalid dsn: %v>", err)
	}
	return u.URL.Redacted()
}

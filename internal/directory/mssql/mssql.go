// Package mssql fetches the employee directory from the HRPremier SQL Server
// database. It is the only blocking external dependency of a pipeline run;
// connection failures surface as DependencyError after bounded retries so
// callers can signal "try again later" instead of "fix your input".
package mssql

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/microsoft/go-mssqldb" // registers the sqlserver driver

	"github.com/agentstation/paybridge/pkg/errors"
)

// Config holds the SQL Server connection parameters.
type Config struct {
	Server   string
	Port     int
	Database string
	Username string
	Password string
}

// Validate checks that every required connection parameter is present.
func (c Config) Validate() error {
	var missing []string
	if c.Server == "" {
		missing = append(missing, "server")
	}
	if c.Database == "" {
		missing = append(missing, "database")
	}
	if c.Username == "" {
		missing = append(missing, "username")
	}
	if c.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return errors.NewConfigError("mssql",
			fmt.Sprintf("missing connection parameters: %s", strings.Join(missing, ", ")), nil)
	}
	return nil
}

// ConnectionString builds a sqlserver:// connection URL.
func (c Config) ConnectionString() string {
	u := url.URL{
		Scheme: "sqlserver",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   c.Server,
	}
	if c.Port > 0 {
		u.Host = fmt.Sprintf("%s:%d", c.Server, c.Port)
	}
	q := url.Values{}
	q.Set("database", c.Database)
	u.RawQuery = q.Encode()
	return u.String()
}

// Masked returns the connection string with the password redacted, safe for
// logging.
func (c Config) Masked() string {
	masked := c
	masked.Password = "********"
	return masked.ConnectionString()
}

// Client is a handle to the directory database.
type Client struct {
	db  *sql.DB
	cfg Config
}

// Open validates the configuration and prepares a client. The underlying
// pool connects lazily; connectivity problems surface on first fetch, where
// the retry policy applies.
func Open(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlserver", cfg.ConnectionString())
	if err != nil {
		return nil, errors.NewConfigError("mssql", "open connection pool", err)
	}
	return &Client{db: db, cfg: cfg}, nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

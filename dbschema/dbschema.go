// Package dbschema connects to existing databases and reads table columns,
// so entities can be reverse-scaffolded from tables that already exist.
//
// PostgreSQL connections use the pgx driver; MySQL and MariaDB use
// go-sql-driver. The database URL scheme selects the driver.
package dbschema

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/stokaro/anvil/dbschema/mysql"
	"github.com/stokaro/anvil/dbschema/postgres"
	"github.com/stokaro/anvil/dbschema/types"
)

// Reader reads column definitions for one table.
type Reader interface {
	ReadColumns(table string) ([]types.DBColumn, error)
	Close() error
}

// Connect opens a connection for the database URL and returns the matching
// reader. Supported schemes: postgres, postgresql, mysql.
func Connect(databaseURL string) (Reader, error) {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}

	switch parsed.Scheme {
	case "postgres", "postgresql":
		db, err := sql.Open("pgx", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres connection: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return postgres.NewReader(db, ""), nil

	case "mysql":
		db, err := sql.Open("mysql", mysqlDSN(parsed))
		if err != nil {
			return nil, fmt.Errorf("failed to open mysql connection: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to mysql: %w", err)
		}
		return mysql.NewReader(db), nil

	default:
		return nil, fmt.Errorf("unsupported database scheme: %q", parsed.Scheme)
	}
}

// mysqlDSN converts a mysql:// URL to the go-sql-driver DSN form
// user:pass@tcp(host:port)/dbname.
func mysqlDSN(u *url.URL) string {
	var auth string
	if u.User != nil {
		auth = u.User.Username()
		if pass, ok := u.User.Password(); ok {
			auth += ":" + pass
		}
		auth += "@"
	}
	return fmt.Sprintf("%stcp(%s)/%s", auth, u.Host, strings.TrimPrefix(u.Path, "/"))
}

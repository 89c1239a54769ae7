package utils

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync"

	vertigo "github.com/vertica/vertica-sql-go"
)

const (
	verticaDriverName = "vertica"
	// insecureTLSConfigName is the custom tlsmode registered with the driver.
	insecureTLSConfigName = "vertica-conn-skip-verify"
)

var errNoQuery = errors.New("no query has been executed on this cursor")

// Connector opens connections to the database.
type Connector interface {
	Connect(ctx context.Context, params ConnectionParameters) (Connection, error)
}

type Connection interface {
	Cursor() (Cursor, error)
	Close() error
}

type Cursor interface {
	Execute(ctx context.Context, query string) error
	// FetchOne returns the next row, or nil when the result is exhausted.
	FetchOne() (Row, error)
	Close() error
}

// SQLConnector implements Connector on top of database/sql. The driver keeps
// TLS configs in a process-wide registry, so the first TLS config a connector
// sees is registered once and reused for every later connection.
type SQLConnector struct {
	driverName  string
	registerTLS sync.Once
	tlsErr      error
}

func NewVerticaConnector() *SQLConnector {
	return &SQLConnector{driverName: verticaDriverName}
}

// NewSQLConnector uses an arbitrary registered database/sql driver with the
// DSN produced by BuildDSN.
func NewSQLConnector(driverName string) *SQLConnector {
	return &SQLConnector{driverName: driverName}
}

// BuildDSN renders the vertica-sql-go connection string. A nil TLSConfig
// disables TLS; otherwise the registered custom TLS config is selected.
func BuildDSN(params ConnectionParameters) string {
	query := url.Values{}
	if params.TLSConfig != nil {
		query.Set("tlsmode", insecureTLSConfigName)
	} else {
		query.Set("tlsmode", "none")
	}

	dsn := url.URL{
		Scheme:   "vertica",
		User:     url.UserPassword(params.User, params.Password),
		Host:     net.JoinHostPort(params.Host, strconv.Itoa(params.Port)),
		Path:     "/" + params.Database,
		RawQuery: query.Encode(),
	}
	return dsn.String()
}

func (c *SQLConnector) Connect(ctx context.Context, params ConnectionParameters) (Connection, error) {
	if params.TLSConfig != nil {
		c.registerTLS.Do(func() {
			c.tlsErr = vertigo.RegisterTLSConfig(insecureTLSConfigName, params.TLSConfig)
		})
		if c.tlsErr != nil {
			return nil, fmt.Errorf("error registering tls config: %w", c.tlsErr)
		}
	}

	db, err := sql.Open(c.driverName, BuildDSN(params))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if params.ConnectionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, params.ConnectionTimeout)
		defer cancel()
	}

	conn, err := connect(ctx, db)
	if err != nil {
		return nil, err
	}
	return &sqlConnection{db: db, conn: conn}, nil
}

type connResult struct {
	conn *sql.Conn
	err  error
}

// connect dials in the background because the vertica driver's Open ignores
// the context. A connection that arrives after ctx is done is closed along
// with db.
func connect(ctx context.Context, db *sql.DB) (*sql.Conn, error) {
	results := make(chan connResult, 1)
	go func() {
		conn, err := db.Conn(context.Background())
		results <- connResult{conn: conn, err: err}
	}()

	select {
	case r := <-results:
		if r.err != nil {
			db.Close()
			return nil, r.err
		}
		return r.conn, nil
	case <-ctx.Done():
		go func() {
			if r := <-results; r.err == nil {
				r.conn.Close()
			}
			db.Close()
		}()
		return nil, fmt.Errorf("error connecting to database: %w", ctx.Err())
	}
}

type sqlConnection struct {
	db   *sql.DB
	conn *sql.Conn
}

func (c *sqlConnection) Cursor() (Cursor, error) {
	return &sqlCursor{conn: c.conn}, nil
}

func (c *sqlConnection) Close() error {
	return errors.Join(c.conn.Close(), c.db.Close())
}

type sqlCursor struct {
	conn *sql.Conn
	rows *sql.Rows
}

func (c *sqlCursor) Execute(ctx context.Context, query string) error {
	if c.rows != nil {
		c.rows.Close()
	}
	rows, err := c.conn.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	c.rows = rows
	return nil
}

func (c *sqlCursor) FetchOne() (Row, error) {
	if c.rows == nil {
		return nil, errNoQuery
	}
	if !c.rows.Next() {
		return nil, c.rows.Err()
	}

	columns, err := c.rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := c.rows.Scan(dest...); err != nil {
		return nil, err
	}

	row := make(Row, len(values))
	for i, v := range values {
		if b, ok := v.([]byte); ok {
			row[i] = string(b)
			continue
		}
		row[i] = v
	}
	return row, nil
}

func (c *sqlCursor) Close() error {
	if c.rows == nil {
		return nil
	}
	return c.rows.Close()
}

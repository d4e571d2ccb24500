package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// flakyDriver fails the first failures queries with the configured
// error, then succeeds with an empty result set
type flakyDriver struct {
	mu       sync.Mutex
	calls    int
	failures int
	err      error
}

func (d *flakyDriver) Open(name string) (driver.Conn, error) {
	return &flakyConn{d: d}, nil
}

type flakyConn struct {
	d *flakyDriver
}

func (c *flakyConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *flakyConn) Close() error { return nil }

func (c *flakyConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *flakyConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.d.mu.Lock()
	defer c.d.mu.Unlock()

	c.d.calls++
	if c.d.calls <= c.d.failures {
		return nil, c.d.err
	}
	return emptyRows{}, nil
}

type emptyRows struct{}

func (emptyRows) Columns() []string              { return nil }
func (emptyRows) Close() error                   { return nil }
func (emptyRows) Next(dest []driver.Value) error { return io.EOF }

func openFlaky(t *testing.T, name string, d *flakyDriver) *DB {
	t.Helper()
	sql.Register(name, d)

	sqlDB, err := sql.Open(name, "")
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return &DB{sqlDB}
}

func TestExecuteWithRetryRecoversFromTransientErrors(t *testing.T) {
	d := &flakyDriver{failures: 2, err: errors.New("read tcp: connection reset by peer")}
	db := openFlaky(t, "flaky-transient", d)

	rows, err := db.ExecuteWithRetry(context.Background(), "SELECT 1")

	assert.NoError(t, err)
	assert.NotNil(t, rows)
	rows.Close()
	assert.Equal(t, 3, d.calls)
}

func TestExecuteWithRetryStopsOnPermanentError(t *testing.T) {
	d := &flakyDriver{failures: 10, err: errors.New(`pq: syntax error at or near "SELEC"`)}
	db := openFlaky(t, "flaky-permanent", d)

	_, err := db.ExecuteWithRetry(context.Background(), "SELEC 1")

	assert.Error(t, err)
	assert.Equal(t, 1, d.calls)
}

func TestExecuteWithRetryGivesUpAfterMaxAttempts(t *testing.T) {
	d := &flakyDriver{failures: 10, err: errors.New("dial tcp: connection refused")}
	db := openFlaky(t, "flaky-down", d)

	_, err := db.ExecuteWithRetry(context.Background(), "SELECT 1")

	assert.Error(t, err)
	assert.Equal(t, 3, d.calls)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(errors.New("dial tcp: connection refused")))
	assert.True(t, isRetryableError(errors.New("read tcp: connection reset by peer")))
	assert.True(t, isRetryableError(errors.New("write: broken pipe")))
	assert.True(t, isRetryableError(errors.New("driver: bad connection")))

	assert.False(t, isRetryableError(nil))
	assert.False(t, isRetryableError(errors.New(`pq: duplicate key value violates unique constraint`)))
}

func TestValidateConnectionPoolReportsNoError(t *testing.T) {
	db := openFlaky(t, "flaky-stats", &flakyDriver{})

	assert.NoError(t, db.ValidateConnectionPool())
}

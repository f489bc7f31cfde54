package shared

import (
	"context"
	"sync"

	"github.com/relloyd/mtgpipe/logger"
)

// MockExec records one call to ExecContext.
type MockExec struct {
	Query string
	Args  []interface{}
}

// MockConnection implements Connector and Transacter.
// It records statements executed so tests can assert on generated SQL without a database.
type MockConnection struct {
	log       logger.Logger
	mu        sync.Mutex
	dbType    string
	Execs     []MockExec
	Begins    int
	Commits   int
	Rollbacks int
	Closes    int
	// Errors to return from the matching calls.
	BeginErr  error
	ExecErr   error
	CommitErr error
}

type mockResult struct {
	rows int64
}

func (r mockResult) LastInsertId() (int64, error) { return 0, nil }
func (r mockResult) RowsAffected() (int64, error) { return r.rows, nil }

// NewMockConnection returns a recording Connector that reports the given database type.
func NewMockConnection(log logger.Logger, dbType string) *MockConnection {
	return &MockConnection{log: log, dbType: dbType}
}

func (m *MockConnection) Begin(ctx context.Context) (Transacter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Begins++
	if m.BeginErr != nil {
		return nil, m.BeginErr
	}
	return m, nil
}

func (m *MockConnection) ExecContext(ctx context.Context, query string, args ...interface{}) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log.Debug("mock exec: ", query)
	m.Execs = append(m.Execs, MockExec{Query: query, Args: args})
	if m.ExecErr != nil {
		return nil, m.ExecErr
	}
	return mockResult{}, nil
}

func (m *MockConnection) Commit() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commits++
	return m.CommitErr
}

func (m *MockConnection) Rollback() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rollbacks++
	return nil
}

func (m *MockConnection) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closes++
	return nil
}

func (m *MockConnection) GetType() string {
	return m.dbType
}

func (m *MockConnection) GetDmlGenerator() DmlGenerator {
	return &DmlGeneratorTxtBatch{}
}

package server

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/snsplatform/internal/server/config"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepoManager struct {
	repomanager.RepositoryManager
	migrateErr error
	migrated   bool
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error {
	m.migrated = true
	return m.migrateErr
}

func stubApp(t *testing.T, db *sql.DB, openErr error, rm *fakeRepoManager) *bytes.Buffer {
	t.Helper()
	origOpen, origRM, origOut := openDB, newRepositoryManager, logOutput
	t.Cleanup(func() {
		openDB, newRepositoryManager, logOutput = origOpen, origRM, origOut
	})

	openDB = func(ctx context.Context, dsn string) (*sql.DB, error) {
		if openErr != nil {
			return nil, openErr
		}
		return db, nil
	}
	newRepositoryManager = func() repomanager.RepositoryManager { return rm }

	buf := &bytes.Buffer{}
	logOutput = buf
	return buf
}

func testConfig() *config.Config {
	var c config.Config
	c.LoadDefaults()
	c.HTTPAddr = "127.0.0.1:0"
	c.GRPCAddr = "127.0.0.1:0"
	c.ShutdownTimeout = time.Second
	return &c
}

func TestNewApp_OpenError(t *testing.T) {
	stubApp(t, nil, errors.New("refused"), &fakeRepoManager{})

	_, err := NewApp(context.Background(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error: refused")
}

func TestNewApp_MigrationErrorClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	rm := &fakeRepoManager{migrateErr: errors.New("bad sql")}
	stubApp(t, db, nil, rm)

	_, err = NewApp(context.Background(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db migration error: bad sql")
	assert.True(t, rm.migrated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_RunStopsOnCancelAndClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	rm := &fakeRepoManager{}
	logs := stubApp(t, db, nil, rm)

	cfg := testConfig()
	cfg.GRPCAddr = ""

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	require.True(t, rm.migrated)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(150 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Contains(t, logs.String(), "App stopped")
}

func TestApp_RunFailsFastOnBadAddress(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	stubApp(t, db, nil, &fakeRepoManager{})

	cfg := testConfig()
	cfg.HTTPAddr = "127.0.0.1:99999"
	cfg.GRPCAddr = ""

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after server failure")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/budget-web/internal/config"
	"github.com/carson-networks/budget-web/internal/storage/sqlconfig"
)

// Applies the sqlite session-store migrations without starting the server.
func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	if env.SessionBackend != server_config.SessionBackendSQLite {
		logrus.WithField("sessionBackend", env.SessionBackend).Warn("session backend is not sqlite, migrating SQLITE_PATH anyway")
	}

	if err := os.MkdirAll(filepath.Dir(env.SQLitePath), 0755); err != nil {
		logrus.WithError(err).Fatal("os.MkdirAll")
		return
	}

	preMigrationVersion, _, err := sqlconfig.SchemaVersion(env.SQLitePath)
	if err != nil {
		logrus.WithError(err).Fatal("SchemaVersion.preMigrationVersion")
		return
	}

	if err := sqlconfig.RunMigrations(env.SQLitePath); err != nil {
		logrus.WithError(err).Fatal("RunMigrations")
		return
	}

	postMigrationVersion, dirty, err := sqlconfig.SchemaVersion(env.SQLitePath)
	if err != nil {
		logrus.WithError(err).Fatal("SchemaVersion.postMigrationVersion")
		return
	}

	logrus.WithFields(logrus.Fields{
		"path":                 env.SQLitePath,
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
		"dirty":                dirty,
	}).Info("Migration status")
}

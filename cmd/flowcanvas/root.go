package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallnest/flowcanvas/graph"
	"github.com/smallnest/flowcanvas/persist"
	"github.com/smallnest/flowcanvas/persist/file"
	"github.com/smallnest/flowcanvas/persist/redis"
	"github.com/smallnest/flowcanvas/persist/sqlite"
)

var version = "0.1.0"

var (
	storeKind string
	storeDir  string
	storePath string
	redisAddr string
)

var rootCmd = &cobra.Command{
	Use:          "flowcanvas",
	Short:        "flowcanvas - inspect and export canvas projects",
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "file", "Snapshot store backend: file, sqlite or redis")
	rootCmd.PersistentFlags().StringVar(&storeDir, "dir", ".flowcanvas", "Snapshot directory for the file store")
	rootCmd.PersistentFlags().StringVar(&storePath, "db", "flowcanvas.db", "Database path for the sqlite store")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "localhost:6379", "Address for the redis store")

	rootCmd.AddCommand(
		inspectCmd(),
		exportCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openStore builds the snapshot store named by the persistent flags.
func openStore() (persist.SnapshotStore, error) {
	switch storeKind {
	case "file":
		return file.NewFileSnapshotStore(storeDir)
	case "sqlite":
		return sqlite.NewSqliteSnapshotStore(sqlite.SqliteOptions{Path: storePath})
	case "redis":
		return redis.NewRedisSnapshotStore(redis.RedisOptions{Addr: redisAddr}), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", storeKind)
	}
}

// loadSnapshot loads a project snapshot or fails with a usable message.
func loadSnapshot(ctx context.Context, projectID string) (*graph.Snapshot, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	snap, err := store.Load(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", projectID, err)
	}
	return snap, nil
}

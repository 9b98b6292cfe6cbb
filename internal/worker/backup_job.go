package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/pkg/logger"
	"github.com/vestalumina/vls-api/pkg/utils"
)

// BackupCollections are exported on every backup run.
var BackupCollections = []string{
	"tenants",
	"tenant_settings",
	"units",
	"devices",
	"admin_principals",
	"brands",
}

//go:generate mockery --name BackupSink --output ../mocks
type BackupSink interface {
	Prefix() string
	Put(ctx context.Context, key string, body []byte, metadata map[string]string) error
	List(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, keys []string) error
}

func backupKey(prefix string, day time.Time, collection string) string {
	return fmt.Sprintf("%s/%s/%s.json", prefix, utils.FormatDay(day), collection)
}

// BackupJob exports every collection under a key of the run's date, so a
// re-run on the same day overwrites rather than duplicates.
type BackupJob struct {
	snapshots repository.SnapshotRepository
	sink      BackupSink
	clock     clock.Clock
	logger    *logger.Logger
}

func NewBackupJob(snapshots repository.SnapshotRepository, sink BackupSink, clk clock.Clock, logger *logger.Logger) *BackupJob {
	return &BackupJob{
		snapshots: snapshots,
		sink:      sink,
		clock:     clk,
		logger:    logger,
	}
}

func (j *BackupJob) Name() string {
	return "backup"
}

func (j *BackupJob) Run(ctx context.Context) error {
	now := j.clock.Now().UTC()

	g, ctx := errgroup.WithContext(ctx)
	for _, collection := range BackupCollections {
		g.Go(func() error {
			return j.exportCollection(ctx, collection, now)
		})
	}
	return g.Wait()
}

func (j *BackupJob) exportCollection(ctx context.Context, collection string, now time.Time) error {
	rows, err := j.snapshots.Export(ctx, collection)
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", collection, err)
	}

	body, err := json.Marshal(map[string]interface{}{
		"collection":  collection,
		"exported_at": now,
		"count":       len(rows),
		"documents":   rows,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", collection, err)
	}

	key := backupKey(j.sink.Prefix(), now, collection)
	metadata := map[string]string{
		"collection":  collection,
		"exported-at": now.Format(time.RFC3339),
		"count":       strconv.Itoa(len(rows)),
	}
	if err := j.sink.Put(ctx, key, body, metadata); err != nil {
		return err
	}

	j.logger.Info("Collection backed up", zap.String("collection", collection), zap.Int("count", len(rows)), zap.String("key", key))
	return nil
}

// BackupRetentionJob removes backup days older than the retention window.
type BackupRetentionJob struct {
	sink      BackupSink
	retention time.Duration
	clock     clock.Clock
	logger    *logger.Logger
}

func NewBackupRetentionJob(sink BackupSink, retention time.Duration, clk clock.Clock, logger *logger.Logger) *BackupRetentionJob {
	return &BackupRetentionJob{
		sink:      sink,
		retention: retention,
		clock:     clk,
		logger:    logger,
	}
}

func (j *BackupRetentionJob) Name() string {
	return "backup_retention"
}

func (j *BackupRetentionJob) Run(ctx context.Context) error {
	prefix := j.sink.Prefix() + "/"
	keys, err := j.sink.List(ctx, prefix)
	if err != nil {
		return err
	}

	cutoff := j.clock.Now().UTC().Add(-j.retention)
	var expired []string
	for _, key := range keys {
		day, ok := backupDay(prefix, key)
		if !ok {
			j.logger.Warn("Skipping backup object with unexpected key", zap.String("key", key))
			continue
		}
		if day.Before(cutoff) {
			expired = append(expired, key)
		}
	}

	if len(expired) == 0 {
		return nil
	}
	if err := j.sink.Delete(ctx, expired); err != nil {
		return err
	}

	j.logger.Info("Expired backups deleted", zap.Int("objects", len(expired)), zap.Time("cutoff", cutoff))
	return nil
}

// backupDay parses the date segment of prefix/YYYY-MM-DD/collection.json.
func backupDay(prefix, key string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(key, prefix)
	if !ok {
		return time.Time{}, false
	}
	dateSegment, _, ok := strings.Cut(strings.TrimPrefix(rest, "/"), "/")
	if !ok {
		return time.Time{}, false
	}
	day, err := utils.ParseDay(dateSegment)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

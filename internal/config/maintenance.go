package config

import "time"

type MaintenanceConfig struct {
	BackupInterval          time.Duration
	BackupRetention         time.Duration
	ActionLogRetention      time.Duration
	ReminderInterval        time.Duration
	ReminderAfter           time.Duration
	ReminderSendInterval    time.Duration
	ReconcileInterval       time.Duration
	ReconcileGrace          time.Duration
	BrandStatsInterval      time.Duration
	RetentionInterval       time.Duration
	JobTimeout              time.Duration
	BatchSize               int
	MetricsPort             int
	IndexWorkerCount        int
	IndexWorkerPollInterval time.Duration
}

func DefaultMaintenanceConfig() *MaintenanceConfig {
	return &MaintenanceConfig{
		BackupInterval:          getEnvDurationWithDefault("BACKUP_INTERVAL", 24*time.Hour),
		BackupRetention:         getEnvDurationWithDefault("BACKUP_RETENTION", 30*24*time.Hour),
		ActionLogRetention:      getEnvDurationWithDefault("ACTION_LOG_RETENTION", 365*24*time.Hour),
		ReminderInterval:        getEnvDurationWithDefault("REMINDER_INTERVAL", 6*time.Hour),
		ReminderAfter:           getEnvDurationWithDefault("REMINDER_AFTER", 3*24*time.Hour),
		ReminderSendInterval:    getEnvDurationWithDefault("REMINDER_SEND_INTERVAL", 200*time.Millisecond),
		ReconcileInterval:       getEnvDurationWithDefault("RECONCILE_INTERVAL", time.Hour),
		ReconcileGrace:          getEnvDurationWithDefault("RECONCILE_GRACE", time.Hour),
		BrandStatsInterval:      getEnvDurationWithDefault("BRAND_STATS_INTERVAL", 24*time.Hour),
		RetentionInterval:       getEnvDurationWithDefault("RETENTION_INTERVAL", 24*time.Hour),
		JobTimeout:              getEnvDurationWithDefault("MAINTENANCE_JOB_TIMEOUT", 30*time.Minute),
		BatchSize:               getEnvIntWithDefault("MAINTENANCE_BATCH_SIZE", 400),
		MetricsPort:             getEnvIntWithDefault("MAINTENANCE_METRICS_PORT", 10001),
		IndexWorkerCount:        getEnvIntWithDefault("INDEX_WORKER_COUNT", 1),
		IndexWorkerPollInterval: getEnvDurationWithDefault("INDEX_WORKER_POLL_INTERVAL", 5*time.Second),
	}
}

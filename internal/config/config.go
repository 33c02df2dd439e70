package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	StorageBackendLocal = "local"
	StorageBackendMinio = "minio"
)

type Config struct {
	Registry
	Storage
	Download
	Jobs
	PostgreSQL
	HTTP
}

type Registry struct {
	UserAgent         string
	CatalogURL        string
	SubmissionsURL    string
	ArchivesURL       string
	RequestsPerSecond float64
	RequestTimeout    time.Duration
}

type Storage struct {
	Backend   string
	Directory string
	Minio
}

type Minio struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type Download struct {
	MaxConcurrent  int64
	RetryAttempts  int
	RetryDelay     time.Duration
	AttemptTimeout time.Duration
}

type Jobs struct {
	Retention        time.Duration
	EvictionInterval time.Duration
	ReportsDirectory string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	MaxConns int32
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		Registry: Registry{
			UserAgent:         cmd.String("user-agent"),
			CatalogURL:        cmd.String("catalog-url"),
			SubmissionsURL:    cmd.String("submissions-url"),
			ArchivesURL:       cmd.String("archives-url"),
			RequestsPerSecond: cmd.Float64("requests-per-second"),
			RequestTimeout:    cmd.Duration("request-timeout"),
		},
		Storage: Storage{
			Backend:   cmd.String("storage-backend"),
			Directory: cmd.String("storage-dir"),
			Minio: Minio{
				Endpoint:  cmd.String("minio-endpoint"),
				AccessKey: cmd.String("minio-access-key"),
				SecretKey: cmd.String("minio-secret-key"),
				Bucket:    cmd.String("minio-bucket"),
				UseSSL:    cmd.Bool("minio-use-ssl"),
			},
		},
		Download: Download{
			MaxConcurrent:  cmd.Int64("max-concurrent-downloads"),
			RetryAttempts:  cmd.Int("retry-attempts"),
			RetryDelay:     cmd.Duration("retry-delay"),
			AttemptTimeout: cmd.Duration("download-timeout"),
		},
		Jobs: Jobs{
			Retention:        cmd.Duration("job-retention"),
			EvictionInterval: cmd.Duration("eviction-interval"),
			ReportsDirectory: cmd.String("reports-dir"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			MaxConns: cmd.Int32("pg-max-conns"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}

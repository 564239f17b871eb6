package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-30"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	// Check if all expected strings are present
	if !strings.Contains(output, "Version: v1.0.0") ||
		!strings.Contains(output, "Commit: abcd1234") ||
		!strings.Contains(output, "Build: 2026-08-30") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel, baseURL,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom,
		jwtSecret, jwtExp, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if appHost != "localhost" || appPort != "8080" || logLevel != "info" ||
		baseURL != "http://localhost:8080" {
		t.Errorf("unexpected app config: %v/%v/%v/%v", appHost, appPort, logLevel, baseURL)
	}

	// PostgreSQL
	if pgHost != "localhost" || pgPort != 5432 || pgUser != "user" || pgPassword != "password" || pgDB != "database" ||
		pgMaxOpenConns != 16 || pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if redisHost != "localhost" || redisPort != 6379 || redisDB != 0 || redisPassword != "" {
		t.Errorf("unexpected redis config")
	}

	// Kafka
	if kafkaBrokers != "" || kafkaTopic != "ev-scan-data" {
		t.Errorf("unexpected kafka config: %v/%v", kafkaBrokers, kafkaTopic)
	}

	// SMTP
	if smtpHost != "localhost" || smtpPort != 587 || smtpUser != "" || smtpPassword != "" ||
		smtpFrom != "noreply@xevscan.local" {
		t.Errorf("unexpected smtp config")
	}

	// JWT
	if jwtSecret != "my_super_secret_key" || jwtExp != 604800 {
		t.Errorf("unexpected jwt config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("APP_BASE_URL", "https://scan.example.com")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")

	os.Setenv("KAFKA_BROKERS", "kafka1:9092,kafka2:9092")
	os.Setenv("KAFKA_TOPIC", "scans")

	os.Setenv("SMTP_HOST", "smtp.example.com")
	os.Setenv("SMTP_PORT", "465")
	os.Setenv("SMTP_USERNAME", "mailer")
	os.Setenv("SMTP_PASSWORD", "mailpass")
	os.Setenv("SMTP_FROM", "noreply@example.com")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	appHost, appPort, logLevel, baseURL,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom,
		jwtSecret, jwtExp, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if appHost != "127.0.0.1" || appPort != "9090" || logLevel != "debug" ||
		baseURL != "https://scan.example.com" {
		t.Errorf("unexpected app config")
	}
	if pgHost != "pg.example.com" || pgPort != 5433 || pgUser != "admin" || pgPassword != "secret" || pgDB != "mydb" ||
		pgMaxOpenConns != 20 || pgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if redisHost != "redis.example.com" || redisPort != 6380 || redisDB != 2 || redisPassword != "redispass" {
		t.Errorf("unexpected redis config")
	}
	if kafkaBrokers != "kafka1:9092,kafka2:9092" || kafkaTopic != "scans" {
		t.Errorf("unexpected kafka config")
	}
	if smtpHost != "smtp.example.com" || smtpPort != 465 || smtpUser != "mailer" || smtpPassword != "mailpass" ||
		smtpFrom != "noreply@example.com" {
		t.Errorf("unexpected smtp config")
	}
	if jwtSecret != "supersecret" || jwtExp != 300 {
		t.Errorf("unexpected jwt config")
	}
}

// ------------------ Full integration test ------------------

func TestRun_Success(t *testing.T) {
	if os.Getenv("SCANAPI_INTEGRATION_TESTS") == "" {
		t.Skip("set SCANAPI_INTEGRATION_TESTS to run integration tests")
	}

	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx,
			"127.0.0.1", "8086", "debug", "http://127.0.0.1:8086",
			pgHost, pgPort.Int(), "user", "password", "testdb",
			5, 2,
			redisHost, redisPort.Int(), 0, "",
			"", "ev-scan-data", // Kafka disabled
			"localhost", 587, "", "", "noreply@xevscan.local",
			"testsecret", 3600,
		)
	}()

	// Probe the liveness endpoint while the server is up.
	var alive bool
	for i := 0; i < 20; i++ {
		resp, err := http.Get("http://127.0.0.1:8086/")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				alive = true
				break
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	if !alive {
		t.Error("liveness endpoint never became reachable")
	}

	select {
	case <-time.After(20 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log(fmt.Sprintf("run completed: %v", err))
	}
}

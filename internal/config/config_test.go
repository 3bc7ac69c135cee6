package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "DB_DRIVER", "MYSQL_HOST", "REDIS_ADDR", "IDEMPOTENCY_TTL_SECONDS", "AUDITOR"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.AppPort != "8080" || c.DBDriver != DriverMySQL || c.MySQLHost != "mysql" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.RedisAddr != "" {
		t.Fatalf("redis should be disabled by default, got %q", c.RedisAddr)
	}
	if c.IdempTTLSecs != 300 || c.Auditor != "LOANS_MS" {
		t.Fatalf("ttl=%d auditor=%q", c.IdempTTLSecs, c.Auditor)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")
	t.Setenv("AUDITOR", "SYS")

	c := Load()
	if c.AppPort != "9090" || c.DBDriver != DriverSQLite || c.SQLitePath != "/tmp/x.db" {
		t.Fatalf("unexpected: %+v", c)
	}
	if c.RedisAddr != "localhost:6379" || c.RedisDB != 3 || c.IdempTTLSecs != 60 || c.Auditor != "SYS" {
		t.Fatalf("unexpected: %+v", c)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "x")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "soon")
	c := Load()
	if c.RedisDB != 0 || c.IdempTTLSecs != 300 {
		t.Fatalf("RedisDB=%d ttl=%d", c.RedisDB, c.IdempTTLSecs)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			AppPort: "8080", DBDriver: DriverMySQL,
			MySQLHost: "h", MySQLPort: "3306", MySQLDB: "d", MySQLUser: "u",
			SQLitePath: "x.db", IdempTTLSecs: 1,
		}
	}
	cases := []struct {
		name    string
		mut     func(c *Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"sqlite ok", func(c *Config) { c.DBDriver = DriverSQLite; c.MySQLHost = "" }, ""},
		{"no port", func(c *Config) { c.AppPort = "" }, "APP_PORT"},
		{"bad driver", func(c *Config) { c.DBDriver = "postgres" }, "DB_DRIVER"},
		{"missing mysql", func(c *Config) { c.MySQLDB = "" }, "MySQL"},
		{"bad mysql port", func(c *Config) { c.MySQLPort = "not-a-port" }, "MYSQL_PORT"},
		{"missing sqlite path", func(c *Config) { c.DBDriver = DriverSQLite; c.SQLitePath = "" }, "SQLITE_PATH"},
		{"bad ttl", func(c *Config) { c.IdempTTLSecs = 0 }, "IDEMPOTENCY_TTL_SECONDS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mut(c)
			err := c.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %v should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	c := &Config{MySQLUser: "u", MySQLPass: "p", MySQLHost: "db", MySQLPort: "3307", MySQLDB: "loans"}
	want := "u:p@tcp(db:3307)/loans?parseTime=true&charset=utf8mb4,utf8"
	if got := c.MySQLDSN(); got != want {
		t.Fatalf("DSN = %q, want %q", got, want)
	}
}

func TestLoadContactInfo(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		ci, err := LoadContactInfo("")
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if ci.Message == "" || len(ci.Support) == 0 {
			t.Fatalf("defaults missing: %+v", ci)
		}
	})

	t.Run("file overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contact.yaml")
		doc := "message: Hello from loans\ncontact:\n  name: Jane\n  email: jane@example.com\nsupport:\n  - +1 555 0100\n  - +1 555 0101\n"
		if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
			t.Fatal(err)
		}
		ci, err := LoadContactInfo(path)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if ci.Message != "Hello from loans" || ci.Contact["name"] != "Jane" || len(ci.Support) != 2 {
			t.Fatalf("unexpected: %+v", ci)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadContactInfo(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("message: [unterminated"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadContactInfo(path); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

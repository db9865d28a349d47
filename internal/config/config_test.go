package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the test; godotenv never overrides a variable that is set, even to "".
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	unsetEnv(t, "DATABASE_API", "DATABASE_AUTH_KEY", "MYSQL_DSN", "RABBITMQ_URL")

	path := filepath.Join(t.TempDir(), ".env.local")
	content := "DATABASE_API=http://db.local/api\nDATABASE_AUTH_KEY=secret\nMYSQL_DSN=u:p@tcp(127.0.0.1:3306)/resets\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://db.local/api", cfg.DatabaseAPI)
	require.Equal(t, "secret", cfg.DatabaseAuthKey)
	require.Equal(t, "u:p@tcp(127.0.0.1:3306)/resets", cfg.MySQLDSN)
	require.Empty(t, cfg.RabbitMQURL)
}

func TestLoadMissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("DATABASE_API", "http://env/api")
	t.Setenv("DATABASE_AUTH_KEY", "k")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	require.Equal(t, "http://env/api", cfg.DatabaseAPI)
}

func TestLoadMissingCredential(t *testing.T) {
	t.Setenv("DATABASE_API", "http://env/api")
	t.Setenv("DATABASE_AUTH_KEY", "")

	_, err := Load("")
	require.ErrorIs(t, err, ErrMissing)
}

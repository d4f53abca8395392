package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultFiles в порядке приоритета: godotenv не перезаписывает уже заданные переменные.
var DefaultFiles = []string{".env.local", ".env"}

// Load читает найденные env-файлы и применяет флаги командной строки поверх них.
// Возвращает список прочитанных файлов.
func Load(files ...string) ([]string, error) {
	if len(files) == 0 {
		files = DefaultFiles
	}

	loaded := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return loaded, fmt.Errorf("load %s: %w", file, err)
		}
		loaded = append(loaded, file)
	}

	overrides := map[string]*string{
		"PORT":              flag.String("port", "", "Server port (overrides PORT)"),
		"BACKEND_TENANT_ID": flag.String("tenant", "", "Tenant id (overrides BACKEND_TENANT_ID)"),
		"ORIGINS_FILE":      flag.String("origins", "", "Origin table file (overrides ORIGINS_FILE)"),
	}
	flag.Parse()

	for env, value := range overrides {
		if *value == "" {
			continue
		}
		if err := os.Setenv(env, *value); err != nil {
			return loaded, fmt.Errorf("failed to set %s environment variable: %w", env, err)
		}
	}
	return loaded, nil
}

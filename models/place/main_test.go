package place

import (
	"os"
	"testing"
)

// the log and config singletons need a readable config file
func TestMain(m *testing.M) {
	f, err := os.CreateTemp("", "placepick-config-*.toml")
	if err != nil {
		panic(err)
	}
	_, err = f.WriteString("environment = \"dev\"\n\n[log]\nlogLevel = -1\n")
	if err != nil {
		panic(err)
	}
	f.Close()

	os.Setenv("PLACEPICK_CONFIG", f.Name())
	code := m.Run()
	os.Remove(f.Name())
	os.Exit(code)
}

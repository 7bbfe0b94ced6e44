package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/bistro/internal/paths"
	"github.com/mesh-intelligence/bistro/pkg/extent"
	"github.com/mesh-intelligence/bistro/pkg/types"
)

// testDirs returns isolated config and data directories and clears the
// environment overrides for the test.
func testDirs(t *testing.T) (configDir, dataDir string) {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvDataDir, "")
	root := t.TempDir()
	return filepath.Join(root, "cfg"), filepath.Join(root, "data")
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { _ = types.ChangeTaxRate(types.DefaultTaxRate) })
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func fixClock(t *testing.T) {
	t.Helper()
	orig := now
	t.Cleanup(func() { now = orig })
	now = func() time.Time { return time.Date(2024, 5, 19, 18, 0, 0, 0, time.UTC) }
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bistro v"+Version+"\nmodule: "+modulePath+"\n", out)
}

func TestInit(t *testing.T) {
	configDir, dataDir := testDirs(t)

	out, err := run(t, "--config-dir", configDir, "--data-dir", dataDir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "bistro initialized (json backend")

	data, err := os.ReadFile(filepath.Join(configDir, "config.yaml"))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, types.BackendJSON, cfg.Backend)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, "0.08", cfg.TaxRate)

	assert.FileExists(t, filepath.Join(dataDir, "extent.json"))

	// Running init again keeps the config and the extent.
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("backend: json\ntax_rate: \"0.1\"\n"), 0o644))
	_, err = run(t, "--config-dir", configDir, "--data-dir", dataDir, "init")
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "0.1")
}

func TestDemoThenShow(t *testing.T) {
	fixClock(t)
	configDir, dataDir := testDirs(t)
	receiptPath := filepath.Join(t.TempDir(), "receipt.png")

	out, err := run(t, "--config-dir", configDir, "--data-dir", dataDir, "demo", "--receipt", receiptPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Manager on duty: Mustafa Atalan\n")
	assert.Contains(t, out, "Waiter Ayse Kaya serves 1 table(s)\n")
	assert.Contains(t, out, "Order total: 57.00\n")
	assert.Contains(t, out, "Processed payment amount: 42.00\n")
	assert.Contains(t, out, "Total with tax: 45.36\n")
	assert.Contains(t, out, "Saved and reloaded 1 restaurant(s)")
	assert.Contains(t, out, "2024-05-20  party of 2  confirmed")
	assert.FileExists(t, receiptPath)

	out, err = run(t, "--config-dir", configDir, "--data-dir", dataDir, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "BYT Bistro (capacity 120, 6 seats at 2 tables)")
	assert.Contains(t, out, "Table 2: 2 seats, Window")
	assert.Contains(t, out, `Menu "Main Menu" (Dinner; English, Turkish)`)
	assert.Contains(t, out, "Margherita Pizza")
	assert.Contains(t, out, "vegetarian")

	out, err = run(t, "--config-dir", configDir, "--data-dir", dataDir, "show", "--json")
	require.NoError(t, err)
	var views []restaurantView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 1)
	assert.Equal(t, 6, views[0].SeatCount)
	require.Len(t, views[0].Tables[0].Reservations, 1)
	assert.Equal(t, "2024-05-20", views[0].Tables[0].Reservations[0].Date)
	assert.NotEmpty(t, views[0].Tables[0].Reservations[0].CustomerID)
	assert.Equal(t, "28.00", views[0].Menus[0].Dishes[1].Price)
}

func TestDemoWithSQLiteBackend(t *testing.T) {
	fixClock(t)
	configDir, dataDir := testDirs(t)
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"),
		[]byte("backend: sqlite\ndata_dir: "+dataDir+"\n"), 0o644))

	_, err := run(t, "--config-dir", configDir, "demo")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dataDir, "extent.db"))
	assert.NoFileExists(t, filepath.Join(dataDir, "extent.json"))

	out, err := run(t, "--config-dir", configDir, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "BYT Bistro")
}

func TestShowWithoutExtent(t *testing.T) {
	configDir, dataDir := testDirs(t)

	_, err := run(t, "--config-dir", configDir, "--data-dir", dataDir, "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run bistro init or bistro demo first")
}

func TestShowEmptyExtent(t *testing.T) {
	configDir, dataDir := testDirs(t)
	_, err := run(t, "--config-dir", configDir, "--data-dir", dataDir, "init")
	require.NoError(t, err)

	out, err := run(t, "--config-dir", configDir, "--data-dir", dataDir, "show")
	require.NoError(t, err)
	assert.Equal(t, "No restaurants saved.\n", out)
}

func TestShowCorruptExtent(t *testing.T) {
	configDir, dataDir := testDirs(t)
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "extent.json"), []byte("{not json"), 0o644))

	_, err := run(t, "--config-dir", configDir, "--data-dir", dataDir, "show")
	assert.ErrorIs(t, err, types.ErrCorruptData)
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{name: "unknown backend", yaml: "backend: dolt\n", wantErr: types.ErrBackendUnknown},
		{name: "tax rate out of range", yaml: "tax_rate: \"0.5\"\n", wantErr: types.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configDir, dataDir := testDirs(t)
			require.NoError(t, os.MkdirAll(configDir, 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(tt.yaml), 0o644))

			_, err := run(t, "--config-dir", configDir, "--data-dir", dataDir, "init")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDotEnvSetsDataDir(t *testing.T) {
	configDir, _ := testDirs(t)
	work := t.TempDir()
	envDataDir := filepath.Join(work, "from-env")
	require.NoError(t, os.WriteFile(filepath.Join(work, ".env"), []byte(paths.EnvDataDir+"="+envDataDir+"\n"), 0o644))
	t.Chdir(work)
	// testDirs set the variable to empty; unset it so .env can supply it.
	require.NoError(t, os.Unsetenv(paths.EnvDataDir))

	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("backend: json\n"), 0o644))

	_, err := run(t, "--config-dir", configDir, "init")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(envDataDir, "extent.json"))
}

func TestRunScenario(t *testing.T) {
	e, err := extent.New(types.Config{Backend: types.BackendJSON, DataDir: t.TempDir()})
	require.NoError(t, err)
	today := types.Date(2024, 5, 19)

	r, err := runScenario(e, today)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Len())
	assert.Equal(t, types.OrderCompleted, r.order.Status())
	assert.Equal(t, 0, r.member.Credits())
	assert.Equal(t, types.PaymentCompleted, r.payment.Status())
	assert.Equal(t, r.order.ID(), r.payment.OrderID())
	assert.Equal(t, "42", r.payment.Amount().String())

	res := r.restaurant.Table(1).ReservationOn(types.Date(2024, 5, 20))
	require.NotNil(t, res)
	assert.Equal(t, types.ReservationConfirmed, res.Status())
	assert.Equal(t, r.member.Reservations(), []*types.Reservation{res})
}

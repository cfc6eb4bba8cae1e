package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	viper.Reset() // LoadConfig 使用全局 viper，测试间互相隔离
	dir := t.TempDir()
	content := "ENVIRONMENT=test\n" +
		"VENDORS_FILE=Train/vendors.csv\n" +
		"ORDERS_FILE=Train/orders.csv\n" +
		"LOCATIONS_FILE=Test/test_locations.csv\n" +
		"SUBMISSION_FILE=submission.csv\n" +
		"RECOMMENDER=preference\n" +
		"WORKER_COUNT=4\n" +
		"MAX_RESULTS=10\n" +
		"MIN_SCORE=10\n" +
		"TOP_SCORE_RATIO=0.1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o644))

	config, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "test", config.Environment)
	require.Equal(t, "Train/vendors.csv", config.VendorsFile)
	require.Equal(t, "submission.csv", config.SubmissionFile)
	require.Equal(t, "preference", config.Recommender)
	require.Equal(t, 4, config.WorkerCount)
	require.Equal(t, 10, config.MaxResults)
	require.Equal(t, 10.0, config.MinScore)
	require.Equal(t, 0.1, config.TopScoreRatio)
}

func TestLoadConfigMissingFile(t *testing.T) {
	viper.Reset()
	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
}

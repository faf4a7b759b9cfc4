package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FitCoach_AIProject/internal/config"
	"FitCoach_AIProject/internal/models"
)

func TestPlanCommand(t *testing.T) {
	mocked := `{"workout":"<ul><li>Run 5k</li></ul>","diet":"<p>Salad</p>","tips":"Stretch daily."}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		content, _ := json.Marshal(mocked)
		fmt.Fprintf(w, `{"id":"c1","object":"chat.completion","model":"gpt-4o-mini","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":%s}}]}`, content)
	}))
	defer srv.Close()

	t.Setenv("CONFIG_FILE", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", srv.URL+"/v1")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"plan", "--name", "Alex", "--age", "30", "--goal", "general-fitness"})
	require.NoError(t, rootCmd.Execute())

	var got models.Plan
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "Stretch daily.", got.Tips)
	assert.Contains(t, out.String(), "<li>Run 5k</li>")
	assert.Equal(t, "Alex", planProfile.Name)
}

func TestSetupLogging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	setupLogging(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	setupLogging(config.LogConfig{Level: "loud", Format: "json"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	setupLogging(config.LogConfig{Level: "info", Format: "json"}, &buf)
	zerolog.DefaultContextLogger.Info().Msg("hello")
	assert.True(t, strings.Contains(buf.String(), `"message":"hello"`))
}

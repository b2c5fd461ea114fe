package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordar/internal/config"
	"recordar/internal/model"
)

func sampleNotification() *model.Notification {
	return &model.Notification{
		Title:  model.NotificationTitle,
		Body:   "Water the plants",
		At:     time.Date(2025, 6, 16, 11, 0, 0, 0, time.UTC),
		Sound:  model.DefaultSound,
		Fields: map[string]string{"Tag": "home"},
	}
}

func TestGenericFormatter(t *testing.T) {
	data, err := (&GenericFormatter{}).Format(sampleNotification())
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "Reminder", payload["title"])
	assert.Equal(t, "Water the plants", payload["body"])
	assert.Equal(t, "2025-06-16T11:00:00Z", payload["at"])
}

func TestGenericFormatterTemplate(t *testing.T) {
	f := &GenericFormatter{Template: `{"msg": "{{title}}: {{body}} at {{at}}"}`}
	data, err := f.Format(sampleNotification())
	require.NoError(t, err)
	assert.Equal(t, `{"msg": "Reminder: Water the plants at 2025-06-16 11:00"}`, string(data))
}

func TestDiscordFormatter(t *testing.T) {
	data, err := (&DiscordFormatter{}).Format(sampleNotification())
	require.NoError(t, err)

	var payload struct {
		Embeds []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Fields      []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"fields"`
		} `json:"embeds"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	require.Len(t, payload.Embeds, 1)
	assert.Equal(t, "Reminder", payload.Embeds[0].Title)
	assert.Equal(t, "Water the plants", payload.Embeds[0].Description)
	require.Len(t, payload.Embeds[0].Fields, 1)
	assert.Equal(t, "Tag", payload.Embeds[0].Fields[0].Name)
}

func TestSlackFormatter(t *testing.T) {
	data, err := (&SlackFormatter{}).Format(sampleNotification())
	require.NoError(t, err)

	var payload struct {
		Text   string `json:"text"`
		Blocks []any  `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "Reminder: Water the plants", payload.Text)
	assert.Len(t, payload.Blocks, 1)
}

func TestFormatterFor(t *testing.T) {
	assert.IsType(t, &DiscordFormatter{}, FormatterFor(TypeDiscord, ""))
	assert.IsType(t, &SlackFormatter{}, FormatterFor(TypeSlack, ""))
	assert.IsType(t, &GenericFormatter{}, FormatterFor(TypeGeneric, ""))
	assert.IsType(t, &GenericFormatter{}, FormatterFor("unknown", ""))
}

func testHTTPConfig() config.HTTPConfig {
	return config.HTTPConfig{Timeout: 2 * time.Second, Retries: 0}
}

func TestDispatcherDeliver(t *testing.T) {
	var got atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload genericPayload
		json.NewDecoder(r.Body).Decode(&payload)
		got.Store(payload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := NewDispatcher(config.NotifyConfig{URL: server.URL, Type: TypeGeneric}, testHTTPConfig())
	require.NoError(t, d.Ready())
	require.NoError(t, d.Deliver(context.Background(), sampleNotification()))

	payload := got.Load().(genericPayload)
	assert.Equal(t, "Water the plants", payload.Body)
}

func TestDispatcherNoTarget(t *testing.T) {
	d := NewDispatcher(config.NotifyConfig{}, testHTTPConfig())
	assert.Error(t, d.Ready())
	assert.Error(t, d.Deliver(context.Background(), sampleNotification()))
}

func TestDispatcherServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	d := NewDispatcher(config.NotifyConfig{URL: server.URL, Type: TypeGeneric}, testHTTPConfig())
	err := d.Deliver(context.Background(), sampleNotification())
	assert.Error(t, err)
}

func TestHTTPClientNoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHTTPClient(2*time.Second, 3)
	result := client.Send(context.Background(), server.URL, "application/json", []byte("{}"))
	assert.Error(t, result.Error)
	assert.Equal(t, int32(1), calls.Load())
}

package bot

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const apiBase = "https://api.telegram.org/bot123:abc"

func newMockedTelegram(t *testing.T) *Telegram {
	t.Helper()
	tg := NewTelegram("123:abc", 555, zap.NewNop())
	httpmock.ActivateNonDefault(tg.client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return tg
}

func TestSendMessage(t *testing.T) {
	tg := newMockedTelegram(t)
	httpmock.RegisterResponder("POST", apiBase+"/sendMessage",
		httpmock.NewStringResponder(200, `{"ok":true,"result":{"message_id":1}}`))

	err := tg.Send(context.Background(), "pH alert")
	require.NoError(t, err)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestSendMessageAPIError(t *testing.T) {
	tg := newMockedTelegram(t)
	httpmock.RegisterResponder("POST", apiBase+"/sendMessage",
		httpmock.NewStringResponder(400, `{"ok":false,"description":"Bad Request: chat not found"}`))

	err := tg.Send(context.Background(), "pH alert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestSetWebhook(t *testing.T) {
	tg := newMockedTelegram(t)
	httpmock.RegisterResponder("POST", apiBase+"/setWebhook",
		httpmock.NewStringResponder(200, `{"ok":true,"result":true}`))

	err := tg.SetWebhook(context.Background(), "https://example.com/webhook")
	require.NoError(t, err)

	info := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, info["POST "+apiBase+"/setWebhook"])
}

func TestSetWebhookEmptyURLDeletes(t *testing.T) {
	tg := newMockedTelegram(t)
	httpmock.RegisterResponder("POST", apiBase+"/deleteWebhook",
		httpmock.NewStringResponder(200, `{"ok":true,"result":true}`))

	err := tg.SetWebhook(context.Background(), "")
	require.NoError(t, err)

	info := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, info["POST "+apiBase+"/deleteWebhook"])
	assert.Zero(t, info["POST "+apiBase+"/setWebhook"])
}

func TestWebhookInfo(t *testing.T) {
	tg := newMockedTelegram(t)
	httpmock.RegisterResponder("GET", apiBase+"/getWebhookInfo",
		httpmock.NewStringResponder(200, `{"ok":true,"result":{"url":"https://example.com/webhook","pending_update_count":2}}`))

	info, err := tg.WebhookInfo(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(info), "pending_update_count")
}

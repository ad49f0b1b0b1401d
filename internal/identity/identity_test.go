package identity

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const apiBase = "https://example.supabase.co/auth/v1"

func newMockedClient(t *testing.T) *Client {
	t.Helper()
	c := New("https://example.supabase.co/", "service-key", zap.NewNop())
	httpmock.ActivateNonDefault(c.client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestCreateUser(t *testing.T) {
	c := newMockedClient(t)
	httpmock.RegisterResponder("POST", apiBase+"/admin/users",
		httpmock.NewStringResponder(200, `{"id":"7f9c0e9e-1111-2222-3333-444455556666","email":"grower@example.com"}`))

	user, err := c.CreateUser(context.Background(), "grower@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "7f9c0e9e-1111-2222-3333-444455556666", user.ID)
	assert.Equal(t, "grower@example.com", user.Email)
}

func TestCreateUserServiceError(t *testing.T) {
	c := newMockedClient(t)
	httpmock.RegisterResponder("POST", apiBase+"/admin/users",
		httpmock.NewStringResponder(422, `{"msg":"email already registered"}`))

	_, err := c.CreateUser(context.Background(), "grower@example.com", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestUpdateUserSkipsEmptyFields(t *testing.T) {
	c := newMockedClient(t)
	httpmock.RegisterResponder("PUT", apiBase+"/admin/users/abc",
		httpmock.NewStringResponder(200, `{}`))

	// Nothing to change, no call made.
	require.NoError(t, c.UpdateUser(context.Background(), "abc", "", ""))
	assert.Zero(t, httpmock.GetTotalCallCount())

	require.NoError(t, c.UpdateUser(context.Background(), "abc", "new@example.com", ""))
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestDeleteUser(t *testing.T) {
	c := newMockedClient(t)
	httpmock.RegisterResponder("DELETE", apiBase+"/admin/users/abc",
		httpmock.NewStringResponder(200, `{}`))

	require.NoError(t, c.DeleteUser(context.Background(), "abc"))

	httpmock.Reset()
	httpmock.RegisterResponder("DELETE", apiBase+"/admin/users/abc",
		httpmock.NewStringResponder(500, `{"msg":"boom"}`))
	assert.Error(t, c.DeleteUser(context.Background(), "abc"))
}

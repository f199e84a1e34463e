package mcptool

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmarko/contribgraph/internal/contrib"
)

type stubAggregator struct {
	result contrib.Result
	called string
}

func (s *stubAggregator) Fetch(ctx context.Context, username string) (result contrib.Result) {
	s.called = username
	return s.result
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = toolName
	req.Params.Arguments = args
	return req
}

func TestHandle_NoUsernameSkipsLookup(t *testing.T) {
	agg := &stubAggregator{}
	tool := NewTool(agg)

	res, err := tool.Handle(context.Background(), callRequest(nil))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.IsError)
	assert.Empty(t, agg.called)
}

func TestHandle_ReturnsHTMLResource(t *testing.T) {
	agg := &stubAggregator{result: contrib.Result{
		User: &contrib.Profile{Login: "octocat"},
	}}
	tool := NewTool(agg)

	res, err := tool.Handle(context.Background(), callRequest(map[string]any{"username": "octocat"}))
	require.NoError(t, err)
	assert.Equal(t, "octocat", agg.called)

	require.Len(t, res.Content, 2)
	embedded, ok := res.Content[1].(mcp.EmbeddedResource)
	require.True(t, ok)

	text, ok := embedded.Resource.(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, widgetURI, text.URI)
	assert.Equal(t, "text/html", text.MIMEType)
	assert.Contains(t, text.Text, "@octocat")
}

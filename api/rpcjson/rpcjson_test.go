package rpcjson

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

type echoReq struct {
	Text string `json:"text"`
}

type echoResp struct {
	Text string `json:"text"`
}

type echoServer struct{ prefix string }

func (s echoServer) Echo(_ context.Context, req *echoReq) (*echoResp, error) {
	return &echoResp{Text: s.prefix + req.Text}, nil
}

func TestCodecRegistered(t *testing.T) {
	c := encoding.GetCodec(Name)
	require.NotNil(t, c)

	data, err := c.Marshal(&echoReq{Text: "hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hi"}`, string(data))

	var out echoReq
	require.NoError(t, c.Unmarshal(data, &out))
	assert.Equal(t, "hi", out.Text)
}

func TestUnary(t *testing.T) {
	h := Unary("/echo.v1.Echo/Echo", echoServer.Echo)
	dec := func(v any) error {
		v.(*echoReq).Text = "world"
		return nil
	}

	t.Run("no interceptor", func(t *testing.T) {
		resp, err := h(echoServer{prefix: "hello "}, context.Background(), dec, nil)
		require.NoError(t, err)
		assert.Equal(t, "hello world", resp.(*echoResp).Text)
	})

	t.Run("interceptor sees method", func(t *testing.T) {
		var seen string
		ic := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
			seen = info.FullMethod
			return handler(ctx, req)
		}
		resp, err := h(echoServer{prefix: "> "}, context.Background(), dec, ic)
		require.NoError(t, err)
		assert.Equal(t, "/echo.v1.Echo/Echo", seen)
		assert.Equal(t, "> world", resp.(*echoResp).Text)
	})
}

// Package settingsv1 is the settings.v1.SettingsService contract.
package settingsv1

import (
	"context"

	"github.com/dwikikusuma/storefront/api/rpcjson"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type GetSettingsRequest struct{}

type GetSettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings"`
}

type UpdateSettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

const (
	SettingsService_GetSettings_FullMethodName    = "/settings.v1.SettingsService/GetSettings"
	SettingsService_UpdateSettings_FullMethodName = "/settings.v1.SettingsService/UpdateSettings"
)

type SettingsServiceClient interface {
	GetSettings(ctx context.Context, in *GetSettingsRequest, opts ...grpc.CallOption) (*GetSettingsResponse, error)
	UpdateSettings(ctx context.Context, in *UpdateSettingsRequest, opts ...grpc.CallOption) (*UpdateSettingsResponse, error)
}

type settingsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSettingsServiceClient(cc grpc.ClientConnInterface) SettingsServiceClient {
	return &settingsServiceClient{cc: cc}
}

func (c *settingsServiceClient) GetSettings(ctx context.Context, in *GetSettingsRequest, opts ...grpc.CallOption) (*GetSettingsResponse, error) {
	return rpcjson.Invoke[GetSettingsResponse](ctx, c.cc, SettingsService_GetSettings_FullMethodName, in, opts...)
}

func (c *settingsServiceClient) UpdateSettings(ctx context.Context, in *UpdateSettingsRequest, opts ...grpc.CallOption) (*UpdateSettingsResponse, error) {
	return rpcjson.Invoke[UpdateSettingsResponse](ctx, c.cc, SettingsService_UpdateSettings_FullMethodName, in, opts...)
}

type SettingsServiceServer interface {
	GetSettings(context.Context, *GetSettingsRequest) (*GetSettingsResponse, error)
	UpdateSettings(context.Context, *UpdateSettingsRequest) (*UpdateSettingsResponse, error)
}

type UnimplementedSettingsServiceServer struct{}

func (UnimplementedSettingsServiceServer) GetSettings(context.Context, *GetSettingsRequest) (*GetSettingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSettings not implemented")
}
func (UnimplementedSettingsServiceServer) UpdateSettings(context.Context, *UpdateSettingsRequest) (*UpdateSettingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateSettings not implemented")
}

func RegisterSettingsServiceServer(s grpc.ServiceRegistrar, srv SettingsServiceServer) {
	s.RegisterService(&SettingsService_ServiceDesc, srv)
}

var SettingsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "settings.v1.SettingsService",
	HandlerType: (*SettingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetSettings", Handler: rpcjson.Unary(SettingsService_GetSettings_FullMethodName, SettingsServiceServer.GetSettings)},
		{MethodName: "UpdateSettings", Handler: rpcjson.Unary(SettingsService_UpdateSettings_FullMethodName, SettingsServiceServer.UpdateSettings)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/settingsv1/settings.go",
}

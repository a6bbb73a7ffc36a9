package grpc

import (
	"context"
	"errors"

	settingsv1 "github.com/dwikikusuma/storefront/api/settingsv1"
	"github.com/dwikikusuma/storefront/internal/settings/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	settingsv1.UnimplementedSettingsServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetSettings(ctx context.Context, _ *settingsv1.GetSettingsRequest) (*settingsv1.GetSettingsResponse, error) {
	all, err := s.svc.GetAll(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "error getting settings: %v", err)
	}
	return &settingsv1.GetSettingsResponse{Settings: all}, nil
}

func (s *Server) UpdateSettings(ctx context.Context, req *settingsv1.UpdateSettingsRequest) (*settingsv1.UpdateSettingsResponse, error) {
	all, err := s.svc.Update(ctx, req.Settings)
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "error updating settings: %v", err)
	}
	return &settingsv1.UpdateSettingsResponse{Settings: all}, nil
}

// Package grpc exposes the session and student services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/studentsapi/internal/logging"
	pb "github.com/dmitrijs2005/studentsapi/internal/proto"
	"github.com/dmitrijs2005/studentsapi/internal/server/models"
	"github.com/dmitrijs2005/studentsapi/internal/server/services"
	"google.golang.org/grpc"
)

// SessionService is the part of services.SessionService the transport uses.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// StudentService is the part of services.StudentService the transport uses.
type StudentService interface {
	FindOne(ctx context.Context, id int64) (*models.Student, error)
	FindAll(ctx context.Context) ([]*models.Student, error)
	Create(ctx context.Context, f models.StudentFields) (*models.Student, error)
	Update(ctx context.Context, id int64, f models.StudentFields) (*models.Student, error)
	Delete(ctx context.Context, id int64) (*models.Student, error)
}

type ExportService interface {
	Export(ctx context.Context) (*services.ExportResult, error)
}

type GRPCServer struct {
	pb.UnimplementedStudentServiceServer
	address  string
	sessions SessionService
	students StudentService
	exports  ExportService
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, ss SessionService, st StudentService, ex ExportService) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		sessions: ss,
		students: st,
		exports:  ex,
	}
}

// NewServer builds a grpc.Server with the interceptor chain and this
// service registered, without binding a listener.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterStudentServiceServer(srv, s)
	return srv
}

// Run serves on the configured address until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

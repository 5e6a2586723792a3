package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/studentsapi/internal/common"
	"github.com/dmitrijs2005/studentsapi/internal/server/requests"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var kindCodes = map[error]codes.Code{
	common.ErrorUnauthorized: codes.Unauthenticated,
	common.ErrorNotFound:     codes.NotFound,
	common.ErrorConflict:     codes.AlreadyExists,
	common.ErrorValidation:   codes.InvalidArgument,
}

// toStatus maps a service error to a gRPC status carrying the stable label
// of its kind. Internal errors are logged; the caller only sees
// "internal error".
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	kind := common.Kind(err)
	code, ok := kindCodes[kind]
	if !ok {
		s.logger.Error(ctx, "internal error", "error", err.Error())
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
	if errors.Is(kind, common.ErrorValidation) {
		return status.Error(code, err.Error())
	}
	return status.Error(code, kind.Error())
}

func (s *GRPCServer) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := requests.DecodeLogin(requests.FromStruct(req))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	res, err := s.sessions.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return structpb.NewStruct(map[string]any{
		"access_token": res.Token,
		"token_type":   res.TokenType,
	})
}

func (s *GRPCServer) Logout(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	if err := s.sessions.Logout(ctx, tokenFromContext(ctx)); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return structpb.NewStruct(map[string]any{"message": common.LogoutMessage})
}

func (s *GRPCServer) Student(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := requests.DecodeStudentID(requests.FromStruct(req))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	st, err := s.students.FindOne(ctx, in.ID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return studentToStruct(st)
}

func (s *GRPCServer) Students(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	list, err := s.students.FindAll(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return studentsToStruct(list)
}

func (s *GRPCServer) CreateStudent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := requests.DecodeCreateStudent(requests.FromStruct(req))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	st, err := s.students.Create(ctx, in.Fields())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return studentToStruct(st)
}

func (s *GRPCServer) UpdateStudent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := requests.DecodeUpdateStudent(requests.FromStruct(req))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	st, err := s.students.Update(ctx, in.ID, in.Fields)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return studentToStruct(st)
}

func (s *GRPCServer) DeleteStudent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := requests.DecodeStudentID(requests.FromStruct(req))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	st, err := s.students.Delete(ctx, in.ID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return studentToStruct(st)
}

func (s *GRPCServer) ExportStudents(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	res, err := s.exports.Export(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return structpb.NewStruct(map[string]any{"key": res.Key, "url": res.URL})
}

func (s *GRPCServer) Ping(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{"status": "OK"})
}

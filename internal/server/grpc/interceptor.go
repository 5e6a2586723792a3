package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/studentsapi/internal/common"
	pb "github.com/dmitrijs2005/studentsapi/internal/proto"
	"github.com/dmitrijs2005/studentsapi/internal/server/models"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	userKey  ctxKey = "user"
	tokenKey ctxKey = "token"
)

// publicMethods are served without a bearer token.
var publicMethods = map[string]struct{}{
	pb.StudentService_Login_FullMethodName: {},
	pb.StudentService_Ping_FullMethodName:  {},
}

// UserFromContext returns the user placed in ctx by the auth interceptor.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok
}

func tokenFromContext(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey).(string)
	return t
}

// bearerToken extracts the token from "authorization: Bearer <token>".
// Anything else yields "".
func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.AuthorizationHeaderName)
	if len(values) == 0 {
		return ""
	}
	return common.ParseBearer(values[0])
}

// accessTokenInterceptor rejects calls to protected methods unless the
// bearer token resolves to a user, which is then stored in the context.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, public := publicMethods[info.FullMethod]; public {
		return handler(ctx, req)
	}

	token := bearerToken(ctx)
	user, err := s.sessions.Authenticate(ctx, token)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	ctx = context.WithValue(ctx, userKey, user)
	ctx = context.WithValue(ctx, tokenKey, token)
	return handler(ctx, req)
}

// loggingInterceptor logs every call with a fresh request id.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	log := s.logger.With("request_id", uuid.NewString(), "method", info.FullMethod)

	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"code", code.String(), "duration", time.Since(start)}
	if err != nil {
		log.Warn(ctx, "rpc failed", append(args, "error", status.Convert(err).Message())...)
	} else {
		log.Info(ctx, "rpc", args...)
	}
	return resp, err
}

package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/studentsapi/internal/client/models"
	"github.com/dmitrijs2005/studentsapi/internal/common"
	pb "github.com/dmitrijs2005/studentsapi/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.StudentServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, common.TokenType+" "+token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current token, if any, to each call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewStudentsClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewStudentServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) LoggedIn() bool {
	return s.accessToken != ""
}

func (s *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &structpb.Struct{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.AsMap()["status"] != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{"email": email, "password": password})
	if err != nil {
		return err
	}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	token, _ := resp.AsMap()["access_token"].(string)
	if token == "" {
		return fmt.Errorf("login response carries no token")
	}
	s.accessToken = token
	return nil
}

// Logout revokes the token on the server and forgets it locally. The token
// is dropped even when the server already considers it invalid.
func (s *GRPCClient) Logout(ctx context.Context) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	_, err := s.client.Logout(ctx, &structpb.Struct{})
	err = s.mapError(err)
	if err == nil || errors.Is(err, common.ErrorUnauthorized) {
		s.accessToken = ""
	}
	return err
}

func (s *GRPCClient) ListStudents(ctx context.Context) ([]*models.Student, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Students(ctx, &structpb.Struct{})
	if err != nil {
		return nil, s.mapError(err)
	}

	items, _ := resp.AsMap()["students"].([]any)
	list := make([]*models.Student, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		list = append(list, studentFromMap(m))
	}
	return list, nil
}

func (s *GRPCClient) studentCall(ctx context.Context,
	call func(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error),
	fields map[string]any) (*models.Student, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	resp, err := call(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return studentFromMap(resp.AsMap()), nil
}

func (s *GRPCClient) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.studentCall(ctx, s.client.Student, map[string]any{"id": id})
}

func (s *GRPCClient) CreateStudent(ctx context.Context, fields map[string]any) (*models.Student, error) {
	return s.studentCall(ctx, s.client.CreateStudent, fields)
}

func (s *GRPCClient) UpdateStudent(ctx context.Context, id string, fields map[string]any) (*models.Student, error) {
	req := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		req[k] = v
	}
	req["id"] = id
	return s.studentCall(ctx, s.client.UpdateStudent, req)
}

func (s *GRPCClient) DeleteStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.studentCall(ctx, s.client.DeleteStudent, map[string]any{"id": id})
}

func (s *GRPCClient) ExportStudents(ctx context.Context) (*models.Export, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ExportStudents(ctx, &structpb.Struct{})
	if err != nil {
		return nil, s.mapError(err)
	}
	m := resp.AsMap()
	key, _ := m["key"].(string)
	url, _ := m["url"].(string)
	return &models.Export{Key: key, URL: url}, nil
}

func studentFromMap(m map[string]any) *models.Student {
	str := func(k string) string {
		v, _ := m[k].(string)
		return v
	}
	score, _ := m["score"].(float64)
	return &models.Student{
		ID:        str("id"),
		Firstname: str("firstname"),
		Lastname:  str("lastname"),
		Email:     str("email"),
		Address:   str("address"),
		Score:     score,
		CreatedAt: str("created_at"),
		UpdatedAt: str("updated_at"),
	}
}

var codeKinds = map[codes.Code]error{
	codes.Unauthenticated:  common.ErrorUnauthorized,
	codes.PermissionDenied: common.ErrorUnauthorized,
	codes.NotFound:         common.ErrorNotFound,
	codes.AlreadyExists:    common.ErrorConflict,
	codes.InvalidArgument:  common.ErrorValidation,
}

// mapError turns a gRPC status into the matching error kind. The server's
// detail after the kind label is preserved.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	}

	kind, ok := codeKinds[st.Code()]
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	detail := strings.TrimPrefix(st.Message(), kind.Error())
	if detail == "" {
		return kind
	}
	if detail == st.Message() {
		detail = ": " + detail
	}
	return fmt.Errorf("%w%s", kind, detail)
}

// Package proto defines the students.v1.StudentService gRPC contract. Every
// method takes and returns a google.protobuf.Struct, so the service is
// described here directly instead of being generated from a .proto file.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "students.v1.StudentService"

const (
	StudentService_Login_FullMethodName          = "/" + ServiceName + "/Login"
	StudentService_Logout_FullMethodName         = "/" + ServiceName + "/Logout"
	StudentService_Student_FullMethodName        = "/" + ServiceName + "/Student"
	StudentService_Students_FullMethodName       = "/" + ServiceName + "/Students"
	StudentService_CreateStudent_FullMethodName  = "/" + ServiceName + "/CreateStudent"
	StudentService_UpdateStudent_FullMethodName  = "/" + ServiceName + "/UpdateStudent"
	StudentService_DeleteStudent_FullMethodName  = "/" + ServiceName + "/DeleteStudent"
	StudentService_ExportStudents_FullMethodName = "/" + ServiceName + "/ExportStudents"
	StudentService_Ping_FullMethodName           = "/" + ServiceName + "/Ping"
)

// StudentServiceServer is the server API for StudentService.
type StudentServiceServer interface {
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Logout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Student(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Students(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateStudent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateStudent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteStudent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportStudents(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedStudentServiceServer answers every method with
// codes.Unimplemented. Embed it to stay forward compatible.
type UnimplementedStudentServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedStudentServiceServer) Login(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented("Login")
}
func (UnimplementedStudentServiceServer) Logout(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented("Logout")
}
func (UnimplementedStudentServiceServer) Student(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented("Student")
}
func (UnimplementedStudentServiceServer) Students(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented("Students")
}
func (UnimplementedStudentServiceServer) CreateStudent(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented("CreateStudent")
}
func (UnimplementedStudentServiceServer) UpdateStudent(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented("UpdateStudent")
}
func (UnimplementedStudentServiceServer) DeleteStudent(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented("DeleteStudent")
}
func (UnimplementedStudentServiceServer) ExportStudents(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented("ExportStudents")
}
func (UnimplementedStudentServiceServer) Ping(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented("Ping")
}

type call func(StudentServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, fn call) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return fn(srv.(StudentServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return fn(srv.(StudentServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// StudentService_ServiceDesc is the grpc.ServiceDesc for StudentService.
var StudentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StudentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Login", Handler: unaryHandler(StudentService_Login_FullMethodName, StudentServiceServer.Login)},
		{MethodName: "Logout", Handler: unaryHandler(StudentService_Logout_FullMethodName, StudentServiceServer.Logout)},
		{MethodName: "Student", Handler: unaryHandler(StudentService_Student_FullMethodName, StudentServiceServer.Student)},
		{MethodName: "Students", Handler: unaryHandler(StudentService_Students_FullMethodName, StudentServiceServer.Students)},
		{MethodName: "CreateStudent", Handler: unaryHandler(StudentService_CreateStudent_FullMethodName, StudentServiceServer.CreateStudent)},
		{MethodName: "UpdateStudent", Handler: unaryHandler(StudentService_UpdateStudent_FullMethodName, StudentServiceServer.UpdateStudent)},
		{MethodName: "DeleteStudent", Handler: unaryHandler(StudentService_DeleteStudent_FullMethodName, StudentServiceServer.DeleteStudent)},
		{MethodName: "ExportStudents", Handler: unaryHandler(StudentService_ExportStudents_FullMethodName, StudentServiceServer.ExportStudents)},
		{MethodName: "Ping", Handler: unaryHandler(StudentService_Ping_FullMethodName, StudentServiceServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "students/v1/students.proto",
}

func RegisterStudentServiceServer(s grpc.ServiceRegistrar, srv StudentServiceServer) {
	s.RegisterService(&StudentService_ServiceDesc, srv)
}

// StudentServiceClient is the client API for StudentService.
type StudentServiceClient interface {
	Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Logout(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Student(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Students(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreateStudent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateStudent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteStudent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ExportStudents(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type studentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStudentServiceClient(cc grpc.ClientConnInterface) StudentServiceClient {
	return &studentServiceClient{cc}
}

func (c *studentServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *studentServiceClient) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, StudentService_Login_FullMethodName, in, opts)
}
func (c *studentServiceClient) Logout(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, StudentService_Logout_FullMethodName, in, opts)
}
func (c *studentServiceClient) Student(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, StudentService_Student_FullMethodName, in, opts)
}
func (c *studentServiceClient) Students(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, StudentService_Students_FullMethodName, in, opts)
}
func (c *studentServiceClient) CreateStudent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, StudentService_CreateStudent_FullMethodName, in, opts)
}
func (c *studentServiceClient) UpdateStudent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, StudentService_UpdateStudent_FullMethodName, in, opts)
}
func (c *studentServiceClient) DeleteStudent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, StudentService_DeleteStudent_FullMethodName, in, opts)
}
func (c *studentServiceClient) ExportStudents(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, StudentService_ExportStudents_FullMethodName, in, opts)
}
func (c *studentServiceClient) Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, StudentService_Ping_FullMethodName, in, opts)
}

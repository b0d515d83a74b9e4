// Package v1alpha1 serves the generator over gRPC. Messages travel as
// google.protobuf.Struct documents, so the service is declared here rather than
// generated from a .proto file.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "traitforge.generator.v1alpha1.GeneratorService"

// Full method names
const (
	MethodResolveAttributes  = "/" + ServiceName + "/ResolveAttributes"
	MethodGenerateCollection = "/" + ServiceName + "/GenerateCollection"
	MethodGetRun             = "/" + ServiceName + "/GetRun"
	MethodGetToken           = "/" + ServiceName + "/GetToken"
	MethodListRuns           = "/" + ServiceName + "/ListRuns"
)

// GeneratorServiceServer is the server API for the generator service
type GeneratorServiceServer interface {
	ResolveAttributes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GenerateCollection(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRun(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetToken(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListRuns(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(GeneratorServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GeneratorServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GeneratorServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// GeneratorServiceDesc describes the generator service for grpc.Server registration
var GeneratorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GeneratorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ResolveAttributes",
			Handler:    unaryHandler(MethodResolveAttributes, GeneratorServiceServer.ResolveAttributes),
		},
		{
			MethodName: "GenerateCollection",
			Handler:    unaryHandler(MethodGenerateCollection, GeneratorServiceServer.GenerateCollection),
		},
		{
			MethodName: "GetRun",
			Handler:    unaryHandler(MethodGetRun, GeneratorServiceServer.GetRun),
		},
		{
			MethodName: "GetToken",
			Handler:    unaryHandler(MethodGetToken, GeneratorServiceServer.GetToken),
		},
		{
			MethodName: "ListRuns",
			Handler:    unaryHandler(MethodListRuns, GeneratorServiceServer.ListRuns),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "traitforge/generator/v1alpha1/generator.proto",
}

// RegisterGeneratorServiceServer registers srv with a gRPC server
func RegisterGeneratorServiceServer(s grpc.ServiceRegistrar, srv GeneratorServiceServer) {
	s.RegisterService(&GeneratorServiceDesc, srv)
}

// GeneratorServiceClient is the client API for the generator service
type GeneratorServiceClient interface {
	ResolveAttributes(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GenerateCollection(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetRun(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetToken(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListRuns(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type generatorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGeneratorServiceClient creates a client over an existing connection
func NewGeneratorServiceClient(cc grpc.ClientConnInterface) GeneratorServiceClient {
	return &generatorServiceClient{cc: cc}
}

func (c *generatorServiceClient) invoke(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *generatorServiceClient) ResolveAttributes(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodResolveAttributes, in, opts...)
}

func (c *generatorServiceClient) GenerateCollection(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGenerateCollection, in, opts...)
}

func (c *generatorServiceClient) GetRun(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetRun, in, opts...)
}

func (c *generatorServiceClient) GetToken(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetToken, in, opts...)
}

func (c *generatorServiceClient) ListRuns(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListRuns, in, opts...)
}

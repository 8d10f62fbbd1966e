// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: channel.proto

package channel

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AutomationChannel_Events_FullMethodName        = "/channel.AutomationChannel/Events"
	AutomationChannel_Self_FullMethodName          = "/channel.AutomationChannel/Self"
	AutomationChannel_ResolveInvite_FullMethodName = "/channel.AutomationChannel/ResolveInvite"
	AutomationChannel_GetGroup_FullMethodName      = "/channel.AutomationChannel/GetGroup"
	AutomationChannel_SyncHistory_FullMethodName   = "/channel.AutomationChannel/SyncHistory"
	AutomationChannel_ResolveNumber_FullMethodName = "/channel.AutomationChannel/ResolveNumber"
	AutomationChannel_Logout_FullMethodName        = "/channel.AutomationChannel/Logout"
	AutomationChannel_Shutdown_FullMethodName      = "/channel.AutomationChannel/Shutdown"
)

// AutomationChannelClient is the client API for AutomationChannel service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AutomationChannel is the sidecar contract: one browser-backed messaging
// account driven over gRPC. The master owns the lifecycle; the sidecar owns
// the browser.
type AutomationChannelClient interface {
	// Events streams lifecycle events from initialization until shutdown.
	Events(ctx context.Context, in *EventsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ChannelEvent], error)
	Self(ctx context.Context, in *SelfRequest, opts ...grpc.CallOption) (*Identity, error)
	ResolveInvite(ctx context.Context, in *ResolveInviteRequest, opts ...grpc.CallOption) (*InviteInfo, error)
	GetGroup(ctx context.Context, in *GetGroupRequest, opts ...grpc.CallOption) (*GroupRecord, error)
	SyncHistory(ctx context.Context, in *SyncHistoryRequest, opts ...grpc.CallOption) (*SyncHistoryResponse, error)
	ResolveNumber(ctx context.Context, in *ResolveNumberRequest, opts ...grpc.CallOption) (*Identity, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	Shutdown(ctx context.Context, in *ShutdownRequest, opts ...grpc.CallOption) (*ShutdownResponse, error)
}

type automationChannelClient struct {
	cc grpc.ClientConnInterface
}

func NewAutomationChannelClient(cc grpc.ClientConnInterface) AutomationChannelClient {
	return &automationChannelClient{cc}
}

func (c *automationChannelClient) Events(ctx context.Context, in *EventsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ChannelEvent], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &AutomationChannel_ServiceDesc.Streams[0], AutomationChannel_Events_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[EventsRequest, ChannelEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AutomationChannel_EventsClient = grpc.ServerStreamingClient[ChannelEvent]

func (c *automationChannelClient) Self(ctx context.Context, in *SelfRequest, opts ...grpc.CallOption) (*Identity, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Identity)
	err := c.cc.Invoke(ctx, AutomationChannel_Self_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *automationChannelClient) ResolveInvite(ctx context.Context, in *ResolveInviteRequest, opts ...grpc.CallOption) (*InviteInfo, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InviteInfo)
	err := c.cc.Invoke(ctx, AutomationChannel_ResolveInvite_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *automationChannelClient) GetGroup(ctx context.Context, in *GetGroupRequest, opts ...grpc.CallOption) (*GroupRecord, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GroupRecord)
	err := c.cc.Invoke(ctx, AutomationChannel_GetGroup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *automationChannelClient) SyncHistory(ctx context.Context, in *SyncHistoryRequest, opts ...grpc.CallOption) (*SyncHistoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SyncHistoryResponse)
	err := c.cc.Invoke(ctx, AutomationChannel_SyncHistory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *automationChannelClient) ResolveNumber(ctx context.Context, in *ResolveNumberRequest, opts ...grpc.CallOption) (*Identity, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Identity)
	err := c.cc.Invoke(ctx, AutomationChannel_ResolveNumber_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *automationChannelClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LogoutResponse)
	err := c.cc.Invoke(ctx, AutomationChannel_Logout_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *automationChannelClient) Shutdown(ctx context.Context, in *ShutdownRequest, opts ...grpc.CallOption) (*ShutdownResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ShutdownResponse)
	err := c.cc.Invoke(ctx, AutomationChannel_Shutdown_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AutomationChannelServer is the server API for AutomationChannel service.
// All implementations must embed UnimplementedAutomationChannelServer
// for forward compatibility.
//
// AutomationChannel is the sidecar contract: one browser-backed messaging
// account driven over gRPC. The master owns the lifecycle; the sidecar owns
// the browser.
type AutomationChannelServer interface {
	// Events streams lifecycle events from initialization until shutdown.
	Events(*EventsRequest, grpc.ServerStreamingServer[ChannelEvent]) error
	Self(context.Context, *SelfRequest) (*Identity, error)
	ResolveInvite(context.Context, *ResolveInviteRequest) (*InviteInfo, error)
	GetGroup(context.Context, *GetGroupRequest) (*GroupRecord, error)
	SyncHistory(context.Context, *SyncHistoryRequest) (*SyncHistoryResponse, error)
	ResolveNumber(context.Context, *ResolveNumberRequest) (*Identity, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	Shutdown(context.Context, *ShutdownRequest) (*ShutdownResponse, error)
	mustEmbedUnimplementedAutomationChannelServer()
}

// UnimplementedAutomationChannelServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAutomationChannelServer struct{}

func (UnimplementedAutomationChannelServer) Events(*EventsRequest, grpc.ServerStreamingServer[ChannelEvent]) error {
	return status.Errorf(codes.Unimplemented, "method Events not implemented")
}
func (UnimplementedAutomationChannelServer) Self(context.Context, *SelfRequest) (*Identity, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Self not implemented")
}
func (UnimplementedAutomationChannelServer) ResolveInvite(context.Context, *ResolveInviteRequest) (*InviteInfo, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveInvite not implemented")
}
func (UnimplementedAutomationChannelServer) GetGroup(context.Context, *GetGroupRequest) (*GroupRecord, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetGroup not implemented")
}
func (UnimplementedAutomationChannelServer) SyncHistory(context.Context, *SyncHistoryRequest) (*SyncHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SyncHistory not implemented")
}
func (UnimplementedAutomationChannelServer) ResolveNumber(context.Context, *ResolveNumberRequest) (*Identity, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveNumber not implemented")
}
func (UnimplementedAutomationChannelServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedAutomationChannelServer) Shutdown(context.Context, *ShutdownRequest) (*ShutdownResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Shutdown not implemented")
}
func (UnimplementedAutomationChannelServer) mustEmbedUnimplementedAutomationChannelServer() {}
func (UnimplementedAutomationChannelServer) testEmbeddedByValue()                           {}

// UnsafeAutomationChannelServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AutomationChannelServer will
// result in compilation errors.
type UnsafeAutomationChannelServer interface {
	mustEmbedUnimplementedAutomationChannelServer()
}

func RegisterAutomationChannelServer(s grpc.ServiceRegistrar, srv AutomationChannelServer) {
	// If the following call pancis, it indicates UnimplementedAutomationChannelServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AutomationChannel_ServiceDesc, srv)
}

func _AutomationChannel_Events_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(EventsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AutomationChannelServer).Events(m, &grpc.GenericServerStream[EventsRequest, ChannelEvent]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AutomationChannel_EventsServer = grpc.ServerStreamingServer[ChannelEvent]

func _AutomationChannel_Self_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SelfRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationChannelServer).Self(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AutomationChannel_Self_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationChannelServer).Self(ctx, req.(*SelfRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AutomationChannel_ResolveInvite_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveInviteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationChannelServer).ResolveInvite(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AutomationChannel_ResolveInvite_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationChannelServer).ResolveInvite(ctx, req.(*ResolveInviteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AutomationChannel_GetGroup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetGroupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationChannelServer).GetGroup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AutomationChannel_GetGroup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationChannelServer).GetGroup(ctx, req.(*GetGroupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AutomationChannel_SyncHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SyncHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationChannelServer).SyncHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AutomationChannel_SyncHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationChannelServer).SyncHistory(ctx, req.(*SyncHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AutomationChannel_ResolveNumber_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveNumberRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationChannelServer).ResolveNumber(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AutomationChannel_ResolveNumber_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationChannelServer).ResolveNumber(ctx, req.(*ResolveNumberRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AutomationChannel_Logout_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LogoutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationChannelServer).Logout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AutomationChannel_Logout_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationChannelServer).Logout(ctx, req.(*LogoutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AutomationChannel_Shutdown_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ShutdownRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationChannelServer).Shutdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AutomationChannel_Shutdown_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationChannelServer).Shutdown(ctx, req.(*ShutdownRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AutomationChannel_ServiceDesc is the grpc.ServiceDesc for AutomationChannel service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AutomationChannel_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "channel.AutomationChannel",
	HandlerType: (*AutomationChannelServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Self",
			Handler:    _AutomationChannel_Self_Handler,
		},
		{
			MethodName: "ResolveInvite",
			Handler:    _AutomationChannel_ResolveInvite_Handler,
		},
		{
			MethodName: "GetGroup",
			Handler:    _AutomationChannel_GetGroup_Handler,
		},
		{
			MethodName: "SyncHistory",
			Handler:    _AutomationChannel_SyncHistory_Handler,
		},
		{
			MethodName: "ResolveNumber",
			Handler:    _AutomationChannel_ResolveNumber_Handler,
		},
		{
			MethodName: "Logout",
			Handler:    _AutomationChannel_Logout_Handler,
		},
		{
			MethodName: "Shutdown",
			Handler:    _AutomationChannel_Shutdown_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Events",
			Handler:       _AutomationChannel_Events_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "channel.proto",
}

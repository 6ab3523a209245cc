// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: rules/v1/ruletracker.proto

package rulespb

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
	DocumentsService_UploadDocument_FullMethodName        = "/rules.v1.DocumentsService/UploadDocument"
	DocumentsService_GetDocument_FullMethodName           = "/rules.v1.DocumentsService/GetDocument"
	DocumentsService_ListDocuments_FullMethodName         = "/rules.v1.DocumentsService/ListDocuments"
	DocumentsService_ProcessDocument_FullMethodName       = "/rules.v1.DocumentsService/ProcessDocument"
	DocumentsService_ProcessDocumentWithAI_FullMethodName = "/rules.v1.DocumentsService/ProcessDocumentWithAI"
	DocumentsService_ResetDocument_FullMethodName         = "/rules.v1.DocumentsService/ResetDocument"
)

// DocumentsServiceClient is the client API for DocumentsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DocumentsService manages uploaded rule documents and their
// processing lifecycle.
type DocumentsServiceClient interface {
	UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error)
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
	// ProcessDocument runs local extraction synchronously.
	ProcessDocument(ctx context.Context, in *ProcessDocumentRequest, opts ...grpc.CallOption) (*ProcessDocumentResponse, error)
	// ProcessDocumentWithAI dispatches the document to the analysis
	// service via the background queue.
	ProcessDocumentWithAI(ctx context.Context, in *ProcessDocumentWithAIRequest, opts ...grpc.CallOption) (*ProcessDocumentWithAIResponse, error)
	// ResetDocument returns a terminal document to PENDING.
	ResetDocument(ctx context.Context, in *ResetDocumentRequest, opts ...grpc.CallOption) (*ResetDocumentResponse, error)
}

type documentsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentsServiceClient(cc grpc.ClientConnInterface) DocumentsServiceClient {
	return &documentsServiceClient{cc}
}

func (c *documentsServiceClient) UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_UploadDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ProcessDocument(ctx context.Context, in *ProcessDocumentRequest, opts ...grpc.CallOption) (*ProcessDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ProcessDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ProcessDocumentWithAI(ctx context.Context, in *ProcessDocumentWithAIRequest, opts ...grpc.CallOption) (*ProcessDocumentWithAIResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessDocumentWithAIResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ProcessDocumentWithAI_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ResetDocument(ctx context.Context, in *ResetDocumentRequest, opts ...grpc.CallOption) (*ResetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResetDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ResetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentsServiceServer is the server API for DocumentsService service.
// All implementations must embed UnimplementedDocumentsServiceServer
// for forward compatibility.
//
// DocumentsService manages uploaded rule documents and their
// processing lifecycle.
type DocumentsServiceServer interface {
	UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error)
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	// ProcessDocument runs local extraction synchronously.
	ProcessDocument(context.Context, *ProcessDocumentRequest) (*ProcessDocumentResponse, error)
	// ProcessDocumentWithAI dispatches the document to the analysis
	// service via the background queue.
	ProcessDocumentWithAI(context.Context, *ProcessDocumentWithAIRequest) (*ProcessDocumentWithAIResponse, error)
	// ResetDocument returns a terminal document to PENDING.
	ResetDocument(context.Context, *ResetDocumentRequest) (*ResetDocumentResponse, error)
	mustEmbedUnimplementedDocumentsServiceServer()
}

// UnimplementedDocumentsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocumentsServiceServer struct{}

func (UnimplementedDocumentsServiceServer) UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedDocumentsServiceServer) ProcessDocument(context.Context, *ProcessDocumentRequest) (*ProcessDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProcessDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) ProcessDocumentWithAI(context.Context, *ProcessDocumentWithAIRequest) (*ProcessDocumentWithAIResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProcessDocumentWithAI not implemented")
}
func (UnimplementedDocumentsServiceServer) ResetDocument(context.Context, *ResetDocumentRequest) (*ResetDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) mustEmbedUnimplementedDocumentsServiceServer() {}
func (UnimplementedDocumentsServiceServer) testEmbeddedByValue()                          {}

// UnsafeDocumentsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocumentsServiceServer will
// result in compilation errors.
type UnsafeDocumentsServiceServer interface {
	mustEmbedUnimplementedDocumentsServiceServer()
}

func RegisterDocumentsServiceServer(s grpc.ServiceRegistrar, srv DocumentsServiceServer) {
	// If the following call panics, it indicates UnimplementedDocumentsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocumentsService_ServiceDesc, srv)
}

func _DocumentsService_UploadDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).UploadDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_UploadDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).UploadDocument(ctx, req.(*UploadDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ProcessDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ProcessDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ProcessDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ProcessDocument(ctx, req.(*ProcessDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ProcessDocumentWithAI_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessDocumentWithAIRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ProcessDocumentWithAI(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ProcessDocumentWithAI_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ProcessDocumentWithAI(ctx, req.(*ProcessDocumentWithAIRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ResetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ResetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ResetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ResetDocument(ctx, req.(*ResetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocumentsService_ServiceDesc is the grpc.ServiceDesc for DocumentsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocumentsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rules.v1.DocumentsService",
	HandlerType: (*DocumentsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadDocument",
			Handler:    _DocumentsService_UploadDocument_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _DocumentsService_GetDocument_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _DocumentsService_ListDocuments_Handler,
		},
		{
			MethodName: "ProcessDocument",
			Handler:    _DocumentsService_ProcessDocument_Handler,
		},
		{
			MethodName: "ProcessDocumentWithAI",
			Handler:    _DocumentsService_ProcessDocumentWithAI_Handler,
		},
		{
			MethodName: "ResetDocument",
			Handler:    _DocumentsService_ResetDocument_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rules/v1/ruletracker.proto",
}

const (
	ValidationService_ListValidationItems_FullMethodName = "/rules.v1.ValidationService/ListValidationItems"
	ValidationService_GetValidationItem_FullMethodName   = "/rules.v1.ValidationService/GetValidationItem"
	ValidationService_ApproveItem_FullMethodName         = "/rules.v1.ValidationService/ApproveItem"
	ValidationService_RejectItem_FullMethodName          = "/rules.v1.ValidationService/RejectItem"
	ValidationService_FlagItemForReview_FullMethodName   = "/rules.v1.ValidationService/FlagItemForReview"
	ValidationService_GetPendingCount_FullMethodName     = "/rules.v1.ValidationService/GetPendingCount"
)

// ValidationServiceClient is the client API for ValidationService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ValidationService drives human review over extracted candidates.
type ValidationServiceClient interface {
	ListValidationItems(ctx context.Context, in *ListValidationItemsRequest, opts ...grpc.CallOption) (*ListValidationItemsResponse, error)
	GetValidationItem(ctx context.Context, in *GetValidationItemRequest, opts ...grpc.CallOption) (*GetValidationItemResponse, error)
	ApproveItem(ctx context.Context, in *ApproveItemRequest, opts ...grpc.CallOption) (*ApproveItemResponse, error)
	RejectItem(ctx context.Context, in *RejectItemRequest, opts ...grpc.CallOption) (*RejectItemResponse, error)
	FlagItemForReview(ctx context.Context, in *FlagItemForReviewRequest, opts ...grpc.CallOption) (*FlagItemForReviewResponse, error)
	GetPendingCount(ctx context.Context, in *GetPendingCountRequest, opts ...grpc.CallOption) (*GetPendingCountResponse, error)
}

type validationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewValidationServiceClient(cc grpc.ClientConnInterface) ValidationServiceClient {
	return &validationServiceClient{cc}
}

func (c *validationServiceClient) ListValidationItems(ctx context.Context, in *ListValidationItemsRequest, opts ...grpc.CallOption) (*ListValidationItemsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListValidationItemsResponse)
	err := c.cc.Invoke(ctx, ValidationService_ListValidationItems_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *validationServiceClient) GetValidationItem(ctx context.Context, in *GetValidationItemRequest, opts ...grpc.CallOption) (*GetValidationItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetValidationItemResponse)
	err := c.cc.Invoke(ctx, ValidationService_GetValidationItem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *validationServiceClient) ApproveItem(ctx context.Context, in *ApproveItemRequest, opts ...grpc.CallOption) (*ApproveItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApproveItemResponse)
	err := c.cc.Invoke(ctx, ValidationService_ApproveItem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *validationServiceClient) RejectItem(ctx context.Context, in *RejectItemRequest, opts ...grpc.CallOption) (*RejectItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RejectItemResponse)
	err := c.cc.Invoke(ctx, ValidationService_RejectItem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *validationServiceClient) FlagItemForReview(ctx context.Context, in *FlagItemForReviewRequest, opts ...grpc.CallOption) (*FlagItemForReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FlagItemForReviewResponse)
	err := c.cc.Invoke(ctx, ValidationService_FlagItemForReview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *validationServiceClient) GetPendingCount(ctx context.Context, in *GetPendingCountRequest, opts ...grpc.CallOption) (*GetPendingCountResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPendingCountResponse)
	err := c.cc.Invoke(ctx, ValidationService_GetPendingCount_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ValidationServiceServer is the server API for ValidationService service.
// All implementations must embed UnimplementedValidationServiceServer
// for forward compatibility.
//
// ValidationService drives human review over extracted candidates.
type ValidationServiceServer interface {
	ListValidationItems(context.Context, *ListValidationItemsRequest) (*ListValidationItemsResponse, error)
	GetValidationItem(context.Context, *GetValidationItemRequest) (*GetValidationItemResponse, error)
	ApproveItem(context.Context, *ApproveItemRequest) (*ApproveItemResponse, error)
	RejectItem(context.Context, *RejectItemRequest) (*RejectItemResponse, error)
	FlagItemForReview(context.Context, *FlagItemForReviewRequest) (*FlagItemForReviewResponse, error)
	GetPendingCount(context.Context, *GetPendingCountRequest) (*GetPendingCountResponse, error)
	mustEmbedUnimplementedValidationServiceServer()
}

// UnimplementedValidationServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedValidationServiceServer struct{}

func (UnimplementedValidationServiceServer) ListValidationItems(context.Context, *ListValidationItemsRequest) (*ListValidationItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListValidationItems not implemented")
}
func (UnimplementedValidationServiceServer) GetValidationItem(context.Context, *GetValidationItemRequest) (*GetValidationItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetValidationItem not implemented")
}
func (UnimplementedValidationServiceServer) ApproveItem(context.Context, *ApproveItemRequest) (*ApproveItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApproveItem not implemented")
}
func (UnimplementedValidationServiceServer) RejectItem(context.Context, *RejectItemRequest) (*RejectItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RejectItem not implemented")
}
func (UnimplementedValidationServiceServer) FlagItemForReview(context.Context, *FlagItemForReviewRequest) (*FlagItemForReviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FlagItemForReview not implemented")
}
func (UnimplementedValidationServiceServer) GetPendingCount(context.Context, *GetPendingCountRequest) (*GetPendingCountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPendingCount not implemented")
}
func (UnimplementedValidationServiceServer) mustEmbedUnimplementedValidationServiceServer() {}
func (UnimplementedValidationServiceServer) testEmbeddedByValue()                           {}

// UnsafeValidationServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ValidationServiceServer will
// result in compilation errors.
type UnsafeValidationServiceServer interface {
	mustEmbedUnimplementedValidationServiceServer()
}

func RegisterValidationServiceServer(s grpc.ServiceRegistrar, srv ValidationServiceServer) {
	// If the following call panics, it indicates UnimplementedValidationServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ValidationService_ServiceDesc, srv)
}

func _ValidationService_ListValidationItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListValidationItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ValidationServiceServer).ListValidationItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ValidationService_ListValidationItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ValidationServiceServer).ListValidationItems(ctx, req.(*ListValidationItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ValidationService_GetValidationItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetValidationItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ValidationServiceServer).GetValidationItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ValidationService_GetValidationItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ValidationServiceServer).GetValidationItem(ctx, req.(*GetValidationItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ValidationService_ApproveItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ValidationServiceServer).ApproveItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ValidationService_ApproveItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ValidationServiceServer).ApproveItem(ctx, req.(*ApproveItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ValidationService_RejectItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RejectItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ValidationServiceServer).RejectItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ValidationService_RejectItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ValidationServiceServer).RejectItem(ctx, req.(*RejectItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ValidationService_FlagItemForReview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FlagItemForReviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ValidationServiceServer).FlagItemForReview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ValidationService_FlagItemForReview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ValidationServiceServer).FlagItemForReview(ctx, req.(*FlagItemForReviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ValidationService_GetPendingCount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPendingCountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ValidationServiceServer).GetPendingCount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ValidationService_GetPendingCount_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ValidationServiceServer).GetPendingCount(ctx, req.(*GetPendingCountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ValidationService_ServiceDesc is the grpc.ServiceDesc for ValidationService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ValidationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rules.v1.ValidationService",
	HandlerType: (*ValidationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListValidationItems",
			Handler:    _ValidationService_ListValidationItems_Handler,
		},
		{
			MethodName: "GetValidationItem",
			Handler:    _ValidationService_GetValidationItem_Handler,
		},
		{
			MethodName: "ApproveItem",
			Handler:    _ValidationService_ApproveItem_Handler,
		},
		{
			MethodName: "RejectItem",
			Handler:    _ValidationService_RejectItem_Handler,
		},
		{
			MethodName: "FlagItemForReview",
			Handler:    _ValidationService_FlagItemForReview_Handler,
		},
		{
			MethodName: "GetPendingCount",
			Handler:    _ValidationService_GetPendingCount_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rules/v1/ruletracker.proto",
}

const (
	RulesService_ListRules_FullMethodName        = "/rules.v1.RulesService/ListRules"
	RulesService_GetRule_FullMethodName          = "/rules.v1.RulesService/GetRule"
	RulesService_DeactivateRule_FullMethodName   = "/rules.v1.RulesService/DeactivateRule"
	RulesService_ListTechnologies_FullMethodName = "/rules.v1.RulesService/ListTechnologies"
	RulesService_ExportRules_FullMethodName      = "/rules.v1.RulesService/ExportRules"
)

// RulesServiceClient is the client API for RulesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RulesService reads the canonical rule store.
type RulesServiceClient interface {
	ListRules(ctx context.Context, in *ListRulesRequest, opts ...grpc.CallOption) (*ListRulesResponse, error)
	GetRule(ctx context.Context, in *GetRuleRequest, opts ...grpc.CallOption) (*GetRuleResponse, error)
	DeactivateRule(ctx context.Context, in *DeactivateRuleRequest, opts ...grpc.CallOption) (*DeactivateRuleResponse, error)
	ListTechnologies(ctx context.Context, in *ListTechnologiesRequest, opts ...grpc.CallOption) (*ListTechnologiesResponse, error)
	// ExportRules renders a technology's active rules as a spreadsheet.
	ExportRules(ctx context.Context, in *ExportRulesRequest, opts ...grpc.CallOption) (*ExportRulesResponse, error)
}

type rulesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRulesServiceClient(cc grpc.ClientConnInterface) RulesServiceClient {
	return &rulesServiceClient{cc}
}

func (c *rulesServiceClient) ListRules(ctx context.Context, in *ListRulesRequest, opts ...grpc.CallOption) (*ListRulesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRulesResponse)
	err := c.cc.Invoke(ctx, RulesService_ListRules_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rulesServiceClient) GetRule(ctx context.Context, in *GetRuleRequest, opts ...grpc.CallOption) (*GetRuleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRuleResponse)
	err := c.cc.Invoke(ctx, RulesService_GetRule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rulesServiceClient) DeactivateRule(ctx context.Context, in *DeactivateRuleRequest, opts ...grpc.CallOption) (*DeactivateRuleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeactivateRuleResponse)
	err := c.cc.Invoke(ctx, RulesService_DeactivateRule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rulesServiceClient) ListTechnologies(ctx context.Context, in *ListTechnologiesRequest, opts ...grpc.CallOption) (*ListTechnologiesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTechnologiesResponse)
	err := c.cc.Invoke(ctx, RulesService_ListTechnologies_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rulesServiceClient) ExportRules(ctx context.Context, in *ExportRulesRequest, opts ...grpc.CallOption) (*ExportRulesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportRulesResponse)
	err := c.cc.Invoke(ctx, RulesService_ExportRules_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RulesServiceServer is the server API for RulesService service.
// All implementations must embed UnimplementedRulesServiceServer
// for forward compatibility.
//
// RulesService reads the canonical rule store.
type RulesServiceServer interface {
	ListRules(context.Context, *ListRulesRequest) (*ListRulesResponse, error)
	GetRule(context.Context, *GetRuleRequest) (*GetRuleResponse, error)
	DeactivateRule(context.Context, *DeactivateRuleRequest) (*DeactivateRuleResponse, error)
	ListTechnologies(context.Context, *ListTechnologiesRequest) (*ListTechnologiesResponse, error)
	// ExportRules renders a technology's active rules as a spreadsheet.
	ExportRules(context.Context, *ExportRulesRequest) (*ExportRulesResponse, error)
	mustEmbedUnimplementedRulesServiceServer()
}

// UnimplementedRulesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRulesServiceServer struct{}

func (UnimplementedRulesServiceServer) ListRules(context.Context, *ListRulesRequest) (*ListRulesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRules not implemented")
}
func (UnimplementedRulesServiceServer) GetRule(context.Context, *GetRuleRequest) (*GetRuleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRule not implemented")
}
func (UnimplementedRulesServiceServer) DeactivateRule(context.Context, *DeactivateRuleRequest) (*DeactivateRuleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeactivateRule not implemented")
}
func (UnimplementedRulesServiceServer) ListTechnologies(context.Context, *ListTechnologiesRequest) (*ListTechnologiesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTechnologies not implemented")
}
func (UnimplementedRulesServiceServer) ExportRules(context.Context, *ExportRulesRequest) (*ExportRulesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportRules not implemented")
}
func (UnimplementedRulesServiceServer) mustEmbedUnimplementedRulesServiceServer() {}
func (UnimplementedRulesServiceServer) testEmbeddedByValue()                      {}

// UnsafeRulesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RulesServiceServer will
// result in compilation errors.
type UnsafeRulesServiceServer interface {
	mustEmbedUnimplementedRulesServiceServer()
}

func RegisterRulesServiceServer(s grpc.ServiceRegistrar, srv RulesServiceServer) {
	// If the following call panics, it indicates UnimplementedRulesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RulesService_ServiceDesc, srv)
}

func _RulesService_ListRules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RulesServiceServer).ListRules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RulesService_ListRules_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RulesServiceServer).ListRules(ctx, req.(*ListRulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RulesService_GetRule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRuleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RulesServiceServer).GetRule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RulesService_GetRule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RulesServiceServer).GetRule(ctx, req.(*GetRuleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RulesService_DeactivateRule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeactivateRuleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RulesServiceServer).DeactivateRule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RulesService_DeactivateRule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RulesServiceServer).DeactivateRule(ctx, req.(*DeactivateRuleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RulesService_ListTechnologies_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTechnologiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RulesServiceServer).ListTechnologies(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RulesService_ListTechnologies_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RulesServiceServer).ListTechnologies(ctx, req.(*ListTechnologiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RulesService_ExportRules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportRulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RulesServiceServer).ExportRules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RulesService_ExportRules_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RulesServiceServer).ExportRules(ctx, req.(*ExportRulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RulesService_ServiceDesc is the grpc.ServiceDesc for RulesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RulesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rules.v1.RulesService",
	HandlerType: (*RulesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListRules",
			Handler:    _RulesService_ListRules_Handler,
		},
		{
			MethodName: "GetRule",
			Handler:    _RulesService_GetRule_Handler,
		},
		{
			MethodName: "DeactivateRule",
			Handler:    _RulesService_DeactivateRule_Handler,
		},
		{
			MethodName: "ListTechnologies",
			Handler:    _RulesService_ListTechnologies_Handler,
		},
		{
			MethodName: "ExportRules",
			Handler:    _RulesService_ExportRules_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rules/v1/ruletracker.proto",
}

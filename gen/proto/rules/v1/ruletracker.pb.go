// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: rules/v1/ruletracker.proto

package rulespb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Document struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename        string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Format          string                 `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	Status          string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	ProcessingNotes string                 `protobuf:"bytes,5,opt,name=processing_notes,json=processingNotes,proto3" json:"processing_notes,omitempty"`
	UploadedBy      string                 `protobuf:"bytes,6,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	UploadedAt      string                 `protobuf:"bytes,7,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	ProcessedAt     string                 `protobuf:"bytes,8,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetProcessingNotes() string {
	if x != nil {
		return x.ProcessingNotes
	}
	return ""
}

func (x *Document) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Document) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

type ValidationItem struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId       string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	RuleId           string                 `protobuf:"bytes,3,opt,name=rule_id,json=ruleId,proto3" json:"rule_id,omitempty"`
	ExtractedContent string                 `protobuf:"bytes,4,opt,name=extracted_content,json=extractedContent,proto3" json:"extracted_content,omitempty"` // candidate as JSON
	Status           string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	ValidatorNotes   string                 `protobuf:"bytes,6,opt,name=validator_notes,json=validatorNotes,proto3" json:"validator_notes,omitempty"`
	ValidatedBy      string                 `protobuf:"bytes,7,opt,name=validated_by,json=validatedBy,proto3" json:"validated_by,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ValidatedAt      string                 `protobuf:"bytes,9,opt,name=validated_at,json=validatedAt,proto3" json:"validated_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ValidationItem) Reset() {
	*x = ValidationItem{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationItem) ProtoMessage() {}

func (x *ValidationItem) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationItem.ProtoReflect.Descriptor instead.
func (*ValidationItem) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{1}
}

func (x *ValidationItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ValidationItem) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ValidationItem) GetRuleId() string {
	if x != nil {
		return x.RuleId
	}
	return ""
}

func (x *ValidationItem) GetExtractedContent() string {
	if x != nil {
		return x.ExtractedContent
	}
	return ""
}

func (x *ValidationItem) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ValidationItem) GetValidatorNotes() string {
	if x != nil {
		return x.ValidatorNotes
	}
	return ""
}

func (x *ValidationItem) GetValidatedBy() string {
	if x != nil {
		return x.ValidatedBy
	}
	return ""
}

func (x *ValidationItem) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ValidationItem) GetValidatedAt() string {
	if x != nil {
		return x.ValidatedAt
	}
	return ""
}

type Rule struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TechnologyId        string                 `protobuf:"bytes,2,opt,name=technology_id,json=technologyId,proto3" json:"technology_id,omitempty"`
	RuleType            string                 `protobuf:"bytes,3,opt,name=rule_type,json=ruleType,proto3" json:"rule_type,omitempty"`
	Title               string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	Content             string                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	Explanation         string                 `protobuf:"bytes,6,opt,name=explanation,proto3" json:"explanation,omitempty"`
	ImplementationNotes string                 `protobuf:"bytes,7,opt,name=implementation_notes,json=implementationNotes,proto3" json:"implementation_notes,omitempty"`
	References          string                 `protobuf:"bytes,8,opt,name=references,proto3" json:"references,omitempty"`
	Severity            string                 `protobuf:"bytes,9,opt,name=severity,proto3" json:"severity,omitempty"`
	Category            string                 `protobuf:"bytes,10,opt,name=category,proto3" json:"category,omitempty"`
	OrderIndex          int32                  `protobuf:"varint,11,opt,name=order_index,json=orderIndex,proto3" json:"order_index,omitempty"`
	IsActive            bool                   `protobuf:"varint,12,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	CreatedBy           string                 `protobuf:"bytes,13,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	ReviewedBy          string                 `protobuf:"bytes,14,opt,name=reviewed_by,json=reviewedBy,proto3" json:"reviewed_by,omitempty"`
	CreatedAt           string                 `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt           string                 `protobuf:"bytes,16,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Rule) Reset() {
	*x = Rule{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Rule) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Rule) ProtoMessage() {}

func (x *Rule) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Rule.ProtoReflect.Descriptor instead.
func (*Rule) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{2}
}

func (x *Rule) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Rule) GetTechnologyId() string {
	if x != nil {
		return x.TechnologyId
	}
	return ""
}

func (x *Rule) GetRuleType() string {
	if x != nil {
		return x.RuleType
	}
	return ""
}

func (x *Rule) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Rule) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Rule) GetExplanation() string {
	if x != nil {
		return x.Explanation
	}
	return ""
}

func (x *Rule) GetImplementationNotes() string {
	if x != nil {
		return x.ImplementationNotes
	}
	return ""
}

func (x *Rule) GetReferences() string {
	if x != nil {
		return x.References
	}
	return ""
}

func (x *Rule) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *Rule) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Rule) GetOrderIndex() int32 {
	if x != nil {
		return x.OrderIndex
	}
	return 0
}

func (x *Rule) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *Rule) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

func (x *Rule) GetReviewedBy() string {
	if x != nil {
		return x.ReviewedBy
	}
	return ""
}

func (x *Rule) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Rule) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Technology struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	NodeSize      string                 `protobuf:"bytes,4,opt,name=node_size,json=nodeSize,proto3" json:"node_size,omitempty"`
	ProcessType   string                 `protobuf:"bytes,5,opt,name=process_type,json=processType,proto3" json:"process_type,omitempty"`
	Foundry       string                 `protobuf:"bytes,6,opt,name=foundry,proto3" json:"foundry,omitempty"`
	Active        bool                   `protobuf:"varint,7,opt,name=active,proto3" json:"active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Technology) Reset() {
	*x = Technology{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Technology) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Technology) ProtoMessage() {}

func (x *Technology) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Technology.ProtoReflect.Descriptor instead.
func (*Technology) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{3}
}

func (x *Technology) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Technology) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Technology) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Technology) GetNodeSize() string {
	if x != nil {
		return x.NodeSize
	}
	return ""
}

func (x *Technology) GetProcessType() string {
	if x != nil {
		return x.ProcessType
	}
	return ""
}

func (x *Technology) GetFoundry() string {
	if x != nil {
		return x.Foundry
	}
	return ""
}

func (x *Technology) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	FileData      []byte                 `protobuf:"bytes,2,opt,name=file_data,json=fileData,proto3" json:"file_data,omitempty"`
	UploadedBy    string                 `protobuf:"bytes,3,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{4}
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetFileData() []byte {
	if x != nil {
		return x.FileData
	}
	return nil
}

func (x *UploadDocumentRequest) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{5}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{7}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"` // optional filter
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{8}
}

func (x *ListDocumentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListDocumentsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{9}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type ProcessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{10}
}

func (x *ProcessDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ProcessDocumentResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	DocumentId      string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	RulesExtracted  int32                  `protobuf:"varint,2,opt,name=rules_extracted,json=rulesExtracted,proto3" json:"rules_extracted,omitempty"`
	ImagesExtracted int32                  `protobuf:"varint,3,opt,name=images_extracted,json=imagesExtracted,proto3" json:"images_extracted,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{11}
}

func (x *ProcessDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessDocumentResponse) GetRulesExtracted() int32 {
	if x != nil {
		return x.RulesExtracted
	}
	return 0
}

func (x *ProcessDocumentResponse) GetImagesExtracted() int32 {
	if x != nil {
		return x.ImagesExtracted
	}
	return 0
}

type ProcessDocumentWithAIRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentWithAIRequest) Reset() {
	*x = ProcessDocumentWithAIRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentWithAIRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentWithAIRequest) ProtoMessage() {}

func (x *ProcessDocumentWithAIRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentWithAIRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentWithAIRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{12}
}

func (x *ProcessDocumentWithAIRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ProcessDocumentWithAIResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Queued        bool                   `protobuf:"varint,2,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentWithAIResponse) Reset() {
	*x = ProcessDocumentWithAIResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentWithAIResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentWithAIResponse) ProtoMessage() {}

func (x *ProcessDocumentWithAIResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentWithAIResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentWithAIResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{13}
}

func (x *ProcessDocumentWithAIResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessDocumentWithAIResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type ResetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetDocumentRequest) Reset() {
	*x = ResetDocumentRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetDocumentRequest) ProtoMessage() {}

func (x *ResetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetDocumentRequest.ProtoReflect.Descriptor instead.
func (*ResetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{14}
}

func (x *ResetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ResetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetDocumentResponse) Reset() {
	*x = ResetDocumentResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetDocumentResponse) ProtoMessage() {}

func (x *ResetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetDocumentResponse.ProtoReflect.Descriptor instead.
func (*ResetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{15}
}

func (x *ResetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListValidationItemsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`                           // optional filter
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"` // optional filter
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListValidationItemsRequest) Reset() {
	*x = ListValidationItemsRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListValidationItemsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListValidationItemsRequest) ProtoMessage() {}

func (x *ListValidationItemsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListValidationItemsRequest.ProtoReflect.Descriptor instead.
func (*ListValidationItemsRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{16}
}

func (x *ListValidationItemsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListValidationItemsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ListValidationItemsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListValidationItemsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListValidationItemsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*ValidationItem      `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListValidationItemsResponse) Reset() {
	*x = ListValidationItemsResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListValidationItemsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListValidationItemsResponse) ProtoMessage() {}

func (x *ListValidationItemsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListValidationItemsResponse.ProtoReflect.Descriptor instead.
func (*ListValidationItemsResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{17}
}

func (x *ListValidationItemsResponse) GetItems() []*ValidationItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type GetValidationItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetValidationItemRequest) Reset() {
	*x = GetValidationItemRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetValidationItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetValidationItemRequest) ProtoMessage() {}

func (x *GetValidationItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetValidationItemRequest.ProtoReflect.Descriptor instead.
func (*GetValidationItemRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{18}
}

func (x *GetValidationItemRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

type GetValidationItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *ValidationItem        `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetValidationItemResponse) Reset() {
	*x = GetValidationItemResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetValidationItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetValidationItemResponse) ProtoMessage() {}

func (x *GetValidationItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetValidationItemResponse.ProtoReflect.Descriptor instead.
func (*GetValidationItemResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{19}
}

func (x *GetValidationItemResponse) GetItem() *ValidationItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type ApproveItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	Reviewer      string                 `protobuf:"bytes,2,opt,name=reviewer,proto3" json:"reviewer,omitempty"`
	Notes         string                 `protobuf:"bytes,3,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveItemRequest) Reset() {
	*x = ApproveItemRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveItemRequest) ProtoMessage() {}

func (x *ApproveItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveItemRequest.ProtoReflect.Descriptor instead.
func (*ApproveItemRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{20}
}

func (x *ApproveItemRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *ApproveItemRequest) GetReviewer() string {
	if x != nil {
		return x.Reviewer
	}
	return ""
}

func (x *ApproveItemRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type ApproveItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *ValidationItem        `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	RuleId        string                 `protobuf:"bytes,2,opt,name=rule_id,json=ruleId,proto3" json:"rule_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveItemResponse) Reset() {
	*x = ApproveItemResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveItemResponse) ProtoMessage() {}

func (x *ApproveItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveItemResponse.ProtoReflect.Descriptor instead.
func (*ApproveItemResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{21}
}

func (x *ApproveItemResponse) GetItem() *ValidationItem {
	if x != nil {
		return x.Item
	}
	return nil
}

func (x *ApproveItemResponse) GetRuleId() string {
	if x != nil {
		return x.RuleId
	}
	return ""
}

type RejectItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	Reviewer      string                 `protobuf:"bytes,2,opt,name=reviewer,proto3" json:"reviewer,omitempty"`
	Notes         string                 `protobuf:"bytes,3,opt,name=notes,proto3" json:"notes,omitempty"` // required
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectItemRequest) Reset() {
	*x = RejectItemRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectItemRequest) ProtoMessage() {}

func (x *RejectItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectItemRequest.ProtoReflect.Descriptor instead.
func (*RejectItemRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{22}
}

func (x *RejectItemRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *RejectItemRequest) GetReviewer() string {
	if x != nil {
		return x.Reviewer
	}
	return ""
}

func (x *RejectItemRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type RejectItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *ValidationItem        `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectItemResponse) Reset() {
	*x = RejectItemResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectItemResponse) ProtoMessage() {}

func (x *RejectItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectItemResponse.ProtoReflect.Descriptor instead.
func (*RejectItemResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{23}
}

func (x *RejectItemResponse) GetItem() *ValidationItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type FlagItemForReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	Reviewer      string                 `protobuf:"bytes,2,opt,name=reviewer,proto3" json:"reviewer,omitempty"`
	Notes         string                 `protobuf:"bytes,3,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FlagItemForReviewRequest) Reset() {
	*x = FlagItemForReviewRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FlagItemForReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FlagItemForReviewRequest) ProtoMessage() {}

func (x *FlagItemForReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FlagItemForReviewRequest.ProtoReflect.Descriptor instead.
func (*FlagItemForReviewRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{24}
}

func (x *FlagItemForReviewRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *FlagItemForReviewRequest) GetReviewer() string {
	if x != nil {
		return x.Reviewer
	}
	return ""
}

func (x *FlagItemForReviewRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type FlagItemForReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *ValidationItem        `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FlagItemForReviewResponse) Reset() {
	*x = FlagItemForReviewResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FlagItemForReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FlagItemForReviewResponse) ProtoMessage() {}

func (x *FlagItemForReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FlagItemForReviewResponse.ProtoReflect.Descriptor instead.
func (*FlagItemForReviewResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{25}
}

func (x *FlagItemForReviewResponse) GetItem() *ValidationItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type GetPendingCountRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPendingCountRequest) Reset() {
	*x = GetPendingCountRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPendingCountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPendingCountRequest) ProtoMessage() {}

func (x *GetPendingCountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPendingCountRequest.ProtoReflect.Descriptor instead.
func (*GetPendingCountRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{26}
}

type GetPendingCountResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Count         int32                  `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPendingCountResponse) Reset() {
	*x = GetPendingCountResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPendingCountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPendingCountResponse) ProtoMessage() {}

func (x *GetPendingCountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPendingCountResponse.ProtoReflect.Descriptor instead.
func (*GetPendingCountResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{27}
}

func (x *GetPendingCountResponse) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type ListRulesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TechnologyId  string                 `protobuf:"bytes,1,opt,name=technology_id,json=technologyId,proto3" json:"technology_id,omitempty"`
	RuleType      string                 `protobuf:"bytes,2,opt,name=rule_type,json=ruleType,proto3" json:"rule_type,omitempty"` // optional filter
	ActiveOnly    bool                   `protobuf:"varint,3,opt,name=active_only,json=activeOnly,proto3" json:"active_only,omitempty"`
	Limit         int32                  `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,5,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRulesRequest) Reset() {
	*x = ListRulesRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRulesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRulesRequest) ProtoMessage() {}

func (x *ListRulesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRulesRequest.ProtoReflect.Descriptor instead.
func (*ListRulesRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{28}
}

func (x *ListRulesRequest) GetTechnologyId() string {
	if x != nil {
		return x.TechnologyId
	}
	return ""
}

func (x *ListRulesRequest) GetRuleType() string {
	if x != nil {
		return x.RuleType
	}
	return ""
}

func (x *ListRulesRequest) GetActiveOnly() bool {
	if x != nil {
		return x.ActiveOnly
	}
	return false
}

func (x *ListRulesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListRulesRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListRulesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rules         []*Rule                `protobuf:"bytes,1,rep,name=rules,proto3" json:"rules,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRulesResponse) Reset() {
	*x = ListRulesResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRulesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRulesResponse) ProtoMessage() {}

func (x *ListRulesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRulesResponse.ProtoReflect.Descriptor instead.
func (*ListRulesResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{29}
}

func (x *ListRulesResponse) GetRules() []*Rule {
	if x != nil {
		return x.Rules
	}
	return nil
}

type GetRuleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RuleId        string                 `protobuf:"bytes,1,opt,name=rule_id,json=ruleId,proto3" json:"rule_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRuleRequest) Reset() {
	*x = GetRuleRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRuleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRuleRequest) ProtoMessage() {}

func (x *GetRuleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRuleRequest.ProtoReflect.Descriptor instead.
func (*GetRuleRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{30}
}

func (x *GetRuleRequest) GetRuleId() string {
	if x != nil {
		return x.RuleId
	}
	return ""
}

type GetRuleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rule          *Rule                  `protobuf:"bytes,1,opt,name=rule,proto3" json:"rule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRuleResponse) Reset() {
	*x = GetRuleResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRuleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRuleResponse) ProtoMessage() {}

func (x *GetRuleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRuleResponse.ProtoReflect.Descriptor instead.
func (*GetRuleResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{31}
}

func (x *GetRuleResponse) GetRule() *Rule {
	if x != nil {
		return x.Rule
	}
	return nil
}

type DeactivateRuleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RuleId        string                 `protobuf:"bytes,1,opt,name=rule_id,json=ruleId,proto3" json:"rule_id,omitempty"`
	ReviewedBy    string                 `protobuf:"bytes,2,opt,name=reviewed_by,json=reviewedBy,proto3" json:"reviewed_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeactivateRuleRequest) Reset() {
	*x = DeactivateRuleRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeactivateRuleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeactivateRuleRequest) ProtoMessage() {}

func (x *DeactivateRuleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeactivateRuleRequest.ProtoReflect.Descriptor instead.
func (*DeactivateRuleRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{32}
}

func (x *DeactivateRuleRequest) GetRuleId() string {
	if x != nil {
		return x.RuleId
	}
	return ""
}

func (x *DeactivateRuleRequest) GetReviewedBy() string {
	if x != nil {
		return x.ReviewedBy
	}
	return ""
}

type DeactivateRuleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rule          *Rule                  `protobuf:"bytes,1,opt,name=rule,proto3" json:"rule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeactivateRuleResponse) Reset() {
	*x = DeactivateRuleResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeactivateRuleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeactivateRuleResponse) ProtoMessage() {}

func (x *DeactivateRuleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeactivateRuleResponse.ProtoReflect.Descriptor instead.
func (*DeactivateRuleResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{33}
}

func (x *DeactivateRuleResponse) GetRule() *Rule {
	if x != nil {
		return x.Rule
	}
	return nil
}

type ListTechnologiesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTechnologiesRequest) Reset() {
	*x = ListTechnologiesRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTechnologiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTechnologiesRequest) ProtoMessage() {}

func (x *ListTechnologiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTechnologiesRequest.ProtoReflect.Descriptor instead.
func (*ListTechnologiesRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{34}
}

type ListTechnologiesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Technologies  []*Technology          `protobuf:"bytes,1,rep,name=technologies,proto3" json:"technologies,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTechnologiesResponse) Reset() {
	*x = ListTechnologiesResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTechnologiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTechnologiesResponse) ProtoMessage() {}

func (x *ListTechnologiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTechnologiesResponse.ProtoReflect.Descriptor instead.
func (*ListTechnologiesResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{35}
}

func (x *ListTechnologiesResponse) GetTechnologies() []*Technology {
	if x != nil {
		return x.Technologies
	}
	return nil
}

type ExportRulesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TechnologyId  string                 `protobuf:"bytes,1,opt,name=technology_id,json=technologyId,proto3" json:"technology_id,omitempty"`
	RuleType      string                 `protobuf:"bytes,2,opt,name=rule_type,json=ruleType,proto3" json:"rule_type,omitempty"` // optional filter
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRulesRequest) Reset() {
	*x = ExportRulesRequest{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRulesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRulesRequest) ProtoMessage() {}

func (x *ExportRulesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRulesRequest.ProtoReflect.Descriptor instead.
func (*ExportRulesRequest) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{36}
}

func (x *ExportRulesRequest) GetTechnologyId() string {
	if x != nil {
		return x.TechnologyId
	}
	return ""
}

func (x *ExportRulesRequest) GetRuleType() string {
	if x != nil {
		return x.RuleType
	}
	return ""
}

type ExportRulesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRulesResponse) Reset() {
	*x = ExportRulesResponse{}
	mi := &file_rules_v1_ruletracker_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRulesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRulesResponse) ProtoMessage() {}

func (x *ExportRulesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rules_v1_ruletracker_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRulesResponse.ProtoReflect.Descriptor instead.
func (*ExportRulesResponse) Descriptor() ([]byte, []int) {
	return file_rules_v1_ruletracker_proto_rawDescGZIP(), []int{37}
}

func (x *ExportRulesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_rules_v1_ruletracker_proto protoreflect.FileDescriptor

const file_rules_v1_ruletracker_proto_rawDesc = "" +
	"\n" +
	"\x1arules/v1/ruletracker.proto\x12\brules.v1\"\xf6\x01\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12)\n" +
	"\x10processing_notes\x18\x05 \x01(\tR\x0fprocessingNotes\x12\x1f\n" +
	"\vuploaded_by\x18\x06 \x01(\tR\n" +
	"uploadedBy\x12\x1f\n" +
	"\vuploaded_at\x18\a \x01(\tR\n" +
	"uploadedAt\x12!\n" +
	"\fprocessed_at\x18\b \x01(\tR\vprocessedAt\"\xad\x02\n" +
	"\x0eValidationItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x17\n" +
	"\arule_id\x18\x03 \x01(\tR\x06ruleId\x12+\n" +
	"\x11extracted_content\x18\x04 \x01(\tR\x10extractedContent\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12'\n" +
	"\x0fvalidator_notes\x18\x06 \x01(\tR\x0evalidatorNotes\x12!\n" +
	"\fvalidated_by\x18\a \x01(\tR\vvalidatedBy\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12!\n" +
	"\fvalidated_at\x18\t \x01(\tR\vvalidatedAt\"\xf1\x03\n" +
	"\x04Rule\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rtechnology_id\x18\x02 \x01(\tR\ftechnologyId\x12\x1b\n" +
	"\trule_type\x18\x03 \x01(\tR\bruleType\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12\x18\n" +
	"\acontent\x18\x05 \x01(\tR\acontent\x12 \n" +
	"\vexplanation\x18\x06 \x01(\tR\vexplanation\x121\n" +
	"\x14implementation_notes\x18\a \x01(\tR\x13implementationNotes\x12\x1e\n" +
	"\n" +
	"references\x18\b \x01(\tR\n" +
	"references\x12\x1a\n" +
	"\bseverity\x18\t \x01(\tR\bseverity\x12\x1a\n" +
	"\bcategory\x18\n" +
	" \x01(\tR\bcategory\x12\x1f\n" +
	"\vorder_index\x18\v \x01(\x05R\n" +
	"orderIndex\x12\x1b\n" +
	"\tis_active\x18\f \x01(\bR\bisActive\x12\x1d\n" +
	"\n" +
	"created_by\x18\r \x01(\tR\tcreatedBy\x12\x1f\n" +
	"\vreviewed_by\x18\x0e \x01(\tR\n" +
	"reviewedBy\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x10 \x01(\tR\tupdatedAt\"\xc4\x01\n" +
	"\n" +
	"Technology\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1b\n" +
	"\tnode_size\x18\x04 \x01(\tR\bnodeSize\x12!\n" +
	"\fprocess_type\x18\x05 \x01(\tR\vprocessType\x12\x18\n" +
	"\afoundry\x18\x06 \x01(\tR\afoundry\x12\x16\n" +
	"\x06active\x18\a \x01(\bR\x06active\"q\n" +
	"\x15UploadDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x1b\n" +
	"\tfile_data\x18\x02 \x01(\fR\bfileData\x12\x1f\n" +
	"\vuploaded_by\x18\x03 \x01(\tR\n" +
	"uploadedBy\"H\n" +
	"\x16UploadDocumentResponse\x12.\n" +
	"\bdocument\x18\x01 \x01(\v2\x12.rules.v1.DocumentR\bdocument\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"E\n" +
	"\x13GetDocumentResponse\x12.\n" +
	"\bdocument\x18\x01 \x01(\v2\x12.rules.v1.DocumentR\bdocument\"\\\n" +
	"\x14ListDocumentsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\"I\n" +
	"\x15ListDocumentsResponse\x120\n" +
	"\tdocuments\x18\x01 \x03(\v2\x12.rules.v1.DocumentR\tdocuments\"9\n" +
	"\x16ProcessDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x8e\x01\n" +
	"\x17ProcessDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12'\n" +
	"\x0frules_extracted\x18\x02 \x01(\x05R\x0erulesExtracted\x12)\n" +
	"\x10images_extracted\x18\x03 \x01(\x05R\x0fimagesExtracted\"?\n" +
	"\x1cProcessDocumentWithAIRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"X\n" +
	"\x1dProcessDocumentWithAIResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06queued\x18\x02 \x01(\bR\x06queued\"7\n" +
	"\x14ResetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"G\n" +
	"\x15ResetDocumentResponse\x12.\n" +
	"\bdocument\x18\x01 \x01(\v2\x12.rules.v1.DocumentR\bdocument\"\x83\x01\n" +
	"\x1aListValidationItemsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x04 \x01(\x05R\x06offset\"M\n" +
	"\x1bListValidationItemsResponse\x12.\n" +
	"\x05items\x18\x01 \x03(\v2\x18.rules.v1.ValidationItemR\x05items\"3\n" +
	"\x18GetValidationItemRequest\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\"I\n" +
	"\x19GetValidationItemResponse\x12,\n" +
	"\x04item\x18\x01 \x01(\v2\x18.rules.v1.ValidationItemR\x04item\"_\n" +
	"\x12ApproveItemRequest\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\x12\x1a\n" +
	"\breviewer\x18\x02 \x01(\tR\breviewer\x12\x14\n" +
	"\x05notes\x18\x03 \x01(\tR\x05notes\"\\\n" +
	"\x13ApproveItemResponse\x12,\n" +
	"\x04item\x18\x01 \x01(\v2\x18.rules.v1.ValidationItemR\x04item\x12\x17\n" +
	"\arule_id\x18\x02 \x01(\tR\x06ruleId\"^\n" +
	"\x11RejectItemRequest\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\x12\x1a\n" +
	"\breviewer\x18\x02 \x01(\tR\breviewer\x12\x14\n" +
	"\x05notes\x18\x03 \x01(\tR\x05notes\"B\n" +
	"\x12RejectItemResponse\x12,\n" +
	"\x04item\x18\x01 \x01(\v2\x18.rules.v1.ValidationItemR\x04item\"e\n" +
	"\x18FlagItemForReviewRequest\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\x12\x1a\n" +
	"\breviewer\x18\x02 \x01(\tR\breviewer\x12\x14\n" +
	"\x05notes\x18\x03 \x01(\tR\x05notes\"I\n" +
	"\x19FlagItemForReviewResponse\x12,\n" +
	"\x04item\x18\x01 \x01(\v2\x18.rules.v1.ValidationItemR\x04item\"\x18\n" +
	"\x16GetPendingCountRequest\"/\n" +
	"\x17GetPendingCountResponse\x12\x14\n" +
	"\x05count\x18\x01 \x01(\x05R\x05count\"\xa3\x01\n" +
	"\x10ListRulesRequest\x12#\n" +
	"\rtechnology_id\x18\x01 \x01(\tR\ftechnologyId\x12\x1b\n" +
	"\trule_type\x18\x02 \x01(\tR\bruleType\x12\x1f\n" +
	"\vactive_only\x18\x03 \x01(\bR\n" +
	"activeOnly\x12\x14\n" +
	"\x05limit\x18\x04 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x05 \x01(\x05R\x06offset\"9\n" +
	"\x11ListRulesResponse\x12$\n" +
	"\x05rules\x18\x01 \x03(\v2\x0e.rules.v1.RuleR\x05rules\")\n" +
	"\x0eGetRuleRequest\x12\x17\n" +
	"\arule_id\x18\x01 \x01(\tR\x06ruleId\"5\n" +
	"\x0fGetRuleResponse\x12\"\n" +
	"\x04rule\x18\x01 \x01(\v2\x0e.rules.v1.RuleR\x04rule\"Q\n" +
	"\x15DeactivateRuleRequest\x12\x17\n" +
	"\arule_id\x18\x01 \x01(\tR\x06ruleId\x12\x1f\n" +
	"\vreviewed_by\x18\x02 \x01(\tR\n" +
	"reviewedBy\"<\n" +
	"\x16DeactivateRuleResponse\x12\"\n" +
	"\x04rule\x18\x01 \x01(\v2\x0e.rules.v1.RuleR\x04rule\"\x19\n" +
	"\x17ListTechnologiesRequest\"T\n" +
	"\x18ListTechnologiesResponse\x128\n" +
	"\ftechnologies\x18\x01 \x03(\v2\x14.rules.v1.TechnologyR\ftechnologies\"V\n" +
	"\x12ExportRulesRequest\x12#\n" +
	"\rtechnology_id\x18\x01 \x01(\tR\ftechnologyId\x12\x1b\n" +
	"\trule_type\x18\x02 \x01(\tR\bruleType\")\n" +
	"\x13ExportRulesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x99\x04\n" +
	"\x10DocumentsService\x12S\n" +
	"\x0eUploadDocument\x12\x1f.rules.v1.UploadDocumentRequest\x1a .rules.v1.UploadDocumentResponse\x12J\n" +
	"\vGetDocument\x12\x1c.rules.v1.GetDocumentRequest\x1a\x1d.rules.v1.GetDocumentResponse\x12P\n" +
	"\rListDocuments\x12\x1e.rules.v1.ListDocumentsRequest\x1a\x1f.rules.v1.ListDocumentsResponse\x12V\n" +
	"\x0fProcessDocument\x12 .rules.v1.ProcessDocumentRequest\x1a!.rules.v1.ProcessDocumentResponse\x12h\n" +
	"\x15ProcessDocumentWithAI\x12&.rules.v1.ProcessDocumentWithAIRequest\x1a'.rules.v1.ProcessDocumentWithAIResponse\x12P\n" +
	"\rResetDocument\x12\x1e.rules.v1.ResetDocumentRequest\x1a\x1f.rules.v1.ResetDocumentResponse2\xa0\x04\n" +
	"\x11ValidationService\x12b\n" +
	"\x13ListValidationItems\x12$.rules.v1.ListValidationItemsRequest\x1a%.rules.v1.ListValidationItemsResponse\x12\\\n" +
	"\x11GetValidationItem\x12\".rules.v1.GetValidationItemRequest\x1a#.rules.v1.GetValidationItemResponse\x12J\n" +
	"\vApproveItem\x12\x1c.rules.v1.ApproveItemRequest\x1a\x1d.rules.v1.ApproveItemResponse\x12G\n" +
	"\n" +
	"RejectItem\x12\x1b.rules.v1.RejectItemRequest\x1a\x1c.rules.v1.RejectItemResponse\x12\\\n" +
	"\x11FlagItemForReview\x12\".rules.v1.FlagItemForReviewRequest\x1a#.rules.v1.FlagItemForReviewResponse\x12V\n" +
	"\x0fGetPendingCount\x12 .rules.v1.GetPendingCountRequest\x1a!.rules.v1.GetPendingCountResponse2\x90\x03\n" +
	"\fRulesService\x12D\n" +
	"\tListRules\x12\x1a.rules.v1.ListRulesRequest\x1a\x1b.rules.v1.ListRulesResponse\x12>\n" +
	"\aGetRule\x12\x18.rules.v1.GetRuleRequest\x1a\x19.rules.v1.GetRuleResponse\x12S\n" +
	"\x0eDeactivateRule\x12\x1f.rules.v1.DeactivateRuleRequest\x1a .rules.v1.DeactivateRuleResponse\x12Y\n" +
	"\x10ListTechnologies\x12!.rules.v1.ListTechnologiesRequest\x1a\".rules.v1.ListTechnologiesResponse\x12J\n" +
	"\vExportRules\x12\x1c.rules.v1.ExportRulesRequest\x1a\x1d.rules.v1.ExportRulesResponseB<Z:github.com/esdguide/ruletracker/gen/proto/rules/v1;rulespbb\x06proto3"

var (
	file_rules_v1_ruletracker_proto_rawDescOnce sync.Once
	file_rules_v1_ruletracker_proto_rawDescData []byte
)

func file_rules_v1_ruletracker_proto_rawDescGZIP() []byte {
	file_rules_v1_ruletracker_proto_rawDescOnce.Do(func() {
		file_rules_v1_ruletracker_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_rules_v1_ruletracker_proto_rawDesc), len(file_rules_v1_ruletracker_proto_rawDesc)))
	})
	return file_rules_v1_ruletracker_proto_rawDescData
}

var file_rules_v1_ruletracker_proto_msgTypes = make([]protoimpl.MessageInfo, 38)
var file_rules_v1_ruletracker_proto_goTypes = []any{
	(*Document)(nil),                      // 0: rules.v1.Document
	(*ValidationItem)(nil),                // 1: rules.v1.ValidationItem
	(*Rule)(nil),                          // 2: rules.v1.Rule
	(*Technology)(nil),                    // 3: rules.v1.Technology
	(*UploadDocumentRequest)(nil),         // 4: rules.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),        // 5: rules.v1.UploadDocumentResponse
	(*GetDocumentRequest)(nil),            // 6: rules.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),           // 7: rules.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),          // 8: rules.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),         // 9: rules.v1.ListDocumentsResponse
	(*ProcessDocumentRequest)(nil),        // 10: rules.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil),       // 11: rules.v1.ProcessDocumentResponse
	(*ProcessDocumentWithAIRequest)(nil),  // 12: rules.v1.ProcessDocumentWithAIRequest
	(*ProcessDocumentWithAIResponse)(nil), // 13: rules.v1.ProcessDocumentWithAIResponse
	(*ResetDocumentRequest)(nil),          // 14: rules.v1.ResetDocumentRequest
	(*ResetDocumentResponse)(nil),         // 15: rules.v1.ResetDocumentResponse
	(*ListValidationItemsRequest)(nil),    // 16: rules.v1.ListValidationItemsRequest
	(*ListValidationItemsResponse)(nil),   // 17: rules.v1.ListValidationItemsResponse
	(*GetValidationItemRequest)(nil),      // 18: rules.v1.GetValidationItemRequest
	(*GetValidationItemResponse)(nil),     // 19: rules.v1.GetValidationItemResponse
	(*ApproveItemRequest)(nil),            // 20: rules.v1.ApproveItemRequest
	(*ApproveItemResponse)(nil),           // 21: rules.v1.ApproveItemResponse
	(*RejectItemRequest)(nil),             // 22: rules.v1.RejectItemRequest
	(*RejectItemResponse)(nil),            // 23: rules.v1.RejectItemResponse
	(*FlagItemForReviewRequest)(nil),      // 24: rules.v1.FlagItemForReviewRequest
	(*FlagItemForReviewResponse)(nil),     // 25: rules.v1.FlagItemForReviewResponse
	(*GetPendingCountRequest)(nil),        // 26: rules.v1.GetPendingCountRequest
	(*GetPendingCountResponse)(nil),       // 27: rules.v1.GetPendingCountResponse
	(*ListRulesRequest)(nil),              // 28: rules.v1.ListRulesRequest
	(*ListRulesResponse)(nil),             // 29: rules.v1.ListRulesResponse
	(*GetRuleRequest)(nil),                // 30: rules.v1.GetRuleRequest
	(*GetRuleResponse)(nil),               // 31: rules.v1.GetRuleResponse
	(*DeactivateRuleRequest)(nil),         // 32: rules.v1.DeactivateRuleRequest
	(*DeactivateRuleResponse)(nil),        // 33: rules.v1.DeactivateRuleResponse
	(*ListTechnologiesRequest)(nil),       // 34: rules.v1.ListTechnologiesRequest
	(*ListTechnologiesResponse)(nil),      // 35: rules.v1.ListTechnologiesResponse
	(*ExportRulesRequest)(nil),            // 36: rules.v1.ExportRulesRequest
	(*ExportRulesResponse)(nil),           // 37: rules.v1.ExportRulesResponse
}
var file_rules_v1_ruletracker_proto_depIdxs = []int32{
	0,  // 0: rules.v1.UploadDocumentResponse.document:type_name -> rules.v1.Document
	0,  // 1: rules.v1.GetDocumentResponse.document:type_name -> rules.v1.Document
	0,  // 2: rules.v1.ListDocumentsResponse.documents:type_name -> rules.v1.Document
	0,  // 3: rules.v1.ResetDocumentResponse.document:type_name -> rules.v1.Document
	1,  // 4: rules.v1.ListValidationItemsResponse.items:type_name -> rules.v1.ValidationItem
	1,  // 5: rules.v1.GetValidationItemResponse.item:type_name -> rules.v1.ValidationItem
	1,  // 6: rules.v1.ApproveItemResponse.item:type_name -> rules.v1.ValidationItem
	1,  // 7: rules.v1.RejectItemResponse.item:type_name -> rules.v1.ValidationItem
	1,  // 8: rules.v1.FlagItemForReviewResponse.item:type_name -> rules.v1.ValidationItem
	2,  // 9: rules.v1.ListRulesResponse.rules:type_name -> rules.v1.Rule
	2,  // 10: rules.v1.GetRuleResponse.rule:type_name -> rules.v1.Rule
	2,  // 11: rules.v1.DeactivateRuleResponse.rule:type_name -> rules.v1.Rule
	3,  // 12: rules.v1.ListTechnologiesResponse.technologies:type_name -> rules.v1.Technology
	4,  // 13: rules.v1.DocumentsService.UploadDocument:input_type -> rules.v1.UploadDocumentRequest
	6,  // 14: rules.v1.DocumentsService.GetDocument:input_type -> rules.v1.GetDocumentRequest
	8,  // 15: rules.v1.DocumentsService.ListDocuments:input_type -> rules.v1.ListDocumentsRequest
	10, // 16: rules.v1.DocumentsService.ProcessDocument:input_type -> rules.v1.ProcessDocumentRequest
	12, // 17: rules.v1.DocumentsService.ProcessDocumentWithAI:input_type -> rules.v1.ProcessDocumentWithAIRequest
	14, // 18: rules.v1.DocumentsService.ResetDocument:input_type -> rules.v1.ResetDocumentRequest
	16, // 19: rules.v1.ValidationService.ListValidationItems:input_type -> rules.v1.ListValidationItemsRequest
	18, // 20: rules.v1.ValidationService.GetValidationItem:input_type -> rules.v1.GetValidationItemRequest
	20, // 21: rules.v1.ValidationService.ApproveItem:input_type -> rules.v1.ApproveItemRequest
	22, // 22: rules.v1.ValidationService.RejectItem:input_type -> rules.v1.RejectItemRequest
	24, // 23: rules.v1.ValidationService.FlagItemForReview:input_type -> rules.v1.FlagItemForReviewRequest
	26, // 24: rules.v1.ValidationService.GetPendingCount:input_type -> rules.v1.GetPendingCountRequest
	28, // 25: rules.v1.RulesService.ListRules:input_type -> rules.v1.ListRulesRequest
	30, // 26: rules.v1.RulesService.GetRule:input_type -> rules.v1.GetRuleRequest
	32, // 27: rules.v1.RulesService.DeactivateRule:input_type -> rules.v1.DeactivateRuleRequest
	34, // 28: rules.v1.RulesService.ListTechnologies:input_type -> rules.v1.ListTechnologiesRequest
	36, // 29: rules.v1.RulesService.ExportRules:input_type -> rules.v1.ExportRulesRequest
	5,  // 30: rules.v1.DocumentsService.UploadDocument:output_type -> rules.v1.UploadDocumentResponse
	7,  // 31: rules.v1.DocumentsService.GetDocument:output_type -> rules.v1.GetDocumentResponse
	9,  // 32: rules.v1.DocumentsService.ListDocuments:output_type -> rules.v1.ListDocumentsResponse
	11, // 33: rules.v1.DocumentsService.ProcessDocument:output_type -> rules.v1.ProcessDocumentResponse
	13, // 34: rules.v1.DocumentsService.ProcessDocumentWithAI:output_type -> rules.v1.ProcessDocumentWithAIResponse
	15, // 35: rules.v1.DocumentsService.ResetDocument:output_type -> rules.v1.ResetDocumentResponse
	17, // 36: rules.v1.ValidationService.ListValidationItems:output_type -> rules.v1.ListValidationItemsResponse
	19, // 37: rules.v1.ValidationService.GetValidationItem:output_type -> rules.v1.GetValidationItemResponse
	21, // 38: rules.v1.ValidationService.ApproveItem:output_type -> rules.v1.ApproveItemResponse
	23, // 39: rules.v1.ValidationService.RejectItem:output_type -> rules.v1.RejectItemResponse
	25, // 40: rules.v1.ValidationService.FlagItemForReview:output_type -> rules.v1.FlagItemForReviewResponse
	27, // 41: rules.v1.ValidationService.GetPendingCount:output_type -> rules.v1.GetPendingCountResponse
	29, // 42: rules.v1.RulesService.ListRules:output_type -> rules.v1.ListRulesResponse
	31, // 43: rules.v1.RulesService.GetRule:output_type -> rules.v1.GetRuleResponse
	33, // 44: rules.v1.RulesService.DeactivateRule:output_type -> rules.v1.DeactivateRuleResponse
	35, // 45: rules.v1.RulesService.ListTechnologies:output_type -> rules.v1.ListTechnologiesResponse
	37, // 46: rules.v1.RulesService.ExportRules:output_type -> rules.v1.ExportRulesResponse
	30, // [30:47] is the sub-list for method output_type
	13, // [13:30] is the sub-list for method input_type
	13, // [13:13] is the sub-list for extension type_name
	13, // [13:13] is the sub-list for extension extendee
	0,  // [0:13] is the sub-list for field type_name
}

func init() { file_rules_v1_ruletracker_proto_init() }
func file_rules_v1_ruletracker_proto_init() {
	if File_rules_v1_ruletracker_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_rules_v1_ruletracker_proto_rawDesc), len(file_rules_v1_ruletracker_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   38,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_rules_v1_ruletracker_proto_goTypes,
		DependencyIndexes: file_rules_v1_ruletracker_proto_depIdxs,
		MessageInfos:      file_rules_v1_ruletracker_proto_msgTypes,
	}.Build()
	File_rules_v1_ruletracker_proto = out.File
	file_rules_v1_ruletracker_proto_goTypes = nil
	file_rules_v1_ruletracker_proto_depIdxs = nil
}
